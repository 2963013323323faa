package service

import (
	"github.com/jwwang2003/SoftwareTestingDemo/internal/model"
)

// 各列表固定的每頁筆數
const (
	PublicPageSize = 5
	AdminPageSize  = 10
)

func checkPage(p model.PageRequest) error {
	if p.Page < 0 {
		return invalid("page must not be negative")
	}
	if p.Size <= 0 {
		return invalid("page size must be positive")
	}
	return nil
}

// listPage 先查詢當頁資料再查總數，任一步失敗即回傳
func listPage[T any](op string, p model.PageRequest, list func() ([]T, error), count func() (int, error)) (*model.Page[T], error) {
	if err := checkPage(p); err != nil {
		return nil, err
	}
	items, err := list()
	if err != nil {
		return nil, storeErr(op, err)
	}
	total, err := count()
	if err != nil {
		return nil, storeErr(op, err)
	}
	return model.NewPage(items, total, p), nil
}

func checkID(name string, id int) error {
	if id <= 0 {
		return invalid("%s must be positive", name)
	}
	return nil
}
