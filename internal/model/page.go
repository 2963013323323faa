package model

// PageRequest 分頁查詢條件，Page 從 0 開始
type PageRequest struct {
	Page int
	Size int
}

func (p PageRequest) Offset() int {
	return p.Page * p.Size
}

// Page 一頁查詢結果與總筆數
type Page[T any] struct {
	Content       []T
	TotalElements int
	Number        int
	Size          int
}

// TotalPages = ceil(TotalElements / Size)
func (p Page[T]) TotalPages() int {
	if p.Size <= 0 || p.TotalElements <= 0 {
		return 0
	}
	return (p.TotalElements + p.Size - 1) / p.Size
}

// NewPage 組裝分頁結果，Content 為 nil 時換成空切片以輸出 []
func NewPage[T any](content []T, total int, req PageRequest) *Page[T] {
	if content == nil {
		content = []T{}
	}
	return &Page[T]{Content: content, TotalElements: total, Number: req.Page, Size: req.Size}
}
