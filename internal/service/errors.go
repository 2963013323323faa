package service

import (
	"errors"
	"fmt"

	"github.com/jwwang2003/SoftwareTestingDemo/internal/store"
)

// 服務層錯誤，由 api.StatusFor 統一轉換為 HTTP 狀態碼
var (
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrUnauthenticated    = errors.New("login required")
	ErrForbidden          = errors.New("permission denied")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")

	// ErrMessageNotExist 審核時留言不存在，屬於領域錯誤而非查無資源
	ErrMessageNotExist = errors.New("message does not exist")
)

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

func conflict(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConflict, fmt.Sprintf(format, args...))
}

// storeErr 將 store 的哨兵錯誤轉成服務層錯誤，其餘錯誤原樣包裝
func storeErr(op string, err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	case errors.Is(err, store.ErrDuplicate):
		return fmt.Errorf("%s: %w", op, ErrConflict)
	}
	return fmt.Errorf("%s: %w", op, err)
}
