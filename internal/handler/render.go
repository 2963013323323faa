package handler

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/jwwang2003/SoftwareTestingDemo/internal/middleware"
	"github.com/jwwang2003/SoftwareTestingDemo/internal/service"
	"github.com/jwwang2003/SoftwareTestingDemo/internal/storage"
)

// Render 以 200 渲染頁面，並帶入目前會話
func Render(c echo.Context, name string, data echo.Map) error {
	if data == nil {
		data = echo.Map{}
	}
	data["session"] = middleware.CurrentSession(c)
	return c.Render(http.StatusOK, name, data)
}

// Redirect 表單流程完成後導向其他頁面
func Redirect(c echo.Context, path string) error {
	return c.Redirect(http.StatusFound, path)
}

// FileSaver 保存上傳檔案，未上傳時回傳空字串
type FileSaver interface {
	Save(fh *multipart.FileHeader) (string, error)
	Remove(ref string) error
}

// SaveUpload 讀取 field 欄位的上傳檔案；沒有上傳時回傳空字串
func SaveUpload(c echo.Context, files FileSaver, field string) (string, error) {
	fh, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	ref, err := files.Save(fh)
	if errors.Is(err, storage.ErrUnsupportedType) {
		return "", errors.Join(service.ErrInvalidArgument, err)
	}
	return ref, err
}

// Discard 後續步驟失敗時刪除剛上傳的檔案
func Discard(files FileSaver, ref string) {
	if ref == "" {
		return
	}
	if err := files.Remove(ref); err != nil {
		zap.L().Warn("remove upload", zap.String("ref", ref), zap.Error(err))
	}
}
