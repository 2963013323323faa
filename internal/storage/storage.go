// Package storage 保存上傳的圖片並回傳可公開存取的路徑
package storage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/afero"
)

var newFileName = uuid.NewString

// ErrUnsupportedType 副檔名不在允許清單內
var ErrUnsupportedType = errors.New("unsupported file type")

// 允許的副檔名
var allowedExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// FileStore 把上傳檔案寫到 dir，回傳 urlPrefix 下的路徑
type FileStore struct {
	fs        afero.Fs
	dir       string
	urlPrefix string
}

func NewFileStore(fs afero.Fs, dir, urlPrefix string) (*FileStore, error) {
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &FileStore{fs: fs, dir: dir, urlPrefix: strings.TrimRight(urlPrefix, "/")}, nil
}

// Save 未上傳或檔案為空時回傳空字串，呼叫端據此保留舊圖
func (s *FileStore) Save(fh *multipart.FileHeader) (string, error) {
	if fh == nil || fh.Size == 0 || fh.Filename == "" {
		return "", nil
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedExt[ext] {
		return "", fmt.Errorf("%w %q", ErrUnsupportedType, ext)
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	name := newFileName() + ext
	full := filepath.Join(s.dir, name)
	dst, err := s.fs.Create(full)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}

	_, err = io.Copy(dst, src)
	if cerr := dst.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		// 寫到一半的檔案不保留
		_ = s.fs.Remove(full)
		return "", fmt.Errorf("write file: %w", err)
	}
	return path.Join(s.urlPrefix, name), nil
}

// Remove 刪除先前由 Save 回傳的檔案，非本目錄的路徑忽略
func (s *FileStore) Remove(ref string) error {
	if ref == "" || !strings.HasPrefix(ref, s.urlPrefix+"/") {
		return nil
	}
	name := path.Base(ref)
	if err := s.fs.Remove(filepath.Join(s.dir, name)); err != nil {
		exists, _ := afero.Exists(s.fs, filepath.Join(s.dir, name))
		if exists {
			return err
		}
	}
	return nil
}
