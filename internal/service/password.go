package service

import (
	"golang.org/x/crypto/bcrypt"
)

var (
	bcryptGenerateFromPassword   = bcrypt.GenerateFromPassword
	bcryptCompareHashAndPassword = bcrypt.CompareHashAndPassword
)

// maxPasswordBytes bcrypt 只處理前 72 個位元組
const maxPasswordBytes = 72

// dummyHash 帳號不存在時仍執行一次比對，使回應時間與帳號是否存在無關
var dummyHash = []byte("$2a$10$7EqJtq98hPqEX7fNZaFWoO5rJ0xXzl6XgUqvC0RZ3d5mHn0k5z7w.")

// HashPassword 將註冊或修改時的明文密碼轉為 bcrypt 雜湊
func HashPassword(password string) (string, error) {
	if password == "" || len(password) > maxPasswordBytes {
		return "", invalid("password must be 1-%d bytes", maxPasswordBytes)
	}
	hashed, err := bcryptGenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// ComparePassword 密碼不符時回傳 bcrypt 的錯誤
func ComparePassword(hash, password string) error {
	return bcryptCompareHashAndPassword([]byte(hash), []byte(password))
}
