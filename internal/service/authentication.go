// File: internal/service/authentication.go
package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jwwang2003/SoftwareTestingDemo/internal/model"
)

var (
	timeNow         = time.Now
	parseWithClaims = jwt.ParseWithClaims
)

// SessionClaims 會話 cookie 內的 JWT 負載，ID 為 redis 中的會話鍵
type SessionClaims struct {
	Role model.Role `json:"role"`
	jwt.RegisteredClaims
}

// AuthenticateUser 以 bcrypt 比對密碼，user 為 nil 時仍做一次比對
func AuthenticateUser(user *model.User, password string) error {
	if user == nil {
		_ = bcryptCompareHashAndPassword(dummyHash, []byte(password))
		return ErrInvalidCredentials
	}
	if err := ComparePassword(user.PasswordHash, password); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// IssueSessionToken 依會話資訊與 TTL 簽發 HS256 JWT
func IssueSessionToken(sess *model.Session, secret string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("session secret not set")
	}

	now := timeNow()
	claims := SessionClaims{
		Role: sess.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sess.ID,
			Subject:   sess.LoginID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// VerifySessionToken 驗證簽章與期限並取出負載
func VerifySessionToken(tokenString, secret string) (*SessionClaims, error) {
	if secret == "" {
		return nil, fmt.Errorf("session secret not set")
	}

	token, err := parseWithClaims(tokenString, &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	}, jwt.WithTimeFunc(timeNow))
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid || claims.ID == "" {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}
