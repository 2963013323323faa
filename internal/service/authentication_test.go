package service

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/jwwang2003/SoftwareTestingDemo/internal/model"
)

func TestHashPassword(t *testing.T) {
	t.Cleanup(restore)
	pwd := "secret"
	hash, err := HashPassword(pwd)
	require.NoError(t, err)
	require.NotEqual(t, pwd, hash)
	require.NoError(t, ComparePassword(hash, pwd))
	require.Error(t, ComparePassword(hash, "other"))

	_, err = HashPassword("")
	require.ErrorIs(t, err, ErrInvalidArgument)
	_, err = HashPassword(strings.Repeat("x", maxPasswordBytes+1))
	require.ErrorIs(t, err, ErrInvalidArgument)

	bcryptGenerateFromPassword = func(_ []byte, _ int) ([]byte, error) {
		return nil, errors.New("gen")
	}
	_, err = HashPassword(pwd)
	require.Error(t, err)
}

func TestAuthenticateUser(t *testing.T) {
	t.Cleanup(restore)
	hash, err := HashPassword("pw")
	require.NoError(t, err)
	u := &model.User{PasswordHash: hash}
	require.NoError(t, AuthenticateUser(u, "pw"))
	require.ErrorIs(t, AuthenticateUser(u, "bad"), ErrInvalidCredentials)

	called := false
	bcryptCompareHashAndPassword = func(h, p []byte) error {
		called = true
		require.Equal(t, dummyHash, h)
		return errors.New("mismatch")
	}
	require.ErrorIs(t, AuthenticateUser(nil, "pw"), ErrInvalidCredentials)
	require.True(t, called)
}

func TestSessionToken(t *testing.T) {
	t.Cleanup(restore)
	sess := &model.Session{ID: "sid", LoginID: "alice", Role: model.RoleAdmin}

	_, err := IssueSessionToken(sess, "", time.Minute)
	require.Error(t, err)
	_, err = VerifySessionToken("x", "")
	require.Error(t, err)

	tok, err := IssueSessionToken(sess, "s", time.Minute)
	require.NoError(t, err)
	claims, err := VerifySessionToken(tok, "s")
	require.NoError(t, err)
	require.Equal(t, "sid", claims.ID)
	require.Equal(t, "alice", claims.Subject)
	require.Equal(t, model.RoleAdmin, claims.Role)

	_, err = VerifySessionToken(tok, "other")
	require.Error(t, err)

	timeNow = func() time.Time { return time.Now().Add(2 * time.Minute) }
	_, err = VerifySessionToken(tok, "s")
	require.Error(t, err)
}

func TestVerifySessionTokenRejectsOtherAlgorithms(t *testing.T) {
	t.Cleanup(restore)
	tok := jwt.NewWithClaims(jwt.SigningMethodNone, SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{ID: "sid"},
	})
	s, err := tok.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = VerifySessionToken(s, "s")
	require.Error(t, err)
}

func TestVerifySessionTokenWithoutID(t *testing.T) {
	t.Cleanup(restore)
	tok, err := IssueSessionToken(&model.Session{}, "s", time.Minute)
	require.NoError(t, err)
	_, err = VerifySessionToken(tok, "s")
	require.Error(t, err)
}
