package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/jwwang2003/SoftwareTestingDemo/internal/cache"
	"github.com/jwwang2003/SoftwareTestingDemo/internal/model"
)

var (
	newSessionID  = uuid.NewString
	jsonMarshal   = json.Marshal
	jsonUnmarshal = json.Unmarshal
)

const sessionKeyPrefix = "session:"

// SessionManager 以 redis 保存會話內容，cookie 只帶簽章過的會話 id
type SessionManager struct {
	cache  cache.Cache
	secret string
	ttl    time.Duration
}

func NewSessionManager(c cache.Cache, secret string, ttl time.Duration) *SessionManager {
	return &SessionManager{cache: c, secret: secret, ttl: ttl}
}

func (m *SessionManager) TTL() time.Duration { return m.ttl }

func sessionKey(id string) string { return sessionKeyPrefix + id }

// userSessionsKey 記錄某位使用者目前所有的會話 id
func userSessionsKey(userID int) string { return fmt.Sprintf("%suser:%d", sessionKeyPrefix, userID) }

func (m *SessionManager) userSessions(ctx context.Context, userID int) ([]string, error) {
	data, err := m.cache.Get(ctx, userSessionsKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load user sessions: %w", err)
	}
	var ids []string
	if err := jsonUnmarshal(data, &ids); err != nil {
		return nil, fmt.Errorf("unmarshal user sessions: %w", err)
	}
	return ids, nil
}

// track 把新會話加進使用者索引，索引與會話同樣在 ttl 後過期
func (m *SessionManager) track(ctx context.Context, userID int, sessionID string) error {
	ids, err := m.userSessions(ctx, userID)
	if err != nil {
		return err
	}
	data, err := jsonMarshal(append(ids, sessionID))
	if err != nil {
		return fmt.Errorf("marshal user sessions: %w", err)
	}
	if err := m.cache.Set(ctx, userSessionsKey(userID), data, m.ttl).Err(); err != nil {
		return fmt.Errorf("store user sessions: %w", err)
	}
	return nil
}

// Create 為登入成功的使用者建立會話，回傳 cookie 用的 token
func (m *SessionManager) Create(ctx context.Context, user *model.User) (string, *model.Session, error) {
	sess := &model.Session{
		ID:       newSessionID(),
		UserID:   user.ID,
		LoginID:  user.UserID,
		UserName: user.UserName,
		Role:     user.Role(),
	}
	data, err := jsonMarshal(sess)
	if err != nil {
		return "", nil, fmt.Errorf("marshal session: %w", err)
	}
	if err := m.cache.Set(ctx, sessionKey(sess.ID), data, m.ttl).Err(); err != nil {
		return "", nil, fmt.Errorf("store session: %w", err)
	}
	if err := m.track(ctx, user.ID, sess.ID); err != nil {
		return "", nil, err
	}
	token, err := IssueSessionToken(sess, m.secret, m.ttl)
	if err != nil {
		return "", nil, err
	}
	return token, sess, nil
}

// Resolve 由 token 取回會話；token 無效、過期或 redis 已無紀錄都回傳 ErrUnauthenticated
func (m *SessionManager) Resolve(ctx context.Context, token string) (*model.Session, error) {
	claims, err := VerifySessionToken(token, m.secret)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnauthenticated, err)
	}
	data, err := m.cache.Get(ctx, sessionKey(claims.ID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrUnauthenticated
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	sess := &model.Session{}
	if err := jsonUnmarshal(data, sess); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	if sess.ID != claims.ID || sess.Role != claims.Role {
		return nil, ErrUnauthenticated
	}
	return sess, nil
}

// Refresh 以最新的使用者資料覆寫會話，例如修改個人資料之後
func (m *SessionManager) Refresh(ctx context.Context, sess *model.Session, user *model.User) error {
	sess.LoginID = user.UserID
	sess.UserName = user.UserName
	data, err := jsonMarshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	return m.cache.Set(ctx, sessionKey(sess.ID), data, m.ttl).Err()
}

// Destroy 刪除會話紀錄；無效 token 視為已登出
func (m *SessionManager) Destroy(ctx context.Context, token string) error {
	claims, err := VerifySessionToken(token, m.secret)
	if err != nil {
		return nil
	}
	return m.cache.Del(ctx, sessionKey(claims.ID)).Err()
}

// RevokeUser 刪除使用者的所有會話，管理員修改帳號或刪除使用者後呼叫
func (m *SessionManager) RevokeUser(ctx context.Context, userID int) error {
	ids, err := m.userSessions(ctx, userID)
	if err != nil {
		return err
	}
	keys := make([]string, 0, len(ids)+1)
	for _, id := range ids {
		keys = append(keys, sessionKey(id))
	}
	keys = append(keys, userSessionsKey(userID))
	return m.cache.Del(ctx, keys...).Err()
}
