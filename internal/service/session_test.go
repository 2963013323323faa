package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/jwwang2003/SoftwareTestingDemo/internal/cache"
	"github.com/jwwang2003/SoftwareTestingDemo/internal/model"
)

// memCache 以 map 模擬 redis 的 Get/Set/Del
func memCache(data map[string]string) *cache.FakeCache {
	return &cache.FakeCache{
		GetFn: func(ctx context.Context, key string) *redis.StringCmd {
			cmd := redis.NewStringCmd(ctx)
			if v, ok := data[key]; ok {
				cmd.SetVal(v)
			} else {
				cmd.SetErr(redis.Nil)
			}
			return cmd
		},
		SetFn: func(ctx context.Context, key string, value any, exp time.Duration) *redis.StatusCmd {
			switch v := value.(type) {
			case []byte:
				data[key] = string(v)
			case string:
				data[key] = v
			}
			cmd := redis.NewStatusCmd(ctx)
			cmd.SetVal("OK")
			return cmd
		},
		DelFn: func(ctx context.Context, keys ...string) *redis.IntCmd {
			cmd := redis.NewIntCmd(ctx)
			var n int64
			for _, k := range keys {
				if _, ok := data[k]; ok {
					delete(data, k)
					n++
				}
			}
			cmd.SetVal(n)
			return cmd
		},
	}
}

func TestSessionLifecycle(t *testing.T) {
	t.Cleanup(restore)
	newSessionID = func() string { return "fixed" }
	data := map[string]string{}
	m := NewSessionManager(memCache(data), "secret", time.Hour)
	require.Equal(t, time.Hour, m.TTL())

	user := &model.User{ID: 3, UserID: "bob", UserName: "Bob", IsAdmin: 0}
	tok, sess, err := m.Create(context.Background(), user)
	require.NoError(t, err)
	require.Equal(t, "fixed", sess.ID)
	require.Equal(t, model.RoleUser, sess.Role)
	require.Contains(t, data, "session:fixed")

	got, err := m.Resolve(context.Background(), tok)
	require.NoError(t, err)
	require.Equal(t, sess, got)

	user.UserName = "Bobby"
	require.NoError(t, m.Refresh(context.Background(), got, user))
	got, err = m.Resolve(context.Background(), tok)
	require.NoError(t, err)
	require.Equal(t, "Bobby", got.UserName)

	require.NoError(t, m.Destroy(context.Background(), tok))
	require.NotContains(t, data, "session:fixed")
	_, err = m.Resolve(context.Background(), tok)
	require.ErrorIs(t, err, ErrUnauthenticated)
}

func TestSessionResolveErrors(t *testing.T) {
	t.Cleanup(restore)
	data := map[string]string{}
	m := NewSessionManager(memCache(data), "secret", time.Hour)

	_, err := m.Resolve(context.Background(), "garbage")
	require.ErrorIs(t, err, ErrUnauthenticated)

	newSessionID = func() string { return "s1" }
	tok, _, err := m.Create(context.Background(), &model.User{ID: 1, UserID: "a"})
	require.NoError(t, err)

	// 角色與 token 不一致
	data["session:s1"] = `{"id":"s1","role":1}`
	_, err = m.Resolve(context.Background(), tok)
	require.ErrorIs(t, err, ErrUnauthenticated)

	data["session:s1"] = `not json`
	_, err = m.Resolve(context.Background(), tok)
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrUnauthenticated)

	broken := &cache.FakeCache{GetFn: func(ctx context.Context, key string) *redis.StringCmd {
		cmd := redis.NewStringCmd(ctx)
		cmd.SetErr(errBoom)
		return cmd
	}}
	m2 := NewSessionManager(broken, "secret", time.Hour)
	_, err = m2.Resolve(context.Background(), tok)
	require.ErrorIs(t, err, errBoom)

	require.NoError(t, m2.Destroy(context.Background(), "garbage"))
}

func TestSessionCreateErrors(t *testing.T) {
	t.Cleanup(restore)
	failing := &cache.FakeCache{SetFn: func(ctx context.Context, key string, value any, exp time.Duration) *redis.StatusCmd {
		cmd := redis.NewStatusCmd(ctx)
		cmd.SetErr(errBoom)
		return cmd
	}}
	m := NewSessionManager(failing, "secret", time.Hour)
	_, _, err := m.Create(context.Background(), &model.User{UserID: "a"})
	require.ErrorIs(t, err, errBoom)

	jsonMarshal = func(any) ([]byte, error) { return nil, errors.New("marshal") }
	_, _, err = m.Create(context.Background(), &model.User{UserID: "a"})
	require.Error(t, err)

	restore()
	m = NewSessionManager(memCache(map[string]string{}), "", time.Hour)
	_, _, err = m.Create(context.Background(), &model.User{UserID: "a"})
	require.Error(t, err)
}

func TestSessionRevokeUser(t *testing.T) {
	t.Cleanup(restore)
	data := map[string]string{}
	m := NewSessionManager(memCache(data), "secret", time.Hour)
	ids := []string{"laptop", "phone", "other", "tablet"}
	newSessionID = func() string {
		id := ids[0]
		ids = ids[1:]
		return id
	}

	alice := &model.User{ID: 5, UserID: "alice"}
	tokLaptop, _, err := m.Create(context.Background(), alice)
	require.NoError(t, err)
	tokPhone, _, err := m.Create(context.Background(), alice)
	require.NoError(t, err)
	tokOther, _, err := m.Create(context.Background(), &model.User{ID: 6, UserID: "carol"})
	require.NoError(t, err)
	require.JSONEq(t, `["laptop","phone"]`, data["session:user:5"])

	require.NoError(t, m.RevokeUser(context.Background(), 5))
	for _, tok := range []string{tokLaptop, tokPhone} {
		_, err := m.Resolve(context.Background(), tok)
		require.ErrorIs(t, err, ErrUnauthenticated)
	}
	require.NotContains(t, data, "session:user:5")

	got, err := m.Resolve(context.Background(), tokOther)
	require.NoError(t, err)
	require.Equal(t, "carol", got.LoginID)

	// 沒有任何會話的使用者
	require.NoError(t, m.RevokeUser(context.Background(), 99))

	data["session:user:6"] = "not json"
	require.Error(t, m.RevokeUser(context.Background(), 6))
	_, _, err = m.Create(context.Background(), &model.User{ID: 6, UserID: "carol"})
	require.Error(t, err)
}
