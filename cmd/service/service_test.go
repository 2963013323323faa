package main

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/jwwang2003/SoftwareTestingDemo/internal/cache"
	"github.com/jwwang2003/SoftwareTestingDemo/internal/config"
	"github.com/jwwang2003/SoftwareTestingDemo/internal/database"
	"github.com/jwwang2003/SoftwareTestingDemo/internal/logger"
	"github.com/jwwang2003/SoftwareTestingDemo/internal/service"
	"github.com/jwwang2003/SoftwareTestingDemo/internal/view"
)

func restoreGlobals() {
	loadConfig = config.Load
	newLogger = logger.New
	newPgxPool = database.NewPgxPool
	newRedisClient = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	rollbackAllFn = database.RollbackAll
	ensureAdmin = service.EnsureAdmin
	newRenderer = view.New
	uploadFs = afero.NewOsFs
	startServer = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	exitFunc = func(code int) {}
}

// stubInfra 換掉所有外部連線，回傳呼叫紀錄
func stubInfra(t *testing.T) map[string]bool {
	t.Helper()
	called := make(map[string]bool)
	newLogger = func(string) (*zap.Logger, error) { return zap.NewNop(), nil }
	uploadFs = func() afero.Fs { return afero.NewMemMapFs() }
	newPgxPool = func(ctx context.Context, url string) (database.DB, error) {
		called["pgx"] = true
		return &database.FakeDB{CloseFn: func() { called["dbClose"] = true }}, nil
	}
	newRedisClient = func(addr, pwd string, db int) (cache.Cache, error) {
		called["redis"] = true
		return &cache.FakeCache{CloseFn: func() error { called["redisClose"] = true; return nil }}, nil
	}
	runMigrationsFn = func(url string) error { called["migrate"] = true; return nil }
	rollbackAllFn = func(url string) error { called["rollback"] = true; return nil }
	startServer = func(e *echo.Echo, addr string) error { called["start"] = true; return nil }
	return called
}

func setEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "db")
	t.Setenv("REDIS_ADDR", "127")
	t.Setenv("REDIS_DB", "1")
	t.Setenv("REDIS_PASSWORD", "pw")
	t.Setenv("SESSION_SECRET", "secret")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("ADMIN_USER_ID", "")
	t.Setenv("ADMIN_PASSWORD", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("RESET_DATABASE", "")
}

func TestRunSuccess(t *testing.T) {
	t.Cleanup(restoreGlobals)
	called := stubInfra(t)
	setEnv(t)
	newRedisClient = func(addr, pwd string, db int) (cache.Cache, error) {
		called["redis"] = true
		require.Equal(t, "127", addr)
		require.Equal(t, "pw", pwd)
		require.Equal(t, 1, db)
		return &cache.FakeCache{CloseFn: func() error { called["redisClose"] = true; return nil }}, nil
	}
	var routes map[string]bool
	startServer = func(e *echo.Echo, addr string) error {
		called["start"] = true
		require.Equal(t, ":9090", addr)
		require.NotNil(t, e.Validator)
		require.NotNil(t, e.Renderer)
		require.False(t, e.Debug)
		routes = map[string]bool{}
		for _, r := range e.Routes() {
			routes[r.Method+" "+r.Path] = true
		}
		return nil
	}

	require.NoError(t, run())
	for _, k := range []string{"pgx", "redis", "migrate", "start", "dbClose", "redisClose"} {
		require.True(t, called[k], k)
	}
	require.True(t, routes["GET /swagger/*"])
	require.True(t, routes["GET /index"])
	require.True(t, routes["GET /upload/*"])
	require.False(t, routes["GET /upload*"])
	require.False(t, called["rollback"])
}

func TestRunUploadPrefix(t *testing.T) {
	t.Cleanup(restoreGlobals)
	stubInfra(t)
	setEnv(t)
	t.Setenv("UPLOAD_URL_PREFIX", "/files/")

	var static []string
	startServer = func(e *echo.Echo, _ string) error {
		for _, r := range e.Routes() {
			if strings.HasPrefix(r.Path, "/files") {
				static = append(static, r.Method+" "+r.Path)
			}
		}
		return nil
	}
	require.NoError(t, run())
	require.Equal(t, []string{"GET /files/*"}, static)
}

func TestRunResetsDatabase(t *testing.T) {
	t.Cleanup(restoreGlobals)
	stubInfra(t)
	setEnv(t)
	t.Setenv("APP_ENV", "development")
	t.Setenv("RESET_DATABASE", "true")

	var order []string
	rollbackAllFn = func(url string) error {
		require.Equal(t, "db", url)
		order = append(order, "down")
		return nil
	}
	runMigrationsFn = func(string) error {
		order = append(order, "up")
		return nil
	}
	require.NoError(t, run())
	require.Equal(t, []string{"down", "up"}, order)

	rollbackAllFn = func(string) error { return errors.New("locked") }
	require.ErrorContains(t, run(), "locked")
}

func TestRunEnsuresAdmin(t *testing.T) {
	t.Cleanup(restoreGlobals)
	stubInfra(t)
	setEnv(t)
	t.Setenv("ADMIN_USER_ID", "root")
	t.Setenv("ADMIN_PASSWORD", "rootpw")

	var got []string
	ensureAdmin = func(_ context.Context, _ database.DB, id, pw string) (bool, error) {
		got = []string{id, pw}
		return true, nil
	}
	require.NoError(t, run())
	require.Equal(t, []string{"root", "rootpw"}, got)

	ensureAdmin = func(context.Context, database.DB, string, string) (bool, error) {
		return false, errors.New("db")
	}
	require.Error(t, run())
}

func TestRunErrors(t *testing.T) {
	t.Cleanup(restoreGlobals)
	stubInfra(t)
	setEnv(t)

	t.Setenv("DATABASE_URL", "")
	require.Error(t, run())
	t.Setenv("DATABASE_URL", "db")
	t.Setenv("SESSION_SECRET", "")
	require.Error(t, run())
	t.Setenv("SESSION_SECRET", "secret")
	t.Setenv("REDIS_DB", "bad")
	require.Error(t, run())
	t.Setenv("REDIS_DB", "0")

	newLogger = func(string) (*zap.Logger, error) { return nil, errors.New("logger") }
	require.Error(t, run())
	newLogger = func(string) (*zap.Logger, error) { return zap.NewNop(), nil }

	newPgxPool = func(context.Context, string) (database.DB, error) { return nil, errors.New("db") }
	require.Error(t, run())

	newPgxPool = func(context.Context, string) (database.DB, error) { return &database.FakeDB{}, nil }
	newRedisClient = func(string, string, int) (cache.Cache, error) { return nil, errors.New("redis") }
	require.Error(t, run())

	newRedisClient = func(string, string, int) (cache.Cache, error) { return &cache.FakeCache{}, nil }
	runMigrationsFn = func(string) error { return errors.New("migrate") }
	require.Error(t, run())

	runMigrationsFn = func(string) error { return nil }
	newRenderer = func() (*view.Renderer, error) { return nil, errors.New("templates") }
	require.Error(t, run())

	newRenderer = view.New
	uploadFs = func() afero.Fs { return afero.NewReadOnlyFs(afero.NewMemMapFs()) }
	require.Error(t, run())

	uploadFs = func() afero.Fs { return afero.NewMemMapFs() }
	startServer = func(*echo.Echo, string) error { return errors.New("start") }
	require.Error(t, run())
}

func TestErrorHandler(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	e := echo.New()
	h := errorHandler(zap.New(core), e.DefaultHTTPErrorHandler)

	rec := httptest.NewRecorder()
	h(echo.ErrNotFound, e.NewContext(httptest.NewRequest(http.MethodGet, "/nope", nil), rec))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Zero(t, logs.Len())

	rec = httptest.NewRecorder()
	h(errors.New("boom"), e.NewContext(httptest.NewRequest(http.MethodGet, "/x", nil), rec))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, 1, logs.Len())
	require.Equal(t, "unhandled error", logs.All()[0].Message)
}

func TestMainFunction(t *testing.T) {
	t.Cleanup(restoreGlobals)
	stubInfra(t)
	setEnv(t)
	main()
}

func TestMainExit(t *testing.T) {
	t.Cleanup(restoreGlobals)
	stubInfra(t)
	setEnv(t)
	exitCode := 0
	exitFunc = func(code int) { exitCode = code }
	newPgxPool = func(context.Context, string) (database.DB, error) { return nil, errors.New("fail") }
	main()
	require.Equal(t, 1, exitCode)
}
