package users

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/jwwang2003/SoftwareTestingDemo/internal/api"
	"github.com/jwwang2003/SoftwareTestingDemo/internal/database"
	"github.com/jwwang2003/SoftwareTestingDemo/internal/middleware"
	"github.com/jwwang2003/SoftwareTestingDemo/internal/model"
	"github.com/jwwang2003/SoftwareTestingDemo/internal/service"
	"github.com/jwwang2003/SoftwareTestingDemo/internal/view"
)

var alice = &model.Session{ID: "s1", UserID: 1, LoginID: "alice", UserName: "Alice"}

func restore() {
	checkLogin = service.CheckLogin
	checkPassword = service.CheckPassword
	createUser = service.CreateUser
	userIDAvailable = service.UserIDAvailable
	getUser = service.GetUser
	updateProfile = service.UpdateProfile
	listUsers = service.ListUsers
	countUserPages = service.CountUserPages
	updateUserByAdmin = service.UpdateUserByAdmin
	deleteUser = service.DeleteUser
}

type fakeSessions struct {
	token     string
	createErr error
	created   *model.User
	refreshed *model.User
	destroyed string
	revoked   []int
	revokeErr error
}

func (f *fakeSessions) Create(_ context.Context, u *model.User) (string, *model.Session, error) {
	if f.createErr != nil {
		return "", nil, f.createErr
	}
	f.created = u
	return f.token, &model.Session{ID: "s", UserID: u.ID, LoginID: u.UserID, Role: u.Role()}, nil
}

func (f *fakeSessions) Refresh(_ context.Context, _ *model.Session, u *model.User) error {
	f.refreshed = u
	return nil
}

func (f *fakeSessions) Destroy(_ context.Context, token string) error {
	f.destroyed = token
	return nil
}

func (f *fakeSessions) RevokeUser(_ context.Context, userID int) error {
	f.revoked = append(f.revoked, userID)
	return f.revokeErr
}

func (f *fakeSessions) TTL() time.Duration { return time.Hour }

type fakeFiles struct{ ref string }

func (f fakeFiles) Save(*multipart.FileHeader) (string, error) { return f.ref, nil }

func (f fakeFiles) Remove(string) error { return nil }

func newCtx(method, target, form string, sess *model.Session) (echo.Context, *httptest.ResponseRecorder, *view.Recorder) {
	e := echo.New()
	e.Validator = api.NewValidator()
	r := &view.Recorder{}
	e.Renderer = r
	req := httptest.NewRequest(method, target, strings.NewReader(form))
	if form != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if sess != nil {
		c.Set(middleware.ContextSessionKey, sess)
	}
	return c, rec, r
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, ck := range (&http.Response{Header: rec.Header()}).Cookies() {
		if ck.Name == middleware.SessionCookie {
			return ck
		}
	}
	return nil
}

func TestLoginHandler(t *testing.T) {
	t.Run("wrong password", func(t *testing.T) {
		t.Cleanup(restore)
		checkLogin = func(context.Context, database.DB, string, string) (*model.User, error) {
			return nil, service.ErrInvalidCredentials
		}
		sessions := &fakeSessions{token: "tok"}
		c, rec, _ := newCtx(http.MethodPost, "/loginCheck.do", "userID=alice&password=bad", nil)
		require.NoError(t, LoginHandler(nil, sessions)(c))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "false", rec.Body.String())
		require.Nil(t, sessionCookie(rec))
		require.Nil(t, sessions.created)
	})

	t.Run("missing field", func(t *testing.T) {
		t.Cleanup(restore)
		c, rec, _ := newCtx(http.MethodPost, "/loginCheck.do", "userID=alice", nil)
		require.NoError(t, LoginHandler(nil, &fakeSessions{})(c))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, "false\n", rec.Body.String())
	})

	t.Run("user", func(t *testing.T) {
		t.Cleanup(restore)
		checkLogin = func(_ context.Context, _ database.DB, id, pw string) (*model.User, error) {
			require.Equal(t, "alice", id)
			require.Equal(t, "pw", pw)
			return &model.User{ID: 1, UserID: "alice"}, nil
		}
		c, rec, _ := newCtx(http.MethodPost, "/loginCheck.do", "userID=alice&password=pw", nil)
		require.NoError(t, LoginHandler(nil, &fakeSessions{token: "tok"})(c))
		require.Equal(t, "/index", rec.Body.String())
		ck := sessionCookie(rec)
		require.NotNil(t, ck)
		require.Equal(t, "tok", ck.Value)
		require.True(t, ck.HttpOnly)
		require.Equal(t, 3600, ck.MaxAge)
	})

	t.Run("admin", func(t *testing.T) {
		t.Cleanup(restore)
		checkLogin = func(context.Context, database.DB, string, string) (*model.User, error) {
			return &model.User{ID: 2, UserID: "root", IsAdmin: 1}, nil
		}
		c, rec, _ := newCtx(http.MethodPost, "/loginCheck.do", "userID=root&password=pw", nil)
		require.NoError(t, LoginHandler(nil, &fakeSessions{token: "tok"})(c))
		require.Equal(t, "/admin_index", rec.Body.String())
	})

	t.Run("session store down", func(t *testing.T) {
		t.Cleanup(restore)
		checkLogin = func(context.Context, database.DB, string, string) (*model.User, error) {
			return &model.User{ID: 1}, nil
		}
		c, rec, _ := newCtx(http.MethodPost, "/loginCheck.do", "userID=a&password=pw", nil)
		require.NoError(t, LoginHandler(nil, &fakeSessions{createErr: errors.New("redis")})(c))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestLogoutHandler(t *testing.T) {
	sessions := &fakeSessions{}
	c, rec, _ := newCtx(http.MethodGet, "/logout.do", "", alice)
	c.Request().AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: "tok"})
	require.NoError(t, LogoutHandler(sessions)(c))
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/index", rec.Header().Get(echo.HeaderLocation))
	require.Equal(t, "tok", sessions.destroyed)
	require.Equal(t, -1, sessionCookie(rec).MaxAge)

	// 沒有 cookie 也能登出
	sessions = &fakeSessions{}
	c, rec, _ = newCtx(http.MethodGet, "/quit.do", "", nil)
	require.NoError(t, LogoutHandler(sessions)(c))
	require.Equal(t, http.StatusFound, rec.Code)
	require.Empty(t, sessions.destroyed)
}

func TestRegisterHandler(t *testing.T) {
	t.Run("conflict", func(t *testing.T) {
		t.Cleanup(restore)
		createUser = func(context.Context, database.DB, service.UserInput) (*model.User, error) {
			return nil, service.ErrConflict
		}
		c, rec, _ := newCtx(http.MethodPost, "/register.do", "userID=a&userName=A&password=p", nil)
		require.NoError(t, RegisterHandler(nil)(c))
		require.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("bad email", func(t *testing.T) {
		t.Cleanup(restore)
		c, rec, _ := newCtx(http.MethodPost, "/register.do", "userID=a&userName=A&password=p&email=nope", nil)
		require.NoError(t, RegisterHandler(nil)(c))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("success", func(t *testing.T) {
		t.Cleanup(restore)
		createUser = func(_ context.Context, _ database.DB, in service.UserInput) (*model.User, error) {
			require.Equal(t, service.UserInput{UserID: "a", UserName: "A", Password: "p", Email: "a@b.com", Phone: "1"}, in)
			return &model.User{ID: 1}, nil
		}
		c, rec, _ := newCtx(http.MethodPost, "/register.do", "userID=a&userName=A&password=p&email=a@b.com&phone=1", nil)
		require.NoError(t, RegisterHandler(nil)(c))
		require.Equal(t, http.StatusFound, rec.Code)
		require.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
	})
}

func TestAvailabilityChecks(t *testing.T) {
	t.Cleanup(restore)
	userIDAvailable = func(_ context.Context, _ database.DB, id string) (bool, error) {
		return id == "free", nil
	}
	checkPassword = func(_ context.Context, _ database.DB, sess *model.Session, pw string) (bool, error) {
		require.Equal(t, alice, sess)
		return pw == "right", nil
	}

	c, rec, _ := newCtx(http.MethodPost, "/checkUserID.do", "userID=free", nil)
	require.NoError(t, CheckUserIDHandler(nil)(c))
	require.Equal(t, "true\n", rec.Body.String())

	c, rec, _ = newCtx(http.MethodPost, "/checkUserID.do", "userID=alice", nil)
	require.NoError(t, CheckUserIDHandler(nil)(c))
	require.Equal(t, "false\n", rec.Body.String())

	c, rec, _ = newCtx(http.MethodGet, "/checkPassword.do?password=right", "", alice)
	require.NoError(t, CheckPasswordHandler(nil)(c))
	require.Equal(t, "true\n", rec.Body.String())

	c, rec, _ = newCtx(http.MethodGet, "/checkPassword.do?password=wrong", "", alice)
	require.NoError(t, CheckPasswordHandler(nil)(c))
	require.Equal(t, "false\n", rec.Body.String())
}

func TestProfile(t *testing.T) {
	t.Run("info page", func(t *testing.T) {
		t.Cleanup(restore)
		getUser = func(_ context.Context, _ database.DB, id int) (*model.User, error) {
			require.Equal(t, 1, id)
			return &model.User{ID: 1, UserID: "alice"}, nil
		}
		c, _, r := newCtx(http.MethodGet, "/user_info", "", alice)
		require.NoError(t, InfoPageHandler(nil)(c))
		require.Equal(t, view.UserInfo, r.Name)
		require.Equal(t, "alice", r.Data["user"].(*model.User).UserID)
	})

	t.Run("update keeps picture without upload", func(t *testing.T) {
		t.Cleanup(restore)
		sessions := &fakeSessions{}
		updateProfile = func(_ context.Context, _ database.DB, sess *model.Session, in service.UserInput) (*model.User, error) {
			require.Equal(t, alice, sess)
			require.Empty(t, in.Picture)
			require.Equal(t, "new", in.Password)
			return &model.User{ID: 1, UserID: "alice", UserName: in.UserName}, nil
		}
		c, rec, _ := newCtx(http.MethodPost, "/updateUser.do", "userName=Ally&passwordNew=new", alice)
		require.NoError(t, UpdateProfileHandler(nil, sessions, fakeFiles{ref: "/upload/x.png"})(c))
		require.Equal(t, http.StatusFound, rec.Code)
		require.Equal(t, "/user_info", rec.Header().Get(echo.HeaderLocation))
		require.Equal(t, "Ally", sessions.refreshed.UserName)
	})

	t.Run("update missing name", func(t *testing.T) {
		t.Cleanup(restore)
		c, rec, _ := newCtx(http.MethodPost, "/updateUser.do", "email=a@b.com", alice)
		require.NoError(t, UpdateProfileHandler(nil, &fakeSessions{}, fakeFiles{})(c))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestManage(t *testing.T) {
	t.Cleanup(restore)
	countUserPages = func(_ context.Context, _ database.DB, size int) (int, error) {
		require.Equal(t, 10, size)
		return 2, nil
	}
	listUsers = func(_ context.Context, _ database.DB, p model.PageRequest) (*model.Page[model.User], error) {
		return model.NewPage([]model.User{{ID: 3, UserID: "bob", PasswordHash: "secret"}}, 1, p), nil
	}
	getUser = func(_ context.Context, _ database.DB, id int) (*model.User, error) {
		if id == 404 {
			return nil, service.ErrNotFound
		}
		return &model.User{ID: id}, nil
	}

	c, _, r := newCtx(http.MethodGet, "/user_manage", "", nil)
	require.NoError(t, ManagePageHandler(nil)(c))
	require.Equal(t, view.UserManage, r.Name)
	require.Equal(t, 2, r.Data["total"])

	c, _, r = newCtx(http.MethodGet, "/user_add", "", nil)
	require.NoError(t, AddPageHandler()(c))
	require.Equal(t, view.UserAdd, r.Name)

	c, rec, r := newCtx(http.MethodGet, "/user_edit?id=3", "", nil)
	require.NoError(t, EditPageHandler(nil)(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, view.UserEdit, r.Name)

	c, rec, _ = newCtx(http.MethodGet, "/user_edit?id=404", "", nil)
	require.NoError(t, EditPageHandler(nil)(c))
	require.Equal(t, http.StatusNotFound, rec.Code)

	c, rec, _ = newCtx(http.MethodGet, "/userList.do?page=1", "", nil)
	require.NoError(t, ListHandler(nil)(c))
	require.Contains(t, rec.Body.String(), `"userID":"bob"`)
	require.NotContains(t, rec.Body.String(), "secret")

	c, rec, _ = newCtx(http.MethodGet, "/userList.do?page=x", "", nil)
	require.NoError(t, ListHandler(nil)(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminMutations(t *testing.T) {
	t.Cleanup(restore)
	createUser = func(context.Context, database.DB, service.UserInput) (*model.User, error) {
		return &model.User{ID: 4}, nil
	}
	updateUserByAdmin = func(_ context.Context, _ database.DB, old string, in service.UserInput) (*model.User, error) {
		if old == "ghost" {
			return nil, service.ErrNotFound
		}
		require.Equal(t, "bob2", in.UserID)
		return &model.User{ID: 3}, nil
	}
	deleteUser = func(_ context.Context, _ database.DB, id int) error {
		if id == 404 {
			return service.ErrNotFound
		}
		return nil
	}

	c, rec, _ := newCtx(http.MethodPost, "/addUser.do", "userID=bob&userName=Bob&password=p", nil)
	require.NoError(t, AddHandler(nil)(c))
	require.Equal(t, "/user_manage", rec.Header().Get(echo.HeaderLocation))

	sessions := &fakeSessions{}
	c, rec, _ = newCtx(http.MethodPost, "/modifyUser.do", "oldUserID=bob&userID=bob2&userName=Bob", nil)
	require.NoError(t, ModifyHandler(nil, sessions)(c))
	require.Equal(t, http.StatusFound, rec.Code)

	c, rec, _ = newCtx(http.MethodPost, "/modifyUser.do", "oldUserID=ghost&userID=bob2&userName=Bob", nil)
	require.NoError(t, ModifyHandler(nil, sessions)(c))
	require.Equal(t, http.StatusNotFound, rec.Code)

	c, rec, _ = newCtx(http.MethodPost, "/delUser.do", "id=3", nil)
	require.NoError(t, DeleteHandler(nil, sessions)(c))
	require.Equal(t, "true\n", rec.Body.String())

	c, rec, _ = newCtx(http.MethodPost, "/delUser.do", "id=404", nil)
	require.NoError(t, DeleteHandler(nil, sessions)(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "false\n", rec.Body.String())

	// 修改與刪除成功後該使用者的會話都被撤銷，失敗的請求不撤銷
	require.Equal(t, []int{3, 3}, sessions.revoked)

	// 撤銷失敗不影響回應
	sessions.revokeErr = errors.New("redis down")
	c, rec, _ = newCtx(http.MethodPost, "/delUser.do", "id=3", nil)
	require.NoError(t, DeleteHandler(nil, sessions)(c))
	require.Equal(t, "true\n", rec.Body.String())
}
