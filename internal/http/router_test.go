package httpx

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RAGHAVAN7777/vault-backend/domain"
	"github.com/RAGHAVAN7777/vault-backend/internal/http/handlers"
	"github.com/RAGHAVAN7777/vault-backend/internal/mocks"
)

type routerFixture struct {
	router     *gin.Engine
	authSvc    *mocks.MockAuthService
	contentSvc *mocks.MockContentService
	noteSvc    *mocks.MockNoteService
	purgeSvc   *mocks.MockPurgeService
	adminSvc   *mocks.MockAdminService
}

func newRouterForTest(t *testing.T) *routerFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	f := &routerFixture{
		authSvc:    mocks.NewMockAuthService(),
		contentSvc: mocks.NewMockContentService(),
		noteSvc:    mocks.NewMockNoteService(),
		purgeSvc:   mocks.NewMockPurgeService(),
		adminSvc:   mocks.NewMockAdminService(),
	}
	f.router = BuildRouter(
		handlers.NewAuthHandlers(f.authSvc),
		handlers.NewContentHandlers(f.contentSvc),
		handlers.NewNoteHandlers(f.noteSvc),
		handlers.NewAccountHandlers(f.purgeSvc),
		handlers.NewAdminHandlers(f.adminSvc, f.purgeSvc),
	)
	return f
}

func (f *routerFixture) postJSON(t *testing.T, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func (f *routerFixture) do(t *testing.T, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestHealthEndpoint(t *testing.T) {
	f := newRouterForTest(t)
	w := f.do(t, http.MethodGet, "/health")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSendOTPEndpoint(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := newRouterForTest(t)
		var gotEmail string
		var gotRole domain.Role
		f.authSvc.RequestOTPFunc = func(ctx context.Context, email string, role domain.Role) error {
			gotEmail, gotRole = email, role
			return nil
		}

		w := f.postJSON(t, "/api/send-otp", gin.H{"email": "a@x.com", "role": "privileged"})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "a@x.com", gotEmail)
		assert.Equal(t, domain.RolePrivileged, gotRole)
	})

	t.Run("already registered", func(t *testing.T) {
		f := newRouterForTest(t)
		f.authSvc.RequestOTPFunc = func(ctx context.Context, email string, role domain.Role) error {
			return domain.ErrAlreadyRegistered
		}

		w := f.postJSON(t, "/api/send-otp", gin.H{"email": "a@x.com"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Email already registered", decodeBody(t, w)["error"])
	})

	t.Run("malformed email", func(t *testing.T) {
		f := newRouterForTest(t)
		w := f.postJSON(t, "/api/send-otp", gin.H{"email": "not-an-email"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestRegisterEndpoint(t *testing.T) {
	validReq := gin.H{
		"userId": "u1", "email": "a@x.com", "role": "standard",
		"pin": "123456", "otp": "111111",
	}

	t.Run("success", func(t *testing.T) {
		f := newRouterForTest(t)
		w := f.postJSON(t, "/api/register", validReq)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing master approval is forbidden", func(t *testing.T) {
		f := newRouterForTest(t)
		f.authSvc.RegisterFunc = func(ctx context.Context, userID, email string, role domain.Role, pin, otp, masterOTP string) (*domain.User, error) {
			return nil, domain.ErrMasterAuthorizationMissing
		}

		w := f.postJSON(t, "/api/register", validReq)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "MASTER_AUTHORIZATION_MISSING_OR_INVALID", decodeBody(t, w)["error"])
	})

	t.Run("bad OTP", func(t *testing.T) {
		f := newRouterForTest(t)
		f.authSvc.RegisterFunc = func(ctx context.Context, userID, email string, role domain.Role, pin, otp, masterOTP string) (*domain.User, error) {
			return nil, domain.ErrInvalidOrExpiredToken
		}

		w := f.postJSON(t, "/api/register", validReq)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("email held by another account", func(t *testing.T) {
		f := newRouterForTest(t)
		f.authSvc.RegisterFunc = func(ctx context.Context, userID, email string, role domain.Role, pin, otp, masterOTP string) (*domain.User, error) {
			return nil, domain.ErrAlreadyRegistered
		}

		w := f.postJSON(t, "/api/register", validReq)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Email already registered", decodeBody(t, w)["error"])
	})

	t.Run("PIN must be exactly six characters", func(t *testing.T) {
		f := newRouterForTest(t)
		req := gin.H{
			"userId": "u1", "email": "a@x.com", "role": "standard",
			"pin": "123", "otp": "111111",
		}
		w := f.postJSON(t, "/api/register", req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLoginEndpoint(t *testing.T) {
	t.Run("success returns identity and role only", func(t *testing.T) {
		f := newRouterForTest(t)
		f.authSvc.LoginFunc = func(ctx context.Context, userID, pin string) (*domain.User, error) {
			return &domain.User{UserID: userID, Role: domain.RoleElevated, PINHash: "secret"}, nil
		}

		w := f.postJSON(t, "/api/login", gin.H{"userId": "u1", "pin": "123456"})
		require.Equal(t, http.StatusOK, w.Code)

		body := decodeBody(t, w)
		user := body["user"].(map[string]any)
		assert.Equal(t, "u1", user["userId"])
		assert.Equal(t, "elevated", user["role"])
		assert.NotContains(t, w.Body.String(), "secret")
	})

	t.Run("bad credentials", func(t *testing.T) {
		f := newRouterForTest(t)
		f.authSvc.LoginFunc = func(ctx context.Context, userID, pin string) (*domain.User, error) {
			return nil, domain.ErrInvalidCredentials
		}

		w := f.postJSON(t, "/api/login", gin.H{"userId": "u1", "pin": "000000"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestPatternLoginEndpoint(t *testing.T) {
	t.Run("granted", func(t *testing.T) {
		f := newRouterForTest(t)
		w := f.postJSON(t, "/api/admin-login-pattern", gin.H{"pattern": "1-5-9"})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "ADMIN_ACCESS_GRANTED", decodeBody(t, w)["message"])
	})

	t.Run("wrong pattern", func(t *testing.T) {
		f := newRouterForTest(t)
		f.authSvc.LoginByPatternFunc = func(pattern string) error {
			return domain.ErrInvalidPattern
		}
		w := f.postJSON(t, "/api/admin-login-pattern", gin.H{"pattern": "1-2-3"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "INVALID_PATTERN_SEQUENCE", decodeBody(t, w)["error"])
	})

	t.Run("pattern not configured is a server error", func(t *testing.T) {
		f := newRouterForTest(t)
		f.authSvc.LoginByPatternFunc = func(pattern string) error {
			return domain.ErrPatternNotConfigured
		}
		w := f.postJSON(t, "/api/admin-login-pattern", gin.H{"pattern": "1-2-3"})
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "SERVER_CONFIG_ERROR", decodeBody(t, w)["error"])
	})
}

func TestRecoveryEndpoints(t *testing.T) {
	t.Run("unknown user on send", func(t *testing.T) {
		f := newRouterForTest(t)
		f.authSvc.RequestRecoveryOTPFunc = func(ctx context.Context, userID, email string) error {
			return domain.ErrUserNotFound
		}
		w := f.postJSON(t, "/api/recover/send-otp", gin.H{"userId": "ghost", "email": "a@x.com"})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("reset pin", func(t *testing.T) {
		f := newRouterForTest(t)
		var gotNewPIN string
		f.authSvc.ResetPINFunc = func(ctx context.Context, userID, code, newPIN string) error {
			gotNewPIN = newPIN
			return nil
		}
		w := f.postJSON(t, "/api/recover/reset-pin", gin.H{"userId": "u1", "otp": "111111", "pin": "654321"})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "654321", gotNewPIN)
	})

	t.Run("unauthorized reset", func(t *testing.T) {
		f := newRouterForTest(t)
		f.authSvc.ResetPINFunc = func(ctx context.Context, userID, code, newPIN string) error {
			return domain.ErrUnauthorized
		}
		w := f.postJSON(t, "/api/recover/reset-pin", gin.H{"userId": "u1", "otp": "111111", "pin": "654321"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func multipartUpload(t *testing.T, userID, fileName, content string) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	require.NoError(t, mw.WriteField("userId", userID))
	fw, err := mw.CreateFormFile("file", fileName)
	require.NoError(t, err)
	_, err = fw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return buf, mw.FormDataContentType()
}

func TestUploadEndpoint(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := newRouterForTest(t)
		expiry := time.Now().Add(12 * time.Hour)
		f.contentSvc.UploadFunc = func(ctx context.Context, userID, fileName, contentType string, size int64, body io.Reader) (*domain.ContentItem, error) {
			return &domain.ContentItem{
				ID: 1, OwnerID: userID, FileName: fileName, BackingRef: "k1",
				ResourceKind: "image", SizeBytes: size, ExpiresAt: &expiry,
			}, nil
		}

		body, contentType := multipartUpload(t, "u1", "photo.jpg", "bytes")
		req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		f.router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		resp := decodeBody(t, w)
		file := resp["file"].(map[string]any)
		assert.Equal(t, "u1", file["userId"])
		assert.Equal(t, "photo.jpg", file["fileName"])
	})

	t.Run("quota exceeded", func(t *testing.T) {
		f := newRouterForTest(t)
		f.contentSvc.UploadFunc = func(ctx context.Context, userID, fileName, contentType string, size int64, body io.Reader) (*domain.ContentItem, error) {
			return nil, domain.ErrQuotaExceeded
		}

		body, contentType := multipartUpload(t, "u1", "big.bin", strings.Repeat("x", 64))
		req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		f.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "Your allowed storage is full. Upgrade required.", decodeBody(t, w)["error"])
	})

	t.Run("missing userId", func(t *testing.T) {
		f := newRouterForTest(t)
		body, contentType := multipartUpload(t, "", "a.txt", "x")
		req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		f.router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestFileEndpoints(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		f := newRouterForTest(t)
		f.contentSvc.ListFunc = func(ctx context.Context, userID string) ([]*domain.ContentItem, error) {
			return []*domain.ContentItem{
				{ID: 1, OwnerID: userID, FileName: "a.jpg", BackingRef: "k1"},
				{ID: 2, OwnerID: userID, FileName: "b.mp4", BackingRef: "k2"},
			}, nil
		}

		w := f.do(t, http.MethodGet, "/api/files/u1")
		require.Equal(t, http.StatusOK, w.Code)
		files := decodeBody(t, w)["files"].([]any)
		assert.Len(t, files, 2)
	})

	t.Run("delete by record id", func(t *testing.T) {
		f := newRouterForTest(t)
		var gotID uint
		f.contentSvc.DeleteFunc = func(ctx context.Context, id uint) error {
			gotID = id
			return nil
		}

		w := f.do(t, http.MethodDelete, "/api/files/7")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, uint(7), gotID)
	})

	t.Run("delete rejects a non-numeric id", func(t *testing.T) {
		f := newRouterForTest(t)
		f.contentSvc.DeleteFunc = func(ctx context.Context, id uint) error {
			t.Fatal("malformed ids must be rejected before the service is reached")
			return nil
		}

		// Backing refs are slash-separated object keys, not usable as a
		// route parameter; only the numeric record id is accepted here.
		w := f.do(t, http.MethodDelete, "/api/files/report_abc123.pdf")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("usage", func(t *testing.T) {
		f := newRouterForTest(t)
		f.contentSvc.UsageFunc = func(ctx context.Context, userID string) (*domain.UsageSummary, error) {
			return &domain.UsageSummary{UserID: userID, Role: domain.RoleStandard, StorageUsed: 2048, Limit: 5 * 1024 * 1024}, nil
		}

		w := f.do(t, http.MethodGet, "/api/user/u1")
		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, float64(2048), body["storageUsed"])
		assert.Equal(t, "standard", body["role"])
	})
}

func TestNoteEndpoints(t *testing.T) {
	t.Run("create", func(t *testing.T) {
		f := newRouterForTest(t)
		w := f.postJSON(t, "/api/notes", gin.H{"userId": "u1", "title": "groceries"})
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("update missing note", func(t *testing.T) {
		f := newRouterForTest(t)
		f.noteSvc.UpdateFunc = func(ctx context.Context, id uint, content string) (*domain.Note, error) {
			return nil, domain.ErrNoteNotFound
		}
		req := httptest.NewRequest(http.MethodPut, "/api/notes/42", strings.NewReader(`{"content":"x"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		f.router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("non-numeric note id", func(t *testing.T) {
		f := newRouterForTest(t)
		w := f.do(t, http.MethodDelete, "/api/notes/abc")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPurgeEndpoints(t *testing.T) {
	t.Run("purge all content", func(t *testing.T) {
		f := newRouterForTest(t)
		var purged string
		f.purgeSvc.PurgeContentFunc = func(ctx context.Context, userID string) error {
			purged = userID
			return nil
		}

		w := f.do(t, http.MethodPost, "/api/purge-all/u1")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "u1", purged)
		assert.Equal(t, "NUCLEAR_SWEEP_COMPLETE", decodeBody(t, w)["message"])
	})

	t.Run("request destruction token", func(t *testing.T) {
		f := newRouterForTest(t)
		w := f.do(t, http.MethodPost, "/api/request-purge-account-otp/u1")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "DESTRUCTION_TOKEN_TRANSMITTED", decodeBody(t, w)["message"])
	})

	t.Run("purge account with valid token", func(t *testing.T) {
		f := newRouterForTest(t)
		var gotCode string
		f.purgeSvc.PurgeAccountFunc = func(ctx context.Context, userID, code string) error {
			gotCode = code
			return nil
		}

		w := f.postJSON(t, "/api/purge-account/u1", gin.H{"otp": "111111"})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "111111", gotCode)
		assert.Equal(t, "ENTITY_DELETED_PERMANENTLY", decodeBody(t, w)["message"])
	})

	t.Run("purge account with bad token", func(t *testing.T) {
		f := newRouterForTest(t)
		f.purgeSvc.PurgeAccountFunc = func(ctx context.Context, userID, code string) error {
			return domain.ErrInvalidOrExpiredToken
		}

		w := f.postJSON(t, "/api/purge-account/u1", gin.H{"otp": "999999"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAdminEndpoints(t *testing.T) {
	t.Run("stats", func(t *testing.T) {
		f := newRouterForTest(t)
		f.adminSvc.StatsFunc = func(ctx context.Context) (*domain.SystemStats, error) {
			return &domain.SystemStats{
				TotalUsers: 5,
				UsersByRole: map[domain.Role]int64{
					domain.RoleStandard:   3,
					domain.RoleElevated:   1,
					domain.RolePrivileged: 1,
				},
				StorageUsed:  1000,
				StorageLimit: 10 * 1024 * 1024 * 1024,
				StorageFree:  10*1024*1024*1024 - 1000,
			}, nil
		}

		w := f.do(t, http.MethodGet, "/api/admin/stats")
		require.Equal(t, http.StatusOK, w.Code)

		stats := decodeBody(t, w)["stats"].(map[string]any)
		assert.Equal(t, float64(5), stats["totalUsers"])
		roles := stats["roles"].(map[string]any)
		assert.Equal(t, float64(3), roles["standard"])
		storage := stats["storage"].(map[string]any)
		assert.Equal(t, float64(1000), storage["used"])
	})

	t.Run("stats failure", func(t *testing.T) {
		f := newRouterForTest(t)
		f.adminSvc.StatsFunc = func(ctx context.Context) (*domain.SystemStats, error) {
			return nil, errors.New("db down")
		}

		w := f.do(t, http.MethodGet, "/api/admin/stats")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("users list omits credential material", func(t *testing.T) {
		f := newRouterForTest(t)
		f.adminSvc.UsersFunc = func(ctx context.Context) ([]*domain.User, error) {
			return []*domain.User{{UserID: "u1", Email: "a@x.com", Role: domain.RoleStandard, PINHash: "secret-hash"}}, nil
		}

		w := f.do(t, http.MethodGet, "/api/admin/users")
		require.Equal(t, http.StatusOK, w.Code)
		assert.NotContains(t, w.Body.String(), "secret-hash")
	})

	t.Run("operator delete user", func(t *testing.T) {
		f := newRouterForTest(t)
		var deleted string
		f.purgeSvc.DeleteUserFunc = func(ctx context.Context, userID string) error {
			deleted = userID
			return nil
		}

		w := f.do(t, http.MethodPost, "/api/admin/delete-user/u1")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "u1", deleted)
	})

	t.Run("operator delete unknown user", func(t *testing.T) {
		f := newRouterForTest(t)
		f.purgeSvc.DeleteUserFunc = func(ctx context.Context, userID string) error {
			return domain.ErrUserNotFound
		}

		w := f.do(t, http.MethodPost, "/api/admin/delete-user/ghost")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
