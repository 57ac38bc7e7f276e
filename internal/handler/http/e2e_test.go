// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-user-profile/internal/config"
	"github.com/MKhiriev/go-user-profile/internal/logger"
	"github.com/MKhiriev/go-user-profile/internal/service"
	"github.com/MKhiriev/go-user-profile/internal/store"
	"github.com/MKhiriev/go-user-profile/models"
	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// memoryObjects keeps uploads in memory and signs links without a network.
type memoryObjects struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func (m *memoryObjects) Upload(ctx context.Context, bucket, key string, body io.ReadSeeker, size int64, contentType string) error {
	b, err := io.ReadAll(body)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[bucket+"/"+key] = b
	return nil
}

func (m *memoryObjects) PresignGet(ctx context.Context, bucket, key string, expires time.Duration) (string, error) {
	return fmt.Sprintf("https://%s.objects.test/%s?expires=%d", bucket, key, int(expires.Seconds())), nil
}

type e2eApp struct {
	client  *resty.Client
	db      *store.DB
	objects *memoryObjects
}

func newE2EApp(t *testing.T) e2eApp {
	t.Helper()
	ctx := context.Background()
	log := logger.Nop()

	cfg := config.StructuredConfig{
		App: config.App{PasswordHashCost: bcrypt.MinCost},
		Storage: config.Storage{
			DB: config.DB{Driver: "sqlite3", DSN: filepath.Join(t.TempDir(), "users.db")},
			Objects: config.Objects{
				Bucket:     "profiles",
				Prefix:     "uploads",
				URLExpires: 300 * time.Second,
			},
		},
		Server: config.Server{
			HTTPAddress:    "127.0.0.1:0",
			RequestTimeout: 10 * time.Second,
			MaxUploadSize:  1 << 20,
		},
		Session: config.Session{
			Backend:    service.SessionBackendCookie,
			CookieName: "session",
			SignKey:    "e2e-key",
			Issuer:     "go-user-profile",
			Duration:   time.Hour,
		},
	}

	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.Migrate(ctx))

	objects := &memoryObjects{objects: map[string][]byte{}}
	storages := &store.Storages{
		DB:             db,
		UserRepository: store.NewUserRepository(db, log),
		ObjectStorage:  objects,
	}

	services, err := service.NewServices(ctx, storages, cfg, models.NewAppBuildInfo("1.0.0", "", ""), log)
	require.NoError(t, err)

	h, err := NewHandler(services, db, cfg, log)
	require.NoError(t, err)

	srv := httptest.NewServer(h.Init())
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	client := resty.New().
		SetBaseURL(srv.URL).
		SetCookieJar(jar).
		SetRedirectPolicy(resty.RedirectPolicyFunc(func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		}))

	return e2eApp{client: client, db: db, objects: objects}
}

func (a e2eApp) register(t *testing.T, form map[string]string) *resty.Response {
	t.Helper()
	resp, err := a.client.R().SetFormData(form).Post("/register")
	require.NoError(t, err)
	return resp
}

func (a e2eApp) signIn(t *testing.T, username, password string) *resty.Response {
	t.Helper()
	resp, err := a.client.R().
		SetFormData(map[string]string{"username": username, "password": password}).
		Post("/signin")
	require.NoError(t, err)
	return resp
}

func (a e2eApp) get(t *testing.T, path string) *resty.Response {
	t.Helper()
	resp, err := a.client.R().Get(path)
	require.NoError(t, err)
	return resp
}

func registrationForm(username, password, confirm string) map[string]string {
	return map[string]string{
		"username":         username,
		"password":         password,
		"confirm_password": confirm,
		"first_name":       "First",
		"last_name":        "Last",
		"email":            username + "@x.com",
	}
}

func TestE2E_RegisterSignInProfileSignOut(t *testing.T) {
	app := newE2EApp(t)

	resp := app.get(t, "/profile")
	assert.Equal(t, http.StatusFound, resp.StatusCode())
	assert.Equal(t, "/", resp.Header().Get("Location"))

	resp = app.register(t, registrationForm("alice", "pw1", "pw1"))
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode())
	assert.Equal(t, "/", resp.Header().Get("Location"))

	var wordcount *int64
	require.NoError(t, app.db.QueryRowContext(context.Background(),
		"SELECT wordcount FROM users WHERE username = ?", "alice").Scan(&wordcount))
	assert.Nil(t, wordcount)

	resp = app.signIn(t, "alice", "pw1")
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode())
	assert.Equal(t, "/profile", resp.Header().Get("Location"))

	resp = app.get(t, "/profile")
	require.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Contains(t, resp.String(), "alice@x.com")
	assert.Contains(t, resp.String(), "N/A")
	assert.NotContains(t, resp.String(), `class="download"`)

	resp = app.get(t, "/signout")
	assert.Equal(t, http.StatusFound, resp.StatusCode())

	resp = app.get(t, "/profile")
	assert.Equal(t, http.StatusFound, resp.StatusCode())
	assert.Equal(t, "/", resp.Header().Get("Location"))

	// signing out twice is harmless
	resp = app.get(t, "/signout")
	assert.Equal(t, http.StatusFound, resp.StatusCode())
}

func TestE2E_RegisterWithFile(t *testing.T) {
	app := newE2EApp(t)

	resp, err := app.client.R().
		SetFormData(registrationForm("bob", "pw", "pw")).
		SetFileReader("upload", "my notes.txt", strings.NewReader("one two three")).
		Post("/register")
	require.NoError(t, err)
	require.Equal(t, http.StatusSeeOther, resp.StatusCode())

	assert.Equal(t, []byte("one two three"), app.objects.objects["profiles/uploads/bob/my_notes.txt"])

	resp = app.signIn(t, "bob", "pw")
	require.Equal(t, http.StatusSeeOther, resp.StatusCode())

	resp = app.get(t, "/profile")
	require.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Contains(t, resp.String(), "3 words")
	assert.Contains(t, resp.String(), "https://profiles.objects.test/uploads/bob/my_notes.txt?expires=300")
}

func TestE2E_RegistrationErrors(t *testing.T) {
	app := newE2EApp(t)

	resp := app.register(t, registrationForm("alice", "pw1", "pw2"))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode())
	assert.Contains(t, resp.String(), "Passwords do not match.")

	resp = app.register(t, registrationForm("alice", "pw1", "pw1"))
	require.Equal(t, http.StatusSeeOther, resp.StatusCode())

	resp = app.register(t, registrationForm("  alice ", "other", "other"))
	assert.Equal(t, http.StatusConflict, resp.StatusCode())
	assert.Contains(t, resp.String(), "Username already exists.")

	resp = app.register(t, registrationForm("a/b", "pw", "pw"))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode())

	var count int
	require.NoError(t, app.db.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM users").Scan(&count))
	assert.Equal(t, 1, count)
}

func TestE2E_SignInErrorsLookAlike(t *testing.T) {
	app := newE2EApp(t)

	require.Equal(t, http.StatusSeeOther, app.register(t, registrationForm("alice", "pw1", "pw1")).StatusCode())

	wrongPassword := app.signIn(t, "alice", "nope")
	unknownUser := app.signIn(t, "nobody", "pw1")

	for _, resp := range []*resty.Response{wrongPassword, unknownUser} {
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode())
		assert.Contains(t, resp.String(), "Invalid username or password.")
	}
	assert.Equal(t, wrongPassword.String(), unknownUser.String())
}

func TestE2E_StaleSession(t *testing.T) {
	app := newE2EApp(t)

	require.Equal(t, http.StatusSeeOther, app.register(t, registrationForm("carol", "pw", "pw")).StatusCode())
	require.Equal(t, http.StatusSeeOther, app.signIn(t, "carol", "pw").StatusCode())

	_, err := app.db.ExecContext(context.Background(), "DELETE FROM users WHERE username = ?", "carol")
	require.NoError(t, err)

	resp := app.get(t, "/profile")
	assert.Equal(t, http.StatusFound, resp.StatusCode())
	assert.Equal(t, "/", resp.Header().Get("Location"))

	resp = app.get(t, "/")
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.NotContains(t, resp.String(), "Signed in as")
}

func TestE2E_Version(t *testing.T) {
	app := newE2EApp(t)

	resp := app.get(t, "/version")
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, "1.0.0", resp.String())
}
