package httpapi_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Bishopxxx/Bishop-blog/internal/adapters/httpapi"
	"github.com/Bishopxxx/Bishop-blog/internal/config"
	postEntity "github.com/Bishopxxx/Bishop-blog/internal/core/post"
	sessionEntity "github.com/Bishopxxx/Bishop-blog/internal/core/session"
	userEntity "github.com/Bishopxxx/Bishop-blog/internal/core/user"
)

var errStorage = errors.New("storage unavailable")

// brokenPostStore reads fine but fails every mutation, like a database
// whose transactions stopped committing.
type brokenPostStore struct {
	post *postEntity.Post
}

func (s *brokenPostStore) Create(context.Context, string, string, uint) (*postEntity.Post, error) {
	return nil, errStorage
}

func (s *brokenPostStore) List(context.Context) ([]*postEntity.Post, error) {
	return []*postEntity.Post{s.post}, nil
}

func (s *brokenPostStore) Get(context.Context, uint) (*postEntity.Post, error) {
	return s.post, nil
}

func (s *brokenPostStore) Update(context.Context, uint, string, string) (*postEntity.Post, error) {
	return nil, errStorage
}

func (s *brokenPostStore) Delete(context.Context, uint) error {
	return errStorage
}

type stubUsers struct{}

func (stubUsers) Register(context.Context, string, string, string, string, string) (*userEntity.User, error) {
	return nil, errors.New("not used")
}

func (stubUsers) Authenticate(context.Context, string, string) (*userEntity.User, error) {
	return nil, errors.New("not used")
}

// stubSessions treats one fixed token as a live session for its user.
type stubSessions struct {
	u *userEntity.User
}

func (stubSessions) Start(context.Context, sessionEntity.Identifiable) (string, error) {
	return "tok", nil
}

func (stubSessions) Destroy(context.Context, string) error { return nil }

func (s stubSessions) Resolve(_ context.Context, token string) (*userEntity.User, error) {
	if token == "tok" {
		return s.u, nil
	}
	return nil, nil
}

func newBrokenApp() http.Handler {
	cfg := &config.Config{
		Env:        "test",
		CookieName: "blog_session",
		SessionTTL: time.Hour,
	}
	alice := &userEntity.User{ID: 1, Username: "a", Firstname: "Ada", Lastname: "Lovelace", Email: "a@x.com"}
	existing := &postEntity.Post{ID: 1, Title: "Hi", Content: "World", AuthorID: 1, Author: *alice}
	return httpapi.SetupRoutes(cfg, zap.NewNop(), stubUsers{}, &brokenPostStore{post: existing}, stubSessions{u: alice})
}

func sessionCookie() *http.Cookie {
	return &http.Cookie{Name: "blog_session", Value: "tok"}
}

func TestEditStorageFailureReShowsForm(t *testing.T) {
	r := newBrokenApp()

	form := url.Values{"title": {"New title"}, "content": {"New content"}}
	req := httptest.NewRequest(http.MethodPost, "/edit/1", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(sessionCookie())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	// A failed update must not redirect as success: the form comes back
	// with the submitted values and a visible message.
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Empty(t, w.Header().Get("Location"))
	body := w.Body.String()
	assert.Contains(t, body, "Could not save the post")
	assert.Contains(t, body, "New title")
	assert.Contains(t, body, "New content")
}

func TestDeleteStorageFailureReportsInsteadOfSilentSuccess(t *testing.T) {
	r := newBrokenApp()

	req := httptest.NewRequest(http.MethodGet, "/delete/1", nil)
	req.AddCookie(sessionCookie())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	var flash *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == "blog_flash" {
			flash = c
		}
	}
	require.NotNil(t, flash, "a delete failure must leave a visible notice")

	// Following the redirect shows the notice on the next page.
	next := httptest.NewRequest(http.MethodGet, "/", nil)
	next.AddCookie(sessionCookie())
	next.AddCookie(&http.Cookie{Name: flash.Name, Value: flash.Value})
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, next)

	assert.Equal(t, http.StatusOK, w2.Code)
	assert.Contains(t, w2.Body.String(), "Could not delete the post")
}

func TestCreateStorageFailureRendersErrorPage(t *testing.T) {
	r := newBrokenApp()

	form := url.Values{"title": {"Hi"}, "content": {"World"}}
	req := httptest.NewRequest(http.MethodPost, "/create", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(sessionCookie())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Empty(t, w.Header().Get("Location"))
	assert.Contains(t, w.Body.String(), "Something went wrong")
}
