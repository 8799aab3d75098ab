package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/sbilibin2017/gw-bookmarker/internal/config"
	"github.com/sbilibin2017/gw-bookmarker/internal/jwt"
	"github.com/sbilibin2017/gw-bookmarker/internal/models"
	"github.com/sbilibin2017/gw-bookmarker/internal/response"
	"github.com/sbilibin2017/gw-bookmarker/internal/services"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	assert.Equal(t, "config.env", parseFlags())
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	assert.Equal(t, "myconfig.env", parseFlags())
}

func TestPrintBuildInfo_Output(t *testing.T) {
	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2025-09-26"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	os.Stdout = oldStdout

	output := buf.String()
	assert.Contains(t, output, "version v1.0.0")
	assert.Contains(t, output, "commit abcd1234")
	assert.Contains(t, output, "build 2025-09-26")
}

const testSecret = "test-secret"

func testConfig() *config.Config {
	return &config.Config{
		JWTSecretKey:       testSecret,
		JWTExp:             time.Hour,
		BcryptCost:         4,
		GoogleBooksURL:     "http://127.0.0.1:1",
		NYTBooksURL:        "http://127.0.0.1:1",
		NYTListName:        "hardcover-fiction",
		CatalogTimeout:     time.Second,
		AuthRateLimitRPS:   0.001,
		AuthRateLimitBurst: 2,
	}
}

// newTestRouter builds the full router over a sqlmock database.
func newTestRouter(t *testing.T) (http.Handler, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db := sqlx.NewDb(sqlDB, "sqlmock")
	a := newApp(testConfig(), db, nil, services.NewEventPublisher(nil))
	t.Cleanup(a.authLimiter.Stop)
	return newRouter(a), mock
}

func bearer(t *testing.T, username string) string {
	t.Helper()

	token, err := jwt.New(testSecret, time.Hour).Generate(context.Background(), username)
	require.NoError(t, err)
	return "Bearer " + token
}

func do(h http.Handler, method, target, auth, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorBody {
	t.Helper()

	var env response.ErrorEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env.Error
}

func TestRouter_UnknownRoute(t *testing.T) {
	h, _ := newTestRouter(t)

	rec := do(h, http.MethodGet, "/nope", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, http.StatusNotFound, errorBody(t, rec).Status)
}

func TestRouter_OwnerRoutesRejectOtherCallers(t *testing.T) {
	tests := []struct {
		name   string
		method string
		target string
		auth   string
	}{
		{"anonymous profile", http.MethodGet, "/users/u1", ""},
		{"other user profile", http.MethodGet, "/users/u1", "u2"},
		{"garbage token", http.MethodDelete, "/users/u1", "raw:Bearer nope"},
		{"save for someone else", http.MethodPost, "/savedbooks/v1/user/u1", "u2"},
		{"read shelf", http.MethodGet, "/savedbooks/read/user/u1", ""},
		{"wish shelf", http.MethodGet, "/savedbooks/wish/user/u1", "u2"},
		{"aggregate", http.MethodGet, "/savedbooks/v1/user/u1", "u2"},
		{"review", http.MethodPost, "/reviews/v1/user/u1", "u2"},
		{"edit review", http.MethodPatch, "/reviews/id/1/user/u1", ""},
		{"rating", http.MethodGet, "/ratings/v1/user/u1", "u2"},
		{"delete rating", http.MethodDelete, "/ratings/id/1/user/u1", "u2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, mock := newTestRouter(t)

			auth := tt.auth
			switch {
			case strings.HasPrefix(auth, "raw:"):
				auth = strings.TrimPrefix(auth, "raw:")
			case auth != "":
				auth = bearer(t, auth)
			}

			rec := do(h, tt.method, tt.target, auth, `{}`)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "Please sign up or log in", errorBody(t, rec).Message)

			// the guard runs before any transaction or query
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRouter_GetUser(t *testing.T) {
	h, mock := newTestRouter(t)

	mock.ExpectQuery("FROM users").
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password", "email"}).
			AddRow(7, "u1", "hash", "u1@x.com"))
	mock.ExpectQuery("FROM saved_books").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"volume_id"}).AddRow("v1").AddRow("v2"))

	rec := do(h, http.MethodGet, "/users/u1", bearer(t, "u1"), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"user":{"id":7,"username":"u1","email":"u1@x.com","volume_ids":["v1","v2"]}}`, rec.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRouter_UpdateUserCommits(t *testing.T) {
	h, mock := newTestRouter(t)

	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE users").
		WithArgs("new@x.com", "u1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password", "email"}).
			AddRow(7, "u1", "hash", "new@x.com"))
	mock.ExpectCommit()

	rec := do(h, http.MethodPatch, "/users/u1", bearer(t, "u1"), `{"email":"new@x.com"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"updatedUser":{"id":7,"username":"u1","email":"new@x.com"}}`, rec.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRouter_UpdateUserRollsBackOnFailure(t *testing.T) {
	h, mock := newTestRouter(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	rec := do(h, http.MethodPatch, "/users/u1", bearer(t, "u1"), `{"email":"not-an-email"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRouter_PublicRoutes(t *testing.T) {
	h, mock := newTestRouter(t)

	mock.ExpectQuery("FROM reviews").
		WithArgs("v1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "volume_id", "comment", "created_at", "username"}))

	rec := do(h, http.MethodGet, "/reviews/v1", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"allReviews":[]}`, rec.Body.String())

	rec = do(h, http.MethodGet, "/books?term=", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(h, http.MethodGet, "/swagger/doc.json", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/savedbooks/{volumeID}/user/{username}")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRouter_AuthRoutesAreRateLimited(t *testing.T) {
	h, _ := newTestRouter(t)

	for i := 0; i < 2; i++ {
		rec := do(h, http.MethodPost, "/users/login", "", `{}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	}

	rec := do(h, http.MethodPost, "/users/login", "", `{}`)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "Too many requests, please try again later", errorBody(t, rec).Message)
}

var (
	userColumns      = []string{"id", "username", "password", "email"}
	savedBookColumns = []string{"id", "user_id", "volume_id", "title", "author", "publisher",
		"category", "description", "image", "has_read", "created_at"}
	reviewColumns = []string{"id", "user_id", "volume_id", "comment", "created_at"}
)

func TestRouter_RegisterLoginSaveAndReadBack(t *testing.T) {
	h, mock := newTestRouter(t)
	savedAt := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	hash, err := bcrypt.GenerateFromPassword([]byte("pw1"), bcrypt.MinCost)
	require.NoError(t, err)

	// register
	mock.ExpectBegin()
	mock.ExpectQuery("FROM users").WithArgs("u1").WillReturnRows(sqlmock.NewRows(userColumns))
	mock.ExpectQuery("INSERT INTO users").
		WithArgs("u1", sqlmock.AnyArg(), "u1@x.com").
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(1, "u1", string(hash), "u1@x.com"))
	mock.ExpectCommit()

	rec := do(h, http.MethodPost, "/users/register", "",
		`{"username":"u1","password":"pw1","email":"u1@x.com"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	// login
	mock.ExpectQuery("FROM users").WithArgs("u1").
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(1, "u1", string(hash), "u1@x.com"))

	rec = do(h, http.MethodPost, "/users/login", "", `{"username":"u1","password":"pw1"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &login))
	require.NotEmpty(t, login.Token)
	auth := "Bearer " + login.Token

	// save volume 42, sent as a JSON number
	mock.ExpectBegin()
	mock.ExpectQuery("FROM users").WithArgs("u1").
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(1, "u1", string(hash), "u1@x.com"))
	mock.ExpectQuery("FROM saved_books").WithArgs(int64(1), "42").
		WillReturnRows(sqlmock.NewRows(savedBookColumns))
	mock.ExpectQuery("INSERT INTO saved_books").
		WithArgs(int64(1), "42", "t1", "a1", "", "", "", "", true).
		WillReturnRows(sqlmock.NewRows(savedBookColumns).
			AddRow(5, 1, "42", "t1", "a1", "", "", "", "", true, savedAt))
	mock.ExpectCommit()

	rec = do(h, http.MethodPost, "/savedbooks/42/user/u1", auth,
		`{"volume_id":42,"title":"t1","author":"a1","has_read":true}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var saved struct {
		SavedBook models.SavedBook `json:"savedBook"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &saved))
	assert.Equal(t, "42", saved.SavedBook.VolumeID)
	assert.True(t, saved.SavedBook.HasRead)

	// read the aggregate back
	mock.ExpectQuery("FROM users").WithArgs("u1").
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(1, "u1", string(hash), "u1@x.com"))
	mock.ExpectQuery("FROM saved_books").WithArgs(int64(1), "42").
		WillReturnRows(sqlmock.NewRows(savedBookColumns).
			AddRow(5, 1, "42", "t1", "a1", "", "", "", "", true, savedAt))
	mock.ExpectQuery("FROM reviews").WithArgs(int64(1), "42").
		WillReturnRows(sqlmock.NewRows(reviewColumns))
	mock.ExpectQuery("FROM ratings").WithArgs(int64(1), "42").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "volume_id", "rating", "created_at"}))

	rec = do(h, http.MethodGet, "/savedbooks/42/user/u1", auth, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var details map[string]map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &details))
	book := details["savedBook"]
	assert.Equal(t, "42", book["volume_id"])
	assert.Equal(t, true, book["has_read"])
	assert.Contains(t, book, "review")
	assert.Nil(t, book["review"])
	assert.Contains(t, book, "rating")
	assert.Nil(t, book["rating"])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRouter_TwoUsersReviewTheSameVolume(t *testing.T) {
	h, mock := newTestRouter(t)
	at := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	users := []struct {
		id       int64
		username string
		comment  string
	}{
		{1, "u1", "c1"},
		{2, "u2", "c2"},
	}

	for i, u := range users {
		mock.ExpectBegin()
		mock.ExpectQuery("FROM users").WithArgs(u.username).
			WillReturnRows(sqlmock.NewRows(userColumns).AddRow(u.id, u.username, "hash", u.username+"@x.com"))
		mock.ExpectQuery("FROM saved_books").WithArgs(u.id, "42").
			WillReturnRows(sqlmock.NewRows(savedBookColumns).
				AddRow(10+u.id, u.id, "42", "t1", "a1", "", "", "", "", false, at))
		mock.ExpectQuery("FROM reviews").WithArgs(u.id, "42").
			WillReturnRows(sqlmock.NewRows(reviewColumns))
		mock.ExpectQuery("INSERT INTO reviews").WithArgs(u.id, "42", u.comment).
			WillReturnRows(sqlmock.NewRows(reviewColumns).AddRow(i+1, u.id, "42", u.comment, at))
		mock.ExpectCommit()

		rec := do(h, http.MethodPost, "/reviews/42/user/"+u.username, bearer(t, u.username),
			`{"comment":"`+u.comment+`"}`)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		var created struct {
			Review models.Review `json:"review"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
		assert.Equal(t, u.id, created.Review.UserID)
		assert.Equal(t, u.comment, created.Review.Comment)
	}

	mock.ExpectQuery("FROM reviews").WithArgs("42").
		WillReturnRows(sqlmock.NewRows(append(reviewColumns, "username")).
			AddRow(1, 1, "42", "c1", at, "u1").
			AddRow(2, 2, "42", "c2", at, "u2"))

	rec := do(h, http.MethodGet, "/reviews/42", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var listed struct {
		AllReviews []models.VolumeReview `json:"allReviews"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Len(t, listed.AllReviews, 2)
	assert.Equal(t, "u1", listed.AllReviews[0].Username)
	assert.Equal(t, "u2", listed.AllReviews[1].Username)

	assert.NoError(t, mock.ExpectationsWereMet())
}
