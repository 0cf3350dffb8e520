package api_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lumibond/corkboard/server"
	"github.com/lumibond/corkboard/server/api"
	"github.com/lumibond/corkboard/server/middlewares"
	"github.com/lumibond/corkboard/utils"
	"github.com/stretchr/testify/require"
)

type sessionResponse struct {
	User struct {
		Id    string  `json:"id"`
		Name  *string `json:"name"`
		Email string  `json:"email"`
	} `json:"user"`
	Token string `json:"token"`
}

// newSessionTestServer is newTestServer with the real session middleware
// attached, for exercising the token path end to end.
func newSessionTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	db := utils.CreateTempDB(t)
	router := gin.New()
	router.Use(middlewares.Session())
	server.RegisterRoutes(router, api.New(db, time.Hour))
	return router
}

func TestSignUp(t *testing.T) {
	router := newSessionTestServer(t)

	t.Run("missing fields", func(t *testing.T) {
		w := doRequest(t, router, "POST", "/auth/signup", map[string]string{"email": "a@example.com"}, "")
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("creates the account and issues a session", func(t *testing.T) {
		w := doRequest(t, router, "POST", "/auth/signup",
			map[string]string{"name": "alice", "email": "alice@example.com", "password": "hunter22"}, "")
		require.Equal(t, http.StatusCreated, w.Code)

		var resp sessionResponse
		decodeBody(t, w, &resp)
		require.NotEmpty(t, resp.User.Id)
		require.Equal(t, "alice", *resp.User.Name)
		require.NotEmpty(t, resp.Token)
		require.NotContains(t, w.Body.String(), "hunter22")
	})

	t.Run("duplicate email", func(t *testing.T) {
		w := doRequest(t, router, "POST", "/auth/signup",
			map[string]string{"email": "alice@example.com", "password": "another"}, "")
		require.Equal(t, http.StatusConflict, w.Code)
		require.Equal(t, "email already registered", errorMessage(t, w))
	})
}

func TestSignIn(t *testing.T) {
	router := newSessionTestServer(t)

	w := doRequest(t, router, "POST", "/auth/signup",
		map[string]string{"email": "alice@example.com", "password": "hunter22"}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	t.Run("wrong password", func(t *testing.T) {
		w := doRequest(t, router, "POST", "/auth/signin",
			map[string]string{"email": "alice@example.com", "password": "wrong"}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
		require.Equal(t, "invalid email or password", errorMessage(t, w))
	})

	t.Run("unknown email", func(t *testing.T) {
		w := doRequest(t, router, "POST", "/auth/signin",
			map[string]string{"email": "nobody@example.com", "password": "hunter22"}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid credentials", func(t *testing.T) {
		w := doRequest(t, router, "POST", "/auth/signin",
			map[string]string{"email": "alice@example.com", "password": "hunter22"}, "")
		require.Equal(t, http.StatusOK, w.Code)

		var resp sessionResponse
		decodeBody(t, w, &resp)
		require.NotEmpty(t, resp.Token)
	})
}

func TestSessionMiddleware(t *testing.T) {
	router := newSessionTestServer(t)

	w := doRequest(t, router, "POST", "/auth/signup",
		map[string]string{"email": "alice@example.com", "password": "hunter22"}, "")
	require.Equal(t, http.StatusCreated, w.Code)
	var session sessionResponse
	decodeBody(t, w, &session)

	post := func(token, spoofedSub string) *httptest.ResponseRecorder {
		req := httptest.NewRequest("POST", "/posts",
			strings.NewReader(`{"title":"t","content":"c"}`))
		req.Header.Set("Content-Type", "application/json")
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		if spoofedSub != "" {
			req.Header.Set("sub", spoofedSub)
		}
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	t.Run("bearer token resolves the caller", func(t *testing.T) {
		rec := post(session.Token, "")
		require.Equal(t, http.StatusCreated, rec.Code)
		require.Contains(t, rec.Body.String(), session.User.Id)
	})

	t.Run("no token means anonymous", func(t *testing.T) {
		rec := post("", "")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token means anonymous", func(t *testing.T) {
		rec := post("not.a.token", "")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("client-supplied sub header is stripped", func(t *testing.T) {
		rec := post("", session.User.Id)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("expired token means anonymous", func(t *testing.T) {
		expired, err := middlewares.MintSessionToken(session.User.Id, -time.Minute)
		require.Nil(t, err)
		rec := post(expired, "")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
