package route

import (
	"FibonacciAPI/logger"
	"FibonacciAPI/mirror"
	"FibonacciAPI/models"
	"FibonacciAPI/repositories"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	client    *resty.Client
	store     *repositories.MemoryStore
	outputDir string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := repositories.NewMemoryStore()
	outputDir := filepath.Join(t.TempDir(), "output")

	router := NewRouter(Dependencies{
		Users:          store,
		Sessions:       store,
		Mirror:         mirror.NewDisk(outputDir),
		JWTSecret:      []byte("route-test-secret"),
		AccessTokenTTL: 20 * time.Minute,
		Log:            logger.Nop(),
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &testServer{
		client:    resty.New().SetBaseURL(srv.URL),
		store:     store,
		outputDir: outputDir,
	}
}

func (s *testServer) createUser(t *testing.T, username, password string) {
	t.Helper()
	resp, err := s.client.R().
		SetBody(map[string]string{"username": username, "name": username, "password": password}).
		Post("/auth/create_user")
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode(), resp.String())
}

func (s *testServer) login(t *testing.T, username, password string) string {
	t.Helper()
	var token models.TokenResponse
	resp, err := s.client.R().
		SetFormData(map[string]string{"username": username, "password": password}).
		SetResult(&token).
		Post("/auth/token")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode(), resp.String())
	require.Equal(t, "bearer", token.TokenType)
	require.NotEmpty(t, token.AccessToken)
	return token.AccessToken
}

func (s *testServer) compute(t *testing.T, token string, limit int64) *models.Session {
	t.Helper()
	var body models.SessionResponse
	resp, err := s.client.R().
		SetAuthToken(token).
		SetBody(map[string]int64{"upper_limit": limit}).
		SetResult(&body).
		Post("/fibonacci/fibbonacci")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode(), resp.String())
	require.NotNil(t, body.Session)
	return body.Session
}

func TestEndToEndScenario(t *testing.T) {
	s := newTestServer(t)

	s.createUser(t, "alice", "pw1")
	aliceToken := s.login(t, "alice", "pw1")

	session := s.compute(t, aliceToken, 10)
	assert.Equal(t, []int64{0, 1, 1, 2, 3, 5, 8}, session.Output)
	assert.Equal(t, int64(10), session.UpperLimit)
	assert.NotEmpty(t, session.SessionID)
	assert.NotEmpty(t, session.User)
	_, err := time.Parse(models.ExecutionDateLayout, session.ExecutionDate)
	assert.NoError(t, err)

	var fetched models.Session
	resp, err := s.client.R().
		SetAuthToken(aliceToken).
		SetResult(&fetched).
		Get("/fibonacci/session_by_id/" + session.SessionID)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, *session, fetched)

	// mirror file holds the same record
	data, err := os.ReadFile(filepath.Join(s.outputDir, session.User, session.SessionID+".json"))
	require.NoError(t, err)
	var mirrored models.Session
	require.NoError(t, json.Unmarshal(data, &mirrored))
	assert.Equal(t, *session, mirrored)

	s.createUser(t, "bob", "pw2")
	bobToken := s.login(t, "bob", "pw2")

	resp, err = s.client.R().
		SetAuthToken(bobToken).
		Delete("/fibonacci/session/" + session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode())
	assert.JSONEq(t, `{"message":"Forbidden, not your session"}`, resp.String())

	resp, err = s.client.R().
		SetAuthToken(aliceToken).
		Get("/fibonacci/session_by_id/" + session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode(), "record survives a forbidden delete")

	resp, err = s.client.R().
		SetAuthToken(aliceToken).
		Delete("/fibonacci/session/" + session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.JSONEq(t, `{"status":200,"transaction":"Successful"}`, resp.String())

	resp, err = s.client.R().
		SetAuthToken(aliceToken).
		Get("/fibonacci/session_by_id/" + session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode())
	assert.JSONEq(t, `{"message":"No session found"}`, resp.String())
}

func TestLoginFailures(t *testing.T) {
	s := newTestServer(t)
	s.createUser(t, "alice", "pw1")

	for _, creds := range []map[string]string{
		{"username": "alice", "password": "wrong"},
		{"username": "nobody", "password": "pw1"},
	} {
		resp, err := s.client.R().SetFormData(creds).Post("/auth/token")
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode())
		assert.Equal(t, "Bearer", resp.Header().Get("WWW-Authenticate"))
		assert.JSONEq(t, `{"message":"Incorrect username or password"}`, resp.String())
	}

	resp, err := s.client.R().SetFormData(map[string]string{"username": "alice"}).Post("/auth/token")
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode())
}

func TestCreateUserValidation(t *testing.T) {
	s := newTestServer(t)

	resp, err := s.client.R().
		SetBody(map[string]string{"username": "alice"}).
		Post("/auth/create_user")
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode())

	s.createUser(t, "alice", "pw1")
	resp, err = s.client.R().
		SetBody(map[string]string{"username": "alice", "name": "Other", "password": "pw9"}).
		Post("/auth/create_user")
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode())
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	s := newTestServer(t)

	requests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/fibonacci/fibbonacci"},
		{http.MethodGet, "/fibonacci/sessions_by_user/"},
		{http.MethodGet, "/fibonacci/session_by_id/abc"},
		{http.MethodDelete, "/fibonacci/session/abc"},
	}

	for _, r := range requests {
		resp, err := s.client.R().Execute(r.method, r.path)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode(), r.path)
		assert.Equal(t, "Bearer", resp.Header().Get("WWW-Authenticate"), r.path)

		resp, err = s.client.R().SetAuthToken("garbage").Execute(r.method, r.path)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode(), r.path)
		assert.JSONEq(t, `{"message":"Could not validate credentials"}`, resp.String())
	}
}

func TestListingEndpoints(t *testing.T) {
	s := newTestServer(t)

	resp, err := s.client.R().Get("/fibonacci/all_sessions")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode())
	assert.JSONEq(t, `{"message":"No sessions found"}`, resp.String())

	resp, err = s.client.R().Get("/fibonacci/all_users")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode())
	assert.JSONEq(t, `{"message":"No users found"}`, resp.String())

	s.createUser(t, "alice", "pw1")
	s.createUser(t, "bob", "pw2")
	aliceToken := s.login(t, "alice", "pw1")
	bobToken := s.login(t, "bob", "pw2")

	resp, err = s.client.R().SetAuthToken(aliceToken).Get("/fibonacci/sessions_by_user/")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode())

	first := s.compute(t, aliceToken, 5)
	second := s.compute(t, aliceToken, 20)
	third := s.compute(t, bobToken, 1)
	assert.Equal(t, []int64{0}, third.Output)

	var all models.SessionIDsResponse
	resp, err = s.client.R().SetResult(&all).Get("/fibonacci/all_sessions")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, []string{first.SessionID, second.SessionID, third.SessionID}, all.Sessions)

	var byUser map[string][]string
	resp, err = s.client.R().SetAuthToken(aliceToken).SetResult(&byUser).Get("/fibonacci/sessions_by_user/")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, map[string][]string{first.User: {first.SessionID, second.SessionID}}, byUser)

	var users map[string][]map[string]interface{}
	resp, err = s.client.R().SetResult(&users).Get("/fibonacci/all_users")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	require.Len(t, users["users"], 2)
	for _, u := range users["users"] {
		assert.NotContains(t, u, "password")
		assert.NotEmpty(t, u["id"])
	}
	assert.Equal(t, "alice", users["users"][0]["username"])
}

func TestComputeValidation(t *testing.T) {
	s := newTestServer(t)
	s.createUser(t, "alice", "pw1")
	token := s.login(t, "alice", "pw1")

	bodies := []interface{}{
		map[string]interface{}{},
		map[string]interface{}{"upper_limit": "ten"},
		map[string]interface{}{"upper_limit": -1},
	}
	for _, body := range bodies {
		resp, err := s.client.R().SetAuthToken(token).SetBody(body).Post("/fibonacci/fibbonacci")
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode(), resp.String())
	}

	session := s.compute(t, token, 0)
	assert.Empty(t, session.Output)
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	var health models.HealthResponse
	resp, err := s.client.R().SetResult(&health).Get("/health")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, "ok", health.Status)
}
