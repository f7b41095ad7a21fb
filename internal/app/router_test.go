package app

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"finlit_backend/internal/config"
	"finlit_backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestApp(t *testing.T, mutate ...func(*config.Config)) *App {
	t.Helper()
	cfg := testutil.Config(t)
	for _, m := range mutate {
		m(cfg)
	}
	a, err := New(cfg, testutil.NewDB(t), nil)
	require.NoError(t, err)
	t.Cleanup(func() { a.rateLimiter.Close() })
	return a
}

func do(t *testing.T, a *App, method, path string, body any, header ...string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}

	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 && w.Header().Get("Content-Type") != "" {
		_ = json.Unmarshal(w.Body.Bytes(), &env)
	}
	return w, env
}

func signup(t *testing.T, a *App, email, username string) uint {
	t.Helper()
	w, env := do(t, a, http.MethodPost, "/auth/signup", map[string]string{
		"email": email, "username": username, "password": "hunter22",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var data struct {
		UserID uint `json:"user_id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	return data.UserID
}

func TestHealthAndRoot(t *testing.T) {
	a := newTestApp(t)

	w, env := do(t, a, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, env.Message, "running")

	w, _ = do(t, a, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"database":"up"`)
}

func TestAuthFlow(t *testing.T) {
	a := newTestApp(t)
	id := signup(t, a, "a@example.com", "alice")

	w, env := do(t, a, http.MethodPost, "/auth/signup", map[string]string{
		"email": "a@example.com", "username": "other", "password": "hunter22",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Email or username already exists", env.Message)

	w, _ = do(t, a, http.MethodPost, "/auth/signup", map[string]string{"email": "nope"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = do(t, a, http.MethodPost, "/auth/login?email=a@example.com&password=wrong", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, env = do(t, a, http.MethodPost, "/auth/login?email=a@example.com&password=hunter22", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), fmt.Sprintf(`"user_id":%d`, id))

	w, env = do(t, a, http.MethodPost, "/auth/login", map[string]string{"email": "a@example.com", "password": "hunter22"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), `"token"`)

	w, env = do(t, a, http.MethodPost, "/auth/login?email=a@example.com", map[string]string{"password": "hunter22"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, string(env.Data), fmt.Sprintf(`"user_id":%d`, id))

	w, _ = do(t, a, http.MethodPost, "/auth/login?email=a@example.com", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLearningPathRoutes(t *testing.T) {
	a := newTestApp(t)
	id := signup(t, a, "a@example.com", "alice")

	w, env := do(t, a, http.MethodGet, "/learning_path/topics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), "Budgeting Basics")

	w, env = do(t, a, http.MethodPost, fmt.Sprintf("/learning_path/generate/%d", id), map[string]string{"user_goal": "Crypto"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, env.Message, "Smart Banking")

	w, env = do(t, a, http.MethodPost, fmt.Sprintf("/learning_path/generate/%d", id), map[string]string{"user_goal": "Smart Banking"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var generated struct {
		Path []map[string]json.RawMessage `json:"path"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &generated))
	require.NotEmpty(t, generated.Path)
	assert.Contains(t, generated.Path[0], "quiz")
	assert.NotContains(t, generated.Path[0], "quizzes")

	w, env = do(t, a, http.MethodGet, fmt.Sprintf("/learning_path/my_paths/%d", id), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), "Custom Path for Smart Banking")

	w, _ = do(t, a, http.MethodGet, "/learning_path/my_paths/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProgressRoutes(t *testing.T) {
	a := newTestApp(t)
	id := signup(t, a, "a@example.com", "alice")

	w, _ := do(t, a, http.MethodGet, fmt.Sprintf("/progress/%d", id), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	path := fmt.Sprintf("/progress/complete_chapter/%d/1/1/1", id)
	w, env := do(t, a, http.MethodPost, path, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, string(env.Data), `"current_xp":20`)

	w, env = do(t, a, http.MethodPost, path, map[string]string{"experience_level": "Beginner"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Chapter already completed", env.Message)

	w, _ = do(t, a, http.MethodPost, fmt.Sprintf("/progress/complete_chapter/%d/1/x/1", id), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	for chapter := 2; chapter <= 5; chapter++ {
		w, _ = do(t, a, http.MethodPost, fmt.Sprintf("/progress/complete_chapter/%d/1/1/%d", id, chapter), nil)
		require.Equal(t, http.StatusOK, w.Code)
	}

	w, env = do(t, a, http.MethodGet, fmt.Sprintf("/progress/%d", id), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), `"xp":100`)

	w, env = do(t, a, http.MethodGet, fmt.Sprintf("/progress/badges/%d", id), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), "Beginner Badge")

	w, env = do(t, a, http.MethodGet, fmt.Sprintf("/progress/completed/%d", id), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var completed []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &completed))
	assert.Len(t, completed, 5)
	assert.Equal(t, "Beginner", completed[0]["experience_level"])

	w, env = do(t, a, http.MethodGet, "/progress/leaderboard?limit=5", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), `"username":"alice"`)

	w, _ = do(t, a, http.MethodGet, "/progress/leaderboard?limit=-1", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRewardRoutes(t *testing.T) {
	a := newTestApp(t)
	id := signup(t, a, "a@example.com", "alice")

	w, env := do(t, a, http.MethodPost, fmt.Sprintf("/rewards/claim_big_motivator/%d", id), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, env.Message, "5+")

	for i := 0; i < 5; i++ {
		w, env = do(t, a, http.MethodPost, fmt.Sprintf("/rewards/claim_gift/%d", id), nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, string(env.Data), `"reward"`)
	}

	w, env = do(t, a, http.MethodPost, fmt.Sprintf("/rewards/claim_big_motivator/%d", id), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), `"motivator"`)

	w, env = do(t, a, http.MethodGet, fmt.Sprintf("/rewards/my_rewards/%d", id), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var rewards []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &rewards))
	assert.Len(t, rewards, 6)

	w, env = do(t, a, http.MethodGet, "/rewards/catalog", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), `"big_motivators"`)
}

func TestEnforcedOwnership(t *testing.T) {
	a := newTestApp(t, func(cfg *config.Config) { cfg.JWT.Enforce = true })
	alice := signup(t, a, "a@example.com", "alice")
	bob := signup(t, a, "b@example.com", "bob")

	w, _ := do(t, a, http.MethodGet, fmt.Sprintf("/rewards/my_rewards/%d", alice), nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, env := do(t, a, http.MethodPost, "/auth/login", map[string]string{"email": "a@example.com", "password": "hunter22"})
	require.Equal(t, http.StatusOK, w.Code)
	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &login))

	w, _ = do(t, a, http.MethodGet, fmt.Sprintf("/rewards/my_rewards/%d", bob), nil, "Authorization", "Bearer "+login.Token)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, _ = do(t, a, http.MethodGet, fmt.Sprintf("/rewards/my_rewards/%d", alice), nil, "Authorization", "Bearer "+login.Token)
	assert.Equal(t, http.StatusOK, w.Code)

	// public routes stay open
	w, _ = do(t, a, http.MethodGet, "/learning_path/topics", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAvatarUpload(t *testing.T) {
	a := newTestApp(t)
	id := signup(t, a, "a@example.com", "alice")

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="file"; filename="me.png"`)
	h.Set("Content-Type", "image/png")
	part, err := mw.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write([]byte("\x89PNG fake"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/users/%d/avatar", id), &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	var data struct {
		ProfilePic string `json:"profile_pic"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Contains(t, data.ProfilePic, "/uploads/avatars/")

	w2, env2 := do(t, a, http.MethodGet, fmt.Sprintf("/users/%d", id), nil)
	require.Equal(t, http.StatusOK, w2.Code)
	assert.Contains(t, string(env2.Data), data.ProfilePic)
	assert.NotContains(t, string(env2.Data), "password")

	w3, _ := do(t, a, http.MethodGet, data.ProfilePic, nil)
	assert.Equal(t, http.StatusOK, w3.Code)
}
