package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"authportal/handlers"
	"authportal/middleware"
	"authportal/models"
	"authportal/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type memRepo struct {
	users  []*models.User
	nextID int
}

func (m *memRepo) CreateUser(user *models.User) error {
	m.nextID++
	user.ID = "id-" + strconv.Itoa(m.nextID)
	cp := *user
	m.users = append(m.users, &cp)
	return nil
}

func (m *memRepo) GetUserByEmailOrUsername(email, username string) (*models.User, error) {
	for _, u := range m.users {
		if u.Email == email || u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (m *memRepo) GetUserByUsername(username string) (*models.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (m *memRepo) GetUserByID(id string) (*models.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (m *memRepo) GetProfileByID(id string) (*models.Profile, error) {
	u, _ := m.GetUserByID(id)
	if u == nil {
		return nil, nil
	}
	return &models.Profile{Name: u.Name, Email: u.Email}, nil
}

func (m *memRepo) GetAllProfiles() ([]models.Profile, error) {
	profiles := make([]models.Profile, 0, len(m.users))
	for _, u := range m.users {
		profiles = append(profiles, models.Profile{Name: u.Name, Email: u.Email})
	}
	return profiles, nil
}

func newServer(t *testing.T, repo *memRepo) *httptest.Server {
	t.Helper()

	staticDir := t.TempDir()
	for _, page := range []string{"index.html", "new_user.html", "dashboard.html"} {
		require.NoError(t, os.WriteFile(filepath.Join(staticDir, page), []byte("<html>"+page+"</html>"), 0o644))
	}

	signer := token.NewSigner("test-secret")
	mux := SetupRoutes(
		&handlers.UserHandler{Repo: repo, Signer: signer},
		&handlers.DashboardHandler{Repo: repo},
		&middleware.Auth{Signer: signer},
		staticDir,
	)
	srv := httptest.NewServer(middleware.Logging(mux))
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, body interface{}) *http.Response {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(b))
	require.NoError(t, err)
	return resp
}

func decodeToken(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	var body struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NotEmpty(t, body.Token)
	return body.Token
}

// Signup, login, and dashboard against a running server, end to end.
func TestSignupLoginDashboardFlow(t *testing.T) {
	repo := &memRepo{}
	srv := newServer(t, repo)

	signupResp := postJSON(t, srv.URL+"/api/signup", map[string]string{
		"name": "Alice", "email": "a@x.com", "username": "alice", "password": "pw1",
	})
	require.Equal(t, http.StatusOK, signupResp.StatusCode)
	t1 := decodeToken(t, signupResp)

	loginResp := postJSON(t, srv.URL+"/api/login", map[string]string{
		"username": "alice", "password": "pw1",
	})
	require.Equal(t, http.StatusOK, loginResp.StatusCode)
	t2 := decodeToken(t, loginResp)

	signer := token.NewSigner("test-secret")
	c1, err := signer.Parse(t1)
	require.NoError(t, err)
	c2, err := signer.Parse(t2)
	require.NoError(t, err)
	assert.Equal(t, c1.UserID, c2.UserID, "both tokens must verify to the same identifier")

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/dashboard", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+t2)
	dashResp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer dashResp.Body.Close()
	require.Equal(t, http.StatusOK, dashResp.StatusCode)

	var profile map[string]string
	require.NoError(t, json.NewDecoder(dashResp.Body).Decode(&profile))
	assert.Equal(t, map[string]string{"name": "Alice", "email": "a@x.com"}, profile)
}

func TestAdminDashboardListsEveryone(t *testing.T) {
	repo := &memRepo{}
	srv := newServer(t, repo)

	hash, err := bcrypt.GenerateFromPassword([]byte("rootpw"), bcrypt.DefaultCost)
	require.NoError(t, err)
	require.NoError(t, repo.CreateUser(&models.User{
		Name: "Root", Email: "root@x.com", Username: "root",
		Password: string(hash), IsAdmin: true,
	}))

	postJSON(t, srv.URL+"/api/signup", map[string]string{
		"name": "Alice", "email": "a@x.com", "username": "alice", "password": "pw1",
	})

	loginResp := postJSON(t, srv.URL+"/api/login", map[string]string{
		"username": "root", "password": "rootpw",
	})
	require.Equal(t, http.StatusOK, loginResp.StatusCode)
	tok := decodeToken(t, loginResp)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/dashboard", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+tok)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var list []models.Profile
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	assert.Len(t, list, 2)
}

func TestStaticPages(t *testing.T) {
	srv := newServer(t, &memRepo{})

	for _, path := range []string{"/", "/index.html", "/new_user.html", "/dashboard.html"} {
		resp, err := http.Get(srv.URL + path)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
		resp.Body.Close()
	}

	resp, err := http.Get(srv.URL + "/nope")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}
