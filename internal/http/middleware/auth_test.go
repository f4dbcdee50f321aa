package middleware

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaunMarin423/CrudUsers/internal/models"
	"github.com/JaunMarin423/CrudUsers/internal/services"
	"github.com/JaunMarin423/CrudUsers/internal/utils"
	"github.com/JaunMarin423/CrudUsers/internal/validation"
)

const testSecret = "middleware-test-secret"

// stubStore serves users from a map; everything else is unused here.
type stubStore struct {
	users map[string]*models.User
}

func (s *stubStore) Create(ctx context.Context, user *models.User) (*models.User, error) {
	return user, nil
}

func (s *stubStore) GetByID(ctx context.Context, id string) (*models.User, error) {
	if user, ok := s.users[id]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, models.ErrUserNotFound
}

func (s *stubStore) GetByIdentifier(ctx context.Context, identifier string) (*models.User, error) {
	return nil, models.ErrUserNotFound
}

func (s *stubStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return false, nil
}

func (s *stubStore) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return false, nil
}

func (s *stubStore) ExistsByPhone(ctx context.Context, phone string) (bool, error) {
	return false, nil
}

func (s *stubStore) List(ctx context.Context) ([]models.User, error) {
	return nil, nil
}

func (s *stubStore) Update(ctx context.Context, id string, patch validation.UserPatch) (*models.User, error) {
	return nil, models.ErrUserNotFound
}

func (s *stubStore) Delete(ctx context.Context, id string) (bool, error) {
	return false, nil
}

func (s *stubStore) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	return nil
}

func testEngine(store services.UserStore, tokens *services.TokenService, extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Errors(slog.New(slog.NewTextHandler(io.Discard, nil)), true))

	chain := append([]gin.HandlerFunc{Protect(tokens, store)}, extra...)
	chain = append(chain, func(c *gin.Context) {
		user, _ := CurrentUser(c)
		utils.RespondOK(c, gin.H{"id": user.ID})
	})
	r.GET("/protected/:id", chain...)
	return r
}

func request(t *testing.T, r *gin.Engine, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected/user-1", nil)
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestProtect_MissingToken(t *testing.T) {
	store := &stubStore{users: map[string]*models.User{}}
	tokens := services.NewTokenService(testSecret, time.Hour)
	r := testEngine(store, tokens)

	w := request(t, r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = request(t, r, "Basic abc")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProtect_InvalidToken(t *testing.T) {
	store := &stubStore{users: map[string]*models.User{}}
	tokens := services.NewTokenService(testSecret, time.Hour)
	r := testEngine(store, tokens)

	w := request(t, r, "Bearer not.a.token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	other := services.NewTokenService("another-secret-entirely", time.Hour)
	forged, err := other.Issue("user-1")
	require.NoError(t, err)
	w = request(t, r, "Bearer "+forged)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProtect_ExpiredToken(t *testing.T) {
	store := &stubStore{users: map[string]*models.User{
		"user-1": {ID: "user-1", Role: models.RoleUser, IsActive: true},
	}}
	tokens := services.NewTokenService(testSecret, -time.Minute)
	r := testEngine(store, tokens)

	expired, err := tokens.Issue("user-1")
	require.NoError(t, err)
	w := request(t, r, "Bearer "+expired)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "expirado")
}

func TestProtect_VanishedUser(t *testing.T) {
	store := &stubStore{users: map[string]*models.User{}}
	tokens := services.NewTokenService(testSecret, time.Hour)
	r := testEngine(store, tokens)

	token, err := tokens.Issue("user-1")
	require.NoError(t, err)
	w := request(t, r, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProtect_InactiveUser(t *testing.T) {
	store := &stubStore{users: map[string]*models.User{
		"user-1": {ID: "user-1", Role: models.RoleUser, IsActive: false},
	}}
	tokens := services.NewTokenService(testSecret, time.Hour)
	r := testEngine(store, tokens)

	token, err := tokens.Issue("user-1")
	require.NoError(t, err)
	w := request(t, r, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "desactivada")
}

func TestProtect_Success(t *testing.T) {
	store := &stubStore{users: map[string]*models.User{
		"user-1": {ID: "user-1", Role: models.RoleUser, IsActive: true},
	}}
	tokens := services.NewTokenService(testSecret, time.Hour)
	r := testEngine(store, tokens)

	token, err := tokens.Issue("user-1")
	require.NoError(t, err)
	w := request(t, r, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-1")
}

func TestRestrictTo(t *testing.T) {
	store := &stubStore{users: map[string]*models.User{
		"user-1":  {ID: "user-1", Role: models.RoleUser, IsActive: true},
		"admin-1": {ID: "admin-1", Role: models.RoleAdmin, IsActive: true},
	}}
	tokens := services.NewTokenService(testSecret, time.Hour)
	r := testEngine(store, tokens, RestrictTo(models.RoleAdmin))

	userToken, err := tokens.Issue("user-1")
	require.NoError(t, err)
	w := request(t, r, "Bearer "+userToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	adminToken, err := tokens.Issue("admin-1")
	require.NoError(t, err)
	w = request(t, r, "Bearer "+adminToken)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestOwnerOrAdmin(t *testing.T) {
	store := &stubStore{users: map[string]*models.User{
		"user-1":  {ID: "user-1", Role: models.RoleUser, IsActive: true},
		"user-2":  {ID: "user-2", Role: models.RoleUser, IsActive: true},
		"admin-1": {ID: "admin-1", Role: models.RoleAdmin, IsActive: true},
	}}
	tokens := services.NewTokenService(testSecret, time.Hour)
	r := testEngine(store, tokens, OwnerOrAdmin(store, "id"))

	do := func(token, target string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/protected/"+target, nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	userToken, err := tokens.Issue("user-1")
	require.NoError(t, err)
	adminToken, err := tokens.Issue("admin-1")
	require.NoError(t, err)

	// Owner reaches own record.
	assert.Equal(t, http.StatusOK, do(userToken, "user-1").Code)
	// Another user's record is forbidden.
	assert.Equal(t, http.StatusForbidden, do(userToken, "user-2").Code)
	// A missing record is a generic 404, hiding existence.
	w := do(userToken, "ghost")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Recurso no encontrado")
	// Admin bypasses ownership.
	assert.Equal(t, http.StatusOK, do(adminToken, "user-2").Code)
	assert.Equal(t, http.StatusOK, do(adminToken, "user-1").Code)
}
