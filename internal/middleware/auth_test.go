package middleware

import (
	"fmt"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/modorcea/rentacar-backend/internal/database"
	"github.com/modorcea/rentacar-backend/internal/models"
	"github.com/modorcea/rentacar-backend/pkg/utils"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := database.RunMigrations(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func protectedRouter(db *gorm.DB, admin bool) *gin.Engine {
	r := gin.New()
	group := r.Group("/")
	group.Use(AuthMiddleware())
	if admin {
		group.Use(AdminOnly(db))
	}
	group.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"username": c.GetString("username")})
	})
	return r
}

func request(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", "/ping", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func makeUser(t *testing.T, db *gorm.DB, username string, isAdmin bool) *models.User {
	t.Helper()
	user := &models.User{FirstName: "Ana", LastName: "Pop", Username: username, IsAdmin: isAdmin}
	if err := user.SetPassword("secret123"); err != nil {
		t.Fatalf("hash: %v", err)
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := setupTestDB(t)
	r := protectedRouter(db, false)

	if w := request(r, ""); w.Code != 401 {
		t.Errorf("expected 401 without token, got %d", w.Code)
	}
	if w := request(r, "not-a-token"); w.Code != 401 {
		t.Errorf("expected 401 for garbage token, got %d", w.Code)
	}
}

func TestAuthMiddlewareRejectsWrongSecret(t *testing.T) {
	db := setupTestDB(t)
	user := makeUser(t, db, "ana", false)

	t.Setenv("JWT_SECRET", "other-secret")
	token, err := utils.GenerateToken(user)
	if err != nil {
		t.Fatalf("token: %v", err)
	}

	t.Setenv("JWT_SECRET", "test-secret")
	r := protectedRouter(db, false)
	if w := request(r, token); w.Code != 401 {
		t.Errorf("expected 401 for token signed with a different secret, got %d", w.Code)
	}
}

func TestAuthMiddlewareAcceptsValidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := setupTestDB(t)
	user := makeUser(t, db, "ana", false)

	token, err := utils.GenerateToken(user)
	if err != nil {
		t.Fatalf("token: %v", err)
	}

	r := protectedRouter(db, false)
	w := request(r, token)
	if w.Code != 200 {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "ana") {
		t.Errorf("username claim must reach the handler, got %s", w.Body.String())
	}
}

func TestAdminOnlyChecksStoredFlag(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := setupTestDB(t)

	admin := makeUser(t, db, "root", true)
	regular := makeUser(t, db, "ana", false)

	adminToken, _ := utils.GenerateToken(admin)
	regularToken, _ := utils.GenerateToken(regular)

	r := protectedRouter(db, true)

	if w := request(r, adminToken); w.Code != 200 {
		t.Errorf("expected 200 for admin, got %d", w.Code)
	}
	if w := request(r, regularToken); w.Code != 403 {
		t.Errorf("expected 403 for non-admin, got %d", w.Code)
	}
}

func TestAdminOnlyRejectsDeletedUser(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := setupTestDB(t)

	admin := makeUser(t, db, "root", true)
	token, _ := utils.GenerateToken(admin)
	db.Delete(admin)

	r := protectedRouter(db, true)
	if w := request(r, token); w.Code != 401 {
		t.Errorf("expected 401 for a token whose user is gone, got %d", w.Code)
	}
}
