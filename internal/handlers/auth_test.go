package handlers

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/modorcea/rentacar-backend/internal/models"
	"gorm.io/gorm"
)

func newAuthRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.POST("/api/register", Register(db))
	r.POST("/api/login", Login(db))
	return r
}

func TestRegisterCreatesUser(t *testing.T) {
	db := setupTestDB(t)
	r := newAuthRouter(db)

	w := performRequest(t, r, "POST", "/api/register", gin.H{
		"firstName": "Ana",
		"lastName":  "Pop",
		"username":  "ana",
		"password":  "secret123",
	})
	if w.Code != 201 {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var user models.User
	if err := db.Where("username = ?", "ana").First(&user).Error; err != nil {
		t.Fatalf("user was not persisted: %v", err)
	}
	if user.IsAdmin {
		t.Error("new users must not be admins")
	}
	if user.PasswordHash == "secret123" || user.PasswordHash == "" {
		t.Error("password must be stored as a hash")
	}
}

func TestRegisterMissingFieldsRejected(t *testing.T) {
	db := setupTestDB(t)
	r := newAuthRouter(db)

	w := performRequest(t, r, "POST", "/api/register", gin.H{
		"firstName": "Ana",
		"username":  "ana",
		"password":  "secret123",
	})
	if w.Code != 400 {
		t.Fatalf("expected 400 for missing lastName, got %d", w.Code)
	}
}

func TestRegisterDuplicateUsernameConflicts(t *testing.T) {
	db := setupTestDB(t)
	r := newAuthRouter(db)

	body := gin.H{
		"firstName": "Ana",
		"lastName":  "Pop",
		"username":  "ana",
		"password":  "secret123",
	}

	if w := performRequest(t, r, "POST", "/api/register", body); w.Code != 201 {
		t.Fatalf("first registration failed: %d", w.Code)
	}
	if w := performRequest(t, r, "POST", "/api/register", body); w.Code != 409 {
		t.Fatalf("expected 409 for duplicate username, got %d", w.Code)
	}
}

func TestLoginReturnsToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := setupTestDB(t)
	r := newAuthRouter(db)

	if w := performRequest(t, r, "POST", "/api/register", gin.H{
		"firstName": "Ana",
		"lastName":  "Pop",
		"username":  "ana",
		"password":  "secret123",
	}); w.Code != 201 {
		t.Fatalf("registration failed: %d", w.Code)
	}

	w := performRequest(t, r, "POST", "/api/login", gin.H{
		"username": "ana",
		"password": "secret123",
	})
	if w.Code != 200 {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Message string  `json:"message"`
		Token   string  `json:"token"`
		ID      float64 `json:"_id"`
	}
	decodeBody(t, w, &resp)
	if resp.Token == "" {
		t.Error("login response must carry a token")
	}
	if resp.ID == 0 {
		t.Error("login response must carry the user id")
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := setupTestDB(t)
	r := newAuthRouter(db)

	if w := performRequest(t, r, "POST", "/api/register", gin.H{
		"firstName": "Ana",
		"lastName":  "Pop",
		"username":  "ana",
		"password":  "secret123",
	}); w.Code != 201 {
		t.Fatalf("registration failed: %d", w.Code)
	}

	if w := performRequest(t, r, "POST", "/api/login", gin.H{
		"username": "ana",
		"password": "wrong",
	}); w.Code != 401 {
		t.Errorf("expected 401 for wrong password, got %d", w.Code)
	}

	if w := performRequest(t, r, "POST", "/api/login", gin.H{
		"username": "nobody",
		"password": "secret123",
	}); w.Code != 401 {
		t.Errorf("expected 401 for unknown user, got %d", w.Code)
	}
}
