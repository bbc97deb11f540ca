package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Shyam00111/Attendance-and-co-curriculum/database"
	"github.com/Shyam00111/Attendance-and-co-curriculum/models"
)

type AuthHandler struct {
	JWTSecret string
	TokenTTL  time.Duration
}

func NewAuthHandler(secret string) *AuthHandler {
	return &AuthHandler{JWTSecret: secret, TokenTTL: 7 * 24 * time.Hour}
}

func (h *AuthHandler) signJWT(sub uint, role, name string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  sub,
		"role": role,
		"name": name,
		"exp":  time.Now().Add(h.TokenTTL).Unix(),
		"iat":  time.Now().Unix(),
	}
	tk := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tk.SignedString([]byte(h.JWTSecret))
}

/* ====================== DTOs ====================== */

type RegisterReq struct {
	Name     string `json:"name" validate:"required,max=120"`
	Email    string `json:"email" validate:"required,email,max=120"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	Role     string `json:"role"` // ว่าง = student
}

type LoginReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

/* ====================== Handlers ====================== */

// POST /auth/register
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid payload")
	}
	req.Name = strings.Join(strings.Fields(req.Name), " ")
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if err := c.Validate(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Please provide name, email and password")
	}

	role := strings.TrimSpace(strings.ToLower(req.Role))
	if role == "" {
		role = models.RoleStudent
	}
	if !models.ValidRole(role) {
		return fail(c, http.StatusBadRequest, "Invalid role")
	}

	// ตรวจซ้ำ email
	var dup models.User
	if err := database.DB.Where("email = ?", req.Email).First(&dup).Error; err == nil {
		return fail(c, http.StatusConflict, "Email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Could not create user")
	}
	u := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hash),
		Role:     role,
	}
	if err := database.DB.Create(&u).Error; err != nil {
		// check-then-insert แข่งกันได้ → unique index ของ email เป็นด่านสุดท้าย
		if isDuplicateErr(err) {
			return fail(c, http.StatusConflict, "Email already exists")
		}
		return fail(c, http.StatusInternalServerError, "Could not create user")
	}

	token, err := h.signJWT(u.ID, u.Role, u.Name)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Could not sign token")
	}
	return c.JSON(http.StatusCreated, map[string]any{
		"success": true,
		"data":    u,
		"token":   token,
	})
}

// POST /auth/login
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid payload")
	}
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if err := c.Validate(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Please provide email and password")
	}

	var u models.User
	if err := database.DB.Where("email = ?", req.Email).First(&u).Error; err != nil {
		// ไม่บอกว่า email หรือ password ผิด
		return fail(c, http.StatusUnauthorized, "Invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)); err != nil {
		return fail(c, http.StatusUnauthorized, "Invalid email or password")
	}

	token, err := h.signJWT(u.ID, u.Role, u.Name)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Could not sign token")
	}
	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"data":    u,
		"token":   token,
	})
}

// GET /auth/me
func (h *AuthHandler) Me(c echo.Context) error {
	var u models.User
	if err := database.DB.First(&u, currentUserID(c)).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fail(c, http.StatusNotFound, "User not found")
		}
		return fail(c, http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "data": u})
}
