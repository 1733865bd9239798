package handlers

import (
	"errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/glamora/booking-api/internal/audit"
	"github.com/glamora/booking-api/internal/config"
	artistdomain "github.com/glamora/booking-api/internal/domain/artist"
	"github.com/glamora/booking-api/internal/httperr"
	"github.com/glamora/booking-api/internal/httpresp"
	"github.com/glamora/booking-api/internal/models"
	"github.com/glamora/booking-api/internal/validators"
)

type AuthHandler struct {
	db    *gorm.DB
	cfg   *config.Config
	audit *audit.Dispatcher
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config, auditor *audit.Dispatcher) *AuthHandler {
	return &AuthHandler{db: db, cfg: cfg, audit: auditor}
}

type registerRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	Phone     string `json:"phone"`
	Role      string `json:"role"`
	City      string `json:"city"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type userResponse struct {
	ID             uint   `json:"id"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Role           string `json:"role"`
	City           string `json:"city"`
	ApprovalStatus string `json:"approvalStatus"`
}

func toUserResponse(u *models.User) userResponse {
	return userResponse{
		ID:             u.ID,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		Email:          u.Email,
		Phone:          u.Phone,
		Role:           u.Role,
		City:           u.City,
		ApprovalStatus: u.ApprovalStatus,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_payload", "First name, last name, email and a password of at least 8 characters are required.")
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if !validators.IsEmailDomainValid(req.Email) {
		httperr.Validation(c, "Validation failed.", map[string]string{
			"email": "Email domain does not accept mail.",
		})
		return
	}

	role := req.Role
	if role == "" {
		role = models.RoleClient
	}
	if role != models.RoleClient && role != models.RoleArtist {
		httperr.Validation(c, "Validation failed.", map[string]string{
			"role": "Role must be client or artist.",
		})
		return
	}

	var existing models.User
	err := h.db.WithContext(c.Request.Context()).
		Where("email = ?", req.Email).
		First(&existing).Error
	if err == nil {
		httperr.Conflict(c, "email_taken", "An account with this email already exists.")
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		httperr.Internal(c, "internal_error", "Could not create account.")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "internal_error", "Could not create account.")
		return
	}

	user := models.User{
		FirstName:      strings.TrimSpace(req.FirstName),
		LastName:       strings.TrimSpace(req.LastName),
		Email:          req.Email,
		PasswordHash:   string(hash),
		Phone:          strings.TrimSpace(req.Phone),
		Role:           role,
		City:           strings.TrimSpace(req.City),
		IsActive:       true,
		ApprovalStatus: artistdomain.InitialApproval(role),
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&user).Error; err != nil {
		httperr.Internal(c, "internal_error", "Could not create account.")
		return
	}

	h.audit.Dispatch(audit.Event{ActorID: &user.ID, Action: "user_registered", Entity: "user", EntityID: &user.ID})

	token, err := h.signToken(&user)
	if err != nil {
		httperr.Internal(c, "internal_error", "Could not issue token.")
		return
	}

	httpresp.Created(c, "Account created.", gin.H{
		"token": token,
		"user":  toUserResponse(&user),
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_payload", "Email and password are required.")
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	err := h.db.WithContext(c.Request.Context()).
		Where("email = ? AND is_active = ?", req.Email, true).
		First(&user).Error
	if err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid email or password.")
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid email or password.")
		return
	}

	token, err := h.signToken(&user)
	if err != nil {
		httperr.Internal(c, "internal_error", "Could not issue token.")
		return
	}

	httpresp.OK(c, "Logged in.", gin.H{
		"token": token,
		"user":  toUserResponse(&user),
	})
}

func (h *AuthHandler) signToken(user *models.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  float64(user.ID),
		"role": user.Role,
		"iat":  now.Unix(),
		"exp":  now.Add(7 * 24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.cfg.JWTSecret))
}
