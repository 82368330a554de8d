package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/jyothi-samberpu/Food-services/apperrors"
	"github.com/jyothi-samberpu/Food-services/middleware"
	"github.com/jyothi-samberpu/Food-services/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthHandler struct {
	DB   *gorm.DB
	Auth *middleware.Auth
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register creates a new vendor account.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, bindingError(err))
		return
	}

	// Emails are unique case-insensitively; stored lowercased.
	email := strings.ToLower(strings.TrimSpace(req.Email))

	var existing models.Vendor
	if err := h.DB.Where("email = ?", email).First(&existing).Error; err == nil {
		apperrors.Respond(c, apperrors.Duplicate("Email already registered"))
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		apperrors.Respond(c, apperrors.Internal(err))
		return
	}

	vendor := models.Vendor{
		Username:     req.Username,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := h.DB.Create(&vendor).Error; err != nil {
		// A racing registration can slip past the pre-check; the unique
		// index is the authority.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			apperrors.Respond(c, apperrors.Duplicate("Email already registered"))
			return
		}
		apperrors.Respond(c, apperrors.Internal(err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Vendor registered successfully",
		"vendorId": vendor.ID,
	})
}

// Login verifies credentials and issues a bearer token. Unknown email and
// wrong password produce the same response so account existence never leaks.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, bindingError(err))
		return
	}

	invalid := apperrors.Unauthenticated("Invalid email or password")

	var vendor models.Vendor
	err := h.DB.Where("email = ?", strings.ToLower(strings.TrimSpace(req.Email))).First(&vendor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apperrors.Respond(c, invalid)
			return
		}
		apperrors.Respond(c, apperrors.Internal(err))
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(vendor.PasswordHash), []byte(req.Password)) != nil {
		apperrors.Respond(c, invalid)
		return
	}

	token, err := h.Auth.GenerateToken(vendor.ID)
	if err != nil {
		apperrors.Respond(c, apperrors.Internal(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  "Login Successful",
		"token":    token,
		"vendorId": vendor.ID,
	})
}

// ListVendors returns all vendors with their firms. Password hashes are
// never serialized.
func (h *AuthHandler) ListVendors(c *gin.Context) {
	var vendors []models.Vendor
	if err := h.DB.Preload("Firms").Find(&vendors).Error; err != nil {
		apperrors.Respond(c, apperrors.Internal(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"vendors": vendors})
}

// GetVendor returns a single vendor with firms.
func (h *AuthHandler) GetVendor(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		apperrors.Respond(c, apperrors.Validation("Invalid vendor ID format"))
		return
	}

	var vendor models.Vendor
	if err := h.DB.Preload("Firms").First(&vendor, id).Error; err != nil {
		apperrors.Respond(c, apperrors.FromDB(err, "Vendor"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"vendor": vendor})
}
