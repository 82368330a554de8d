package middleware

import (
	"strings"
	"time"

	"github.com/jyothi-samberpu/Food-services/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const vendorIDKey = "vendorID"

type Claims struct {
	VendorID uint `json:"vendor_id"`
	jwt.RegisteredClaims
}

// Auth issues and verifies the bearer tokens protecting vendor routes.
// The secret and TTL come from the startup config, never from the
// environment at request time.
type Auth struct {
	Secret   []byte
	TokenTTL time.Duration
}

func NewAuth(secret []byte, ttl time.Duration) *Auth {
	return &Auth{Secret: secret, TokenTTL: ttl}
}

// GenerateToken creates a signed, time-limited JWT for a vendor.
func (a *Auth) GenerateToken(vendorID uint) (string, error) {
	claims := Claims{
		VendorID: vendorID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(a.TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.Secret)
}

// VerifyToken parses a token string and returns the vendor id it carries.
func (a *Auth) VerifyToken(tokenStr string) (uint, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return a.Secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return 0, apperrors.Unauthenticated("Invalid or expired token")
	}
	return claims.VendorID, nil
}

// Required validates the Authorization header and injects the vendor id
// into the request context.
func (a *Auth) Required() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			apperrors.Respond(c, apperrors.Unauthenticated("Authorization header required (Bearer <token>)"))
			c.Abort()
			return
		}

		vendorID, err := a.VerifyToken(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			apperrors.Respond(c, err)
			c.Abort()
			return
		}

		c.Set(vendorIDKey, vendorID)
		c.Next()
	}
}

// GetVendorID extracts the authenticated vendor id from the context.
func GetVendorID(c *gin.Context) uint {
	val, _ := c.Get(vendorIDKey)
	id, _ := val.(uint)
	return id
}
