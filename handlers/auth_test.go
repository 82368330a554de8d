package handlers_test

import (
	"net/http"
	"testing"

	"github.com/jyothi-samberpu/Food-services/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRegister(t *testing.T) {
	r, db := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/vendor/register", gin.H{
		"username": "v1",
		"email":    "v1@x.com",
		"password": "Passw0rd",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "vendorId")

	var vendor models.Vendor
	require.NoError(t, db.Where("email = ?", "v1@x.com").First(&vendor).Error)

	// Stored credential is a hash, never the plaintext.
	assert.NotEqual(t, "Passw0rd", vendor.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(vendor.PasswordHash), []byte("Passw0rd")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(vendor.PasswordHash), []byte("other-pass")))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	r, db := newTestServer(t)

	body := gin.H{"username": "v1", "email": "v1@x.com", "password": "Passw0rd"}
	w := doJSON(t, r, http.MethodPost, "/vendor/register", body, "")
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/vendor/register", body, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Email already registered")

	// Uniqueness is case-insensitive.
	body["email"] = "V1@X.COM"
	w = doJSON(t, r, http.MethodPost, "/vendor/register", body, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	db.Model(&models.Vendor{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestRegisterValidationEnumeratesFields(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/vendor/register", gin.H{"email": "not-an-email"}, "")
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Fields []string `json:"fields"`
	}
	decodeBody(t, w, &resp)
	assert.Len(t, resp.Fields, 3)
	assert.Contains(t, w.Body.String(), "username")
	assert.Contains(t, w.Body.String(), "email")
	assert.Contains(t, w.Body.String(), "password")
}

func TestRegisterShortUsername(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/vendor/register", gin.H{
		"username": "ab",
		"email":    "v1@x.com",
		"password": "Passw0rd",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "username")
}

func TestLogin(t *testing.T) {
	r, _ := newTestServer(t)
	token, vendorID := registerAndLogin(t, r, "v1@x.com")
	assert.NotEmpty(t, token)
	assert.NotZero(t, vendorID)
}

func TestLoginInvalidCredentialsIndistinguishable(t *testing.T) {
	r, _ := newTestServer(t)
	registerAndLogin(t, r, "v1@x.com")

	wrongPassword := doJSON(t, r, http.MethodPost, "/vendor/login", gin.H{
		"email":    "v1@x.com",
		"password": "wrong-pass",
	}, "")
	unknownEmail := doJSON(t, r, http.MethodPost, "/vendor/login", gin.H{
		"email":    "nobody@x.com",
		"password": "Passw0rd",
	}, "")

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	assert.Equal(t, wrongPassword.Body.String(), unknownEmail.Body.String())
}

func TestListVendorsOmitsPasswordHash(t *testing.T) {
	r, _ := newTestServer(t)
	registerAndLogin(t, r, "v1@x.com")

	w := doJSON(t, r, http.MethodGet, "/vendor/all", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "v1@x.com")
	assert.NotContains(t, w.Body.String(), "password")
	assert.NotContains(t, w.Body.String(), "$2a$")
}

func TestGetVendor(t *testing.T) {
	r, _ := newTestServer(t)
	_, vendorID := registerAndLogin(t, r, "v1@x.com")

	w := doJSON(t, r, http.MethodGet, "/vendor/999", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodGet, "/vendor/not-an-id", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodGet, "/vendor/1", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(1), vendorID)
	assert.Contains(t, w.Body.String(), "vendor-one")
}
