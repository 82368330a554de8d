package handlers_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jyothi-samberpu/Food-services/config"
	"github.com/jyothi-samberpu/Food-services/routes"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestServer spins up the full route table against an in-memory sqlite.
func newTestServer(t *testing.T, mutate ...func(*config.Config)) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Port:         "0",
		DatabasePath: ":memory:",
		JWTSecret:    []byte("test-secret"),
		TokenTTL:     time.Hour,
		UploadDir:    t.TempDir(),
	}
	for _, m := range mutate {
		m(cfg)
	}

	db, err := config.InitDB(cfg)
	require.NoError(t, err)

	r := gin.New()
	routes.SetupRoutes(r, db, cfg)
	return r, db
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doForm(t *testing.T, r *gin.Engine, method, path string, fields map[string]string, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

// registerAndLogin creates a vendor and returns a usable bearer token.
func registerAndLogin(t *testing.T, r *gin.Engine, email string) (string, uint) {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/vendor/register", gin.H{
		"username": "vendor-one",
		"email":    email,
		"password": "Passw0rd",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodPost, "/vendor/login", gin.H{
		"email":    email,
		"password": "Passw0rd",
	}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token    string `json:"token"`
		VendorID uint   `json:"vendorId"`
	}
	decodeBody(t, w, &resp)
	require.NotEmpty(t, resp.Token)
	return resp.Token, resp.VendorID
}

// createFirm adds a firm through the API and returns its id.
func createFirm(t *testing.T, r *gin.Engine, token, name string) uint {
	t.Helper()
	w := doForm(t, r, http.MethodPost, "/firm/add-firm", map[string]string{
		"firmname": name,
		"area":     "Downtown",
		"category": `["veg"]`,
	}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Firm struct {
			ID uint `json:"id"`
		} `json:"firm"`
	}
	decodeBody(t, w, &resp)
	require.NotZero(t, resp.Firm.ID)
	return resp.Firm.ID
}
