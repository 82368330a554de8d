package routes

import (
	"github.com/jyothi-samberpu/Food-services/config"
	"github.com/jyothi-samberpu/Food-services/handlers"
	"github.com/jyothi-samberpu/Food-services/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes wires every endpoint onto the engine. Dependencies arrive as
// arguments; nothing here reads globals.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	auth := middleware.NewAuth(cfg.JWTSecret, cfg.TokenTTL)

	authHandler := &handlers.AuthHandler{DB: db, Auth: auth}
	firmHandler := &handlers.FirmHandler{DB: db, Cfg: cfg}
	productHandler := &handlers.ProductHandler{DB: db, Cfg: cfg}

	// ── Vendor routes ──────────────────────────────────────────────
	vendor := r.Group("/vendor")
	{
		vendor.POST("/register", authHandler.Register)
		vendor.POST("/login", authHandler.Login)
		vendor.GET("/all", authHandler.ListVendors)
		vendor.GET("/:id", authHandler.GetVendor)
	}

	// ── Firm routes ────────────────────────────────────────────────
	firm := r.Group("/firm")
	{
		firm.POST("/add-firm", auth.Required(), firmHandler.AddFirm)
		firm.GET("/all", firmHandler.ListFirms)
		firm.GET("/:id", firmHandler.GetFirm)
		firm.DELETE("/:id", auth.Required(), firmHandler.DeleteFirm)
	}

	// ── Product routes ─────────────────────────────────────────────
	product := r.Group("/product")
	{
		product.POST("/add", auth.Required(), productHandler.AddProduct)

		// Direct add is public by default (storefront self-service);
		// the toggle hardens it without a code change.
		if cfg.RequireAuthForDirectProductAdd {
			product.POST("/add/:firmId", auth.Required(), productHandler.AddProductToFirm)
		} else {
			product.POST("/add/:firmId", productHandler.AddProductToFirm)
		}

		product.GET("/all", productHandler.ListProducts)
		product.GET("/firm/:firmId", productHandler.ListProductsByFirm)
		product.GET("/:id", productHandler.GetProduct)
		product.DELETE("/:id", auth.Required(), productHandler.DeleteProduct)
	}

	// Uploaded images, read-only.
	r.Static("/uploads", cfg.UploadDir)
}
