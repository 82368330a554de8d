package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/jyothi-samberpu/Food-services/apperrors"
	"github.com/jyothi-samberpu/Food-services/config"
	"github.com/jyothi-samberpu/Food-services/middleware"
	"github.com/jyothi-samberpu/Food-services/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ProductHandler struct {
	DB  *gorm.DB
	Cfg *config.Config
}

type addProductRequest struct {
	ProductName string            `json:"productName"`
	Price       float64           `json:"price"`
	Category    models.StringList `json:"category"`
	Description string            `json:"description"`
}

func productInput(c *gin.Context) (addProductRequest, error) {
	if isForm(c.ContentType()) {
		req := addProductRequest{
			ProductName: strings.TrimSpace(c.PostForm("productName")),
			Category:    models.ParseFormList(c.PostFormArray("category")),
			Description: strings.TrimSpace(c.PostForm("description")),
		}
		if raw := c.PostForm("price"); raw != "" {
			price, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return req, apperrors.Validation("price must be a positive number")
			}
			req.Price = price
		}
		return req, nil
	}
	var req addProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, apperrors.Validation("request body must be valid JSON or form data")
	}
	req.ProductName = strings.TrimSpace(req.ProductName)
	req.Description = strings.TrimSpace(req.Description)
	return req, nil
}

// buildProduct validates shared product input and assembles the record.
func (h *ProductHandler) buildProduct(c *gin.Context, firmID *uint) (*models.Product, error) {
	req, err := productInput(c)
	if err != nil {
		return nil, err
	}

	var fields []string
	if req.ProductName == "" {
		fields = append(fields, "productName is required")
	}
	if req.Price <= 0 {
		fields = append(fields, "price must be a positive number")
	}

	category, unknown := models.NormalizeCategories(req.Category)
	if len(unknown) > 0 {
		fields = append(fields, "invalid category: "+strings.Join(unknown, ", ")+
			" (allowed: "+strings.Join(models.ValidCategories, ", ")+")")
	}

	if len(fields) > 0 {
		return nil, apperrors.Validation(fields...)
	}

	image, err := saveImage(c, h.Cfg.UploadDir)
	if err != nil {
		return nil, err
	}

	return &models.Product{
		ProductName: req.ProductName,
		Price:       req.Price,
		Category:    category,
		Description: req.Description,
		Image:       image,
		FirmID:      firmID,
	}, nil
}

// AddProduct creates a product under the authenticated vendor's first firm.
// A vendor without a firm still gets the product, unattached.
func (h *ProductHandler) AddProduct(c *gin.Context) {
	vendorID := middleware.GetVendorID(c)

	var firmID *uint
	var firm models.Firm
	err := h.DB.Where("vendor_id = ?", vendorID).Order("id").First(&firm).Error
	switch {
	case err == nil:
		firmID = &firm.ID
	case !errors.Is(err, gorm.ErrRecordNotFound):
		apperrors.Respond(c, apperrors.Internal(err))
		return
	}

	product, err := h.buildProduct(c, firmID)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	if err := h.DB.Create(product).Error; err != nil {
		apperrors.Respond(c, apperrors.Internal(err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Product added successfully",
		"product": product,
	})
}

// AddProductToFirm creates a product under an explicitly named firm.
func (h *ProductHandler) AddProductToFirm(c *gin.Context) {
	firmID, ok := parseID(c.Param("firmId"))
	if !ok {
		apperrors.Respond(c, apperrors.Validation("Invalid firm ID format"))
		return
	}

	var firm models.Firm
	if err := h.DB.First(&firm, firmID).Error; err != nil {
		apperrors.Respond(c, apperrors.FromDB(err, "Firm"))
		return
	}

	product, err := h.buildProduct(c, &firm.ID)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	if err := h.DB.Create(product).Error; err != nil {
		apperrors.Respond(c, apperrors.Internal(err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Product added to firm successfully",
		"product": product,
	})
}

// ListProducts returns all products with their firm resolved.
func (h *ProductHandler) ListProducts(c *gin.Context) {
	var products []models.Product
	if err := h.DB.Preload("Firm").Find(&products).Error; err != nil {
		apperrors.Respond(c, apperrors.Internal(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

// GetProduct returns a single product.
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		apperrors.Respond(c, apperrors.Validation("Invalid product ID format"))
		return
	}

	var product models.Product
	if err := h.DB.Preload("Firm").First(&product, id).Error; err != nil {
		apperrors.Respond(c, apperrors.FromDB(err, "Product"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": product})
}

// ListProductsByFirm returns every product attached to a firm.
func (h *ProductHandler) ListProductsByFirm(c *gin.Context) {
	firmID, ok := parseID(c.Param("firmId"))
	if !ok {
		apperrors.Respond(c, apperrors.Validation("Invalid firm ID format"))
		return
	}

	var firm models.Firm
	if err := h.DB.First(&firm, firmID).Error; err != nil {
		apperrors.Respond(c, apperrors.FromDB(err, "Firm"))
		return
	}

	var products []models.Product
	if err := h.DB.Where("firm_id = ?", firm.ID).Find(&products).Error; err != nil {
		apperrors.Respond(c, apperrors.Internal(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Products retrieved successfully",
		"firmName": firm.FirmName,
		"products": products,
	})
}

// DeleteProduct removes a product by id.
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		apperrors.Respond(c, apperrors.Validation("Invalid product ID format"))
		return
	}

	var product models.Product
	if err := h.DB.First(&product, id).Error; err != nil {
		apperrors.Respond(c, apperrors.FromDB(err, "Product"))
		return
	}
	if err := h.DB.Delete(&product).Error; err != nil {
		apperrors.Respond(c, apperrors.Internal(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}
