package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/jyothi-samberpu/Food-services/apperrors"
	"github.com/jyothi-samberpu/Food-services/config"
	"github.com/jyothi-samberpu/Food-services/middleware"
	"github.com/jyothi-samberpu/Food-services/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type FirmHandler struct {
	DB  *gorm.DB
	Cfg *config.Config
}

type addFirmRequest struct {
	FirmName string            `json:"firmname"`
	Area     string            `json:"area"`
	Category models.StringList `json:"category"`
	Region   models.StringList `json:"region"`
	Offer    string            `json:"offer"`
}

func firmInput(c *gin.Context) (addFirmRequest, error) {
	if isForm(c.ContentType()) {
		return addFirmRequest{
			FirmName: strings.TrimSpace(c.PostForm("firmname")),
			Area:     strings.TrimSpace(c.PostForm("area")),
			Category: models.ParseFormList(c.PostFormArray("category")),
			Region:   models.ParseFormList(c.PostFormArray("region")),
			Offer:    strings.TrimSpace(c.PostForm("offer")),
		}, nil
	}
	var req addFirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, apperrors.Validation("request body must be valid JSON or form data")
	}
	req.FirmName = strings.TrimSpace(req.FirmName)
	req.Area = strings.TrimSpace(req.Area)
	return req, nil
}

// AddFirm creates a storefront for the authenticated vendor. The firm row
// carries the vendor id, so no vendor-side bookkeeping is needed and the
// whole operation is a single insert.
func (h *FirmHandler) AddFirm(c *gin.Context) {
	vendorID := middleware.GetVendorID(c)

	var vendor models.Vendor
	if err := h.DB.First(&vendor, vendorID).Error; err != nil {
		apperrors.Respond(c, apperrors.FromDB(err, "Vendor"))
		return
	}

	req, err := firmInput(c)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	var fields []string
	if req.FirmName == "" {
		fields = append(fields, "firmname is required")
	}
	if req.Area == "" {
		fields = append(fields, "area is required")
	}
	if len(req.Category) == 0 {
		fields = append(fields, "category is required")
	}

	category, unknown := models.NormalizeCategories(req.Category)
	if len(unknown) > 0 {
		fields = append(fields, "invalid category: "+strings.Join(unknown, ", ")+
			" (allowed: "+strings.Join(models.ValidCategories, ", ")+")")
	}
	region, unknown := models.NormalizeRegions(req.Region)
	if len(unknown) > 0 {
		fields = append(fields, "invalid region: "+strings.Join(unknown, ", ")+
			" (allowed: "+strings.Join(models.ValidRegions, ", ")+")")
	}

	if len(fields) > 0 {
		apperrors.Respond(c, apperrors.Validation(fields...))
		return
	}

	image, err := saveImage(c, h.Cfg.UploadDir)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	firm := models.Firm{
		FirmName: req.FirmName,
		Area:     req.Area,
		Category: category,
		Region:   region,
		Offer:    req.Offer,
		Image:    image,
		VendorID: vendor.ID,
	}
	if err := h.DB.Create(&firm).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			apperrors.Respond(c, apperrors.Duplicate("Firm name already registered"))
			return
		}
		apperrors.Respond(c, apperrors.Internal(err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Firm added successfully",
		"firm":    firm,
	})
}

// ListFirms returns all firms with their owning vendor resolved.
func (h *FirmHandler) ListFirms(c *gin.Context) {
	var firms []models.Firm
	if err := h.DB.Preload("Vendor").Find(&firms).Error; err != nil {
		apperrors.Respond(c, apperrors.Internal(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"firms": firms})
}

// GetFirm returns a single firm with vendor and products.
func (h *FirmHandler) GetFirm(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		apperrors.Respond(c, apperrors.Validation("Invalid firm ID format"))
		return
	}

	var firm models.Firm
	if err := h.DB.Preload("Vendor").Preload("Products").First(&firm, id).Error; err != nil {
		apperrors.Respond(c, apperrors.FromDB(err, "Firm"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"firm": firm})
}

// DeleteFirm removes a firm. Its products are detached, not deleted, so no
// product is left pointing at a missing firm.
func (h *FirmHandler) DeleteFirm(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		apperrors.Respond(c, apperrors.Validation("Invalid firm ID format"))
		return
	}

	var firm models.Firm
	if err := h.DB.First(&firm, id).Error; err != nil {
		apperrors.Respond(c, apperrors.FromDB(err, "Firm"))
		return
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Product{}).
			Where("firm_id = ?", firm.ID).
			Update("firm_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&firm).Error
	})
	if err != nil {
		apperrors.Respond(c, apperrors.Internal(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Firm deleted successfully"})
}
