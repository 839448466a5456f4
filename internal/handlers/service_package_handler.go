package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/nihalpictures/studio-api/internal/audit"
	"github.com/nihalpictures/studio-api/internal/cache"
	"github.com/nihalpictures/studio-api/internal/feed"
	"github.com/nihalpictures/studio-api/internal/httperr"
	"github.com/nihalpictures/studio-api/internal/httpresp"
	"github.com/nihalpictures/studio-api/internal/middleware"
	"github.com/nihalpictures/studio-api/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type ServicePackageHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
	cache *cache.Cache
	feed  *feed.Hub
}

func NewServicePackageHandler(
	db *gorm.DB,
	dispatcher *audit.Dispatcher,
	cacheStore *cache.Cache,
	hub *feed.Hub,
) *ServicePackageHandler {
	return &ServicePackageHandler{
		db:    db,
		audit: dispatcher,
		cache: cacheStore,
		feed:  hub,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type ServicePackageRequest struct {
	ServiceNumber string   `json:"serviceNumber" binding:"required"`
	Name          string   `json:"name" binding:"required"`
	Category      string   `json:"category"`
	Price         float64  `json:"price"`
	Duration      string   `json:"duration"`
	Description   string   `json:"description"`
	Features      []string `json:"features"`
	Active        *bool    `json:"active"`
	ImageURL      string   `json:"imageUrl"`
}

func (r *ServicePackageRequest) apply(p *models.ServicePackage) {
	p.ServiceNumber = r.ServiceNumber
	p.Name = r.Name
	p.Category = r.Category
	p.Price = r.Price
	p.Duration = r.Duration
	p.Description = r.Description
	p.Features = r.Features
	p.ImageURL = r.ImageURL
	if r.Active != nil {
		p.Active = *r.Active
	}
}

// ======================================================
// LIST / GET
// ======================================================

func (h *ServicePackageHandler) List(c *gin.Context) {
	var packages []models.ServicePackage
	if err := h.db.Order("service_number ASC").Find(&packages).Error; err != nil {
		httperr.Internal(c, "failed_to_list_packages", "Erreur interne.")
		return
	}

	httpresp.List(c, packages)
}

func (h *ServicePackageHandler) Get(c *gin.Context) {
	var pkg models.ServicePackage
	if err := h.db.First(&pkg, "id = ?", c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "package_not_found", "Formule introuvable.")
		return
	}

	httpresp.OK(c, pkg)
}

// ======================================================
// CREATE
// ======================================================

func (h *ServicePackageHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req ServicePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides.")
		return
	}

	pkg := models.ServicePackage{Active: true}
	req.apply(&pkg)

	if err := h.db.Create(&pkg).Error; err != nil {
		httperr.Internal(c, "failed_to_create_package", "Erreur interne.")
		return
	}

	h.invalidate(c)
	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "package_created",
		Entity:   "service_package",
		EntityID: pkg.ID,
	})
	h.feed.Publish(c.Request.Context(), "services", "created", pkg.ID)

	c.JSON(201, pkg)
}

// ======================================================
// UPDATE
// ======================================================

func (h *ServicePackageHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var pkg models.ServicePackage
	if err := h.db.First(&pkg, "id = ?", c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "package_not_found", "Formule introuvable.")
		return
	}

	var req ServicePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides.")
		return
	}

	req.apply(&pkg)

	if err := h.db.Save(&pkg).Error; err != nil {
		httperr.Internal(c, "failed_to_update_package", "Erreur interne.")
		return
	}

	h.invalidate(c)
	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "package_updated",
		Entity:   "service_package",
		EntityID: pkg.ID,
	})
	h.feed.Publish(c.Request.Context(), "services", "updated", pkg.ID)

	httpresp.OK(c, pkg)
}

// ======================================================
// DELETE
// ======================================================

func (h *ServicePackageHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	res := h.db.Delete(&models.ServicePackage{}, "id = ?", id)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_package", "Erreur interne.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "package_not_found", "Formule introuvable.")
		return
	}

	h.invalidate(c)
	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "package_deleted",
		Entity:   "service_package",
		EntityID: id,
	})
	h.feed.Publish(c.Request.Context(), "services", "deleted", id)

	c.JSON(200, gin.H{"deleted": true})
}

func (h *ServicePackageHandler) invalidate(c *gin.Context) {
	h.cache.Invalidate(c.Request.Context(), cache.KeyPublicPackages)
}
