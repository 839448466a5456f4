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

type MediaHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
	cache *cache.Cache
	feed  *feed.Hub
}

func NewMediaHandler(
	db *gorm.DB,
	dispatcher *audit.Dispatcher,
	cacheStore *cache.Cache,
	hub *feed.Hub,
) *MediaHandler {
	return &MediaHandler{
		db:    db,
		audit: dispatcher,
		cache: cacheStore,
		feed:  hub,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type MediaItemRequest struct {
	Type         string `json:"type" binding:"required,oneof=image video"`
	URL          string `json:"url" binding:"required"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	InstagramURL string `json:"instagramUrl"`
	IsActive     *bool  `json:"isActive"`
	OrderIndex   *int   `json:"orderIndex"`
}

func (r *MediaItemRequest) apply(m *models.MediaItem) {
	m.Type = r.Type
	m.URL = r.URL
	m.Title = r.Title
	m.Description = r.Description
	m.InstagramURL = r.InstagramURL
	if r.IsActive != nil {
		m.IsActive = *r.IsActive
	}
	if r.OrderIndex != nil {
		m.OrderIndex = *r.OrderIndex
	}
}

// ======================================================
// LIST
// ======================================================

func (h *MediaHandler) List(c *gin.Context) {
	q := h.db.Order("order_index ASC, created_at DESC")

	if mediaType := c.Query("type"); mediaType != "" {
		q = q.Where("type = ?", mediaType)
	}

	var items []models.MediaItem
	if err := q.Find(&items).Error; err != nil {
		httperr.Internal(c, "failed_to_list_media", "Erreur interne.")
		return
	}

	httpresp.List(c, items)
}

// ======================================================
// CREATE
// ======================================================

func (h *MediaHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req MediaItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides.")
		return
	}

	item := models.MediaItem{IsActive: true}
	req.apply(&item)

	if err := h.db.Create(&item).Error; err != nil {
		httperr.Internal(c, "failed_to_create_media", "Erreur interne.")
		return
	}

	h.invalidate(c)
	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "media_created",
		Entity:   "media_item",
		EntityID: item.ID,
	})
	h.feed.Publish(c.Request.Context(), "media", "created", item.ID)

	c.JSON(201, item)
}

// ======================================================
// UPDATE
// ======================================================

func (h *MediaHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var item models.MediaItem
	if err := h.db.First(&item, "id = ?", c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "media_not_found", "Média introuvable.")
		return
	}

	var req MediaItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides.")
		return
	}

	req.apply(&item)

	if err := h.db.Save(&item).Error; err != nil {
		httperr.Internal(c, "failed_to_update_media", "Erreur interne.")
		return
	}

	h.invalidate(c)
	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "media_updated",
		Entity:   "media_item",
		EntityID: item.ID,
	})
	h.feed.Publish(c.Request.Context(), "media", "updated", item.ID)

	httpresp.OK(c, item)
}

// ======================================================
// TOGGLE VISIBILITY
// ======================================================

func (h *MediaHandler) Toggle(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var item models.MediaItem
	if err := h.db.First(&item, "id = ?", c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "media_not_found", "Média introuvable.")
		return
	}

	item.IsActive = !item.IsActive

	if err := h.db.Save(&item).Error; err != nil {
		httperr.Internal(c, "failed_to_update_media", "Erreur interne.")
		return
	}

	h.invalidate(c)
	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "media_toggled",
		Entity:   "media_item",
		EntityID: item.ID,
		Metadata: map[string]any{"isActive": item.IsActive},
	})
	h.feed.Publish(c.Request.Context(), "media", "updated", item.ID)

	httpresp.OK(c, item)
}

// ======================================================
// DELETE
// ======================================================

func (h *MediaHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	res := h.db.Delete(&models.MediaItem{}, "id = ?", id)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_media", "Erreur interne.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "media_not_found", "Média introuvable.")
		return
	}

	h.invalidate(c)
	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "media_deleted",
		Entity:   "media_item",
		EntityID: id,
	})
	h.feed.Publish(c.Request.Context(), "media", "deleted", id)

	c.JSON(200, gin.H{"deleted": true})
}

func (h *MediaHandler) invalidate(c *gin.Context) {
	h.cache.Invalidate(c.Request.Context(), cache.KeyPublicMedia)
}
