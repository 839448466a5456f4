package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/nihalpictures/studio-api/internal/audit"
	"github.com/nihalpictures/studio-api/internal/httperr"
	"github.com/nihalpictures/studio-api/internal/httpresp"
	"github.com/nihalpictures/studio-api/internal/middleware"
	"github.com/nihalpictures/studio-api/internal/models"
)

type SiteSettingsHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewSiteSettingsHandler(db *gorm.DB, dispatcher *audit.Dispatcher) *SiteSettingsHandler {
	return &SiteSettingsHandler{db: db, audit: dispatcher}
}

type HeroStatsRequest struct {
	Stats []models.HeroStat `json:"stats" binding:"required"`
}

func (h *SiteSettingsHandler) GetHeroStats(c *gin.Context) {
	var setting models.SiteSetting
	err := h.db.First(&setting, "key = ?", "heroStats").Error
	if err == gorm.ErrRecordNotFound {
		httpresp.OK(c, gin.H{"key": "heroStats", "stats": defaultHeroStats()})
		return
	}
	if err != nil {
		httperr.Internal(c, "failed_to_get_hero_stats", "Erreur interne.")
		return
	}

	httpresp.OK(c, setting)
}

// PutHeroStats replaces the whole document, creating it on first save.
func (h *SiteSettingsHandler) PutHeroStats(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req HeroStatsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides.")
		return
	}

	setting := models.SiteSetting{
		Key:   "heroStats",
		Stats: req.Stats,
	}

	if err := h.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			UpdateAll: true,
		}).
		Create(&setting).Error; err != nil {
		httperr.Internal(c, "failed_to_save_hero_stats", "Erreur interne.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "hero_stats_updated",
		Entity:   "site_setting",
		EntityID: "heroStats",
	})

	httpresp.OK(c, setting)
}
