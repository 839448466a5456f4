package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/nihalpictures/studio-api/internal/audit"
	"github.com/nihalpictures/studio-api/internal/cache"
	domain "github.com/nihalpictures/studio-api/internal/domain/booking"
	"github.com/nihalpictures/studio-api/internal/feed"
	"github.com/nihalpictures/studio-api/internal/httperr"
	"github.com/nihalpictures/studio-api/internal/httpresp"
	"github.com/nihalpictures/studio-api/internal/models"
	"github.com/nihalpictures/studio-api/internal/timezone"
	"github.com/nihalpictures/studio-api/internal/usecase/booking"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	db    *gorm.DB
	cache *cache.Cache

	createBooking *booking.CreatePublicBooking
	availability  *booking.MonthAvailability
}

func NewPublicHandler(
	db *gorm.DB,
	cacheStore *cache.Cache,
	dispatcher *audit.Dispatcher,
	hub *feed.Hub,
	repo domain.Repository,
) *PublicHandler {
	return &PublicHandler{
		db:            db,
		cache:         cacheStore,
		createBooking: booking.NewCreatePublicBooking(repo, dispatcher, hub),
		availability:  booking.NewMonthAvailability(repo),
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type PublicCreateBookingRequest struct {
	FirstName        string `json:"firstName" binding:"required"`
	LastName         string `json:"lastName" binding:"required"`
	HusbandFirstName string `json:"husbandFirstName"`
	WifeFirstName    string `json:"wifeFirstName"`

	Email        string   `json:"email" binding:"required,email"`
	PhoneNumbers []string `json:"phoneNumbers" binding:"required"`

	Wilaya         string `json:"wilaya" binding:"required"`
	AddressDetails string `json:"addressDetails" binding:"required"`
	SalleName      string `json:"salleName"`

	PackName string `json:"packName" binding:"required"`
	Date     string `json:"date" binding:"required"` // YYYY-MM-DD
	Time     string `json:"time" binding:"required"` // HH:mm

	Cortege string `json:"cortege"`
	Remarks string `json:"remarks"`
}

////////////////////////////////////////////////////////
// PACKAGES
////////////////////////////////////////////////////////

func (h *PublicHandler) ListPackages(c *gin.Context) {
	ctx := c.Request.Context()

	var packages []models.ServicePackage
	if h.cache.GetJSON(ctx, cache.KeyPublicPackages, &packages) {
		httpresp.List(c, packages)
		return
	}

	if err := h.db.
		Where("active = ?", true).
		Order("service_number ASC").
		Find(&packages).Error; err != nil {
		httperr.Internal(c, "failed_to_list_packages", "Erreur interne.")
		return
	}

	h.cache.SetJSON(ctx, cache.KeyPublicPackages, packages)
	httpresp.List(c, packages)
}

////////////////////////////////////////////////////////
// MEDIA
////////////////////////////////////////////////////////

func (h *PublicHandler) ListMedia(c *gin.Context) {
	ctx := c.Request.Context()

	var items []models.MediaItem
	if h.cache.GetJSON(ctx, cache.KeyPublicMedia, &items) {
		httpresp.List(c, items)
		return
	}

	if err := h.db.
		Where("is_active = ?", true).
		Order("order_index ASC, created_at DESC").
		Find(&items).Error; err != nil {
		httperr.Internal(c, "failed_to_list_media", "Erreur interne.")
		return
	}

	h.cache.SetJSON(ctx, cache.KeyPublicMedia, items)
	httpresp.List(c, items)
}

////////////////////////////////////////////////////////
// HERO STATS
////////////////////////////////////////////////////////

func defaultHeroStats() []models.HeroStat {
	return []models.HeroStat{
		{ID: "weddings", Label: "Mariages immortalisés", Value: 500, Suffix: "+"},
		{ID: "years", Label: "Années d'expérience", Value: 10, Suffix: "+"},
		{ID: "clients", Label: "Clients satisfaits", Value: 1000, Suffix: "+"},
	}
}

func (h *PublicHandler) HeroStats(c *gin.Context) {
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

////////////////////////////////////////////////////////
// VISITOR COUNTER
////////////////////////////////////////////////////////

// RecordVisit bumps the global and current-month counters. The singleton row
// is locked so two page loads never lose an increment.
func (h *PublicHandler) RecordVisit(c *gin.Context) {
	now := timezone.Now()
	monthKey := now.Format("2006-01")

	var stats models.VisitorStats

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&stats, "id = ?", 1).Error; err != nil {

			if err != gorm.ErrRecordNotFound {
				return err
			}
			stats = models.VisitorStats{ID: 1, MonthlyVisits: map[string]int{}}
		}

		if stats.MonthlyVisits == nil {
			stats.MonthlyVisits = map[string]int{}
		}

		stats.TotalVisitors++
		stats.MonthlyVisits[monthKey]++
		stats.LastVisit = now

		return tx.Save(&stats).Error
	})
	if err != nil {
		httperr.Internal(c, "failed_to_record_visit", "Erreur interne.")
		return
	}

	httpresp.OK(c, gin.H{
		"totalVisitors": stats.TotalVisitors,
		"monthlyVisits": stats.MonthlyVisits[monthKey],
	})
}

////////////////////////////////////////////////////////
// BOOKINGS
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateBooking(c *gin.Context) {
	var req PublicCreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides.")
		return
	}

	b, err := h.createBooking.Execute(c.Request.Context(), booking.CreatePublicBookingInput{
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		HusbandFirstName: req.HusbandFirstName,
		WifeFirstName:    req.WifeFirstName,
		Email:            req.Email,
		PhoneNumbers:     req.PhoneNumbers,
		Wilaya:           req.Wilaya,
		AddressDetails:   req.AddressDetails,
		SalleName:        req.SalleName,
		PackName:         req.PackName,
		Date:             req.Date,
		Time:             req.Time,
		Cortege:          req.Cortege,
		Remarks:          req.Remarks,
	})
	if err != nil {
		httperr.FromError(c, err, "failed_to_create_booking")
		return
	}

	c.JSON(201, gin.H{
		"id":     b.ID,
		"status": b.Status,
		"date":   b.Date,
		"time":   b.Time,
	})
}

////////////////////////////////////////////////////////
// AVAILABILITY (no client data leaves here)
////////////////////////////////////////////////////////

func (h *PublicHandler) Availability(c *gin.Context) {
	now := timezone.Now()

	year, err := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(now.Year())))
	if err != nil || year < 2000 || year > 2100 {
		httperr.BadRequest(c, "invalid_year", "Année invalide.")
		return
	}

	month, err := strconv.Atoi(c.DefaultQuery("month", strconv.Itoa(int(now.Month()))))
	if err != nil {
		httperr.BadRequest(c, "invalid_month", "Mois invalide.")
		return
	}

	days, err := h.availability.Execute(c.Request.Context(), year, month)
	if err != nil {
		httperr.FromError(c, err, "failed_to_build_calendar")
		return
	}

	c.JSON(200, gin.H{
		"year":  year,
		"month": month,
		"days":  days,
	})
}
