package handlers

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/nihalpictures/studio-api/internal/audit"
	"github.com/nihalpictures/studio-api/internal/config"
	domain "github.com/nihalpictures/studio-api/internal/domain/booking"
	"github.com/nihalpictures/studio-api/internal/export"
	"github.com/nihalpictures/studio-api/internal/feed"
	"github.com/nihalpictures/studio-api/internal/gateway"
	"github.com/nihalpictures/studio-api/internal/httperr"
	"github.com/nihalpictures/studio-api/internal/httpresp"
	"github.com/nihalpictures/studio-api/internal/middleware"
	"github.com/nihalpictures/studio-api/internal/timezone"
	"github.com/nihalpictures/studio-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	repo   domain.Repository
	config *config.Config

	list        *booking.ListBookings
	updStatus   *booking.UpdateStatus
	updPrice    *booking.UpdatePrice
	del         *booking.DeleteBooking
	pay         *booking.RecordPayment
	payLink     *booking.CreatePaymentLink
	calendarGen *booking.MonthAvailability
}

func NewBookingHandler(
	repo domain.Repository,
	cfg *config.Config,
	dispatcher *audit.Dispatcher,
	hub *feed.Hub,
	payGateway gateway.PaymentLinkGateway,
) *BookingHandler {
	return &BookingHandler{
		repo:        repo,
		config:      cfg,
		list:        booking.NewListBookings(repo),
		updStatus:   booking.NewUpdateStatus(repo, dispatcher, hub),
		updPrice:    booking.NewUpdatePrice(repo, dispatcher, hub),
		del:         booking.NewDeleteBooking(repo, dispatcher, hub),
		pay:         booking.NewRecordPayment(repo, dispatcher, hub),
		payLink:     booking.NewCreatePaymentLink(repo, payGateway, dispatcher),
		calendarGen: booking.NewMonthAvailability(repo),
	}
}

// ======================================================
// REQUESTS
// ======================================================

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type UpdatePriceRequest struct {
	TotalPrice float64 `json:"totalPrice"`
}

type RecordPaymentRequest struct {
	Amount float64 `json:"amount" binding:"required"`
	Method string  `json:"method" binding:"required"`
	Note   string  `json:"note"`
}

// ======================================================
// LIST (search + status + date window + sort)
// ======================================================

func bookingFilter(c *gin.Context) domain.Filter {
	return domain.Filter{
		Query:     c.Query("q"),
		Status:    c.DefaultQuery("status", "all"),
		DateRange: c.DefaultQuery("range", "all"),
		SortBy:    c.DefaultQuery("sortBy", domain.SortCreatedAt),
		SortDesc:  c.DefaultQuery("sortDir", "desc") == "desc",
	}
}

func (h *BookingHandler) List(c *gin.Context) {
	rows, total, err := h.list.Execute(c.Request.Context(), bookingFilter(c))
	if err != nil {
		httperr.FromError(c, err, "failed_to_list_bookings")
		return
	}

	httpresp.FilteredList(c, rows, total)
}

// ======================================================
// GET
// ======================================================

func (h *BookingHandler) Get(c *gin.Context) {
	b, err := h.repo.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "booking_not_found", "Réservation introuvable.")
			return
		}
		httperr.Internal(c, "failed_to_get_booking", "Erreur interne.")
		return
	}

	httpresp.OK(c, domain.Aggregated{
		Booking: *b,
		Finance: domain.ComputeFinance(b.TotalPrice, b.Payments),
	})
}

// ======================================================
// STATUS
// ======================================================

func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides.")
		return
	}

	b, err := h.updStatus.Execute(c.Request.Context(), userID, c.Param("id"), req.Status)
	if err != nil {
		httperr.FromError(c, err, "failed_to_update_status")
		return
	}

	httpresp.OK(c, b)
}

// ======================================================
// PRICE
// ======================================================

func (h *BookingHandler) UpdatePrice(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req UpdatePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides.")
		return
	}

	b, err := h.updPrice.Execute(c.Request.Context(), userID, c.Param("id"), req.TotalPrice)
	if err != nil {
		httperr.FromError(c, err, "failed_to_update_price")
		return
	}

	httpresp.OK(c, b)
}

// ======================================================
// DELETE
// ======================================================

func (h *BookingHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	if err := h.del.Execute(c.Request.Context(), userID, c.Param("id")); err != nil {
		httperr.FromError(c, err, "failed_to_delete_booking")
		return
	}

	c.JSON(200, gin.H{"deleted": true})
}

// ======================================================
// PAYMENTS
// ======================================================

func (h *BookingHandler) RecordPayment(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides.")
		return
	}

	p, err := h.pay.Execute(c.Request.Context(), userID, booking.RecordPaymentInput{
		BookingID: c.Param("id"),
		Amount:    req.Amount,
		Method:    req.Method,
		Note:      req.Note,
	})
	if err != nil {
		httperr.FromError(c, err, "failed_to_record_payment")
		return
	}

	c.JSON(201, p)
}

func (h *BookingHandler) CreatePaymentLink(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	link, err := h.payLink.Execute(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		httperr.FromError(c, err, "failed_to_create_payment_link")
		return
	}

	httpresp.OK(c, gin.H{"paymentUrl": link})
}

// ======================================================
// CALENDAR
// ======================================================

func (h *BookingHandler) Calendar(c *gin.Context) {
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

	days, err := h.calendarGen.Execute(c.Request.Context(), year, month)
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

// ======================================================
// EXPORTS
// ======================================================

// ExportCSV honors the same filter params as List, so the download matches
// what the admin sees on screen.
func (h *BookingHandler) ExportCSV(c *gin.Context) {
	rows, _, err := h.list.Filtered(c.Request.Context(), bookingFilter(c))
	if err != nil {
		httperr.Internal(c, "failed_to_export", "Erreur interne.")
		return
	}

	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, rows); err != nil {
		httperr.Internal(c, "failed_to_export", "Erreur interne.")
		return
	}

	filename := export.CSVFilename(timezone.Now())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(200, "text/csv; charset=utf-8", buf.Bytes())
}

func (h *BookingHandler) Voucher(c *gin.Context) {
	b, err := h.repo.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "booking_not_found", "Réservation introuvable.")
			return
		}
		httperr.Internal(c, "failed_to_get_booking", "Erreur interne.")
		return
	}

	bookingURL := fmt.Sprintf("%s/admin/bookings/%s", h.config.PublicBaseURL, b.ID)

	pdf, err := export.RenderVoucher(b, bookingURL, timezone.Now())
	if err != nil {
		httperr.Internal(c, "failed_to_render_voucher", "Erreur interne.")
		return
	}

	filename := export.VoucherFilename(b.ID, timezone.Now())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(200, "application/pdf", pdf)
}
