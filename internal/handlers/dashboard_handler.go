package handlers

import (
	"sort"

	"github.com/gin-gonic/gin"

	domain "github.com/nihalpictures/studio-api/internal/domain/booking"
	"github.com/nihalpictures/studio-api/internal/httperr"
	"github.com/nihalpictures/studio-api/internal/httpresp"
	"github.com/nihalpictures/studio-api/internal/timezone"
)

type DashboardHandler struct {
	repo domain.Repository
}

func NewDashboardHandler(repo domain.Repository) *DashboardHandler {
	return &DashboardHandler{repo: repo}
}

const recentLimit = 5

// Stats aggregates the figures shown on the admin landing page: global
// totals, per-status counts, the current month's collected and outstanding
// amounts, and the most recent requests.
func (h *DashboardHandler) Stats(c *gin.Context) {
	bookings, err := h.repo.ListBookings(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_load_dashboard", "Erreur interne.")
		return
	}

	aggregated := domain.Aggregate(bookings)
	now := timezone.Now()
	monthPrefix := now.Format("2006-01")

	statusCounts := map[string]int{}
	var totalRevenue, totalPending float64
	var monthRevenue, monthPending float64
	var monthBookings int

	for _, b := range aggregated {
		statusCounts[b.Status]++
		totalRevenue += b.TotalPaid
		totalPending += b.RemainingAmount

		if len(b.Date) >= 7 && b.Date[:7] == monthPrefix {
			monthBookings++
			monthRevenue += b.TotalPaid
			monthPending += b.RemainingAmount
		}
	}

	recent := make([]domain.Aggregated, len(aggregated))
	copy(recent, aggregated)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})
	if len(recent) > recentLimit {
		recent = recent[:recentLimit]
	}

	httpresp.OK(c, gin.H{
		"totalBookings": len(aggregated),
		"statusCounts":  statusCounts,
		"totalRevenue":  totalRevenue,
		"totalPending":  totalPending,
		"month": gin.H{
			"bookings": monthBookings,
			"revenue":  monthRevenue,
			"pending":  monthPending,
		},
		"recentBookings": recent,
	})
}
