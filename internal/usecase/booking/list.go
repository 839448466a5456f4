package booking

import (
	"context"

	domain "github.com/nihalpictures/studio-api/internal/domain/booking"
	"github.com/nihalpictures/studio-api/internal/dto"
	"github.com/nihalpictures/studio-api/internal/timezone"
)

type ListBookings struct {
	repo domain.Repository
}

func NewListBookings(repo domain.Repository) *ListBookings {
	return &ListBookings{repo: repo}
}

// Execute fetches the full collection, derives the financial view of each
// booking, and runs the search/status/date/sort pipeline. It returns the
// filtered rows and the unfiltered collection size.
func (uc *ListBookings) Execute(
	ctx context.Context,
	filter domain.Filter,
) ([]dto.BookingListDTO, int, error) {

	filtered, total, err := uc.Filtered(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	out := make([]dto.BookingListDTO, 0, len(filtered))
	for _, b := range filtered {
		out = append(out, toListDTO(b))
	}

	return out, total, nil
}

// Filtered is the shared fetch+aggregate+filter path behind the list view
// and the CSV export, so the two can never drift apart.
func (uc *ListBookings) Filtered(
	ctx context.Context,
	filter domain.Filter,
) ([]domain.Aggregated, int, error) {

	bookings, err := uc.repo.ListBookings(ctx)
	if err != nil {
		return nil, 0, err
	}

	aggregated := domain.Aggregate(bookings)
	return domain.Apply(aggregated, filter, timezone.Now()), len(bookings), nil
}

func toListDTO(b domain.Aggregated) dto.BookingListDTO {
	return dto.BookingListDTO{
		ID:               b.ID,
		ClientName:       b.ClientName(),
		HusbandFirstName: b.HusbandFirstName,
		WifeFirstName:    b.WifeFirstName,
		Email:            b.Email,
		PhoneNumbers:     b.PhoneNumbers,
		Wilaya:           b.Wilaya,
		AddressDetails:   b.AddressDetails,
		SalleName:        b.SalleName,
		PackName:         b.PackName,
		Date:             b.Date,
		Time:             b.Time,
		Status:           b.Status,
		Cortege:          b.Cortege,
		Remarks:          b.Remarks,
		Supplements:      b.Supplements,
		SupplementsTotal: b.SupplementsTotal,
		TotalPrice:       b.TotalPrice,
		TotalPaid:        b.TotalPaid,
		RemainingAmount:  b.RemainingAmount,
		PaymentStatus:    string(b.PaymentStatus),
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}
}
