package booking

import (
	"context"
	"strings"
	"time"

	"github.com/nihalpictures/studio-api/internal/audit"
	domain "github.com/nihalpictures/studio-api/internal/domain/booking"
	"github.com/nihalpictures/studio-api/internal/feed"
	"github.com/nihalpictures/studio-api/internal/httperr"
	"github.com/nihalpictures/studio-api/internal/models"
	"github.com/nihalpictures/studio-api/internal/timezone"
	"github.com/nihalpictures/studio-api/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreatePublicBookingInput struct {
	FirstName        string
	LastName         string
	HusbandFirstName string
	WifeFirstName    string

	Email        string
	PhoneNumbers []string

	Wilaya         string
	AddressDetails string
	SalleName      string

	PackName string
	Date     string
	Time     string

	Cortege string
	Remarks string
}

// ======================================================
// USE CASE
// ======================================================

type CreatePublicBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	feed  *feed.Hub
}

func NewCreatePublicBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	feed *feed.Hub,
) *CreatePublicBooking {
	return &CreatePublicBooking{
		repo:  repo,
		audit: audit,
		feed:  feed,
	}
}

func (uc *CreatePublicBooking) Execute(
	ctx context.Context,
	in CreatePublicBookingInput,
) (*models.Booking, error) {

	phones := make([]string, 0, len(in.PhoneNumbers))
	for _, p := range in.PhoneNumbers {
		if s := strings.TrimSpace(p); s != "" {
			phones = append(phones, s)
		}
	}
	if len(phones) == 0 {
		return nil, httperr.ErrBusiness("phone_number_required")
	}

	if _, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		timezone.Location(timezone.DefaultTimezone),
	); err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	if !validators.IsEmailDomainValid(email) {
		return nil, httperr.ErrBusiness("invalid_email_domain")
	}

	b := &models.Booking{
		FirstName:        strings.TrimSpace(in.FirstName),
		LastName:         strings.TrimSpace(in.LastName),
		HusbandFirstName: strings.TrimSpace(in.HusbandFirstName),
		WifeFirstName:    strings.TrimSpace(in.WifeFirstName),
		Email:            email,
		PhoneNumbers:     phones,
		Wilaya:           in.Wilaya,
		AddressDetails:   in.AddressDetails,
		SalleName:        in.SalleName,
		PackName:         in.PackName,
		Date:             in.Date,
		Time:             in.Time,
		Cortege:          in.Cortege,
		Remarks:          in.Remarks,
		Status:           string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "booking_requested",
		Entity:   "booking",
		EntityID: b.ID,
	})
	uc.feed.Publish(ctx, "bookings", "created", b.ID)

	return b, nil
}
