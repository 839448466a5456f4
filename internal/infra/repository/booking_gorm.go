package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/nihalpictures/studio-api/internal/domain/booking"
	"github.com/nihalpictures/studio-api/internal/httperr"
	"github.com/nihalpictures/studio-api/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookingGormRepository) GetBooking(
	ctx context.Context,
	id string,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Payments", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Where("id = ?", id).
		First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) ListBookings(
	ctx context.Context,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Payments", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Order("created_at DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *BookingGormRepository) DeleteBooking(
	ctx context.Context,
	id string,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("booking_id = ?", id).
			Delete(&models.Payment{}).Error; err != nil {
			return err
		}

		res := tx.Where("id = ?", id).Delete(&models.Booking{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// --------------------------------------------------
// Payment (guarded append)
// --------------------------------------------------

// AddPaymentGuarded holds a FOR UPDATE lock on the booking row while checking
// the amount against the remaining balance, so two concurrent sessions cannot
// jointly overpay a booking.
func (r *BookingGormRepository) AddPaymentGuarded(
	ctx context.Context,
	bookingID string,
	amount float64,
	method string,
	note string,
) (*models.Payment, error) {

	var payment *models.Payment

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var b models.Booking
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", bookingID).
			First(&b).Error; err != nil {
			return err
		}

		var paid float64
		if err := tx.
			Model(&models.Payment{}).
			Where("booking_id = ?", bookingID).
			Select("COALESCE(SUM(amount), 0)").
			Scan(&paid).Error; err != nil {
			return err
		}

		if amount > b.TotalPrice-paid {
			return httperr.ErrBusiness("payment_exceeds_remaining")
		}

		payment = &models.Payment{
			BookingID: bookingID,
			Amount:    amount,
			Method:    method,
			Note:      note,
		}
		return tx.Create(payment).Error
	})
	if err != nil {
		return nil, err
	}

	return payment, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
