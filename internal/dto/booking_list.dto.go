package dto

import (
	"time"

	"github.com/nihalpictures/studio-api/internal/models"
)

// BookingListDTO is one row of the admin bookings table: the stored record
// plus the derived payment figures.
type BookingListDTO struct {
	ID         string `json:"id"`
	ClientName string `json:"clientName"`

	HusbandFirstName string `json:"husbandFirstName,omitempty"`
	WifeFirstName    string `json:"wifeFirstName,omitempty"`

	Email        string   `json:"email"`
	PhoneNumbers []string `json:"phoneNumbers"`

	Wilaya         string `json:"wilaya"`
	AddressDetails string `json:"addressDetails"`
	SalleName      string `json:"salleName,omitempty"`

	PackName string `json:"packName"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Status   string `json:"status"`
	Cortege  string `json:"cortege,omitempty"`
	Remarks  string `json:"remarks,omitempty"`

	Supplements      []models.Supplement `json:"supplements,omitempty"`
	SupplementsTotal float64             `json:"supplementsTotal"`

	TotalPrice      float64 `json:"totalPrice"`
	TotalPaid       float64 `json:"totalPaid"`
	RemainingAmount float64 `json:"remainingAmount"`
	PaymentStatus   string  `json:"paymentStatus"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
