package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Supplement is one extra line item sold on top of a package.
type Supplement struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type Booking struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	FirstName string `gorm:"size:100;not null" json:"firstName"`
	LastName  string `gorm:"size:100;not null" json:"lastName"`

	// Wedding shoots carry the couple's first names separately.
	HusbandFirstName string `gorm:"size:100" json:"husbandFirstName,omitempty"`
	WifeFirstName    string `gorm:"size:100" json:"wifeFirstName,omitempty"`

	Email        string   `gorm:"size:100;not null" json:"email"`
	PhoneNumbers []string `gorm:"serializer:json" json:"phoneNumbers"`

	Wilaya         string `gorm:"size:50;not null" json:"wilaya"`
	AddressDetails string `gorm:"size:255" json:"addressDetails"`
	SalleName      string `gorm:"size:150" json:"salleName,omitempty"`

	PackName string `gorm:"size:100;not null" json:"packName"`

	// Session date and time as entered on the form: "2006-01-02" / "15:04".
	Date string `gorm:"size:10;not null;index" json:"date"`
	Time string `gorm:"size:5" json:"time"`

	Status string `gorm:"size:20;default:'Requested'" json:"status"`

	TotalPrice float64 `json:"totalPrice"`
	Cortege    string  `gorm:"size:10" json:"cortege,omitempty"`
	Remarks    string  `gorm:"type:text" json:"remarks,omitempty"`

	Supplements      []Supplement `gorm:"serializer:json" json:"supplements,omitempty"`
	SupplementsTotal float64      `json:"supplementsTotal"`

	Payments []Payment `gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE" json:"payments,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

// ClientName is the display form used in lists, exports and the voucher.
func (b *Booking) ClientName() string {
	return b.FirstName + " " + b.LastName
}
