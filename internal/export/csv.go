package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	domain "github.com/nihalpictures/studio-api/internal/domain/booking"
)

// CSVHeader is the fixed column list of the bookings export.
var CSVHeader = []string{
	"Date", "Time", "Client Name", "Husband First Name", "Wife First Name",
	"Email", "Phone Numbers", "Wilaya", "Address Details", "Venue/Salle",
	"Service", "Supplements", "Supplements Total", "Cortege", "Status",
	"Total Price", "Paid Amount", "Remaining", "Payment Status", "Remarks",
	"Created At",
}

// CSVFilename names the download: bookings-complete-<ISO date>.csv.
func CSVFilename(now time.Time) string {
	return fmt.Sprintf("bookings-complete-%s.csv", now.Format("2006-01-02"))
}

// WriteCSV emits the filtered booking list as RFC 4180 CSV. Every field is
// quoted as needed by the encoder; multi-valued fields are joined with " | "
// inside a single column.
func WriteCSV(w io.Writer, bookings []domain.Aggregated) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(CSVHeader); err != nil {
		return err
	}

	for _, b := range bookings {
		supplements := make([]string, 0, len(b.Supplements))
		for _, s := range b.Supplements {
			supplements = append(supplements, s.Name)
		}

		row := []string{
			b.Date,
			b.Time,
			b.ClientName(),
			b.HusbandFirstName,
			b.WifeFirstName,
			b.Email,
			strings.Join(b.PhoneNumbers, " | "),
			b.Wilaya,
			b.AddressDetails,
			b.SalleName,
			b.PackName,
			strings.Join(supplements, " | "),
			formatAmount(b.SupplementsTotal),
			b.Cortege,
			b.Status,
			formatAmount(b.TotalPrice),
			formatAmount(b.TotalPaid),
			formatAmount(b.RemainingAmount),
			string(b.PaymentStatus),
			b.Remarks,
			b.CreatedAt.Format("2006-01-02"),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// formatAmount prints plain decimals; %g would go scientific at a million
// dinars.
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
