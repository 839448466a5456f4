package export

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	qrcode "github.com/skip2/go-qrcode"

	domain "github.com/nihalpictures/studio-api/internal/domain/booking"
	"github.com/nihalpictures/studio-api/internal/models"
)

const (
	studioName    = "Nihal's Pictures"
	studioTagline = "Professional Photography Services"
	currency      = "DZD"
)

// VoucherNumber is the short reference printed on the document: the last 8
// characters of the booking id, upper-cased.
func VoucherNumber(bookingID string) string {
	if len(bookingID) > 8 {
		bookingID = bookingID[len(bookingID)-8:]
	}
	return strings.ToUpper(bookingID)
}

// VoucherFilename names the download: payment-voucher-<ref>-<ISO date>.pdf.
func VoucherFilename(bookingID string, now time.Time) string {
	return fmt.Sprintf("payment-voucher-%s-%s.pdf", VoucherNumber(bookingID), now.Format("2006-01-02"))
}

// RenderVoucher builds the single-page A4 payment voucher for one booking:
// studio header, client and service blocks, pricing summary, payment history
// and a QR code pointing back at the booking record.
func RenderVoucher(b *models.Booking, bookingURL string, now time.Time) ([]byte, error) {
	fin := domain.ComputeFinance(b.TotalPrice, b.Payments)

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()
	pdf.SetAutoPageBreak(false, 0)

	// --- Header ---
	pdf.SetFont("Helvetica", "B", 20)
	pdf.Cell(0, 10, studioName)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(100, 116, 139)
	pdf.Cell(0, 6, studioTagline)
	pdf.SetTextColor(26, 32, 44)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(130, 15)
	pdf.Cell(65, 8, "Bon de payement")
	pdf.SetXY(130, 23)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(65, 6, "#"+VoucherNumber(b.ID))
	pdf.SetXY(130, 29)
	pdf.SetTextColor(100, 116, 139)
	pdf.Cell(65, 6, now.Format("02/01/2006"))
	pdf.SetTextColor(26, 32, 44)

	pdf.SetY(38)
	pdf.SetDrawColor(226, 232, 240)
	pdf.Line(15, pdf.GetY(), 195, pdf.GetY())
	pdf.Ln(6)

	// --- Client block ---
	sectionTitle(pdf, tr, "INFORMATION DU CLIENT")
	line(pdf, tr, "Nom", b.ClientName())
	if b.HusbandFirstName != "" {
		line(pdf, tr, "Marié", b.HusbandFirstName)
	}
	if b.WifeFirstName != "" {
		line(pdf, tr, "Mariée", b.WifeFirstName)
	}
	line(pdf, tr, "Email", b.Email)
	for i, phone := range b.PhoneNumbers {
		if i == 0 {
			line(pdf, tr, "Téléphone", phone)
		} else {
			line(pdf, tr, fmt.Sprintf("Téléphone %d", i+1), phone)
		}
	}
	line(pdf, tr, "Wilaya", b.Wilaya)
	line(pdf, tr, "Adresse", b.AddressDetails)
	if b.SalleName != "" {
		line(pdf, tr, "Salle", b.SalleName)
	}
	pdf.Ln(4)

	// --- Service block ---
	sectionTitle(pdf, tr, "SERVICE DETAILS")
	line(pdf, tr, "Service", b.PackName)
	line(pdf, tr, "Date", b.Date)
	line(pdf, tr, "Heure", b.Time)
	if b.Cortege != "" {
		line(pdf, tr, "Cortège", b.Cortege)
	}
	if b.Remarks != "" {
		line(pdf, tr, "Notes", b.Remarks)
	}
	for _, s := range b.Supplements {
		line(pdf, tr, "Supplément", fmt.Sprintf("%s: %s %s", s.Name, formatAmount(s.Price), currency))
	}
	if b.SupplementsTotal > 0 {
		line(pdf, tr, "Total Suppléments", formatAmount(b.SupplementsTotal)+" "+currency)
	}
	pdf.Ln(4)

	// --- Pricing block ---
	sectionTitle(pdf, tr, "PRICING")
	line(pdf, tr, "Total", formatAmount(b.TotalPrice)+" "+currency)
	line(pdf, tr, "Payé", formatAmount(fin.TotalPaid)+" "+currency)
	line(pdf, tr, "Restant", formatAmount(fin.RemainingAmount)+" "+currency)
	line(pdf, tr, "Statut", string(fin.PaymentStatus))
	pdf.Ln(4)

	// --- Payment history (most recent four) ---
	if len(b.Payments) > 0 {
		sectionTitle(pdf, tr, "PAYMENT HISTORY")
		payments := b.Payments
		if len(payments) > 4 {
			payments = payments[:4]
		}
		for _, p := range payments {
			detail := fmt.Sprintf("%s %s (%s)", formatAmount(p.Amount), currency, p.Method)
			if p.Note != "" {
				detail += " - " + p.Note
			}
			line(pdf, tr, p.CreatedAt.Format("02/01/2006"), detail)
		}
	}

	// --- QR linking back to the booking record ---
	if qr, err := qrcode.Encode(bookingURL, qrcode.Medium, 256); err == nil {
		pdf.RegisterImageOptionsReader(
			"qr",
			gofpdf.ImageOptions{ImageType: "png"},
			bytes.NewReader(qr),
		)
		pdf.ImageOptions("qr", 160, 240, 30, 0, false, gofpdf.ImageOptions{ImageType: "png"}, 0, "")
	}

	// --- Footer ---
	pdf.SetY(272)
	pdf.SetDrawColor(226, 232, 240)
	pdf.Line(15, pdf.GetY(), 195, pdf.GetY())
	pdf.Ln(3)
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(100, 116, 139)
	pdf.Cell(0, 5, tr("Ce bon de payement atteste des montants versés à la date d'émission. Merci de votre confiance."))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func sectionTitle(pdf *gofpdf.Fpdf, tr func(string) string, title string) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetTextColor(59, 130, 246)
	pdf.Cell(0, 7, tr(title))
	pdf.Ln(7)
	pdf.SetTextColor(26, 32, 44)
}

func line(pdf *gofpdf.Fpdf, tr func(string) string, label, value string) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.Cell(40, 6, tr(label)+":")
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 6, tr(value), "", "L", false)
}
