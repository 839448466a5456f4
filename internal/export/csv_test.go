package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	domain "github.com/nihalpictures/studio-api/internal/domain/booking"
	"github.com/nihalpictures/studio-api/internal/models"
)

func sampleRow() domain.Aggregated {
	b := models.Booking{
		ID:             "6c1f9a2e-4b7d-4c3a-9f10-2a5e8647d3ab",
		FirstName:      "Amina",
		LastName:       "Bensaid",
		Email:          "amina@example.dz",
		PhoneNumbers:   []string{"0550 11 22 33", "0770 44 55 66"},
		Wilaya:         "Alger",
		AddressDetails: "12, rue Didouche Mourad, Alger",
		SalleName:      "Salle El Aurassi",
		PackName:       "Pack Or",
		Date:           "2026-09-12",
		Time:           "18:00",
		Status:         "confirmed",
		TotalPrice:     80000,
		Supplements:    []models.Supplement{{Name: "Drone"}, {Name: "Album, luxe"}},
		Remarks:        `Entrée "surprise", confirmer la veille`,
		Payments:       []models.Payment{{Amount: 20000}, {Amount: 20000}},
		CreatedAt:      time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
	}
	return domain.Aggregated{
		Booking: b,
		Finance: domain.ComputeFinance(b.TotalPrice, b.Payments),
	}
}

func TestWriteCSVRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, []domain.Aggregated{sampleRow()}); err != nil {
		t.Fatalf("write: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("exported CSV must parse back cleanly: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("expected header + 1 row, got %d records", len(records))
	}

	header, row := records[0], records[1]

	if len(header) != len(CSVHeader) {
		t.Fatalf("expected %d columns, got %d", len(CSVHeader), len(header))
	}
	for i := range header {
		if header[i] != CSVHeader[i] {
			t.Fatalf("column %d: expected %q, got %q", i, CSVHeader[i], header[i])
		}
	}

	col := func(name string) string {
		for i, h := range header {
			if h == name {
				return row[i]
			}
		}
		t.Fatalf("no column %q", name)
		return ""
	}

	if col("Client Name") != "Amina Bensaid" {
		t.Fatalf("client name: %q", col("Client Name"))
	}
	if col("Phone Numbers") != "0550 11 22 33 | 0770 44 55 66" {
		t.Fatalf("phones: %q", col("Phone Numbers"))
	}
	if col("Supplements") != "Drone | Album, luxe" {
		t.Fatalf("supplements with commas must survive: %q", col("Supplements"))
	}
	if col("Remarks") != `Entrée "surprise", confirmer la veille` {
		t.Fatalf("quoted remarks must survive: %q", col("Remarks"))
	}
	if col("Paid Amount") != "40000" || col("Remaining") != "40000" {
		t.Fatalf("amounts: paid %q remaining %q", col("Paid Amount"), col("Remaining"))
	}
	if col("Payment Status") != "partial" {
		t.Fatalf("payment status: %q", col("Payment Status"))
	}
}

func TestWriteCSVLargeAmounts(t *testing.T) {
	b := models.Booking{
		ID:         "large",
		FirstName:  "Yasmine",
		LastName:   "Belkacem",
		TotalPrice: 1500000,
		Payments:   []models.Payment{{Amount: 1000000}},
	}
	row := domain.Aggregated{
		Booking: b,
		Finance: domain.ComputeFinance(b.TotalPrice, b.Payments),
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, []domain.Aggregated{row}); err != nil {
		t.Fatalf("write: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	got := strings.Join(records[1], ",")
	for _, want := range []string{"1500000", "1000000", "500000"} {
		if !strings.Contains(got, want) {
			t.Fatalf("amounts above a million must stay plain decimals, row: %s", got)
		}
	}
	if strings.Contains(got, "e+") {
		t.Fatalf("scientific notation leaked into the export: %s", got)
	}
}

func TestFormatAmount(t *testing.T) {
	cases := map[float64]string{
		0:       "0",
		40000:   "40000",
		1000000: "1000000",
		1500000: "1500000",
		2500.5:  "2500.5",
		-20000:  "-20000",
	}
	for in, want := range cases {
		if got := formatAmount(in); got != want {
			t.Fatalf("formatAmount(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestWriteCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, nil); err != nil {
		t.Fatalf("write: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 1 {
		t.Fatalf("empty export is header only, got %d lines", len(lines))
	}
}

func TestCSVFilename(t *testing.T) {
	now := time.Date(2026, 8, 30, 15, 4, 0, 0, time.UTC)
	if got := CSVFilename(now); got != "bookings-complete-2026-08-30.csv" {
		t.Fatalf("got %q", got)
	}
}

func TestVoucherNaming(t *testing.T) {
	id := "6c1f9a2e-4b7d-4c3a-9f10-2a5e8647d3ab"

	if got := VoucherNumber(id); got != "8647D3AB" {
		t.Fatalf("voucher number: %q", got)
	}

	now := time.Date(2026, 8, 30, 15, 4, 0, 0, time.UTC)
	if got := VoucherFilename(id, now); got != "payment-voucher-8647D3AB-2026-08-30.pdf" {
		t.Fatalf("voucher filename: %q", got)
	}

	if got := VoucherNumber("abc"); got != "ABC" {
		t.Fatalf("short id: %q", got)
	}
}

func TestRenderVoucherProducesPDF(t *testing.T) {
	row := sampleRow()
	now := time.Date(2026, 8, 30, 15, 4, 0, 0, time.UTC)

	out, err := RenderVoucher(&row.Booking, "https://studio.example/admin/bookings/"+row.ID, now)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Fatal("output is not a PDF document")
	}
}
