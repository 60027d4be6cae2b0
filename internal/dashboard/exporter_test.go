package dashboard

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleRows() []TicketSaleRow {
	return []TicketSaleRow{
		{
			TicketID:      1,
			EventName:     "Summer Fest",
			Username:      "alice",
			PurchaseDate:  time.Date(2026, 7, 14, 18, 30, 0, 0, time.UTC),
			Amount:        1500,
			PaymentMethod: "gcash",
			PaymentStatus: "completed",
		},
		{
			TicketID:      2,
			EventName:     "Tech Conference",
			Username:      "bob",
			PurchaseDate:  time.Date(2026, 7, 15, 9, 0, 0, 0, time.UTC),
			Amount:        2500.5,
			PaymentMethod: "credit_card",
			PaymentStatus: "pending",
		},
	}
}

func TestExportTicketSalesCSV(t *testing.T) {
	data, filename, contentType, err := NewExporter().ExportTicketSales(FormatCSV, sampleRows())

	require.NoError(t, err)
	require.Equal(t, "text/csv", contentType)
	require.True(t, strings.HasPrefix(filename, "ticket_sales_"))
	require.True(t, strings.HasSuffix(filename, ".csv"))

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	require.Equal(t, ticketSalesHeaders, records[0])
	require.Equal(t, []string{"1", "Summer Fest", "alice", "2026-07-14 18:30", "1500.00", "gcash", "completed"}, records[1])
	require.Equal(t, "2500.50", records[2][4])
}

func TestExportTicketSalesExcel(t *testing.T) {
	data, filename, contentType, err := NewExporter().ExportTicketSales(FormatExcel, sampleRows())

	require.NoError(t, err)
	require.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", contentType)
	require.True(t, strings.HasSuffix(filename, ".xlsx"))

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Ticket Sales")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, "Summer Fest", rows[1][1])
	require.Equal(t, "bob", rows[2][2])
}

func TestExportTicketSalesPDF(t *testing.T) {
	data, filename, contentType, err := NewExporter().ExportTicketSales(FormatPDF, sampleRows())

	require.NoError(t, err)
	require.Equal(t, "application/pdf", contentType)
	require.True(t, strings.HasSuffix(filename, ".pdf"))
	require.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestExportTicketSalesEmpty(t *testing.T) {
	// Header-only export, not an error
	data, _, _, err := NewExporter().ExportTicketSales(FormatCSV, nil)

	require.NoError(t, err)
	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
}

func TestExportUnknownFormat(t *testing.T) {
	_, _, _, err := NewExporter().ExportTicketSales("docx", sampleRows())
	require.Error(t, err)
}
