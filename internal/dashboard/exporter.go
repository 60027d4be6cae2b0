package dashboard

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
)

// Exporter renders the ticket sales report in downloadable formats
type Exporter interface {
	ExportTicketSales(format string, rows []TicketSaleRow) ([]byte, string, string, error)
}

type exporter struct{}

func NewExporter() Exporter {
	return &exporter{}
}

var ticketSalesHeaders = []string{
	"Ticket ID", "Event", "Buyer", "Purchase Date", "Amount", "Payment Method", "Payment Status",
}

func ticketSaleCells(row TicketSaleRow) []string {
	return []string{
		strconv.FormatUint(uint64(row.TicketID), 10),
		row.EventName,
		row.Username,
		row.PurchaseDate.Format("2006-01-02 15:04"),
		fmt.Sprintf("%.2f", row.Amount),
		row.PaymentMethod,
		row.PaymentStatus,
	}
}

func (e *exporter) ExportTicketSales(format string, rows []TicketSaleRow) ([]byte, string, string, error) {
	timestamp := time.Now().Format("20060102_150405")

	switch format {
	case FormatCSV:
		data, err := e.ticketSalesCSV(rows)
		if err != nil {
			return nil, "", "", err
		}
		return data, fmt.Sprintf("ticket_sales_%s.csv", timestamp), "text/csv", nil

	case FormatExcel:
		data, err := e.ticketSalesExcel(rows)
		if err != nil {
			return nil, "", "", err
		}
		filename := fmt.Sprintf("ticket_sales_%s.xlsx", timestamp)
		return data, filename, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", nil

	case FormatPDF:
		data, err := e.ticketSalesPDF(rows)
		if err != nil {
			return nil, "", "", err
		}
		return data, fmt.Sprintf("ticket_sales_%s.pdf", timestamp), "application/pdf", nil

	default:
		return nil, "", "", fmt.Errorf("unsupported export format: %s", format)
	}
}

func (e *exporter) ticketSalesCSV(rows []TicketSaleRow) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(ticketSalesHeaders); err != nil {
		return nil, err
	}
	for _, row := range rows {
		if err := w.Write(ticketSaleCells(row)); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *exporter) ticketSalesExcel(rows []TicketSaleRow) ([]byte, error) {
	f := excelize.NewFile()
	sheet := "Ticket Sales"

	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for col, header := range ticketSalesHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		f.SetCellValue(sheet, cell, header)
	}

	for i, row := range rows {
		for col, value := range ticketSaleCells(row) {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			f.SetCellValue(sheet, cell, value)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *exporter) ticketSalesPDF(rows []TicketSaleRow) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, "Ticket Sales Report")
	pdf.Ln(12)

	colWidths := []float64{20, 70, 40, 40, 25, 40, 30}

	pdf.SetFont("Arial", "B", 9)
	for i, header := range ticketSalesHeaders {
		pdf.CellFormat(colWidths[i], 8, header, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 8)
	for _, row := range rows {
		for i, value := range ticketSaleCells(row) {
			// keep long event names inside the cell
			if len(value) > 45 {
				value = value[:42] + "..."
			}
			pdf.CellFormat(colWidths[i], 7, value, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
