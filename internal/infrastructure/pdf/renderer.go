package pdf

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/MGTheTrain/servicehub/internal/domain/audits"
	"github.com/MGTheTrain/servicehub/internal/domain/bookings"
	"github.com/MGTheTrain/servicehub/internal/domain/commerce"

	"github.com/go-pdf/fpdf"
)

const (
	brand      = "ServiceHub"
	timeLayout = "02 Jan 2006 15:04 MST"
	lineHeight = 6.0
	labelWidth = 45.0
)

// Renderer produces the printable documents of the marketplace
type Renderer struct {
	now func() time.Time
}

// NewRenderer creates a Renderer
func NewRenderer() *Renderer {
	return &Renderer{now: time.Now}
}

var (
	_ bookings.JobSheetRenderer = (*Renderer)(nil)
	_ commerce.InvoiceRenderer  = (*Renderer)(nil)
	_ audits.ReportRenderer     = (*Renderer)(nil)
)

// document wraps an fpdf page with the shared header and text translation
type document struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

func (r *Renderer) newDocument(title string) *document {
	p := fpdf.New("P", "mm", "A4", "")
	p.SetTitle(title, true)
	p.SetCreator(brand, true)
	p.SetCreationDate(r.now().UTC())
	p.SetAutoPageBreak(true, 15)
	d := &document{pdf: p, tr: p.UnicodeTranslatorFromDescriptor("")}

	p.SetFooterFunc(func() {
		p.SetY(-12)
		p.SetFont("Helvetica", "I", 8)
		p.CellFormat(0, 5, fmt.Sprintf("%s | page %d", brand, p.PageNo()), "", 0, "C", false, 0, "")
	})
	p.AddPage()

	p.SetFont("Helvetica", "B", 16)
	p.CellFormat(0, 10, d.tr(title), "B", 1, "L", false, 0, "")
	p.Ln(4)
	return d
}

func (d *document) field(label, value string) {
	d.pdf.SetFont("Helvetica", "B", 10)
	d.pdf.CellFormat(labelWidth, lineHeight, d.tr(label), "", 0, "L", false, 0, "")
	d.pdf.SetFont("Helvetica", "", 10)
	d.pdf.MultiCell(0, lineHeight, d.tr(value), "", "L", false)
}

func (d *document) heading(text string) {
	d.pdf.Ln(3)
	d.pdf.SetFont("Helvetica", "B", 12)
	d.pdf.CellFormat(0, 8, d.tr(text), "", 1, "L", false, 0, "")
}

func (d *document) paragraph(text string) {
	d.pdf.SetFont("Helvetica", "", 10)
	d.pdf.MultiCell(0, 5, d.tr(text), "", "L", false)
}

// row writes one table row, header rows are bold and filled
func (d *document) row(widths []float64, cells []string, header bool) {
	style := ""
	if header {
		style = "B"
		d.pdf.SetFillColor(230, 230, 230)
	}
	d.pdf.SetFont("Helvetica", style, 9)
	for i, cell := range cells {
		align := "L"
		if i > 0 && !header {
			align = "R"
		}
		d.pdf.CellFormat(widths[i], 7, d.tr(cell), "1", 0, align, header, 0, "")
	}
	d.pdf.Ln(-1)
}

func (d *document) bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// JobSheet renders a booking with its status history
func (r *Renderer) JobSheet(b *bookings.Booking, events []*bookings.Event) ([]byte, error) {
	d := r.newDocument("Job sheet")

	d.field("Booking", b.ID)
	d.field("Status", string(b.Status))
	d.field("Service", b.ServiceType)
	d.field("Scheduled", b.ScheduledAt.UTC().Format(timeLayout))
	d.field("Address", b.Address+", "+b.Pincode)
	d.field("Dealer", b.DealerID)
	technician := "unassigned"
	if b.TechnicianID != nil {
		technician = *b.TechnicianID
	}
	d.field("Technician", technician)
	if b.Description != "" {
		d.field("Description", b.Description)
	}

	d.heading("History")
	widths := []float64{45, 35, 35, 30, 45}
	d.row(widths, []string{"Time", "From", "To", "By", "Reason"}, true)
	for _, e := range events {
		d.row(widths, []string{
			e.CreatedAt.UTC().Format(timeLayout),
			string(e.FromStatus),
			string(e.ToStatus),
			string(e.ActorRole),
			e.Reason,
		}, false)
	}

	d.heading("Sign-off")
	d.paragraph("Technician signature: ____________________    Customer signature: ____________________")
	return d.bytes()
}

// Invoice renders an order with its line items
func (r *Renderer) Invoice(o *commerce.Order) ([]byte, error) {
	d := r.newDocument("Invoice")

	d.field("Order", o.ID)
	d.field("Date", o.CreatedAt.UTC().Format(timeLayout))
	d.field("Status", string(o.Status))
	d.field("Ship to", o.ShippingAddress)

	d.heading("Items")
	widths := []float64{85, 30, 25, 50}
	d.row(widths, []string{"Product", "Unit price", "Qty", "Line total"}, true)
	for _, item := range o.Items {
		d.row(widths, []string{
			item.ProductName,
			item.UnitPrice.StringFixed(2),
			strconv.Itoa(item.Quantity),
			item.LineTotal.StringFixed(2),
		}, false)
	}
	d.row(widths, []string{"Total", "", "", o.Total.StringFixed(2)}, true)
	return d.bytes()
}

// AuditReport renders the findings of an audit run
func (r *Renderer) AuditReport(report *audits.Report) ([]byte, error) {
	d := r.newDocument("Audit report")

	d.field("Report", report.ID)
	d.field("Subject", fmt.Sprintf("%s %s", report.SubjectType, report.SubjectID))
	d.field("Risk level", string(report.RiskLevel))
	d.field("Model", report.Model)
	d.field("Created", report.CreatedAt.UTC().Format(timeLayout))

	d.heading("Question")
	d.paragraph(report.Question)
	d.heading("Findings")
	d.paragraph(report.Findings)
	return d.bytes()
}
