// Package docgen turns a document region into a raster capture and
// assembles the capture into a downloadable PDF. Capture runs behind a
// capability port so a deployment without a rasterizer fails fast
// instead of hanging.
package docgen

import (
	"fmt"
	"image"
	"time"

	"ruamngan.app/internal/crm"
	"ruamngan.app/internal/quotes"
)

// Row is one label/value line of a region.
type Row struct {
	Label string
	Value string
}

// Region is the document area handed to the rasterizer: the
// server-side equivalent of the form region the browser build pointed
// its capture library at.
type Region struct {
	Heading    string
	Subheading string
	Rows       []Row
	Note       string
	// Size is the region's native resolution in pixels. Capture output
	// is scaled from this.
	Size image.Point
}

// quotationPageSize is the native capture size of a quotation sheet,
// roughly A4 at 96 DPI.
var quotationPageSize = image.Point{X: 794, Y: 1123}

// QuotationRegion lays out a quotation as a capturable region.
func QuotationRegion(q quotes.Quotation) Region {
	const dateLayout = "02/01/2006"
	return Region{
		Heading:    "ใบเสนอราคา / Quotation",
		Subheading: q.Number,
		Rows: []Row{
			{Label: "ผู้ขาย", Value: q.Seller},
			{Label: "รายการ", Value: q.Item},
			{Label: "จำนวน", Value: fmt.Sprintf("%d", q.Quantity)},
			{Label: "ราคาต่อหน่วย", Value: fmt.Sprintf("%.2f บาท", q.UnitPrice)},
			{Label: "รวมเป็นเงิน", Value: fmt.Sprintf("%.2f บาท", q.Total())},
			{Label: "วันที่ออก", Value: q.IssueDate.Format(dateLayout)},
			{Label: "ใช้ได้ถึง", Value: q.ExpiryDate.Format(dateLayout)},
			{Label: "สถานะ", Value: string(q.Status)},
		},
		Note: "เอกสารนี้สร้างโดยระบบพอร์ทัลภายใน " + time.Now().Format(dateLayout),
		Size: quotationPageSize,
	}
}

// TaskSummaryRegion lays out the tracker's open-task list as a
// capturable region, one row per task.
func TaskSummaryRegion(tasks []crm.Task, prospects []crm.Prospect) Region {
	rows := make([]Row, 0, len(tasks))
	for _, t := range crm.OpenTasks(tasks) {
		rows = append(rows, Row{
			Label: crm.ContactName(t, prospects),
			Value: fmt.Sprintf("%s / %s", t.Subject, crm.StatusLabel(t.Status)),
		})
	}
	return Region{
		Heading: "งานค้าง / Open tasks",
		Rows:    rows,
		Size:    quotationPageSize,
	}
}
