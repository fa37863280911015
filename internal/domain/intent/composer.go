package intent

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"
)

//go:embed templates/intent.html.tmpl
var templates embed.FS

const (
	minRows    = 15
	dateLayout = "02/01/2006"
)

// Header is the fixed block printed above the table.
type Header struct {
	Company    string
	DocNo      string
	IssueNo    string
	RevisionNo string
	Title      string
}

var DefaultHeader = Header{
	Company:    "KINYA MEDICAL SYSTEMS & SOLUTION",
	DocNo:      "RMSC/P/OSP21/02",
	IssueNo:    "01",
	RevisionNo: "00",
	Title:      "RAW MATERIAL INDIAN NOTE",
}

type signature struct {
	Role   string
	Signed bool
}

var signatures = []signature{
	{Role: "Prepared By", Signed: true},
	{Role: "Department"},
	{Role: "Approved by", Signed: true},
	{Role: "Processed By", Signed: true},
}

type row struct {
	SNo        int
	PartNumber string
	SKU        string
	VendorName string
	Quantity   int
	Price      string
	Total      string
}

type document struct {
	Header     Header
	Date       string
	Rows       []row
	Padding    []int
	GrandTotal string
	Signatures []signature
}

// Composer renders line items into a standalone printable HTML page.
type Composer struct {
	tmpl   *template.Template
	header Header
	now    func() time.Time
}

func NewComposer(header Header) (*Composer, error) {
	tmpl, err := template.ParseFS(templates, "templates/intent.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse intent template: %w", err)
	}
	return &Composer{
		tmpl:   tmpl,
		header: header,
		now:    time.Now,
	}, nil
}

// Render writes the document. The table is padded with numbered blank rows
// up to fifteen; the grand total covers only real items.
func (c *Composer) Render(w io.Writer, items []LineItem) error {
	doc := document{
		Header:     c.header,
		Date:       c.now().Format(dateLayout),
		Rows:       make([]row, len(items)),
		GrandTotal: GrandTotal(items).StringFixed(2),
		Signatures: signatures,
	}

	for i, it := range items {
		doc.Rows[i] = row{
			SNo:        i + 1,
			PartNumber: it.PartNumber,
			SKU:        it.SKU,
			VendorName: it.VendorName,
			Quantity:   it.Quantity,
			Price:      it.Price.StringFixed(2),
			Total:      it.Total.StringFixed(2),
		}
	}
	for n := len(items) + 1; n <= minRows; n++ {
		doc.Padding = append(doc.Padding, n)
	}

	if err := c.tmpl.Execute(w, doc); err != nil {
		return fmt.Errorf("render intent: %w", err)
	}
	return nil
}
