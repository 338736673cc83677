// Package renderer renders inventory and sales data to markdown strings,
// ready to be printed to the terminal.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/perofficial/biomarket"
)

//go:embed templates/*.md
var templates embed.FS

// renderTemplate is a generic utility to render one of the embedded templates.
func renderTemplate(name string, data any) string {
	content, err := fs.ReadFile(templates, "templates/"+name)
	if err != nil {
		return fmt.Sprintf("error reading template %q: %v", name, err)
	}
	tmpl, err := template.New(name).Parse(string(content))
	if err != nil {
		return fmt.Sprintf("error parsing template %q: %v", name, err)
	}
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", name, err)
	}
	return b.String()
}

type productRow struct {
	Name     string
	Quantity int
	Purchase string
	Sale     string
}

// Products renders the product table of one warehouse.
func Products(warehouse string, products []biomarket.Product) string {
	rows := make([]productRow, 0, len(products))
	for _, p := range products {
		rows = append(rows, productRow{
			Name:     p.Name,
			Quantity: p.Quantity,
			Purchase: p.PurchasePrice.Display(),
			Sale:     p.SalePrice.Display(),
		})
	}
	return renderTemplate("products.md", struct {
		Warehouse string
		Rows      []productRow
	}{warehouse, rows})
}

type saleRow struct {
	Time     string
	Product  string
	Quantity int
	Profit   string
}

// Sales renders the journal records in chronological order.
func Sales(sales []biomarket.Sale) string {
	rows := make([]saleRow, 0, len(sales))
	for _, s := range sales {
		rows = append(rows, saleRow{
			Time:     s.Time.Format(biomarket.TimestampFormat),
			Product:  s.Product,
			Quantity: s.Quantity,
			Profit:   s.Profit.Display(),
		})
	}
	return renderTemplate("sales.md", struct{ Rows []saleRow }{rows})
}

// Profits renders the aggregate profit report.
func Profits(gross, net biomarket.Price) string {
	return renderTemplate("profits.md", struct {
		Gross string
		Net   string
	}{gross.Display(), net.Display()})
}

// Warehouses renders the list of known warehouse files.
func Warehouses(names []string) string {
	return renderTemplate("warehouses.md", struct{ Names []string }{names})
}
