package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/perofficial/biomarket"
)

func TestProducts(t *testing.T) {
	products := []biomarket.Product{
		{Name: "Apple", Quantity: 10, PurchasePrice: biomarket.P(1.0), SalePrice: biomarket.P(2.0)},
		{Name: "Pear", Quantity: 0, PurchasePrice: biomarket.P(0.5), SalePrice: biomarket.P(1.5)},
	}
	md := Products("farm.csv", products)

	for _, want := range []string{"farm.csv", "| Apple | 10 | €1.00 | €2.00 |", "| Pear | 0 |"} {
		if !strings.Contains(md, want) {
			t.Errorf("Products() output misses %q:\n%s", want, md)
		}
	}
}

func TestProducts_empty(t *testing.T) {
	md := Products("farm.csv", nil)
	if !strings.Contains(md, "No products in stock") {
		t.Errorf("Products() on empty table should say so:\n%s", md)
	}
}

func TestSales(t *testing.T) {
	when := time.Date(2025, 3, 14, 15, 9, 26, 0, time.Local)
	sales := []biomarket.Sale{
		{Product: "Apple", Quantity: 3, Profit: biomarket.P(3), Time: when},
	}
	md := Sales(sales)

	for _, want := range []string{"14/03/2025 15:09:26", "Apple", "€3.00"} {
		if !strings.Contains(md, want) {
			t.Errorf("Sales() output misses %q:\n%s", want, md)
		}
	}

	if empty := Sales(nil); !strings.Contains(empty, "No sales recorded yet") {
		t.Errorf("Sales() on empty journal should say so:\n%s", empty)
	}
}

func TestProfits(t *testing.T) {
	md := Profits(biomarket.P(12.5), biomarket.P(12.5))
	if !strings.Contains(md, "Gross profit | €12.50") {
		t.Errorf("Profits() output misses gross line:\n%s", md)
	}
	if !strings.Contains(md, "Net profit | €12.50") {
		t.Errorf("Profits() output misses net line:\n%s", md)
	}
}

func TestWarehouses(t *testing.T) {
	md := Warehouses([]string{"farm.csv", "market.csv"})
	for _, want := range []string{"- farm.csv", "- market.csv"} {
		if !strings.Contains(md, want) {
			t.Errorf("Warehouses() output misses %q:\n%s", want, md)
		}
	}
	if empty := Warehouses(nil); !strings.Contains(empty, "No warehouses yet") {
		t.Errorf("Warehouses() on empty dir should say so:\n%s", empty)
	}
}
