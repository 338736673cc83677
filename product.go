package biomarket

import (
	"fmt"
	"strconv"
	"strings"
)

// Product is one row of a warehouse table.
//
// Name acts as the unique key within one warehouse file.
type Product struct {
	Name          string
	Quantity      int
	PurchasePrice Price // unit cost
	SalePrice     Price // unit price
}

// NewProduct builds a validated Product. The name is trimmed.
func NewProduct(name string, quantity int, purchasePrice, salePrice Price) (Product, error) {
	name = strings.TrimSpace(name)
	switch {
	case name == "":
		return Product{}, ErrEmptyName
	case quantity < 0:
		return Product{}, ErrNegativeQuantity
	case purchasePrice.IsNegative():
		return Product{}, fmt.Errorf("purchase %w", ErrNegativePrice)
	case salePrice.IsNegative():
		return Product{}, fmt.Errorf("sale %w", ErrNegativePrice)
	}
	return Product{Name: name, Quantity: quantity, PurchasePrice: purchasePrice, SalePrice: salePrice}, nil
}

func (p Product) String() string {
	return fmt.Sprintf("%s x%d (buy %s, sell %s)", p.Name, p.Quantity, p.PurchasePrice, p.SalePrice)
}

// productSchema maps Product to and from the warehouse table columns.
var productSchema = Schema[Product]{
	Header: []string{"name", "quantity", "purchase_price", "sale_price"},
	Encode: func(p Product) []string {
		return []string{p.Name, strconv.Itoa(p.Quantity), p.PurchasePrice.String(), p.SalePrice.String()}
	},
	Decode: func(row []string) (Product, error) {
		if len(row) != 4 {
			return Product{}, fmt.Errorf("expected 4 columns, got %d", len(row))
		}
		qty, err := strconv.Atoi(row[1])
		if err != nil {
			return Product{}, fmt.Errorf("invalid quantity %q: %w", row[1], err)
		}
		purchase, err := ParsePrice(row[2])
		if err != nil {
			return Product{}, fmt.Errorf("invalid purchase price %q: %w", row[2], err)
		}
		sale, err := ParsePrice(row[3])
		if err != nil {
			return Product{}, fmt.Errorf("invalid sale price %q: %w", row[3], err)
		}
		return Product{Name: row[0], Quantity: qty, PurchasePrice: purchase, SalePrice: sale}, nil
	},
}
