package biomarket

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileSuffix is the storage suffix of every warehouse table.
const FileSuffix = ".csv"

// AddOutcome tells which kind of change an Add performed, so the caller can
// phrase its confirmation accordingly.
type AddOutcome int

const (
	// AddedNew means the product had no row yet and one was appended.
	AddedNew AddOutcome = iota
	// UpdatedQuantity means an existing row got its quantity increased, prices untouched.
	UpdatedQuantity
	// UpdatedPrices means an existing row got its quantity increased and its prices overwritten.
	UpdatedPrices
)

func (o AddOutcome) String() string {
	switch o {
	case AddedNew:
		return "added"
	case UpdatedQuantity:
		return "quantity updated"
	case UpdatedPrices:
		return "prices updated"
	default:
		return "unknown"
	}
}

// Warehouse is one named product table with business invariants enforced
// before persistence: at most one row per product name, quantity never
// negative after any mutation. Every mutation reads the whole table and
// rewrites it in full.
type Warehouse struct {
	path string
}

// NormalizeWarehouseName appends the storage suffix if absent.
// It is idempotent and case-sensitive: "farm.csv" stays as is, "Farm" and
// "farm" normalize to two distinct files.
func NormalizeWarehouseName(name string) string {
	if strings.HasSuffix(name, FileSuffix) {
		return name
	}
	return name + FileSuffix
}

// OpenWarehouse returns the warehouse of that name inside dir, creating a
// header-only table file on first reference.
func OpenWarehouse(dir, name string) (*Warehouse, error) {
	w := &Warehouse{path: filepath.Join(dir, NormalizeWarehouseName(name))}
	if err := productSchema.EnsureExists(w.path); err != nil {
		return nil, err
	}
	return w, nil
}

// WarehouseExists reports whether the warehouse table file already exists,
// without creating it.
func WarehouseExists(dir, name string) bool {
	_, err := os.Stat(filepath.Join(dir, NormalizeWarehouseName(name)))
	return err == nil
}

// ListWarehouses returns the file names of every warehouse table in dir.
// The sales journal file is reserved and excluded from the enumeration.
func ListWarehouses(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot list warehouses in %q: %w", dir, err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), FileSuffix) || e.Name() == SalesFile {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}

// Name returns the warehouse file name, suffix included.
func (w *Warehouse) Name() string { return filepath.Base(w.path) }

// Path returns the full path of the warehouse table file.
func (w *Warehouse) Path() string { return w.path }

// Add merges a product into the table. If a row with the same name exists its
// quantity is increased by the incoming quantity, and when the incoming prices
// differ from the stored ones both prices are overwritten as well. Otherwise a
// new row is appended. The whole table is then rewritten; on error the file
// keeps its previous content.
func (w *Warehouse) Add(p Product) (AddOutcome, error) {
	products, err := productSchema.ReadAll(w.path)
	if err != nil {
		return 0, err
	}

	outcome := AddedNew
	merged := false
	for i, row := range products {
		if row.Name != p.Name {
			continue
		}
		row.Quantity += p.Quantity
		if !row.PurchasePrice.Equal(p.PurchasePrice) || !row.SalePrice.Equal(p.SalePrice) {
			row.PurchasePrice = p.PurchasePrice
			row.SalePrice = p.SalePrice
			outcome = UpdatedPrices
		} else {
			outcome = UpdatedQuantity
		}
		products[i] = row
		merged = true
		break
	}
	if !merged {
		products = append(products, p)
	}

	if err := productSchema.WriteAll(w.path, products); err != nil {
		return 0, err
	}
	return outcome, nil
}

// Exists reports whether a product has a row in the warehouse.
// An unreadable or absent table counts as not existing, never as an error.
func (w *Warehouse) Exists(name string) bool {
	_, ok := w.Get(name)
	return ok
}

// Get returns the product row with that name, if any.
func (w *Warehouse) Get(name string) (Product, bool) {
	products, err := productSchema.ReadAll(w.path)
	if err != nil {
		return Product{}, false
	}
	for _, p := range products {
		if p.Name == name {
			return p, true
		}
	}
	return Product{}, false
}

// AdjustQuantity changes the quantity of one product by delta, negative for a
// sale, positive for a restock or correction. It fails with
// *InsufficientQuantityError when the result would be negative and with
// ErrProductNotFound when the product has no row; the table is left unmodified
// in both cases. On success the full table is rewritten with only that row
// changed, order preserved.
func (w *Warehouse) AdjustQuantity(name string, delta int) error {
	products, err := productSchema.ReadAll(w.path)
	if err != nil {
		return err
	}

	found := false
	for i, p := range products {
		if p.Name != name {
			continue
		}
		if p.Quantity+delta < 0 {
			return &InsufficientQuantityError{Product: name, Available: p.Quantity, Requested: -delta}
		}
		products[i].Quantity = p.Quantity + delta
		found = true
		break
	}
	if !found {
		return fmt.Errorf("%w: %q in %s", ErrProductNotFound, name, w.Name())
	}
	return productSchema.WriteAll(w.path, products)
}

// Products returns every row of the warehouse, in file order.
func (w *Warehouse) Products() ([]Product, error) {
	return productSchema.ReadAll(w.path)
}
