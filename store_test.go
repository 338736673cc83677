package biomarket

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSchema_EnsureExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "farm.csv")

	if err := productSchema.EnsureExists(path); err != nil {
		t.Fatalf("EnsureExists() error = %v", err)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading created file: %v", err)
	}
	if got, want := strings.TrimSpace(string(content)), "name,quantity,purchase_price,sale_price"; got != want {
		t.Errorf("new file content = %q, want header %q", got, want)
	}

	// A second call must leave the file untouched.
	if err := productSchema.WriteAll(path, []Product{{Name: "Apple", Quantity: 1, PurchasePrice: P(1), SalePrice: P(2)}}); err != nil {
		t.Fatal(err)
	}
	if err := productSchema.EnsureExists(path); err != nil {
		t.Fatalf("second EnsureExists() error = %v", err)
	}
	products, err := productSchema.ReadAll(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(products) != 1 {
		t.Errorf("EnsureExists() rewrote an existing file, got %d rows, want 1", len(products))
	}
}

func TestSchema_ReadAll_absentFile(t *testing.T) {
	products, err := productSchema.ReadAll(filepath.Join(t.TempDir(), "nowhere.csv"))
	if err != nil {
		t.Fatalf("ReadAll() on absent file: error = %v, want nil", err)
	}
	if len(products) != 0 {
		t.Errorf("ReadAll() on absent file = %v, want empty", products)
	}
}

func TestSchema_ReadAll_malformedRow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "farm.csv")
	data := "name,quantity,purchase_price,sale_price\nApple,many,1,2\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := productSchema.ReadAll(path)
	var storageErr *StorageError
	if !errors.As(err, &storageErr) {
		t.Fatalf("ReadAll() error = %v, want *StorageError", err)
	}
	if storageErr.Op != "read" {
		t.Errorf("StorageError.Op = %q, want %q", storageErr.Op, "read")
	}
}

func TestSchema_roundTrip(t *testing.T) {
	testCases := []struct {
		name     string
		products []Product
	}{
		{name: "empty table", products: nil},
		{
			name: "single product",
			products: []Product{
				{Name: "Apple", Quantity: 10, PurchasePrice: P(1.00), SalePrice: P(2.00)},
			},
		},
		{
			name: "zero quantity and fractional prices",
			products: []Product{
				{Name: "Basil", Quantity: 0, PurchasePrice: P(0.05), SalePrice: P(0.123)},
				{Name: "Olive Oil", Quantity: 3, PurchasePrice: P(7.499), SalePrice: P(9.9)},
			},
		},
		{
			name: "name with separator and spaces",
			products: []Product{
				{Name: "Bread, whole grain", Quantity: 2, PurchasePrice: P(1.5), SalePrice: P(3)},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "roundtrip.csv")
			if err := productSchema.WriteAll(path, tc.products); err != nil {
				t.Fatalf("WriteAll() error = %v", err)
			}
			got, err := productSchema.ReadAll(path)
			if err != nil {
				t.Fatalf("ReadAll() error = %v", err)
			}
			if len(got) != len(tc.products) {
				t.Fatalf("ReadAll() returned %d rows, want %d", len(got), len(tc.products))
			}
			for i, want := range tc.products {
				if !productsEqual(got[i], want) {
					t.Errorf("row %d = %v, want %v", i, got[i], want)
				}
			}
		})
	}
}

func TestSchema_WriteAll_overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "farm.csv")
	first := []Product{
		{Name: "Apple", Quantity: 10, PurchasePrice: P(1), SalePrice: P(2)},
		{Name: "Pear", Quantity: 5, PurchasePrice: P(1), SalePrice: P(2)},
	}
	if err := productSchema.WriteAll(path, first); err != nil {
		t.Fatal(err)
	}

	second := []Product{{Name: "Kiwi", Quantity: 1, PurchasePrice: P(3), SalePrice: P(4)}}
	if err := productSchema.WriteAll(path, second); err != nil {
		t.Fatal(err)
	}

	got, err := productSchema.ReadAll(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Name != "Kiwi" {
		t.Errorf("after overwrite ReadAll() = %v, want only Kiwi", got)
	}
}

func TestSchema_Append(t *testing.T) {
	path := filepath.Join(t.TempDir(), "farm.csv")

	// First append on a missing file writes the header too.
	if err := productSchema.Append(path, Product{Name: "Apple", Quantity: 1, PurchasePrice: P(1), SalePrice: P(2)}); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	if err := productSchema.Append(path, Product{Name: "Pear", Quantity: 2, PurchasePrice: P(1), SalePrice: P(2)}); err != nil {
		t.Fatalf("second Append() error = %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	if len(lines) != 3 {
		t.Fatalf("file has %d lines, want header + 2 rows", len(lines))
	}
	if lines[0] != "name,quantity,purchase_price,sale_price" {
		t.Errorf("first line = %q, want the header", lines[0])
	}

	got, err := productSchema.ReadAll(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].Name != "Apple" || got[1].Name != "Pear" {
		t.Errorf("ReadAll() after appends = %v, want Apple then Pear", got)
	}
}

// productsEqual compares field by field; prices are compared by value, not by
// decimal representation.
func productsEqual(a, b Product) bool {
	return a.Name == b.Name &&
		a.Quantity == b.Quantity &&
		a.PurchasePrice.Equal(b.PurchasePrice) &&
		a.SalePrice.Equal(b.SalePrice)
}
