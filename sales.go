package biomarket

import (
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// SalesFile is the reserved file name of the sales journal. No warehouse may
// use it and warehouse enumeration never reports it.
const SalesFile = "sales.csv"

// TimestampFormat is the fixed display format of sale timestamps, local time.
const TimestampFormat = "02/01/2006 15:04:05"

// Sale is one row of the sales journal. Rows are immutable once written.
type Sale struct {
	Product  string // not required to reference a currently-existing product
	Quantity int
	Profit   Price // computed at sale time and stored, never recomputed
	Time     time.Time
}

var saleSchema = Schema[Sale]{
	Header: []string{"product_name", "quantity_sold", "profit", "timestamp"},
	Encode: func(s Sale) []string {
		return []string{s.Product, strconv.Itoa(s.Quantity), s.Profit.String(), s.Time.Format(TimestampFormat)}
	},
	Decode: func(row []string) (Sale, error) {
		if len(row) != 4 {
			return Sale{}, fmt.Errorf("expected 4 columns, got %d", len(row))
		}
		qty, err := strconv.Atoi(row[1])
		if err != nil {
			return Sale{}, fmt.Errorf("invalid quantity %q: %w", row[1], err)
		}
		profit, err := ParsePrice(row[2])
		if err != nil {
			return Sale{}, fmt.Errorf("invalid profit %q: %w", row[2], err)
		}
		ts, err := time.ParseInLocation(TimestampFormat, row[3], time.Local)
		if err != nil {
			return Sale{}, fmt.Errorf("invalid timestamp %q: %w", row[3], err)
		}
		return Sale{Product: row[0], Quantity: qty, Profit: profit, Time: ts}, nil
	},
}

// SalesJournal is the append-only record of completed sales.
// Unlike warehouse tables it is never rewritten wholesale.
type SalesJournal struct {
	path string
}

// OpenSalesJournal returns the journal stored in dir, creating a header-only
// file on first reference.
func OpenSalesJournal(dir string) (*SalesJournal, error) {
	j := &SalesJournal{path: filepath.Join(dir, SalesFile)}
	if err := saleSchema.EnsureExists(j.path); err != nil {
		return nil, err
	}
	return j, nil
}

// Path returns the full path of the journal file.
func (j *SalesJournal) Path() string { return j.path }

// Record appends one sale and returns its profit,
// (sale price - purchase price) * quantity. A profit below zero is recorded as
// is, selling at a loss is legitimate. A non-positive quantity fails with
// ErrInvalidQuantity and writes nothing.
func (j *SalesJournal) Record(product string, quantity int, purchasePrice, salePrice Price) (Price, error) {
	if quantity <= 0 {
		return Price{}, fmt.Errorf("cannot record sale of %q: %w", product, ErrInvalidQuantity)
	}
	sale := Sale{
		Product:  product,
		Quantity: quantity,
		Profit:   salePrice.Sub(purchasePrice).MulInt(quantity),
		Time:     time.Now(),
	}
	if err := saleSchema.Append(j.path, sale); err != nil {
		return Price{}, err
	}
	return sale.Profit, nil
}

// Profits sums the stored profit of every sale. Rows whose profit column does
// not parse are skipped, a malformed historical row must not abort the
// aggregate. An absent journal yields zero.
//
// Gross and net are the same value by construction: profit already nets the
// purchase cost. Both are returned to keep the two figures of the report
// explicit.
func (j *SalesJournal) Profits() (gross, net Price, err error) {
	rows, err := readRows(j.path)
	if err != nil {
		return Price{}, Price{}, err
	}
	total := decimal.Zero
	for _, row := range rows {
		if len(row) < 3 {
			continue
		}
		d, err := decimal.NewFromString(row[2])
		if err != nil {
			continue
		}
		total = total.Add(d)
	}
	p := Price{value: total}
	return p, p, nil
}

// Sales returns the journal records in file order, which is append order and
// therefore chronological. Malformed rows are skipped, consistent with
// Profits.
func (j *SalesJournal) Sales() ([]Sale, error) {
	rows, err := readRows(j.path)
	if err != nil {
		return nil, err
	}
	sales := make([]Sale, 0, len(rows))
	for _, row := range rows {
		sale, err := saleSchema.Decode(row)
		if err != nil {
			continue
		}
		sales = append(sales, sale)
	}
	return sales, nil
}
