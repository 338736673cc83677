package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/perofficial/biomarket"
	"github.com/perofficial/biomarket/logger"
)

type sellCmd struct {
	warehouse string
	name      string
	quantity  int
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "sell stock from a warehouse and record the sale" }
func (*sellCmd) Usage() string {
	return `bms sell -w <warehouse> -n <name> -q <quantity>

  Decrements the product's stock, then appends the sale with its profit to
  the sales journal. The two steps are sequential and independent: a journal
  failure after a successful decrement leaves the stock reduced with no sale
  row.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.warehouse, "w", "", "Warehouse name (the .csv suffix may be omitted)")
	f.StringVar(&c.name, "n", "", "Product name")
	f.IntVar(&c.quantity, "q", 0, "Quantity to sell")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.warehouse == "" || c.name == "" || c.quantity <= 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}

	profit, err := performSale(*storageDir, c.warehouse, c.name, c.quantity)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("[OK] Sale completed, profit %s\n", profit.Display())
	return subcommands.ExitSuccess
}

// performSale runs the two-step sale: decrement the warehouse stock, then
// append the journal row. The steps fail independently; there is no rollback
// of the first when the second fails.
func performSale(dir, warehouseName, product string, quantity int) (biomarket.Price, error) {
	warehouse, err := biomarket.OpenWarehouse(dir, warehouseName)
	if err != nil {
		return biomarket.Price{}, err
	}
	row, ok := warehouse.Get(product)
	if !ok {
		return biomarket.Price{}, fmt.Errorf("%w: %q in %s", biomarket.ErrProductNotFound, product, warehouse.Name())
	}

	if err := warehouse.AdjustQuantity(product, -quantity); err != nil {
		return biomarket.Price{}, err
	}

	journal, err := biomarket.OpenSalesJournal(dir)
	if err != nil {
		return biomarket.Price{}, err
	}
	profit, err := journal.Record(product, quantity, row.PurchasePrice, row.SalePrice)
	if err != nil {
		// Stock is already reduced at this point: known, documented
		// inconsistent state of the two-step sale.
		return biomarket.Price{}, fmt.Errorf("stock reduced but sale not recorded: %w", err)
	}

	logger.L().Infow("sale recorded",
		"warehouse", warehouse.Name(),
		"product", product,
		"quantity", quantity,
		"profit", profit.String(),
	)
	return profit, nil
}
