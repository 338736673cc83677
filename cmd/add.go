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

type addCmd struct {
	warehouse string
	name      string
	quantity  int
	purchase  string
	sale      string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add stock to a warehouse, merging with an existing row" }
func (*addCmd) Usage() string {
	return `bms add -w <warehouse> -n <name> -q <quantity> -b <purchase price> -s <sale price>

  Adds a product to a warehouse. If a row with the same name exists, its
  quantity is increased; when the given prices differ from the stored ones
  they are overwritten as well. The warehouse file is created on first use.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.warehouse, "w", "", "Warehouse name (the .csv suffix may be omitted)")
	f.StringVar(&c.name, "n", "", "Product name")
	f.IntVar(&c.quantity, "q", 0, "Quantity to add")
	f.StringVar(&c.purchase, "b", "", "Purchase price per unit")
	f.StringVar(&c.sale, "s", "", "Sale price per unit")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.warehouse == "" || c.name == "" || c.quantity <= 0 || c.purchase == "" || c.sale == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}

	purchase, err := biomarket.ParsePrice(c.purchase)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing purchase price: %v\n", err)
		return subcommands.ExitUsageError
	}
	sale, err := biomarket.ParsePrice(c.sale)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing sale price: %v\n", err)
		return subcommands.ExitUsageError
	}

	product, err := biomarket.NewProduct(c.name, c.quantity, purchase, sale)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	warehouse, err := biomarket.OpenWarehouse(*storageDir, c.warehouse)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	outcome, err := warehouse.Add(product)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	logger.L().Infow("stock added",
		"warehouse", warehouse.Name(),
		"product", product.Name,
		"quantity", product.Quantity,
		"outcome", outcome.String(),
	)
	fmt.Println(addConfirmation(outcome, product, warehouse.Name()))
	return subcommands.ExitSuccess
}

// addConfirmation phrases the confirmation text after a merge, one line per
// outcome, the way the interactive menu reports it.
func addConfirmation(outcome biomarket.AddOutcome, p biomarket.Product, warehouse string) string {
	switch outcome {
	case biomarket.UpdatedPrices:
		return fmt.Sprintf("[OK] Purchase/sale prices updated for %q in %s", p.Name, warehouse)
	case biomarket.UpdatedQuantity:
		return fmt.Sprintf("[OK] Quantity updated for %q in %s", p.Name, warehouse)
	default:
		return fmt.Sprintf("[OK] New product added: %q x %d in %s", p.Name, p.Quantity, warehouse)
	}
}
