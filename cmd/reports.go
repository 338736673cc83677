package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/perofficial/biomarket"
	"github.com/perofficial/biomarket/renderer"
)

// --- Profits Command ---

type profitsCmd struct{}

func (*profitsCmd) Name() string     { return "profits" }
func (*profitsCmd) Synopsis() string { return "display gross and net profit over all recorded sales" }
func (*profitsCmd) Usage() string {
	return `bms profits

  Sums the stored profit of every sale in the journal. Malformed historical
  rows are skipped. An absent journal reports zero.
`
}

func (*profitsCmd) SetFlags(*flag.FlagSet) {}

func (c *profitsCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	journal, err := biomarket.OpenSalesJournal(*storageDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	gross, net, err := journal.Profits()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Profits(gross, net))
	return subcommands.ExitSuccess
}

// --- Sales Command ---

type salesCmd struct{}

func (*salesCmd) Name() string     { return "sales" }
func (*salesCmd) Synopsis() string { return "list every recorded sale in chronological order" }
func (*salesCmd) Usage() string {
	return `bms sales

  Lists the sales journal in append order.
`
}

func (*salesCmd) SetFlags(*flag.FlagSet) {}

func (c *salesCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	journal, err := biomarket.OpenSalesJournal(*storageDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	sales, err := journal.Sales()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Sales(sales))
	return subcommands.ExitSuccess
}

// --- Products Command ---

type productsCmd struct {
	warehouse string
}

func (*productsCmd) Name() string     { return "products" }
func (*productsCmd) Synopsis() string { return "list the products of one warehouse" }
func (*productsCmd) Usage() string {
	return `bms products -w <warehouse>

  Lists every product row of the warehouse, in file order.
`
}

func (c *productsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.warehouse, "w", "", "Warehouse name (the .csv suffix may be omitted)")
}

func (c *productsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.warehouse == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	if !biomarket.WarehouseExists(*storageDir, c.warehouse) {
		fmt.Fprintf(os.Stderr, "Warehouse %q does not exist\n", c.warehouse)
		return subcommands.ExitFailure
	}
	warehouse, err := biomarket.OpenWarehouse(*storageDir, c.warehouse)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	products, err := warehouse.Products()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Products(warehouse.Name(), products))
	return subcommands.ExitSuccess
}

// --- Warehouses Command ---

type warehousesCmd struct{}

func (*warehousesCmd) Name() string     { return "warehouses" }
func (*warehousesCmd) Synopsis() string { return "list every warehouse file in the storage directory" }
func (*warehousesCmd) Usage() string {
	return `bms warehouses

  Lists every warehouse table in the storage directory. The reserved sales
  journal file is excluded.
`
}

func (*warehousesCmd) SetFlags(*flag.FlagSet) {}

func (c *warehousesCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	names, err := biomarket.ListWarehouses(*storageDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Warehouses(names))
	return subcommands.ExitSuccess
}
