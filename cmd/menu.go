package cmd

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/perofficial/biomarket"
	"github.com/perofficial/biomarket/logger"
	"github.com/perofficial/biomarket/renderer"
)

type menuCmd struct {
	prompt prompter
}

func (*menuCmd) Name() string     { return "menu" }
func (*menuCmd) Synopsis() string { return "run the interactive numbered menu" }
func (*menuCmd) Usage() string {
	return `bms menu

  Runs the interactive loop: add product, sell product, show profits, exit.
  Each sub-flow prompts for validated fields and reports success or error
  text; a storage failure returns to the menu instead of exiting.
`
}

func (*menuCmd) SetFlags(*flag.FlagSet) {}

func (c *menuCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	c.prompt = prompter{in: bufio.NewReader(os.Stdin), out: os.Stdout}
	logger.L().Infow("interactive menu started", "dir", *storageDir)

	for {
		choice, err := c.displayMenu()
		if errors.Is(err, io.EOF) {
			return subcommands.ExitSuccess
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}

		done, err := c.handleChoice(choice)
		if errors.Is(err, io.EOF) {
			return subcommands.ExitSuccess
		}
		if err != nil {
			// Sub-flow errors are reported and the menu continues.
			fmt.Printf("\n[ERROR] %v\n", err)
		}
		if done {
			return subcommands.ExitSuccess
		}
	}
}

func (c *menuCmd) displayMenu() (string, error) {
	fmt.Println("\n" + strings.Repeat("=", 50))
	fmt.Println("        BIOMARKET - MAIN MENU")
	fmt.Println(strings.Repeat("=", 50))
	fmt.Println("\n1. Add product")
	fmt.Println("2. Sell product")
	fmt.Println("3. Profits")
	fmt.Println("4. Exit")
	fmt.Println("\n" + strings.Repeat("-", 50))
	return c.prompt.read("\nYour choice: ")
}

// handleChoice runs one sub-flow. It returns true when the user asked to exit.
func (c *menuCmd) handleChoice(choice string) (bool, error) {
	switch choice {
	case "1":
		return false, c.addProductFlow()
	case "2":
		return false, c.sellProductFlow()
	case "3":
		return false, c.showProfits()
	case "4":
		fmt.Println("\nThanks for using BioMarket!")
		logger.L().Infow("interactive menu ended")
		return true, nil
	default:
		fmt.Println("\n[ERROR] Invalid choice. Enter a number from 1 to 4.")
		return false, nil
	}
}

// selectWarehouse shows the existing warehouses and asks for one, existing or
// new. The warehouse file is created on first reference.
func (c *menuCmd) selectWarehouse() (*biomarket.Warehouse, error) {
	names, err := biomarket.ListWarehouses(*storageDir)
	if err != nil {
		return nil, err
	}
	if len(names) > 0 {
		fmt.Println("\nAvailable warehouses:")
		for i, name := range names {
			fmt.Printf("%d. %s\n", i+1, name)
		}
	} else {
		fmt.Println("\nNo existing warehouse.")
	}

	name, err := c.prompt.nonEmptyString("\nChoose a warehouse (or enter a new name): ")
	if err != nil {
		return nil, err
	}
	return biomarket.OpenWarehouse(*storageDir, name)
}

func (c *menuCmd) addProductFlow() error {
	fmt.Println("\n--- ADD PRODUCT ---")
	warehouse, err := c.selectWarehouse()
	if err != nil {
		return err
	}

	name, err := c.prompt.nonEmptyString("\nProduct name: ")
	if err != nil {
		return err
	}
	quantity, err := c.prompt.positiveInt("Quantity: ")
	if err != nil {
		return err
	}
	purchase, err := c.prompt.price("Purchase price (€): ")
	if err != nil {
		return err
	}
	sale, err := c.prompt.price("Sale price (€): ")
	if err != nil {
		return err
	}

	product, err := biomarket.NewProduct(name, quantity, purchase, sale)
	if err != nil {
		return err
	}
	outcome, err := warehouse.Add(product)
	if err != nil {
		return err
	}
	logger.L().Infow("stock added",
		"warehouse", warehouse.Name(),
		"product", product.Name,
		"quantity", product.Quantity,
		"outcome", outcome.String(),
	)
	fmt.Println("\n" + addConfirmation(outcome, product, warehouse.Name()))
	return nil
}

func (c *menuCmd) sellProductFlow() error {
	fmt.Println("\n--- SELL PRODUCT ---")
	warehouse, err := c.selectWarehouse()
	if err != nil {
		return err
	}

	name, err := c.prompt.nonEmptyString("\nProduct to sell: ")
	if err != nil {
		return err
	}
	if !warehouse.Exists(name) {
		fmt.Printf("\n[ERROR] Product %q is not in the warehouse\n", name)
		return nil
	}
	quantity, err := c.prompt.positiveInt("Quantity to sell: ")
	if err != nil {
		return err
	}

	profit, err := performSale(*storageDir, warehouse.Name(), name, quantity)
	var insufficient *biomarket.InsufficientQuantityError
	if errors.As(err, &insufficient) {
		fmt.Printf("\n[ERROR] Insufficient quantity! Available: %d, requested: %d\n",
			insufficient.Available, insufficient.Requested)
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Println("\n[OK] Sale completed successfully!")
	fmt.Printf("[OK] Profit from the sale: %s\n", profit.Display())
	fmt.Printf("[OK] Warehouse updated: %s\n", warehouse.Name())
	return nil
}

func (c *menuCmd) showProfits() error {
	journal, err := biomarket.OpenSalesJournal(*storageDir)
	if err != nil {
		return err
	}
	gross, net, err := journal.Profits()
	if err != nil {
		return err
	}
	printMarkdown(renderer.Profits(gross, net))
	return nil
}
