// Package cmd implements the CLI application to manage the BioMarket
// inventory and sales files.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

// An optional .env file may provide the BIOMARKET_* defaults below; it must be
// loaded before the flag defaults are computed, hence the package-level hook.
// Flags still win over the environment.
var _ = godotenv.Load()

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on
// the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&menuCmd{}, "interactive")

	c.Register(&addCmd{}, "inventory")
	c.Register(&productsCmd{}, "inventory")
	c.Register(&warehousesCmd{}, "inventory")

	c.Register(&sellCmd{}, "sales")
	c.Register(&salesCmd{}, "sales")
	c.Register(&profitsCmd{}, "sales")
}

// As a CLI application it has a very short lived lifecycle, so it is ok to use
// global variables for the app-wide flags.

var storageDir = flag.String("dir", envOr("BIOMARKET_DIR", "."), "Directory holding the warehouse and sales files")

// LogDir is where the daily log files go. Resolved by main before Setup.
var LogDir = flag.String("log-dir", envOr("BIOMARKET_LOG_DIR", "logs"), "Directory for log files")

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// printMarkdown renders markdown to the terminal, falling back to the raw text
// when rendering fails.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
