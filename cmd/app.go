// Package cmd implements the CLI application to manage the treasury ledger.
package cmd

import (
	"flag"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/bursar"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to
// use global variables.

var ledgerFile = flag.String("ledger-file", "ledger.json", "Path to the ledger file (JSON document)")

// LoadLedger loads the app ledger file.
func LoadLedger() (*bursar.Ledger, error) {
	return bursar.Load(*ledgerFile)
}

// SaveLedger saves the ledger back to the app ledger file.
func SaveLedger(ledger *bursar.Ledger) error {
	return bursar.Save(ledger, *ledgerFile)
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when rendering fails.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
