package cli

import (
	"encoding/json"
	"fmt"

	"github.com/olekukonko/tablewriter"

	"github.com/vburojevic/fltriage/internal/classify"
)

// PatternsCmd lists the built-in pattern catalog so users can see what
// the analyzer looks for. The catalog is fixed; this is introspection,
// not configuration.
type PatternsCmd struct{}

// Run executes the patterns command
func (c *PatternsCmd) Run(globals *Globals) error {
	catalog := classify.Catalog()

	if globals.Format == "json" {
		payload := map[string]interface{}{
			"type":          "catalog",
			"schemaVersion": 1,
			"groups":        catalog,
		}
		enc := json.NewEncoder(globals.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	}

	table := tablewriter.NewTable(globals.Stdout)
	table.Header("Pass", "Pattern", "Category")
	for _, group := range catalog {
		for _, entry := range group.Entries {
			table.Append([]string{group.Name, entry.Pattern, entry.Label})
		}
	}
	if err := table.Render(); err != nil {
		return err
	}

	total := 0
	for _, group := range catalog {
		total += len(group.Entries)
	}
	_, err := fmt.Fprintf(globals.Stdout, "\n%d patterns in %d passes\n", total, len(catalog))
	return err
}
