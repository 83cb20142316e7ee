package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/nmehta/leetrack/internal/catalog"
)

// Execute implements the go-flags Commander interface for CompaniesCommand.
func (c *CompaniesCommand) Execute(args []string) error {
	cfg, err := loadConfig(c.globals)
	if err != nil {
		return err
	}
	return c.executeWith(catalog.NewClient(cfg.Data.BaseURL))
}

func (c *CompaniesCommand) executeWith(client *catalog.Client) error {
	cat, err := client.Catalog(context.Background())
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	if c.globals != nil && c.globals.JSON {
		type companyJSON struct {
			Name      string   `json:"name"`
			Durations []string `json:"durations"`
		}
		out := make([]companyJSON, 0, len(cat.Companies))
		for _, company := range cat.Companies {
			out = append(out, companyJSON{Name: company, Durations: cat.Durations[company]})
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Printf("%d companies\n\n", len(cat.Companies))
	for _, company := range cat.Companies {
		pretty := make([]string, 0, len(cat.Durations[company]))
		for _, d := range cat.Durations[company] {
			pretty = append(pretty, catalog.FormatDuration(d))
		}
		fmt.Printf("  %-20s %s\n", catalog.FormatCompany(company), strings.Join(pretty, ", "))
	}
	return nil
}
