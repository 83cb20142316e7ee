package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/nmehta/leetrack/internal/aggregate"
	"github.com/nmehta/leetrack/internal/catalog"
)

// Execute implements the go-flags Commander interface for FindCommand.
func (c *FindCommand) Execute(args []string) error {
	if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
		return fmt.Errorf("usage: leetrack find <question-id>")
	}

	cfg, err := loadConfig(c.globals)
	if err != nil {
		return err
	}
	return c.executeWith(catalog.NewClient(cfg.Data.BaseURL), args[0])
}

// executeWith runs the search against a provided client (for testing).
func (c *FindCommand) executeWith(client *catalog.Client, id string) error {
	ctx := context.Background()

	cat, err := client.Catalog(ctx)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	res, err := aggregate.Search(ctx, client, cat, id)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if c.globals != nil && c.globals.JSON {
		return c.printJSON(res)
	}
	return c.printHuman(res)
}

func (c *FindCommand) printHuman(res *aggregate.Result) error {
	if !res.Found() {
		fmt.Printf("Question %s was not asked in any company.\n", res.ID)
		return nil
	}

	fmt.Printf("%s. %s\n", res.ID, res.Title)
	if res.Link != "" {
		fmt.Printf("   %s\n", res.Link)
	}
	fmt.Printf("\nNumber of companies: %d\n\n", len(res.Companies))

	for _, cf := range res.Companies {
		var tags []string
		for _, duration := range orderedDurations(cf.Durations) {
			tags = append(tags, fmt.Sprintf("%.2f%% (%s)", cf.Durations[duration], duration))
		}
		fmt.Printf("  %-20s %s | total %.2f%%\n",
			catalog.FormatCompany(cf.Company), strings.Join(tags, " "), cf.Total)
	}
	return nil
}

// orderedDurations returns map keys sorted for stable output.
func orderedDurations(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

type findCompanyJSON struct {
	Company   string             `json:"company"`
	Durations map[string]float64 `json:"durations"`
	Total     float64            `json:"total"`
}

func (c *FindCommand) printJSON(res *aggregate.Result) error {
	out := struct {
		ID        string            `json:"id"`
		Found     bool              `json:"found"`
		Title     string            `json:"title,omitempty"`
		Link      string            `json:"link,omitempty"`
		Companies []findCompanyJSON `json:"companies"`
	}{
		ID:        res.ID,
		Found:     res.Found(),
		Title:     res.Title,
		Link:      res.Link,
		Companies: make([]findCompanyJSON, len(res.Companies)),
	}

	for i, cf := range res.Companies {
		out.Companies[i] = findCompanyJSON{Company: cf.Company, Durations: cf.Durations, Total: cf.Total}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
