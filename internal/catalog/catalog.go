package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Catalog enumerates every company and, per company, the time windows a
// dataset file exists for. Companies keep the document order of the JSON
// they were decoded from.
type Catalog struct {
	Companies []string
	Durations map[string][]string
}

// UnmarshalJSON decodes the catalog document while preserving key order,
// which a plain map would lose.
func (c *Catalog) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("catalog: expected JSON object, got %v", tok)
	}

	c.Companies = nil
	c.Durations = make(map[string][]string)

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		company, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("catalog: expected string key, got %v", keyTok)
		}

		var durations []string
		if err := dec.Decode(&durations); err != nil {
			return fmt.Errorf("catalog: durations for %q: %w", company, err)
		}

		c.Companies = append(c.Companies, company)
		c.Durations[company] = durations
	}

	_, err = dec.Token() // closing brace
	return err
}

// Has reports whether the catalog lists the company/duration pair.
func (c *Catalog) Has(company, duration string) bool {
	for _, d := range c.Durations[company] {
		if d == duration {
			return true
		}
	}
	return false
}

// Problem is one entry of the problem catalog document.
type Problem struct {
	Name       string `json:"Problem Name"`
	Difficulty string `json:"Difficulty"`
}

// ProblemSet maps a canonical problem id to its catalog entry.
type ProblemSet map[string]Problem

// FormatDuration renders a duration token for display:
// "6months" -> "6 Months", "1year" -> "1 Year", "alltime" -> "All Time".
func FormatDuration(duration string) string {
	r := strings.NewReplacer(
		"months", " Months",
		"year", " Year",
		"alltime", "All Time",
	)
	return r.Replace(duration)
}

// FormatCompany capitalizes a company identifier for display.
func FormatCompany(company string) string {
	if company == "" {
		return company
	}
	return strings.ToUpper(company[:1]) + company[1:]
}
