package storage

import "time"

// Key prefixes under which annotations persist. A question id appears
// under up to three keys: its attempted flag, its solve date, and the
// comma-joined company list from manual entry.
const (
	attemptPrefix   = "attempt-"
	datePrefix      = "date-"
	companiesPrefix = "companies-"
)

// Annotation is one question's persisted progress record.
type Annotation struct {
	ID         string
	Attempted  bool
	DateSolved string
	Companies  string
}

// Stats holds aggregate statistics about tracked progress.
type Stats struct {
	TotalTracked int
	TotalSolved  int
	FirstSolve   time.Time
	LastSolve    time.Time
	PerCompany   []CompanyCount
}

// CompanyCount pairs a company tag with the number of entries carrying it.
type CompanyCount struct {
	Company string
	Count   int
}
