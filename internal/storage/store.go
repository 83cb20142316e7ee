package storage

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Validation failures surfaced by CreateEntry. Each aborts before any
// write, so a failed create never leaves a partial record.
var (
	ErrDuplicateID = errors.New("an entry for this id already exists")
	ErrNoCompanies = errors.New("at least one company is required")
	ErrInvalidID   = errors.New("id must be numeric")
)

// Store is the annotation repository. All operations are synchronous;
// reads return the last written value, and a missing attempted flag
// reads as false.
type Store struct {
	backend Backend
	now     func() time.Time
}

// NewStore creates a Store over the given backend.
func NewStore(backend Backend) *Store {
	return &Store{backend: backend, now: time.Now}
}

// SetAttempted records whether a question has been attempted. Marking it
// attempted stamps the solve date with the current time; unmarking clears
// the date but keeps the flag stored as "false".
func (s *Store) SetAttempted(id string, attempted bool) error {
	if attempted {
		if err := s.backend.Set(datePrefix+id, FormatTimestamp(s.now())); err != nil {
			return err
		}
	} else {
		if err := s.backend.Delete(datePrefix + id); err != nil {
			return err
		}
	}
	return s.backend.Set(attemptPrefix+id, strconv.FormatBool(attempted))
}

// Attempted reports the attempted flag for id; absent reads as false.
func (s *Store) Attempted(id string) (bool, error) {
	v, ok, err := s.backend.Get(attemptPrefix + id)
	if err != nil || !ok {
		return false, err
	}
	return v == "true", nil
}

// SetDateSolved overwrites the solve date verbatim. Any text is accepted;
// chart builds tolerate free-form dates via the fallback parser.
func (s *Store) SetDateSolved(id, text string) error {
	return s.backend.Set(datePrefix+id, text)
}

// DateSolved returns the stored solve date, or "" when absent.
func (s *Store) DateSolved(id string) (string, error) {
	v, _, err := s.backend.Get(datePrefix + id)
	return v, err
}

// Companies returns the stored company list for id, or "" when absent.
func (s *Store) Companies(id string) (string, error) {
	v, _, err := s.backend.Get(companiesPrefix + id)
	return v, err
}

// CreateEntry records a manually-entered question. The id must be numeric
// and not yet tracked (a flag stored as "false" still counts as tracked),
// and at least one company is required. On success the question is marked
// attempted, stamped with the current time, and tagged with the
// comma-joined company list.
func (s *Store) CreateEntry(id string, companies []string) error {
	id = strings.TrimSpace(id)
	if _, err := strconv.ParseFloat(id, 64); id == "" || err != nil {
		return ErrInvalidID
	}

	if _, ok, err := s.backend.Get(attemptPrefix + id); err != nil {
		return err
	} else if ok {
		return ErrDuplicateID
	}

	if len(companies) == 0 {
		return ErrNoCompanies
	}

	if err := s.backend.Set(attemptPrefix+id, "true"); err != nil {
		return err
	}
	if err := s.backend.Set(datePrefix+id, FormatTimestamp(s.now())); err != nil {
		return err
	}
	return s.backend.Set(companiesPrefix+id, strings.Join(companies, ", "))
}

// SolveDates returns every stored solve date keyed by question id.
func (s *Store) SolveDates() (map[string]string, error) {
	keys, err := s.backend.Keys(datePrefix)
	if err != nil {
		return nil, err
	}

	dates := make(map[string]string, len(keys))
	for _, key := range keys {
		v, ok, err := s.backend.Get(key)
		if err != nil {
			return nil, err
		}
		if ok && v != "" {
			dates[strings.TrimPrefix(key, datePrefix)] = v
		}
	}
	return dates, nil
}

// Entries returns every tracked question's annotation, ordered by numeric
// id where possible.
func (s *Store) Entries() ([]Annotation, error) {
	keys, err := s.backend.Keys(attemptPrefix)
	if err != nil {
		return nil, err
	}

	entries := make([]Annotation, 0, len(keys))
	for _, key := range keys {
		id := strings.TrimPrefix(key, attemptPrefix)

		attempted, err := s.Attempted(id)
		if err != nil {
			return nil, err
		}
		date, err := s.DateSolved(id)
		if err != nil {
			return nil, err
		}
		companies, err := s.Companies(id)
		if err != nil {
			return nil, err
		}

		entries = append(entries, Annotation{
			ID:         id,
			Attempted:  attempted,
			DateSolved: date,
			Companies:  companies,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, errA := strconv.Atoi(entries[i].ID)
		b, errB := strconv.Atoi(entries[j].ID)
		if errA != nil || errB != nil {
			return entries[i].ID < entries[j].ID
		}
		return a < b
	})
	return entries, nil
}

// Stats aggregates progress counts and the first/last parseable solve date.
func (s *Store) Stats() (*Stats, error) {
	entries, err := s.Entries()
	if err != nil {
		return nil, err
	}

	stats := &Stats{TotalTracked: len(entries)}
	perCompany := make(map[string]int)

	for _, e := range entries {
		if e.Attempted {
			stats.TotalSolved++
		}
		for _, company := range strings.Split(e.Companies, ",") {
			company = strings.TrimSpace(company)
			if company != "" {
				perCompany[company]++
			}
		}

		if e.DateSolved == "" {
			continue
		}
		t, err := ParseTimestamp(e.DateSolved)
		if err != nil {
			continue
		}
		if stats.FirstSolve.IsZero() || t.Before(stats.FirstSolve) {
			stats.FirstSolve = t
		}
		if t.After(stats.LastSolve) {
			stats.LastSolve = t
		}
	}

	for company, count := range perCompany {
		stats.PerCompany = append(stats.PerCompany, CompanyCount{Company: company, Count: count})
	}
	sort.Slice(stats.PerCompany, func(i, j int) bool {
		if stats.PerCompany[i].Count != stats.PerCompany[j].Count {
			return stats.PerCompany[i].Count > stats.PerCompany[j].Count
		}
		return stats.PerCompany[i].Company < stats.PerCompany[j].Company
	})

	return stats, nil
}

// Purge deletes every annotation.
func (s *Store) Purge() error {
	for _, prefix := range []string{attemptPrefix, datePrefix, companiesPrefix} {
		keys, err := s.backend.Keys(prefix)
		if err != nil {
			return err
		}
		for _, key := range keys {
			if err := s.backend.Delete(key); err != nil {
				return fmt.Errorf("purge %s: %w", key, err)
			}
		}
	}
	return nil
}

// Close releases the backend's resources when it holds any.
func (s *Store) Close() error {
	if c, ok := s.backend.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
