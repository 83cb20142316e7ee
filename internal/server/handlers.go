package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/nmehta/leetrack/internal/aggregate"
	"github.com/nmehta/leetrack/internal/dataset"
	"github.com/nmehta/leetrack/internal/storage"
	"github.com/nmehta/leetrack/internal/summary"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "version": s.version})
}

type companyJSON struct {
	Name      string   `json:"name"`
	Durations []string `json:"durations"`
}

func (s *Server) handleCompanies(w http.ResponseWriter, r *http.Request) {
	cat, err := s.client.Catalog(r.Context())
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	out := make([]companyJSON, 0, len(cat.Companies))
	for _, company := range cat.Companies {
		out = append(out, companyJSON{Name: company, Durations: cat.Durations[company]})
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"companies": out})
}

type questionJSON struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	Acceptance string  `json:"acceptance"`
	Difficulty string  `json:"difficulty"`
	Frequency  string  `json:"frequency"`
	Link       string  `json:"link"`
	Attempted  bool    `json:"attempted"`
	DateSolved string  `json:"date_solved,omitempty"`
	RawFreq    float64 `json:"raw_frequency"`
}

func (s *Server) handleQuestions(w http.ResponseWriter, r *http.Request) {
	company := chi.URLParam(r, "company")
	duration := chi.URLParam(r, "duration")

	t, err := s.client.Dataset(r.Context(), company, duration)
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	t = dataset.Apply(t, r.URL.Query().Get("sort"), r.URL.Query().Get("difficulty"))

	solved := 0
	out := make([]questionJSON, 0, len(t.Rows))
	for i := range t.Rows {
		q := t.Question(i)

		attempted, err := s.store.Attempted(q.ID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		date, err := s.store.DateSolved(q.ID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		if attempted {
			solved++
		}

		out = append(out, questionJSON{
			ID:         q.ID,
			Title:      q.Title,
			Acceptance: q.Acceptance,
			Difficulty: q.Difficulty,
			Frequency:  fmt.Sprintf("%.2f%%", q.Frequency),
			Link:       q.Link,
			Attempted:  attempted,
			DateSolved: date,
			RawFreq:    q.Frequency,
		})
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"company":   company,
		"duration":  duration,
		"solved":    solved,
		"total":     len(out),
		"questions": out,
	})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	cat, err := s.client.Catalog(r.Context())
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	res, err := aggregate.Search(r.Context(), s.client, cat, id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	type companyFreqJSON struct {
		Company   string             `json:"company"`
		Durations map[string]string  `json:"durations"`
		Total     string             `json:"total"`
		RawTotals map[string]float64 `json:"raw_durations"`
	}

	companies := make([]companyFreqJSON, 0, len(res.Companies))
	for _, cf := range res.Companies {
		durations := make(map[string]string, len(cf.Durations))
		for d, f := range cf.Durations {
			durations[d] = fmt.Sprintf("%.2f%%", f)
		}
		companies = append(companies, companyFreqJSON{
			Company:   cf.Company,
			Durations: durations,
			Total:     fmt.Sprintf("%.2f%%", cf.Total),
			RawTotals: cf.Durations,
		})
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"id":        res.ID,
		"found":     res.Found(),
		"title":     res.Title,
		"link":      res.Link,
		"companies": companies,
	})
}

func (s *Server) handleActivity(w http.ResponseWriter, r *http.Request) {
	timeframe := r.URL.Query().Get("timeframe")
	if timeframe == "" {
		timeframe = summary.TimeframeWeek
	}

	act, err := summary.Summarize(s.store, timeframe, time.Now())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	type bucketJSON struct {
		Label string `json:"label"`
		Count int    `json:"count"`
	}
	buckets := make([]bucketJSON, len(act.Buckets))
	for i, b := range act.Buckets {
		buckets[i] = bucketJSON{Label: b.Label, Count: b.Count}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"timeframe": act.Timeframe,
		"buckets":   buckets,
		"per_hour":  act.PerHour,
	})
}

func (s *Server) handleReview(w http.ResponseWriter, r *http.Request) {
	problems, err := s.client.Problems(r.Context())
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	rows, err := summary.Review(s.store, problems)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if rows == nil {
		rows = []summary.ReviewRow{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"questions": rows})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	stats, err := s.store.Stats()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

type attemptRequest struct {
	ID        string `json:"id"`
	Attempted bool   `json:"attempted"`
	Date      string `json:"date,omitempty"`
}

func (s *Server) handleAttempt(w http.ResponseWriter, r *http.Request) {
	var req attemptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ID == "" {
		writeError(w, http.StatusBadRequest, "id is required")
		return
	}

	// An explicit date is a direct overwrite; otherwise toggle the flag.
	if req.Date != "" {
		if err := s.store.SetDateSolved(req.ID, req.Date); err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
	} else if err := s.store.SetAttempted(req.ID, req.Attempted); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	date, err := s.store.DateSolved(req.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	attempted, err := s.store.Attempted(req.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"id":          req.ID,
		"attempted":   attempted,
		"date_solved": date,
	})
}

type createEntryRequest struct {
	ID        string   `json:"id"`
	Companies []string `json:"companies"`
}

func (s *Server) handleCreateEntry(w http.ResponseWriter, r *http.Request) {
	var req createEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := s.store.CreateEntry(req.ID, req.Companies); err != nil {
		switch {
		case errors.Is(err, storage.ErrDuplicateID):
			writeError(w, http.StatusConflict, err.Error())
		case errors.Is(err, storage.ErrInvalidID), errors.Is(err, storage.ErrNoCompanies):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	date, err := s.store.DateSolved(req.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"id":          req.ID,
		"date_solved": date,
	})
}
