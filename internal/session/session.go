// Package session holds the report currently being searched and the last
// query against it. A load either publishes a complete new report or leaves
// the previous one in place.
package session

import (
	"context"
	"errors"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dgallion1/skufinder/internal/parser"
	"github.com/dgallion1/skufinder/internal/report"
)

// ErrSuperseded is returned when publishing a report older than the one
// already visible.
var ErrSuperseded = errors.New("a newer report is already published")

// State is one published report. It is never modified after publication.
type State struct {
	Filename   string
	Report     *report.Report
	Generation uint64
	LoadedAt   time.Time
}

// Session is safe for concurrent use.
type Session struct {
	opts parser.Options
	gen  atomic.Uint64

	mu      sync.RWMutex
	state   *State
	query   string
	results []report.SKUResult
}

func New(opts parser.Options) *Session {
	return &Session{opts: opts}
}

// NextGeneration reserves the ordering slot for a load that is about to start.
func (s *Session) NextGeneration() uint64 {
	return s.gen.Add(1)
}

// Load reads and parses a document, then publishes it. On any error, including
// a cancelled ctx, the previous report stays visible.
func (s *Session) Load(ctx context.Context, r io.Reader, filename string) (*report.Report, error) {
	gen := s.NextGeneration()

	tbl, err := parser.Load(r, filename, s.opts)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rep := report.Parse(tbl)
	if err := s.Publish(ctx, rep, filename, gen); err != nil {
		return nil, err
	}
	return rep, nil
}

// Publish swaps in rep and clears the current query and results. It refuses
// reports whose generation is not newer than the published one.
func (s *Session) Publish(ctx context.Context, rep *report.Report, filename string, gen uint64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != nil && gen <= s.state.Generation {
		return ErrSuperseded
	}
	s.state = &State{
		Filename:   filename,
		Report:     rep,
		Generation: gen,
		LoadedAt:   time.Now(),
	}
	s.query = ""
	s.results = nil
	return nil
}

// Reconfirm claims gen for the published report when its content hash matches
// hash, so loads reserved before gen can no longer publish over it. The report
// and search state are kept. It reports whether the hash matched.
func (s *Session) Reconfirm(hash string, gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == nil || hash == "" || s.state.Report.ContentHash != hash {
		return false
	}
	if gen > s.state.Generation {
		next := *s.state
		next.Generation = gen
		s.state = &next
	}
	return true
}

// Current returns the published state, or nil before the first load.
func (s *Session) Current() *State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Search looks up query in the current report and remembers both.
func (s *Session) Search(query string) []report.SKUResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.query = query
	s.results = nil
	if s.state != nil {
		s.results = s.state.Report.Lookup(query)
	}
	return s.results
}

// Lookup queries the current report without touching the session's query.
func (s *Session) Lookup(query string) []report.SKUResult {
	cur := s.Current()
	if cur == nil {
		return nil
	}
	return cur.Report.Lookup(query)
}

// Snapshot is a read-only summary of the session.
type Snapshot struct {
	Loaded       bool               `json:"loaded"`
	Filename     string             `json:"filename,omitempty"`
	Title        string             `json:"title,omitempty"`
	Generation   uint64             `json:"generation"`
	LoadedAt     time.Time          `json:"loaded_at,omitzero"`
	Sections     int                `json:"sections"`
	Products     int                `json:"products"`
	SKUs         int                `json:"skus"`
	Unterminated int                `json:"unterminated"`
	Query        string             `json:"query"`
	Results      []report.SKUResult `json:"results"`
}

// Snapshot returns the current summary.
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		Query:   s.query,
		Results: s.results,
	}
	if snap.Results == nil {
		snap.Results = []report.SKUResult{}
	}
	if s.state == nil {
		return snap
	}
	rep := s.state.Report
	snap.Loaded = true
	snap.Filename = s.state.Filename
	snap.Title = rep.Title
	snap.Generation = s.state.Generation
	snap.LoadedAt = s.state.LoadedAt
	snap.Sections = len(rep.Sections)
	snap.Products = rep.ProductCount()
	snap.SKUs = rep.Index.Len()
	snap.Unterminated = rep.Unterminated
	return snap
}
