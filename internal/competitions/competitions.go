// Package competitions applies filter snapshots to the competition catalog.
package competitions

import (
	"context"
	"net/http"
	"strings"
	"time"

	"golang.org/x/text/cases"

	"github.com/thepitchdeck/portal/internal/backend"
	"github.com/thepitchdeck/portal/internal/filters"
)

// OpCatalogFetch names catalog failures on the diagnostics channel.
const OpCatalogFetch = "competitions.fetch"

// Competition is one listing entry.
type Competition struct {
	ID          string
	Title       string
	Description string
	Organizer   string
	Grade       filters.Grade
	Status      filters.Status
	Deadline    time.Time
	Prize       string
	Favourite   bool
}

// Matches reports whether comp satisfies every constraint in c.
func Matches(comp Competition, c filters.Criteria) bool {
	return newMatcher(c).match(comp)
}

// Apply returns the competitions matching c in their original order.
func Apply(list []Competition, c filters.Criteria) []Competition {
	m := newMatcher(c)
	out := make([]Competition, 0, len(list))
	for _, comp := range list {
		if m.match(comp) {
			out = append(out, comp)
		}
	}
	return out
}

type matcher struct {
	c      filters.Criteria
	fold   cases.Caser
	needle string
}

func newMatcher(c filters.Criteria) *matcher {
	m := &matcher{c: c, fold: cases.Fold()}
	m.needle = m.fold.String(c.SearchTerm)
	return m
}

func (m *matcher) match(comp Competition) bool {
	if m.c.Grade.Constrains() && comp.Grade != m.c.Grade {
		return false
	}
	if m.c.Status.Constrains() && comp.Status != m.c.Status {
		return false
	}
	if m.c.ShowFavourites.Only() && !comp.Favourite {
		return false
	}
	if m.needle == "" {
		return true
	}
	for _, field := range []string{comp.Title, comp.Description, comp.Organizer} {
		if strings.Contains(m.fold.String(field), m.needle) {
			return true
		}
	}
	return false
}

// Source lists the catalog visible to the owner of cookies.
type Source interface {
	Competitions(ctx context.Context, cookies []*http.Cookie) ([]backend.Competition, error)
}

// Reporter receives catalog failures that are not surfaced as errors.
type Reporter interface {
	Report(ctx context.Context, op string, err error)
}

// Result is a filtered listing.
type Result struct {
	Criteria    filters.Criteria
	Items       []Competition
	Total       int
	Unavailable bool
}

// Service fetches the catalog and applies filter snapshots to it.
type Service struct {
	source   Source
	reporter Reporter
}

// NewService creates a Service.
func NewService(source Source, reporter Reporter) *Service {
	return &Service{source: source, reporter: reporter}
}

// List fetches the catalog and filters it by c. A failed fetch yields an
// empty result flagged Unavailable.
func (s *Service) List(ctx context.Context, cookies []*http.Cookie, c filters.Criteria) Result {
	raw, err := s.source.Competitions(ctx, cookies)
	if err != nil {
		if s.reporter != nil {
			s.reporter.Report(ctx, OpCatalogFetch, err)
		}
		return Result{Criteria: c, Items: []Competition{}, Unavailable: true}
	}

	all := make([]Competition, 0, len(raw))
	for _, bc := range raw {
		all = append(all, fromBackend(bc))
	}
	return Result{Criteria: c, Items: Apply(all, c), Total: len(all)}
}

func fromBackend(bc backend.Competition) Competition {
	return Competition{
		ID:          bc.ID,
		Title:       bc.Title,
		Description: bc.Description,
		Organizer:   bc.Organizer,
		Grade:       filters.Grade(bc.Grade),
		Status:      filters.Status(bc.Status),
		Deadline:    bc.Deadline,
		Prize:       bc.Prize,
		Favourite:   bc.Favourite,
	}
}
