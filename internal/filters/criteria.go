// Package filters holds the competition filter composer: four independent
// criteria and the consolidated snapshot emitted whenever one of them changes.
package filters

import (
	"encoding/json"
	"net/url"
	"strings"
)

// Grade is the grade-tier criterion. GradeUnset and GradeAll both mean "no constraint".
type Grade string

const (
	GradeUnset         Grade = ""
	GradeAll           Grade = "all"
	GradePreSecondary  Grade = "Pre-Secondary"
	Grade9To10         Grade = "9-10"
	Grade11To12        Grade = "11-12"
	Grade9To12         Grade = "9-12"
	GradePostSecondary Grade = "Post-Secondary"
)

var gradeLabels = map[Grade]string{
	GradeAll:           "All Grades",
	GradePreSecondary:  "Pre-Secondary",
	Grade9To10:         "Grades 9-10",
	Grade11To12:        "Grades 11-12",
	Grade9To12:         "Grades 9-12",
	GradePostSecondary: "Post-Secondary",
}

// Grades returns the selectable grade options in display order.
func Grades() []Grade {
	return []Grade{GradeAll, GradePreSecondary, Grade9To10, Grade11To12, Grade9To12, GradePostSecondary}
}

// ParseGrade maps a raw value to a Grade. Unknown values decode to GradeUnset.
func ParseGrade(raw string) Grade {
	g := Grade(raw)
	if g == GradeUnset {
		return g
	}
	if _, ok := gradeLabels[g]; ok {
		return g
	}
	return GradeUnset
}

// Constrains reports whether the grade narrows the result set.
func (g Grade) Constrains() bool {
	return g != GradeUnset && g != GradeAll
}

// Label is the caption shown in the grade select.
func (g Grade) Label() string {
	if l, ok := gradeLabels[g]; ok {
		return l
	}
	return "Grade Level"
}

// Status is the competition status criterion. StatusUnset and StatusAll both mean "no constraint".
type Status string

const (
	StatusUnset       Status = ""
	StatusAll         Status = "all"
	StatusOpen        Status = "open"
	StatusClosingSoon Status = "closing-soon"
	StatusClosed      Status = "closed"
)

var statusLabels = map[Status]string{
	StatusAll:         "All Status",
	StatusOpen:        "Open",
	StatusClosingSoon: "Closing Soon",
	StatusClosed:      "Closed",
}

// Statuses returns the selectable status options in display order.
func Statuses() []Status {
	return []Status{StatusAll, StatusOpen, StatusClosingSoon, StatusClosed}
}

// ParseStatus maps a raw value to a Status. Unknown values decode to StatusUnset.
func ParseStatus(raw string) Status {
	s := Status(raw)
	if s == StatusUnset {
		return s
	}
	if _, ok := statusLabels[s]; ok {
		return s
	}
	return StatusUnset
}

// Constrains reports whether the status narrows the result set.
func (s Status) Constrains() bool {
	return s != StatusUnset && s != StatusAll
}

// Label is the caption shown in the status select.
func (s Status) Label() string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return "Status"
}

// Favourites is the optional favourites-only criterion. It is present only
// when the host page enables the favourites toggle.
type Favourites struct {
	present bool
	on      bool
}

// NoFavourites is the absent option.
func NoFavourites() Favourites { return Favourites{} }

// FavouritesOf returns a present option holding on.
func FavouritesOf(on bool) Favourites { return Favourites{present: true, on: on} }

// Get returns the value and whether the option is present.
func (f Favourites) Get() (on, present bool) { return f.on, f.present }

// Only reports whether consumers must restrict results to favourites.
func (f Favourites) Only() bool { return f.present && f.on }

// Criteria is the consolidated filter snapshot.
type Criteria struct {
	SearchTerm     string
	Grade          Grade
	Status         Status
	ShowFavourites Favourites
}

type criteriaJSON struct {
	SearchTerm     string `json:"searchTerm"`
	GradeFilter    Grade  `json:"gradeFilter"`
	StatusFilter   Status `json:"statusFilter"`
	ShowFavourites *bool  `json:"showFavourites,omitempty"`
}

// MarshalJSON omits showFavourites when the option is absent.
func (c Criteria) MarshalJSON() ([]byte, error) {
	out := criteriaJSON{SearchTerm: c.SearchTerm, GradeFilter: c.Grade, StatusFilter: c.Status}
	if on, ok := c.ShowFavourites.Get(); ok {
		out.ShowFavourites = &on
	}
	return json.Marshal(out)
}

// Query parameter names used by the filter form.
const (
	ParamSearch     = "search"
	ParamGrade      = "grade"
	ParamStatus     = "status"
	ParamFavourites = "favourites"
)

// FromQuery decodes a filter form submission. The favourites option is
// present only when toggleEnabled is set.
func FromQuery(q url.Values, toggleEnabled bool) Criteria {
	c := Criteria{
		SearchTerm: q.Get(ParamSearch),
		Grade:      ParseGrade(q.Get(ParamGrade)),
		Status:     ParseStatus(q.Get(ParamStatus)),
	}
	if toggleEnabled {
		c.ShowFavourites = FavouritesOf(strings.EqualFold(q.Get(ParamFavourites), "on"))
	}
	return c
}

// Query encodes the snapshot as filter form parameters.
func (c Criteria) Query() url.Values {
	q := url.Values{}
	if c.SearchTerm != "" {
		q.Set(ParamSearch, c.SearchTerm)
	}
	if c.Grade != GradeUnset {
		q.Set(ParamGrade, string(c.Grade))
	}
	if c.Status != StatusUnset {
		q.Set(ParamStatus, string(c.Status))
	}
	if on, ok := c.ShowFavourites.Get(); ok {
		q.Set(ParamFavourites, onOff(on))
	}
	return q
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}
