package filters

// Option configures a Composer.
type Option func(*Composer)

// WithFavouritesToggle enables the favourites-only toggle for the host page.
func WithFavouritesToggle(enabled bool) Option {
	return func(c *Composer) { c.toggleEnabled = enabled }
}

// WithInitial seeds the composer's inputs, e.g. from a submitted filter form.
func WithInitial(initial Criteria) Option {
	return func(c *Composer) {
		c.search = initial.SearchTerm
		c.grade = initial.Grade
		c.status = initial.Status
		c.favourites, _ = initial.ShowFavourites.Get()
	}
}

// Composer owns the four filter inputs and pushes a fresh Criteria snapshot to
// its callback each time the snapshot changes. It never filters data itself.
//
// A Composer is not safe for concurrent use; it belongs to a single page view.
type Composer struct {
	onChange      func(Criteria)
	toggleEnabled bool

	search     string
	grade      Grade
	status     Status
	favourites bool

	last    Criteria
	emitted bool
}

// NewComposer builds a composer and emits the mount snapshot.
func NewComposer(onChange func(Criteria), opts ...Option) *Composer {
	c := &Composer{onChange: onChange}
	for _, opt := range opts {
		opt(c)
	}
	c.notify()
	return c
}

// SetSearchTerm captures the search text verbatim.
func (c *Composer) SetSearchTerm(term string) {
	c.search = term
	c.notify()
}

// SetGrade changes the grade criterion.
func (c *Composer) SetGrade(g Grade) {
	c.grade = g
	c.notify()
}

// SetStatus changes the status criterion.
func (c *Composer) SetStatus(s Status) {
	c.status = s
	c.notify()
}

// ToggleFavourites flips the favourites-only flag. It does nothing when the
// toggle is not rendered for the host page.
func (c *Composer) ToggleFavourites() {
	if !c.toggleEnabled {
		return
	}
	c.favourites = !c.favourites
	c.notify()
}

// ToggleEnabled reports whether the favourites toggle is rendered.
func (c *Composer) ToggleEnabled() bool { return c.toggleEnabled }

// FavouritesLabel is the caption of the favourites toggle for its current state.
func (c *Composer) FavouritesLabel() string {
	return FavouritesLabel(c.favourites)
}

// FavouritesLabel is the toggle caption for the given state.
func FavouritesLabel(on bool) string {
	if on {
		return "Showing Favourites"
	}
	return "Show Favourites"
}

// Snapshot returns the current criteria.
func (c *Composer) Snapshot() Criteria {
	s := Criteria{
		SearchTerm: c.search,
		Grade:      c.grade,
		Status:     c.status,
	}
	if c.toggleEnabled {
		s.ShowFavourites = FavouritesOf(c.favourites)
	}
	return s
}

func (c *Composer) notify() {
	s := c.Snapshot()
	if c.emitted && s == c.last {
		return
	}
	c.last, c.emitted = s, true
	if c.onChange != nil {
		c.onChange(s)
	}
}
