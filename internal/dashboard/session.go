package dashboard

import (
	"context"
	"strings"
	"sync"
)

// RootPath is where the browser lands after logout.
const RootPath = "/"

// Operation names used when reporting swallowed failures.
const (
	OpSessionFetch = "session.fetch"
	OpLogout       = "session.logout"
)

// Placeholders rendered while the identity is absent or unresolved.
const (
	PlaceholderName    = "User"
	PlaceholderEmail   = "user@example.com"
	PlaceholderAvatar  = "/static/img/placeholder-avatar.svg"
	PlaceholderInitial = "U"
)

// Identity is the signed-in viewer's display profile.
type Identity struct {
	FirstName string
	LastName  string
	Email     string
	Avatar    string
}

// DisplayName is safe to call on a nil identity.
func (id *Identity) DisplayName() string {
	if id == nil {
		return PlaceholderName
	}
	return strings.TrimSpace(id.FirstName + " " + id.LastName)
}

// DisplayEmail is safe to call on a nil identity.
func (id *Identity) DisplayEmail() string {
	if id == nil {
		return PlaceholderEmail
	}
	return id.Email
}

// AvatarURL falls back to the generic avatar when none is set.
func (id *Identity) AvatarURL() string {
	if id == nil || id.Avatar == "" {
		return PlaceholderAvatar
	}
	return id.Avatar
}

// Initial is the upper-cased first letter of the first name.
func (id *Identity) Initial() string {
	if id == nil || id.FirstName == "" {
		return PlaceholderInitial
	}
	r := []rune(id.FirstName)
	return strings.ToUpper(string(r[0]))
}

// SessionState is the identity resolution state.
type SessionState int

const (
	SessionUnresolved SessionState = iota
	SessionPresent
	SessionAbsent
)

func (s SessionState) String() string {
	switch s {
	case SessionPresent:
		return "present"
	case SessionAbsent:
		return "absent"
	default:
		return "unresolved"
	}
}

// IdentityFetcher loads the viewer's identity. A nil identity with a nil
// error means the backend answered without a user.
type IdentityFetcher interface {
	FetchIdentity(ctx context.Context) (*Identity, error)
}

// FetcherFunc adapts a function to IdentityFetcher.
type FetcherFunc func(ctx context.Context) (*Identity, error)

// FetchIdentity implements IdentityFetcher.
func (f FetcherFunc) FetchIdentity(ctx context.Context) (*Identity, error) { return f(ctx) }

// LogoutFunc submits the logout request to the backend.
type LogoutFunc func(ctx context.Context) error

// Reporter receives failures the shell recovers from without telling the user.
type Reporter interface {
	Report(ctx context.Context, op string, err error)
}

type nopReporter struct{}

func (nopReporter) Report(context.Context, string, error) {}

// Session tracks one mount-to-unmount lifecycle of the shell's identity.
type Session struct {
	fetcher  IdentityFetcher
	reporter Reporter

	mu        sync.Mutex
	state     SessionState
	identity  *Identity
	done      chan struct{}
	unmounted bool
}

// NewSession returns an unresolved session. reporter may be nil.
func NewSession(fetcher IdentityFetcher, reporter Reporter) *Session {
	if reporter == nil {
		reporter = nopReporter{}
	}
	return &Session{fetcher: fetcher, reporter: reporter}
}

// Mount issues the single identity fetch for this session in the background
// and returns a channel closed once the result has been applied. Repeated
// calls return the same channel without fetching again.
func (s *Session) Mount(ctx context.Context) <-chan struct{} {
	s.mu.Lock()
	if s.done != nil {
		done := s.done
		s.mu.Unlock()
		return done
	}
	done := make(chan struct{})
	s.done = done
	s.mu.Unlock()

	go func() {
		defer close(done)
		id, err := s.fetcher.FetchIdentity(ctx)
		s.settle(ctx, id, err)
	}()
	return done
}

func (s *Session) settle(ctx context.Context, id *Identity, err error) {
	if err != nil {
		s.reporter.Report(ctx, OpSessionFetch, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.unmounted {
		return
	}
	if err != nil || id == nil {
		s.state, s.identity = SessionAbsent, nil
		return
	}
	cp := *id
	s.state, s.identity = SessionPresent, &cp
}

// Unmount ends the lifecycle. Results arriving afterwards are dropped.
func (s *Session) Unmount() {
	s.mu.Lock()
	s.unmounted = true
	s.mu.Unlock()
}

// State returns the current resolution state.
func (s *Session) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Identity returns a copy of the resolved identity, or nil while absent or unresolved.
func (s *Session) Identity() *Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.identity == nil {
		return nil
	}
	cp := *s.identity
	return &cp
}

// Logout submits the logout request, clears the identity whatever the outcome
// and returns the path to navigate to. Failures are reported, never returned.
func (s *Session) Logout(ctx context.Context, logout LogoutFunc) string {
	if logout != nil {
		if err := logout(ctx); err != nil {
			s.reporter.Report(ctx, OpLogout, err)
		}
	}

	s.mu.Lock()
	s.identity = nil
	if !s.unmounted {
		s.state = SessionAbsent
	}
	s.mu.Unlock()
	return RootPath
}
