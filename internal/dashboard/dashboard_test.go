package dashboard

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reported struct {
	op  string
	err error
}

type captureReporter struct {
	mu    sync.Mutex
	calls []reported
}

func (r *captureReporter) Report(_ context.Context, op string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, reported{op: op, err: err})
}

func (r *captureReporter) snapshot() []reported {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]reported(nil), r.calls...)
}

func waitDone(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("session fetch did not settle")
	}
}

func TestNavigation(t *testing.T) {
	t.Run("competitor menu", func(t *testing.T) {
		items := Navigation(RoleCompetitor)
		require.Len(t, items, 4)
		assert.Equal(t, "Dashboard", items[0].Label)
		assert.Equal(t, "/dashboard/competitor", items[0].TargetPath)
		assert.Equal(t, IconHome, items[0].Icon)
	})

	t.Run("deterministic for every role", func(t *testing.T) {
		for _, r := range []Role{RoleCompetitor, RoleOrganizer, RoleAdmin} {
			assert.Equal(t, Navigation(r), Navigation(r), "role %s", r)
			assert.Len(t, Navigation(r), 4)
		}
	})

	t.Run("organizer and admin ordering", func(t *testing.T) {
		labels := func(items []NavigationItem) []string {
			var out []string
			for _, it := range items {
				out = append(out, it.Label)
			}
			return out
		}
		assert.Equal(t, []string{"Dashboard", "My Competitions", "Create Competition", "Analytics"}, labels(Navigation(RoleOrganizer)))
		assert.Equal(t, []string{"Dashboard", "Applications", "Users", "Analytics"}, labels(Navigation(RoleAdmin)))
	})

	t.Run("unknown role resolves to an empty menu", func(t *testing.T) {
		items := Navigation(Role("judge"))
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})

	t.Run("callers cannot mutate the table", func(t *testing.T) {
		items := Navigation(RoleAdmin)
		items[0].Label = "Hacked"
		assert.Equal(t, "Dashboard", Navigation(RoleAdmin)[0].Label)
	})
}

func TestParseRole(t *testing.T) {
	r, ok := ParseRole("organizer")
	assert.True(t, ok)
	assert.Equal(t, RoleOrganizer, r)
	assert.Equal(t, "/dashboard/organizer", r.HomePath())

	_, ok = ParseRole("Organizer")
	assert.False(t, ok)
}

func TestActiveItem(t *testing.T) {
	items := Navigation(RoleCompetitor)
	assert.Equal(t, 0, ActiveItem(items, "/dashboard/competitor"))
	assert.Equal(t, 1, ActiveItem(items, "/dashboard/competitor/competitions"))
	assert.Equal(t, 2, ActiveItem(items, "/dashboard/competitor/applications/42"))
	assert.Equal(t, 0, ActiveItem(items, "/dashboard/competitor/unknown"))
	assert.Equal(t, -1, ActiveItem(items, "/dashboard/competitorx"))
	assert.Equal(t, -1, ActiveItem(nil, "/"))
}

func TestSidebar(t *testing.T) {
	s := ParseSidebarState("")
	assert.Equal(t, SidebarClosed, s)

	s = s.Next(EventMenu)
	assert.True(t, s.IsOpen())
	assert.Equal(t, SidebarClosed, s.Next(EventBackdrop))
	assert.Equal(t, SidebarClosed, s.Next(EventDismiss))
	assert.Equal(t, SidebarOpen, s.Next(SidebarEvent("swipe")))
	assert.Equal(t, SidebarOpen, ParseSidebarState("open"))

	before := Navigation(RoleCompetitor)
	SidebarClosed.Next(EventMenu).Next(EventBackdrop)
	assert.Equal(t, before, Navigation(RoleCompetitor))
}

func TestIdentityPlaceholders(t *testing.T) {
	var absent *Identity
	assert.Equal(t, "User", absent.DisplayName())
	assert.Equal(t, "user@example.com", absent.DisplayEmail())
	assert.Equal(t, PlaceholderAvatar, absent.AvatarURL())
	assert.Equal(t, "U", absent.Initial())

	id := &Identity{FirstName: "ada", LastName: "Lovelace", Email: "ada@example.com"}
	assert.Equal(t, "ada Lovelace", id.DisplayName())
	assert.Equal(t, "ada@example.com", id.DisplayEmail())
	assert.Equal(t, PlaceholderAvatar, id.AvatarURL())
	assert.Equal(t, "A", id.Initial())
}

func TestSession_Mount(t *testing.T) {
	ctx := context.Background()

	t.Run("user payload resolves to present", func(t *testing.T) {
		calls := 0
		s := NewSession(FetcherFunc(func(context.Context) (*Identity, error) {
			calls++
			return &Identity{FirstName: "Grace", LastName: "Hopper", Email: "grace@example.com"}, nil
		}), nil)
		assert.Equal(t, SessionUnresolved, s.State())
		assert.Nil(t, s.Identity())

		waitDone(t, s.Mount(ctx))
		waitDone(t, s.Mount(ctx))

		assert.Equal(t, 1, calls, "a single fetch per mount")
		assert.Equal(t, SessionPresent, s.State())
		require.NotNil(t, s.Identity())
		assert.Equal(t, "Grace Hopper", s.Identity().DisplayName())
	})

	t.Run("no user payload resolves to absent", func(t *testing.T) {
		rep := &captureReporter{}
		s := NewSession(FetcherFunc(func(context.Context) (*Identity, error) { return nil, nil }), rep)

		waitDone(t, s.Mount(ctx))

		assert.Equal(t, SessionAbsent, s.State())
		assert.Empty(t, rep.snapshot())
	})

	t.Run("fetch failure resolves to absent and is reported", func(t *testing.T) {
		rep := &captureReporter{}
		boom := errors.New("connection refused")
		s := NewSession(FetcherFunc(func(context.Context) (*Identity, error) { return nil, boom }), rep)

		waitDone(t, s.Mount(ctx))

		assert.Equal(t, SessionAbsent, s.State())
		assert.Equal(t, "User", s.Identity().DisplayName())
		assert.Equal(t, "user@example.com", s.Identity().DisplayEmail())
		calls := rep.snapshot()
		require.Len(t, calls, 1)
		assert.Equal(t, OpSessionFetch, calls[0].op)
		assert.ErrorIs(t, calls[0].err, boom)
	})

	t.Run("late result after unmount is dropped", func(t *testing.T) {
		release := make(chan struct{})
		s := NewSession(FetcherFunc(func(context.Context) (*Identity, error) {
			<-release
			return &Identity{FirstName: "Late"}, nil
		}), nil)

		done := s.Mount(ctx)
		s.Unmount()
		close(release)
		waitDone(t, done)

		assert.Equal(t, SessionUnresolved, s.State())
		assert.Nil(t, s.Identity())
	})
}

func TestSession_Logout(t *testing.T) {
	ctx := context.Background()
	present := func(t *testing.T) *Session {
		s := NewSession(FetcherFunc(func(context.Context) (*Identity, error) {
			return &Identity{FirstName: "Lin"}, nil
		}), nil)
		waitDone(t, s.Mount(ctx))
		require.Equal(t, SessionPresent, s.State())
		return s
	}

	t.Run("success clears identity and redirects to root", func(t *testing.T) {
		s := present(t)
		called := false
		path := s.Logout(ctx, func(context.Context) error { called = true; return nil })

		assert.True(t, called)
		assert.Equal(t, "/", path)
		assert.Nil(t, s.Identity())
		assert.Equal(t, SessionAbsent, s.State())
	})

	t.Run("failure is swallowed and still redirects", func(t *testing.T) {
		rep := &captureReporter{}
		s := NewSession(FetcherFunc(func(context.Context) (*Identity, error) {
			return &Identity{FirstName: "Lin"}, nil
		}), rep)
		waitDone(t, s.Mount(ctx))

		path := s.Logout(ctx, func(context.Context) error { return errors.New("backend down") })

		assert.Equal(t, "/", path)
		assert.Nil(t, s.Identity())
		calls := rep.snapshot()
		require.Len(t, calls, 1)
		assert.Equal(t, OpLogout, calls[0].op)
	})
}
