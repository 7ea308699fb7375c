package cmd

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thepitchdeck/portal/internal/dashboard"
)

func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		navRole, navFormat = string(dashboard.RoleCompetitor), "table"
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestNavCommand(t *testing.T) {
	t.Run("table", func(t *testing.T) {
		out, err := runRoot(t, "nav", "--role", "organizer")
		require.NoError(t, err)
		assert.Contains(t, out, "LABEL")
		assert.Contains(t, out, "Create Competition")
		assert.Contains(t, out, "/dashboard/organizer/analytics")
	})

	t.Run("json", func(t *testing.T) {
		out, err := runRoot(t, "nav", "--role", "admin", "--format", "json")
		require.NoError(t, err)
		var items []dashboard.NavigationItem
		require.NoError(t, json.Unmarshal([]byte(out), &items))
		assert.Equal(t, dashboard.Navigation(dashboard.RoleAdmin), items)
	})

	t.Run("unknown role", func(t *testing.T) {
		_, err := runRoot(t, "nav", "--role", "judge")
		assert.ErrorContains(t, err, "unknown role")
	})
}

func TestVersionCommand(t *testing.T) {
	out, err := runRoot(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "portal v"+version+"\n", out)
}
