package cmd

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/thepitchdeck/portal/internal/dashboard"
)

var (
	navRole   string
	navFormat string
)

var navCmd = &cobra.Command{
	Use:   "nav",
	Short: "Print the dashboard navigation for a role",
	Long: `Print the sidebar navigation the dashboard shell renders for a role.

Examples:
  portal nav --role competitor
  portal nav --role admin --format json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		role, ok := dashboard.ParseRole(navRole)
		if !ok {
			return fmt.Errorf("unknown role %q (want competitor, organizer or admin)", navRole)
		}
		return printNavigation(cmd, dashboard.Navigation(role))
	},
}

func init() {
	navCmd.Flags().StringVar(&navRole, "role", string(dashboard.RoleCompetitor), "dashboard role")
	navCmd.Flags().StringVar(&navFormat, "format", "table", "output format (table, json)")
	rootCmd.AddCommand(navCmd)
}

func printNavigation(cmd *cobra.Command, items []dashboard.NavigationItem) error {
	out := cmd.OutOrStdout()
	switch navFormat {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(items)
	case "table":
		tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "LABEL\tPATH\tICON")
		for _, it := range items {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", it.Label, it.TargetPath, it.Icon)
		}
		return tw.Flush()
	default:
		return fmt.Errorf("unknown format %q", navFormat)
	}
}
