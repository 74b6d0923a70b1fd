package cmd

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"catalog-web/core/config"
	"catalog-web/core/logger"
	"catalog-web/core/upstream"
	"catalog-web/feature/catalog"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	keyStyle   = lipgloss.NewStyle().Width(16).Foreground(lipgloss.Color("8"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	failStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// itemCmd loads a single catalog item the same way the page route does
var itemCmd = &cobra.Command{
	Use:   "item [identifier]",
	Short: "Load a catalog item from the backend",
	Long:  `Fetches {UPSTREAM_BASE_URL}/catalog/{identifier} and prints the unwrapped record.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer logg.Sync()

		l := catalog.NewItemLoader[catalog.Item](cfg.Upstream.BaseURL, upstream.NewClient(cfg.Upstream), logg)

		logg.Debug("Loading catalog item", zap.String("identifier", args[0]))
		res, err := l.Load(cmd.Context(), catalog.RouteParams{catalog.ParamItem: args[0]})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if res.Failed() {
			fmt.Fprintln(out, renderFailure(args[0], res.Err))
			return res.Err
		}
		fmt.Fprintln(out, renderItem(args[0], res.Item))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(itemCmd)
}

// renderItem formats an item as a bordered key/value table, keys sorted.
func renderItem(id string, item catalog.Item) string {
	keys := make([]string, 0, len(item))
	for k := range item {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := []string{
		titleStyle.Render("Catalog Item " + id),
		keyStyle.Render("Status") + okStyle.Render("OK"),
	}
	for _, k := range keys {
		lines = append(lines, keyStyle.Render(k)+fmt.Sprint(item[k]))
	}
	return boxStyle.Render(strings.Join(lines, "\n"))
}

// renderFailure formats a non-success backend response.
func renderFailure(id string, e *catalog.UpstreamError) string {
	lines := []string{
		titleStyle.Render("Catalog Item " + id),
		keyStyle.Render("Status") + failStyle.Render(fmt.Sprintf("%d %s", e.Status, e.Kind)),
		keyStyle.Render("Error") + e.Message,
	}
	return boxStyle.Render(strings.Join(lines, "\n"))
}

// isUpstreamFailure reports whether err came from a non-success backend status.
func isUpstreamFailure(err error) bool {
	var upstreamErr *catalog.UpstreamError
	return errors.As(err, &upstreamErr)
}
