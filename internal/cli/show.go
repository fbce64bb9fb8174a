package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/idilsaglam/lists/internal/store"
	"github.com/idilsaglam/lists/internal/ui"
)

func (o *options) newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the lists and exit",
		Example: `  lists show
  lists show --from-file lists.json --theme mono`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st := store.New()
			if err := st.Initialize(cmd.Context(), o.source()); err != nil {
				o.logger.Error("loading lists failed", zap.Error(err))
				return fmt.Errorf("load lists: %w", err)
			}
			printLists(cmd.OutOrStdout(), st)
			ui.OK(cmd.OutOrStdout(), fmt.Sprintf("loaded %d lists from %s", st.Len(), o.sourceName()))
			o.logger.Info("lists printed", zap.Int("lists", st.Len()), zap.Int("dropped", st.Dropped()))
			return nil
		},
	}
}

func printLists(w io.Writer, st *store.Store) {
	t := ui.Current()
	lists := st.Lists()
	total := 0
	for _, l := range lists {
		total += len(l.Items)
	}

	var lines []string
	lines = append(lines, fmt.Sprintf("%s  %s %d",
		t.Title.Render("Lists"), t.Accent.Render("Items"), total))
	lines = append(lines, "")
	for i, l := range lists {
		lines = append(lines, t.Accent.Render(fmt.Sprintf("List %d", i+1))+t.Muted.Render(fmt.Sprintf(" (%d)", len(l.Items))))
		lines = append(lines, itemLines(l)...)
		lines = append(lines, "")
	}
	if d := st.Dropped(); d > 0 {
		lines = append(lines, t.Pending.Render(fmt.Sprintf("%d item(s) outside lists 1 and 2 skipped", d)))
	}
	lines = append(lines, t.Muted.Render("Tip: run `lists` to build a new list"))
	ui.Panel(w, lines)
}

func itemLines(l store.List) []string {
	t := ui.Current()
	if len(l.Items) == 0 {
		return []string{t.Muted.Render("(empty)")}
	}
	out := make([]string, 0, len(l.Items))
	for i, it := range l.Items {
		idx := fmt.Sprintf("%2d.", i+1)
		out = append(out, fmt.Sprintf("%s %s", t.Muted.Render(idx), ui.Truncate(it.Label(), 80)))
	}
	return out
}
