package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/hammamikhairi/recipebrowser/internal/command"
	"github.com/hammamikhairi/recipebrowser/internal/display"
	"github.com/hammamikhairi/recipebrowser/internal/domain"
	"github.com/hammamikhairi/recipebrowser/internal/filter"
	"github.com/hammamikhairi/recipebrowser/internal/instructions"
	"github.com/hammamikhairi/recipebrowser/internal/tagmeta"
)

func browseCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Open the interactive browser (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(cmd, opts)
		},
	}
}

func runBrowse(cmd *cobra.Command, opts *options) error {
	a, err := setup(cmd, opts)
	if err != nil {
		return err
	}
	defer a.Close()

	text, err := instructions.NewTerminalRenderer(a.cfg.Display.Style, a.cfg.Display.Wrap)
	if err != nil {
		return err
	}

	ui := display.NewUI(command.NewParser(a.log), text, a.log)
	eng := filter.New(a.index, a.log, filter.WithRenderer(ui))
	a.log.Info("browsing %d recipes (session %s)", a.index.Len(), eng.ID())

	return ui.Run(eng)
}

func listCmd(opts *options) *cobra.Command {
	var (
		search string
		tags   []string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the recipes passing the search and tag filters",
		Example: `  recipebrowser list --tag taste=甜食
  recipebrowser list --search 雞 --tag time='<30m' --tag time=30m-1h`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd, opts)
			if err != nil {
				return err
			}
			defer a.Close()

			eng := filter.New(a.index, a.log)
			for _, t := range tags {
				c, v, err := parseTagFlag(t)
				if err != nil {
					return err
				}
				// Repeating a flag must not toggle the value back off.
				if !eng.State().Has(c, v) {
					eng.ToggleFilter(c, v)
				}
			}
			eng.SetSearchQuery(search)

			return printList(cmd.OutOrStdout(), eng.VisibleRecipes())
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "text to match against names and tag values")
	cmd.Flags().StringArrayVarP(&tags, "tag", "t", nil, "tag filter as category=value, repeatable")
	return cmd
}

// parseTagFlag splits "category=value".
func parseTagFlag(s string) (domain.Category, domain.TagValue, error) {
	key, value, ok := strings.Cut(s, "=")
	if !ok || value == "" {
		return 0, "", fmt.Errorf("tag %q: want category=value", s)
	}
	c, ok := domain.CategoryFromString(strings.ToLower(strings.TrimSpace(key)))
	if !ok {
		return 0, "", fmt.Errorf("tag %q: %w", s, domain.ErrUnknownCategory)
	}
	return c, domain.TagValue(value), nil
}

func printList(out io.Writer, records []domain.RecipeRecord) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(out, display.EmptyListText)
		return err
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, r := range records {
		labels := make([]string, 0, domain.CategoryCount)
		for _, b := range tagmeta.Resolve(r.Tags) {
			labels = append(labels, b.Label())
		}
		fmt.Fprintf(w, "%d\t%s %s\t%s\n", r.ID, r.Icon, r.Name, strings.Join(labels, "  "))
	}
	return w.Flush()
}

func showCmd(opts *options) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Print one recipe with its tags and instructions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid recipe id %q", args[0])
			}

			a, err := setup(cmd, opts)
			if err != nil {
				return err
			}
			defer a.Close()

			eng := filter.New(a.index, a.log)
			if !eng.SelectRecipe(id) {
				return fmt.Errorf("recipe %d: %w", id, domain.ErrNotFound)
			}
			d, _ := eng.Detail()

			var text display.InstructionRenderer = instructions.Plain{}
			if !plain {
				tr, err := instructions.NewTerminalRenderer(a.cfg.Display.Style, a.cfg.Display.Wrap)
				if err != nil {
					return err
				}
				text = tr
			}

			body, err := display.DetailText(d, text)
			if err != nil {
				a.log.Warn("rendering recipe %d: %v", id, err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), body)
			return err
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "print instructions as plain text")
	return cmd
}

func tagsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "Print the tag vocabulary with its glyphs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, c := range domain.Categories() {
				labels := make([]string, 0)
				for _, v := range tagmeta.Values(c) {
					meta, _ := tagmeta.Lookup(c, v)
					labels = append(labels, meta.Glyph+" "+string(v))
				}
				fmt.Fprintf(w, "%s\t%s\n", c, strings.Join(labels, "  "))
			}
			return w.Flush()
		},
	}
}
