package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"sortable/internal/htmldoc"

	"github.com/spf13/cobra"
)

type enhanceOptions struct {
	sorts  []int
	search string
	tables []string
	output string
}

func newEnhanceCmd(global *globalOptions) *cobra.Command {
	opts := &enhanceOptions{}

	cmd := &cobra.Command{
		Use:   "enhance [file|-]",
		Short: "Apply sorts and a search to the sortable tables of a document",
		Long: `Enhance parses an HTML document, attaches a controller to every table
with the marker class and inserts the search box and entry count above
tables inside a container. Sorts are applied in the order given, so
"--sort 2 --sort 2" leaves column 2 descending. The result is written to
--output or stdout.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEnhance(cmd, global, opts, args)
		},
	}

	cmd.Flags().IntSliceVar(&opts.sorts, "sort", nil, "sort by 1-based column number (repeatable)")
	cmd.Flags().StringVar(&opts.search, "search", "", "filter rows of searchable tables")
	cmd.Flags().StringSliceVar(&opts.tables, "table", nil, "only act on tables with this name (repeatable)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the document to this file instead of stdout")
	return cmd
}

func runEnhance(cmd *cobra.Command, global *globalOptions, opts *enhanceOptions, args []string) error {
	cfg, coll, err := global.settings()
	if err != nil {
		return err
	}

	in, err := openInput(args, cmd.InOrStdin())
	if err != nil {
		return err
	}
	defer in.Close()

	doc, err := htmldoc.Parse(in, htmldoc.Options{
		MarkerClass:    cfg.MarkerClass,
		ContainerClass: cfg.ContainerClass,
		Placeholder:    cfg.Placeholder,
		Collator:       coll,
	})
	if err != nil {
		return err
	}

	selected := selectTables(doc.Tables(), opts.tables)
	if len(opts.tables) > 0 && len(selected) == 0 {
		return fmt.Errorf("no sortable table named %v", opts.tables)
	}
	if err := applyEnhancements(selected, opts.sorts, opts.search, cmd.Flags().Changed("search")); err != nil {
		return err
	}

	var out io.Writer = cmd.OutOrStdout()
	if opts.output != "" {
		f, err := os.Create(opts.output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}
	return doc.Render(out)
}

// openInput opens the named file, or stdin for "-" or no argument.
func openInput(args []string, stdin io.Reader) (io.ReadCloser, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(stdin), nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	return f, nil
}

func selectTables(tables []*htmldoc.Table, names []string) []*htmldoc.Table {
	if len(names) == 0 {
		return tables
	}
	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[n] = true
	}
	var out []*htmldoc.Table
	for _, t := range tables {
		if want[t.Name()] {
			out = append(out, t)
		}
	}
	return out
}

// applyEnhancements sorts each table by the 1-based columns in order, then
// runs the search on the tables that have a search box.
func applyEnhancements(tables []*htmldoc.Table, sorts []int, query string, searched bool) error {
	for _, t := range tables {
		for _, n := range sorts {
			if err := t.Controller().Sort(n - 1); err != nil {
				return fmt.Errorf("failed to sort %s by column %d: %w", t.Name(), n, err)
			}
			slog.Debug("sorted", "table", t.Name(), "column", n, "direction", t.Controller().State().Direction)
		}
		if !searched {
			continue
		}
		if !t.Searchable() {
			slog.Warn("table has no search box, search skipped", "table", t.Name())
			continue
		}
		t.Search(query)
		slog.Debug("searched", "table", t.Name(), "query", query, "status", t.Controller().Status())
	}
	return nil
}
