package cmd

import (
	"errors"
	"fmt"
	"os"

	"sortable/internal/config"
	"sortable/internal/db"
	"sortable/internal/htmldoc"
	"sortable/internal/model"
	"sortable/internal/table"
	"sortable/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

type viewOptions struct {
	dbPath string
	table  string
	query  string
}

func newViewCmd(global *globalOptions) *cobra.Command {
	opts := &viewOptions{}

	cmd := &cobra.Command{
		Use:   "view [file.html]",
		Short: "Browse tables in the terminal",
		Long: `View shows the sortable tables of an HTML document, or the tables of a
SQLite database, in an interactive terminal table. Press ? for keys.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, coll, err := global.settings()
			if err != nil {
				return err
			}
			loader, title, err := newLoader(args, opts, cfg, coll)
			if err != nil {
				return err
			}

			p := tea.NewProgram(
				ui.New(title, loader, cfg.Placeholder),
				tea.WithAltScreen(),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("failed to run viewer: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.dbPath, "db", "", "read tables from this SQLite database")
	cmd.Flags().StringVar(&opts.table, "table", "", "only show this database table")
	cmd.Flags().StringVar(&opts.query, "query", "", "show the result of this SELECT instead of whole tables")
	return cmd
}

// newLoader checks the source arguments and returns a loader for them.
func newLoader(args []string, opts *viewOptions, cfg config.Config, coll *table.Collator) (ui.Loader, string, error) {
	switch {
	case len(args) == 1 && opts.dbPath != "":
		return nil, "", errors.New("give either an HTML file or --db, not both")
	case len(args) == 1:
		if opts.table != "" || opts.query != "" {
			return nil, "", errors.New("--table and --query need --db")
		}
		path := args[0]
		return func() ([]model.Binding, error) { return loadHTML(path, cfg, coll) }, path, nil
	case opts.dbPath != "":
		o := *opts
		return func() ([]model.Binding, error) { return loadDB(o, coll) }, opts.dbPath, nil
	default:
		return nil, "", errors.New("give an HTML file or --db")
	}
}

func loadHTML(path string, cfg config.Config, coll *table.Collator) ([]model.Binding, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	doc, err := htmldoc.Parse(f, htmldoc.Options{
		MarkerClass:    cfg.MarkerClass,
		ContainerClass: cfg.ContainerClass,
		Placeholder:    cfg.Placeholder,
		Collator:       coll,
	})
	if err != nil {
		return nil, err
	}

	bindings := make([]model.Binding, 0, len(doc.Tables()))
	for _, t := range doc.Tables() {
		bindings = append(bindings, model.Binding{
			Name:       t.Name(),
			Controller: t.Controller(),
			Searchable: t.Searchable(),
		})
	}
	return bindings, nil
}

func loadDB(opts viewOptions, coll *table.Collator) ([]model.Binding, error) {
	database, err := db.Open(opts.dbPath)
	if err != nil {
		return nil, err
	}
	defer database.Close()

	var tables []model.Table
	switch {
	case opts.query != "":
		name := opts.table
		if name == "" {
			name = "query"
		}
		t, err := db.LoadQuery(database, name, opts.query)
		if err != nil {
			return nil, err
		}
		tables = append(tables, t)
	case opts.table != "":
		t, err := db.LoadTable(database, opts.table)
		if err != nil {
			return nil, err
		}
		tables = append(tables, t)
	default:
		tables, err = db.LoadAll(database)
		if err != nil {
			return nil, err
		}
	}

	bindings := make([]model.Binding, 0, len(tables))
	for _, t := range tables {
		bindings = append(bindings, model.Bind(t, coll))
	}
	return bindings, nil
}
