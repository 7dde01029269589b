// Package cmd implements the sortable command-line interface.
package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"sortable/internal/config"
	sortablelog "sortable/internal/log"
	"sortable/internal/table"

	"github.com/spf13/cobra"
)

// Version is set by main from the build-time version string.
var Version = "dev"

// globalOptions holds the persistent flags shared by every subcommand.
type globalOptions struct {
	configPath string
	verbose    bool
	quiet      bool
	logFile    string

	logOut io.WriteCloser
}

// Execute runs the root command.
func Execute(version string) {
	Version = version
	opts := &globalOptions{}
	if err := executeRoot(newRootCommand(opts), opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// executeRoot runs root and closes the log file whether or not the command
// succeeded.
func executeRoot(root *cobra.Command, opts *globalOptions) error {
	defer opts.closeLog()
	return root.Execute()
}

func newRootCmd() *cobra.Command {
	return newRootCommand(&globalOptions{})
}

func newRootCommand(opts *globalOptions) *cobra.Command {
	root := &cobra.Command{
		Use:   "sortable",
		Short: "Sort and search the tables of an HTML document",
		Long: `Sortable adds column sorting and free-text search to tables marked with
the "sortable" class. It can apply sorts and a search to a document and
write the result, or browse the tables of a page or SQLite database in
the terminal.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			loadDotEnv(".env")
			loadDotEnv(".env.local")
			return opts.setupLogging(cmd)
		},
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to config.toml (default ~/.config/sortable/config.toml)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")
	root.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress non-essential output")
	root.PersistentFlags().StringVar(&opts.logFile, "log-file", "", "append log output to this file")

	root.AddCommand(newEnhanceCmd(opts))
	root.AddCommand(newViewCmd(opts))
	root.AddCommand(newVersionCmd())
	return root
}

// setupLogging sends logs to --log-file when given. Otherwise the terminal
// viewer discards them and every other command writes them to stderr.
func (o *globalOptions) setupLogging(cmd *cobra.Command) error {
	var w io.Writer = cmd.ErrOrStderr()
	if o.logFile != "" {
		f, err := os.OpenFile(o.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		o.logOut = f
		w = f
	} else if cmd.Name() == "view" {
		w = io.Discard
	}
	sortablelog.Setup(w, o.verbose, o.quiet)
	return nil
}

func (o *globalOptions) closeLog() {
	if o.logOut != nil {
		o.logOut.Close()
		o.logOut = nil
	}
}

// settings loads the config file and the collator for its locale.
func (o *globalOptions) settings() (config.Config, *table.Collator, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return config.Config{}, nil, err
	}
	coll, err := table.CollatorFor(cfg.Locale)
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, coll, nil
}

func loadDotEnv(path string) {
	f, err := os.Open(path)
	if err != nil {
		return
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimPrefix(line, "export ")

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}

		value = strings.Trim(strings.TrimSpace(value), `"'`)
		if os.Getenv(key) == "" {
			_ = os.Setenv(key, value)
		}
	}
}
