package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/Protocol-Lattice/gqlp/internal/config"
	"github.com/Protocol-Lattice/gqlp/internal/logging"
	"github.com/Protocol-Lattice/gqlp/token"
)

// app is the state shared by all subcommands, filled in before any of them runs.
type app struct {
	cfgFile string
	verbose bool
	cfg     *config.Config
	level   *slog.LevelVar
	log     *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{level: new(slog.LevelVar)}
	root := &cobra.Command{
		Use:   "gqlp",
		Short: "GraphQL schema definition parser",
		Long: `gqlp reads GraphQL schema definition documents and prints their
declarations: object types, input types, enums and queries.

Commands:
  parse   - print the declarations of a document
  tokens  - dump the token stream of a document
  serve   - run the parser as an HTTP/WebSocket service`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd.ErrOrStderr())
		},
	}
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: $GQLP_CONFIG or ./gqlp.toml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")

	root.AddCommand(
		newParseCmd(a),
		newTokensCmd(a),
		newServeCmd(a),
		newVersionCmd(),
	)
	return root
}

// init loads the configuration and builds the logger.
func (a *app) init(logOut io.Writer) error {
	cfg, err := config.Resolve(a.cfgFile)
	if err != nil {
		return err
	}
	log, err := logging.New(cfg.Log, logOut, a.level)
	if err != nil {
		return err
	}
	if a.verbose {
		a.level.Set(slog.LevelDebug)
	}
	a.cfg, a.log = cfg, log
	return nil
}

// Execute runs the command line and reports a failure on stderr.
func Execute() error {
	root := newRootCmd()
	if err := root.ExecuteContext(context.Background()); err != nil {
		printError(root.ErrOrStderr(), err)
		return err
	}
	return nil
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "gqlp: %v\n", err)
}

// readSource returns the content of path, or of stdin for "-".
func readSource(cmd *cobra.Command, path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		return string(data), errors.Wrap(err, "read stdin")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "read %s", path)
	}
	return string(data), nil
}

// diagnose prefixes a syntax error with the file position it points at.
func diagnose(name string, err error) error {
	var p token.Positioned
	if errors.As(err, &p) {
		pos := p.Position()
		return errors.Wrapf(err, "%s:%d:%d", name, pos.Line, pos.Column)
	}
	return errors.Wrap(err, name)
}
