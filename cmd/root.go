package cmd

import (
	"errors"
	"fmt"
	"io"

	"rtt/pkg/clipboard"
	"rtt/pkg/combine"
	"rtt/pkg/config"
	"rtt/pkg/display"
	"rtt/pkg/logging"
	"rtt/pkg/version"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// newClipboard returns the clipboard used by --copy.
var newClipboard = func() clipboard.Writer { return clipboard.System{} }

type rootOptions struct {
	output     string
	tree       bool
	copy       bool
	ignore     []string
	configPath string
	debug      bool

	cfg *config.Config
}

// NewRootCommand creates the rtt command with its subcommands.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   version.Name + " <path> [ext ...]",
		Short: "Repo to Text: convert repository code to AI-friendly text",
		Long: `rtt concatenates the source files of a directory tree into one text
document. Each file is preceded by a "// <relative path>" header and the
document starts with an ASCII tree of the files it contains.

Extensions are case-insensitive and the leading dot is optional. Without
extensions every non-hidden file is included. Version-control, dependency
and build directories are always skipped.`,
		Example: `  rtt .                         # all files
  rtt ./src .py .swift          # only Python and Swift
  rtt ./src py -o context.txt   # write to a file
  rtt . --tree                  # tree only
  rtt . go -c                   # copy to the clipboard`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.output, "output", "o", "", "write output to `FILE` instead of stdout")
	flags.BoolVar(&opts.tree, "tree", false, "print the file tree only, without content")
	flags.BoolVarP(&opts.copy, "copy", "c", false, "copy output to the clipboard")
	flags.StringArrayVar(&opts.ignore, "ignore", nil, "gitignore-style `PATTERN` to exclude (repeatable)")

	persistent := cmd.PersistentFlags()
	persistent.StringVar(&opts.configPath, "config", "", "config `FILE` (default $RTT_CONFIG or ~/.config/rtt/config.yaml)")
	persistent.BoolVar(&opts.debug, "debug", false, "enable debug logging on stderr")

	cmd.AddCommand(newVersionCommand())
	return cmd
}

// setup loads the configuration and initializes logging.
func (o *rootOptions) setup() error {
	path, required := config.Resolve(o.configPath)
	cfg, err := config.LoadConfig(path, required)
	if err != nil {
		return err
	}
	o.cfg = cfg

	if err := logging.Setup(o.debug, cfg.LogLevel, version.Name, version.Version); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logging.Logger.Debug("Loaded configuration",
		zap.String("path", path),
		zap.Strings("extensions", cfg.Extensions),
		zap.Strings("skipDirs", cfg.SkipDirs))
	return nil
}

func (o *rootOptions) run(cmd *cobra.Command, args []string) error {
	extensions := args[1:]
	if len(extensions) == 0 {
		extensions = o.cfg.Extensions
	}

	return combine.Execute(combine.Arguments{
		Path:       args[0],
		Extensions: extensions,
		Output:     o.output,
		TreeOnly:   o.tree,
		Copy:       o.copy,
		SkipDirs:   o.cfg.SkipDirs,
		Ignore:     append(append([]string{}, o.cfg.Ignore...), o.ignore...),
		IgnoreFile: o.cfg.IgnoreFile,
	}, combine.Environment{
		Out:       cmd.OutOrStdout(),
		Err:       cmd.ErrOrStderr(),
		Clipboard: newClipboard(),
		Logger:    logging.Logger,
	})
}

// Execute runs the root command and reports a failure on stderr.
// It returns the process exit code.
func Execute(args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		Report(stderr, err)
		return 1
	}
	return 0
}

// Report prints err as an rtt status line.
func Report(w io.Writer, err error) {
	p := display.New(w)
	if errors.Is(err, combine.ErrNoMatches) {
		p.Error("no files found matching criteria.")
		return
	}
	p.Error("error: %v", err)
}
