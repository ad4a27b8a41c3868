// File: pkg/combine/execute.go
package combine

import (
	"fmt"
	"io"
	"time"

	"rtt/pkg/clipboard"
	"rtt/pkg/display"
	"rtt/pkg/output"

	"go.uber.org/zap"
)

// Environment carries the side-effect endpoints of a run.
type Environment struct {
	Out       io.Writer        // Document and confirmations
	Err       io.Writer        // Warnings
	Clipboard clipboard.Writer // Target of --copy
	Logger    *zap.Logger
}

// Execute runs one rtt invocation: scan, render, merge and deliver.
// It returns an error wrapping ErrNotDirectory or ErrNoMatches for the two
// fatal user conditions.
func Execute(args Arguments, env Environment) error {
	logger := env.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	startTime := time.Now()

	root, err := ResolveRoot(args.Path)
	if err != nil {
		return err
	}
	logger.Info("Starting combination process", zap.String("directory", root))

	opts, err := buildOptions(root, args, logger)
	if err != nil {
		return err
	}

	files, err := Scan(root, opts)
	if err != nil {
		return fmt.Errorf("failed to collect files: %w", err)
	}

	if args.TreeOnly {
		_, err := fmt.Fprintln(env.Out, RenderTree(root, files, opts))
		return err
	}

	if len(files) == 0 {
		return ErrNoMatches
	}

	document := BuildDocument(RenderTree(root, files, opts), Merge(root, files, logger))

	switch {
	case args.Output != "":
		if err := output.WriteFile(args.Output, []byte(document), logger); err != nil {
			return fmt.Errorf("failed to write %s: %w", args.Output, err)
		}
		display.New(env.Out).Success("written to %s (%d files)", args.Output, len(files))
	case args.Copy:
		if err := copyToClipboard(env.Clipboard, document); err != nil {
			logger.Debug("Clipboard write failed", zap.Error(err))
			display.New(env.Err).Warn("clipboard not available, printing to stdout")
			if _, err := fmt.Fprintln(env.Out, document); err != nil {
				return err
			}
		} else {
			display.New(env.Out).Success("copied to clipboard (%d files)", len(files))
		}
	default:
		if _, err := fmt.Fprintln(env.Out, document); err != nil {
			return err
		}
	}

	logger.Info("Combination process completed",
		zap.Int("totalFiles", len(files)),
		zap.Duration("elapsed", time.Since(startTime)))
	return nil
}

// buildOptions resolves the scan options for args, loading ignore patterns
// from the root.
func buildOptions(root string, args Arguments, logger *zap.Logger) (Options, error) {
	opts := Options{
		Extensions: NormalizeExtensions(args.Extensions),
		SkipDirs:   args.SkipDirs,
		Logger:     logger,
	}

	gi, err := LoadIgnoreFiles(root, args.IgnoreFile, args.Ignore, logger)
	if err != nil {
		return opts, fmt.Errorf("failed to load ignore patterns: %w", err)
	}
	if gi != nil {
		opts.Ignore = gi
	}
	return opts, nil
}

func copyToClipboard(w clipboard.Writer, text string) error {
	if w == nil {
		return clipboard.ErrUnavailable
	}
	return w.WriteAll(text)
}
