// Command jast parses token files produced by an external tokenizer and
// prints the resulting tree, indented by default.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/KimNorgaard/go-jast"
	"github.com/KimNorgaard/go-jast/ast"
	"github.com/KimNorgaard/go-jast/token"
	"github.com/KimNorgaard/go-jast/tokenfile"
)

const version = "0.1.0"

type config struct {
	compact       bool
	indent        int
	preserveOrder bool
	maxDepth      int
	jobs          int
	logLevel      string
	noColor       bool
}

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	cfg := &config{}
	cmd := &cobra.Command{
		Use:     "jast [FILE]...",
		Version: version,
		Short:   "Parse token files and print the syntax tree",
		Long: `jast reads YAML token files (use - for standard input), parses each into
a syntax tree and prints it. Files are parsed concurrently; output keeps
argument order.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cfg, args, stdin, stdout, stderr)
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	cmd.Flags().BoolVarP(&cfg.compact, "compact", "c", false, "Print the compact form instead of the indented one")
	cmd.Flags().IntVarP(&cfg.indent, "indent", "i", 4, "Spaces per nesting level; 0 prints one line")
	cmd.Flags().BoolVarP(&cfg.preserveOrder, "preserve-order", "p", false, "Keep object properties in source order instead of sorting by key")
	cmd.Flags().IntVar(&cfg.maxDepth, "max-depth", 1000, "Maximum nesting depth")
	cmd.Flags().IntVarP(&cfg.jobs, "jobs", "j", 4, "Number of files parsed at once")
	cmd.Flags().StringVar(&cfg.logLevel, "log-level", "warn", "Log level: debug, info, warn or error")
	cmd.Flags().BoolVar(&cfg.noColor, "no-color", false, "Disable colored error output")
	return cmd
}

func run(ctx context.Context, cfg *config, files []string, stdin io.Reader, stdout, stderr io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if cfg.noColor {
		color.NoColor = true
	}
	log, err := newLogger(cfg.logLevel, stderr)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	opts := []jast.Option{
		jast.MaxDepth(cfg.maxDepth),
		jast.Indent(cfg.indent),
		jast.Concurrency(cfg.jobs),
	}
	if cfg.preserveOrder {
		opts = append(opts, jast.KeepSourceOrder())
	}

	failed := make([]error, len(files))
	buffers := make([][]token.Token, len(files))
	for i, file := range files {
		toks, err := readTokens(file, stdin)
		if err != nil {
			failed[i] = err
			// The placeholder fails to parse; the read error is reported instead.
			buffers[i] = []token.Token{token.EOFTok()}
			continue
		}
		log.Debugw("read tokens", "file", file, "count", len(toks))
		buffers[i] = toks
	}

	nodes, parseErr := jast.ParseAll(ctx, buffers, opts...)
	if nodes == nil && parseErr != nil {
		return parseErr
	}

	errColor := color.New(color.FgRed, color.Bold)
	var numFailed int
	for i, file := range files {
		if failed[i] == nil && nodes[i] == nil {
			failed[i] = bufferErr(parseErr, i)
		}
		if failed[i] != nil {
			numFailed++
			log.Errorw("parse failed", "file", file, "error", failed[i])
			_, _ = errColor.Fprintf(stderr, "%s: %v\n", file, failed[i])
			continue
		}

		out, err := render(nodes[i], cfg, opts)
		if err != nil {
			return errors.Wrapf(err, "failed to print %s", file)
		}
		if len(files) > 1 {
			fmt.Fprintf(stdout, "==> %s <==\n", file)
		}
		fmt.Fprintln(stdout, out)
		log.Infow("printed", "file", file)
	}

	if numFailed > 0 {
		return errors.Errorf("%d of %d files failed", numFailed, len(files))
	}
	return nil
}

func readTokens(file string, stdin io.Reader) ([]token.Token, error) {
	if file == "-" {
		toks, err := tokenfile.Decode(stdin)
		return toks, errors.WithMessage(err, "stdin")
	}
	return tokenfile.ReadFile(file)
}

func render(node ast.Node, cfg *config, opts []jast.Option) (string, error) {
	if cfg.compact {
		return jast.Print(node), nil
	}
	return jast.Format(node, opts...)
}

// bufferErr extracts the parse error of buffer i from the aggregate
// returned by ParseAll.
func bufferErr(err error, i int) error {
	var merr *multierror.Error
	if errors.As(err, &merr) {
		for _, e := range merr.Errors {
			var be *jast.BufferError
			if errors.As(e, &be) && be.Index == i {
				return be.Err
			}
		}
	}
	return errors.Errorf("no result for buffer %d", i)
}
