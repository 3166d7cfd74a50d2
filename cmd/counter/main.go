// Command counter counts the words, runes or lines in its input and prints
// the most common ones.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"go.lepak.sg/multiset/codec"
	"go.lepak.sg/multiset/counter"
	"go.lepak.sg/multiset/parallel"
	"go.lepak.sg/multiset/store"
)

type options struct {
	mode         string
	top          int
	least        bool
	reverseTies  bool
	format       string
	workers      int
	window       int
	orderedStore bool
	ignoreCase   bool
	verbose      bool
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "counter [flags] [file...]",
		Short: "Count words, runes or lines and print the most common",
		Example: "  counter -k 10 README.md\n" +
			"  cat *.txt | counter -m runes -i --least -k 5\n" +
			"  counter -f yaml -w 4 a.txt b.txt c.txt",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := NewLogger(cmd.ErrOrStderr())
			if opts.verbose {
				logger.SetLevel(logrus.DebugLevel)
			}
			return run(cmd.Context(), opts, args, cmd.InOrStdin(), cmd.OutOrStdout(), logger)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.mode, "mode", "m", "words", "what to count: words, runes or lines")
	flags.IntVarP(&opts.top, "top", "k", 0, "print only the k most common, 0 for all")
	flags.BoolVar(&opts.least, "least", false, "print the least common first")
	flags.BoolVarP(&opts.reverseTies, "reverse-ties", "r", false, "break ties in descending order")
	flags.StringVarP(&opts.format, "format", "f", "text", "output format: text, json or yaml; json and yaml print the selected elements sorted by element, not by rank")
	flags.IntVarP(&opts.workers, "workers", "w", 1, "files to count at the same time")
	flags.IntVar(&opts.window, "window", 0, "count only the last n tokens of each input, 0 for all")
	flags.BoolVar(&opts.orderedStore, "ordered-store", false, "keep elements in the order they were first seen")
	flags.BoolVarP(&opts.ignoreCase, "ignore-case", "i", false, "count upper and lower case together")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log debug messages")

	return cmd
}

func run(ctx context.Context, opts options, files []string, in io.Reader, out io.Writer, logger *logrus.Logger) error {
	if opts.top < 0 {
		return errors.Errorf("--top must not be negative, got %d", opts.top)
	}
	if opts.workers < 1 {
		return errors.Errorf("--workers must be at least 1, got %d", opts.workers)
	}
	if opts.window < 0 {
		return errors.Errorf("--window must not be negative, got %d", opts.window)
	}

	split, err := splitFor(opts.mode)
	if err != nil {
		return err
	}
	tk := tokenizer{
		split:      split,
		skipSpace:  opts.mode == "runes",
		ignoreCase: opts.ignoreCase,
		window:     opts.window,
	}

	fresh := counter.New[string, int]
	if opts.orderedStore {
		fresh = func() *counter.Counter[string, int] {
			return counter.NewWithStore[string, int](store.NewLinked[string, int](0))
		}
	}

	var c *counter.Counter[string, int]
	if len(files) == 0 {
		c = fresh()
		n, err := tk.count(in, c)
		if err != nil {
			return errors.WithMessage(err, "stdin")
		}
		logger.WithField("tokens", n).Debug("counted stdin")
	} else {
		c, err = parallel.Count(ctx, files, fresh, func(name string, c *counter.Counter[string, int]) error {
			n, err := tk.countFile(name, c)
			logger.WithFields(logrus.Fields{
				"file":   name,
				"tokens": n,
			}).Debug("counted file")
			return err
		}, opts.workers)
		if err != nil {
			return err
		}
	}

	logger.WithFields(logrus.Fields{
		"distinct": c.Len(),
		"total":    c.Total(),
	}).Info("done counting")

	return write(out, opts, rank(c, opts))
}

// rank picks the entries to print, in the order they are printed.
func rank(c *counter.Counter[string, int], opts options) []counter.Entry[string, int] {
	cmp := strings.Compare
	if opts.reverseTies {
		cmp = func(a, b string) int { return strings.Compare(b, a) }
	}

	k := opts.top
	if k == 0 {
		k = c.Len()
	}

	if opts.least {
		return c.KLeastCommonFunc(k, cmp)
	}
	return c.KMostCommonFunc(k, cmp)
}

func write(out io.Writer, opts options, entries []counter.Entry[string, int]) error {
	if opts.format == "text" {
		for _, e := range entries {
			if _, err := fmt.Fprintf(out, "%d\t%s\n", e.Count, e.Element); err != nil {
				return errors.WithStack(err)
			}
		}
		return nil
	}

	// encoded counters are objects, so the rank order is not kept
	cd, err := codec.ByName(opts.format)
	if err != nil {
		return err
	}

	ranked := counter.WithCapacity[string, int](len(entries))
	for _, e := range entries {
		ranked.Set(e.Element, e.Count)
	}

	data, err := codec.Encode(cd, ranked)
	if err != nil {
		return err
	}
	if len(data) > 0 && data[len(data)-1] != '\n' {
		data = append(data, '\n')
	}
	if _, err = out.Write(data); err != nil {
		return errors.WithStack(err)
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
