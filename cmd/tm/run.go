package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/ezrec/tm/computation"
	"github.com/ezrec/tm/internal/logging"
	"github.com/ezrec/tm/metrics"
)

type runOptions struct {
	limits      computation.Limits
	step        bool
	logLevel    string
	traceFile   string
	metricsFile string
}

func newRunCmd() *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "run MACHINE [WORD...]",
		Short: "Run a built-in machine on input words",
		Long: `Run a built-in machine on each word and print its outcome.

Words are taken from the arguments, or one per line from stdin when none
are given.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWords(cmd, opts, args[0], args[1:])
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&opts.limits.MaxTime, "max-time", 1000000, "Maximum steps per word, 0 for unbounded")
	flags.IntVar(&opts.limits.MaxSpace, "max-space", 0, "Maximum tape cells per word, 0 for unbounded")
	flags.BoolVarP(&opts.step, "step", "s", false, "Print the configuration after every step")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	flags.StringVar(&opts.traceFile, "trace-file", "", "Write a JSON step trace to this file")
	flags.StringVar(&opts.metricsFile, "metrics-file", "", "Write Prometheus metrics to this file")

	return cmd
}

func runWords(cmd *cobra.Command, opts *runOptions, name string, words []string) (err error) {
	m, err := lookup(name)
	if err != nil {
		return
	}

	level, err := logging.ParseLevel(opts.logLevel)
	if err != nil {
		return
	}

	var trace io.Writer
	if len(opts.traceFile) != 0 {
		var ouf *os.File
		ouf, err = os.Create(opts.traceFile)
		if err != nil {
			return
		}
		defer ouf.Close()
		trace = ouf
	}

	logger := logging.New(level, cmd.ErrOrStderr(), trace)

	reg := prometheus.NewRegistry()
	rec, err := metrics.NewRecorder(reg)
	if err != nil {
		return
	}

	out := cmd.OutOrStdout()
	failed := 0

	runOne := func(word string) {
		c, err := computation.BoundedStart(m, word, opts.limits)
		if err != nil {
			logger.Error("start", "machine", name, "word", word, "error", err)
			failed++
			return
		}

		hooks := rec.Hooks()
		if opts.step {
			onStep := hooks.OnStep
			hooks.OnStep = func(c *computation.Computation) {
				onStep(c)
				fmt.Fprintln(out, c.String())
			}
		}
		c.Hooks = hooks
		if trace != nil {
			c.Logger = logger.With("machine", name, "word", word)
		}

		c.Run()

		clock := c.Clock()
		logger.Info("halt", "machine", name, "word", word, "status", c.Status(), "steps", clock.Time, "space", clock.Space)
		fmt.Fprintf(out, "%q\t%v\ttime=%d\tspace=%d\n", word, c.Status(), clock.Time, clock.Space)
	}

	if len(words) != 0 {
		for _, word := range words {
			runOne(word)
		}
	} else {
		scanner := bufio.NewScanner(cmd.InOrStdin())
		for scanner.Scan() {
			runOne(strings.TrimRight(scanner.Text(), "\r"))
		}
		err = scanner.Err()
		if err != nil {
			return
		}
	}

	if len(opts.metricsFile) != 0 {
		err = prometheus.WriteToTextfile(opts.metricsFile, reg)
		if err != nil {
			return
		}
		logger.Debug("metrics written", "file", opts.metricsFile)
	}

	if failed != 0 {
		err = ErrWords(failed)
	}

	return
}
