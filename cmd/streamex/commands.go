package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirkon/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rlittletht/streamex"
)

type windowFlags struct {
	start   int64
	limit   int64
	bufsize int
	verbose bool
}

func newRootCommand() *cobra.Command {
	var flags windowFlags

	root := &cobra.Command{
		Use:           "streamex",
		Short:         "Dump lines or numeric character references from a byte window of a file",
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.Int64Var(&flags.start, "start", 0, "window start offset")
	pf.Int64Var(&flags.limit, "limit", -1, "window limit offset, file size when negative")
	pf.IntVar(&flags.bufsize, "buffer", streamex.DefaultBufferSize, "size of each of the two buffers")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "log to stderr")

	root.AddCommand(
		&cobra.Command{
			Use:   "lines FILE",
			Short: "Print lines of the window, one per output line",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withReader(args[0], flags, func(r *streamex.Reader, log *zap.Logger) error {
					return dumpLines(cmd.OutOrStdout(), r, log)
				})
			},
		},
		&cobra.Command{
			Use:   "ncr FILE",
			Short: "Print numeric character references found in the window",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withReader(args[0], flags, func(r *streamex.Reader, log *zap.Logger) error {
					return dumpNCRs(cmd.OutOrStdout(), r, log)
				})
			},
		},
	)

	return root
}

func withReader(name string, flags windowFlags, f func(r *streamex.Reader, log *zap.Logger) error) (err error) {
	log, err := newLogger(flags.verbose)
	if err != nil {
		return errors.Wrap(err, "set up logger")
	}
	defer func() {
		_ = log.Sync()
	}()

	limit := flags.limit
	if limit < 0 {
		stat, err := os.Stat(name)
		if err != nil {
			return errors.Wrap(err, "get file size")
		}
		limit = stat.Size()
	}

	r, err := streamex.Open(
		name,
		flags.start,
		limit,
		streamex.WithBufferSize(flags.bufsize),
		streamex.WithLogger(zapLogger{log: log}),
	)
	if err != nil {
		return errors.Wrap(err, "open reader")
	}
	defer func() {
		if cErr := r.Close(); cErr != nil && err == nil {
			err = errors.Wrap(cErr, "close reader")
		}
	}()

	// Ошибки потока читалка отдаёт паникой.
	defer func() {
		p := recover()
		if p == nil {
			return
		}

		pErr, ok := p.(error)
		if !ok {
			panic(p)
		}
		err = errors.Wrap(pErr, "read window")
	}()

	log.Debug(
		"reading window",
		zap.String("file-name", name),
		zap.Int64("start", flags.start),
		zap.Int64("limit", limit),
		zap.Int("buffer-size", flags.bufsize),
	)
	return f(r, log)
}

func dumpLines(w io.Writer, r *streamex.Reader, log *zap.Logger) error {
	var count int
	for {
		line, ok := r.ReadLine()
		if !ok {
			break
		}

		if _, err := fmt.Fprintln(w, line); err != nil {
			return errors.Wrap(err, "print line")
		}
		count++
	}

	log.Debug("lines done", zap.Int("lines", count), zap.Int64("position", r.Position()))
	return nil
}

func dumpNCRs(w io.Writer, r *streamex.Reader, log *zap.Logger) error {
	var count int
	var literal bool
	for {
		c, status := r.ReadByte()
		if status != streamex.StatusSucceeded {
			break
		}

		if literal || c != '&' {
			literal = false
			continue
		}

		ncr, ok := r.ReadNCR()
		if !ok {
			literal = true
			continue
		}

		if _, err := fmt.Fprintln(w, ncr); err != nil {
			return errors.Wrap(err, "print reference")
		}
		count++
	}

	log.Debug("references done", zap.Int("references", count), zap.Int64("position", r.Position()))
	return nil
}
