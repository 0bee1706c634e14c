// Command slotdemo connects a few targets to emitters and prints what each emission mode produces.
package main

import (
	"errors"
	"fmt"
	"github.com/saylorsolutions/slots/async"
	"github.com/saylorsolutions/slots/env"
	"github.com/saylorsolutions/slots/registry"
	"github.com/saylorsolutions/slots/signal"
	"github.com/saylorsolutions/slots/slogx"
	"github.com/saylorsolutions/slots/slot"
	"github.com/saylorsolutions/slots/syncx"
	flag "github.com/spf13/pflag"
	"golang.org/x/term"
	"io"
	"log/slog"
	"os"
	"time"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		_, _ = fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

type config struct {
	async   bool
	workers int
	value   int
	init    int
	level   slog.Level
	logFile string
	timeout time.Duration
}

func parseConfig(args []string, stderr io.Writer) (*config, error) {
	conf := new(config)
	var level string
	flags := flag.NewFlagSet("slotdemo", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.BoolVar(&conf.async, "async", false, "Also run the emissions on an asynchronous emitter")
	flags.IntVarP(&conf.workers, "workers", "w", env.Int("SLOTS_WORKERS", 0), "Size of the worker pool for async emission. 0 starts a goroutine per emission (env SLOTS_WORKERS)")
	flags.IntVarP(&conf.value, "value", "v", 5, "Value passed to every emission")
	flags.IntVar(&conf.init, "init", 3, "Initial value for folds")
	flags.StringVar(&level, "log-level", env.Level("SLOTS_LOG_LEVEL", slog.LevelInfo).String(), "Minimum log level (env SLOTS_LOG_LEVEL)")
	flags.StringVar(&conf.logFile, "log-file", "", "Also write JSON logs to this file")
	flags.DurationVar(&conf.timeout, "timeout", env.Duration("SLOTS_AWAIT_TIMEOUT", 5*time.Second), "How long to wait for an async emission (env SLOTS_AWAIT_TIMEOUT)")
	if err := flags.Parse(args); err != nil {
		return nil, err
	}
	if err := conf.level.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level '%s': %w", level, err)
	}
	if conf.workers < 0 {
		return nil, fmt.Errorf("workers must be >= 0, got %d", conf.workers)
	}
	return conf, nil
}

func newLogger(conf *config, stderr io.Writer) (*slog.Logger, func() error, error) {
	opts := &slog.HandlerOptions{Level: conf.level}
	var handler slog.Handler
	if f, ok := stderr.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		handler = slog.NewTextHandler(stderr, opts)
	} else {
		handler = slog.NewJSONHandler(stderr, opts)
	}
	if len(conf.logFile) == 0 {
		return slog.New(handler), func() error { return nil }, nil
	}
	f, err := os.Create(conf.logFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create log file: %w", err)
	}
	return slog.New(slogx.MergeHandlers(handler, slog.NewJSONHandler(f, opts))), f.Close, nil
}

func run(args []string, stdout, stderr io.Writer) (err error) {
	conf, err := parseConfig(args, stderr)
	if err != nil {
		return err
	}
	log, closeLog, err := newLogger(conf, stderr)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, closeLog())
	}()
	out := &printer{out: stdout}

	runFolds(out, log, conf)
	runCopy(out, log, conf)
	if conf.async {
		return runAsync(out, log, conf)
	}
	return nil
}

type printer struct {
	out io.Writer
}

func (p *printer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format, args...)
}

// counter is a tracked target, so closing it disconnects it everywhere.
type counter struct {
	registry.Tracker
	total int
}

func (c *counter) Add(n int) int {
	c.total += n
	return c.total
}

func identity(v int) int {
	return v
}

func twice(v int) int {
	return 2 * v
}

func subtract(total, n int) int {
	return total - n
}

func runFolds(out *printer, log *slog.Logger, conf *config) {
	e := signal.New[int, int](registry.WithLogger(log))
	defer e.Close()
	e.ConnectFunc(twice).ConnectFunc(identity)

	out.Printf("accumulate: %d\n", signal.Accumulate(e, conf.init, conf.value))
	out.Printf("accumulate_op: %d\n", signal.AccumulateOp(e, conf.init, subtract, conf.value))
	out.Printf("aggregate: %v\n", signal.AggregateSlice(e, conf.value))
	var collected int
	signal.Collect(e, func(n int) {
		collected++
	}, conf.value)
	out.Printf("collect: %d results\n", collected)
}

func runCopy(out *printer, log *slog.Logger, conf *config) {
	target := new(counter)
	e := signal.New[int, int](registry.WithLogger(log))
	defer e.Close()
	e.Connect(slot.Method(target, (*counter).Add))
	clone := e.Clone()
	defer clone.Close()

	e.Emit(conf.value)
	out.Printf("copy: after original %d\n", target.total)
	clone.Emit(conf.value)
	out.Printf("copy: after clone %d\n", target.total)
	if err := registry.Verify(e.Registry(), clone.Registry(), target.Registry()); err != nil {
		log.Error("Connections are inconsistent", "error", err)
	}

	target.Close()
	e.Emit(conf.value)
	clone.Emit(conf.value)
	out.Printf("teardown: total %d, connected %t\n", target.total, !e.Empty() || !clone.Empty())
}

func runAsync(out *printer, log *slog.Logger, conf *config) error {
	dispatch := syncx.GoDispatcher()
	if conf.workers > 0 {
		pool := syncx.NewPoolDispatcher(conf.workers, conf.workers)
		defer pool.StopAndWait()
		dispatch = pool
	}
	e := async.NewWithDispatcher[int, int](dispatch, registry.WithLogger(log))
	defer e.Close()
	e.ConnectFunc(twice).ConnectFunc(identity)

	sum, err := async.Accumulate(e, conf.init, conf.value).AwaitErr(conf.timeout)
	if err != nil {
		return fmt.Errorf("async accumulate: %w", err)
	}
	out.Printf("async accumulate: %d\n", sum)
	results, err := async.AggregateSlice(e, conf.value).AwaitErr(conf.timeout)
	if err != nil {
		return fmt.Errorf("async aggregate: %w", err)
	}
	out.Printf("async aggregate: %v\n", results)
	return nil
}
