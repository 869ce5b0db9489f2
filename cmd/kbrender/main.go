// Command kbrender builds the keyboards of a layout file and prints their Bot
// API reply_markup JSON. With --watch it keeps running and prints the
// keyboards again every time the file changes and still builds.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"tgobjects/internal/layout"
	"tgobjects/pkg/logx"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	layoutPath string
	names      []string
	watch      bool
	indent     bool
	logLevel   string
}

func parseFlags(args []string) (options, error) {
	var opts options
	flagSet := pflag.NewFlagSet("kbrender", pflag.ContinueOnError)
	flagSet.StringVarP(&opts.layoutPath, "layout", "l", "./layout.yaml", "path to layout file (.json, .yaml or .yml)")
	flagSet.StringSliceVarP(&opts.names, "name", "n", nil, "keyboard to render (repeatable; default: all)")
	flagSet.BoolVarP(&opts.watch, "watch", "w", false, "re-render when the layout file changes")
	flagSet.BoolVar(&opts.indent, "indent", false, "indent JSON output")
	flagSet.StringVar(&opts.logLevel, "log-level", "", "log level (trace, debug, info, warn, error); overrides the layout file")
	flagSet.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage:\n  kbrender [flags]\n\nFlags:\n%s", flagSet.FlagUsages())
	}

	if err := flagSet.Parse(args); err != nil {
		return options{}, err
	}
	if rest := flagSet.Args(); len(rest) > 0 {
		return options{}, fmt.Errorf("unexpected argument: %s", rest[0])
	}
	return opts, nil
}

func run(args []string, stdout io.Writer) error {
	opts, err := parseFlags(args)
	if err == pflag.ErrHelp {
		return nil
	}
	if err != nil {
		return err
	}

	logSvc, log := logx.New(logConfig(nil, opts.logLevel))
	defer logSvc.Close()

	mgr := layout.NewManager(opts.layoutPath)
	mgr.SetLogger(log)
	l, err := mgr.Load()
	if err != nil {
		return fmt.Errorf("load %s: %w", opts.layoutPath, err)
	}
	logSvc.Apply(logConfig(l.Logging, opts.logLevel))
	log.Debug("layout loaded", logx.String("path", opts.layoutPath), logx.Strings("keyboards", l.Names()))

	if err := render(stdout, l, opts.names, opts.indent); err != nil {
		return err
	}
	if !opts.watch {
		return nil
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	updates := mgr.Subscribe(1)
	defer mgr.Unsubscribe(updates)

	done := make(chan error, 1)
	go func() { done <- mgr.Watch(ctx) }()
	log.Info("watching layout", logx.String("path", opts.layoutPath))

	for {
		select {
		case <-ctx.Done():
			return <-done
		case l := <-updates:
			logSvc.Apply(logConfig(l.Logging, opts.logLevel))
			if err := render(stdout, l, opts.names, opts.indent); err != nil {
				// keep watching: the next save may fix the name list
				log.Warn("render failed", logx.Err(err))
			}
		}
	}
}

// logConfig maps the layout's logging block to logx.Config; a non-empty
// level flag wins over the file.
func logConfig(c *layout.LoggingConfig, level string) logx.Config {
	cfg := logx.Config{Level: "info", Console: true}
	if c != nil {
		cfg.Level = c.Level
		cfg.Console = c.Console || !c.File.Enabled
		cfg.File = logx.FileConfig{Enabled: c.File.Enabled, Path: c.File.Path}
	}
	if level != "" {
		cfg.Level = level
	}
	return cfg
}

// render writes one keyboard's markup when a single name is given, otherwise
// an object of name -> markup.
func render(w io.Writer, l *layout.Layout, names []string, indent bool) error {
	if len(names) == 0 {
		names = l.Names()
	}

	var v any
	if len(names) == 1 {
		kb, err := l.Get(names[0])
		if err != nil {
			return err
		}
		v = kb
	} else {
		out := make(map[string]any, len(names))
		for _, name := range names {
			kb, err := l.Get(name)
			if err != nil {
				return err
			}
			out[name] = kb
		}
		v = out
	}

	enc := json.NewEncoder(w)
	if indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
