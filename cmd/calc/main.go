package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/private-landing/calc/internal/config"
	"github.com/private-landing/calc/internal/session"
	"github.com/private-landing/calc/internal/ui"
	"github.com/private-landing/calc/internal/web"
)

func printUsage(w io.Writer) {
	heading := ui.TitleStyle.Render
	label := ui.PromptStyle.Render
	dim := ui.DimStyle.Render

	fmt.Fprintln(w, heading("calc")+dim(" - keypad calculator"))
	fmt.Fprintln(w)
	fmt.Fprintln(w, heading("Usage:"))
	fmt.Fprintln(w, "  calc                     "+dim("Interactive terminal calculator"))
	fmt.Fprintln(w, "  calc serve               "+dim("Serve the calculator to a browser"))
	fmt.Fprintln(w, "  calc eval [flags] KEYS   "+dim("Type KEYS and print the display"))
	fmt.Fprintln(w)
	fmt.Fprintln(w, heading("Eval flags:"))
	fmt.Fprintln(w, "  "+label("-remote")+"    Evaluate on the server at CALC_API_URL")
	fmt.Fprintln(w, "  "+label("-v")+"         Also print the pending value and operator")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  KEYS are key names separated by spaces: digits, . , + - * / = Enter")
	fmt.Fprintln(w, "  Escape Backspace. Prefix a button value with @ to click it: @sign @clear.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, heading("Environment:"))
	fmt.Fprintln(w, "  "+label("CALC_ADDR")+"        Listen address for serve (default "+config.DefaultAddr+")")
	fmt.Fprintln(w, "  "+label("CALC_API_URL")+"     Server base URL for eval -remote")
	fmt.Fprintln(w, "  "+label("CALC_API_KEY")+"     Bearer key required by /api/apply (optional)")
	fmt.Fprintln(w, "  "+label("CALC_MOUSE")+"       on or off (default on)")
	fmt.Fprintln(w, "  "+label("CALC_LOG_FILE")+"    Write logs to this file")
	fmt.Fprintln(w, "  "+label("CALC_LOG_LEVEL")+"   debug, info, warn or error (default info)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, heading("Keys (interactive):"))
	fmt.Fprintln(w, "  0-9 . ,          "+dim("Enter a number"))
	fmt.Fprintln(w, "  + - * /          "+dim("Choose the operation"))
	fmt.Fprintln(w, "  = Enter          "+dim("Evaluate"))
	fmt.Fprintln(w, "  Backspace        "+dim("Delete the last character"))
	fmt.Fprintln(w, "  Esc              "+dim("Clear the entry"))
	fmt.Fprintln(w, "  q, ctrl+c        "+dim("Quit"))
}

// newLogger writes to cfg.LogFile when set. Otherwise it writes to fallback,
// or discards when fallback is nil.
func newLogger(cfg config.Config, fallback io.Writer) (*slog.Logger, func(), error) {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		return slog.New(slog.NewTextHandler(f, opts)), func() { f.Close() }, nil
	}
	if fallback == nil {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	return slog.New(slog.NewTextHandler(fallback, opts)), func() {}, nil
}

func runTUI(cfg config.Config) error {
	// The terminal belongs to bubbletea, so logs only go to a file.
	log, closeLog, err := newLogger(cfg, nil)
	if err != nil {
		return err
	}
	defer closeLog()

	opts := []tea.ProgramOption{}
	if cfg.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	p := tea.NewProgram(initialModel(session.New(log)), opts...)
	_, err = p.Run()
	return err
}

func runServe(ctx context.Context, cfg config.Config) error {
	log, closeLog, err := newLogger(cfg, os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return web.NewServer(cfg.APIKey, log).ListenAndServe(ctx, cfg.Addr)
}

func run(args []string) error {
	for _, arg := range args {
		if arg == "-h" || arg == "--help" {
			printUsage(os.Stdout)
			return nil
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		return runTUI(cfg)
	}

	ctx := context.Background()
	switch args[0] {
	case "serve":
		return runServe(ctx, cfg)
	case "eval":
		err := runEval(ctx, cfg, args[1:], os.Stdout)
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	return fmt.Errorf("unknown command %q, run 'calc --help' for usage", args[0])
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
