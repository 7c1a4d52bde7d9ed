package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/google/shlex"

	"github.com/private-landing/calc/internal/api"
	"github.com/private-landing/calc/internal/config"
	"github.com/private-landing/calc/internal/keypad"
	"github.com/private-landing/calc/internal/session"
)

// parseEvents splits a key sequence with shell quoting rules. A token
// starting with @ names a button value; anything else is a key name.
func parseEvents(keys string) ([]api.Event, error) {
	tokens, err := shlex.Split(keys)
	if err != nil {
		return nil, fmt.Errorf("parse keys: %w", err)
	}
	events := make([]api.Event, 0, len(tokens))
	for _, tok := range tokens {
		if v, ok := strings.CutPrefix(tok, "@"); ok && v != "" {
			events = append(events, api.Event{Source: api.SourceClick, Value: v})
			continue
		}
		events = append(events, api.Event{Source: api.SourceKey, Value: tok})
	}
	return events, nil
}

// evalLocal runs events through a fresh session.
func evalLocal(events []api.Event) keypad.Display {
	sess := session.New(nil)
	for _, e := range events {
		api.Dispatch(sess, e)
	}
	return sess.Display()
}

func runEval(ctx context.Context, cfg config.Config, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("eval", flag.ContinueOnError)
	fs.SetOutput(out)
	remote := fs.Bool("remote", false, "evaluate on the server at CALC_API_URL")
	verbose := fs.Bool("v", false, "also print the pending value and operator")
	if err := fs.Parse(args); err != nil {
		return err
	}

	events, err := parseEvents(strings.Join(fs.Args(), " "))
	if err != nil {
		return err
	}

	var d keypad.Display
	if *remote {
		if err := cfg.RequireAPIURL(); err != nil {
			return err
		}
		resp, err := api.NewClient(cfg.APIURL, cfg.APIKey).Apply(ctx, api.ApplyRequest{Events: events})
		if err != nil {
			return err
		}
		d = resp.Display
	} else {
		d = evalLocal(events)
	}

	if *verbose && d.Secondary() != "" {
		fmt.Fprintln(out, d.Secondary())
	}
	fmt.Fprintln(out, d.Primary)
	return nil
}
