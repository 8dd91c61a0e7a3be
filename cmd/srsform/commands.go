package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"srs-intake-be/internal/pkg/logger"
	"srs-intake-be/pkg/formctl"
	"srs-intake-be/pkg/srsclient"
	"srs-intake-be/pkg/srsform"

	"github.com/fatih/color"
)

var (
	headline = color.New(color.FgCyan, color.Bold)
	success  = color.New(color.FgGreen)
	failure  = color.New(color.FgRed)
	muted    = color.New(color.FgHiBlack)
)

type app struct {
	out    io.Writer
	client *srsclient.Client
	strict bool
	log    logger.ILogger
}

// newSession wires a controller over an in-memory surface. Notifications
// are printed as they arrive.
func (a *app) newSession(state *srsform.FormState) (*formctl.Controller, *formctl.MemorySurface) {
	surface := formctl.NewMemorySurface(state)
	notifier := formctl.NotifierFunc(func(message string) {
		if message == "SRS generated successfully!" {
			success.Fprintln(a.out, message)
			return
		}
		failure.Fprintln(a.out, message)
	})
	ctl := formctl.NewController(surface, notifier, a.client, formctl.Options{
		StrictDomainRequired: a.strict,
		Logger:               a.log,
	})
	return ctl, surface
}

func (a *app) runDomain(ctx context.Context, key string) error {
	ctl, surface := a.newSession(srsform.NewFormState())
	if _, err := ctl.Dispatch(ctx, formctl.Event{Name: formctl.EventDomainChange, Value: key}); err != nil {
		return err
	}

	panel := surface.Panel()
	if !panel.Active {
		return fmt.Errorf("unknown domain %q", key)
	}

	headline.Fprintln(a.out, panel.Title)
	fmt.Fprintln(a.out, "Standards:")
	for _, s := range panel.Standards {
		fmt.Fprintf(a.out, "  - %s\n", s)
	}
	fmt.Fprintln(a.out, "Sections:")
	for i, s := range panel.Sections {
		fmt.Fprintf(a.out, "  %d. %s\n", i+1, s)
	}
	muted.Fprintln(a.out, panel.Note)
	if panel.OverrideVisible {
		muted.Fprintln(a.out, "(set domain_custom to name the domain)")
	}
	return nil
}

func (a *app) runCheck(state *srsform.FormState) error {
	payload, err := srsform.NewBuilder(a.strict).Build(state)
	if err != nil {
		failure.Fprintln(a.out, err.Error())
		return err
	}

	encoded, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, string(encoded))

	if err := srsform.CheckContract(payload); err != nil {
		failure.Fprintln(a.out, err.Error())
		return err
	}
	success.Fprintln(a.out, payload.Summary())
	return nil
}

// runEnhance returns the form state with the enhanced value applied.
func (a *app) runEnhance(ctx context.Context, state *srsform.FormState, target, sectionType string) (*srsform.FormState, error) {
	ctl, surface := a.newSession(state)
	buttonID := "enhance-" + target
	ctl.RegisterButton(buttonID, target, sectionType)

	pending, err := ctl.Dispatch(ctx, formctl.Event{Name: formctl.EventEnhanceClick, Target: buttonID})
	if err != nil {
		return nil, err
	}
	if pending == nil {
		return nil, fmt.Errorf("nothing to enhance in %q", target)
	}
	if err := pending.Wait(ctx); err != nil {
		return nil, err
	}

	headline.Fprintf(a.out, "%s:\n", sectionType)
	fmt.Fprintln(a.out, surface.Value(target))
	return surface.FormState(), nil
}

func (a *app) runSubmit(ctx context.Context, state *srsform.FormState) error {
	ctl, _ := a.newSession(state)

	pending, err := ctl.Dispatch(ctx, formctl.Event{Name: formctl.EventSubmit})
	if err != nil {
		return err
	}
	if err := pending.Wait(ctx); err != nil {
		return err
	}

	if ack := ctl.LastAck(); ack != nil {
		muted.Fprintln(a.out, string(ack))
	}
	return nil
}
