// Command ven-example demonstrates a minimal OpenADR 3 VEN.
//
// This example shows how to:
//   - Authenticate against a VTN with OAuth2 client credentials
//   - Find a program and watch its events
//   - React to pricing intervals
//   - Send usage reports back to the VTN
//
// Usage:
//
//	go run ./cmd/ven-example -vtn http://localhost:8080/openadr3/3.0.1
//
// The VEN will:
//  1. Pick the first program visible on the VTN (or the one given via -program)
//  2. Poll the program's events
//  3. Log each event's interval payloads as they appear
//  4. Submit a synthetic usage report per new event
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lmittmann/tint"

	"github.com/oadr3-protocol/oadr3-go/pkg/auth"
	"github.com/oadr3-protocol/oadr3-go/pkg/client"
	"github.com/oadr3-protocol/oadr3-go/pkg/model"
	"github.com/oadr3-protocol/oadr3-go/pkg/names"
	"github.com/oadr3-protocol/oadr3-go/pkg/poll"
)

const clientName = "ven-example"

func main() {
	var (
		vtnURL       = flag.String("vtn", "http://localhost:8080/openadr3/3.0.1", "VTN base URL")
		programID    = flag.String("program", "", "Program ID to watch (default: first visible program)")
		tokenURL     = flag.String("token-url", "", "OAuth2 token endpoint (empty for unauthenticated VTNs)")
		clientID     = flag.String("client-id", clientName, "OAuth2 client ID")
		clientSecret = flag.String("client-secret", "", "OAuth2 client secret")
		interval     = flag.Duration("interval", 10*time.Second, "Event poll interval")
	)
	flag.Parse()

	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: slog.LevelDebug}))
	slog.SetDefault(logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := client.Config{BaseURL: *vtnURL, Logger: logger}
	if *tokenURL != "" {
		ts, err := auth.TokenSource(ctx, auth.Config{
			TokenURL:     *tokenURL,
			ClientID:     *clientID,
			ClientSecret: *clientSecret,
		})
		if err != nil {
			logger.Error("configuring auth", "error", err)
			os.Exit(1)
		}
		cfg.TokenSource = ts
	}

	c, err := client.New(cfg)
	if err != nil {
		logger.Error("creating client", "error", err)
		os.Exit(1)
	}

	program, err := pickProgram(ctx, c, *programID)
	if err != nil {
		logger.Error("finding program", "error", err)
		os.Exit(1)
	}
	logger.Info("watching program", "id", program.ID, "name", program.ProgramName)

	ven := &ven{client: c, logger: logger, programID: program.ID}

	poller, err := poll.New(poll.Config{
		Lister:   c,
		Handler:  ven,
		Filter:   client.EventFilter{ProgramID: program.ID},
		Interval: *interval,
		Logger:   logger,
	})
	if err != nil {
		logger.Error("creating poller", "error", err)
		os.Exit(1)
	}

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutting down")
		cancel()
	}()

	if err := poller.Run(ctx); err != nil && ctx.Err() == nil {
		logger.Error("poller stopped", "error", err)
		os.Exit(1)
	}
}

// pickProgram resolves the program to watch: an explicit ID, or the first
// one the VTN lists.
func pickProgram(ctx context.Context, c *client.Client, id string) (*model.Program, error) {
	if id != "" {
		return c.GetProgram(ctx, model.ObjectID(id))
	}
	programs, err := c.ListPrograms(ctx, client.ListFilter{Page: client.Page{Limit: 1}})
	if err != nil {
		return nil, err
	}
	if len(programs) == 0 {
		return nil, errNoPrograms
	}
	return &programs[0], nil
}

var errNoPrograms = errors.New("the VTN lists no programs")

// ven reacts to event changes.
type ven struct {
	client    *client.Client
	logger    *slog.Logger
	programID model.ObjectID
}

func (v *ven) OnEventCreated(e model.Event) {
	v.logger.Info("event created", "id", e.ID, "name", e.EventName)
	for _, iv := range e.Intervals {
		for _, p := range iv.Payloads {
			v.logger.Info("interval payload", "interval", iv.ID, "type", p.Type, "values", p.Values)
		}
	}
	v.report(e)
}

func (v *ven) OnEventModified(e model.Event) {
	v.logger.Info("event modified", "id", e.ID, "name", e.EventName)
	v.report(e)
}

func (v *ven) OnEventDeleted(e model.Event) {
	v.logger.Info("event deleted", "id", e.ID, "name", e.EventName)
}

// report submits a synthetic usage report for the event. A real VEN would
// read its meter here.
func (v *ven) report(e model.Event) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	report := model.Report{
		ProgramID:          v.programID,
		EventID:            e.ID,
		ClientName:         clientName,
		PayloadDescriptors: []model.PayloadDescriptor{usageDescriptor()},
		Resources: []model.ReportResource{{
			ResourceName: clientName + "-meter",
			Intervals: []model.Interval{{
				ID:       0,
				Payloads: []model.ValuesMap{model.NewValuesMap(names.PayloadTypeUsage.String(), 1.5)},
			}},
		}},
	}

	created, err := v.client.CreateReport(ctx, report)
	if err != nil {
		v.logger.Error("submitting report", "event", e.ID, "error", err)
		return
	}
	v.logger.Info("report submitted", "id", created.ID, "event", e.ID)
}

func usageDescriptor() model.PayloadDescriptor {
	d := model.NewReportPayloadDescriptor(names.PayloadTypeUsage)
	d.ReadingType = names.ReadingTypeDirectRead
	d.Units = names.UnitKWH
	return d
}
