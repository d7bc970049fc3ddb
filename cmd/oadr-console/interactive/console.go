// Package interactive provides the command shell of oadr-console.
package interactive

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"golang.org/x/oauth2"

	"github.com/oadr3-protocol/oadr3-go/pkg/client"
	"github.com/oadr3-protocol/oadr3-go/pkg/model"
)

// commandTimeout bounds a single VTN request issued from the prompt.
const commandTimeout = 30 * time.Second

// Console handles the interactive loop of oadr-console.
type Console struct {
	client      *client.Client
	tokenSource oauth2.TokenSource
	rl          *readline.Instance
}

// New creates a console around a connected VTN client. tokenSource may be
// nil for unauthenticated VTNs.
func New(c *client.Client, tokenSource oauth2.TokenSource) (*Console, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "vtn> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}
	return &Console{client: c, tokenSource: tokenSource, rl: rl}, nil
}

// Run starts the interactive command loop.
func (c *Console) Run(ctx context.Context, cancel context.CancelFunc) {
	defer c.rl.Close()

	c.printHelp()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := c.rl.Readline()
		if err != nil {
			// EOF or interrupt
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(c.rl.Stdout(), "Exiting...")
			cancel()
			return
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		parts := strings.Fields(input)
		cmd := strings.ToLower(parts[0])
		args := parts[1:]

		switch cmd {
		case "help", "?":
			c.printHelp()

		case "programs", "p":
			c.cmdPrograms(ctx)

		case "program":
			c.cmdProgram(ctx, args)

		case "events", "e":
			c.cmdEvents(ctx, args)

		case "event":
			c.cmdEvent(ctx, args)

		case "reports", "r":
			c.cmdReports(ctx, args)

		case "vens", "v":
			c.cmdVens(ctx)

		case "resources":
			c.cmdResources(ctx, args)

		case "subs", "subscriptions":
			c.cmdSubscriptions(ctx)

		case "token":
			c.cmdToken()

		case "watch", "w":
			c.cmdWatch(ctx, args)

		case "quit", "exit", "q":
			fmt.Fprintln(c.rl.Stdout(), "Exiting...")
			cancel()
			return

		default:
			fmt.Fprintf(c.rl.Stdout(), "Unknown command: %s (type 'help' for commands)\n", cmd)
		}
	}
}

func (c *Console) printHelp() {
	fmt.Fprintln(c.rl.Stdout(), `
VTN Commands:
  Browsing:
    programs            - List programs
    program <id>        - Show one program
    events <programID>  - List events of a program
    event <id>          - Show one event with its intervals
    reports [eventID]   - List reports, optionally of one event
    vens                - List VENs
    resources <venID>   - List resources of a VEN
    subscriptions       - List subscriptions

  Monitoring:
    watch <programID>   - Watch a program's events until Ctrl-C

  Session:
    token               - Show the current access token expiry
    help                - Show this help
    quit                - Exit`)
}

func (c *Console) cmdPrograms(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()

	programs, err := c.client.ListAllPrograms(ctx, client.ListFilter{})
	if err != nil {
		c.printError(err)
		return
	}
	if len(programs) == 0 {
		fmt.Fprintln(c.rl.Stdout(), "No programs.")
		return
	}
	for _, p := range programs {
		fmt.Fprintf(c.rl.Stdout(), "  %-20s %-30s %s\n", p.ID, p.ProgramName, p.ProgramType)
	}
}

func (c *Console) cmdProgram(ctx context.Context, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.rl.Stdout(), "Usage: program <id>")
		return
	}
	ctx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()

	p, err := c.client.GetProgram(ctx, model.ObjectID(args[0]))
	if err != nil {
		c.printError(err)
		return
	}
	out := c.rl.Stdout()
	fmt.Fprintf(out, "Program %s\n", p.ID)
	fmt.Fprintf(out, "  Name:     %s\n", p.ProgramName)
	if p.ProgramLongName != "" {
		fmt.Fprintf(out, "  LongName: %s\n", p.ProgramLongName)
	}
	if p.ProgramType != "" {
		fmt.Fprintf(out, "  Type:     %s\n", p.ProgramType)
	}
	if p.RetailerName != "" {
		fmt.Fprintf(out, "  Retailer: %s\n", p.RetailerName)
	}
	if p.IntervalPeriod != nil {
		fmt.Fprintf(out, "  Period:   %s\n", formatPeriod(p.IntervalPeriod))
	}
	for _, t := range p.Targets {
		fmt.Fprintf(out, "  Target:   %s %v\n", t.Type, t.Values)
	}
}

func (c *Console) cmdEvents(ctx context.Context, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.rl.Stdout(), "Usage: events <programID>")
		return
	}
	ctx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()

	events, err := c.client.ListAllEvents(ctx, client.EventFilter{ProgramID: model.ObjectID(args[0])})
	if err != nil {
		c.printError(err)
		return
	}
	if len(events) == 0 {
		fmt.Fprintln(c.rl.Stdout(), "No events.")
		return
	}
	for _, e := range events {
		fmt.Fprintf(c.rl.Stdout(), "  %-20s %-30s intervals=%d%s\n",
			e.ID, e.EventName, len(e.Intervals), formatEventStart(e))
	}
}

func (c *Console) cmdEvent(ctx context.Context, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.rl.Stdout(), "Usage: event <id>")
		return
	}
	ctx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()

	e, err := c.client.GetEvent(ctx, model.ObjectID(args[0]))
	if err != nil {
		c.printError(err)
		return
	}
	out := c.rl.Stdout()
	fmt.Fprintf(out, "Event %s (program %s)\n", e.ID, e.ProgramID)
	if e.EventName != "" {
		fmt.Fprintf(out, "  Name: %s\n", e.EventName)
	}
	if e.Priority != nil {
		fmt.Fprintf(out, "  Priority: %d\n", *e.Priority)
	}
	if e.IntervalPeriod != nil {
		fmt.Fprintf(out, "  Period: %s\n", formatPeriod(e.IntervalPeriod))
	}
	for _, iv := range e.Intervals {
		fmt.Fprintf(out, "  Interval %d", iv.ID)
		if iv.IntervalPeriod != nil {
			fmt.Fprintf(out, " (%s)", formatPeriod(iv.IntervalPeriod))
		}
		fmt.Fprintln(out)
		for _, p := range iv.Payloads {
			fmt.Fprintf(out, "    %s = %v\n", p.Type, p.Values)
		}
	}
}

func (c *Console) cmdReports(ctx context.Context, args []string) {
	filter := client.ReportFilter{}
	if len(args) == 1 {
		filter.EventID = model.ObjectID(args[0])
	}
	ctx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()

	reports, err := c.client.ListAllReports(ctx, filter)
	if err != nil {
		c.printError(err)
		return
	}
	if len(reports) == 0 {
		fmt.Fprintln(c.rl.Stdout(), "No reports.")
		return
	}
	for _, r := range reports {
		fmt.Fprintf(c.rl.Stdout(), "  %-20s event=%-20s client=%-20s resources=%d\n",
			r.ID, r.EventID, r.ClientName, len(r.Resources))
	}
}

func (c *Console) cmdVens(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()

	vens, err := c.client.ListVens(ctx, client.ListFilter{})
	if err != nil {
		c.printError(err)
		return
	}
	if len(vens) == 0 {
		fmt.Fprintln(c.rl.Stdout(), "No VENs.")
		return
	}
	for _, v := range vens {
		fmt.Fprintf(c.rl.Stdout(), "  %-20s %s\n", v.ID, v.VenName)
	}
}

func (c *Console) cmdResources(ctx context.Context, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.rl.Stdout(), "Usage: resources <venID>")
		return
	}
	ctx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()

	resources, err := c.client.ListVenResources(ctx, model.ObjectID(args[0]), client.ListFilter{})
	if err != nil {
		c.printError(err)
		return
	}
	if len(resources) == 0 {
		fmt.Fprintln(c.rl.Stdout(), "No resources.")
		return
	}
	for _, r := range resources {
		fmt.Fprintf(c.rl.Stdout(), "  %-20s %s\n", r.ID, r.ResourceName)
	}
}

func (c *Console) cmdSubscriptions(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()

	subs, err := c.client.ListSubscriptions(ctx, client.SubscriptionFilter{})
	if err != nil {
		c.printError(err)
		return
	}
	if len(subs) == 0 {
		fmt.Fprintln(c.rl.Stdout(), "No subscriptions.")
		return
	}
	for _, s := range subs {
		fmt.Fprintf(c.rl.Stdout(), "  %-20s client=%-20s program=%s\n", s.ID, s.ClientName, s.ProgramID)
	}
}

func (c *Console) cmdToken() {
	if c.tokenSource == nil {
		fmt.Fprintln(c.rl.Stdout(), "No auth configured.")
		return
	}
	tok, err := c.tokenSource.Token()
	if err != nil {
		c.printError(err)
		return
	}
	fmt.Fprintf(c.rl.Stdout(), "Token type %s, expires %s\n",
		tok.TokenType, tok.Expiry.Format(time.RFC3339))
}

func (c *Console) printError(err error) {
	var problem *model.Problem
	if errors.As(err, &problem) {
		fmt.Fprintf(c.rl.Stdout(), "VTN error %d: %s", problem.Status, problem.Title)
		if problem.Detail != "" {
			fmt.Fprintf(c.rl.Stdout(), " (%s)", problem.Detail)
		}
		fmt.Fprintln(c.rl.Stdout())
		return
	}
	fmt.Fprintf(c.rl.Stdout(), "Error: %v\n", err)
}

func formatPeriod(p *model.IntervalPeriod) string {
	s := p.Start.Format(time.RFC3339)
	if p.Duration != nil {
		s += " +" + p.Duration.String()
	}
	return s
}

func formatEventStart(e model.Event) string {
	if e.IntervalPeriod == nil {
		return ""
	}
	return " start=" + e.IntervalPeriod.Start.Format(time.RFC3339)
}
