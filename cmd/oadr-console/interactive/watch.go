package interactive

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/oadr3-protocol/oadr3-go/pkg/client"
	"github.com/oadr3-protocol/oadr3-go/pkg/model"
	"github.com/oadr3-protocol/oadr3-go/pkg/poll"
)

// watchInterval is the poll cadence while watching a program.
const watchInterval = 10 * time.Second

// cmdWatch polls a program's events and prints changes until Ctrl-C.
func (c *Console) cmdWatch(ctx context.Context, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.rl.Stdout(), "Usage: watch <programID>")
		return
	}
	out := c.rl.Stdout()

	p, err := poll.New(poll.Config{
		Lister: c.client,
		Filter: client.EventFilter{ProgramID: model.ObjectID(args[0])},
		Handler: poll.HandlerFuncs{
			Created: func(e model.Event) {
				fmt.Fprintf(out, "  + %s %s\n", e.ID, e.EventName)
			},
			Modified: func(e model.Event) {
				fmt.Fprintf(out, "  ~ %s %s\n", e.ID, e.EventName)
			},
			Deleted: func(e model.Event) {
				fmt.Fprintf(out, "  - %s %s\n", e.ID, e.EventName)
			},
		},
		Interval: watchInterval,
	})
	if err != nil {
		c.printError(err)
		return
	}

	watchCtx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	fmt.Fprintf(out, "Watching program %s (Ctrl-C to stop)\n", args[0])
	if err := p.Run(watchCtx); err != nil && ctx.Err() == nil {
		fmt.Fprintln(out, "Watch stopped.")
	}
}
