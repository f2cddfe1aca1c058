// Package router maps command verbs onto handler actions, the same role
// the HTTP route table plays in a served app.
package router

import (
	"context"
	"fmt"

	"github.com/spf13/pflag"

	"github.com/huyi122/Ticket-Master/handler"
)

const usage = `vip-ticket-master <command> [args]

  events list [--archived]
  events create <name> [description]
  events update <event-id> <name> [description]
  events archive <event-id>
  events restore <event-id>
  events delete <event-id>

  tickets list <event-id>
  tickets generate <event-id> [--count N] [--length N]
  tickets add <event-id> <codes...>         one code per argument
  tickets edit-code <ticket-id> <code>
  tickets delete <ticket-id>
  tickets qr <ticket-id> [--dir DIR]

  validate <code> [--check-in]
  scan [--device DEV] [--mode qr|barcode] [--check-in]

  export [--dir DIR]
  import <file>
  backup upload
  backup restore-latest
  codesheet <event-id> [--dir DIR]
`

func Dispatch(ctx context.Context, app *handler.App, args []string) error {
	if len(args) == 0 {
		fmt.Print(usage)
		return nil
	}

	switch args[0] {
	case "events":
		return dispatchEvents(ctx, app, args[1:])
	case "tickets":
		return dispatchTickets(ctx, app, args[1:])
	case "validate":
		pos, rest, err := splitArgs("validate", args[1:], 1)
		if err != nil {
			return err
		}
		fs := pflag.NewFlagSet("validate", pflag.ContinueOnError)
		checkIn := fs.Bool("check-in", false, "check the guest in when the ticket is valid")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		return app.Validate(ctx, pos[0], *checkIn)
	case "scan":
		fs := pflag.NewFlagSet("scan", pflag.ContinueOnError)
		device := fs.String("device", "", "camera device path")
		mode := fs.String("mode", "qr", "decoder: qr or barcode")
		checkIn := fs.Bool("check-in", false, "check the guest in when the ticket is valid")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		return app.Scan(ctx, *device, *mode, *checkIn)
	case "export":
		fs := pflag.NewFlagSet("export", pflag.ContinueOnError)
		dir := fs.String("dir", ".", "target directory")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		return app.Export(ctx, *dir)
	case "import":
		if len(args) < 2 {
			return fmt.Errorf("import needs a file path")
		}
		return app.Import(ctx, args[1])
	case "backup":
		if len(args) < 2 {
			return fmt.Errorf("backup needs upload or restore-latest")
		}
		switch args[1] {
		case "upload":
			return app.BackupUpload(ctx)
		case "restore-latest":
			return app.BackupRestoreLatest(ctx)
		}
		return fmt.Errorf("unknown backup command %q", args[1])
	case "codesheet":
		pos, rest, err := splitArgs("codesheet", args[1:], 1)
		if err != nil {
			return err
		}
		fs := pflag.NewFlagSet("codesheet", pflag.ContinueOnError)
		dir := fs.String("dir", ".", "target directory")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		return app.CodeSheet(ctx, pos[0], *dir)
	case "help", "-h", "--help":
		fmt.Print(usage)
		return nil
	}
	return fmt.Errorf("unknown command %q", args[0])
}

func dispatchEvents(ctx context.Context, app *handler.App, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("events needs a subcommand")
	}
	switch args[0] {
	case "list":
		fs := pflag.NewFlagSet("events list", pflag.ContinueOnError)
		archived := fs.Bool("archived", false, "show archived events instead")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		return app.ListEvents(ctx, *archived)
	case "create":
		if len(args) < 2 {
			return fmt.Errorf("events create needs a name")
		}
		return app.CreateEvent(ctx, args[1], argOr(args, 2))
	case "update":
		if len(args) < 3 {
			return fmt.Errorf("events update needs an event id and a name")
		}
		return app.UpdateEvent(ctx, args[1], args[2], argOr(args, 3))
	case "archive":
		if len(args) < 2 {
			return fmt.Errorf("events archive needs an event id")
		}
		return app.ArchiveEvent(ctx, args[1])
	case "restore":
		if len(args) < 2 {
			return fmt.Errorf("events restore needs an event id")
		}
		return app.RestoreEvent(ctx, args[1])
	case "delete":
		if len(args) < 2 {
			return fmt.Errorf("events delete needs an event id")
		}
		return app.DeleteEvent(ctx, args[1])
	}
	return fmt.Errorf("unknown events command %q", args[0])
}

func dispatchTickets(ctx context.Context, app *handler.App, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("tickets needs a subcommand")
	}
	switch args[0] {
	case "list":
		if len(args) < 2 {
			return fmt.Errorf("tickets list needs an event id")
		}
		return app.ListTickets(ctx, args[1])
	case "generate":
		pos, rest, err := splitArgs("tickets generate", args[1:], 1)
		if err != nil {
			return err
		}
		fs := pflag.NewFlagSet("tickets generate", pflag.ContinueOnError)
		count := fs.Int("count", 10, "how many tickets to issue")
		length := fs.Int("length", 8, "code length")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		return app.GenerateTickets(ctx, pos[0], *count, *length)
	case "add":
		if len(args) < 3 {
			return fmt.Errorf("tickets add needs an event id and codes")
		}
		text := ""
		for _, c := range args[2:] {
			text += c + "\n"
		}
		return app.AddTicketsManual(ctx, args[1], text)
	case "edit-code":
		if len(args) < 3 {
			return fmt.Errorf("tickets edit-code needs a ticket id and a code")
		}
		return app.EditTicketCode(ctx, args[1], args[2])
	case "delete":
		if len(args) < 2 {
			return fmt.Errorf("tickets delete needs a ticket id")
		}
		return app.DeleteTicket(ctx, args[1])
	case "qr":
		pos, rest, err := splitArgs("tickets qr", args[1:], 1)
		if err != nil {
			return err
		}
		fs := pflag.NewFlagSet("tickets qr", pflag.ContinueOnError)
		dir := fs.String("dir", ".", "target directory")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		return app.TicketQR(ctx, pos[0], *dir)
	}
	return fmt.Errorf("unknown tickets command %q", args[0])
}

// splitArgs peels n leading positional arguments off, leaving flags.
func splitArgs(name string, args []string, n int) ([]string, []string, error) {
	if len(args) < n {
		return nil, nil, fmt.Errorf("%s: missing arguments", name)
	}
	return args[:n], args[n:], nil
}

func argOr(args []string, i int) string {
	if len(args) > i {
		return args[i]
	}
	return ""
}
