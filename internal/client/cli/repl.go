package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	List(ctx context.Context) error
	Reload(ctx context.Context) error
	Add(ctx context.Context, args []string) error
	Edit(ctx context.Context, args []string) error
	Rename(ctx context.Context, args []string) error
	Save(ctx context.Context) error
	Cancel(ctx context.Context) error
	Delete(ctx context.Context, args []string) error
	Cached(ctx context.Context) error
}

const helpText = "Available commands: (l)ist, reload, add <name>, edit <id>, name <text>, save, cancel, delete <id>, cached, exit"

// runREPL reads one command per line from scanner and dispatches it to a.
// The prompt (built from statusFn) is only printed when showPrompt is set,
// so piped scripts produce clean output. The loop ends on EOF, "exit" or
// "quit".
//
// Errors returned by command handlers are ignored here; handlers report
// outcomes themselves.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner, showPrompt bool) {
	for {
		if showPrompt {
			printlnFn(fmt.Sprintf("users %s > ", statusFn()))
		}
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			printlnFn(helpText)

		case "l", "list":
			_ = a.List(ctx)

		case "reload":
			_ = a.Reload(ctx)

		case "add":
			_ = a.Add(ctx, args)

		case "edit":
			_ = a.Edit(ctx, args)

		case "name":
			_ = a.Rename(ctx, args)

		case "save":
			_ = a.Save(ctx)

		case "cancel":
			_ = a.Cancel(ctx)

		case "delete", "rm":
			_ = a.Delete(ctx, args)

		case "cached":
			_ = a.Cached(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
