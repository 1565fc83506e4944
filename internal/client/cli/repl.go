package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface is the minimal command surface the REPL needs. The real App
// satisfies it; tests substitute a lightweight stub.
type execIface interface {
	signedIn() bool
	Signup(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Upload(ctx context.Context, args []string) error
	List(ctx context.Context) error
	Menu(ctx context.Context, args []string) error
	Remove(ctx context.Context, args []string) error
	Undo(ctx context.Context, args []string) error
	Show(ctx context.Context, args []string) error
}

// runREPL reads a line, takes the first token as the command and the rest
// as arguments, and dispatches to a. Unknown commands are reported back
// to the user. The loop ends on EOF or "exit"/"quit".
//
// Command handlers present their own errors; the loop ignores the
// returned values to stay resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer) {
	for {
		fmt.Fprintf(w, "medreport> %s > ", statusFn())

		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.signedIn() {
				fmt.Fprintln(w, "Available commands: (l)ist, upload, menu, remove, undo, show, logout, exit")
			} else {
				fmt.Fprintln(w, "Available commands: signup, login, list, exit")
			}

		case "signup":
			_ = a.Signup(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "upload":
			_ = a.Upload(ctx, args)

		case "l", "list":
			_ = a.List(ctx)

		case "menu":
			_ = a.Menu(ctx, args)

		case "remove":
			_ = a.Remove(ctx, args)

		case "undo":
			_ = a.Undo(ctx, args)

		case "show":
			_ = a.Show(ctx, args)

		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return

		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}
	}
}
