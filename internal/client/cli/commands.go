package cli

import (
	"context"
	"fmt"
	"os"
)

// Run dispatches one command. Errors are printed and terminate the process
// with a non-zero code.
func (c *Cli) Run(ctx context.Context, command string, args []string) {
	var err error

	switch command {
	case "login":
		err = c.runLogin(ctx)
	case "logout":
		err = c.runLogout(ctx)
	case "status":
		err = c.runStatus(ctx)
	case "sync":
		err = c.runSync(ctx)
	case "backup":
		err = c.runBackup(ctx)
	case "list":
		err = c.runList(ctx, args)
	case "favorite":
		err = c.runFavorite(ctx, args)
	case "bookmark":
		err = c.runBookmark(ctx, args)
	case "read":
		err = c.runRead(ctx, args)
	case "feed":
		err = c.runFeed(ctx)
	case "purge":
		err = c.runPurge(ctx)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		PrintUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
