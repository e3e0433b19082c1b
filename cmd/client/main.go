package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/iudanet/blogkeeper/internal/client/api"
	"github.com/iudanet/blogkeeper/internal/client/auth"
	"github.com/iudanet/blogkeeper/internal/client/cache"
	"github.com/iudanet/blogkeeper/internal/client/cli"
	"github.com/iudanet/blogkeeper/internal/client/content"
	"github.com/iudanet/blogkeeper/internal/client/drive"
	"github.com/iudanet/blogkeeper/internal/client/history"
	"github.com/iudanet/blogkeeper/internal/client/iocli"
	"github.com/iudanet/blogkeeper/internal/client/secure"
	"github.com/iudanet/blogkeeper/internal/client/storage/boltdb"
	syncsvc "github.com/iudanet/blogkeeper/internal/client/sync"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	dbPath := flag.String("db", "blogkeeper-client.db", "Path to local database")
	feedURL := flag.String("feed", "", "Blog feed URL (default derived from BLOGKEEPER_BLOG_ID)")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}
	command := args[0]

	ctx := context.Background()
	logger := slog.Default()

	boltStorage, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	// An empty secret leaves the secure store fail-closed: commands that
	// need the session will report "not logged in" rather than touch
	// plaintext tokens.
	secrets := secure.New(boltStorage, os.Getenv("BLOGKEEPER_ENCRYPTION_SECRET"), logger)

	exchanger := api.NewOAuthClient(api.OAuthConfig{
		ClientID:     os.Getenv("BLOGKEEPER_CLIENT_ID"),
		ClientSecret: os.Getenv("BLOGKEEPER_CLIENT_SECRET"),
		RedirectURI:  os.Getenv("BLOGKEEPER_REDIRECT_URI"),
	})

	historyRepo := history.New(boltStorage, logger)

	authService := auth.NewService(exchanger, secrets, logger, historyRepo)
	transport := auth.NewTransport(authService, logger)
	remote := drive.New(transport, logger)

	syncService := syncsvc.New(historyRepo, remote, boltStorage, logger)
	authService.AddWiper(syncService)

	cacheService := cache.New(boltStorage, logger)
	contentClient := content.New(resolveFeedURL(*feedURL), cacheService, logger)

	app := cli.New(cli.Deps{
		IO:        iocli.NewStdio(),
		Exchanger: exchanger,
		Auth:      authService,
		History:   historyRepo,
		Sync:      syncService,
		Content:   contentClient,
		Remote:    remote,
		Store:     boltStorage,
	})

	app.Run(ctx, command, args[1:])
}

// resolveFeedURL prefers the explicit flag, then the blog id, then a
// placeholder that fails loudly on first use.
func resolveFeedURL(flagURL string) string {
	if flagURL != "" {
		return flagURL
	}
	if blogID := os.Getenv("BLOGKEEPER_BLOG_ID"); blogID != "" {
		return "https://www.blogger.com/feeds/" + blogID + "/posts/default"
	}
	return ""
}

func printVersion() {
	fmt.Printf("BlogKeeper Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
