// Package cli wires the command runners for the terminal client. Each
// command lives in its own file as a runX method on Cli.
package cli

import (
	"fmt"

	"github.com/iudanet/blogkeeper/internal/client/api"
	"github.com/iudanet/blogkeeper/internal/client/auth"
	"github.com/iudanet/blogkeeper/internal/client/content"
	"github.com/iudanet/blogkeeper/internal/client/history"
	"github.com/iudanet/blogkeeper/internal/client/iocli"
	"github.com/iudanet/blogkeeper/internal/client/storage"
	"github.com/iudanet/blogkeeper/internal/client/sync"
)

// Deps are the collaborators the command runners need.
type Deps struct {
	IO        iocli.IO
	Exchanger api.TokenExchanger
	Auth      *auth.Service
	History   *history.Repository
	Sync      *sync.Service
	Content   *content.Client
	Remote    sync.RemoteStore
	Store     storage.KVStorage
}

type Cli struct {
	io        iocli.IO
	exchanger api.TokenExchanger
	auth      *auth.Service
	history   *history.Repository
	sync      *sync.Service
	content   *content.Client
	remote    sync.RemoteStore
	store     storage.KVStorage
}

func New(deps Deps) *Cli {
	return &Cli{
		io:        deps.IO,
		exchanger: deps.Exchanger,
		auth:      deps.Auth,
		history:   deps.History,
		sync:      deps.Sync,
		content:   deps.Content,
		remote:    deps.Remote,
		store:     deps.Store,
	}
}

func PrintUsage() {
	fmt.Println("BlogKeeper Client")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  blogkeeper [OPTIONS] COMMAND")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version            Show version information")
	fmt.Println("  --db PATH            Path to local database (default: blogkeeper-client.db)")
	fmt.Println("  --feed URL           Blog feed URL")
	fmt.Println()
	fmt.Println("Environment:")
	fmt.Println("  BLOGKEEPER_ENCRYPTION_SECRET  Secret protecting locally stored tokens (required)")
	fmt.Println("  BLOGKEEPER_CLIENT_ID          OAuth client id")
	fmt.Println("  BLOGKEEPER_CLIENT_SECRET      OAuth client secret")
	fmt.Println("  BLOGKEEPER_REDIRECT_URI       OAuth redirect URI")
	fmt.Println("  BLOGKEEPER_BLOG_ID            Blog id (used to derive the default feed URL)")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  login                   Log in with a Google authorization code")
	fmt.Println("  logout                  Log out and clear local session data")
	fmt.Println("  status                  Show session and sync status")
	fmt.Println("  sync                    Synchronize collections with the remote backup")
	fmt.Println("  backup                  Push local collections to the remote backup")
	fmt.Println("  list <collection>       List favorites, bookmarks or reads")
	fmt.Println("  favorite add <id>       Add a post to favorites")
	fmt.Println("  favorite remove <id>    Remove a post from favorites")
	fmt.Println("  bookmark <id> <page>    Save a manga reading position")
	fmt.Println("  read <id>               Mark a post as read")
	fmt.Println("  feed                    Show the blog's latest posts")
	fmt.Println("  purge                   Delete local data and the remote backup")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  blogkeeper login")
	fmt.Println("  blogkeeper list favorites")
	fmt.Println("  blogkeeper favorite add 1234567890")
	fmt.Println("  blogkeeper bookmark one-piece-1015 17")
	fmt.Println("  blogkeeper --db ~/.blogkeeper.db sync")
}
