package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/dmitrijs2005/userlist/internal/client/client"
	"github.com/dmitrijs2005/userlist/internal/client/config"
	"github.com/dmitrijs2005/userlist/internal/client/migrations"
	"github.com/dmitrijs2005/userlist/internal/client/notify"
	"github.com/dmitrijs2005/userlist/internal/client/repositories/users"
	"github.com/dmitrijs2005/userlist/internal/client/services"
	"github.com/dmitrijs2005/userlist/internal/dbx"
	"github.com/dmitrijs2005/userlist/internal/logging"
)

// isTerminal is a test seam for term.IsTerminal.
var isTerminal = term.IsTerminal

type App struct {
	config    *config.Config
	users     services.UserService
	snapshots users.Repository
	log       logging.Logger
	db        *sql.DB
}

func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := dbx.OpenSQLite(ctx, c.SnapshotPath, migrations.Migrations)
	if err != nil {
		log.Error(ctx, "error initializing snapshot database", "path", c.SnapshotPath, "err", err)
		return nil, err
	}

	remote, err := client.NewRESTClient(c.BaseURL, c.RequestTimeout, log.With("component", "rest_client"))
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	sink := notify.NewConsoleSink(os.Stdout)
	us := services.NewUserListSync(remote, sink, log)

	return &App{
		config:    c,
		users:     us,
		snapshots: users.NewSQLiteRepository(db),
		log:       log,
		db:        db,
	}, nil
}

// Run fetches the collection and serves commands from stdin until EOF or exit.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	a.log.Info(ctx, "starting", "base_url", a.config.BaseURL)
	_ = a.Reload(ctx)

	interactive := isTerminal(int(os.Stdin.Fd()))
	if interactive {
		printlnFn("Users CLI (type 'help' for commands)")
	}
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin), interactive)
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

func (a *App) getStatus() string {
	edit := a.users.Edit()
	if edit.Editing {
		return fmt.Sprintf("(editing %s)", edit.ActiveID)
	}
	return fmt.Sprintf("(%d users)", len(a.users.Users()))
}

// saveSnapshot stores the confirmed collection. Failures are logged only;
// the snapshot is a convenience, not part of the operation's outcome.
func (a *App) saveSnapshot(ctx context.Context) {
	if a.snapshots == nil {
		return
	}
	if err := a.snapshots.ReplaceAll(ctx, a.users.Users()); err != nil {
		a.log.Warn(ctx, "failed to save snapshot", "err", err)
	}
}
