// Package cli wires the interactive views of the medreport client: the
// auth screens, the upload flow, the dashboard with its delete/undo
// protocol, and the report detail view, all driven by a small REPL.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"medreport/internal/client/api"
	"medreport/internal/client/config"
	"medreport/internal/client/notify"
	"medreport/internal/client/services"
	"medreport/internal/client/session"
	"medreport/internal/logging"
)

type App struct {
	config *config.Config
	store  *session.SQLiteStore

	auth      *services.Auth
	upload    *services.Upload
	dashboard *services.Dashboard
	reports   *services.Reports

	log    logging.Logger
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(cfg *config.Config) (*App, error) {
	ctx := context.Background()

	store, err := session.Open(ctx, cfg.SessionDBPath)
	if err != nil {
		return nil, err
	}

	apiClient := api.New(cfg.APIBaseURL)
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	notifier := notify.NewWriter(os.Stdout)

	return &App{
		config:    cfg,
		store:     store,
		auth:      services.NewAuth(apiClient, store, logger),
		upload:    services.NewUpload(apiClient, store, notifier, logger),
		dashboard: services.NewDashboard(apiClient, store, notifier, logger, cfg.UndoGrace),
		reports:   services.NewReports(apiClient, store),
		log:       logger,
		reader:    bufio.NewReader(os.Stdin),
		out:       os.Stdout,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.Close()
	runREPL(ctx, a, a.status, a.reader, a.out)
}

// Close tears down view-scoped resources: pending dashboard timers are
// cancelled (their deferred deletes abandoned) and the session db closed.
func (a *App) Close() {
	a.dashboard.Close()
	_ = a.store.Close()
}

// signedIn reports whether a stored access token exists.
func (a *App) signedIn() bool {
	sess, err := a.store.Load(context.Background())
	return err == nil && !sess.Anonymous()
}

// status decorates the REPL prompt. The user id comes from an unverified
// peek at the token payload; it is display only.
func (a *App) status() string {
	sess, err := a.store.Load(context.Background())
	if err != nil || sess.Anonymous() {
		return "signed out"
	}
	if claims, ok := session.PeekClaims(sess.AccessToken); ok && claims.UserID != 0 {
		return fmt.Sprintf("user #%d", claims.UserID)
	}
	return "signed in"
}
