// Package app wires the application's services into a samber/do injector.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/nfrund/sameboat/internal/auth"
	"github.com/nfrund/sameboat/internal/config"
	"github.com/nfrund/sameboat/internal/database"
	"github.com/nfrund/sameboat/internal/domain"
	"github.com/nfrund/sameboat/internal/email"
	"github.com/nfrund/sameboat/internal/pubsub"
	"github.com/nfrund/sameboat/internal/server"
	"github.com/nfrund/sameboat/internal/storage"
	"github.com/samber/do/v2"
	"github.com/spf13/afero"
	"github.com/surrealdb/surrealdb.go"
)

// New returns an injector able to build every service from cfg.
// Services are constructed lazily on first Invoke.
func New(cfg config.Provider) *do.RootScope {
	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue[afero.Fs](injector, afero.NewOsFs())
	do.Provide(injector, newSurrealConn)
	do.Provide(injector, newUserRepository)
	do.Provide(injector, newBridge)
	do.Provide(injector, newEmailSender)
	do.Provide(injector, newAuthService)
	do.Provide(injector, newServer)
	return injector
}

const connectRetries = 5

// surrealConn owns the database connection so the injector can close it.
type surrealConn struct {
	db *surrealdb.DB
}

func (s *surrealConn) Shutdown() error {
	return s.db.Close(context.Background())
}

// HealthCheck is run by the injector's health checks.
func (s *surrealConn) HealthCheck() error {
	return database.Ping(context.Background(), s.db)
}

func newSurrealConn(i do.Injector) (*surrealConn, error) {
	cfg := do.MustInvoke[config.Provider](i)
	ctx := context.Background()
	db, err := database.Connect(ctx, cfg, database.NewRetryer(connectRetries, 200*time.Millisecond))
	if err != nil {
		return nil, err
	}
	if err := database.EnsureSchema(ctx, db); err != nil {
		db.Close(ctx)
		return nil, err
	}
	return &surrealConn{db: db}, nil
}

func newUserRepository(i do.Injector) (domain.UserRepository, error) {
	cfg := do.MustInvoke[config.Provider](i)
	switch cfg.GetUserStore() {
	case config.StoreSurreal:
		conn, err := do.Invoke[*surrealConn](i)
		if err != nil {
			return nil, err
		}
		return database.NewSurrealUserStore(conn.db), nil
	case config.StoreFile:
		store, err := storage.NewFileUserStore(do.MustInvoke[afero.Fs](i), cfg.GetUserStorePath())
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown user store %q", cfg.GetUserStore())
	}
}

func newBridge(i do.Injector) (*pubsub.WatermillBridge, error) {
	return pubsub.NewWatermillBridge(slog.Default().With("component", "pubsub")), nil
}

func newEmailSender(i do.Injector) (domain.EmailSender, error) {
	return email.NewEmailService(do.MustInvoke[config.Provider](i))
}

func newAuthService(i do.Injector) (*auth.Service, error) {
	users, err := do.Invoke[domain.UserRepository](i)
	if err != nil {
		return nil, err
	}
	return auth.NewService(users, do.MustInvoke[*pubsub.WatermillBridge](i)), nil
}

func newServer(i do.Injector) (*server.Server, error) {
	svc, err := do.Invoke[*auth.Service](i)
	if err != nil {
		return nil, err
	}
	return server.New(do.MustInvoke[config.Provider](i), svc), nil
}

// StartSubscribers runs the background event consumers until ctx is canceled.
func StartSubscribers(ctx context.Context, i do.Injector) error {
	cfg := do.MustInvoke[config.Provider](i)
	bridge := do.MustInvoke[*pubsub.WatermillBridge](i)
	sender, err := do.Invoke[domain.EmailSender](i)
	if err != nil {
		return err
	}
	welcome := email.NewWelcomeSubscriber(sender, cfg.GetAppBaseURL())
	return welcome.Start(ctx, bridge, auth.UserRegistered)
}
