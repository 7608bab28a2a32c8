package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/nfrund/sameboat/internal/auth"
	"github.com/nfrund/sameboat/internal/config"
	"github.com/nfrund/sameboat/internal/domain"
	"github.com/nfrund/sameboat/internal/server"
	"github.com/nfrund/sameboat/internal/storage"
	"github.com/samber/do/v2"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		AppBaseURL:    "http://localhost:8080",
		SessionSecret: "a-very-secret-key-for-testing-!",
		UserStore:     config.StoreFile,
		UserStorePath: "data/users.json",
		EmailProvider: "log",
	}
}

// newTestInjector swaps the OS filesystem for memory.
func newTestInjector(t *testing.T, cfg config.Provider) *do.RootScope {
	t.Helper()
	injector := New(cfg)
	do.OverrideValue[afero.Fs](injector, afero.NewMemMapFs())
	t.Cleanup(func() { injector.Shutdown() })
	return injector
}

func TestNew_FileStore(t *testing.T) {
	injector := newTestInjector(t, testConfig())

	repo, err := do.Invoke[domain.UserRepository](injector)
	require.NoError(t, err)
	assert.IsType(t, &storage.FileUserStore{}, repo)

	srv, err := do.Invoke[*server.Server](injector)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	srv.E.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNew_UnknownStore(t *testing.T) {
	cfg := testConfig()
	cfg.UserStore = "bogus"
	injector := newTestInjector(t, cfg)

	_, err := do.Invoke[*auth.Service](injector)
	assert.Error(t, err)
}

// recordingSender captures sent mail.
type recordingSender struct {
	sent chan string
}

func (r *recordingSender) Send(to, subject, htmlBody string) error {
	r.sent <- to
	return nil
}

func TestStartSubscribers_SendsWelcomeEmail(t *testing.T) {
	injector := newTestInjector(t, testConfig())
	sender := &recordingSender{sent: make(chan string, 1)}
	do.OverrideValue[domain.EmailSender](injector, sender)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, StartSubscribers(ctx, injector))

	svc := do.MustInvoke[*auth.Service](injector)
	_, err := svc.Register(ctx, "a@b.co", "abcdef")
	require.NoError(t, err)

	select {
	case to := <-sender.sent:
		assert.Equal(t, "a@b.co", to)
	case <-time.After(2 * time.Second):
		t.Fatal("welcome email was not sent")
	}
}
