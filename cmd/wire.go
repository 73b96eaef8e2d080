package cmd

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/bnema/rag-cli/internal/adapters/api"
	"github.com/bnema/rag-cli/internal/adapters/credentials"
	tomlrepo "github.com/bnema/rag-cli/internal/adapters/repo/toml"
	boltstore "github.com/bnema/rag-cli/internal/adapters/secrets/bolt"
	chainstore "github.com/bnema/rag-cli/internal/adapters/secrets/chain"
	filestore "github.com/bnema/rag-cli/internal/adapters/secrets/file"
	passstore "github.com/bnema/rag-cli/internal/adapters/secrets/pass"
	"github.com/bnema/rag-cli/internal/application"
	"github.com/bnema/rag-cli/internal/config"
	"github.com/bnema/rag-cli/internal/logx"
	"github.com/bnema/rag-cli/internal/metrics"
	"github.com/bnema/rag-cli/internal/ports"
	"github.com/spf13/viper"
	"pkt.systems/pslog"
)

type app struct {
	cfg     config.Config
	log     pslog.Logger
	metrics *metrics.Metrics
	client  *api.Client

	session     *application.SessionService
	ingestion   *application.IngestionService
	documents   *application.DocumentService
	chat        *application.ChatService
	search      *application.SearchService
	settings    *application.SettingsService
	preferences *application.PreferencesService

	now func() time.Time
}

type rootOptions struct {
	configFile string
	logLevel   string
	metrics    bool
}

func wireApp(ctx context.Context, opts rootOptions, stderr io.Writer) (*app, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	v := viper.New()
	if opts.configFile != "" {
		v.SetConfigFile(opts.configFile)
	}
	cfg, err := config.Load(v, homeDir)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	level := cfg.LogLevel
	if opts.logLevel != "" {
		level = opts.logLevel
	}
	log, err := logx.New(stderr, level)
	if err != nil {
		return nil, err
	}

	secrets, err := wireSecretStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	scope, err := credentials.ScopeFromBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("wire credential store: %w", err)
	}
	creds, err := credentials.NewStore(secrets, scope)
	if err != nil {
		return nil, fmt.Errorf("wire credential store: %w", err)
	}

	prefsRepo, err := tomlrepo.NewRepository(cfg.PreferencesPath)
	if err != nil {
		return nil, fmt.Errorf("wire preferences repository: %w", err)
	}

	var m *metrics.Metrics
	if opts.metrics {
		m = metrics.New()
	}

	client, err := api.NewClient(api.Config{
		BaseURL:        cfg.BaseURL,
		HTTPClient:     &http.Client{},
		RequestTimeout: cfg.RequestTimeout,
		Credentials:    creds,
		Metrics:        m,
	})
	if err != nil {
		return nil, fmt.Errorf("wire api client: %w", err)
	}

	poller := application.NewTaskPoller(client,
		application.WithPollInterval(cfg.PollInterval),
		application.WithPollMetrics(m),
	)

	return &app{
		cfg:         cfg,
		log:         log,
		metrics:     m,
		client:      client,
		session:     application.NewSessionService(client, creds),
		ingestion:   application.NewIngestionService(client, client, poller),
		documents:   application.NewDocumentService(client, client),
		chat:        application.NewChatService(client),
		search:      application.NewSearchService(client, prefsRepo),
		settings:    application.NewSettingsService(client),
		preferences: application.NewPreferencesService(prefsRepo),
		now:         time.Now,
	}, nil
}

// wireSecretStore picks the token backend. The chain prefers pass and falls
// back to files; without a usable pass install it is just the file store.
func wireSecretStore(ctx context.Context, cfg config.Config) (ports.SecretStore, error) {
	switch cfg.Backend {
	case config.BackendFile:
		return filestore.NewStore(cfg.SecretsDir), nil
	case config.BackendPass:
		return passstore.NewStore(), nil
	case config.BackendBolt:
		return boltstore.NewStore(cfg.BoltPath), nil
	case config.BackendChain:
		pass := passstore.NewStore()
		if !pass.Available(ctx) {
			return filestore.NewStore(cfg.SecretsDir), nil
		}
		store, err := chainstore.NewStore(pass, filestore.NewStore(cfg.SecretsDir))
		if err != nil {
			return nil, fmt.Errorf("wire secret store chain: %w", err)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown credentials backend %q", cfg.Backend)
	}
}

func (a *app) contextWithLogger(ctx context.Context) context.Context {
	if a.log == nil {
		return ctx
	}
	return pslog.ContextWithLogger(ctx, a.log)
}
