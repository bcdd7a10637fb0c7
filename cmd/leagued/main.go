package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/gofiber/fiber/v2"
	router "github.com/goliatone/go-router"
	"gopkg.in/yaml.v3"

	league "github.com/movieboyz/league-dashboard/components/league"
	"github.com/movieboyz/league-dashboard/components/league/commands"
	leaguerouter "github.com/movieboyz/league-dashboard/components/league/gorouter"
	"github.com/movieboyz/league-dashboard/components/league/httpapi"
	"github.com/movieboyz/league-dashboard/components/league/queries"
	"github.com/movieboyz/league-dashboard/pkg/fetch"
	leaguepkg "github.com/movieboyz/league-dashboard/pkg/league"
)

type cli struct {
	Serve serveCmd `cmd:"" default:"withargs" help:"Serve the league dashboard."`
}

type serveCmd struct {
	Config          string        `type:"path" env:"LEAGUE_CONFIG" help:"Optional YAML config file; flags override it."`
	Addr            string        `env:"LEAGUE_ADDR" help:"Listen address for the dashboard server."`
	EventsAddr      string        `env:"LEAGUE_EVENTS_ADDR" help:"Optional second listen address serving the JSON API plus SSE and WebSocket refresh streams."`
	SnapshotURL     string        `env:"LEAGUE_SNAPSHOT_URL" help:"URL of the published snapshot JSON."`
	SnapshotFile    string        `type:"path" env:"LEAGUE_SNAPSHOT_FILE" help:"Local snapshot file; overrides --snapshot-url."`
	CommitsURL      string        `env:"LEAGUE_COMMITS_URL" help:"Commits listing URL used for the footer site-updated line."`
	BasePath        string        `env:"LEAGUE_BASE_PATH" help:"Mount path for dashboard routes."`
	AssetsHost      string        `env:"LEAGUE_ASSETS_HOST" help:"Host serving the echarts assets."`
	RefreshInterval time.Duration `env:"LEAGUE_REFRESH_INTERVAL" help:"Interval between background snapshot refreshes; zero disables them."`
	CacheTTL        time.Duration `env:"LEAGUE_CHART_CACHE_TTL" help:"TTL for memoized chart renders."`
}

type fileConfig struct {
	Addr            string        `yaml:"addr"`
	EventsAddr      string        `yaml:"events_addr"`
	SnapshotURL     string        `yaml:"snapshot_url"`
	SnapshotFile    string        `yaml:"snapshot_file"`
	CommitsURL      string        `yaml:"commits_url"`
	BasePath        string        `yaml:"base_path"`
	AssetsHost      string        `yaml:"assets_host"`
	RefreshInterval time.Duration `yaml:"refresh_interval"`
	CacheTTL        time.Duration `yaml:"cache_ttl"`
}

func main() {
	ctx := kong.Parse(&cli{},
		kong.Description("Fantasy movie league dashboard server."),
		kong.UsageOnError(),
	)
	err := ctx.Run(context.Background())
	ctx.FatalIfErrorf(err)
}

func (cmd *serveCmd) Run(ctx context.Context) error {
	cfg, err := cmd.resolve()
	if err != nil {
		return err
	}

	source, err := buildSource(cfg)
	if err != nil {
		return err
	}

	var commitSource league.CommitSource
	if cfg.CommitsURL != "" {
		commitSource, err = fetch.NewCommitClient(fetch.CommitConfig{CommitsURL: cfg.CommitsURL})
		if err != nil {
			return err
		}
	}

	pageRenderer, err := league.NewTemplateRenderer()
	if err != nil {
		return fmt.Errorf("leagued: template renderer: %w", err)
	}

	chartRenderer := league.NewChartRenderer(
		league.WithRenderCache(league.NewChartCache(cfg.CacheTTL)),
		league.WithAssetsHost(cfg.AssetsHost),
	)

	hook := league.NewBroadcastHook()
	telemetry := league.LogTelemetry{}

	service := leaguepkg.NewService(league.Options{
		Source:      source,
		Commits:     commitSource,
		Validator:   league.NewJSONSchemaValidator(),
		Renderer:    chartRenderer,
		Preferences: league.NewInMemoryPreferenceStore(),
		RefreshHook: hook,
		Telemetry:   telemetry,
	})

	if err := service.LoadSnapshot(ctx); err != nil {
		return fmt.Errorf("leagued: initial snapshot: %w", err)
	}

	controller := league.NewController(league.ControllerOptions{
		Service:  service,
		Renderer: pageRenderer,
	})

	executor := &httpapi.CommandExecutor{
		ToggleOwnerCommander:  commands.NewToggleOwnerCommand(service, telemetry),
		ClearOwnersCommander:  commands.NewClearOwnersCommand(service, telemetry),
		SelectMoviesCommander: commands.NewSelectMoviesCommand(service, telemetry),
		SetThemeCommander:     commands.NewSetThemeCommand(service, telemetry),
		SetDisplayCommander:   commands.NewSetDisplayCommand(service, telemetry),
		RefreshCommander:      commands.NewRefreshCommand(service, telemetry),
		DashboardQuerier:      queries.NewDashboardQuery(service),
	}

	server := router.NewFiberAdapter()
	if err := leaguerouter.Register(leaguerouter.Config[*fiber.App]{
		Router:     server.Router(),
		Controller: controller,
		API:        executor,
		Broadcast:  hook,
		BasePath:   cfg.BasePath,
	}); err != nil {
		return fmt.Errorf("leagued: register routes: %w", err)
	}

	if cfg.RefreshInterval > 0 {
		go refreshLoop(ctx, service, cfg.RefreshInterval)
	}

	if cfg.EventsAddr != "" {
		go serveEvents(cfg.EventsAddr, executor, hook)
	}

	log.Printf("league dashboard ready on %s%s", cfg.Addr, cfg.BasePath)
	return server.Serve(cfg.Addr)
}

func (cmd *serveCmd) resolve() (fileConfig, error) {
	cfg := fileConfig{
		Addr:            ":8080",
		BasePath:        "/league",
		RefreshInterval: time.Hour,
		CacheTTL:        5 * time.Minute,
	}
	if cmd.Config != "" {
		data, err := os.ReadFile(cmd.Config)
		if err != nil {
			return cfg, fmt.Errorf("leagued: read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("leagued: parse config: %w", err)
		}
	}
	if cmd.Addr != "" {
		cfg.Addr = cmd.Addr
	}
	if cmd.EventsAddr != "" {
		cfg.EventsAddr = cmd.EventsAddr
	}
	if cmd.SnapshotURL != "" {
		cfg.SnapshotURL = cmd.SnapshotURL
	}
	if cmd.SnapshotFile != "" {
		cfg.SnapshotFile = cmd.SnapshotFile
	}
	if cmd.CommitsURL != "" {
		cfg.CommitsURL = cmd.CommitsURL
	}
	if cmd.BasePath != "" {
		cfg.BasePath = cmd.BasePath
	}
	if cmd.AssetsHost != "" {
		cfg.AssetsHost = cmd.AssetsHost
	}
	if cmd.RefreshInterval > 0 {
		cfg.RefreshInterval = cmd.RefreshInterval
	}
	if cmd.CacheTTL > 0 {
		cfg.CacheTTL = cmd.CacheTTL
	}
	if cfg.SnapshotURL == "" && cfg.SnapshotFile == "" {
		return cfg, fmt.Errorf("leagued: either snapshot_url or snapshot_file is required")
	}
	return cfg, nil
}

func buildSource(cfg fileConfig) (league.SnapshotSource, error) {
	if cfg.SnapshotFile != "" {
		return &fetch.FileSource{Path: cfg.SnapshotFile}, nil
	}
	return fetch.NewClient(fetch.Config{SnapshotURL: cfg.SnapshotURL})
}

func refreshLoop(ctx context.Context, service *league.Service, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if err := service.Refresh(ctx); err != nil {
				log.Printf("leagued: background refresh failed: %v", err)
			}
		case <-ctx.Done():
			return
		}
	}
}

// serveEvents exposes the JSON API plus the SSE and raw WebSocket refresh
// streams on a plain net/http listener, for deployments that cannot speak
// to the fiber app directly.
func serveEvents(addr string, executor *httpapi.CommandExecutor, hook *league.BroadcastHook) {
	api := &httpapi.Handlers{
		ToggleOwner:  executor.ToggleOwnerCommander,
		ClearOwners:  executor.ClearOwnersCommander,
		SelectMovies: executor.SelectMoviesCommander,
		SetTheme:     executor.SetThemeCommander,
		SetDisplay:   executor.SetDisplayCommander,
		Refresh:      executor.RefreshCommander,
		Dashboard:    executor.DashboardQuerier,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/dashboard", func(w http.ResponseWriter, r *http.Request) {
		api.HandleDashboard(w, r, sessionID(r))
	})
	mux.HandleFunc("/api/filters/owners/toggle", func(w http.ResponseWriter, r *http.Request) {
		api.HandleToggleOwner(w, r, sessionID(r))
	})
	mux.HandleFunc("/api/filters/owners/clear", func(w http.ResponseWriter, r *http.Request) {
		api.HandleClearOwners(w, r, sessionID(r))
	})
	mux.HandleFunc("/api/filters/movies", func(w http.ResponseWriter, r *http.Request) {
		api.HandleSelectMovies(w, r, sessionID(r))
	})
	mux.HandleFunc("/api/theme", func(w http.ResponseWriter, r *http.Request) {
		api.HandleSetTheme(w, r, sessionID(r))
	})
	mux.HandleFunc("/api/display", func(w http.ResponseWriter, r *http.Request) {
		api.HandleSetDisplay(w, r, sessionID(r))
	})
	mux.HandleFunc("/api/refresh", api.HandleRefresh)
	mux.HandleFunc("/events", hook.ServeSSE)
	mux.HandleFunc("/ws", hook.ServeWebSocket)

	log.Printf("league events listener ready on %s", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Printf("leagued: events listener: %v", err)
	}
}

func sessionID(r *http.Request) string {
	if cookie, err := r.Cookie(leaguerouter.SessionCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	return r.URL.Query().Get("session")
}
