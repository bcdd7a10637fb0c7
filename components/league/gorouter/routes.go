package gorouter

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	router "github.com/goliatone/go-router"
	"github.com/google/uuid"

	league "github.com/movieboyz/league-dashboard/components/league"
	"github.com/movieboyz/league-dashboard/components/league/commands"
	"github.com/movieboyz/league-dashboard/components/league/httpapi"
)

// SessionCookie names the cookie carrying the viewer session id.
const SessionCookie = "league_session"

// SessionResolver extracts the session id from a router.Context.
// Returning an empty string makes Register mint a fresh id and set
// the session cookie on the response.
type SessionResolver func(router.Context) string

// Config wires go-router with league controllers, APIs, and hooks.
type Config[T any] struct {
	Router          router.Router[T]
	Controller      *league.Controller
	API             httpapi.Executor
	Broadcast       *league.BroadcastHook
	SessionResolver SessionResolver
	BasePath        string
	Routes          RouteConfig
}

// RouteConfig customizes the relative paths used for league endpoints.
type RouteConfig struct {
	HTML        string
	Payload     string
	ToggleOwner string
	ClearOwners string
	Movies      string
	Theme       string
	Display     string
	Refresh     string
	WebSocket   string
	Assets      string
}

// Register mounts league routes (HTML, JSON, REST, WebSocket) on a go-router router.
func Register[T any](cfg Config[T]) error {
	if cfg.Router == nil {
		return errors.New("gorouter: router is required")
	}
	if cfg.Controller == nil {
		return errors.New("gorouter: controller is required")
	}
	routes := cfg.routes()
	base := cfg.BasePath
	if base == "" {
		base = "/league"
	}
	resolver := cfg.SessionResolver
	if resolver == nil {
		resolver = defaultSessionResolver
	}

	if routes.Assets != "" {
		cfg.Router.Static(routes.Assets, ".", router.Static{
			FS:     league.StaticAssets(),
			Root:   ".",
			MaxAge: 86400,
		})
	}

	group := cfg.Router.Group(base)

	group.Get(routes.HTML, router.WrapHandler(func(ctx router.Context) error {
		sessionID := ensureSession(ctx, resolver)
		var buf bytes.Buffer
		if err := cfg.Controller.RenderPage(ctx.Context(), sessionID, &buf); err != nil {
			return respondError(ctx, http.StatusInternalServerError, err)
		}
		ctx.SetHeader("Content-Type", "text/html; charset=utf-8")
		return ctx.Send(buf.Bytes())
	}))

	group.Get(routes.Payload, router.WrapHandler(func(ctx router.Context) error {
		sessionID := ensureSession(ctx, resolver)
		view, err := cfg.Controller.Payload(ctx.Context(), sessionID)
		if err != nil {
			return respondError(ctx, http.StatusInternalServerError, err)
		}
		return ctx.JSON(http.StatusOK, view)
	}))

	if cfg.API != nil {
		registerAPI(group, cfg.API, resolver, routes)
	}

	if cfg.Broadcast != nil {
		registerWebSocket(group, cfg.Broadcast, routes.WebSocket)
	}

	return nil
}

func registerAPI[T any](r router.Router[T], api httpapi.Executor, resolver SessionResolver, routes RouteConfig) {
	r.Post(routes.ToggleOwner, router.WrapHandler(func(ctx router.Context) error {
		var payload commands.ToggleOwnerInput
		if err := json.Unmarshal(ctx.Body(), &payload); err != nil {
			return respondError(ctx, http.StatusBadRequest, err)
		}
		payload.SessionID = ensureSession(ctx, resolver)
		if err := api.ToggleOwner(ctx.Context(), payload); err != nil {
			return respondError(ctx, http.StatusInternalServerError, err)
		}
		return ctx.JSON(http.StatusOK, map[string]string{"status": "toggled"})
	}))

	r.Post(routes.ClearOwners, router.WrapHandler(func(ctx router.Context) error {
		input := commands.ClearOwnersInput{SessionID: ensureSession(ctx, resolver)}
		if err := api.ClearOwners(ctx.Context(), input); err != nil {
			return respondError(ctx, http.StatusInternalServerError, err)
		}
		return ctx.JSON(http.StatusOK, map[string]string{"status": "cleared"})
	}))

	r.Post(routes.Movies, router.WrapHandler(func(ctx router.Context) error {
		var payload commands.SelectMoviesInput
		if err := json.Unmarshal(ctx.Body(), &payload); err != nil {
			return respondError(ctx, http.StatusBadRequest, err)
		}
		payload.SessionID = ensureSession(ctx, resolver)
		if err := api.SelectMovies(ctx.Context(), payload); err != nil {
			return respondError(ctx, http.StatusInternalServerError, err)
		}
		return ctx.JSON(http.StatusOK, map[string]string{"status": "selected"})
	}))

	r.Post(routes.Theme, router.WrapHandler(func(ctx router.Context) error {
		var payload commands.SetThemeInput
		if err := json.Unmarshal(ctx.Body(), &payload); err != nil {
			return respondError(ctx, http.StatusBadRequest, err)
		}
		payload.SessionID = ensureSession(ctx, resolver)
		if err := api.SetTheme(ctx.Context(), payload); err != nil {
			return respondError(ctx, http.StatusInternalServerError, err)
		}
		return ctx.JSON(http.StatusOK, map[string]string{"status": "saved"})
	}))

	r.Post(routes.Display, router.WrapHandler(func(ctx router.Context) error {
		var payload commands.SetDisplayInput
		if err := json.Unmarshal(ctx.Body(), &payload); err != nil {
			return respondError(ctx, http.StatusBadRequest, err)
		}
		payload.SessionID = ensureSession(ctx, resolver)
		if err := api.SetDisplay(ctx.Context(), payload); err != nil {
			return respondError(ctx, http.StatusInternalServerError, err)
		}
		return ctx.JSON(http.StatusOK, map[string]string{"status": "saved"})
	}))

	r.Post(routes.Refresh, router.WrapHandler(func(ctx router.Context) error {
		if err := api.Refresh(ctx.Context()); err != nil {
			return respondError(ctx, http.StatusBadGateway, err)
		}
		return ctx.JSON(http.StatusAccepted, map[string]string{"status": "queued"})
	}))
}

func registerWebSocket[T any](r router.Router[T], hook *league.BroadcastHook, path string) {
	cfg := router.DefaultWebSocketConfig()
	r.WebSocket(path, cfg, func(ws router.WebSocketContext) error {
		events, cancel := hook.Subscribe()
		defer cancel()
		for {
			select {
			case event, ok := <-events:
				if !ok {
					return nil
				}
				if err := ws.WriteJSON(event); err != nil {
					return err
				}
			case <-ws.Context().Done():
				return ws.Close()
			}
		}
	})
}

func ensureSession(ctx router.Context, resolver SessionResolver) string {
	if id := resolver(ctx); id != "" {
		return id
	}
	id := uuid.NewString()
	ctx.SetHeader("Set-Cookie", SessionCookie+"="+id+"; Path=/; HttpOnly; SameSite=Lax")
	return id
}

func defaultSessionResolver(ctx router.Context) string {
	if v, ok := ctx.Locals("session_id").(string); ok && v != "" {
		return v
	}
	if v := strings.TrimSpace(ctx.Query("session")); v != "" {
		return v
	}
	return sessionFromCookie(ctx.Header("Cookie"))
}

func sessionFromCookie(header string) string {
	for _, part := range strings.Split(header, ";") {
		part = strings.TrimSpace(part)
		if value, ok := strings.CutPrefix(part, SessionCookie+"="); ok {
			return value
		}
	}
	return ""
}

func respondError(ctx router.Context, status int, err error) error {
	return ctx.JSON(status, map[string]string{"error": err.Error()})
}

func (cfg Config[T]) routes() RouteConfig {
	return defaultRouteConfig(cfg.Routes)
}

func defaultRouteConfig(routes RouteConfig) RouteConfig {
	if routes.HTML == "" {
		routes.HTML = "/"
	}
	if routes.Payload == "" {
		routes.Payload = "/api/dashboard"
	}
	if routes.ToggleOwner == "" {
		routes.ToggleOwner = "/api/filters/owners/toggle"
	}
	if routes.ClearOwners == "" {
		routes.ClearOwners = "/api/filters/owners/clear"
	}
	if routes.Movies == "" {
		routes.Movies = "/api/filters/movies"
	}
	if routes.Theme == "" {
		routes.Theme = "/api/theme"
	}
	if routes.Display == "" {
		routes.Display = "/api/display"
	}
	if routes.Refresh == "" {
		routes.Refresh = "/api/refresh"
	}
	if routes.WebSocket == "" {
		routes.WebSocket = "/ws"
	}
	if routes.Assets == "" {
		routes.Assets = "/static"
	}
	return routes
}
