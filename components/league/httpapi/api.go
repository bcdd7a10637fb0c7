package httpapi

import (
	"encoding/json"
	"net/http"

	gocommand "github.com/goliatone/go-command"

	league "github.com/movieboyz/league-dashboard/components/league"
	"github.com/movieboyz/league-dashboard/components/league/commands"
	"github.com/movieboyz/league-dashboard/components/league/queries"
)

// Handlers exposes HTTP endpoints backed by shared commands and queries.
type Handlers struct {
	ToggleOwner  gocommand.Commander[commands.ToggleOwnerInput]
	ClearOwners  gocommand.Commander[commands.ClearOwnersInput]
	SelectMovies gocommand.Commander[commands.SelectMoviesInput]
	SetTheme     gocommand.Commander[commands.SetThemeInput]
	SetDisplay   gocommand.Commander[commands.SetDisplayInput]
	Refresh      gocommand.Commander[commands.RefreshInput]
	Dashboard    gocommand.Querier[queries.DashboardInput, *league.DashboardView]
}

func (h *Handlers) HandleDashboard(w http.ResponseWriter, r *http.Request, sessionID string) {
	view, err := h.Dashboard.Query(r.Context(), queries.DashboardInput{SessionID: sessionID})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(view); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handlers) HandleToggleOwner(w http.ResponseWriter, r *http.Request, sessionID string) {
	var payload commands.ToggleOwnerInput
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	payload.SessionID = sessionID
	if err := h.ToggleOwner.Execute(r.Context(), payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handlers) HandleClearOwners(w http.ResponseWriter, r *http.Request, sessionID string) {
	input := commands.ClearOwnersInput{SessionID: sessionID}
	if err := h.ClearOwners.Execute(r.Context(), input); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handlers) HandleSelectMovies(w http.ResponseWriter, r *http.Request, sessionID string) {
	var payload commands.SelectMoviesInput
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	payload.SessionID = sessionID
	if err := h.SelectMovies.Execute(r.Context(), payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handlers) HandleSetTheme(w http.ResponseWriter, r *http.Request, sessionID string) {
	var payload commands.SetThemeInput
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	payload.SessionID = sessionID
	if err := h.SetTheme.Execute(r.Context(), payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handlers) HandleSetDisplay(w http.ResponseWriter, r *http.Request, sessionID string) {
	var payload commands.SetDisplayInput
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	payload.SessionID = sessionID
	if err := h.SetDisplay.Execute(r.Context(), payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handlers) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	if err := h.Refresh.Execute(r.Context(), commands.RefreshInput{}); err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}
