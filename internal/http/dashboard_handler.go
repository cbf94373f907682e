package http

import (
	"net/http"
	"time"

	"dns-insights/internal/dashboards"
	"dns-insights/internal/models"
)

type AppHttpHandler interface {
	Handle(w http.ResponseWriter, r *http.Request) error
}

// StatsResponse carries the summary statistics of the current snapshot.
type StatsResponse struct {
	ReloadID string          `json:"reloadId"`
	LoadedAt time.Time       `json:"loadedAt"`
	Timezone string          `json:"timezone"`
	Summary  *models.Summary `json:"summary"`
}

// HourlyResponse carries the hourly pre-aggregation of the current snapshot.
type HourlyResponse struct {
	ReloadID string                    `json:"reloadId"`
	Hourly   *models.HourlyAggregation `json:"hourly"`
}

// PlotsResponse carries the plot-ready tables of the current snapshot.
type PlotsResponse struct {
	ReloadID string           `json:"reloadId"`
	Plots    *models.PlotData `json:"plots"`
}

// ReloadResponse acknowledges a completed reload run.
type ReloadResponse struct {
	ReloadID string    `json:"reloadId"`
	LoadedAt time.Time `json:"loadedAt"`
	Rows     int       `json:"rows"`
}

type statsHandler struct {
	reloadService dashboards.ReloadService
}

func NewStatsHandler(reloadService dashboards.ReloadService) AppHttpHandler {
	return &statsHandler{reloadService: reloadService}
}

// Handle processes GET /v1/stats requests.
func (h *statsHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	snapshot, err := h.reloadService.Current(r.Context())
	if err != nil {
		return err
	}

	return writeJSONResponse(w, http.StatusOK, StatsResponse{
		ReloadID: snapshot.ReloadID,
		LoadedAt: snapshot.LoadedAt,
		Timezone: snapshot.Timezone,
		Summary:  snapshot.Summary,
	})
}

type hourlyHandler struct {
	reloadService dashboards.ReloadService
}

func NewHourlyHandler(reloadService dashboards.ReloadService) AppHttpHandler {
	return &hourlyHandler{reloadService: reloadService}
}

// Handle processes GET /v1/hourly requests.
func (h *hourlyHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	snapshot, err := h.reloadService.Current(r.Context())
	if err != nil {
		return err
	}

	return writeJSONResponse(w, http.StatusOK, HourlyResponse{
		ReloadID: snapshot.ReloadID,
		Hourly:   snapshot.Hourly,
	})
}

type plotsHandler struct {
	reloadService dashboards.ReloadService
}

func NewPlotsHandler(reloadService dashboards.ReloadService) AppHttpHandler {
	return &plotsHandler{reloadService: reloadService}
}

// Handle processes GET /v1/plots requests.
func (h *plotsHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	snapshot, err := h.reloadService.Current(r.Context())
	if err != nil {
		return err
	}

	return writeJSONResponse(w, http.StatusOK, PlotsResponse{
		ReloadID: snapshot.ReloadID,
		Plots:    snapshot.Plots,
	})
}

type reloadHandler struct {
	reloadService dashboards.ReloadService
}

func NewReloadHandler(reloadService dashboards.ReloadService) AppHttpHandler {
	return &reloadHandler{reloadService: reloadService}
}

// Handle processes POST /v1/reload requests. The reload runs synchronously;
// the previous snapshot keeps serving reads until it completes.
func (h *reloadHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	snapshot, err := h.reloadService.Reload(r.Context())
	if err != nil {
		return err
	}

	return writeJSONResponse(w, http.StatusOK, ReloadResponse{
		ReloadID: snapshot.ReloadID,
		LoadedAt: snapshot.LoadedAt,
		Rows:     snapshot.Summary.NDataPoints,
	})
}
