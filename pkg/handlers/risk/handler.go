package risk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/isteps/burnout-risk/pkg/adapters"
	"github.com/isteps/burnout-risk/pkg/models/api"
	"github.com/isteps/burnout-risk/pkg/services/activity"
	"github.com/isteps/burnout-risk/pkg/services/ingest"
	"github.com/isteps/burnout-risk/pkg/services/insights"
	"github.com/rs/zerolog"
)

const (
	dateLayout = "2006-01-02"

	userParam = "user"
)

var errBadRange = errors.New("'from' must not be after 'to'")

type Handler struct {
	svc insights.Service
	loc *time.Location
}

// NewHandler builds the risk handlers. loc is the calendar used to read the
// from/to query params and must match the engine's.
func NewHandler(svc insights.Service, loc *time.Location) *Handler {
	if loc == nil {
		loc = time.Local
	}
	return &Handler{
		svc: svc,
		loc: loc,
	}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, api.HealthResponse{Status: "ok"})
}

func (h *Handler) IngestSteps(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	user := chi.URLParam(r, userParam)

	records, err := ingest.Parse(r.Body, ingest.FormatJSON, h.loc)
	if err != nil {
		logger.Debug().Err(err).Str("user", user).Msg("rejected step records")
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	accepted, err := h.svc.Ingest(ctx, user, records)
	if err != nil {
		logger.Error().
			Err(err).
			Str("user", user).
			Msg("failed to ingest step records")
		writeError(w, r, http.StatusInternalServerError, "failed to store step records")
		return
	}

	writeJSON(w, r, http.StatusCreated, api.IngestResponse{Accepted: accepted, Status: "stored"})
}

func (h *Handler) GetRisk(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := chi.URLParam(r, userParam)
	start, end, ok := h.period(w, r)
	if !ok {
		return
	}

	result, err := h.svc.Risk(ctx, user, start, end)
	if err != nil {
		h.internalError(w, r, err, "failed to compute risk")
		return
	}

	writeJSON(w, r, http.StatusOK, adapters.MapRiskResultDomainToApi(result))
}

func (h *Handler) GetWeekly(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := chi.URLParam(r, userParam)
	start, end, ok := h.period(w, r)
	if !ok {
		return
	}

	summary, err := h.svc.Weekly(ctx, user, start, end)
	if err != nil {
		h.internalError(w, r, err, "failed to compute weekly summary")
		return
	}

	writeJSON(w, r, http.StatusOK, adapters.MapWeeklySummaryDomainToApi(summary))
}

func (h *Handler) GetSeries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := chi.URLParam(r, userParam)
	start, end, ok := h.period(w, r)
	if !ok {
		return
	}

	series, err := h.svc.Series(ctx, user, start, end)
	if err != nil {
		h.internalError(w, r, err, "failed to build risk series")
		return
	}

	writeJSON(w, r, http.StatusOK, adapters.MapRiskSeriesDomainToApi(series))
}

func (h *Handler) GetTrend(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := chi.URLParam(r, userParam)
	start, end, ok := h.period(w, r)
	if !ok {
		return
	}

	trend, err := h.svc.Trend(ctx, user, start, end)
	if err != nil {
		h.internalError(w, r, err, "failed to build trend")
		return
	}

	writeJSON(w, r, http.StatusOK, adapters.MapTrendDomainToApi(trend))
}

func (h *Handler) GetActivity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := chi.URLParam(r, userParam)
	start, end, ok := h.period(w, r)
	if !ok {
		return
	}

	summary, err := h.svc.Activity(ctx, user, start, end)
	if err != nil {
		h.internalError(w, r, err, "failed to summarize activity")
		return
	}

	writeJSON(w, r, http.StatusOK, adapters.MapActivitySummaryDomainToApi(summary, activity.ShareText(summary)))
}

func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := chi.URLParam(r, userParam)

	stats, err := h.svc.Stats(ctx, user)
	if err != nil {
		h.internalError(w, r, err, "failed to read record stats")
		return
	}

	writeJSON(w, r, http.StatusOK, adapters.MapRecordStatsDomainToApi(stats))
}

func (h *Handler) DeleteSteps(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := chi.URLParam(r, userParam)

	deleted, err := h.svc.Delete(ctx, user)
	if err != nil {
		h.internalError(w, r, err, "failed to delete step records")
		return
	}

	writeJSON(w, r, http.StatusOK, api.DeleteResponse{Deleted: deleted})
}

// period reads the optional from/to params. Both are inclusive calendar days,
// so the returned end is the start of the day after 'to'.
func (h *Handler) period(w http.ResponseWriter, r *http.Request) (time.Time, time.Time, bool) {
	start, err := h.parseDateParam(r, "from")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return time.Time{}, time.Time{}, false
	}

	end, err := h.parseDateParam(r, "to")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return time.Time{}, time.Time{}, false
	}
	if !end.IsZero() {
		end = end.AddDate(0, 0, 1)
	}

	if !start.IsZero() && !end.IsZero() && !start.Before(end) {
		writeError(w, r, http.StatusBadRequest, errBadRange.Error())
		return time.Time{}, time.Time{}, false
	}

	return start, end, true
}

func (h *Handler) parseDateParam(r *http.Request, name string) (time.Time, error) {
	value := r.URL.Query().Get(name)
	if value == "" {
		return time.Time{}, nil
	}

	t, err := time.ParseInLocation(dateLayout, value, h.loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid '%s' date format. Expected format: YYYY-MM-DD", name)
	}
	return t, nil
}

func (h *Handler) internalError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	zerolog.Ctx(r.Context()).Error().
		Err(err).
		Str("user", chi.URLParam(r, userParam)).
		Msg(msg)
	writeError(w, r, http.StatusInternalServerError, msg)
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, api.ErrorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		zerolog.Ctx(r.Context()).Error().
			Err(err).
			Msg("failed to encode response")
	}
}
