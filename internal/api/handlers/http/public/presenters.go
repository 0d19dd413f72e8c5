package public

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/goccy/go-json"

	"github.com/wfca-mz/fire-widget/internal/domain"
	"github.com/wfca-mz/fire-widget/pkg/e"
)

// Client-visible error strings are constants; backend detail stays in logs.
const (
	msgDataSourceError = "Unable to fetch fire data"
	msgInternalError   = "Internal server error"
)

// FormatFires maps raw query rows into the public response envelope. The
// mapping is pure apart from the generated_at timestamp.
func FormatFires(rows []domain.FireRow, cached bool, ttlSeconds int, mapBaseURL string) domain.FireList {
	fires := make([]domain.Fire, 0, len(rows))
	for _, row := range rows {
		zoom := row.SuggestedZoom
		lng := formatCoord(row.CenterLng)
		lat := formatCoord(row.CenterLat)

		fires = append(fires, domain.Fire{
			ID:           row.GID,
			Name:         row.Name,
			IrwinID:      row.IrwinID,
			Updated:      row.ModifiedAt,
			Acres:        intPtrNonZero(row.Acres),
			State:        row.State,
			County:       row.County,
			ContainedPct: intPtrNonZero(row.PercentContained),
			MapURL:       mapBaseURL + "/?lng=" + lng + "&lat=" + lat + "&zoom=" + strconv.Itoa(zoom),
			Coords: domain.Coords{
				Lng:  row.CenterLng,
				Lat:  row.CenterLat,
				Zoom: zoom,
			},
		})
	}

	return domain.FireList{
		Meta: domain.Meta{
			GeneratedAt: time.Now().UTC().Format(time.RFC3339),
			Count:       len(fires),
			Cached:      cached,
			CacheTTL:    ttlSeconds,
		},
		Fires: fires,
	}
}

// intPtrNonZero truncates a fractional source value to an integer; absent
// and zero values both read as null, matching the original endpoint.
func intPtrNonZero(v *float64) *int {
	if v == nil || *v == 0 {
		return nil
	}
	n := int(*v)
	return &n
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func (h *Handler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, e.ErrInternal),
		errors.Is(err, e.ErrDeadline),
		errors.Is(err, e.ErrCanceled),
		errors.Is(err, e.ErrUnavailable),
		errors.Is(err, e.ErrNotFound):
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": msgDataSourceError})
	default:
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": msgInternalError})
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("json encode failed", slog.Any("error", err))
	}
}
