package public

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/wfca-mz/fire-widget/internal/domain"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type FireLister interface {
	ListActive(ctx context.Context, q domain.FireQuery) ([]domain.FireRow, bool, error)
}

type Handler struct {
	logger     *slog.Logger
	fires      FireLister
	mapBaseURL string
	cacheTTL   time.Duration
}

func NewHandler(logger *slog.Logger, fires FireLister, mapBaseURL string, cacheTTL time.Duration) *Handler {
	return &Handler{
		logger:     logger,
		fires:      fires,
		mapBaseURL: mapBaseURL,
		cacheTTL:   cacheTTL,
	}
}

// ActiveFires serves GET /api/v1/active-fires. Bad parameter shapes are
// clamped or stripped, never rejected; the only error a client can see is
// the constant data-source message.
func (h *Handler) ActiveFires(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	q := domain.NormalizeQuery(params.Get("limit"), params.Get("state"), params.Get("search"))

	rows, cached, err := h.fires.ListActive(r.Context(), q)
	if err != nil {
		h.log(r).Error("active fires request failed", slog.Any("error", err))
		h.handleError(w, err)
		return
	}

	ttlSeconds := int(h.cacheTTL.Seconds())
	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", ttlSeconds))
	if cached {
		w.Header().Set("X-Cache", "HIT")
	} else {
		w.Header().Set("X-Cache", "MISS")
	}

	h.writeJSON(w, http.StatusOK, FormatFires(rows, cached, ttlSeconds, h.mapBaseURL))
}
