package http

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/hataden-app/hataden-price-checker/internal/models"
	"github.com/hataden-app/hataden-price-checker/internal/obs"
	"github.com/hataden-app/hataden-price-checker/internal/search"
	"github.com/google/uuid"
)

type Handler struct {
	agg            search.AggregatorService
	metrics        *obs.Metrics
	computeTimeout time.Duration
	staticDir      string
}

func NewHandler(agg search.AggregatorService, m *obs.Metrics, computeTimeout time.Duration, staticDir string) *Handler {
	return &Handler{agg: agg, metrics: m, computeTimeout: computeTimeout, staticDir: staticDir}
}

func (h *Handler) requestID(r *http.Request) string {
	// chi's middleware.RequestID sets X-Request-Id header
	if rid := r.Header.Get("X-Request-Id"); rid != "" {
		return rid
	}
	return uuid.New().String()
}

func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	h.metrics.IncRequests()
	reqID := h.requestID(r)

	q := r.URL.Query()
	req, err := models.NewSearchRequest(q.Get("keyword"), q.Get("sources"))
	if err != nil {
		BadRequest(w, err.Error(), map[string]string{"request_id": reqID})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.computeTimeout)
	defer cancel()

	res, err := h.agg.Search(ctx, req)
	if err != nil {
		InternalError(w, err.Error(), map[string]string{"request_id": reqID})
		return
	}

	WriteJSON(w, http.StatusOK, res)
}

// Index serves the search page shipped with the service.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	page := filepath.Join(h.staticDir, "index.html")
	if _, err := os.Stat(page); err != nil {
		NotFound(w, "search page not found", nil)
		return
	}
	http.ServeFile(w, r, page)
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
