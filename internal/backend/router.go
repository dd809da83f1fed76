package backend

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/TemirB/bookstore-client/internal/domain"
	"github.com/TemirB/bookstore-client/internal/observability"
)

type Handler struct {
	inventory *Inventory
	logger    *zap.Logger
}

func NewHandler(inv *Inventory, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		inventory: inv,
		logger:    logger,
	}
}

func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	topic := chi.URLParam(r, "topic")
	if topic == "" {
		http.Error(w, "missing topic", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, h.inventory.Search(topic))
}

func (h *Handler) Info(w http.ResponseWriter, r *http.Request) {
	item := chi.URLParam(r, "item")
	book, ok := h.inventory.Info(item)
	if !ok {
		http.Error(w, "Book not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, book)
}

func (h *Handler) Purchase(w http.ResponseWriter, r *http.Request) {
	item := chi.URLParam(r, "item")
	book, err := h.inventory.Purchase(item)
	switch {
	case errors.Is(err, ErrUnknownItem):
		http.Error(w, "Book not found", http.StatusNotFound)
		return
	case errors.Is(err, ErrSoldOut):
		http.Error(w, "The item is out of stock.", http.StatusConflict)
		return
	case err != nil:
		h.logger.Error("purchase failed", zap.String("item_number", item), zap.Error(err))
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	h.logger.Info("book sold",
		zap.String("item_number", item),
		zap.Int("left", book.Quantity),
	)
	writeJSON(w, http.StatusOK, domain.PurchaseResult{Message: fmt.Sprintf("Bought book %s", book.Title)})
}

func newRouter(replica string, logger *zap.Logger, metrics observability.Metrics) chi.Router {
	router := chi.NewRouter()

	router.Use(
		middleware.RequestID,
		RequestLogger(logger, replica),
		ServerTimingApp(metrics),
		middleware.Recoverer,
	)

	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return router
}

// NewCatalogRouter serves the catalog service contract.
func NewCatalogRouter(h *Handler, replica string, metrics observability.Metrics) http.Handler {
	router := newRouter(replica, h.logger, metrics)
	router.Get("/search/{topic}", h.Search)
	router.Get("/info/{item}", h.Info)
	return router
}

// NewOrderRouter serves the order service contract.
func NewOrderRouter(h *Handler, replica string, metrics observability.Metrics) http.Handler {
	router := newRouter(replica, h.logger, metrics)
	router.Post("/purchase/{item}", h.Purchase)
	return router
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
