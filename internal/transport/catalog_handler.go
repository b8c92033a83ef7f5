package transport

import (
	"errors"
	"net/http"

	"amy-custom/internal/middleware"
	"amy-custom/internal/payment"
	"amy-custom/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CheckoutStatusResponse reports the outcome of a hosted-widget render
// attempt for the detail view.
type CheckoutStatusResponse struct {
	Status   string `json:"status"`
	ButtonID string `json:"button_id,omitempty"`
	Message  string `json:"message,omitempty"`
}

// CatalogHandler handles the public storefront routes: catalog home,
// artwork detail and the hosted-widget checkout probe.
type CatalogHandler struct {
	views    service.ViewService
	widgets  *payment.ScriptLoader
	buttonID string
	logger   *zap.Logger
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(views service.ViewService, widgets *payment.ScriptLoader, buttonID string, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		views:    views,
		widgets:  widgets,
		buttonID: buttonID,
		logger:   logger,
	}
}

// RegisterRoutes registers all public catalog routes
func (h *CatalogHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/artworks", func(r chi.Router) {
		r.Get("/", h.Home)
		r.Get("/{id}", h.ArtworkDetail)
		r.Get("/{id}/checkout", h.Checkout)
	})
}

// Home renders the catalog home view: artist profile plus every listing.
func (h *CatalogHandler) Home(w http.ResponseWriter, r *http.Request) {
	middleware.RespondWithJSON(w, http.StatusOK, h.views.Home())
}

// ArtworkDetail renders the detail view for one listing. An unknown id is
// a normal outcome answered with a distinct not-found body; it triggers no
// widget or network side effect.
func (h *CatalogHandler) ArtworkDetail(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	view, err := h.views.ArtworkDetail(id)
	if err != nil {
		if errors.Is(err, service.ErrArtworkNotFound) {
			middleware.RespondWithError(w, http.StatusNotFound, "artwork not found")
			return
		}

		h.logger.Error("Failed to build artwork detail", zap.Error(err), zap.String("artwork_id", id))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to load artwork")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, view)
}

// Checkout runs one render attempt of the hosted payment widget for a
// listing. Success answers "ready"; a load or init failure answers
// "error" with a retry prompt, and no retry happens on its own. The
// attempt is bound to the request context, so a client that navigates
// away cancels it and the late result is dropped.
func (h *CatalogHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if _, err := h.views.ArtworkDetail(id); err != nil {
		if errors.Is(err, service.ErrArtworkNotFound) {
			middleware.RespondWithError(w, http.StatusNotFound, "artwork not found")
			return
		}

		h.logger.Error("Failed to load artwork for checkout", zap.Error(err), zap.String("artwork_id", id))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to load artwork")
		return
	}

	widget := h.widgets.Render(r.Context(), h.buttonID)
	defer widget.Teardown()

	select {
	case <-widget.Done():
	case <-r.Context().Done():
		// Client went away before the widget settled; nothing to render.
		return
	}

	if widget.State() == payment.StateError {
		h.logger.Warn("Payment widget failed to initialize",
			zap.Error(widget.Err()),
			zap.String("artwork_id", id),
		)
		middleware.RespondWithJSON(w, http.StatusBadGateway, CheckoutStatusResponse{
			Status:  payment.StateError.String(),
			Message: "payment widget failed to load, please try again",
		})
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, CheckoutStatusResponse{
		Status:   payment.StateReady.String(),
		ButtonID: widget.ButtonID,
	})
}
