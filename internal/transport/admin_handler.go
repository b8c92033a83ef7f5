package transport

import (
	"errors"
	"net/http"

	"amy-custom/internal/auth"
	"amy-custom/internal/middleware"
	"amy-custom/internal/service"
	"amy-custom/internal/store"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// LoginRequest represents the admin login request payload
type LoginRequest struct {
	Secret string `json:"secret" validate:"required"`
}

// LoginResponse represents the admin login response
type LoginResponse struct {
	Token string `json:"token"`
}

// AddArtworkRequest represents the add-listing request payload. Every
// field is optional: omitted fields are defaulted and invalid prices
// coerced instead of rejected.
type AddArtworkRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Year        string  `json:"year"`
	Category    string  `json:"category"`
	Technique   string  `json:"technique"`
	Price       float64 `json:"price"`
	PreviewURL  string  `json:"preview_url"`
	HighResURL  string  `json:"high_res_url"`
	FileType    string  `json:"file_type"`
}

// RemoveArtworkResponse reports whether a removal occurred
type RemoveArtworkResponse struct {
	Removed bool `json:"removed"`
}

// AdminHandler handles the admin panel routes: session login/logout and
// the gated catalog mutations.
type AdminHandler struct {
	gate   auth.Gate
	views  service.ViewService
	logger *zap.Logger
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(gate auth.Gate, views service.ViewService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		gate:   gate,
		views:  views,
		logger: logger,
	}
}

// RegisterRoutes registers all admin routes
func (h *AdminHandler) RegisterRoutes(r chi.Router, adminMiddleware func(http.Handler) http.Handler) {
	r.Route("/api/admin", func(r chi.Router) {
		// Public route
		r.Post("/login", h.Login)

		// Gated routes
		r.Group(func(r chi.Router) {
			r.Use(adminMiddleware)
			r.Post("/logout", h.Logout)
			r.Get("/artworks", h.ListArtworks)
			r.Post("/artworks", h.AddArtwork)
			r.Delete("/artworks/{id}", h.RemoveArtwork)
		})
	})
}

// Login handles the admin session login
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest

	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Login validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, err := h.gate.Login(req.Secret)
	if err != nil {
		if errors.Is(err, auth.ErrDenied) {
			// Expected denial: the session stays logged out.
			h.logger.Debug("Admin login denied")
			middleware.RespondWithError(w, http.StatusUnauthorized, "invalid admin secret")
			return
		}

		h.logger.Error("Admin login failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to login")
		return
	}

	h.logger.Info("Admin logged in")
	middleware.RespondWithJSON(w, http.StatusOK, LoginResponse{Token: token})
}

// Logout ends the admin session. It always succeeds.
func (h *AdminHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token, ok := middleware.GetAdminToken(r.Context())
	if !ok {
		h.logger.Error("Admin token not found in context")
		middleware.RespondWithError(w, http.StatusUnauthorized, "admin session required")
		return
	}

	h.gate.Logout(token)

	h.logger.Info("Admin logged out")
	middleware.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "logged out successfully"})
}

// ListArtworks returns the full listing records for the management view,
// including the high-resolution deliverable URLs.
func (h *AdminHandler) ListArtworks(w http.ResponseWriter, r *http.Request) {
	middleware.RespondWithJSON(w, http.StatusOK, h.views.AdminList())
}

// AddArtwork creates a new listing. A body that fails to decode is the
// only rejection; missing or invalid field values are normalized to
// defaults rather than refused.
func (h *AdminHandler) AddArtwork(w http.ResponseWriter, r *http.Request) {
	var req AddArtworkRequest

	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Add artwork decode failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	art := h.views.AddArtwork(store.AddParams{
		Title:       req.Title,
		Description: req.Description,
		Year:        req.Year,
		Category:    req.Category,
		Technique:   req.Technique,
		Price:       req.Price,
		PreviewURL:  req.PreviewURL,
		HighResURL:  req.HighResURL,
		FileType:    req.FileType,
	})

	h.logger.Info("Artwork added",
		zap.String("artwork_id", art.ID),
		zap.String("title", art.Title),
	)
	middleware.RespondWithJSON(w, http.StatusCreated, art)
}

// RemoveArtwork deletes a listing by id. Removing an unknown id is a
// no-op reported in the response, not an error.
func (h *AdminHandler) RemoveArtwork(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	removed := h.views.RemoveArtwork(id)
	if removed {
		h.logger.Info("Artwork removed", zap.String("artwork_id", id))
	}

	middleware.RespondWithJSON(w, http.StatusOK, RemoveArtworkResponse{Removed: removed})
}
