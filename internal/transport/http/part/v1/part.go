package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/grupo99/catalog-service/internal/model"
	"github.com/grupo99/catalog-service/internal/transport/http/api"
	"github.com/grupo99/catalog-service/internal/transport/http/middleware"
)

type PartService interface {
	Create(ctx context.Context, params model.CreatePartParams) (*model.Part, error)
	ByID(ctx context.Context, id string) (*model.Part, error)
	All(ctx context.Context) ([]*model.Part, error)
	Active(ctx context.Context) ([]*model.Part, error)
	Update(ctx context.Context, id string, params model.UpdatePartParams) (*model.Part, error)
	Deactivate(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	DecrementStock(ctx context.Context, id string, amount int64) error
	IncrementStock(ctx context.Context, id string, amount int64) error
	ByCategory(ctx context.Context, category string) ([]*model.Part, error)
	ByBrand(ctx context.Context, brand string) ([]*model.Part, error)
	ByManufacturerCode(ctx context.Context, code string) (*model.Part, error)
	LowStock(ctx context.Context, threshold int64) ([]*model.Part, error)
}

type handler struct {
	svc      PartService
	validate *validator.Validate
}

func NewPartHandler(service PartService) *handler {
	return &handler{
		svc:      service,
		validate: api.NewValidator(),
	}
}

// Routes wires the parts surface. Role checks run in middleware; a request
// that fails them never reaches the service layer.
func (h *handler) Routes(auth *middleware.Auth) chi.Router {
	staff := auth.RequireRoles(middleware.RoleAdmin, middleware.RoleMechanic)
	admin := auth.RequireRoles(middleware.RoleAdmin)
	anyRole := auth.RequireRoles(
		middleware.RoleAdmin,
		middleware.RoleMechanic,
		middleware.RoleCustomer,
	)

	r := chi.NewRouter()
	r.Use(auth.Authenticate)

	r.With(staff).Post("/", h.Create)
	r.With(anyRole).Get("/", h.List)
	r.With(anyRole).Get("/active", h.ListActive)
	r.With(staff).Get("/low-stock", h.LowStock)
	r.With(anyRole).Get("/code/{code}", h.ByManufacturerCode)
	r.With(anyRole).Get("/category/{category}", h.ByCategory)
	r.With(anyRole).Get("/brand/{brand}", h.ByBrand)
	r.With(anyRole).Get("/{id}", h.ByID)
	r.With(staff).Put("/{id}", h.Update)
	r.With(admin).Patch("/{id}/deactivate", h.Deactivate)
	r.With(admin).Delete("/{id}", h.Delete)
	r.With(staff).Patch("/{id}/decrement", h.Decrement)
	r.With(staff).Patch("/{id}/increment", h.Increment)

	return r
}

func (h *handler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeRequest(w, r)
	if !ok {
		return
	}

	part, err := h.svc.Create(r.Context(), requestToCreateParams(req))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	api.WriteJSON(w, r, http.StatusCreated, PartToResponse(part))
}

func (h *handler) List(w http.ResponseWriter, r *http.Request) {
	parts, err := h.svc.All(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	api.WriteJSON(w, r, http.StatusOK, PartsToResponse(parts))
}

func (h *handler) ListActive(w http.ResponseWriter, r *http.Request) {
	parts, err := h.svc.Active(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	api.WriteJSON(w, r, http.StatusOK, PartsToResponse(parts))
}

func (h *handler) ByID(w http.ResponseWriter, r *http.Request) {
	part, err := h.svc.ByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	api.WriteJSON(w, r, http.StatusOK, PartToResponse(part))
}

func (h *handler) Update(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeRequest(w, r)
	if !ok {
		return
	}

	part, err := h.svc.Update(r.Context(), chi.URLParam(r, "id"), requestToUpdateParams(req))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	api.WriteJSON(w, r, http.StatusOK, PartToResponse(part))
}

func (h *handler) Deactivate(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Deactivate(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) Decrement(w http.ResponseWriter, r *http.Request) {
	amount, ok := amountParam(w, r)
	if !ok {
		return
	}

	if err := h.svc.DecrementStock(r.Context(), chi.URLParam(r, "id"), amount); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) Increment(w http.ResponseWriter, r *http.Request) {
	amount, ok := amountParam(w, r)
	if !ok {
		return
	}

	if err := h.svc.IncrementStock(r.Context(), chi.URLParam(r, "id"), amount); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) ByCategory(w http.ResponseWriter, r *http.Request) {
	parts, err := h.svc.ByCategory(r.Context(), chi.URLParam(r, "category"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	api.WriteJSON(w, r, http.StatusOK, PartsToResponse(parts))
}

func (h *handler) ByBrand(w http.ResponseWriter, r *http.Request) {
	parts, err := h.svc.ByBrand(r.Context(), chi.URLParam(r, "brand"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	api.WriteJSON(w, r, http.StatusOK, PartsToResponse(parts))
}

func (h *handler) ByManufacturerCode(w http.ResponseWriter, r *http.Request) {
	part, err := h.svc.ByManufacturerCode(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	api.WriteJSON(w, r, http.StatusOK, PartToResponse(part))
}

func (h *handler) LowStock(w http.ResponseWriter, r *http.Request) {
	threshold, err := strconv.ParseInt(r.URL.Query().Get("threshold"), 10, 64)
	if err != nil || threshold < 0 {
		api.WriteError(w, r, http.StatusBadRequest, "threshold must be a non-negative integer")
		return
	}

	parts, err := h.svc.LowStock(r.Context(), threshold)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	api.WriteJSON(w, r, http.StatusOK, PartsToResponse(parts))
}

func (h *handler) decodeRequest(w http.ResponseWriter, r *http.Request) (PartRequest, bool) {
	var req PartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, r, http.StatusBadRequest, "invalid request body")
		return PartRequest{}, false
	}

	if err := h.validate.Struct(req); err != nil {
		api.WriteError(w, r, http.StatusBadRequest, api.ValidationMessage(err))
		return PartRequest{}, false
	}

	return req, true
}

func amountParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	amount, err := strconv.ParseInt(r.URL.Query().Get("amount"), 10, 64)
	if err != nil || amount <= 0 {
		api.WriteError(w, r, http.StatusBadRequest, "amount must be a positive integer")
		return 0, false
	}
	return amount, true
}

func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, model.ErrPartNotFound):
		api.WriteError(w, r, http.StatusNotFound, model.ErrPartNotFound.Error())
	case errors.Is(err, model.ErrInvalidArgument), errors.Is(err, model.ErrValidation):
		api.WriteError(w, r, http.StatusBadRequest, err.Error())
	default:
		api.WriteError(w, r, http.StatusInternalServerError, "internal error")
	}
}
