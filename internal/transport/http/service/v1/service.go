package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/grupo99/catalog-service/internal/model"
	"github.com/grupo99/catalog-service/internal/transport/http/api"
	"github.com/grupo99/catalog-service/internal/transport/http/middleware"
)

type ServiceService interface {
	Create(ctx context.Context, params model.CreateServiceParams) (*model.Service, error)
	ByID(ctx context.Context, id string) (*model.Service, error)
	All(ctx context.Context) ([]*model.Service, error)
	Active(ctx context.Context) ([]*model.Service, error)
	Update(ctx context.Context, id string, params model.UpdateServiceParams) (*model.Service, error)
	Deactivate(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	ByCategory(ctx context.Context, category string) ([]*model.Service, error)
}

type handler struct {
	svc      ServiceService
	validate *validator.Validate
}

func NewServiceHandler(service ServiceService) *handler {
	return &handler{
		svc:      service,
		validate: api.NewValidator(),
	}
}

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
	r.With(anyRole).Get("/category/{category}", h.ByCategory)
	r.With(anyRole).Get("/{id}", h.ByID)
	r.With(staff).Put("/{id}", h.Update)
	r.With(admin).Patch("/{id}/deactivate", h.Deactivate)
	r.With(admin).Delete("/{id}", h.Delete)

	return r
}

func (h *handler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeRequest(w, r)
	if !ok {
		return
	}

	svc, err := h.svc.Create(r.Context(), requestToCreateParams(req))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	api.WriteJSON(w, r, http.StatusCreated, ServiceToResponse(svc))
}

func (h *handler) List(w http.ResponseWriter, r *http.Request) {
	services, err := h.svc.All(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	api.WriteJSON(w, r, http.StatusOK, ServicesToResponse(services))
}

func (h *handler) ListActive(w http.ResponseWriter, r *http.Request) {
	services, err := h.svc.Active(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	api.WriteJSON(w, r, http.StatusOK, ServicesToResponse(services))
}

func (h *handler) ByID(w http.ResponseWriter, r *http.Request) {
	svc, err := h.svc.ByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	api.WriteJSON(w, r, http.StatusOK, ServiceToResponse(svc))
}

func (h *handler) Update(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeRequest(w, r)
	if !ok {
		return
	}

	svc, err := h.svc.Update(r.Context(), chi.URLParam(r, "id"), requestToUpdateParams(req))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	api.WriteJSON(w, r, http.StatusOK, ServiceToResponse(svc))
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

func (h *handler) ByCategory(w http.ResponseWriter, r *http.Request) {
	services, err := h.svc.ByCategory(r.Context(), chi.URLParam(r, "category"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	api.WriteJSON(w, r, http.StatusOK, ServicesToResponse(services))
}

func (h *handler) decodeRequest(w http.ResponseWriter, r *http.Request) (ServiceRequest, bool) {
	var req ServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, r, http.StatusBadRequest, "invalid request body")
		return ServiceRequest{}, false
	}

	if err := h.validate.Struct(req); err != nil {
		api.WriteError(w, r, http.StatusBadRequest, api.ValidationMessage(err))
		return ServiceRequest{}, false
	}

	return req, true
}

func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, model.ErrServiceNotFound):
		api.WriteError(w, r, http.StatusNotFound, model.ErrServiceNotFound.Error())
	case errors.Is(err, model.ErrInvalidArgument), errors.Is(err, model.ErrValidation):
		api.WriteError(w, r, http.StatusBadRequest, err.Error())
	default:
		api.WriteError(w, r, http.StatusInternalServerError, "internal error")
	}
}
