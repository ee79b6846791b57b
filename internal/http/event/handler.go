package event

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/inwords/expenses/internal/event"
	"github.com/inwords/expenses/internal/http/api"
)

type Handler struct {
	svc *event.Service
}

func NewHandler(svc *event.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/{id}", h.get)
	r.Delete("/{id}", h.delete)
	r.Post("/{id}/persons", h.addPersons)
	r.Post("/{id}/share-token", h.createShareToken)
}

type createEventRequest struct {
	Name       string    `json:"name" validate:"required,max=100"`
	PinCode    string    `json:"pin_code" validate:"omitempty,numeric,len=4"`
	CurrencyID uuid.UUID `json:"currency_id" validate:"required"`
	Persons    []string  `json:"persons" validate:"required,min=1,dive,required,max=100"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createEventRequest
	if err := api.Decode(r, &req); err != nil {
		api.Error(w, err)
		return
	}

	details, pinCode, err := h.svc.Create(r.Context(), event.CreateParams{
		Name:        req.Name,
		PinCode:     req.PinCode,
		CurrencyID:  req.CurrencyID,
		PersonNames: req.Persons,
	})
	if err != nil {
		api.Error(w, err)
		return
	}

	api.JSON(w, http.StatusCreated, toCreatedResponse(details, pinCode))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	details, err := h.svc.Get(r.Context(), id, api.Access(r))
	if err != nil {
		api.Error(w, err)
		return
	}

	api.JSON(w, http.StatusOK, toDetailsResponse(details))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id, api.Access(r)); err != nil {
		api.Error(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type addPersonsRequest struct {
	Persons []string `json:"persons" validate:"required,min=1,dive,required,max=100"`
}

func (h *Handler) addPersons(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req addPersonsRequest
	if err := api.Decode(r, &req); err != nil {
		api.Error(w, err)
		return
	}

	persons, err := h.svc.AddPersons(r.Context(), id, api.Access(r), req.Persons)
	if err != nil {
		api.Error(w, err)
		return
	}

	api.JSON(w, http.StatusCreated, toPersonsResponse(persons))
}

func (h *Handler) createShareToken(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	token, err := h.svc.CreateShareToken(r.Context(), id, api.Access(r))
	if err != nil {
		api.Error(w, err)
		return
	}

	api.JSON(w, http.StatusCreated, shareTokenResponse{Token: token})
}
