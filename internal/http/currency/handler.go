package currency

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/inwords/expenses/internal/currency"
	"github.com/inwords/expenses/internal/http/api"
)

type Handler struct {
	svc *currency.Service
}

func NewHandler(svc *currency.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.listWithRates)
}

type currencyResponse struct {
	ID   uuid.UUID `json:"id"`
	Code string    `json:"code"`
	Name string    `json:"name"`
}

type currenciesResponse struct {
	Currencies []currencyResponse         `json:"currencies"`
	Rates      map[string]decimal.Decimal `json:"rates"`
}

func (h *Handler) listWithRates(w http.ResponseWriter, r *http.Request) {
	currencies, snapshot, err := h.svc.ListWithRates(r.Context())
	if err != nil {
		api.Error(w, err)
		return
	}

	resp := currenciesResponse{
		Currencies: make([]currencyResponse, len(currencies)),
		Rates:      snapshot.Rates,
	}

	for i, c := range currencies {
		resp.Currencies[i] = currencyResponse{ID: c.ID, Code: c.Code, Name: c.Name}
	}

	api.JSON(w, http.StatusOK, resp)
}
