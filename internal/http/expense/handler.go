package expense

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/inwords/expenses/internal/expense"
	"github.com/inwords/expenses/internal/http/api"
)

type Handler struct {
	svc *expense.Service
}

func NewHandler(svc *expense.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/{id}/expenses", h.list)
	r.Post("/{id}/expenses", h.record)
	r.Post("/{id}/refunds", h.recordRefund)
}

type splitEntryRequest struct {
	PersonID        uuid.UUID        `json:"person_id" validate:"required"`
	Amount          decimal.Decimal  `json:"amount" validate:"required"`
	ExchangedAmount *decimal.Decimal `json:"exchanged_amount,omitempty"`
}

type splitRequest struct {
	Mode         expense.SplitMode   `json:"mode" validate:"required,oneof=equal manual"`
	Total        decimal.Decimal     `json:"total"`
	Participants []uuid.UUID         `json:"participants"`
	Entries      []splitEntryRequest `json:"entries" validate:"dive"`
}

type recordExpenseRequest struct {
	PayerID     uuid.UUID    `json:"payer_id" validate:"required"`
	CurrencyID  uuid.UUID    `json:"currency_id" validate:"required"`
	Description string       `json:"description" validate:"required,max=500"`
	CreatedAt   *time.Time   `json:"created_at,omitempty"`
	Split       splitRequest `json:"split" validate:"required"`
}

func (h *Handler) record(w http.ResponseWriter, r *http.Request) {
	eventID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req recordExpenseRequest
	if err := api.Decode(r, &req); err != nil {
		api.Error(w, err)
		return
	}

	exp, err := h.svc.Record(r.Context(), expense.RecordParams{
		EventID:     eventID,
		PayerID:     req.PayerID,
		CurrencyID:  req.CurrencyID,
		Description: req.Description,
		Access:      api.Access(r),
		CreatedAt:   req.CreatedAt,
		Split:       toSplitSpec(req.Split),
	})
	if err != nil {
		api.Error(w, err)
		return
	}

	api.JSON(w, http.StatusCreated, toResponse(exp))
}

type recordRefundRequest struct {
	PayerID     uuid.UUID       `json:"payer_id" validate:"required"`
	RecipientID uuid.UUID       `json:"recipient_id" validate:"required"`
	Amount      decimal.Decimal `json:"amount" validate:"required"`
	Description string          `json:"description" validate:"required,max=500"`
	CreatedAt   *time.Time      `json:"created_at,omitempty"`
}

func (h *Handler) recordRefund(w http.ResponseWriter, r *http.Request) {
	eventID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req recordRefundRequest
	if err := api.Decode(r, &req); err != nil {
		api.Error(w, err)
		return
	}

	exp, err := h.svc.RecordRefund(r.Context(), expense.RefundParams{
		EventID:     eventID,
		PayerID:     req.PayerID,
		RecipientID: req.RecipientID,
		Amount:      req.Amount,
		Description: req.Description,
		Access:      api.Access(r),
		CreatedAt:   req.CreatedAt,
	})
	if err != nil {
		api.Error(w, err)
		return
	}

	api.JSON(w, http.StatusCreated, toResponse(exp))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	eventID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	expenses, err := h.svc.ListByEvent(r.Context(), eventID, api.Access(r))
	if err != nil {
		api.Error(w, err)
		return
	}

	api.JSON(w, http.StatusOK, toResponseList(expenses))
}

func toSplitSpec(req splitRequest) expense.SplitSpec {
	entries := make([]expense.SplitInput, len(req.Entries))
	for i, e := range req.Entries {
		entries[i] = expense.SplitInput{
			PersonID:        e.PersonID,
			Amount:          e.Amount,
			ExchangedAmount: e.ExchangedAmount,
		}
	}

	return expense.SplitSpec{
		Mode:         req.Mode,
		Total:        req.Total,
		Participants: req.Participants,
		Entries:      entries,
	}
}
