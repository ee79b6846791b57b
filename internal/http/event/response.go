package event

import (
	"time"

	"github.com/google/uuid"

	"github.com/inwords/expenses/internal/event"
)

type eventResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	CurrencyID uuid.UUID `json:"currency_id"`
	CreatedAt  time.Time `json:"created_at"`
}

type personResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type detailsResponse struct {
	Event   eventResponse    `json:"event"`
	Persons []personResponse `json:"persons"`
}

type createdResponse struct {
	detailsResponse
	PinCode string `json:"pin_code"`
}

type shareTokenResponse struct {
	Token string `json:"token"`
}

func toDetailsResponse(d *event.Details) detailsResponse {
	return detailsResponse{
		Event: eventResponse{
			ID:         d.Event.ID,
			Name:       d.Event.Name,
			CurrencyID: d.Event.CurrencyID,
			CreatedAt:  d.Event.CreatedAt,
		},
		Persons: toPersonsResponse(d.Persons),
	}
}

func toCreatedResponse(d *event.Details, pinCode string) createdResponse {
	return createdResponse{
		detailsResponse: toDetailsResponse(d),
		PinCode:         pinCode,
	}
}

func toPersonsResponse(persons []*event.Person) []personResponse {
	resp := make([]personResponse, len(persons))
	for i, p := range persons {
		resp[i] = personResponse{ID: p.ID, Name: p.Name}
	}

	return resp
}
