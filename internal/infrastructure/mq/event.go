package mq

import (
	"net/http"
	"time"

	"github.com/google/uuid"
)

// RoutingKeys are the lifecycle actions bound on the events exchange.
var RoutingKeys = []string{
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
}

type Event struct {
	ID       uuid.UUID `json:"event_id"`
	TS       time.Time `json:"time_stamp"`
	Method   string    `json:"event_action"`
	Entity   string    `json:"entity"`
	EntityID string    `json:"entity_id"`
	Payload  any       `json:"payload"`
}

func NewEvent(method, entity string, entityID uuid.UUID, payload any) Event {
	return Event{
		ID:       uuid.New(),
		TS:       time.Now().UTC(),
		Method:   method,
		Entity:   entity,
		EntityID: entityID.String(),
		Payload:  payload,
	}
}
