package domain

import (
	"encoding/json"

	"nutrilens/aggregator"

	"github.com/google/uuid"
)

// BestDays is the Hall of Fame card. Report is nil when the window has no
// meals.
type BestDays struct {
	From   aggregator.Date           `json:"from"`
	To     aggregator.Date           `json:"to"`
	Report *aggregator.BestDayReport `json:"report,omitempty"`
}

// TotalsUpdate is one live push: a user's recomputed totals, already
// encoded as JSON by the producer.
type TotalsUpdate struct {
	UserID  uuid.UUID
	Payload json.RawMessage
}
