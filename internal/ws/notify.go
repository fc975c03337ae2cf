package ws

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type MatchBatchCompletedEvent struct {
	Type           string    `json:"type"`
	UserID         uuid.UUID `json:"user_id"`
	TotalProcessed int       `json:"total_processed"`
	Errors         int       `json:"errors"`
	Timestamp      string    `json:"timestamp"`
}

// Notifier turns scoring events into broadcast frames.
type Notifier struct {
	hub *Hub
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub}
}

func (n *Notifier) MatchBatchCompleted(userID uuid.UUID, totalProcessed, errorCount int) {
	if n == nil || n.hub == nil {
		return
	}

	evt := MatchBatchCompletedEvent{
		Type:           "match_batch_completed",
		UserID:         userID,
		TotalProcessed: totalProcessed,
		Errors:         errorCount,
		Timestamp:      time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	n.hub.Broadcast(b)
}
