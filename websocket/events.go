package websocket

import (
	"encoding/json"
	"time"

	"github.com/rs/zerolog/log"
)

// Event types pushed to connected clients
const (
	EventNewPickupRequest    = "newPickupRequest"
	EventPickupAssigned      = "pickupAssigned"
	EventPickupStatusUpdated = "pickupStatusUpdated"
	EventBinAlert            = "binAlert"
)

// NewMessage builds a message envelope with the current timestamp
func NewMessage(eventType string, data interface{}) (Message, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return Message{}, err
	}
	return Message{
		Type:      eventType,
		Data:      raw,
		Timestamp: time.Now(),
	}, nil
}

// BroadcastEvent routes an event to the audiences that should see it.
// New pickup requests only concern the dispatch desk, every other event
// goes to all audiences.
func (h *Hub) BroadcastEvent(eventType string, data interface{}) {
	msg, err := NewMessage(eventType, data)
	if err != nil {
		log.Error().Err(err).Str("event", eventType).Msg("failed to marshal event data")
		return
	}

	switch eventType {
	case EventNewPickupRequest:
		h.BroadcastToOperators(msg)

	default:
		for _, clientType := range []ClientType{ClientTypeUser, ClientTypeWorker, ClientTypeOperator} {
			h.Broadcast(BroadcastMessage{
				ClientType: clientType,
				UserID:     0,
				Message:    msg,
			})
		}
	}
}

// AlertLevel grades operator alerts
type AlertLevel string

const (
	AlertLevelCritical AlertLevel = "critical"
	AlertLevelWarning  AlertLevel = "warning"
	AlertLevelInfo     AlertLevel = "info"
)

// AlertData is the payload of an operator alert
type AlertData struct {
	Level     AlertLevel             `json:"level"`
	Title     string                 `json:"title"`
	Message   string                 `json:"message"`
	RelatedID int64                  `json:"related_id"`
	Extra     map[string]interface{} `json:"extra,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

// SendAlert pushes an alert to every connected operator
func (h *Hub) SendAlert(eventType string, alert AlertData) {
	alert.Timestamp = time.Now()

	msg, err := NewMessage(eventType, alert)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal alert data")
		return
	}

	h.BroadcastToOperators(msg)

	log.Info().
		Str("event", eventType).
		Str("level", string(alert.Level)).
		Str("title", alert.Title).
		Int64("related_id", alert.RelatedID).
		Int("operator_clients", h.GetOnlineOperatorCount()).
		Msg("alert sent to operators")
}
