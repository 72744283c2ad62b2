package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g. "CHAT_TURN_ROUTED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the plain implementation most publishers use.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// Event type codes
const (
	TypeChatTurnRouted = "CHAT_TURN_ROUTED"
)

// NewChatTurnRouted records a completed routing decision for analytics.
func NewChatTurnRouted(ventureId, sessionId, agentId string, confidence, elapsedMs float64) Event {
	return BaseEvent{
		Type: TypeChatTurnRouted,
		Data: map[string]interface{}{
			"venture_id": ventureId,
			"session_id": sessionId,
			"agent_id":   agentId,
			"confidence": confidence,
			"elapsed_ms": elapsedMs,
		},
		OccurredAt: time.Now(),
	}
}
