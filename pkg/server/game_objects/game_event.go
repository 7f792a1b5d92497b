package game_objects

// EventType represents the type of game event
type EventType string

// Event type constants
const (
	EventDragStarted     EventType = "drag_started"
	EventDragCancelled   EventType = "drag_cancelled"
	EventBodyLaunched    EventType = "body_launched"
	EventBodyReset       EventType = "body_reset"
	EventTargetDestroyed EventType = "target_destroyed"
	EventScoreChanged    EventType = "score_changed"
	EventLevelCleared    EventType = "level_cleared"
)

// ResetReason says why the body went back to the launcher
type ResetReason string

const (
	ResetReasonWall       ResetReason = "wall"
	ResetReasonLevelClear ResetReason = "level_clear"
	ResetReasonShortDrag  ResetReason = "short_drag"
)

// GameEvent represents something that happened during a tick or an input.
// Only the fields relevant to EventType are set.
type GameEvent struct {
	EventType EventType   `json:"type"`
	ObjectID  string      `json:"objectId,omitempty"`
	Score     int         `json:"score,omitempty"`
	Level     int         `json:"level,omitempty"`
	Reason    ResetReason `json:"reason,omitempty"`
	X         float64     `json:"x,omitempty"`
	Y         float64     `json:"y,omitempty"`
	Dx        float64     `json:"dx,omitempty"`
	Dy        float64     `json:"dy,omitempty"`
}

// NewGameEvent creates a new GameEvent
func NewGameEvent(eventType EventType, objectID string) *GameEvent {
	return &GameEvent{
		EventType: eventType,
		ObjectID:  objectID,
	}
}

// NewScoreChangedEvent carries the session score after the change
func NewScoreChangedEvent(score int) *GameEvent {
	return &GameEvent{
		EventType: EventScoreChanged,
		Score:     score,
	}
}

// NewBodyResetEvent records why the body returned to the launcher
func NewBodyResetEvent(bodyID string, reason ResetReason) *GameEvent {
	return &GameEvent{
		EventType: EventBodyReset,
		ObjectID:  bodyID,
		Reason:    reason,
	}
}
