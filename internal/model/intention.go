package model

// Intention represents the AI state of a mob.
type Intention int32

const (
	// IntentionIdle - mob stands at its home tile without a target
	IntentionIdle Intention = iota
	// IntentionEngaged - mob has a live target and chases or attacks it
	IntentionEngaged
	// IntentionReturning - mob has no target and walks back to its home tile
	IntentionReturning
)

// String returns human-readable intention name
func (i Intention) String() string {
	switch i {
	case IntentionIdle:
		return "IDLE"
	case IntentionEngaged:
		return "ENGAGED"
	case IntentionReturning:
		return "RETURNING"
	default:
		return "UNKNOWN"
	}
}
