package pokedex

import (
	"github.com/google/uuid"

	"github.com/zjrosen/pokedex/internal/pubsub"
)

// ChangeKind names a successful mutation.
type ChangeKind string

const (
	OwnerCreated   ChangeKind = "owner_created"
	OwnerDeleted   ChangeKind = "owner_deleted"
	OwnersMerged   ChangeKind = "owners_merged"
	OwnersSorted   ChangeKind = "owners_sorted"
	RecordAdded    ChangeKind = "record_added"
	RecordReleased ChangeKind = "record_released"
	RecordEvolved  ChangeKind = "record_evolved"
)

// eventType maps a change onto the broker's coarse event types.
func (k ChangeKind) eventType() pubsub.EventType {
	switch k {
	case OwnerCreated, RecordAdded:
		return pubsub.CreatedEvent
	case OwnerDeleted, RecordReleased:
		return pubsub.DeletedEvent
	case OwnersMerged:
		return pubsub.MergedEvent
	default:
		return pubsub.UpdatedEvent
	}
}

// Change is the payload published after every successful mutation.
type Change struct {
	Kind     ChangeKind
	Owner    string
	OwnerID  uuid.UUID
	Other    string // second owner for merges
	RecordID int
	Record   string
	TraceID  string
}

// ChangeEvent is a change wrapped for the broker.
type ChangeEvent = pubsub.Event[Change]
