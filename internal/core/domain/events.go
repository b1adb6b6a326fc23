package domain

import "time"

// EntityKind - вид сущности в событиях.
type EntityKind string

const (
	EntityClient   EntityKind = "client"
	EntityProperty EntityKind = "property"
	EntityRequest  EntityKind = "request"
)

// ChangeAction - что произошло с сущностью.
type ChangeAction string

const (
	ActionCreated ChangeAction = "created"
	ActionUpdated ChangeAction = "updated"
	ActionDeleted ChangeAction = "deleted"
)

// EntityChangedEvent публикуется после успешной записи в хранилище.
type EntityChangedEvent struct {
	Entity     EntityKind
	Action     ChangeAction
	EntityID   int
	OccurredAt time.Time
}

// RoutingKey вида "client.created".
func (e EntityChangedEvent) RoutingKey() string {
	return string(e.Entity) + "." + string(e.Action)
}
