package services

import (
	"context"
	"fmt"
	"strings"
)

const (
	EntityMenu    = "menu"
	EntityService = "service"

	ActionAdded   = "added"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// Event describes one successful mutation of the store.
type Event struct {
	Entity     string
	Action     string
	ID         int64
	Name       string
	PriceCents int64
}

// Sink receives events after the store has been mutated.
type Sink interface {
	Publish(ctx context.Context, ev Event) error
}

// Summary is the one-line human form, e.g. `Menu #5 "Test" added: ₱12.50`.
func (e Event) Summary() string {
	entity := e.Entity
	if entity != "" {
		entity = strings.ToUpper(entity[:1]) + entity[1:]
	}
	return fmt.Sprintf("%s #%d %q %s: %s", entity, e.ID, e.Name, e.Action, FormatPrice(e.PriceCents))
}
