package interfaces

import "github.com/google/uuid"

// Session identifies the actor performing edits. Authentication itself is
// delegated to the host application's identity provider; the page builder
// only needs a stable actor id for audit stamping. Passing the session
// explicitly keeps services free of ambient global state.
type Session interface {
	// ActorID returns the identity recorded in createdBy/updatedBy fields.
	ActorID() uuid.UUID
}

// StaticSession is the trivial Session carrying a fixed actor id.
type StaticSession struct {
	ID uuid.UUID
}

// ActorID satisfies Session.
func (s StaticSession) ActorID() uuid.UUID { return s.ID }
