package connection

import (
	"errors"

	"github.com/sharetube/syncroom/internal/domain"
)

var (
	ErrNotFound      = errors.New("connection not found")
	ErrAlreadyBound  = errors.New("connection already bound to a room")
	ErrSinkClosed    = errors.New("sink closed")
	ErrSinkOverflown = errors.New("sink buffer full")
)

// Sink is the outbound side of a live transport session.
// Send must not block.
type Sink interface {
	Send(msg []byte) error
	IsOpen() bool
}

type Connection struct {
	ID       domain.ConnID
	Sink     Sink
	RoomID   string
	Username string
}

func (c Connection) IsBound() bool {
	return c.RoomID != ""
}
