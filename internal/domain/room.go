package domain

import (
	"sync"
)

// Room is the shared state of one room. Callers must hold the room lock
// (Lock/Unlock) while reading or mutating any of its fields.
type Room struct {
	ID         string
	Members    *Members
	Player     *Player
	Reactions  *Reactions
	CallRoster *CallRoster
	mu         sync.Mutex
}

func NewRoom(id string) *Room {
	return &Room{
		ID:         id,
		Members:    NewMembers(),
		Player:     NewPlayer(),
		Reactions:  NewReactions(),
		CallRoster: NewCallRoster(),
	}
}

func (r *Room) Lock() {
	r.mu.Lock()
}

func (r *Room) Unlock() {
	r.mu.Unlock()
}
