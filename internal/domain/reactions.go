package domain

import (
	"slices"

	"golang.org/x/exp/maps"
)

type usernameSet map[string]struct{}

// Reactions is the per-message, per-emoji ledger of usernames.
// It never holds an empty emoji set or an empty message entry.
type Reactions struct {
	ledger map[string]map[string]usernameSet
}

func NewReactions() *Reactions {
	return &Reactions{ledger: make(map[string]map[string]usernameSet)}
}

func (r *Reactions) Add(messageID, emoji, username string) {
	emojis, ok := r.ledger[messageID]
	if !ok {
		emojis = make(map[string]usernameSet)
		r.ledger[messageID] = emojis
	}

	users, ok := emojis[emoji]
	if !ok {
		users = make(usernameSet)
		emojis[emoji] = users
	}

	users[username] = struct{}{}
}

func (r *Reactions) Remove(messageID, emoji, username string) {
	emojis, ok := r.ledger[messageID]
	if !ok {
		return
	}

	users, ok := emojis[emoji]
	if !ok {
		return
	}

	delete(users, username)
	if len(users) == 0 {
		delete(emojis, emoji)
	}
	if len(emojis) == 0 {
		delete(r.ledger, messageID)
	}
}

// Snapshot returns emoji -> sorted usernames for a message, empty if it has no reactions.
func (r Reactions) Snapshot(messageID string) map[string][]string {
	snapshot := make(map[string][]string)
	for emoji, users := range r.ledger[messageID] {
		usernames := maps.Keys(users)
		slices.Sort(usernames)
		snapshot[emoji] = usernames
	}

	return snapshot
}

// Length is the number of messages with at least one reaction.
func (r Reactions) Length() int {
	return len(r.ledger)
}
