package domain

import "slices"

// CallRoster is an ordered set of usernames in the room's voice call.
// Participants are tracked by username, so two connections sharing one
// username are indistinguishable here.
type CallRoster struct {
	list []string
}

func NewCallRoster() *CallRoster {
	return &CallRoster{}
}

func (c CallRoster) Contains(username string) bool {
	return slices.Contains(c.list, username)
}

// Add appends the username and reports whether it was newly added.
func (c *CallRoster) Add(username string) bool {
	if c.Contains(username) {
		return false
	}

	c.list = append(c.list, username)
	return true
}

// Remove reports whether the username was in the roster.
func (c *CallRoster) Remove(username string) bool {
	index := slices.Index(c.list, username)
	if index < 0 {
		return false
	}

	c.list = slices.Delete(c.list, index, index+1)
	return true
}

// AsList never returns nil so it encodes as an empty JSON array.
func (c CallRoster) AsList() []string {
	list := make([]string, len(c.list))
	copy(list, c.list)
	return list
}

func (c CallRoster) Length() int {
	return len(c.list)
}
