package domain

import (
	"errors"
)

var ErrMemberNotFound = errors.New("member not found")

// ConnID is the opaque handle issued to a connection when it opens.
type ConnID string

type Member struct {
	ID       ConnID `json:"-"`
	Username string `json:"username"`
}

// Members is an ordered set of connections, in join order.
type Members struct {
	list []Member
}

func NewMembers() *Members {
	return &Members{}
}

func (m Members) Length() int {
	return len(m.list)
}

func (m Members) GetByID(id ConnID) (Member, int, error) {
	for index, member := range m.list {
		if member.ID == id {
			return member, index, nil
		}
	}

	return Member{}, 0, ErrMemberNotFound
}

// GetByUsername returns the earliest joined member with the given username.
func (m Members) GetByUsername(username string) (Member, error) {
	for _, member := range m.list {
		if member.Username == username {
			return member, nil
		}
	}

	return Member{}, ErrMemberNotFound
}

func (m Members) Contains(id ConnID) bool {
	_, _, err := m.GetByID(id)
	return err == nil
}

// Add appends the member and reports whether it was newly added.
func (m *Members) Add(member Member) bool {
	if m.Contains(member.ID) {
		return false
	}

	m.list = append(m.list, member)
	return true
}

func (m *Members) RemoveByID(id ConnID) (Member, error) {
	member, index, err := m.GetByID(id)
	if err != nil {
		return Member{}, err
	}

	m.list = append(m.list[:index], m.list[index+1:]...)
	return member, nil
}

func (m Members) IDs() []ConnID {
	ids := make([]ConnID, 0, len(m.list))
	for _, member := range m.list {
		ids = append(ids, member.ID)
	}

	return ids
}

func (m Members) IDsExcept(id ConnID) []ConnID {
	ids := make([]ConnID, 0, len(m.list))
	for _, member := range m.list {
		if member.ID != id {
			ids = append(ids, member.ID)
		}
	}

	return ids
}
