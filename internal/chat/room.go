package chat

import (
	"slices"

	"github.com/samber/lo"
)

// Room is one conversation scope. A room with an admin is private;
// visibility is always derived from AdminID, never stored.
type Room struct {
	ID       string
	Title    string
	AdminID  string // empty for unowned (public) rooms
	URLImage string

	joinedUsers []string
}

// RoomConfig carries the construction inputs for a room.
type RoomConfig struct {
	ID             string
	Title          string
	AdminID        string
	URLImage       string
	PrejoinedUsers []string
}

// NewRoom builds a room. An owned room starts with the prejoin list or
// the singleton {admin}; an unowned room starts with the prejoin list
// or empty.
func NewRoom(cfg RoomConfig) *Room {
	r := &Room{
		ID:       cfg.ID,
		Title:    cfg.Title,
		AdminID:  cfg.AdminID,
		URLImage: cfg.URLImage,
	}
	switch {
	case len(cfg.PrejoinedUsers) > 0:
		r.joinedUsers = lo.Uniq(cfg.PrejoinedUsers)
	case cfg.AdminID != "":
		r.joinedUsers = []string{cfg.AdminID}
	}
	return r
}

// EntityID implements Entity
func (r *Room) EntityID() string { return r.ID }

// Public reports whether the room is open to everyone. A room is
// public exactly when it has no admin.
func (r *Room) Public() bool { return r.AdminID == "" }

// Join adds a user to the membership and reports whether membership
// changed. Joining twice is a no-op returning false.
func (r *Room) Join(userID string) bool {
	if slices.Contains(r.joinedUsers, userID) {
		return false
	}
	r.joinedUsers = append(r.joinedUsers, userID)
	return true
}

// Leave removes a user from the membership. A non-member is a no-op.
func (r *Room) Leave(userID string) {
	for i, id := range r.joinedUsers {
		if id == userID {
			r.joinedUsers = append(r.joinedUsers[:i], r.joinedUsers[i+1:]...)
			return
		}
	}
}

// IsMember reports whether userID has joined this room
func (r *Room) IsMember(userID string) bool {
	return slices.Contains(r.joinedUsers, userID)
}

// Members returns a copy of the membership, in join order
func (r *Room) Members() []string {
	out := make([]string, len(r.joinedUsers))
	copy(out, r.joinedUsers)
	return out
}
