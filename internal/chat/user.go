package chat

import "slices"

// User is one connected participant. ID is the transport session id
// and is only meaningful for the lifetime of that connection; nothing
// about a user survives its disconnect.
type User struct {
	ID     string
	Pseudo string
	ImgURL string

	rooms  []string // ids of rooms this user explicitly joined
	sender Sender
}

// NewUser creates a user for a freshly accepted connection
func NewUser(id, pseudo, imgURL string) *User {
	return &User{ID: id, Pseudo: pseudo, ImgURL: imgURL}
}

// EntityID implements Entity
func (u *User) EntityID() string { return u.ID }

// JoinRoom records a joined room on the user side. The Engine keeps
// this in lockstep with Room membership; the record itself does not
// enforce cross-entity consistency.
func (u *User) JoinRoom(roomID string) {
	if slices.Contains(u.rooms, roomID) {
		return
	}
	u.rooms = append(u.rooms, roomID)
}

// LeaveRoom forgets a joined room. An unknown room id is a no-op.
func (u *User) LeaveRoom(roomID string) {
	for i, id := range u.rooms {
		if id == roomID {
			u.rooms = append(u.rooms[:i], u.rooms[i+1:]...)
			return
		}
	}
}

// Rooms returns a copy of the rooms this user has joined
func (u *User) Rooms() []string {
	out := make([]string, len(u.rooms))
	copy(out, u.rooms)
	return out
}

// send hands an envelope to the user's connection, if it still has one
func (u *User) send(env Envelope) {
	if u.sender != nil {
		u.sender.Send(env)
	}
}
