package chat

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"realtime-chat/pkg/metrics"
)

// joinCommand is the reserved chat literal that turns a frame into a
// membership request instead of content. The classification happens
// once, at the top of HandleChat, so the convention lives in a single
// place.
const joinCommand = "/join"

type inboundKind int

const (
	inboundText inboundKind = iota
	inboundJoin
)

func classify(text string) inboundKind {
	if text == joinCommand {
		return inboundJoin
	}
	return inboundText
}

// Sender delivers one envelope to a connection. Implementations must
// not block; delivery to a connection that is gone is dropped.
type Sender interface {
	Send(Envelope)
}

// Engine is the single authority for presence, room lifecycle and
// message routing. One mutex covers both collections: users and rooms
// cross-reference each other (ownership, membership), so their
// mutations serialize together. Recipient sets are snapshotted under
// the lock and delivered outside it.
type Engine struct {
	log *slog.Logger

	mu    sync.Mutex
	users *Collection[*User]
	rooms *Collection[*Room]
}

// NewEngine creates an engine with empty user and room collections
func NewEngine(logger *slog.Logger) *Engine {
	return &Engine{
		log:   logger,
		users: NewCollection[*User](),
		rooms: NewCollection[*Room](),
	}
}

// Connect registers a new identity and provisions its private room,
// then announces the updated room directory to everyone connected.
func (e *Engine) Connect(id, pseudo, imgURL string, s Sender) {
	e.mu.Lock()
	user := NewUser(id, pseudo, imgURL)
	user.sender = s
	e.users.Add(user)

	title := "Private room"
	if pseudo != "" {
		title = pseudo + "'s room"
	}
	room := NewRoom(RoomConfig{ID: uuid.NewString(), Title: title, AdminID: id})
	e.rooms.Add(room)

	env := newDirectoryEnvelope(e.rooms.Snapshot())
	recipients := e.users.Snapshot()
	e.mu.Unlock()

	e.log.Info("chat.connect", "user", id, "room", room.ID)
	e.deliver(recipients, env)
}

// Disconnect removes an identity and destroys every room it owned.
// The directory is re-announced only when a room was destroyed. An
// unknown id is a silent no-op: duplicate disconnect signals happen.
func (e *Engine) Disconnect(id string) {
	e.mu.Lock()
	if _, ok := e.users.Get(id); !ok {
		e.mu.Unlock()
		return
	}
	e.users.Del(id)

	destroyed := false
	for _, room := range e.rooms.Snapshot() {
		if room.AdminID == id {
			e.rooms.Del(room.ID)
			destroyed = true
		}
	}

	var env Envelope
	var recipients []*User
	if destroyed {
		env = newDirectoryEnvelope(e.rooms.Snapshot())
		recipients = e.users.Snapshot()
	}
	e.mu.Unlock()

	e.log.Info("chat.disconnect", "user", id)
	if destroyed {
		e.deliver(recipients, env)
	}
}

// CreateRoom provisions a room outside the connect flow, e.g. the
// shared lobby at startup. An empty adminID makes the room public.
func (e *Engine) CreateRoom(title, adminID, urlImage string, prejoined []string) *Room {
	e.mu.Lock()
	room := NewRoom(RoomConfig{
		ID:             uuid.NewString(),
		Title:          title,
		AdminID:        adminID,
		URLImage:       urlImage,
		PrejoinedUsers: prejoined,
	})
	e.rooms.Add(room)
	env := newDirectoryEnvelope(e.rooms.Snapshot())
	recipients := e.users.Snapshot()
	e.mu.Unlock()

	e.log.Info("chat.room.created", "room", room.ID, "title", title, "public", room.Public())
	e.deliver(recipients, env)
	return room
}

// HandleChat routes one inbound chat frame. A missing room is a
// silent drop: it may have been destroyed while the message was in
// flight, which is not a client error.
func (e *Engine) HandleChat(senderID, roomID, text string) {
	e.mu.Lock()
	room, ok := e.rooms.Get(roomID)
	if !ok {
		e.mu.Unlock()
		e.log.Debug("chat.drop", "reason", "room gone", "room", roomID, "user", senderID)
		return
	}

	if classify(text) == inboundJoin {
		room.Join(senderID)
		if user, ok := e.users.Get(senderID); ok {
			user.JoinRoom(roomID)
		}
		recipients := e.connectedMembersLocked(room)
		e.mu.Unlock()

		e.log.Info("chat.join", "user", senderID, "room", roomID)
		e.deliver(recipients, newChatEnvelope(KindSuccess, "Welcome "+senderID+" to the room !", "", roomID))
		return
	}

	if !room.Public() && !room.IsMember(senderID) {
		sender, ok := e.users.Get(senderID)
		e.mu.Unlock()
		if !ok {
			return
		}
		e.log.Debug("chat.denied", "user", senderID, "room", roomID)
		sender.send(newChatEnvelope(KindError,
			"You are not allowed to talk in this chat, type /join to ask permission", "", roomID))
		return
	}

	var recipients []*User
	if room.Public() {
		recipients = e.users.Snapshot()
	} else {
		recipients = e.connectedMembersLocked(room)
	}
	e.mu.Unlock()

	e.deliver(recipients, newChatEnvelope(KindMessage, text, senderID, roomID))
}

// RequestRooms answers a directory request from a single connection
func (e *Engine) RequestRooms(senderID string) {
	e.mu.Lock()
	sender, ok := e.users.Get(senderID)
	env := newDirectoryEnvelope(e.rooms.Snapshot())
	e.mu.Unlock()
	if !ok {
		return
	}
	sender.send(env)
	metrics.EnvelopesDelivered.Inc()
}

// Room looks up a room by id
func (e *Engine) Room(id string) (*Room, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rooms.Get(id)
}

// RoomIDs returns the current room ids in creation order
func (e *Engine) RoomIDs() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rooms.All()
}

// UserIDs returns the currently connected identity ids
func (e *Engine) UserIDs() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.users.All()
}

// connectedMembersLocked resolves a room's membership to the users
// that still have a live connection. Stale ids are skipped; the next
// disconnect cleanup heals them. Callers hold e.mu.
func (e *Engine) connectedMembersLocked(room *Room) []*User {
	return lo.FilterMap(room.Members(), func(id string, _ int) (*User, bool) {
		return e.users.Get(id)
	})
}

func (e *Engine) deliver(recipients []*User, env Envelope) {
	for _, u := range recipients {
		u.send(env)
	}
	metrics.EnvelopesDelivered.Add(float64(len(recipients)))
}
