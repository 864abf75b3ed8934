package chat

import (
	"encoding/json"
	"time"

	"github.com/samber/lo"
)

// Chat payload kinds carried inside Envelope.Msg.
const (
	KindMessage = "message"
	KindSuccess = "success"
	KindError   = "error"
	KindRooms   = "lstroom"
)

// Envelope is the outbound wire shape shared by chat deliveries and
// directory updates. Msg itself holds a serialized payload: a
// {content, type} object for chat, {type, payload} for the directory.
type Envelope struct {
	Msg       string `json:"msg"`
	Timestamp int64  `json:"timestamp"`
	UserID    string `json:"userId,omitempty"`
	RoomID    string `json:"roomId,omitempty"`
}

type chatPayload struct {
	Content string `json:"content"`
	Type    string `json:"type"`
}

type directoryPayload struct {
	Type    string     `json:"type"`
	Payload []RoomInfo `json:"payload"`
}

// OptionalString marshals to the JSON literal false when empty,
// matching the client's string-or-false convention.
type OptionalString string

// MarshalJSON implements json.Marshaler
func (s OptionalString) MarshalJSON() ([]byte, error) {
	if s == "" {
		return []byte("false"), nil
	}
	return json.Marshal(string(s))
}

// UnmarshalJSON implements json.Unmarshaler
func (s *OptionalString) UnmarshalJSON(b []byte) error {
	if string(b) == "false" {
		*s = ""
		return nil
	}
	var v string
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*s = OptionalString(v)
	return nil
}

// RoomInfo is the serialized room shape in directory updates.
type RoomInfo struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	JoinedUsers []string       `json:"joinedUsers"`
	Public      bool           `json:"public"`
	AdminID     OptionalString `json:"adminId"`
	URLImage    OptionalString `json:"urlImage"`
}

func roomInfo(r *Room) RoomInfo {
	return RoomInfo{
		ID:          r.ID,
		Title:       r.Title,
		JoinedUsers: r.Members(),
		Public:      r.Public(),
		AdminID:     OptionalString(r.AdminID),
		URLImage:    OptionalString(r.URLImage),
	}
}

// newChatEnvelope stamps a chat delivery with the server receipt time.
// Marshalling a flat string pair cannot fail.
func newChatEnvelope(kind, content, userID, roomID string) Envelope {
	raw, _ := json.Marshal(chatPayload{Content: content, Type: kind})
	return Envelope{
		Msg:       string(raw),
		Timestamp: time.Now().UnixMilli(),
		UserID:    userID,
		RoomID:    roomID,
	}
}

// newDirectoryEnvelope serializes the full room list. Directory
// updates carry no userId or roomId.
func newDirectoryEnvelope(rooms []*Room) Envelope {
	infos := lo.Map(rooms, func(r *Room, _ int) RoomInfo { return roomInfo(r) })
	raw, _ := json.Marshal(directoryPayload{Type: KindRooms, Payload: infos})
	return Envelope{
		Msg:       string(raw),
		Timestamp: time.Now().UnixMilli(),
	}
}
