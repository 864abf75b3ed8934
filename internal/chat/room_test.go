package chat

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoomVisibilityDerivedFromAdmin(t *testing.T) {
	tests := []struct {
		name       string
		cfg        RoomConfig
		wantPublic bool
		wantUsers  []string
	}{
		{
			name:       "owned room defaults to admin singleton",
			cfg:        RoomConfig{ID: "r1", Title: "t", AdminID: "alice"},
			wantPublic: false,
			wantUsers:  []string{"alice"},
		},
		{
			name:       "owned room with prejoin list",
			cfg:        RoomConfig{ID: "r2", Title: "t", AdminID: "alice", PrejoinedUsers: []string{"bob", "carol"}},
			wantPublic: false,
			wantUsers:  []string{"bob", "carol"},
		},
		{
			name:       "unowned room starts empty",
			cfg:        RoomConfig{ID: "r3", Title: "t"},
			wantPublic: true,
			wantUsers:  []string{},
		},
		{
			name:       "unowned room with prejoin list",
			cfg:        RoomConfig{ID: "r4", Title: "t", PrejoinedUsers: []string{"bob"}},
			wantPublic: true,
			wantUsers:  []string{"bob"},
		},
		{
			name:       "prejoin duplicates collapse",
			cfg:        RoomConfig{ID: "r5", Title: "t", PrejoinedUsers: []string{"bob", "bob"}},
			wantPublic: true,
			wantUsers:  []string{"bob"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			r := NewRoom(tt.cfg)
			req.Equal(tt.wantPublic, r.Public())
			req.Equal(tt.wantUsers, r.Members())
		})
	}
}

func TestRoomJoinIsIdempotent(t *testing.T) {
	req := require.New(t)
	r := NewRoom(RoomConfig{ID: "r1", Title: "t", AdminID: "alice"})

	req.True(r.Join("bob"))
	req.False(r.Join("bob"))
	req.Equal([]string{"alice", "bob"}, r.Members())
	req.True(r.IsMember("bob"))
}

func TestRoomLeave(t *testing.T) {
	req := require.New(t)
	r := NewRoom(RoomConfig{ID: "r1", Title: "t", AdminID: "alice"})
	r.Join("bob")

	r.Leave("alice")
	req.Equal([]string{"bob"}, r.Members())

	// leaving when not a member is a no-op
	r.Leave("alice")
	req.Equal([]string{"bob"}, r.Members())
}

func TestRoomMembersReturnsCopy(t *testing.T) {
	req := require.New(t)
	r := NewRoom(RoomConfig{ID: "r1", Title: "t", AdminID: "alice"})

	members := r.Members()
	members[0] = "mallory"
	req.Equal([]string{"alice"}, r.Members())
}
