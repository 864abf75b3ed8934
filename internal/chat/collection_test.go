package chat

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollectionAddGetDel(t *testing.T) {
	req := require.New(t)
	c := NewCollection[*User]()

	_, ok := c.Get("missing")
	req.False(ok)

	c.Add(NewUser("a", "", ""))
	c.Add(NewUser("b", "", ""))

	u, ok := c.Get("a")
	req.True(ok)
	req.Equal("a", u.ID)
	req.Equal([]string{"a", "b"}, c.All())

	c.Del("a")
	_, ok = c.Get("a")
	req.False(ok)
	req.Equal([]string{"b"}, c.All())

	// deleting again is a no-op
	c.Del("a")
	req.Equal(1, c.Len())
}

func TestCollectionDuplicateAddIsNoop(t *testing.T) {
	req := require.New(t)
	c := NewCollection[*User]()

	first := NewUser("a", "first", "")
	c.Add(first)
	c.Add(NewUser("a", "second", ""))

	req.Equal([]string{"a"}, c.All())
	u, ok := c.Get("a")
	req.True(ok)
	req.Same(first, u)
}

func TestCollectionNeverHoldsDuplicateIDs(t *testing.T) {
	req := require.New(t)
	c := NewCollection[*User]()

	ops := []struct {
		add bool
		id  string
	}{
		{true, "a"}, {true, "b"}, {true, "a"},
		{false, "b"}, {true, "b"}, {true, "c"},
		{false, "x"}, {true, "a"},
	}

	for _, op := range ops {
		if op.add {
			c.Add(NewUser(op.id, "", ""))
		} else {
			c.Del(op.id)
		}

		seen := map[string]bool{}
		for _, id := range c.All() {
			req.False(seen[id], "duplicate id %q after ops", id)
			seen[id] = true
		}
	}

	req.Equal([]string{"a", "b", "c"}, c.All())
}

func TestCollectionSnapshotIsStable(t *testing.T) {
	req := require.New(t)
	c := NewCollection[*Room]()
	c.Add(NewRoom(RoomConfig{ID: "r1", Title: "one"}))
	c.Add(NewRoom(RoomConfig{ID: "r2", Title: "two"}))

	snap := c.Snapshot()
	c.Del("r1")

	// the snapshot still holds both rooms, the collection does not
	req.Len(snap, 2)
	req.Equal("r1", snap[0].ID)
	req.Equal([]string{"r2"}, c.All())
}
