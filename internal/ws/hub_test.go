package ws

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_RegisterAndSend(t *testing.T) {
	hub := NewHub()
	userID := uuid.New()
	c := newClient(hub, nil)

	assert.False(t, hub.Connected(userID))
	assert.False(t, hub.SendIfPresent(userID, []byte("hi")))

	hub.Register(userID, c)
	assert.True(t, hub.Connected(userID))

	require.True(t, hub.SendIfPresent(userID, []byte("hi")))
	assert.Equal(t, []byte("hi"), <-c.send)
}

func TestHub_RegisterReplacesPrevious(t *testing.T) {
	hub := NewHub()
	userID := uuid.New()
	first := newClient(hub, nil)
	second := newClient(hub, nil)

	hub.Register(userID, first)
	hub.Register(userID, second)

	// The displaced client's send channel is closed.
	_, open := <-first.send
	assert.False(t, open)

	require.True(t, hub.SendIfPresent(userID, []byte("hi")))
	assert.Equal(t, []byte("hi"), <-second.send)
}

func TestHub_UnregisterOnlyRemovesCurrent(t *testing.T) {
	hub := NewHub()
	userID := uuid.New()
	first := newClient(hub, nil)
	second := newClient(hub, nil)

	hub.Register(userID, first)
	hub.Register(userID, second)

	// The stale client disconnecting must not evict its replacement.
	hub.Unregister(userID, first)
	assert.True(t, hub.Connected(userID))

	hub.Unregister(userID, second)
	assert.False(t, hub.Connected(userID))

	_, open := <-second.send
	assert.False(t, open)
}

func TestHub_SendDropsClientWithFullBuffer(t *testing.T) {
	hub := NewHub()
	userID := uuid.New()
	c := newClient(hub, nil)
	hub.Register(userID, c)

	for i := 0; i < cap(c.send); i++ {
		require.True(t, hub.SendIfPresent(userID, []byte("fill")))
	}

	assert.False(t, hub.SendIfPresent(userID, []byte("overflow")))
	assert.False(t, hub.Connected(userID))
}
