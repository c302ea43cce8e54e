package hub

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifyDeliversToRegisteredClient(t *testing.T) {
	h := NewHub()
	client := NewClient()
	h.Register("bob", client)

	h.Notify("bob", UpdateEvent("alice"))

	var event Event
	require.NoError(t, json.Unmarshal(<-client, &event))
	assert.Equal(t, "update", event.Type)
}

func TestNotifyOfflineUserIsDropped(t *testing.T) {
	h := NewHub()

	// Must not block or panic; there is nobody to deliver to.
	h.Notify("ghost", UpdateEvent("alice"))
	assert.False(t, h.Online("ghost"))
}

func TestNotifySaturatedClientIsDropped(t *testing.T) {
	h := NewHub()
	client := make(Client) // unbuffered and never read
	h.Register("bob", client)

	// At-most-once: the send must not block.
	h.Notify("bob", UpdateEvent("alice"))
}

func TestRegisterIsLastWriteWins(t *testing.T) {
	h := NewHub()
	first := NewClient()
	second := NewClient()

	h.Register("bob", first)
	h.Register("bob", second)

	// The replaced connection is closed.
	_, open := <-first
	assert.False(t, open)

	h.Notify("bob", UpdateEvent("alice"))
	select {
	case msg := <-second:
		assert.NotEmpty(t, msg)
	default:
		t.Fatal("event not delivered to current connection")
	}
}

func TestUnregisterIgnoresStaleConnection(t *testing.T) {
	h := NewHub()
	stale := NewClient()
	current := NewClient()

	h.Register("bob", stale)
	h.Register("bob", current)

	// The old session disconnecting must not evict the new one.
	h.Unregister("bob", stale)
	assert.True(t, h.Online("bob"))

	h.Unregister("bob", current)
	assert.False(t, h.Online("bob"))
}
