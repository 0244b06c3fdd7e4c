package services

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscribeReplacesPreviousKey(t *testing.T) {
	c := NewWSClient(1, nil)

	c.Subscribe(RoleWellness, "2025-01-06")
	assert.True(t, c.wants(RoleWellness, "2025-01-06"))

	// re-subscribing the same role moves the subscription, it never stacks
	c.Subscribe(RoleWellness, "2025-01-13")
	assert.True(t, c.wants(RoleWellness, "2025-01-13"))
	assert.False(t, c.wants(RoleWellness, "2025-01-06"))
}

func TestSubscriptionsPerRoleAreIndependent(t *testing.T) {
	c := NewWSClient(1, nil)

	c.Subscribe(RoleWellness, "2025-01-06")
	c.Subscribe(RoleMealPlan, "2025-01-06")
	c.Subscribe(RoleTodos, "")

	assert.True(t, c.wants(RoleWellness, "2025-01-06"))
	assert.True(t, c.wants(RoleMealPlan, "2025-01-06"))
	assert.True(t, c.wants(RoleTodos, ""))

	c.Unsubscribe(RoleMealPlan)
	assert.False(t, c.wants(RoleMealPlan, "2025-01-06"))
	assert.True(t, c.wants(RoleWellness, "2025-01-06"))
}

func TestUnsubscribedRoleMatchesNothing(t *testing.T) {
	c := NewWSClient(1, nil)
	assert.False(t, c.wants(RoleWishes, ""))
	assert.False(t, c.wants(RoleWellness, "2025-01-06"))
}

func TestPingAndBroadcastWritesAreSerialized(t *testing.T) {
	hub := NewRealtimeHub()
	upgrader := websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }}
	registered := make(chan *WSClient, 1)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		cl := NewWSClient(7, conn)
		cl.Subscribe(RoleWellness, "2025-01-06")
		hub.Register(cl)
		registered <- cl
	}))
	defer srv.Close()

	peer, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	defer peer.Close()

	// drain incoming frames so writes never block on the peer
	go func() {
		for {
			if _, _, err := peer.ReadMessage(); err != nil {
				return
			}
		}
	}()

	cl := <-registered

	// keepalive pings and document broadcasts race on the same connection;
	// both must go through the client's write lock
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			_ = cl.Ping()
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			hub.BroadcastDoc(7, DocEvent{Role: RoleWellness, Key: "2025-01-06", Payload: i})
		}
	}()
	wg.Wait()
}

func TestHubRegisterBookkeeping(t *testing.T) {
	h := NewRealtimeHub()
	a := NewWSClient(1, nil)
	b := NewWSClient(1, nil)

	h.Register(a)
	h.Register(b)
	assert.Len(t, h.clients[1], 2)

	// broadcast to a user with no matching subscribers delivers nothing
	h.BroadcastDoc(1, DocEvent{Role: RoleWellness, Key: "2025-01-06", Payload: "x"})
	h.BroadcastDoc(2, DocEvent{Role: RoleWellness, Key: "2025-01-06", Payload: "x"})
}
