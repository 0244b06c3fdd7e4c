package controllers

import (
	"encoding/json"
	"net/http"
	"time"

	"backend/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type RealtimeController struct {
	Hub *services.RealtimeHub
}

func NewRealtimeController(hub *services.RealtimeHub) *RealtimeController {
	return &RealtimeController{Hub: hub}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true }, // tighten behind a proxy if needed
}

// subscribeMsg is what clients send to (re)point a role's subscription.
// Re-subscribing a role to a new key replaces the old subscription.
type subscribeMsg struct {
	Action string `json:"action"` // "subscribe" | "unsubscribe"
	Role   string `json:"role"`
	Key    string `json:"key"`
}

// DocsWS upgrades the connection and serves document change notifications.
func (rc *RealtimeController) DocsWS(c *gin.Context) {
	uid := c.GetUint("userID")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	cl := services.NewWSClient(uid, conn)
	rc.Hub.Register(cl)

	// ping to keep connections alive through proxies
	go func() {
		t := time.NewTicker(25 * time.Second)
		defer t.Stop()
		for range t.C {
			if err := cl.Ping(); err != nil {
				rc.Hub.Unregister(cl)
				return
			}
		}
	}()

	// read loop: subscription management; ends on client close/error
	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			rc.Hub.Unregister(cl)
			return
		}
		var msg subscribeMsg
		if err := json.Unmarshal(raw, &msg); err != nil {
			continue
		}
		role := services.DocRole(msg.Role)
		switch msg.Action {
		case "subscribe":
			cl.Subscribe(role, msg.Key)
		case "unsubscribe":
			cl.Unsubscribe(role)
		}
	}
}
