package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var wsUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type wsClient struct {
	Conn   *websocket.Conn
	UserID uint
}

var wsClients = make(map[*websocket.Conn]wsClient)

// HandleWebSocket keeps a connection open so admin dashboards receive live
// question-bank events.
func HandleWebSocket(c *gin.Context) {
	conn, err := wsUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	userIDRaw, exists := c.Get("user_id")
	if !exists {
		conn.Close()
		return
	}
	userID, ok := userIDRaw.(uint)
	if !ok {
		conn.Close()
		return
	}

	wsClients[conn] = wsClient{Conn: conn, UserID: userID}
	defer func() {
		delete(wsClients, conn)
		conn.Close()
	}()

	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			break
		}
	}
}

// BroadcastQuestionEvent notifies every connected client of a change to the
// question bank (add, bulk upload, delete).
func BroadcastQuestionEvent(event string, payload interface{}) {
	msg, _ := json.Marshal(map[string]interface{}{
		"event": event,
		"data":  payload,
	})
	for conn := range wsClients {
		conn.WriteMessage(websocket.TextMessage, msg)
	}
}
