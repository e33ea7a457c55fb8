package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/LarzzCode/LarGarage/utils"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // token sudah dicek oleh WebSocketAuthMiddleware
	},
}

type RealtimeController struct {
	*Workshop
}

func NewRealtimeController(w *Workshop) *RealtimeController {
	return &RealtimeController{Workshop: w}
}

// Connect -> endpoint WebSocket untuk admin/mekanik
func (rc *RealtimeController) Connect(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.ErrorLogger.Printf("Websocket upgrade failed: %v", err)
		return
	}

	rc.Hub.RegisterClient(ws, userID)
	utils.InfoLogger.Printf("Realtime client connected (user=%d)", userID)

	// Client tidak mengirim apa-apa, loop ini hanya menunggu disconnect
	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			break
		}
	}

	rc.Hub.UnregisterClient(ws)
}
