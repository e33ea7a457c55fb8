package realtime

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/LarzzCode/LarGarage/utils"
)

// Event types
const (
	EventServiceUpdate   = "service_update"
	EventServiceDelete   = "service_delete"
	EventBoardUpdate     = "board_update"
	EventInventoryUpdate = "inventory_update"
	EventSettingsUpdate  = "settings_update"
	EventAlert           = "alert"
)

const (
	writeWait = 5 * time.Second
	// pesan yang boleh antre per client sebelum client dianggap macet
	sendBuffer = 32
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

type client struct {
	conn   *websocket.Conn
	userID uint
	send   chan []byte
}

// writePump is the only writer of conn. It stops once send is closed.
func (c *client) writePump(h *Hub) {
	defer c.conn.Close()
	for data := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			utils.ErrorLogger.Printf("Error sending to client (user=%d): %v", c.userID, err)
			h.UnregisterClient(c.conn)
			return
		}
	}
}

// Hub menampung semua client websocket (admin/mekanik) untuk broadcast
type Hub struct {
	clients map[*websocket.Conn]*client
	mutex   sync.Mutex
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]*client)}
}

// RegisterClient -> menambahkan connection ke set dan menjalankan writer-nya
func (h *Hub) RegisterClient(conn *websocket.Conn, userID uint) {
	c := &client{conn: conn, userID: userID, send: make(chan []byte, sendBuffer)}
	h.mutex.Lock()
	h.clients[conn] = c
	h.mutex.Unlock()
	go c.writePump(h)
}

// UnregisterClient -> melepaskan connection
func (h *Hub) UnregisterClient(conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	h.removeLocked(conn)
}

func (h *Hub) removeLocked(conn *websocket.Conn) {
	c, ok := h.clients[conn]
	if !ok {
		return
	}
	delete(h.clients, conn)
	close(c.send)
	conn.Close()
}

func (h *Hub) ClientCount() int {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return len(h.clients)
}

// BroadcastServiceUpdate -> service baru atau berubah
func (h *Hub) BroadcastServiceUpdate(service interface{}) {
	h.Broadcast(Message{Event: EventServiceUpdate, Data: service})
}

func (h *Hub) BroadcastServiceDelete(id uint) {
	h.Broadcast(Message{Event: EventServiceDelete, Data: map[string]uint{"id": id}})
}

// BroadcastBoardUpdate -> isi kolom board terbaru
func (h *Hub) BroadcastBoardUpdate(columns interface{}) {
	h.Broadcast(Message{Event: EventBoardUpdate, Data: columns})
}

func (h *Hub) BroadcastInventoryUpdate(data interface{}) {
	h.Broadcast(Message{Event: EventInventoryUpdate, Data: data})
}

func (h *Hub) BroadcastSettingsUpdate(settings interface{}) {
	h.Broadcast(Message{Event: EventSettingsUpdate, Data: settings})
}

// BroadcastAlert -> pesan error untuk ditampilkan ke user
func (h *Hub) BroadcastAlert(serviceID uint, message string) {
	h.Broadcast(Message{Event: EventAlert, Data: map[string]interface{}{
		"service_id": serviceID,
		"message":    message,
	}})
}

// Broadcast queues msg for every client without waiting on the network.
// A client whose queue is full is dropped.
func (h *Hub) Broadcast(msg Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		utils.ErrorLogger.Printf("Error marshaling message: %v", err)
		return
	}

	h.mutex.Lock()
	defer h.mutex.Unlock()

	for conn, c := range h.clients {
		select {
		case c.send <- data:
		default:
			utils.ErrorLogger.Printf("Dropping slow client (user=%d) on %s", c.userID, msg.Event)
			h.removeLocked(conn)
		}
	}
}
