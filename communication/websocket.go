package communication

import (
	"log"

	"github.com/gorilla/websocket"
)

type WSEvent struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

const (
	EventBotRegistered  = "BOT_REGISTERED"
	EventMoodChanged    = "MOOD_CHANGED"
	EventRivalryFormed  = "RIVALRY_FORMED"
	EventAllianceFormed = "ALLIANCE_FORMED"
	EventTrashTalk      = "TRASH_TALK"
	EventMatchupResult  = "MATCHUP_RESULT"
	EventDraftGraded    = "DRAFT_GRADED"
	EventTradeProposed  = "TRADE_PROPOSED"
	EventTradeVoteCast  = "TRADE_VOTE_CAST"
	EventTradeResolved  = "TRADE_RESOLVED"
)

// WebSocketManager fans events out to every connected spectator. The
// clients map is owned by the run goroutine; all mutation goes through
// the channels.
type WebSocketManager struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan WSEvent
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
}

var wsManager = newWSManager()

func newWSManager() *WebSocketManager {
	m := &WebSocketManager{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan WSEvent, 64),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
	}
	go m.run()
	return m
}

func GetWSManager() *WebSocketManager {
	return wsManager
}

func (manager *WebSocketManager) run() {
	for {
		select {
		case client := <-manager.register:
			manager.clients[client] = true

		case client := <-manager.unregister:
			if _, ok := manager.clients[client]; ok {
				delete(manager.clients, client)
				client.Close()
			}

		case event := <-manager.broadcast:
			for client := range manager.clients {
				if err := client.WriteJSON(event); err != nil {
					log.Printf("WebSocket error: %v", err)
					client.Close()
					delete(manager.clients, client)
				}
			}
		}
	}
}

// BroadcastEvent queues an event for every connected client.
func BroadcastEvent(eventType string, payload interface{}) {
	GetWSManager().broadcast <- WSEvent{Type: eventType, Payload: payload}
}

func (w *WebSocketManager) Register() chan<- *websocket.Conn {
	return w.register
}

func (w *WebSocketManager) Unregister() chan<- *websocket.Conn {
	return w.unregister
}
