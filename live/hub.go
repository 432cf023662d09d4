package live

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"

	"fairway/configs"
)

// Client is one open dashboard session watching a config room.
type Client struct {
	Conn   *websocket.Conn
	Send   chan []byte
	Room   string
	UserID string
}

type broadcastMsg struct {
	Room string
	Data []byte
}

// Hub groups websocket clients into rooms keyed by the watched client id.
// While a room has members the hub holds one snapshot subscription for it
// and fans every re-delivered snapshot out to the members.
type Hub struct {
	rooms      map[string]map[*Client]bool
	pumps      map[string]func()
	register   chan *Client
	unregister chan *Client
	broadcast  chan broadcastMsg
	done       chan struct{}
	mu         sync.Mutex

	subscribe func(ctx context.Context, clientID string) (<-chan configs.Snapshot, func(), error)
}

func NewHub() *Hub {
	return &Hub{
		rooms:      make(map[string]map[*Client]bool),
		pumps:      make(map[string]func()),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan broadcastMsg),
		done:       make(chan struct{}),
		subscribe:  configs.Subscribe,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case c := <-h.register:
			h.mu.Lock()
			if h.rooms[c.Room] == nil {
				h.rooms[c.Room] = make(map[*Client]bool)
				h.startPump(c.Room)
			}
			h.rooms[c.Room][c] = true
			h.mu.Unlock()

		case c := <-h.unregister:
			h.mu.Lock()
			if conns := h.rooms[c.Room]; conns != nil && conns[c] {
				delete(conns, c)
				close(c.Send)
				if len(conns) == 0 {
					delete(h.rooms, c.Room)
					h.stopPump(c.Room)
				}
			}
			h.mu.Unlock()

		case m := <-h.broadcast:
			h.mu.Lock()
			for c := range h.rooms[m.Room] {
				select {
				case c.Send <- m.Data:
				default:
					close(c.Send)
					delete(h.rooms[m.Room], c)
				}
			}
			h.mu.Unlock()

		case <-h.done:
			h.mu.Lock()
			for room, conns := range h.rooms {
				for c := range conns {
					close(c.Send)
				}
				delete(h.rooms, room)
				h.stopPump(room)
			}
			h.mu.Unlock()
			return
		}
	}
}

func (h *Hub) Stop() {
	close(h.done)
}

// startPump opens the room's snapshot subscription. Caller holds h.mu.
func (h *Hub) startPump(room string) {
	ch, cancel, err := h.subscribe(context.Background(), room)
	if err != nil {
		log.Printf("live: subscribe %s failed: %v", room, err)
		return
	}
	h.pumps[room] = cancel

	go func() {
		for snap := range ch {
			data, err := json.Marshal(snap)
			if err != nil {
				continue
			}
			select {
			case h.broadcast <- broadcastMsg{Room: room, Data: data}:
			case <-h.done:
				return
			}
		}
	}()
}

// stopPump cancels the room's subscription. Caller holds h.mu.
func (h *Hub) stopPump(room string) {
	if cancel := h.pumps[room]; cancel != nil {
		cancel()
		delete(h.pumps, room)
	}
}
