package ws

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/Tinesuzb/milano-cafe-uzb/repository"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Event is what admin dashboards receive over the feed.
type Event struct {
	Type     string `json:"type"` // "order.created" | "order.updated"
	OrderIDs []uint `json:"order_ids,omitempty"`
	Order    any    `json:"order,omitempty"`
}

// OrderFeed pushes order events to connected admin clients. New orders are
// detected server-side: a watcher polls the order ID set every interval and
// diffs it against the previously seen set. Notifications start only once a
// non-empty baseline exists, so a dashboard connecting to a fresh table is
// not greeted with a storm. Delivery is best-effort: a client that is
// offline during an event never sees it.
type OrderFeed struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan Event
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	mu         sync.Mutex

	repo     *repository.OrderRepository // nil in demo mode: feed runs, watcher doesn't
	interval time.Duration
	known    map[uint]bool
}

func NewOrderFeed(repo *repository.OrderRepository, interval time.Duration) *OrderFeed {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &OrderFeed{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan Event),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		repo:       repo,
		interval:   interval,
		known:      make(map[uint]bool),
	}
}

// Run owns the client set and the poll timer. Call in a goroutine.
func (f *OrderFeed) Run() {
	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()

	for {
		select {
		case conn := <-f.register:
			f.mu.Lock()
			f.clients[conn] = true
			f.mu.Unlock()

		case conn := <-f.unregister:
			f.mu.Lock()
			if _, ok := f.clients[conn]; ok {
				delete(f.clients, conn)
				conn.Close()
			}
			f.mu.Unlock()

		case evt := <-f.broadcast:
			f.send(evt)

		case <-ticker.C:
			if f.repo != nil {
				f.poll()
			}
		}
	}
}

// Publish pushes an event to every connected client.
func (f *OrderFeed) Publish(evt Event) {
	f.broadcast <- evt
}

func (f *OrderFeed) send(evt Event) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for conn := range f.clients {
		if err := conn.WriteJSON(evt); err != nil {
			log.Printf("ws write error: %v", err)
			conn.Close()
			delete(f.clients, conn)
		}
	}
}

// poll diffs the current order ID set against the known baseline.
func (f *OrderFeed) poll() {
	ids, err := f.repo.ListIDs()
	if err != nil {
		log.Printf("order feed poll error: %v", err)
		return
	}

	var fresh []uint
	for _, id := range ids {
		if !f.known[id] {
			fresh = append(fresh, id)
		}
	}

	if len(fresh) > 0 && len(f.known) > 0 {
		f.send(Event{Type: "order.created", OrderIDs: fresh})
	}

	for _, id := range ids {
		f.known[id] = true
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// HandleWebSocket upgrades an (already authenticated) admin connection and
// parks it on the feed. The read loop exists only to notice disconnects.
func (f *OrderFeed) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}
	f.register <- conn

	go func() {
		defer func() { f.unregister <- conn }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
