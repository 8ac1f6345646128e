package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"oorms/internal/core/application/usecases/queries"
	"oorms/internal/core/domain/model/restaurant"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

const (
	feedWriteTimeout = 5 * time.Second
	feedClientBuffer = 16
)

type feedClient struct {
	conn *websocket.Conn
	send chan []byte
}

// KitchenFeed is a restaurant.View that pushes the kitchen board to every
// connected WebSocket client. Update runs with the model owner and never
// blocks on the network: a client whose buffer is full is dropped.
type KitchenFeed struct {
	restaurant *restaurant.Restaurant
	upgrader   websocket.Upgrader
	logger     *slog.Logger

	mutex   sync.Mutex
	clients map[*feedClient]struct{}
	last    []byte
}

// NewKitchenFeed creates an empty feed.
func NewKitchenFeed(r *restaurant.Restaurant, logger *slog.Logger) *KitchenFeed {
	return &KitchenFeed{
		restaurant: r,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
		logger:  logger.With("component", "KitchenFeed"),
		clients: make(map[*feedClient]struct{}),
	}
}

// Update broadcasts the current kitchen board.
func (f *KitchenFeed) Update() {
	board, err := queries.ProjectKitchenBoard(f.restaurant)
	if err != nil {
		f.logger.Error("failed to project kitchen board", "error", err)
		return
	}

	data, err := json.Marshal(FeedMessage{Event: EventKitchenUpdate, Data: toKitchenBoard(board)})
	if err != nil {
		f.logger.Error("failed to encode kitchen board", "error", err)
		return
	}

	f.mutex.Lock()
	defer f.mutex.Unlock()

	f.last = data
	for c := range f.clients {
		select {
		case c.send <- data:
		default:
			f.logger.Warn("dropping slow client", "remote", c.conn.RemoteAddr().String())
			f.removeLocked(c)
		}
	}
}

// Clients returns the number of connected clients.
func (f *KitchenFeed) Clients() int {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	return len(f.clients)
}

// Handle handles GET /api/v1/kitchen/feed. The client first receives the
// last board broadcast, then every update until it disconnects.
func (f *KitchenFeed) Handle(c echo.Context) error {
	conn, err := f.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// the upgrader already wrote the error response
		f.logger.Warn("websocket upgrade failed", "error", err)
		return nil
	}

	client := &feedClient{conn: conn, send: make(chan []byte, feedClientBuffer)}
	f.add(client)
	f.logger.Info("client connected", "remote", conn.RemoteAddr().String())

	go f.writePump(client)
	f.readPump(client)
	return nil
}

// Close disconnects every client.
func (f *KitchenFeed) Close() {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	for c := range f.clients {
		f.removeLocked(c)
	}
}

func (f *KitchenFeed) add(c *feedClient) {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	f.clients[c] = struct{}{}
	if f.last != nil {
		c.send <- f.last
	}
}

func (f *KitchenFeed) remove(c *feedClient) {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	f.removeLocked(c)
}

func (f *KitchenFeed) removeLocked(c *feedClient) {
	if _, ok := f.clients[c]; !ok {
		return
	}
	delete(f.clients, c)
	close(c.send)
	_ = c.conn.Close()
}

func (f *KitchenFeed) writePump(c *feedClient) {
	for data := range c.send {
		_ = c.conn.SetWriteDeadline(time.Now().Add(feedWriteTimeout))
		if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			f.logger.Debug("write failed", "error", err)
			f.remove(c)
			return
		}
	}
}

// readPump discards what the client says and notices when it goes away.
func (f *KitchenFeed) readPump(c *feedClient) {
	defer f.remove(c)
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			f.logger.Info("client disconnected", "remote", c.conn.RemoteAddr().String())
			return
		}
	}
}
