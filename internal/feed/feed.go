package feed

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const channel = "studio_changes"

// Event is one collection change pushed to subscribed admin sessions.
type Event struct {
	Collection string    `json:"collection"`
	Action     string    `json:"action"`
	EntityID   string    `json:"entityId"`
	At         time.Time `json:"at"`
}

// Subscription is a scoped resource: the consumer reads from C and must call
// Unsubscribe on teardown.
type Subscription struct {
	C   <-chan Event
	id  uint64
	hub *Hub
}

func (s *Subscription) Unsubscribe() {
	s.hub.drop(s.id)
}

// Hub relays collection changes between sessions through Postgres
// LISTEN/NOTIFY, so every running instance sees writes made by any of them.
type Hub struct {
	pool *pgxpool.Pool

	mu     sync.Mutex
	nextID uint64
	subs   map[uint64]chan Event
}

func NewHub(ctx context.Context, dbURL string) (*Hub, error) {
	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		return nil, err
	}

	h := &Hub{
		pool: pool,
		subs: make(map[uint64]chan Event),
	}

	go h.listen(ctx, dbURL)
	return h, nil
}

// Publish notifies every listener, local and remote, of one write.
// A nil hub publishes nothing.
func (h *Hub) Publish(ctx context.Context, collection, action, entityID string) {
	if h == nil {
		return
	}

	ev := Event{
		Collection: collection,
		Action:     action,
		EntityID:   entityID,
		At:         time.Now().UTC(),
	}

	payload, err := json.Marshal(ev)
	if err != nil {
		return
	}

	if _, err := h.pool.Exec(ctx, "SELECT pg_notify($1, $2)", channel, string(payload)); err != nil {
		log.Printf("feed publish: %v", err)
	}
}

func (h *Hub) Subscribe() *Subscription {
	ch := make(chan Event, 16)

	h.mu.Lock()
	h.nextID++
	id := h.nextID
	h.subs[id] = ch
	h.mu.Unlock()

	return &Subscription{C: ch, id: id, hub: h}
}

func (h *Hub) drop(id uint64) {
	h.mu.Lock()
	if ch, ok := h.subs[id]; ok {
		delete(h.subs, id)
		close(ch)
	}
	h.mu.Unlock()
}

// listen holds a dedicated connection on the notification channel and fans
// incoming events out to local subscribers, reconnecting on error.
func (h *Hub) listen(ctx context.Context, dbURL string) {
	for {
		if err := h.listenOnce(ctx, dbURL); err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("feed listener: %v", err)
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(3 * time.Second):
		}
	}
}

func (h *Hub) listenOnce(ctx context.Context, dbURL string) error {
	conn, err := pgx.Connect(ctx, dbURL)
	if err != nil {
		return err
	}
	defer conn.Close(context.Background())

	if _, err := conn.Exec(ctx, "LISTEN "+channel); err != nil {
		return err
	}

	for {
		n, err := conn.WaitForNotification(ctx)
		if err != nil {
			return err
		}

		var ev Event
		if err := json.Unmarshal([]byte(n.Payload), &ev); err != nil {
			continue
		}
		h.broadcast(ev)
	}
}

func (h *Hub) broadcast(ev Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, ch := range h.subs {
		// A slow consumer loses events rather than stalling the hub.
		select {
		case ch <- ev:
		default:
		}
	}
}
