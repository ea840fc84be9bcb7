package rest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/cometbft/cometbft/libs/log"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/axelarnetwork/polls/utils/events"
	"github.com/axelarnetwork/polls/x/poll/exported"
	"github.com/axelarnetwork/polls/x/poll/types"
)

const (
	sendBufferSize = 16
	writeTimeout   = 10 * time.Second
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type subscriber struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub pushes the results of a poll to its websocket subscribers whenever a vote is counted
type Hub struct {
	host   Host
	logger log.Logger

	mu          sync.Mutex
	subscribers map[string]map[*subscriber]struct{}
}

// NewHub returns a new hub
func NewHub(host Host, logger log.Logger) *Hub {
	return &Hub{
		host:        host,
		logger:      logger,
		subscribers: make(map[string]map[*subscriber]struct{}),
	}
}

// ServeHTTP upgrades the connection and streams the results of the poll in the request path, starting with the current results
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	pollID := mux.Vars(r)[PathVarPollID]

	stats, ok := h.host.ShowResults(pollID)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("no poll known for %s", pollID))
		return
	}

	bz, err := json.Marshal(stats.View())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Debug(fmt.Sprintf("failed to upgrade connection: %s", err), "poll", pollID)
		return
	}

	// the server read timeout must not end the stream
	if err := conn.SetReadDeadline(time.Time{}); err != nil {
		conn.Close()
		return
	}

	sub := &subscriber{conn: conn, send: make(chan []byte, sendBufferSize)}
	sub.send <- bz

	h.register(pollID, sub)
	defer h.unregister(pollID, sub)

	go h.writeLoop(sub)

	// the client never sends anything meaningful, reading only detects a closed connection
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// Publish is an event listener. It pushes fresh results for every poll with a counted vote among the given events.
func (h *Hub) Publish(evts sdk.Events) {
	for _, event := range evts {
		if event.Type != types.EventTypeVoted {
			continue
		}

		if result, _ := events.Attribute(event, types.AttributeKeyResult); result != exported.VoteAccepted.String() {
			continue
		}

		pollID, ok := events.Attribute(event, types.AttributeKeyPollID)
		if !ok || h.subscriberCount(pollID) == 0 {
			continue
		}

		stats, ok := h.host.ShowResults(pollID)
		if !ok {
			continue
		}

		bz, err := json.Marshal(stats.View())
		if err != nil {
			h.logger.Error(fmt.Sprintf("failed to encode results: %s", err), "poll", pollID)
			continue
		}

		h.broadcast(pollID, bz)
	}
}

func (h *Hub) writeLoop(sub *subscriber) {
	defer sub.conn.Close()

	for bz := range sub.send {
		if err := sub.conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
			return
		}

		if err := sub.conn.WriteMessage(websocket.TextMessage, bz); err != nil {
			h.logger.Debug(fmt.Sprintf("failed to write to subscriber: %s", err))
			return
		}
	}
}

func (h *Hub) broadcast(pollID string, bz []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for sub := range h.subscribers[pollID] {
		select {
		case sub.send <- bz:
		default:
			h.logger.Debug("dropping results update for slow subscriber", "poll", pollID)
		}
	}
}

func (h *Hub) subscriberCount(pollID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.subscribers[pollID])
}

func (h *Hub) register(pollID string, sub *subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.subscribers[pollID]; !ok {
		h.subscribers[pollID] = make(map[*subscriber]struct{})
	}

	h.subscribers[pollID][sub] = struct{}{}
}

func (h *Hub) unregister(pollID string, sub *subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.subscribers[pollID][sub]; !ok {
		return
	}

	delete(h.subscribers[pollID], sub)
	if len(h.subscribers[pollID]) == 0 {
		delete(h.subscribers, pollID)
	}

	close(sub.send)
}
