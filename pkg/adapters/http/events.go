package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/aretw0/marvin/pkg/domain"
)

// StreamManager fans reduction events out to active SSE connections.
type StreamManager struct {
	mu          sync.RWMutex
	subscribers map[chan<- string]struct{}
	logger      *slog.Logger
}

func NewStreamManager(logger *slog.Logger) *StreamManager {
	return &StreamManager{
		subscribers: make(map[chan<- string]struct{}),
		logger:      logger,
	}
}

// Subscribe registers a listener. The returned func unregisters it and closes the channel.
func (sm *StreamManager) Subscribe() (chan string, func()) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	ch := make(chan string, 10)
	sm.subscribers[ch] = struct{}{}

	return ch, func() {
		sm.mu.Lock()
		defer sm.mu.Unlock()
		if _, ok := sm.subscribers[ch]; ok {
			delete(sm.subscribers, ch)
			close(ch)
		}
	}
}

// Subscribers reports how many listeners are attached.
func (sm *StreamManager) Subscribers() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return len(sm.subscribers)
}

func (sm *StreamManager) Broadcast(msg string) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	for ch := range sm.subscribers {
		select {
		case ch <- msg:
		default:
			// Drop message if channel is full (slow client)
			sm.logger.Warn("SSE: Client buffer full, dropping message")
		}
	}
}

// reduceEndPayload is the SSE form of a finished reduction.
type reduceEndPayload struct {
	*domain.ReduceEvent
	Error string `json:"error,omitempty"`
	Kind  string `json:"kind,omitempty"`
}

// Hooks returns lifecycle callbacks that broadcast every finished reduction.
func (sm *StreamManager) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnReduceEnd: func(_ context.Context, e *domain.ReduceEvent) {
			payload := reduceEndPayload{ReduceEvent: e}
			if e.Err != nil {
				payload.Error = e.Err.Error()
				payload.Kind = domain.Kind(e.Err)
			}
			data, err := json.Marshal(payload)
			if err != nil {
				sm.logger.Warn("SSE: Failed to encode event", "err", err)
				return
			}
			sm.Broadcast(string(data))
		},
	}
}
