package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventReduceStart EventType = "reduce_start"
	EventGroup       EventType = "group"
	EventReduceEnd   EventType = "reduce_end"
)

// Mode tells whether a seed carried its own preamble or had one synthesized.
type Mode string

const (
	ModePreamble Mode = "preamble"
	ModeImplicit Mode = "implicit"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	Mode      Mode      `json:"mode"`
}

// ReduceEvent is emitted at the start and at the end of a reduction.
// Fingerprint and Err are only set on EventReduceEnd.
type ReduceEvent struct {
	EventBase
	SeedLength  int    `json:"seed_length"`
	Groups      int    `json:"groups,omitempty"`
	Fingerprint string `json:"fingerprint,omitempty"`
	Err         error  `json:"-"`
	CacheHit    bool   `json:"cache_hit,omitempty"`
}

// GroupEvent is emitted after one chunk has been transformed by its action.
type GroupEvent struct {
	EventBase
	Index    int    `json:"index"`
	Selector Symbol `json:"selector"`
	Chunk    string `json:"chunk"`
	Result   Block  `json:"result"`
}

// LifecycleHooks defines callbacks for engine observability.
// Nil callbacks are skipped.
type LifecycleHooks struct {
	OnReduceStart func(context.Context, *ReduceEvent)
	OnGroup       func(context.Context, *GroupEvent)
	OnReduceEnd   func(context.Context, *ReduceEvent)
}
