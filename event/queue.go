package event

import (
	"sync/atomic"

	"github.com/lixenwraith/alongpath/parameter"
)

// EventQueue is a lock-free MPSC ring of path events between followers and
// the render/audio consumer
//   - Push: any number of producers (followers may tick on worker goroutines)
//   - Drain/Consume: one consumer per frame
//
// When the consumer falls behind, the oldest events are dropped and counted;
// cues for stale transitions are worthless once newer ones exist
type EventQueue struct {
	events    [parameter.EventQueueSize]PathEvent
	published [parameter.EventQueueSize]atomic.Bool // Slot fully written
	head      atomic.Uint64                         // Next slot to read
	tail      atomic.Uint64                         // Next slot to reserve
	dropped   atomic.Uint64
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push appends ev, dropping the oldest pending event when full
func (eq *EventQueue) Push(ev PathEvent) {
	slot := eq.tail.Add(1) - 1
	idx := slot & parameter.EventBufferMask
	eq.events[idx] = ev
	eq.published[idx].Store(true) // After the write

	// Losers of the head race retry so head never lags more than one ring
	end := slot + 1
	for {
		head := eq.head.Load()
		if end-head <= parameter.EventQueueSize {
			return
		}
		if eq.head.CompareAndSwap(head, end-parameter.EventQueueSize) {
			eq.dropped.Add(end - parameter.EventQueueSize - head)
			return
		}
	}
}

// Drain appends every pending event to dst in FIFO order and returns it
// Reuse dst across frames to avoid per-frame allocation
func (eq *EventQueue) Drain(dst []PathEvent) []PathEvent {
	for {
		head := eq.head.Load()
		tail := eq.tail.Load()
		if tail == head {
			return dst
		}

		from := head
		if tail-head > parameter.EventQueueSize {
			from = tail - parameter.EventQueueSize
		}

		n := 0
		base := len(dst)
		for slot := from; slot < tail; slot++ {
			idx := slot & parameter.EventBufferMask
			if !eq.published[idx].Load() {
				break // Producer still writing
			}
			dst = append(dst, eq.events[idx])
			n++
		}

		// CAS against the observed head, not the skipped-to slot
		if eq.head.CompareAndSwap(head, from+uint64(n)) {
			for slot := from; slot < from+uint64(n); slot++ {
				eq.published[slot&parameter.EventBufferMask].Store(false)
			}
			if from > head {
				eq.dropped.Add(from - head)
			}
			return dst
		}
		dst = dst[:base]
	}
}

// Consume returns all pending events, or nil when there are none
func (eq *EventQueue) Consume() []PathEvent {
	evs := eq.Drain(nil)
	if len(evs) == 0 {
		return nil
	}
	return evs
}

// Len returns the pending event count, capped at the ring size
func (eq *EventQueue) Len() int {
	n := eq.tail.Load() - eq.head.Load()
	if int64(n) < 0 {
		return 0
	}
	return int(min(n, parameter.EventQueueSize))
}

// Dropped returns how many events were overwritten before being consumed
func (eq *EventQueue) Dropped() uint64 {
	return eq.dropped.Load()
}
