package morse

import (
	"log"
	"sync"
	"sync/atomic"
)

// processor is the small per-direction interface the Pipeline Host
// dispatches to, per spec.md 9's guidance to model the
// decoder/encoder split as "a small trait / interface... avoid deep
// class hierarchies" rather than a tagged variant.
type processor[In, Out any] interface {
	process(item In) ([]Out, error)
}

type inItem[In any] struct {
	val     In
	isClose bool
}

// host is the Pipeline Host (spec.md 4.K): a single dedicated worker
// goroutine consuming an input queue and producing an output queue,
// with put/get/wait/close lifecycle.
//
// Grounded on both the teacher's processLoop
// (audio_extensions/morse/decoder.go: a goroutine select-looping over
// a stop channel and an audio channel) and
// original_source/libmorse/translator.py's BaseTranslator (_run loop,
// CLOSE_SENTINEL, put/get/close/closed) — host unifies the two into a
// dedicated goroutine plus the queue type (queue.go) instead of Python's
// Queue/threading.Event pair.
type host[In, Out any] struct {
	name string

	input  *queue[inItem[In]]
	output *queue[Out]
	proc   processor[In, Out]

	closing atomic.Bool // set the instant Close() is called
	closed  atomic.Bool // set once the worker has drained the sentinel

	pending sync.WaitGroup // outstanding (pushed, not yet processed) input items
	done    chan struct{}
}

func newHost[In, Out any](name string, proc processor[In, Out], inputQueueSize int) *host[In, Out] {
	h := &host[In, Out]{
		name:   name,
		input:  newQueue[inItem[In]](inputQueueSize),
		output: newQueue[Out](0),
		proc:   proc,
		done:   make(chan struct{}),
	}
	go h.run()
	return h
}

func (h *host[In, Out]) run() {
	defer close(h.done)
	for {
		item := h.input.popBlocking()
		if item.isClose {
			h.closed.Store(true)
			log.Printf("[%s] closed, worker exiting", h.name)
			h.pending.Done()
			return
		}

		outputs, err := h.proc.process(item.val)
		if err != nil {
			log.Printf("[%s] process error: %v", h.name, err)
			if isFatalError(err) {
				// spec.md 7: an unexpected internal error terminates the
				// worker; subsequent put/get observe Closed.
				h.closing.Store(true)
				h.closed.Store(true)
				h.pending.Done()
				return
			}
			h.pending.Done()
			continue
		}
		for _, o := range outputs {
			h.output.push(o)
		}
		h.pending.Done()
	}
}

// Put enqueues one input item. Fails with ErrAlreadyClosed if the
// host is closed, or ErrFullQueue if the input queue is bounded and
// full.
func (h *host[In, Out]) Put(item In) error {
	if h.closing.Load() {
		return ErrAlreadyClosed
	}
	h.pending.Add(1)
	if !h.input.push(inItem[In]{val: item}) {
		h.pending.Done()
		return ErrFullQueue
	}
	return nil
}

// Get dequeues one output item. If blocking is false and the output
// queue is empty, it returns ErrEmpty immediately.
func (h *host[In, Out]) Get(blocking bool) (Out, error) {
	var zero Out
	if h.closed.Load() && h.output.len() == 0 {
		return zero, ErrAlreadyClosed
	}
	if blocking {
		return h.output.popBlocking(), nil
	}
	v, ok := h.output.popNonBlocking()
	if !ok {
		return zero, ErrEmpty
	}
	return v, nil
}

// Wait blocks until every item enqueued so far has been processed.
func (h *host[In, Out]) Wait() {
	h.pending.Wait()
}

// Close enqueues the close sentinel (after any already-pending
// items), marking the host closing immediately. A second Close call
// fails with ErrAlreadyClosed — the spec.md 5 "idempotent in effect"
// wording still surfaces a distinct failure on the second attempt.
func (h *host[In, Out]) Close() error {
	if h.closing.Swap(true) {
		return ErrAlreadyClosed
	}
	h.pending.Add(1)
	h.input.push(inItem[In]{isClose: true})
	return nil
}

// Closed reports whether Close has been called or the worker has
// stopped on a fatal error.
func (h *host[In, Out]) Closed() bool {
	return h.closing.Load()
}
