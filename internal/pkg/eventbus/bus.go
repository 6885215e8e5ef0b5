package eventbus

import (
	"sync"
)

// subscriptionBuffer is the per-subscription channel capacity. A consumer
// that falls further behind than this loses events rather than slowing the
// publisher down.
const subscriptionBuffer = 16

// Topic is a named event channel subscribers attach to.
type Topic string

// Filter decides per event whether a subscription receives it. A nil filter
// accepts everything. Filters run on the publisher's goroutine and must be
// fast and side-effect-free.
type Filter[T any] func(event T) bool

// Subscription is one listener's attachment to a topic. It is owned by the
// subscribing session and must be cancelled when that session ends;
// otherwise the bus keeps a reference to it forever.
type Subscription[T any] struct {
	id     uint64
	topic  Topic
	filter Filter[T]
	events chan T

	bus  *Bus[T]
	once sync.Once
}

// Events returns the subscription's event stream. The channel is closed by
// Cancel; ranging over it terminates when the subscription ends.
func (s *Subscription[T]) Events() <-chan T {
	return s.events
}

// Cancel detaches the subscription from the bus and closes its event
// channel. Safe to call more than once and concurrently with Publish.
func (s *Subscription[T]) Cancel() {
	s.once.Do(func() {
		s.bus.remove(s)
		close(s.events)
	})
}

// Bus is an in-process topic-based publish/subscribe mechanism.
//
// Publish is fire-and-forget: it never blocks and never fails, so a slow or
// dead subscriber cannot fail the mutation that triggered the event. Each
// subscription buffers a bounded number of events and drops the rest.
//
// The subscriber registry is safe for concurrent Subscribe, Cancel, and
// Publish from unrelated request flows. Cancelled subscriptions are removed
// from the registry immediately, so the listener set does not grow without
// bound under connection churn.
//
// Construct one Bus per process in the composition root and inject it;
// there is no package-level instance.
type Bus[T any] struct {
	mu     sync.RWMutex
	nextID uint64
	subs   map[Topic]map[uint64]*Subscription[T]
}

// New creates an empty Bus.
func New[T any]() *Bus[T] {
	return &Bus[T]{
		subs: make(map[Topic]map[uint64]*Subscription[T]),
	}
}

// Subscribe attaches a new subscription to the topic. The filter is
// evaluated against every event published to the topic before the event
// reaches the subscription's channel; pass nil to receive everything.
func (b *Bus[T]) Subscribe(topic Topic, filter Filter[T]) *Subscription[T] {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	sub := &Subscription[T]{
		id:     b.nextID,
		topic:  topic,
		filter: filter,
		events: make(chan T, subscriptionBuffer),
		bus:    b,
	}

	if b.subs[topic] == nil {
		b.subs[topic] = make(map[uint64]*Subscription[T])
	}
	b.subs[topic][sub.id] = sub

	return sub
}

// Publish delivers the event to every subscription on the topic whose
// filter accepts it. Subscriptions with a full buffer are skipped.
func (b *Bus[T]) Publish(topic Topic, event T) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, sub := range b.subs[topic] {
		if sub.filter != nil && !sub.filter(event) {
			continue
		}
		select {
		case sub.events <- event:
		default:
		}
	}
}

// Close cancels every active subscription. Further Publish calls are no-ops
// and further Subscribe calls produce subscriptions nobody will cancel, so
// Close belongs at process shutdown only.
func (b *Bus[T]) Close() {
	b.mu.Lock()
	var all []*Subscription[T]
	for _, topicSubs := range b.subs {
		for _, sub := range topicSubs {
			all = append(all, sub)
		}
	}
	b.mu.Unlock()

	for _, sub := range all {
		sub.Cancel()
	}
}

// SubscriberCount reports the number of active subscriptions on a topic.
func (b *Bus[T]) SubscriberCount(topic Topic) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[topic])
}

func (b *Bus[T]) remove(sub *Subscription[T]) {
	b.mu.Lock()
	defer b.mu.Unlock()

	topicSubs := b.subs[sub.topic]
	delete(topicSubs, sub.id)
	if len(topicSubs) == 0 {
		delete(b.subs, sub.topic)
	}
}
