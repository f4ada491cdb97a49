// Package notify is the process-wide change broadcast: writers announce that
// a collection changed, readers re-load. It replaces a live database
// subscription; signals carry no data and delivery is best-effort, so
// subscribers must always re-read rather than trust anything beyond the
// topic name.
package notify

import "sync"

// Topics, one per logical resource.
const (
	TopicShipments   = "shipmentsUpdated"
	TopicTrips       = "tripsUpdated"
	TopicExpenses    = "expensesUpdated"
	TopicWarehouse   = "warehouseItemsUpdated"
	TopicMessages    = "messagesUpdated"
	TopicCompanyInfo = "companyInfoUpdated"
)

// Bus is a process-wide publish/subscribe broadcast keyed by topic.
type Bus struct {
	mu     sync.Mutex
	nextID int
	subs   map[string]map[int]func(topic string)
}

// NewBus returns an empty bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[string]map[int]func(topic string))}
}

// Subscribe registers fn for a topic and returns a cancel function. Handlers
// run synchronously on the publisher's goroutine; they should be quick and
// must not publish to the same topic re-entrantly.
func (b *Bus) Subscribe(topic string, fn func(topic string)) (cancel func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	if b.subs[topic] == nil {
		b.subs[topic] = make(map[int]func(topic string))
	}
	b.subs[topic][id] = fn

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs[topic], id)
	}
}

// SubscribeAll registers fn for every topic published on the bus.
func (b *Bus) SubscribeAll(fn func(topic string)) (cancel func()) {
	return b.Subscribe(allTopics, fn)
}

const allTopics = "*"

// Publish notifies every subscriber of the topic. Fire-and-forget: there is
// no ordering guarantee relative to in-flight reads from other subscribers.
func (b *Bus) Publish(topic string) {
	b.mu.Lock()
	var handlers []func(topic string)
	for _, fn := range b.subs[topic] {
		handlers = append(handlers, fn)
	}
	for _, fn := range b.subs[allTopics] {
		handlers = append(handlers, fn)
	}
	b.mu.Unlock()

	for _, fn := range handlers {
		fn(topic)
	}
}
