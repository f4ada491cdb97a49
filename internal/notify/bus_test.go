package notify

import "testing"

func TestPublishReachesSubscribers(t *testing.T) {
	bus := NewBus()

	var got []string
	bus.Subscribe(TopicShipments, func(topic string) {
		got = append(got, topic)
	})

	bus.Publish(TopicShipments)
	bus.Publish(TopicTrips) // different topic, must not arrive

	if len(got) != 1 || got[0] != TopicShipments {
		t.Errorf("expected one shipments signal, got %v", got)
	}
}

func TestCancelStopsDelivery(t *testing.T) {
	bus := NewBus()

	count := 0
	cancel := bus.Subscribe(TopicExpenses, func(string) { count++ })

	bus.Publish(TopicExpenses)
	cancel()
	bus.Publish(TopicExpenses)

	if count != 1 {
		t.Errorf("expected 1 delivery after cancel, got %d", count)
	}
}

func TestSubscribeAllSeesEveryTopic(t *testing.T) {
	bus := NewBus()

	var got []string
	cancel := bus.SubscribeAll(func(topic string) { got = append(got, topic) })
	defer cancel()

	bus.Publish(TopicShipments)
	bus.Publish(TopicMessages)

	if len(got) != 2 {
		t.Fatalf("expected 2 signals, got %v", got)
	}
	if got[0] != TopicShipments || got[1] != TopicMessages {
		t.Errorf("unexpected topics: %v", got)
	}
}

func TestMultipleSubscribersAllNotified(t *testing.T) {
	bus := NewBus()

	a, b := 0, 0
	bus.Subscribe(TopicTrips, func(string) { a++ })
	bus.Subscribe(TopicTrips, func(string) { b++ })

	bus.Publish(TopicTrips)

	if a != 1 || b != 1 {
		t.Errorf("expected both subscribers notified, got a=%d b=%d", a, b)
	}
}
