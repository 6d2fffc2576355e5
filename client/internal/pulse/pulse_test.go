package pulse

import "testing"

func TestPublishReachesAllSubscribers(t *testing.T) {
	b := NewBroadcaster()
	var a, c int
	b.Subscribe(func() { a++ })
	b.Subscribe(func() { c++ })

	b.Publish()
	b.Publish()

	if a != 2 || c != 2 {
		t.Fatalf("expected 2 notifications each, got %d and %d", a, c)
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	b := NewBroadcaster()
	var n int
	cancel := b.Subscribe(func() { n++ })

	b.Publish()
	cancel()
	b.Publish()

	if n != 1 {
		t.Fatalf("expected 1 notification, got %d", n)
	}
}
