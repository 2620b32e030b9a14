package event

import "testing"

func TestDispatchInSubscriptionOrder(t *testing.T) {
	d := NewDispatcher()
	var got []string
	d.Subscribe(ZombieKilled, ListenerFunc(func(Event) { got = append(got, "a") }))
	d.Subscribe(ZombieKilled, ListenerFunc(func(Event) { got = append(got, "b") }))
	d.Subscribe(WaveCleared, ListenerFunc(func(Event) { got = append(got, "wave") }))

	d.Dispatch(Event{Type: ZombieKilled})

	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("got %v, want [a b]", got)
	}
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	calls := 0
	l := ListenerFunc(func(Event) { calls++ })
	cancel := d.Subscribe(BulletFired, l)
	keep := 0
	d.Subscribe(BulletFired, ListenerFunc(func(Event) { keep++ }))

	d.Dispatch(Event{Type: BulletFired})
	cancel()
	d.Dispatch(Event{Type: BulletFired})
	cancel() // повторная отписка безопасна

	if calls != 1 {
		t.Errorf("unsubscribed listener called %d times, want 1", calls)
	}
	if keep != 2 {
		t.Errorf("remaining listener called %d times, want 2", keep)
	}
}

func TestSubscribeAll(t *testing.T) {
	d := NewDispatcher()
	seen := map[EventType]int{}
	cancel := d.SubscribeAll(ListenerFunc(func(e Event) { seen[e.Type]++ }), MatchStarted, MatchEnded)
	d.Dispatch(Event{Type: MatchStarted})
	d.Dispatch(Event{Type: MatchEnded})
	cancel()
	d.Dispatch(Event{Type: MatchEnded})
	if seen[MatchStarted] != 1 || seen[MatchEnded] != 1 {
		t.Fatalf("seen = %v", seen)
	}
}
