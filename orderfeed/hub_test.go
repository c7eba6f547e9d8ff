package orderfeed

import (
	"encoding/json"
	"testing"
	"time"
)

func TestHubRegisterPublishUnregister(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	// create fake client
	client := &Client{
		Send: make(chan []byte, 10),
	}

	// register client
	hub.register <- client

	// Publish drops when the run loop is busy, so retry until delivery
	var got []byte
	for i := 0; i < 100 && got == nil; i++ {
		hub.Publish(Event{Action: "order_created", OrderID: "DH12345678", UserID: 1, Status: "pending", Total: 125000})
		select {
		case got = <-client.Send:
		case <-time.After(10 * time.Millisecond):
		}
	}
	if got == nil {
		t.Fatal("timeout waiting for event")
	}

	var ev Event
	if err := json.Unmarshal(got, &ev); err != nil {
		t.Fatalf("unmarshal event: %v", err)
	}
	if ev.Action != "order_created" || ev.OrderID != "DH12345678" || ev.Total != 125000 {
		t.Fatalf("unexpected event: %+v", ev)
	}
	if ev.Timestamp == 0 {
		t.Fatal("timestamp not stamped on publish")
	}

	// unregister client
	hub.unregister <- client
}

func TestPublishNilHubAndStoppedHub(t *testing.T) {
	// nil feed is allowed: tests and memory mode run without dashboards
	var hub *Hub
	hub.Publish(Event{Action: "order_created", OrderID: "DH1"})

	stopped := NewHub()
	go stopped.Run()
	stopped.Stop()
	time.Sleep(10 * time.Millisecond)
	// drops instead of blocking once the run loop is gone
	stopped.Publish(Event{Action: "status_changed", OrderID: "DH2", Status: "shipping"})
}
