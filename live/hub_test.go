package live

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"fairway/configs"
	"fairway/models"
)

func testHub(rooms map[string]chan configs.Snapshot) *Hub {
	hub := NewHub()
	hub.subscribe = func(_ context.Context, room string) (<-chan configs.Snapshot, func(), error) {
		return rooms[room], func() {}, nil
	}
	return hub
}

func TestHubDeliversSnapshotsToRoom(t *testing.T) {
	snaps := make(chan configs.Snapshot, 4)
	hub := testHub(map[string]chan configs.Snapshot{"user@x.com": snaps})
	go hub.Run()
	defer hub.Stop()

	client := &Client{
		Send: make(chan []byte, 10),
		Room: "user@x.com",
	}
	hub.register <- client

	snaps <- configs.Snapshot{
		ClientID: "user@x.com",
		Config: models.ClientConfig{
			ClientID: "user@x.com",
			Accounts: map[string]models.AccountRecord{"a@b.com": {Email: "a@b.com"}},
		},
	}

	select {
	case got := <-client.Send:
		var decoded configs.Snapshot
		if err := json.Unmarshal(got, &decoded); err != nil {
			t.Fatalf("bad payload: %v", err)
		}
		if decoded.ClientID != "user@x.com" {
			t.Fatalf("expected user@x.com, got %s", decoded.ClientID)
		}
		if _, ok := decoded.Config.Accounts["a@b.com"]; !ok {
			t.Fatal("account missing from delivered snapshot")
		}
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for snapshot")
	}

	hub.unregister <- client
}

func TestHubDoesNotCrossRooms(t *testing.T) {
	roomA := make(chan configs.Snapshot, 4)
	roomB := make(chan configs.Snapshot, 4)
	hub := testHub(map[string]chan configs.Snapshot{
		"a@x.com": roomA,
		"b@x.com": roomB,
	})
	go hub.Run()
	defer hub.Stop()

	clientA := &Client{Send: make(chan []byte, 10), Room: "a@x.com"}
	clientB := &Client{Send: make(chan []byte, 10), Room: "b@x.com"}
	hub.register <- clientA
	hub.register <- clientB

	roomA <- configs.Snapshot{ClientID: "a@x.com"}

	select {
	case <-clientA.Send:
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for snapshot in room A")
	}

	select {
	case <-clientB.Send:
		t.Fatal("room B received room A's snapshot")
	case <-time.After(100 * time.Millisecond):
	}
}
