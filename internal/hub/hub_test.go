package hub_test

import (
	"testing"
	"time"

	"github.com/XavierBriggs/propboard/internal/hub"
)

func TestClient_TrySendBoundedBuffer(t *testing.T) {
	h := hub.New()
	c := hub.NewClient("test-client", nil, h)

	event := hub.RefreshEvent{
		Type:       hub.EventTypeRefresh,
		SnapshotID: "snap-1",
		Timestamp:  time.Now(),
	}

	sent := 0
	for i := 0; i < 10000; i++ {
		if !c.TrySend(event) {
			break
		}
		sent++
	}

	if sent == 0 {
		t.Fatal("no events accepted")
	}
	if sent == 10000 {
		t.Fatal("send buffer appears unbounded")
	}

	// Buffer full: TrySend must keep failing without blocking
	if c.TrySend(event) {
		t.Error("TrySend succeeded on a full buffer")
	}
}

func TestHub_BroadcastDoesNotBlockWithoutClients(t *testing.T) {
	h := hub.New()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 1000; i++ {
			h.Broadcast(hub.RefreshEvent{Type: hub.EventTypeRefresh})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Broadcast blocked with no running hub")
	}
}
