package api

import (
	"testing"
	"time"
)

func TestSessionManager_CreateSessionWiresOutput(t *testing.T) {
	broadcaster := NewBroadcaster()
	defer broadcaster.Close()

	sm := NewSessionManager(broadcaster)

	session, err := sm.CreateSession(SessionCreateRequest{Precision: 32})
	if err != nil {
		t.Fatalf("CreateSession returned error: %v", err)
	}

	if session.Output == nil {
		t.Fatal("expected session.Output to be wired to an EventWriter")
	}

	n, err := session.Output.Write([]byte("add -> 5\n"))
	if err != nil {
		t.Fatalf("Output.Write returned error: %v", err)
	}
	if n != len("add -> 5\n") {
		t.Errorf("expected %d bytes written, got %d", len("add -> 5\n"), n)
	}

	if got := session.Output.GetBufferAndClear(); got != "add -> 5\n" {
		t.Errorf("expected buffered output %q, got %q", "add -> 5\n", got)
	}
}

func TestSessionManager_CreateSessionOutputBroadcasts(t *testing.T) {
	broadcaster := NewBroadcaster()
	defer broadcaster.Close()

	sm := NewSessionManager(broadcaster)

	session, err := sm.CreateSession(SessionCreateRequest{Precision: 16})
	if err != nil {
		t.Fatalf("CreateSession returned error: %v", err)
	}

	sub := broadcaster.Subscribe(session.ID, []EventType{EventTypeOutput})
	defer broadcaster.Unsubscribe(sub)

	if _, err := session.Output.Write([]byte("sub -> -1\n")); err != nil {
		t.Fatalf("Output.Write returned error: %v", err)
	}

	select {
	case event := <-sub.Channel:
		if event.Type != EventTypeOutput {
			t.Errorf("expected event type %q, got %q", EventTypeOutput, event.Type)
		}
		if event.Data["content"] != "sub -> -1\n" {
			t.Errorf("expected broadcast content %q, got %v", "sub -> -1\n", event.Data["content"])
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for output event")
	}
}
