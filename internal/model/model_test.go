package model

import (
	"encoding/json"
	"testing"
)

func TestReactions_PreservesInsertionOrder(t *testing.T) {
	raw := `{"🔥": ["a1", "a2"], "👍": ["a3"], "🎉": []}`

	var r Reactions
	if err := json.Unmarshal([]byte(raw), &r); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if len(r) != 3 {
		t.Fatalf("Expected 3 reactions, got %d", len(r))
	}

	wantOrder := []string{"🔥", "👍", "🎉"}
	for i, want := range wantOrder {
		if r[i].Symbol != want {
			t.Errorf("Reaction %d: expected symbol %q, got %q", i, want, r[i].Symbol)
		}
	}

	if len(r[0].Authors) != 2 {
		t.Errorf("Expected 2 authors for first reaction, got %d", len(r[0].Authors))
	}
}

func TestReactions_Null(t *testing.T) {
	var r Reactions
	if err := json.Unmarshal([]byte("null"), &r); err != nil {
		t.Fatalf("Unmarshal null failed: %v", err)
	}
	if r != nil {
		t.Errorf("Expected nil reactions for null, got %v", r)
	}
}

func TestReactions_RejectsNonObject(t *testing.T) {
	var r Reactions
	if err := json.Unmarshal([]byte(`["👍"]`), &r); err == nil {
		t.Error("Expected an error for a non-object reactions value")
	}
}

func TestReactions_RoundTrip(t *testing.T) {
	raw := `{"b":["x"],"a":["y","z"]}`

	var r Reactions
	if err := json.Unmarshal([]byte(raw), &r); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	out, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	if string(out) != raw {
		t.Errorf("Round trip changed order or content: got %s, want %s", out, raw)
	}
}

func TestMessage_DecodeTolerantOfMissingFields(t *testing.T) {
	raw := `{"id": "m1", "chat": "c1", "author": "a1", "content": "hi"}`

	var m Message
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if m.ID != "m1" || m.Chat != "c1" || m.Author != "a1" {
		t.Errorf("Unexpected message fields: %+v", m)
	}
	if m.Pinned {
		t.Error("Pinned should default to false")
	}
	if m.Reactions != nil {
		t.Error("Reactions should default to nil")
	}
}

func TestSnapshot_Decode(t *testing.T) {
	raw := `{
		"authors": [{"id": "a1", "nick": "nova", "name": "Nova", "status": "online"}],
		"chats": [{"id": "c1", "name": "general", "members": ["a1"]}],
		"feeds": [],
		"files": [],
		"folders": [],
		"messages": [{"id": "m1", "chat": "c1", "author": "a1", "content": "hi", "reactions": {"👍": ["a1"]}}],
		"nodes": [{"id": "n1", "address": "node.example"}],
		"peers": [],
		"posts": []
	}`

	var snap Snapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if len(snap.Authors) != 1 || snap.Authors[0].Status != StatusOnline {
		t.Errorf("Unexpected authors: %+v", snap.Authors)
	}
	if len(snap.Messages) != 1 || len(snap.Messages[0].Reactions) != 1 {
		t.Errorf("Unexpected messages: %+v", snap.Messages)
	}
	// Nodes pass through as raw JSON
	if len(snap.Nodes) != 1 {
		t.Fatalf("Expected 1 node, got %d", len(snap.Nodes))
	}
	var node map[string]any
	if err := json.Unmarshal(snap.Nodes[0], &node); err != nil {
		t.Fatalf("Node should hold raw JSON: %v", err)
	}
	if node["address"] != "node.example" {
		t.Errorf("Node content lost in pass-through: %v", node)
	}
}

func TestEmpty_AllCollectionsNonNil(t *testing.T) {
	snap := Empty()

	if snap.Authors == nil || snap.Chats == nil || snap.Feeds == nil ||
		snap.Files == nil || snap.Folders == nil || snap.Messages == nil ||
		snap.Nodes == nil || snap.Peers == nil || snap.Posts == nil {
		t.Error("Empty() must initialize every collection")
	}
	if len(snap.Authors) != 0 || len(snap.Messages) != 0 {
		t.Error("Empty() collections must have zero length")
	}
}
