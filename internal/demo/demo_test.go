package demo

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/lurk-sh/lurk/internal/model"
)

func TestSnapshot_ReferencesResolve(t *testing.T) {
	snap := Snapshot()

	authors := map[string]bool{}
	for _, a := range snap.Authors {
		authors[a.ID] = true
	}
	chats := map[string]bool{}
	for _, c := range snap.Chats {
		chats[c.ID] = true
	}
	folders := map[string]bool{}
	for _, f := range snap.Folders {
		folders[f.ID] = true
	}
	files := map[string]bool{}
	for _, f := range snap.Files {
		files[f.ID] = true
		if !folders[f.Folder] {
			t.Errorf("File %s references unknown folder %s", f.Name, f.Folder)
		}
	}

	for _, m := range snap.Messages {
		if !chats[m.Chat] {
			t.Errorf("Message %s references unknown chat", m.ID)
		}
		if !authors[m.Author] {
			t.Errorf("Message %s references unknown author", m.ID)
		}
		for _, att := range m.Attachments {
			if !files[att] {
				t.Errorf("Message %s references unknown attachment %s", m.ID, att)
			}
		}
	}
	for _, p := range snap.Posts {
		if !authors[p.Author] {
			t.Errorf("Post %q references unknown author", p.Title)
		}
	}
}

func TestSnapshot_SharedFoldersKeepFixedIDs(t *testing.T) {
	snap := Snapshot()

	want := map[string]bool{"fld1": false, "fld2": false, "fld3": false}
	for _, f := range snap.Folders {
		if _, ok := want[f.ID]; ok {
			want[f.ID] = true
		}
	}
	for id, seen := range want {
		if !seen {
			t.Errorf("Missing shared folder %s", id)
		}
	}
}

func TestWrite_ProducesDecodableSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "data.json")

	if err := Write(path); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	var snap model.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		t.Fatalf("Snapshot does not decode: %v", err)
	}
	if len(snap.Chats) == 0 || len(snap.Messages) == 0 || len(snap.Posts) == 0 {
		t.Error("Expected a populated snapshot")
	}
}
