// Package demo generates a sample data snapshot so the app has something to
// show on a fresh install.
package demo

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/lurk-sh/lurk/internal/model"
)

// Snapshot builds a small populated snapshot. Entity ids are fresh UUIDs on
// every call, except the shared folders, which keep their fixed ids so chat
// attachments resolve.
func Snapshot() *model.Snapshot {
	now := time.Now().UTC()
	stamp := func(minutesAgo int) string {
		return now.Add(-time.Duration(minutesAgo) * time.Minute).Format(time.RFC3339)
	}

	ada := model.Author{
		ID: uuid.NewString(), Nick: "ada", Name: "Ada Byron",
		Bio: "analytical engines", Status: model.StatusOnline, Created: stamp(60 * 24 * 30),
	}
	grace := model.Author{
		ID: uuid.NewString(), Nick: "grace", Name: "Grace Murray",
		Status: model.StatusAway, Created: stamp(60 * 24 * 20),
	}
	linus := model.Author{
		ID: uuid.NewString(), Nick: "linus", Name: "Linus B.",
		Status: model.StatusDND, Created: stamp(60 * 24 * 10),
	}
	ghost := model.Author{
		ID: uuid.NewString(), Nick: "ghost", Status: model.StatusOffline,
	}

	readme := model.File{
		ID: uuid.NewString(), Folder: "fld1", Name: "readme.md",
		Mime: "text/markdown", Size: 1843, Modified: stamp(90),
	}
	diagram := model.File{
		ID: uuid.NewString(), Folder: "fld2", Name: "architecture.png",
		Mime: "image/png", Size: 2 * 1024 * 1024, Modified: stamp(60 * 24),
	}
	notes := model.File{
		ID: uuid.NewString(), Folder: "fld3", Name: "meeting-notes.txt",
		Mime: "text/plain", Size: 512, Modified: stamp(30),
	}

	general := model.Chat{
		ID: uuid.NewString(), Name: "general", Icon: "#",
		Description:  "Everything and nothing",
		Owner:        ada.ID,
		Members:      []string{ada.ID, grace.ID, linus.ID, ghost.ID},
		Admins:       []string{ada.ID},
		Created:      stamp(60 * 24 * 30),
		LastActivity: stamp(5),
	}
	random := model.Chat{
		ID: uuid.NewString(), Name: "random", Icon: "~",
		Owner:   grace.ID,
		Members: []string{ada.ID, grace.ID},
		Created: stamp(60 * 24 * 15),
	}

	hello := model.Message{
		ID: uuid.NewString(), Chat: general.ID, Author: ada.ID,
		Content: "Welcome to lurk. Pin anything worth keeping.",
		Created: stamp(120), Pinned: true,
		Reactions:   model.Reactions{{Symbol: "👋", Authors: []string{grace.ID, linus.ID}}},
		Attachments: []string{readme.ID},
	}
	reply := model.Message{
		ID: uuid.NewString(), Chat: general.ID, Author: grace.ID,
		Content: "Diagram attached for the curious.",
		Created: stamp(90), ReplyTo: hello.ID,
		Attachments: []string{diagram.ID},
	}
	aside := model.Message{
		ID: uuid.NewString(), Chat: general.ID, Author: linus.ID,
		Content: "Notes from the sync are in the shared folder.",
		Created: stamp(15),
		Reactions: model.Reactions{
			{Symbol: "👍", Authors: []string{ada.ID}},
			{Symbol: "📝", Authors: []string{ada.ID, grace.ID}},
		},
		Attachments: []string{notes.ID},
	}
	offtopic := model.Message{
		ID: uuid.NewString(), Chat: random.ID, Author: ada.ID,
		Content: "Lunch?", Created: stamp(200),
	}

	announce := model.Feed{
		ID: uuid.NewString(), Name: "announcements", Icon: "!",
		Description: "Project news", Owner: ada.ID,
		Visibility: "public", JoinPolicy: "open", Created: stamp(60 * 24 * 28),
	}

	launch := model.Post{
		ID: uuid.NewString(), Feed: announce.ID, Author: ada.ID,
		Title: "We shipped", Subtitle: "v1 is out",
		Content: "After a long stretch of quiet work the first release is live. " +
			"It covers the full read surface: chats, feeds, and folders, with " +
			"pinned items and file attachments resolved across the shared folders.",
		Status: model.PostPublished, Pinned: true,
		Created: stamp(60 * 48), Published: stamp(60 * 36),
		Reactions: model.Reactions{{Symbol: "🎉", Authors: []string{grace.ID, linus.ID, ghost.ID}}},
	}
	draft := model.Post{
		ID: uuid.NewString(), Feed: announce.ID, Author: grace.ID,
		Title: "Roadmap sketch", Content: "Still thinking this through.",
		Status: model.PostDraft, Created: stamp(60 * 3),
	}

	return &model.Snapshot{
		Authors: []model.Author{ada, grace, linus, ghost},
		Chats:   []model.Chat{general, random},
		Feeds:   []model.Feed{announce},
		Files:   []model.File{readme, diagram, notes},
		Folders: []model.Folder{
			{ID: "fld1", Name: "documents", Icon: "▤"},
			{ID: "fld2", Name: "images", Icon: "▤"},
			{ID: "fld3", Name: "shared", Icon: "▤"},
		},
		Messages: []model.Message{hello, reply, aside, offtopic},
		Nodes:    []model.Node{},
		Peers:    []model.Peer{},
		Posts:    []model.Post{launch, draft},
	}
}

// Write marshals a sample snapshot to path, creating parent directories.
func Write(path string) error {
	data, err := json.MarshalIndent(Snapshot(), "", "  ")
	if err != nil {
		return fmt.Errorf("encoding demo snapshot: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing demo snapshot: %w", err)
	}
	return nil
}
