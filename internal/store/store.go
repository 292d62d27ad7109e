// Package store is the data-access layer: it fetches the entity snapshot
// exactly once per process, retries transient failures, degrades to an
// empty snapshot when the source stays unreachable, and serves every
// accessor as a pure projection of that single cached result.
package store

import (
	"context"
	"sync"
	"time"

	"github.com/lurk-sh/lurk/internal/logger"
	"github.com/lurk-sh/lurk/internal/model"
	"github.com/lurk-sh/lurk/internal/stream"
)

const (
	// fetchRetries is the number of additional attempts after the first
	// failure.
	fetchRetries = 2

	// DefaultRetryDelay is the fixed pause between fetch attempts.
	DefaultRetryDelay = 500 * time.Millisecond
)

// Store caches one snapshot for the process lifetime and exposes it both as
// plain accessors and as an observable stream for derived view-models.
type Store struct {
	source     Source
	retryDelay time.Duration

	once sync.Once
	snap *model.Snapshot

	// snapshots carries the published snapshot on the event loop. It starts
	// at the empty snapshot and emits once when Publish is called after a
	// completed load.
	snapshots *stream.Source[*model.Snapshot]
}

// New creates a store backed by the given source.
func New(source Source) *Store {
	return &Store{
		source:     source,
		retryDelay: DefaultRetryDelay,
		snapshots:  stream.NewSource(model.Empty()),
	}
}

// Load fetches the snapshot, retrying transient failures with a fixed delay.
// The first call performs the fetch; every later call returns the same
// cached result without touching the source again. A load that exhausts its
// retries resolves to the empty snapshot and reports the failure to the
// diagnostics log; Load itself never fails.
//
// Load may block for up to the retry budget and is safe to run off the
// event loop; call Publish from the loop afterwards to notify composers.
func (s *Store) Load(ctx context.Context) *model.Snapshot {
	s.once.Do(func() {
		s.snap = s.fetchWithRetry(ctx)
	})
	return s.snap
}

func (s *Store) fetchWithRetry(ctx context.Context) *model.Snapshot {
	log := logger.ComponentLogger("store")

	var lastErr error
	for attempt := 0; attempt <= fetchRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(s.retryDelay):
			case <-ctx.Done():
				log.Error("Snapshot fetch cancelled", "attempts", attempt, "err", ctx.Err())
				return model.Empty()
			}
		}

		snap, err := s.source(ctx)
		if err == nil {
			normalize(snap)
			log.Info("Snapshot loaded",
				"attempt", attempt+1,
				"authors", len(snap.Authors),
				"chats", len(snap.Chats),
				"messages", len(snap.Messages),
				"feeds", len(snap.Feeds),
				"posts", len(snap.Posts),
				"folders", len(snap.Folders),
				"files", len(snap.Files),
			)
			return snap
		}
		lastErr = err
		log.Warn("Snapshot fetch failed", "attempt", attempt+1, "err", err)
	}

	log.Error("Snapshot fetch gave up, serving empty snapshot", "err", lastErr)
	return model.Empty()
}

// normalize ensures every collection is non-nil so consumers can range
// without nil checks.
func normalize(snap *model.Snapshot) {
	if snap.Authors == nil {
		snap.Authors = []model.Author{}
	}
	if snap.Chats == nil {
		snap.Chats = []model.Chat{}
	}
	if snap.Feeds == nil {
		snap.Feeds = []model.Feed{}
	}
	if snap.Files == nil {
		snap.Files = []model.File{}
	}
	if snap.Folders == nil {
		snap.Folders = []model.Folder{}
	}
	if snap.Messages == nil {
		snap.Messages = []model.Message{}
	}
	if snap.Nodes == nil {
		snap.Nodes = []model.Node{}
	}
	if snap.Peers == nil {
		snap.Peers = []model.Peer{}
	}
	if snap.Posts == nil {
		snap.Posts = []model.Post{}
	}
}

// Publish pushes the loaded snapshot to stream subscribers. It must run on
// the event loop, after Load has completed. Publishing before Load is a
// no-op.
func (s *Store) Publish() {
	if s.snap == nil {
		return
	}
	s.snapshots.Set(s.snap)
}

// Snapshots exposes the snapshot stream for derived view-models.
func (s *Store) Snapshots() *stream.Source[*model.Snapshot] {
	return s.snapshots
}

// Snapshot returns the current snapshot: the published one, or the empty
// snapshot before the load has been published.
func (s *Store) Snapshot() *model.Snapshot {
	return s.snapshots.Get()
}

// Authors returns all authors.
func (s *Store) Authors() []model.Author {
	return s.Snapshot().Authors
}

// Author looks up an author by id.
func (s *Store) Author(id string) (model.Author, bool) {
	for _, a := range s.Snapshot().Authors {
		if a.ID == id {
			return a, true
		}
	}
	return model.Author{}, false
}

// Chats returns all chats.
func (s *Store) Chats() []model.Chat {
	return s.Snapshot().Chats
}

// Chat looks up a chat by id.
func (s *Store) Chat(id string) (model.Chat, bool) {
	for _, c := range s.Snapshot().Chats {
		if c.ID == id {
			return c, true
		}
	}
	return model.Chat{}, false
}

// MessagesOf returns the messages of a chat, empty for an unknown chat id.
func (s *Store) MessagesOf(chatID string) []model.Message {
	out := []model.Message{}
	for _, m := range s.Snapshot().Messages {
		if m.Chat == chatID {
			out = append(out, m)
		}
	}
	return out
}

// Message looks up a message by id.
func (s *Store) Message(id string) (model.Message, bool) {
	for _, m := range s.Snapshot().Messages {
		if m.ID == id {
			return m, true
		}
	}
	return model.Message{}, false
}

// Feeds returns all feeds.
func (s *Store) Feeds() []model.Feed {
	return s.Snapshot().Feeds
}

// Feed looks up a feed by id.
func (s *Store) Feed(id string) (model.Feed, bool) {
	for _, f := range s.Snapshot().Feeds {
		if f.ID == id {
			return f, true
		}
	}
	return model.Feed{}, false
}

// PostsOf returns the posts of a feed, empty for an unknown feed id.
func (s *Store) PostsOf(feedID string) []model.Post {
	out := []model.Post{}
	for _, p := range s.Snapshot().Posts {
		if p.Feed == feedID {
			out = append(out, p)
		}
	}
	return out
}

// Post looks up a post by id.
func (s *Store) Post(id string) (model.Post, bool) {
	for _, p := range s.Snapshot().Posts {
		if p.ID == id {
			return p, true
		}
	}
	return model.Post{}, false
}

// Folders returns all folders.
func (s *Store) Folders() []model.Folder {
	return s.Snapshot().Folders
}

// Folder looks up a folder by id.
func (s *Store) Folder(id string) (model.Folder, bool) {
	for _, f := range s.Snapshot().Folders {
		if f.ID == id {
			return f, true
		}
	}
	return model.Folder{}, false
}

// FilesOf returns the direct files of a folder, empty for an unknown folder
// id. It never descends into sub-folders.
func (s *Store) FilesOf(folderID string) []model.File {
	out := []model.File{}
	for _, f := range s.Snapshot().Files {
		if f.Folder == folderID {
			out = append(out, f)
		}
	}
	return out
}

// File looks up a file by id.
func (s *Store) File(id string) (model.File, bool) {
	for _, f := range s.Snapshot().Files {
		if f.ID == id {
			return f, true
		}
	}
	return model.File{}, false
}

// Nodes returns the opaque node entities unmodified.
func (s *Store) Nodes() []model.Node {
	return s.Snapshot().Nodes
}

// Peers returns the opaque peer entities unmodified.
func (s *Store) Peers() []model.Peer {
	return s.Snapshot().Peers
}
