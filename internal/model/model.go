// Package model defines the entity records served by the snapshot data
// source. All records are plain values: consumers recombine them but never
// mutate them.
package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// AuthorStatus is an author's presence state.
type AuthorStatus string

// Known author statuses. Anything else decodes as-is and renders like
// StatusUnknown.
const (
	StatusOnline  AuthorStatus = "online"
	StatusAway    AuthorStatus = "away"
	StatusDND     AuthorStatus = "dnd"
	StatusOffline AuthorStatus = "offline"
	StatusUnknown AuthorStatus = "unknown"
)

// Author is a person (or bot) referenced by messages and posts.
type Author struct {
	ID      string       `json:"id"`
	Nick    string       `json:"nick"`
	Name    string       `json:"name"`
	Bio     string       `json:"bio,omitempty"`
	Icon    string       `json:"icon,omitempty"`
	Photo   string       `json:"photo,omitempty"`
	Status  AuthorStatus `json:"status"`
	Created string       `json:"created,omitempty"`
	Updated string       `json:"updated,omitempty"`
	Nodes   []string     `json:"nodes,omitempty"`
}

// Chat is a message channel with membership lists. The membership fields
// hold author ids and may reference authors absent from the snapshot.
type Chat struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Owner        string   `json:"owner,omitempty"`
	Icon         string   `json:"icon,omitempty"`
	Description  string   `json:"description,omitempty"`
	Created      string   `json:"created,omitempty"`
	LastActivity string   `json:"lastActivity,omitempty"`
	Members      []string `json:"members,omitempty"`
	Admins       []string `json:"admins,omitempty"`
	Moderators   []string `json:"moderators,omitempty"`
	Mute         []string `json:"mute,omitempty"`
	Ban          []string `json:"ban,omitempty"`
	Pinned       []string `json:"pinned,omitempty"` // message ids
}

// Message is a single chat message. ReplyTo is a one-hop back-reference to
// another message id; it is never traversed transitively.
type Message struct {
	ID          string    `json:"id"`
	Chat        string    `json:"chat"`
	Author      string    `json:"author"`
	Content     string    `json:"content"`
	Created     string    `json:"created,omitempty"`
	Edited      string    `json:"edited,omitempty"`
	Deleted     string    `json:"deleted,omitempty"`
	ReplyTo     string    `json:"replyTo,omitempty"`
	Forwarded   string    `json:"forwarded,omitempty"`
	Reactions   Reactions `json:"reactions,omitempty"`
	Pinned      bool      `json:"pinned,omitempty"`
	Attachments []string  `json:"attachments,omitempty"` // file ids
}

// FeedVisibility controls who can see a feed.
type FeedVisibility string

// FeedJoinPolicy controls how members join a feed.
type FeedJoinPolicy string

// Feed is a long-form content channel, the Chat analogue for posts.
// Feeds pin posts, so Pinned holds post ids.
type Feed struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Owner       string         `json:"owner,omitempty"`
	Icon        string         `json:"icon,omitempty"`
	Description string         `json:"description,omitempty"`
	Created     string         `json:"created,omitempty"`
	Visibility  FeedVisibility `json:"visibility,omitempty"`
	JoinPolicy  FeedJoinPolicy `json:"joinPolicy,omitempty"`
	Pinned      []string       `json:"pinned,omitempty"` // post ids
}

// PostStatus is a post's lifecycle state.
type PostStatus string

// Post lifecycle states.
const (
	PostDraft     PostStatus = "draft"
	PostPublished PostStatus = "published"
	PostArchived  PostStatus = "archived"
)

// Post is a long-form entry in a feed.
type Post struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Subtitle    string     `json:"subtitle,omitempty"`
	Content     string     `json:"content"`
	Feed        string     `json:"feed"`
	Author      string     `json:"author"`
	Created     string     `json:"created,omitempty"`
	Edited      string     `json:"edited,omitempty"`
	Published   string     `json:"published,omitempty"`
	Deleted     string     `json:"deleted,omitempty"`
	Status      PostStatus `json:"status,omitempty"`
	Reactions   Reactions  `json:"reactions,omitempty"`
	Pinned      bool       `json:"pinned,omitempty"`
	Attachments []string   `json:"attachments,omitempty"`
}

// Folder is a file container. Parent is a weak back-reference; folders do
// not own their children.
type Folder struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Owner       string `json:"owner,omitempty"`
	Parent      string `json:"parent,omitempty"`
	Icon        string `json:"icon,omitempty"`
	Description string `json:"description,omitempty"`
	Visibility  string `json:"visibility,omitempty"`
}

// File is a stored file belonging to a folder.
type File struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Owner       string `json:"owner,omitempty"`
	Folder      string `json:"folder"`
	Icon        string `json:"icon,omitempty"`
	Description string `json:"description,omitempty"`
	Mime        string `json:"mime,omitempty"`
	Size        int64  `json:"size"`
	Checksum    string `json:"checksum,omitempty"`
	Created     string `json:"created,omitempty"`
	Modified    string `json:"modified,omitempty"`
	Visibility  string `json:"visibility,omitempty"`
}

// Node and Peer are opaque pass-through entities. The store exposes them
// unmodified and nothing in the composition layer joins against them.
type (
	Node = json.RawMessage
	Peer = json.RawMessage
)

// Snapshot is the full set of entity collections fetched once per process.
type Snapshot struct {
	Authors  []Author  `json:"authors"`
	Chats    []Chat    `json:"chats"`
	Feeds    []Feed    `json:"feeds"`
	Files    []File    `json:"files"`
	Folders  []Folder  `json:"folders"`
	Messages []Message `json:"messages"`
	Nodes    []Node    `json:"nodes"`
	Peers    []Peer    `json:"peers"`
	Posts    []Post    `json:"posts"`
}

// Empty returns a snapshot with every collection empty but non-nil, the
// degraded-but-valid value used when the data source cannot be reached.
func Empty() *Snapshot {
	return &Snapshot{
		Authors:  []Author{},
		Chats:    []Chat{},
		Feeds:    []Feed{},
		Files:    []File{},
		Folders:  []Folder{},
		Messages: []Message{},
		Nodes:    []Node{},
		Peers:    []Peer{},
		Posts:    []Post{},
	}
}

// Reaction is one reaction symbol with the authors who applied it.
type Reaction struct {
	Symbol  string
	Authors []string
}

// Reactions preserves the order reaction symbols appear in the source JSON
// object. Flattened projections sort by that insertion order, which a plain
// map would lose.
type Reactions []Reaction

// UnmarshalJSON decodes a JSON object into an ordered reaction list.
func (r *Reactions) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		*r = nil
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("reactions: expected object, got %v", tok)
	}

	out := Reactions{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		symbol, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("reactions: expected string key, got %v", keyTok)
		}
		var authors []string
		if err := dec.Decode(&authors); err != nil {
			return fmt.Errorf("reactions: decoding authors for %q: %w", symbol, err)
		}
		out = append(out, Reaction{Symbol: symbol, Authors: authors})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*r = out
	return nil
}

// MarshalJSON encodes the reactions back to a JSON object in insertion order.
func (r Reactions) MarshalJSON() ([]byte, error) {
	if r == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, reaction := range r {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(reaction.Symbol)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		authors := reaction.Authors
		if authors == nil {
			authors = []string{}
		}
		val, err := json.Marshal(authors)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
