package compose

import (
	"github.com/lurk-sh/lurk/internal/model"
	"github.com/lurk-sh/lurk/internal/state"
	"github.com/lurk-sh/lurk/internal/store"
	"github.com/lurk-sh/lurk/internal/stream"
)

// PostRow is one rendered post card.
type PostRow struct {
	ID         string
	Title      string
	Subtitle   string
	AuthorNick string
	DateLabel  string // published date when set, otherwise created
	Snippet    string
	Draft      bool
	Pinned     bool
	Reactions  []ReactionChip
}

// FeedView is the feed screen's projection.
type FeedView struct {
	Active      bool
	FeedID      string
	Name        string
	Icon        string
	Description string
	Rows        []PostRow
}

// FeedComposer derives the feed view from the selection state and the
// entity snapshot.
func FeedComposer(states *state.Store, entities *store.Store) *stream.Derived[FeedView] {
	compute := func() FeedView {
		st := states.Current()
		if st.ActiveItemType != state.ItemFeed {
			return FeedView{}
		}

		view := FeedView{Active: true, FeedID: st.ActiveItemID, Rows: []PostRow{}}
		if feed, ok := entities.Feed(st.ActiveItemID); ok {
			view.Name = feed.Name
			view.Icon = feed.Icon
			view.Description = feed.Description
		} else {
			view.Name = st.ActiveItemID
		}

		for _, p := range entities.PostsOf(st.ActiveItemID) {
			dateLabel := p.Published
			if dateLabel == "" {
				dateLabel = p.Created
			}
			view.Rows = append(view.Rows, PostRow{
				ID:         p.ID,
				Title:      p.Title,
				Subtitle:   p.Subtitle,
				AuthorNick: authorNick(entities, p.Author),
				DateLabel:  FormatDate(dateLabel),
				Snippet:    Snippet(p.Content),
				Draft:      p.Status == model.PostDraft,
				Pinned:     p.Pinned,
				Reactions:  reactionChips(p.Reactions),
			})
		}
		return view
	}

	return stream.Derive(compute, states.States(), entities.Snapshots())
}
