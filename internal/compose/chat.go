package compose

import (
	"github.com/lurk-sh/lurk/internal/state"
	"github.com/lurk-sh/lurk/internal/store"
	"github.com/lurk-sh/lurk/internal/stream"
)

// MessageRow is one rendered timeline entry.
type MessageRow struct {
	ID          string
	AuthorNick  string
	Content     string
	Time        string
	Pinned      bool
	ReplyToNick string // nick of the replied-to message's author, one hop only
	Reactions   []ReactionChip
	Attachments []string
}

// ChatView is the chat screen's projection. Active is false whenever the
// current selection is not a chat; everything else is zero in that case.
type ChatView struct {
	Active      bool
	ChatID      string
	Name        string
	Icon        string
	Description string
	Rows        []MessageRow
}

// ChatComposer derives the chat view from the selection state and the
// entity snapshot.
func ChatComposer(states *state.Store, entities *store.Store) *stream.Derived[ChatView] {
	compute := func() ChatView {
		st := states.Current()
		if st.ActiveItemType != state.ItemChat {
			return ChatView{}
		}

		view := ChatView{Active: true, ChatID: st.ActiveItemID, Rows: []MessageRow{}}
		if chat, ok := entities.Chat(st.ActiveItemID); ok {
			view.Name = chat.Name
			view.Icon = chat.Icon
			view.Description = chat.Description
		} else {
			view.Name = st.ActiveItemID
		}

		for _, m := range entities.MessagesOf(st.ActiveItemID) {
			row := MessageRow{
				ID:          m.ID,
				AuthorNick:  authorNick(entities, m.Author),
				Content:     m.Content,
				Time:        FormatTime(m.Created),
				Pinned:      m.Pinned,
				Reactions:   reactionChips(m.Reactions),
				Attachments: m.Attachments,
			}
			if m.ReplyTo != "" {
				if parent, ok := entities.Message(m.ReplyTo); ok {
					row.ReplyToNick = authorNick(entities, parent.Author)
				} else {
					row.ReplyToNick = m.ReplyTo
				}
			}
			view.Rows = append(view.Rows, row)
		}
		return view
	}

	return stream.Derive(compute, states.States(), entities.Snapshots())
}
