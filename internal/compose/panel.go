package compose

import (
	"github.com/lurk-sh/lurk/internal/model"
	"github.com/lurk-sh/lurk/internal/state"
	"github.com/lurk-sh/lurk/internal/store"
	"github.com/lurk-sh/lurk/internal/stream"
)

// sharedFolders are the folders whose files can surface as chat attachments.
var sharedFolders = []string{"fld1", "fld2", "fld3"}

// MemberRow is one chat member with a presence glyph.
type MemberRow struct {
	ID    string
	Nick  string
	Glyph string
}

// PinRow is one pinned message.
type PinRow struct {
	ID      string
	Nick    string
	Content string
	Time    string
}

// AttachmentRow is one resolved file attachment.
type AttachmentRow struct {
	ID   string
	Name string
	Mime string
	Size string
}

// PanelView is the right panel's projection. Exactly one of the row slices
// is populated, matching the tab; the search tab carries no rows.
type PanelView struct {
	Open    bool
	Tab     state.PanelTab
	Title   string
	Members []MemberRow
	Pins    []PinRow
	Files   []AttachmentRow
}

// StatusGlyph maps an author presence state to its one-character marker.
func StatusGlyph(status model.AuthorStatus) string {
	switch status {
	case model.StatusOnline:
		return "●"
	case model.StatusAway:
		return "○"
	case model.StatusDND:
		return "◌"
	default:
		return "·"
	}
}

// PanelComposer derives the right panel view from the selection state and
// the entity snapshot. The member/pin/file joins apply only while a chat is
// selected; other selections get an open panel with empty rows.
func PanelComposer(states *state.Store, entities *store.Store) *stream.Derived[PanelView] {
	compute := func() PanelView {
		st := states.Current()
		if !st.RightPanelOpen {
			return PanelView{}
		}

		view := PanelView{Open: true, Tab: st.RightPanelTab}
		chatID := ""
		if st.ActiveItemType == state.ItemChat {
			chatID = st.ActiveItemID
		}

		switch st.RightPanelTab {
		case state.TabMembers:
			view.Title = "Members"
			view.Members = memberRows(entities, chatID)
		case state.TabPins:
			view.Title = "Pins"
			view.Pins = pinRows(entities, chatID)
		case state.TabFiles:
			view.Title = "Files"
			view.Files = attachmentRows(entities, chatID)
		case state.TabSearch:
			view.Title = "Search"
		}
		return view
	}

	return stream.Derive(compute, states.States(), entities.Snapshots())
}

func memberRows(entities *store.Store, chatID string) []MemberRow {
	rows := []MemberRow{}
	chat, ok := entities.Chat(chatID)
	if !ok {
		return rows
	}
	for _, memberID := range chat.Members {
		row := MemberRow{ID: memberID, Nick: memberID, Glyph: StatusGlyph("")}
		if a, ok := entities.Author(memberID); ok {
			if a.Nick != "" {
				row.Nick = a.Nick
			}
			row.Glyph = StatusGlyph(a.Status)
		}
		rows = append(rows, row)
	}
	return rows
}

func pinRows(entities *store.Store, chatID string) []PinRow {
	rows := []PinRow{}
	for _, m := range entities.MessagesOf(chatID) {
		if !m.Pinned {
			continue
		}
		rows = append(rows, PinRow{
			ID:      m.ID,
			Nick:    authorNick(entities, m.Author),
			Content: m.Content,
			Time:    FormatTime(m.Created),
		})
	}
	return rows
}

// attachmentRows resolves the chat's attachment ids against the files of the
// shared folders. Attachments pointing anywhere else stay unresolved and are
// dropped.
func attachmentRows(entities *store.Store, chatID string) []AttachmentRow {
	attached := map[string]bool{}
	order := []string{}
	for _, m := range entities.MessagesOf(chatID) {
		for _, fileID := range m.Attachments {
			if !attached[fileID] {
				attached[fileID] = true
				order = append(order, fileID)
			}
		}
	}

	shared := map[string]model.File{}
	for _, folderID := range sharedFolders {
		for _, f := range entities.FilesOf(folderID) {
			shared[f.ID] = f
		}
	}

	rows := []AttachmentRow{}
	for _, fileID := range order {
		f, ok := shared[fileID]
		if !ok {
			continue
		}
		rows = append(rows, AttachmentRow{
			ID:   f.ID,
			Name: f.Name,
			Mime: f.Mime,
			Size: FormatSize(f.Size),
		})
	}
	return rows
}
