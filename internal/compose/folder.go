package compose

import (
	"github.com/lurk-sh/lurk/internal/state"
	"github.com/lurk-sh/lurk/internal/store"
	"github.com/lurk-sh/lurk/internal/stream"
)

// FileRow is one rendered file listing entry.
type FileRow struct {
	ID       string
	Name     string
	Type     string // mime type, or "file" when absent
	Size     string
	Modified string
}

// FolderView is the folder screen's projection. It lists the folder's
// direct files only; sub-folders are separate selections.
type FolderView struct {
	Active   bool
	FolderID string
	Name     string
	Rows     []FileRow
}

// FolderComposer derives the folder view from the selection state and the
// entity snapshot.
func FolderComposer(states *state.Store, entities *store.Store) *stream.Derived[FolderView] {
	compute := func() FolderView {
		st := states.Current()
		if st.ActiveItemType != state.ItemFolder {
			return FolderView{}
		}

		view := FolderView{Active: true, FolderID: st.ActiveItemID, Rows: []FileRow{}}
		if folder, ok := entities.Folder(st.ActiveItemID); ok {
			view.Name = folder.Name
		} else {
			view.Name = st.ActiveItemID
		}

		for _, f := range entities.FilesOf(st.ActiveItemID) {
			fileType := f.Mime
			if fileType == "" {
				fileType = "file"
			}
			view.Rows = append(view.Rows, FileRow{
				ID:       f.ID,
				Name:     f.Name,
				Type:     fileType,
				Size:     FormatSize(f.Size),
				Modified: FormatDate(f.Modified),
			})
		}
		return view
	}

	return stream.Derive(compute, states.States(), entities.Snapshots())
}
