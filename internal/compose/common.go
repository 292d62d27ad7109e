package compose

import (
	"github.com/lurk-sh/lurk/internal/model"
	"github.com/lurk-sh/lurk/internal/store"
)

// ReactionChip is one flattened reaction: the symbol and how many authors
// applied it, in the symbol's insertion order from the source data.
type ReactionChip struct {
	Symbol string
	Count  int
}

func reactionChips(reactions model.Reactions) []ReactionChip {
	chips := []ReactionChip{}
	for _, r := range reactions {
		chips = append(chips, ReactionChip{Symbol: r.Symbol, Count: len(r.Authors)})
	}
	return chips
}

// authorNick resolves an author id to a nick, degrading to the raw id for an
// absent author and to "unknown" for an empty reference.
func authorNick(s *store.Store, id string) string {
	if id == "" {
		return "unknown"
	}
	if a, ok := s.Author(id); ok && a.Nick != "" {
		return a.Nick
	}
	return id
}
