// Package compose builds the view-models the renderer consumes. Each
// composer is a pure join over the entity snapshot and the selection state,
// recomputed whenever either emits. Composers never fail: missing references
// degrade to the raw id or a placeholder.
package compose

import (
	"fmt"
	"time"

	"github.com/rivo/uniseg"
)

// snippetLimit is the maximum snippet length in grapheme clusters.
const snippetLimit = 120

// FormatSize renders a byte count with binary prefixes: whole bytes under
// 1 KB, one decimal for KB and MB.
func FormatSize(size int64) string {
	switch {
	case size < 1024:
		return fmt.Sprintf("%d B", size)
	case size < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(size)/1024)
	default:
		return fmt.Sprintf("%.1f MB", float64(size)/(1024*1024))
	}
}

// FormatTime renders an RFC 3339 timestamp as local hour:minute. Empty or
// unparseable input renders as an empty string.
func FormatTime(ts string) string {
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return ""
	}
	return t.Local().Format("15:04")
}

// FormatDate renders an RFC 3339 timestamp as a short local date label.
func FormatDate(ts string) string {
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return ""
	}
	return t.Local().Format("Jan 2, 2006")
}

// Snippet truncates s to the snippet limit, counting grapheme clusters, and
// appends an ellipsis when anything was cut.
func Snippet(s string) string {
	if uniseg.GraphemeClusterCount(s) <= snippetLimit {
		return s
	}

	var out []byte
	remaining := s
	state := -1
	var cluster string
	for i := 0; i < snippetLimit && len(remaining) > 0; i++ {
		cluster, remaining, _, state = uniseg.FirstGraphemeClusterInString(remaining, state)
		out = append(out, cluster...)
	}
	return string(out) + "…"
}
