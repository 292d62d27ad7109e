package store

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/lurk-sh/lurk/internal/model"
)

// Source fetches one snapshot. The store wraps it with retry, caching, and
// the empty-snapshot fallback, so a source only reports success or failure.
type Source func(ctx context.Context) (*model.Snapshot, error)

// httpTimeout bounds a single snapshot request.
const httpTimeout = 10 * time.Second

// FileSource reads the snapshot from a JSON file on disk.
func FileSource(path string) Source {
	return func(ctx context.Context) (*model.Snapshot, error) {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading snapshot file: %w", err)
		}
		var snap model.Snapshot
		if err := json.Unmarshal(data, &snap); err != nil {
			return nil, fmt.Errorf("parsing snapshot file %s: %w", path, err)
		}
		return &snap, nil
	}
}

// HTTPSource fetches the snapshot from an HTTP(S) URL.
func HTTPSource(url string) Source {
	client := &http.Client{Timeout: httpTimeout}
	return func(ctx context.Context) (*model.Snapshot, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, fmt.Errorf("building snapshot request: %w", err)
		}
		resp, err := client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("fetching snapshot: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("fetching snapshot: unexpected status %s", resp.Status)
		}

		var snap model.Snapshot
		if err := json.NewDecoder(resp.Body).Decode(&snap); err != nil {
			return nil, fmt.Errorf("parsing snapshot response: %w", err)
		}
		return &snap, nil
	}
}

// SourceFor picks a source for a data argument: http(s) URLs fetch over the
// network, everything else is treated as a file path.
func SourceFor(arg string) Source {
	if strings.HasPrefix(arg, "http://") || strings.HasPrefix(arg, "https://") {
		return HTTPSource(arg)
	}
	return FileSource(arg)
}
