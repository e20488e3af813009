package mapkit

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

// Fetcher retrieves an asset by source. Sources are http(s) URLs, file paths
// (optionally file://) or builtin:<name> for assets compiled into the binary.
type Fetcher interface {
	Fetch(ctx context.Context, src string) ([]byte, error)
}

// SourceFetcher is the default Fetcher.
type SourceFetcher struct {
	Client *http.Client
}

func (f SourceFetcher) Fetch(ctx context.Context, src string) ([]byte, error) {
	switch {
	case strings.HasPrefix(src, "builtin:"):
		return assets.ReadFile("assets/" + strings.TrimPrefix(src, "builtin:"))
	case strings.HasPrefix(src, "http://"), strings.HasPrefix(src, "https://"):
		client := f.Client
		if client == nil {
			client = http.DefaultClient
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
		if err != nil {
			return nil, err
		}
		resp, err := client.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("fetch %s: unexpected status code: %d", src, resp.StatusCode)
		}
		return io.ReadAll(resp.Body)
	default:
		return os.ReadFile(strings.TrimPrefix(src, "file://"))
	}
}
