package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Open returns the gateway for backend ("json" or "sqlite") rooted at dir.
func Open(ctx context.Context, backend, dir string) (Gateway, error) {
	switch backend {
	case "", "json":
		return NewJSONStore(dir)
	case "sqlite":
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
		return OpenSQLite(ctx, filepath.Join(dir, SQLiteFile))
	default:
		return nil, fmt.Errorf("storage: unknown backend %q", backend)
	}
}
