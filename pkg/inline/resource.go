package inline

import (
	"context"
	"encoding/base64"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/mastermalone/css-unity/pkg/fsutil"
)

// Resolver loads referenced resources and encodes them as base64.
// Every path resolves against the directory of the first stylesheet in the
// set, regardless of which stylesheet the reference came from.
type Resolver struct {
	baseDir string
	log     *log.Logger
}

// NewResolver creates a Resolver rooted at baseDir.
func NewResolver(baseDir string, logger *log.Logger) *Resolver {
	if logger == nil {
		logger = log.Default()
	}
	return &Resolver{baseDir: baseDir, log: logger}
}

// Resolve returns the base64 payload and raw size of the resource at path.
// A missing or unreadable resource is never an error: ok is false and the
// caller leaves the reference degraded.
func (r *Resolver) Resolve(ctx context.Context, path string) (payload string, size int, ok bool) {
	full := filepath.Join(r.baseDir, filepath.FromSlash(path))

	content, err := fsutil.ReadFile(ctx, full)
	if err != nil {
		r.log.Debug("resource not resolved", "path", path, "resolved", full, "error", err)
		return "", 0, false
	}

	return base64.StdEncoding.EncodeToString(content), len(content), true
}
