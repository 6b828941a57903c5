package stylesheet

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mastermalone/css-unity/pkg/fsutil"
)

// Combine concatenates the trimmed contents of every stylesheet in the set,
// each preceded by a FILE marker comment and separated by a blank line.
// Files that no longer exist on disk are silently skipped.
func (s *Set) Combine(ctx context.Context) (string, error) {
	var builder strings.Builder

	for _, path := range s.paths {
		content, err := fsutil.ReadFile(ctx, path)
		if err != nil {
			if errors.Is(err, fsutil.ErrNotFound) || errors.Is(err, os.ErrNotExist) {
				continue
			}
			return "", fmt.Errorf("combine %s: %w", path, err)
		}

		builder.WriteString("/* FILE: ")
		builder.WriteString(path)
		builder.WriteString(" */\n")
		builder.WriteString(strings.TrimSpace(string(content)))
		builder.WriteString("\n\n")
	}

	return builder.String(), nil
}
