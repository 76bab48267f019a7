// Package media keeps the image files behind food media references on the
// local filesystem. A reference is a slash separated path relative to the
// media root, for example "food_images/plov.jpg".
package media

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"fastfood/internal/pkg/errs"
)

type FileStore struct {
	root   string
	logger *slog.Logger
}

func NewFileStore(root string, logger *slog.Logger) (*FileStore, error) {
	if strings.TrimSpace(root) == "" {
		return nil, errs.NewValueIsRequiredError("media root")
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve media root: %w", err)
	}

	return &FileStore{
		root:   abs,
		logger: logger.With("component", "media_store"),
	}, nil
}

// Release removes the files behind refs. Files that are already gone are
// skipped. Every ref is attempted; the failures are joined.
func (s *FileStore) Release(ctx context.Context, refs []string) error {
	var failures []error
	for _, ref := range refs {
		if err := ctx.Err(); err != nil {
			return err
		}

		path, err := s.resolve(ref)
		if err != nil {
			failures = append(failures, err)
			continue
		}

		if err = os.Remove(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				s.logger.DebugContext(ctx, "Media file already removed", "ref", ref)
				continue
			}
			failures = append(failures, fmt.Errorf("remove %s: %w", ref, err))
			continue
		}
		s.logger.InfoContext(ctx, "Media file removed", "ref", ref)
	}

	return errors.Join(failures...)
}

// resolve maps ref to a path inside the media root.
func (s *FileStore) resolve(ref string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(strings.TrimSpace(ref)))
	if clean == "." || filepath.IsAbs(clean) || !filepath.IsLocal(clean) {
		return "", errs.NewValueIsInvalidErrorWithCause("media reference", fmt.Errorf("%q is outside the media root", ref))
	}
	return filepath.Join(s.root, clean), nil
}
