// Package sink persists generated scripts. The caller picks the destination;
// the sink only normalises the path and writes synchronously, without retry.
package sink

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/goliatone/go-siuscript/pkg/script"
)

// DefaultExtension is appended to destinations that have none.
const DefaultExtension = ".txt"

var (
	// ErrWrite wraps any failure to persist a document.
	ErrWrite = errors.New("sink: write failed")
	// ErrEmptyPath is returned when no destination is given.
	ErrEmptyPath = errors.New("sink: destination path is empty")
)

// Sink persists a document at path and returns the path actually written.
type Sink interface {
	Persist(ctx context.Context, doc script.Document, path string) (string, error)
	Exists(path string) (bool, error)
}

// Option configures a FileSink.
type Option func(*FileSink)

// WithFs swaps the filesystem, e.g. afero.NewMemMapFs() in tests.
func WithFs(fs afero.Fs) Option {
	return func(s *FileSink) {
		if fs != nil {
			s.fs = fs
		}
	}
}

// WithPerm sets the file mode for written scripts.
func WithPerm(perm os.FileMode) Option {
	return func(s *FileSink) {
		if perm != 0 {
			s.perm = perm
		}
	}
}

// FileSink writes documents to an afero filesystem (the OS by default).
type FileSink struct {
	fs   afero.Fs
	perm os.FileMode
}

var _ Sink = (*FileSink)(nil)

// NewFileSink returns a sink writing to the OS filesystem unless overridden.
func NewFileSink(options ...Option) *FileSink {
	s := &FileSink{
		fs:   afero.NewOsFs(),
		perm: 0o644,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	return s
}

// Resolve applies the default extension to path.
func Resolve(path string) string {
	if path == "" {
		return ""
	}
	if filepath.Ext(path) == "" {
		return path + DefaultExtension
	}
	return path
}

// Exists reports whether the resolved path is already present.
func (s *FileSink) Exists(path string) (bool, error) {
	return afero.Exists(s.fs, Resolve(path))
}

// Persist writes doc.Content to path, creating parent directories.
func (s *FileSink) Persist(ctx context.Context, doc script.Document, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	target := Resolve(path)
	if target == "" {
		return "", ErrEmptyPath
	}
	if dir := filepath.Dir(target); dir != "." {
		if err := s.fs.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("%w: mkdir %s: %v", ErrWrite, dir, err)
		}
	}
	if err := afero.WriteFile(s.fs, target, []byte(doc.Content), s.perm); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrWrite, target, err)
	}
	return target, nil
}
