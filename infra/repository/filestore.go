package repository

import (
	"bufio"
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/afero"
)

// Line is one non-blank line read from a store, numbered from 1.
type Line struct {
	Number int
	Text   string
}

// FileStore is a newline-delimited text file on an afero filesystem.
// It knows nothing about records; codecs sit on top of it.
type FileStore struct {
	fs   afero.Fs
	name string
	path string
}

// NewFileStore returns a store named name backed by path on fs.
func NewFileStore(fs afero.Fs, name, path string) *FileStore {
	return &FileStore{fs: fs, name: name, path: path}
}

// Name returns the logical store name used in logs, errors and metrics.
func (s *FileStore) Name() string { return s.name }

// Path returns the backing file path.
func (s *FileStore) Path() string { return s.path }

// ReadLines returns every non-blank line of the store in file order.
// A missing file yields a StoreError wrapping domain.ErrStoreNotFound.
func (s *FileStore) ReadLines(ctx context.Context) (lines []Line, err error) {
	defer s.track("read", time.Now(), &err)
	if err = ctx.Err(); err != nil {
		return nil, err
	}

	var f afero.File
	if err = WrapError(s.name, "open", s.path, func() error {
		var openErr error
		f, openErr = s.fs.Open(s.path)
		return openErr
	}); err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	scanner := bufio.NewScanner(f)
	n := 0
	for scanner.Scan() {
		n++
		text := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}
		lines = append(lines, Line{Number: n, Text: text})
	}
	if err = WrapError(s.name, "read", s.path, scanner.Err); err != nil {
		return nil, err
	}
	return lines, nil
}

// WriteLines replaces the store content with lines. The new content is
// written to a sibling temp file and renamed over the target, so readers
// never see a half-written store.
func (s *FileStore) WriteLines(ctx context.Context, lines []string) (err error) {
	defer s.track("write", time.Now(), &err)
	if err = ctx.Err(); err != nil {
		return err
	}
	if err = s.ensureDir(); err != nil {
		return err
	}

	tmp := s.path + ".tmp-" + uuid.NewString()
	var f afero.File
	if err = WrapError(s.name, "create", tmp, func() error {
		var createErr error
		f, createErr = s.fs.OpenFile(tmp, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
		return createErr
	}); err != nil {
		return err
	}

	writeErr := writeAll(f, lines)
	closeErr := f.Close()
	if writeErr == nil {
		writeErr = closeErr
	}
	if err = WrapError(s.name, "write", tmp, func() error { return writeErr }); err != nil {
		_ = s.fs.Remove(tmp)
		return err
	}

	if err = WrapError(s.name, "rename", s.path, func() error {
		return s.fs.Rename(tmp, s.path)
	}); err != nil {
		_ = s.fs.Remove(tmp)
		return err
	}
	return nil
}

// AppendLines adds lines to the end of the store, creating it if needed.
func (s *FileStore) AppendLines(ctx context.Context, lines []string) (err error) {
	defer s.track("append", time.Now(), &err)
	if err = ctx.Err(); err != nil {
		return err
	}
	if len(lines) == 0 {
		return nil
	}
	if err = s.ensureDir(); err != nil {
		return err
	}

	var f afero.File
	if err = WrapError(s.name, "open", s.path, func() error {
		var openErr error
		f, openErr = s.fs.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		return openErr
	}); err != nil {
		return err
	}

	writeErr := writeAll(f, lines)
	closeErr := f.Close()
	if writeErr == nil {
		writeErr = closeErr
	}
	return WrapError(s.name, "append", s.path, func() error { return writeErr })
}

func (s *FileStore) ensureDir() error {
	dir := filepath.Dir(s.path)
	if dir == "." || dir == "" {
		return nil
	}
	return WrapError(s.name, "mkdir", dir, func() error {
		return s.fs.MkdirAll(dir, 0o755)
	})
}

func (s *FileStore) track(op string, start time.Time, err *error) {
	storeOpDuration.WithLabelValues(s.name, op).Observe(time.Since(start).Seconds())
	observe(s.name, op, *err)
}

func writeAll(f afero.File, lines []string) error {
	w := bufio.NewWriter(f)
	for _, line := range lines {
		if _, err := w.WriteString(line); err != nil {
			return err
		}
		if err := w.WriteByte('\n'); err != nil {
			return err
		}
	}
	return w.Flush()
}
