package storage

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"gitlab.com/rawpixel-vincent/hsts-provisioner/internal/fs"
)

var ErrLogFileNotOpened = errors.New("file not opened")

const (
	logFilePermissions      = 0600
	logDirectoryPermissions = 0750
)

// File appends the logs to a file, creating its directory when needed
type File struct {
	fs   fs.FS
	path string

	storage io.WriteCloser
}

func NewFile(filesystem fs.FS, path string) Storage {
	return &File{
		fs:   filesystem,
		path: path,
	}
}

func (f *File) Open() error {
	err := f.fs.MkdirAll(filepath.Dir(f.path), logDirectoryPermissions)
	if err != nil {
		return fmt.Errorf("couldn't create directory of log file %q: %w", f.path, err)
	}

	f.storage, err = f.fs.Append(f.path, logFilePermissions)
	if err != nil {
		return fmt.Errorf("couldn't open log file %q for appending: %w", f.path, err)
	}

	return nil
}

// Close releases the file. Writes after Close fail with ErrLogFileNotOpened.
func (f *File) Close() error {
	if f.storage == nil {
		return fmt.Errorf("couldn't close log file %q: %w", f.path, ErrLogFileNotOpened)
	}

	err := f.storage.Close()
	f.storage = nil

	if err != nil {
		return fmt.Errorf("couldn't close log file %q: %w", f.path, err)
	}

	return nil
}

func (f *File) Write(p []byte) (int, error) {
	if f.storage == nil {
		return 0, fmt.Errorf("couldn't write to log file %q: %w", f.path, ErrLogFileNotOpened)
	}

	return f.storage.Write(p)
}
