package fs

import (
	"os"

	"github.com/spf13/afero"
)

// File is the handle returned by Open and Create
type File = afero.File

type FS interface {
	ReadFile(filename string) ([]byte, error)
	WriteFile(filename string, data []byte, perm os.FileMode) error
	Exists(path string) (bool, error)
	IsFile(path string) (bool, error)
	ReadDir(dirname string) ([]os.FileInfo, error)
	MkdirAll(path string, perm os.FileMode) error
	Open(name string) (File, error)
	Create(name string) (File, error)
	// Append opens name for appending, creating it when missing
	Append(name string, perm os.FileMode) (File, error)
	Remove(path string) error
}

type fs struct {
	afs afero.Fs
}

func NewOS() FS {
	return &fs{afs: afero.NewOsFs()}
}

// NewMemory returns an in-memory FS, used by tests of the packages depending on FS
func NewMemory() FS {
	return &fs{afs: afero.NewMemMapFs()}
}

func (f *fs) ReadFile(filename string) ([]byte, error) {
	return afero.ReadFile(f.afs, filename)
}

func (f *fs) WriteFile(filename string, data []byte, perm os.FileMode) error {
	return afero.WriteFile(f.afs, filename, data, perm)
}

func (f *fs) Exists(path string) (bool, error) {
	return afero.Exists(f.afs, path)
}

func (f *fs) IsFile(path string) (bool, error) {
	info, err := f.afs.Stat(path)
	if os.IsNotExist(err) {
		return false, nil
	}

	if err != nil {
		return false, err
	}

	return info.Mode().IsRegular(), nil
}

func (f *fs) ReadDir(dirname string) ([]os.FileInfo, error) {
	return afero.ReadDir(f.afs, dirname)
}

func (f *fs) MkdirAll(path string, perm os.FileMode) error {
	return f.afs.MkdirAll(path, perm)
}

func (f *fs) Open(name string) (File, error) {
	return f.afs.Open(name)
}

func (f *fs) Create(name string) (File, error) {
	return f.afs.Create(name)
}

func (f *fs) Append(name string, perm os.FileMode) (File, error) {
	return f.afs.OpenFile(name, os.O_WRONLY|os.O_APPEND|os.O_CREATE, perm)
}

func (f *fs) Remove(path string) error {
	return f.afs.Remove(path)
}
