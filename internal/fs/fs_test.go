package fs

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/rawpixel-vincent/hsts-provisioner/internal/assertions"
)

func TestNewOS(t *testing.T) {
	assert.Implements(t, (*FS)(nil), NewOS())
}

func TestFs_ReadFile(t *testing.T) {
	fs := NewMemory()

	data, err := fs.ReadFile("false-file")
	assert.Empty(t, data)
	assertions.ErrorIs(t, err, os.ErrNotExist)
}

func TestFs_WriteFile(t *testing.T) {
	fs := NewMemory()

	file := "test-file"
	content := []byte("content")

	err := fs.WriteFile(file, content, 0600)
	require.NoError(t, err)

	data, err := fs.ReadFile(file)
	assert.Equal(t, content, data)
	assert.NoError(t, err)
}

func TestFs_Exists(t *testing.T) {
	fs := NewMemory()

	file := "test-file"
	e, err := fs.Exists(file)
	assert.False(t, e)
	assert.NoError(t, err)

	err = fs.WriteFile(file, nil, 0600)
	require.NoError(t, err)

	e, err = fs.Exists(file)
	assert.True(t, e)
	assert.NoError(t, err)
}

func TestFs_IsFile(t *testing.T) {
	fs := NewMemory()

	require.NoError(t, fs.MkdirAll("/licenses", 0750))
	require.NoError(t, fs.WriteFile("/licenses/a.aspera-license", []byte("a"), 0600))

	tests := map[string]struct {
		path     string
		expected bool
	}{
		"regular file": {path: "/licenses/a.aspera-license", expected: true},
		"directory":    {path: "/licenses", expected: false},
		"missing path": {path: "/missing", expected: false},
	}

	for tn, tt := range tests {
		t.Run(tn, func(t *testing.T) {
			isFile, err := fs.IsFile(tt.path)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, isFile)
		})
	}
}

func TestFs_ReadDir(t *testing.T) {
	fs := NewMemory()

	require.NoError(t, fs.WriteFile("/dir/b", nil, 0600))
	require.NoError(t, fs.WriteFile("/dir/a", nil, 0600))

	entries, err := fs.ReadDir("/dir")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "a", entries[0].Name())
	assert.Equal(t, "b", entries[1].Name())
}

func TestFs_CreateAndOpen(t *testing.T) {
	fs := NewMemory()

	f, err := fs.Create("/tmp/aspera.deb")
	require.NoError(t, err)
	_, err = f.Write([]byte("package"))
	require.NoError(t, err)
	require.NoError(t, f.Close())

	f, err = fs.Open("/tmp/aspera.deb")
	require.NoError(t, err)
	defer f.Close()

	data, err := io.ReadAll(f)
	assert.NoError(t, err)
	assert.Equal(t, "package", string(data))
}

func TestFs_Append(t *testing.T) {
	fs := NewMemory()

	for _, line := range []string{"first\n", "second\n"} {
		f, err := fs.Append("/var/log/provisioner.log", 0600)
		require.NoError(t, err)

		_, err = io.WriteString(f, line)
		require.NoError(t, err)
		require.NoError(t, f.Close())
	}

	data, err := fs.ReadFile("/var/log/provisioner.log")
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond\n", string(data))
}

func TestFs_Remove(t *testing.T) {
	fs := NewMemory()

	file := "test-file"
	err := fs.WriteFile(file, nil, 0600)
	require.NoError(t, err)

	e, err := fs.Exists(file)
	require.True(t, e)
	require.NoError(t, err)

	err = fs.Remove(file)
	assert.NoError(t, err)

	e, err = fs.Exists(file)
	assert.False(t, e)
	assert.NoError(t, err)
}
