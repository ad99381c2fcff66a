package storage

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/rawpixel-vincent/hsts-provisioner/internal/assertions"
	"gitlab.com/rawpixel-vincent/hsts-provisioner/internal/fs"
)

const testLogFile = "/var/log/hsts-provisioner/provisioner.log"

func TestFile_AppendsAcrossOpens(t *testing.T) {
	memFS := fs.NewMemory()

	for _, line := range []string{"first run\n", "second run\n"} {
		s := NewFile(memFS, testLogFile)
		require.NoError(t, s.Open())

		n, err := s.Write([]byte(line))
		require.NoError(t, err)
		assert.Equal(t, len(line), n)

		require.NoError(t, s.Close())
	}

	content, err := memFS.ReadFile(testLogFile)
	require.NoError(t, err)
	assert.Equal(t, "first run\nsecond run\n", string(content))
}

func TestFile_UsedWhenNotOpened(t *testing.T) {
	s := NewFile(fs.NewMemory(), testLogFile)

	n, err := s.Write([]byte("lost"))
	assert.Zero(t, n)
	assertions.ErrorIs(t, err, ErrLogFileNotOpened)

	assertions.ErrorIs(t, s.Close(), ErrLogFileNotOpened)
}

func TestFile_WriteAfterClose(t *testing.T) {
	s := NewFile(fs.NewMemory(), testLogFile)
	require.NoError(t, s.Open())
	require.NoError(t, s.Close())

	_, err := s.Write([]byte("late"))
	assertions.ErrorIs(t, err, ErrLogFileNotOpened)
}

func TestFile_CloseFailure(t *testing.T) {
	testError := errors.New("simulated error")

	underlying := new(MockStorage)
	defer underlying.AssertExpectations(t)

	underlying.On("Close").
		Return(testError).
		Once()

	f := NewFile(fs.NewMemory(), testLogFile).(*File)
	f.storage = underlying

	err := f.Close()
	assertions.ErrorIs(t, err, testError)
	assert.Nil(t, f.storage)
}
