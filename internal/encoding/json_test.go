package encoding

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEvent struct {
	Type    string `json:"type"`
	Message string `json:"message,omitempty"`
}

func TestJSON_EncodeOneDocumentPerLine(t *testing.T) {
	target := new(bytes.Buffer)
	encoder := NewJSON()

	require.NoError(t, encoder.Encode(testEvent{Type: "progress"}, target))
	require.NoError(t, encoder.Encode(testEvent{Type: "message", Message: "Connected to 10.0.0.1"}, target))

	lines := strings.Split(strings.TrimSuffix(target.String(), "\n"), "\n")
	assert.Equal(t, []string{
		`{"type":"progress"}`,
		`{"type":"message","message":"Connected to 10.0.0.1"}`,
	}, lines)
}

func TestJSON_EncodeKeepsShellOperators(t *testing.T) {
	target := new(bytes.Buffer)

	err := NewJSON().Encode(testEvent{Type: "message", Message: "tar -xzf a.tar.gz && echo <done>"}, target)
	require.NoError(t, err)

	assert.Equal(t, `{"type":"message","message":"tar -xzf a.tar.gz && echo <done>"}`+"\n", target.String())
}

func TestJSON_Decode(t *testing.T) {
	source := bytes.NewBufferString(`{"type":"result","message":"ok"}` + "\n" + `{"type":"ignored"}`)

	var target testEvent
	require.NoError(t, NewJSON().Decode(source, &target))
	assert.Equal(t, testEvent{Type: "result", Message: "ok"}, target)

	assert.Error(t, NewJSON().Decode(strings.NewReader("{"), &target))
}
