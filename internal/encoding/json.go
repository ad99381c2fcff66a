package encoding

import (
	stdJSON "encoding/json"
	"io"
)

// jsonLines writes one compact document per line. HTML escaping is disabled
// so remote command lines keep their "&&" and redirections readable.
type jsonLines struct{}

func NewJSON() Encoder {
	return new(jsonLines)
}

func (j *jsonLines) Decode(source io.Reader, target interface{}) error {
	return stdJSON.
		NewDecoder(source).
		Decode(target)
}

func (j *jsonLines) Encode(source interface{}, target io.Writer) error {
	encoder := stdJSON.NewEncoder(target)
	encoder.SetEscapeHTML(false)

	return encoder.Encode(source)
}
