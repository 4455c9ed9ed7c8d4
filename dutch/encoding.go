package dutch

import (
	"fmt"
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// decodeReader wraps r so that it yields UTF-8 decoded from the named
// encoding. Invalid byte sequences are substituted, never fatal: a broken
// byte in a ten-megabyte bundle must not abort the scan.
func decodeReader(name string, r io.Reader) (io.Reader, error) {
	enc, err := encodingByName(name)
	if err != nil {
		return nil, err
	}
	return transform.NewReader(r, enc.NewDecoder()), nil
}

func encodingByName(name string) (encoding.Encoding, error) {
	switch name {
	case "", "utf-8", "utf8":
		return unicode.UTF8, nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252, nil
	case "latin-1", "iso-8859-1":
		return charmap.ISO8859_1, nil
	default:
		return nil, fmt.Errorf("unsupported encoding %q", name)
	}
}
