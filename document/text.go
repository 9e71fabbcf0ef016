package document

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// UTF-8 BOM (Byte Order Mark) sequence
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

func stripUTF8BOM(data []byte) []byte {
	if len(data) >= 3 && bytes.Equal(data[:3], utf8BOM) {
		return data[3:]
	}
	return data
}

// DecodeText converts byte data from a source encoding to a UTF-8 string.
// Supported encodings: "utf8" (or empty), "cp1251", "koi8-r", "cp866",
// "iso-8859-5", "iso-8859-1". The UTF-8 BOM is stripped if present.
func DecodeText(data []byte, sourceEncoding string) (string, error) {
	if sourceEncoding == "" || sourceEncoding == "utf8" {
		return string(stripUTF8BOM(data)), nil
	}

	var decoder *encoding.Decoder

	switch sourceEncoding {
	case "cp1251":
		decoder = charmap.Windows1251.NewDecoder()
	case "koi8-r":
		decoder = charmap.KOI8R.NewDecoder()
	case "cp866":
		decoder = charmap.CodePage866.NewDecoder()
	case "iso-8859-5":
		decoder = charmap.ISO8859_5.NewDecoder()
	case "iso-8859-1":
		decoder = charmap.ISO8859_1.NewDecoder()
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedEncoding, sourceEncoding)
	}

	reader := transform.NewReader(bytes.NewReader(data), decoder)
	utf8Data, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("encoding conversion error: %w", err)
	}
	return string(stripUTF8BOM(utf8Data)), nil
}

// readText reads a plain-text file, decoding from sourceEncoding.
func readText(path, sourceEncoding string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &Error{Path: path, Op: "open", Err: err}
	}
	text, err := DecodeText(data, sourceEncoding)
	if err != nil {
		return "", &Error{Path: path, Op: "decode", Err: err}
	}
	return text, nil
}
