package document

import (
	"path/filepath"
	"strings"
)

// ReadFile reads path and returns its natural-language text content.
//
// Files ending in .epub are opened as EPUB containers; anything else is read
// as plain text decoded from sourceEncoding (see DecodeText). EPUB chapters
// are always UTF-8 and ignore sourceEncoding.
func ReadFile(path, sourceEncoding string) (string, error) {
	if strings.ToLower(filepath.Ext(path)) == ".epub" {
		return readEPUB(path)
	}
	return readText(path, sourceEncoding)
}
