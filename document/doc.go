// Package document reads source documents and splits text into word tokens.
//
// ReadFile dispatches on the file extension: .epub files are opened as EPUB
// containers and their XHTML chapters stripped of markup; anything else is
// read as plain text. Plain text in a legacy encoding (cp1251, koi8-r,
// cp866, iso-8859-5, iso-8859-1) is decoded to UTF-8 first.
//
//	text, err := document.ReadFile("book.epub", "")
//	tokens := document.Tokenize(text)
//
// Tokenize splits on non-alphanumeric boundaries and discards tokens that
// contain no letter, so downstream normalization only ever sees word-like
// tokens.
package document
