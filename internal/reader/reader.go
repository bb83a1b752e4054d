// Package reader loads file contents as text for embedding in documents.
//
// Files above the configured size cap are never opened; the caller gets an
// inline placeholder instead. Everything else goes through an ordered chain of
// decoders (UTF-8, GBK, GB18030, UTF-16 with BOM, Latin-1) with a permissive
// UTF-8 decode as the terminal fallback, followed by control-character
// sanitization.
package reader

import (
	"bytes"
	"fmt"
	"os"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"
)

// decoders are tried in order; the first strict success wins.
var decoders = []struct {
	name string
	enc  encoding.Encoding
}{
	{"gbk", simplifiedchinese.GBK},
	{"gb18030", simplifiedchinese.GB18030},
	{"utf-16", unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM)},
	{"latin-1", charmap.ISO8859_1},
}

// controlChars matches C0 and C1 control characters except tab, newline, and
// carriage return.
var controlChars = regexp.MustCompile(`[\x00-\x08\x0B\x0C\x0E-\x1F\x7F-\x9F]`)

// garbleReplacements restores labels that a historical encoding bug reduced to
// single garbled characters.
var garbleReplacements = []struct {
	garbled string
	label   string
}{
	{"ƣ", "函数名："},
	{"ܣ", "功能："},
	{"ڲ", "返回值："},
}

// ReadText returns the decoded, sanitized content of the file at path.
//
// Oversized files and unreadable files yield descriptive placeholder strings;
// ReadText never returns an error.
func ReadText(path string, maxSize int64) string {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Sprintf("[cannot read file: %v]", err)
	}
	if info.Size() > maxSize {
		return fmt.Sprintf("[file too large (%s), content skipped]", FormatSize(info.Size()))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Sprintf("[cannot read file: %v]", err)
	}
	return Sanitize(decode(data))
}

func decode(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	for _, d := range decoders {
		if text, ok := decodeStrict(d.enc, data); ok {
			return text
		}
	}
	// Permissive terminal decode: invalid bytes become replacement runes.
	return strings.ToValidUTF8(string(data), string(utf8.RuneError))
}

// replacementRune is the UTF-8 encoding of U+FFFD.
var replacementRune = []byte("\uFFFD")

// decodeStrict decodes with the given encoding and rejects any result that
// required substitution. x/text decoders substitute U+FFFD rather than fail,
// so a replacement rune in the output marks a decode error, unless the input
// already carried a literal encoded replacement rune. The input check must be
// a byte comparison: rune-based searches report U+FFFD for any invalid UTF-8
// sequence, and this path only runs on invalid UTF-8.
func decodeStrict(enc encoding.Encoding, data []byte) (string, bool) {
	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", false
	}
	if bytes.ContainsRune(out, utf8.RuneError) && !bytes.Contains(data, replacementRune) {
		return "", false
	}
	return string(out), true
}

// Sanitize strips disallowed control characters and applies the fixed
// garbled-label replacement table.
func Sanitize(content string) string {
	if content == "" {
		return content
	}
	content = controlChars.ReplaceAllString(content, "")
	for _, r := range garbleReplacements {
		content = strings.ReplaceAll(content, r.garbled, r.label)
	}
	return content
}
