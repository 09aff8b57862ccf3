package fstree

import (
	"bytes"
	"encoding/binary"
	"errors"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	// ErrNotText is returned for content that does not decode as text.
	ErrNotText = errors.New("content is not valid text")
	// ErrTooLarge is returned for files above the configured read limit.
	ErrTooLarge = errors.New("file exceeds the maximum viewable size")
)

// binarySniffLen bounds how much of a file is scanned for NUL bytes.
const binarySniffLen = 8000

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// DecodeText converts file bytes to a string. A UTF-8 or UTF-16 byte order
// mark selects the encoding and is stripped. Content must decode cleanly in
// the selected encoding; without a BOM it must also be free of NUL bytes.
func DecodeText(data []byte) (string, error) {
	switch {
	case bytes.HasPrefix(data, bomUTF8):
		if !utf8.Valid(data[len(bomUTF8):]) {
			return "", ErrNotText
		}
		return string(data[len(bomUTF8):]), nil
	case bytes.HasPrefix(data, bomUTF16LE), bytes.HasPrefix(data, bomUTF16BE):
		return decodeUTF16(data)
	}

	sniff := data
	if len(sniff) > binarySniffLen {
		sniff = sniff[:binarySniffLen]
	}
	if bytes.IndexByte(sniff, 0) >= 0 || !utf8.Valid(data) {
		return "", ErrNotText
	}
	return string(data), nil
}

// decodeUTF16 decodes BOM-prefixed UTF-16. The decoder substitutes U+FFFD
// for unpaired surrogates, so any replacement character not present in the
// input marks the content as malformed.
func decodeUTF16(data []byte) (string, error) {
	if len(data)%2 != 0 {
		return "", ErrNotText
	}
	out, _, err := transform.Bytes(unicode.BOMOverride(transform.Nop), data)
	if err != nil {
		return "", errors.Join(ErrNotText, err)
	}

	order := binary.ByteOrder(binary.LittleEndian)
	if bytes.HasPrefix(data, bomUTF16BE) {
		order = binary.BigEndian
	}
	replacements := 0
	for i := 2; i+1 < len(data); i += 2 {
		if order.Uint16(data[i:]) == utf8.RuneError {
			replacements++
		}
	}
	if strings.Count(string(out), string(utf8.RuneError)) != replacements {
		return "", ErrNotText
	}
	return string(out), nil
}
