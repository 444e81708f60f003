// Copyright (c) 2024 ergoclient contributors
// released under the MIT license

// Package text distinguishes text known to be valid UTF-8 from raw bytes
// received off the wire, which may be in any legacy encoding.
package text

import (
	"bytes"
	"errors"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// DefaultFallback is the WHATWG label of the encoding used by NewDecoder("").
// WHATWG maps "latin1" and "iso-8859-1" onto it as well.
const DefaultFallback = "windows-1252"

var (
	ErrUnknownEncoding = errors.New("Unknown text encoding")
	ErrInvalidEncoding = errors.New("Text is not valid in the requested encoding")
)

// Text is either known-valid UTF-8 or raw bytes of unknown encoding.
// The zero value is empty raw text.
type Text struct {
	raw  []byte
	str  string
	utf8 bool
}

// FromString wraps a string that the caller knows to be valid UTF-8.
func FromString(s string) Text {
	return Text{str: s, utf8: true}
}

// FromBytes wraps raw bytes without inspecting them.
func FromBytes(b []byte) Text {
	return Text{raw: b}
}

// Detect returns UTF-8 text if b validates, raw text otherwise.
func Detect(b []byte) Text {
	if utf8.Valid(b) {
		return Text{str: string(b), utf8: true}
	}
	return Text{raw: b}
}

// DetectString is Detect for data already held in a string.
func DetectString(s string) Text {
	if utf8.ValidString(s) {
		return Text{str: s, utf8: true}
	}
	return Text{raw: []byte(s)}
}

func (t Text) IsUTF8() bool {
	return t.utf8
}

// UTF8 returns the text and true if it is known-valid UTF-8.
func (t Text) UTF8() (string, bool) {
	if t.utf8 {
		return t.str, true
	}
	return "", false
}

// Raw returns the bytes and true if the text is raw.
func (t Text) Raw() ([]byte, bool) {
	if t.utf8 {
		return nil, false
	}
	return t.raw, true
}

// Bytes returns the underlying bytes regardless of kind.
func (t Text) Bytes() []byte {
	if t.utf8 {
		return []byte(t.str)
	}
	return t.raw
}

func (t Text) Len() int {
	if t.utf8 {
		return len(t.str)
	}
	return len(t.raw)
}

// Slice returns the byte range [start, end) as text of the same kind.
// Slicing UTF-8 text in the middle of a rune yields raw text.
func (t Text) Slice(start, end int) Text {
	if t.utf8 {
		return DetectString(t.str[start:end])
	}
	return Text{raw: t.raw[start:end]}
}

// String returns a UTF-8 view; raw text is converted with invalid
// sequences replaced by U+FFFD.
func (t Text) String() string {
	if t.utf8 {
		return t.str
	}
	return strings.ToValidUTF8(string(t.raw), string(utf8.RuneError))
}

func (t Text) Equal(other Text) bool {
	return t.utf8 == other.utf8 && bytes.Equal(t.Bytes(), other.Bytes())
}

// Decode converts raw text to UTF-8 using enc, failing if the decoder had
// to substitute any byte sequence. UTF-8 text is returned unchanged.
func (t Text) Decode(enc encoding.Encoding) (Text, error) {
	if t.utf8 {
		return t, nil
	}
	decoded, err := enc.NewDecoder().Bytes(t.raw)
	if err != nil {
		return t, ErrInvalidEncoding
	}
	if bytes.ContainsRune(decoded, utf8.RuneError) && !bytes.ContainsRune(t.raw, utf8.RuneError) {
		return t, ErrInvalidEncoding
	}
	return Text{str: string(decoded), utf8: true}, nil
}

// LossyDecode converts raw text to UTF-8 using enc, replacing anything the
// decoder cannot map. It never fails.
func (t Text) LossyDecode(enc encoding.Encoding) Text {
	if t.utf8 {
		return t
	}
	decoded, err := enc.NewDecoder().Bytes(t.raw)
	if err != nil {
		return Text{str: t.String(), utf8: true}
	}
	return Text{str: strings.ToValidUTF8(string(decoded), string(utf8.RuneError)), utf8: true}
}

// DecodeAs is Decode with the encoding looked up by WHATWG label.
func (t Text) DecodeAs(label string) (Text, error) {
	enc, err := Lookup(label)
	if err != nil {
		return t, err
	}
	return t.Decode(enc)
}

// LossyDecodeAs is LossyDecode with the encoding looked up by WHATWG label.
func (t Text) LossyDecodeAs(label string) (Text, error) {
	enc, err := Lookup(label)
	if err != nil {
		return t, err
	}
	return t.LossyDecode(enc), nil
}

// Lookup returns the encoding registered under the given WHATWG label
// ("utf-8", "latin1", "koi8-r", "shift_jis", ...).
func Lookup(label string) (encoding.Encoding, error) {
	enc, err := htmlindex.Get(label)
	if err != nil || enc == nil {
		return nil, ErrUnknownEncoding
	}
	return enc, nil
}
