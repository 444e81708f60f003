// Copyright (c) 2024 ergoclient contributors
// released under the MIT license

package text

import (
	"unicode/utf8"

	"golang.org/x/text/encoding"
)

// Decoder turns inbound lines into UTF-8: valid UTF-8 passes through
// untouched, anything else is lossily decoded with one fallback encoding.
type Decoder struct {
	label    string
	fallback encoding.Encoding
}

// NewDecoder returns a Decoder for the fallback encoding with the given
// WHATWG label; the empty label selects DefaultFallback.
func NewDecoder(label string) (*Decoder, error) {
	if label == "" {
		label = DefaultFallback
	}
	enc, err := Lookup(label)
	if err != nil {
		return nil, err
	}
	return &Decoder{label: label, fallback: enc}, nil
}

// Label returns the WHATWG label of the fallback encoding.
func (d *Decoder) Label() string {
	return d.label
}

// DecodeString returns s if it is valid UTF-8, and its lossy conversion
// from the fallback encoding otherwise.
func (d *Decoder) DecodeString(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	return FromBytes([]byte(s)).LossyDecode(d.fallback).String()
}

// Decode is DecodeString for byte slices. The result never aliases b.
func (d *Decoder) Decode(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	return FromBytes(b).LossyDecode(d.fallback).String()
}
