// Copyright (c) 2024 ergoclient contributors
// released under the MIT license

package text

import (
	"testing"

	"golang.org/x/text/encoding"
)

func TestDetect(t *testing.T) {
	utf := Detect([]byte("héllo"))
	if !utf.IsUTF8() {
		t.Errorf("expected valid UTF-8 to be detected")
	}
	if s, ok := utf.UTF8(); !ok || s != "héllo" {
		t.Errorf("unexpected UTF8(): %q %v", s, ok)
	}
	if _, ok := utf.Raw(); ok {
		t.Errorf("UTF-8 text should not report raw bytes")
	}

	raw := Detect([]byte{'h', 0xe9, 'l', 'l', 'o'})
	if raw.IsUTF8() {
		t.Errorf("latin1 bytes should not validate as UTF-8")
	}
	if b, ok := raw.Raw(); !ok || len(b) != 5 {
		t.Errorf("unexpected Raw(): %v %v", b, ok)
	}
	if raw.String() != "h�llo" {
		t.Errorf("unexpected lossy string view: %q", raw.String())
	}
}

func TestDecode(t *testing.T) {
	raw := FromBytes([]byte{'c', 'a', 'f', 0xe9})

	decoded, err := raw.DecodeAs("latin1")
	if err != nil {
		t.Fatal(err)
	}
	if s, _ := decoded.UTF8(); s != "café" {
		t.Errorf("expected café, got %q", s)
	}

	lossy := FromBytes([]byte{'a', 0xff, 'b'}).LossyDecode(mustLookup(t, "utf-8"))
	if s, _ := lossy.UTF8(); s != "a�b" {
		t.Errorf("unexpected lossy decode: %q", s)
	}

	if _, err := FromBytes([]byte{'a', 0xff, 'b'}).Decode(mustLookup(t, "utf-8")); err != ErrInvalidEncoding {
		t.Errorf("strict decode of invalid UTF-8 should fail, got %v", err)
	}

	if _, err := raw.DecodeAs("no-such-encoding"); err != ErrUnknownEncoding {
		t.Errorf("expected ErrUnknownEncoding, got %v", err)
	}

	already := FromString("ok")
	if out, err := already.Decode(mustLookup(t, "koi8-r")); err != nil || !out.Equal(already) {
		t.Errorf("decoding UTF-8 text should be the identity")
	}
}

func TestSlice(t *testing.T) {
	txt := FromString("añb")
	if s := txt.Slice(0, 1); !s.IsUTF8() || s.String() != "a" {
		t.Errorf("unexpected slice %v", s)
	}
	// cuts through the two-byte ñ
	if s := txt.Slice(0, 2); s.IsUTF8() {
		t.Errorf("slice through a rune should be raw")
	}
	if txt.Len() != 4 {
		t.Errorf("expected byte length 4, got %d", txt.Len())
	}
}

func TestDecoder(t *testing.T) {
	d, err := NewDecoder("")
	if err != nil {
		t.Fatal(err)
	}
	if d.Label() != DefaultFallback {
		t.Errorf("unexpected default label %s", d.Label())
	}
	if out := d.Decode([]byte("plain ascii")); out != "plain ascii" {
		t.Errorf("valid UTF-8 must pass through, got %q", out)
	}
	if out := d.DecodeString("na\xefve"); out != "naïve" {
		t.Errorf("expected windows-1252 fallback, got %q", out)
	}
	if _, err := NewDecoder("bogus"); err != ErrUnknownEncoding {
		t.Errorf("expected ErrUnknownEncoding, got %v", err)
	}
}

func mustLookup(t *testing.T, label string) encoding.Encoding {
	t.Helper()
	enc, err := Lookup(label)
	if err != nil {
		t.Fatal(err)
	}
	return enc
}
