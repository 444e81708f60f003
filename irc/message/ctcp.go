// Copyright (c) 2024 ergoclient contributors
// released under the MIT license

package message

import (
	"strings"
)

// CTCPDelim frames a CTCP request or reply inside a trailing parameter.
const CTCPDelim = '\x01'

// Type says how the trailing parameter of a message should be read.
type Type int

const (
	// TypeIRC is an ordinary message.
	TypeIRC Type = iota
	// TypeCTCP is a message whose trailing parameter is \x01-delimited.
	TypeCTCP
)

func (t Type) String() string {
	if t == TypeCTCP {
		return "ctcp"
	}
	return "irc"
}

// Type classifies msg as CTCP when the first and last bytes of its
// trailing parameter are both CTCPDelim. This does not change the grammar.
func (msg *Message) Type() Type {
	if msg.hasTrailing && IsCTCP(msg.slice(msg.trailing)) {
		return TypeCTCP
	}
	return TypeIRC
}

// CTCP returns the tag (e.g. "ACTION") and arguments of a CTCP message.
func (msg *Message) CTCP() (tag, args string, ok bool) {
	trailing, present := msg.Trailing()
	if !present {
		return
	}
	return UnquoteCTCP(trailing)
}

// IsCTCP reports whether s is framed by CTCPDelim on both ends.
func IsCTCP(s string) bool {
	return 2 <= len(s) && s[0] == CTCPDelim && s[len(s)-1] == CTCPDelim
}

// UnquoteCTCP splits a framed CTCP payload into its tag and arguments.
func UnquoteCTCP(s string) (tag, args string, ok bool) {
	if !IsCTCP(s) {
		return "", "", false
	}
	inner := s[1 : len(s)-1]
	if space := strings.IndexByte(inner, ' '); space != -1 {
		return inner[:space], inner[space+1:], true
	}
	return inner, "", true
}

// QuoteCTCP frames a CTCP tag and its (optional) arguments.
func QuoteCTCP(tag, args string) string {
	var buf strings.Builder
	buf.Grow(len(tag) + len(args) + 3)
	buf.WriteByte(CTCPDelim)
	buf.WriteString(tag)
	if args != "" {
		buf.WriteByte(' ')
		buf.WriteString(args)
	}
	buf.WriteByte(CTCPDelim)
	return buf.String()
}
