// Copyright (c) 2024 ergoclient contributors
// released under the MIT license

package message

import (
	"strings"
)

// Parts is the structured form of a message, as accepted by Format.
// An empty Prefix means no prefix. The trailing parameter is only written
// when HasTrailing is set, and then always with its leading ':'.
type Parts struct {
	Prefix      string
	Command     string
	Params      []string
	Trailing    string
	HasTrailing bool
}

// Format builds a Message from its parts. The result records the same
// ranges a parsed line would, and parsing its String() gives back an
// identical Message.
func Format(parts Parts) (msg Message, err error) {
	if len(parts.Command) == 0 {
		return msg, ErrCommandMissing
	}
	if paramIsInvalid(parts.Command) {
		return msg, ErrBadParam
	}
	if parts.Prefix != "" && strings.IndexByte(parts.Prefix, ' ') != -1 {
		return msg, ErrBadParam
	}
	if hasBadChar(parts.Prefix) || hasBadChar(parts.Command) || hasBadChar(parts.Trailing) {
		return msg, ErrLineContainsBadChar
	}

	size := len(parts.Command) + len(parts.Trailing) + 2
	if parts.Prefix != "" {
		size += len(parts.Prefix) + 2
	}
	for _, param := range parts.Params {
		if hasBadChar(param) {
			return Message{}, ErrLineContainsBadChar
		}
		if paramIsInvalid(param) {
			return Message{}, ErrBadParam
		}
		size += len(param) + 1
	}

	var buf strings.Builder
	buf.Grow(size)

	if parts.Prefix != "" {
		buf.WriteByte(':')
		msg.prefix = Range{buf.Len(), buf.Len() + len(parts.Prefix)}
		msg.hasPrefix = true
		buf.WriteString(parts.Prefix)
		buf.WriteByte(' ')
	}

	msg.command = Range{buf.Len(), buf.Len() + len(parts.Command)}
	buf.WriteString(parts.Command)

	if len(parts.Params) != 0 {
		msg.params = make([]Range, len(parts.Params))
	}
	for i, param := range parts.Params {
		buf.WriteByte(' ')
		msg.params[i] = Range{buf.Len(), buf.Len() + len(param)}
		buf.WriteString(param)
	}

	if parts.HasTrailing {
		buf.WriteString(" :")
		msg.trailing = Range{buf.Len(), buf.Len() + len(parts.Trailing)}
		msg.hasTrailing = true
		buf.WriteString(parts.Trailing)
	}

	msg.source = buf.String()
	return msg, nil
}

// MustFormat is Format for parts the caller has already validated. It
// panics on error.
func MustFormat(parts Parts) Message {
	msg, err := Format(parts)
	if err != nil {
		panic(err)
	}
	return msg
}

// Parts returns the structured form of msg; Format(msg.Parts()) rebuilds
// the same line.
func (msg *Message) Parts() (parts Parts) {
	parts.Prefix, _ = msg.Prefix()
	parts.Command = msg.Command()
	if len(msg.params) != 0 {
		parts.Params = msg.Params()
	}
	parts.Trailing, parts.HasTrailing = msg.Trailing()
	return
}

func paramIsInvalid(param string) bool {
	return len(param) == 0 || strings.IndexByte(param, ' ') != -1 || param[0] == ':'
}

func hasBadChar(s string) bool {
	return strings.IndexByte(s, '\x00') != -1 || strings.IndexByte(s, '\r') != -1 || strings.IndexByte(s, '\n') != -1
}
