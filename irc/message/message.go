// Copyright (c) 2024 ergoclient contributors
// released under the MIT license

// Package message parses and formats single lines of IRC traffic.
//
// A Message keeps the line it came from and records every part of it
// (prefix, command, middle parameters, trailing parameter) as byte ranges
// into that line, so parsing allocates nothing per field.
package message

import (
	"errors"
	"strings"

	"github.com/ergochat/ergoclient/irc/text"
)

// MaxLineLen is the RFC 2812 limit on a line, including the CRLF.
const MaxLineLen = 512

var (
	// ErrLineIsEmpty indicates that the line held no command token.
	ErrLineIsEmpty = errors.New("Line is empty")
	// ErrLineContainsBadChar indicates a NUL, CR or LF inside the line.
	ErrLineContainsBadChar = errors.New("Line contains invalid characters")
	// ErrCommandMissing indicates an attempt to format a message without a command.
	ErrCommandMissing = errors.New("IRC messages MUST have a command")
	// ErrBadParam indicates a middle parameter (or prefix) that cannot be
	// serialized: it is empty, contains a space, or starts with ':'.
	ErrBadParam = errors.New("Cannot have an empty param, a param with spaces, or a param that starts with ':' before the last parameter")
)

// Range is a half-open byte range [Start, End) into a Message's source.
type Range struct {
	Start int
	End   int
}

func (r Range) Len() int {
	return r.End - r.Start
}

// Message is one parsed or formatted line. It is immutable once built, and
// safe to share between goroutines.
type Message struct {
	source      string
	prefix      Range
	command     Range
	params      []Range
	trailing    Range
	hasPrefix   bool
	hasTrailing bool
}

// Parse slices one line into its parts. A single trailing "\n" and "\r" are
// stripped first; any other CR, LF or NUL makes the line invalid.
func Parse(line string) (msg Message, err error) {
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	if strings.IndexByte(line, '\x00') != -1 || strings.IndexByte(line, '\n') != -1 || strings.IndexByte(line, '\r') != -1 {
		return msg, ErrLineContainsBadChar
	}

	msg.source = line
	pos := 0

	if 0 < len(line) && line[0] == ':' {
		prefixEnd := strings.IndexByte(line, ' ')
		if prefixEnd == -1 {
			return Message{}, ErrLineIsEmpty
		}
		msg.prefix = Range{1, prefixEnd}
		msg.hasPrefix = true
		pos = prefixEnd + 1
	}

	pos = skipSpaces(line, pos)
	msg.command = Range{pos, tokenEnd(line, pos)}
	if msg.command.Len() == 0 {
		return Message{}, ErrLineIsEmpty
	}
	pos = msg.command.End

	for {
		pos = skipSpaces(line, pos)
		if pos == len(line) {
			break
		}
		if line[pos] == ':' {
			msg.trailing = Range{pos + 1, len(line)}
			msg.hasTrailing = true
			break
		}
		end := tokenEnd(line, pos)
		msg.params = append(msg.params, Range{pos, end})
		pos = end
	}

	return msg, nil
}

// ParseBytes is Parse for a line held in a byte slice. The message takes
// its own copy, so the caller may reuse line afterwards.
func ParseBytes(line []byte) (Message, error) {
	return Parse(string(line))
}

func skipSpaces(line string, pos int) int {
	for pos < len(line) && line[pos] == ' ' {
		pos++
	}
	return pos
}

func tokenEnd(line string, pos int) int {
	end := strings.IndexByte(line[pos:], ' ')
	if end == -1 {
		return len(line)
	}
	return pos + end
}

// Source returns the whole line, without its CRLF.
func (msg *Message) Source() string {
	return msg.source
}

// String returns the whole line, without its CRLF.
func (msg *Message) String() string {
	return msg.source
}

// Line returns the wire form of the message, terminated by CRLF.
func (msg *Message) Line() []byte {
	buf := make([]byte, 0, len(msg.source)+2)
	buf = append(buf, msg.source...)
	return append(buf, '\r', '\n')
}

// Prefix returns the sender (without the leading ':'), if any.
func (msg *Message) Prefix() (prefix string, ok bool) {
	if !msg.hasPrefix {
		return "", false
	}
	return msg.slice(msg.prefix), true
}

func (msg *Message) PrefixRange() (Range, bool) {
	return msg.prefix, msg.hasPrefix
}

// Command returns the command word or three-digit numeric, as received.
func (msg *Message) Command() string {
	return msg.slice(msg.command)
}

func (msg *Message) CommandRange() Range {
	return msg.command
}

// NumParams returns the number of middle parameters (excluding trailing).
func (msg *Message) NumParams() int {
	return len(msg.params)
}

// Param returns the i'th middle parameter.
func (msg *Message) Param(i int) string {
	return msg.slice(msg.params[i])
}

// Params returns the middle parameters. The strings share the message's
// backing storage.
func (msg *Message) Params() []string {
	result := make([]string, len(msg.params))
	for i, r := range msg.params {
		result[i] = msg.slice(r)
	}
	return result
}

func (msg *Message) ParamRanges() []Range {
	return msg.params
}

// Trailing returns the final ':'-introduced parameter (without the ':'), if any.
func (msg *Message) Trailing() (trailing string, ok bool) {
	if !msg.hasTrailing {
		return "", false
	}
	return msg.slice(msg.trailing), true
}

func (msg *Message) TrailingRange() (Range, bool) {
	return msg.trailing, msg.hasTrailing
}

// NumArgs returns the number of positional arguments: the middle
// parameters plus the trailing parameter, if present.
func (msg *Message) NumArgs() int {
	if msg.hasTrailing {
		return len(msg.params) + 1
	}
	return len(msg.params)
}

// Arg returns the i'th positional argument, where the trailing parameter
// counts as the last one. This is the view the command model decodes from,
// since "PRIVMSG #a hi" and "PRIVMSG #a :hi" carry the same arguments.
func (msg *Message) Arg(i int) string {
	if i == len(msg.params) && msg.hasTrailing {
		return msg.slice(msg.trailing)
	}
	return msg.slice(msg.params[i])
}

// Args returns all positional arguments.
func (msg *Message) Args() []string {
	result := make([]string, 0, msg.NumArgs())
	for _, r := range msg.params {
		result = append(result, msg.slice(r))
	}
	if msg.hasTrailing {
		result = append(result, msg.slice(msg.trailing))
	}
	return result
}

// Text returns the bytes covered by r as text.Text, which is raw if they
// are not valid UTF-8.
func (msg *Message) Text(r Range) text.Text {
	return text.DetectString(msg.slice(r))
}

func (msg *Message) slice(r Range) string {
	return msg.source[r.Start:r.End]
}
