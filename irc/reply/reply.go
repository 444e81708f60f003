// Copyright (c) 2024 ergoclient contributors
// released under the MIT license

// Package reply models the numeric replies a server sends to a client.
package reply

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ergochat/ergoclient/irc/message"
)

var (
	// ErrNotFound is returned for command tokens that aren't a known numeric.
	ErrNotFound = errors.New("Unknown numeric reply")
)

// Code is a three-digit numeric reply.
type Code int

var byName map[string]Code

func init() {
	byName = make(map[string]Code, len(names))
	for code, name := range names {
		byName[name] = code
	}
}

// Lookup maps a command token such as "001" to its code.
func Lookup(token string) (Code, error) {
	if len(token) != 3 {
		return 0, ErrNotFound
	}
	var value int
	for i := 0; i < 3; i++ {
		if token[i] < '0' || '9' < token[i] {
			return 0, ErrNotFound
		}
		value = value*10 + int(token[i]-'0')
	}
	code := Code(value)
	if _, ok := names[code]; !ok {
		return 0, ErrNotFound
	}
	return code, nil
}

// ByName maps a symbolic name such as "RPL_WELCOME" to its code.
func ByName(name string) (Code, error) {
	if code, ok := byName[strings.ToUpper(name)]; ok {
		return code, nil
	}
	return 0, ErrNotFound
}

// Name returns the RFC 2812 symbolic name, or "" for an unknown code.
func (c Code) Name() string {
	return names[c]
}

// String returns the wire form, always three digits.
func (c Code) String() string {
	return fmt.Sprintf("%03d", int(c))
}

// IsReply reports whether c is a command response (RPL_*).
func (c Code) IsReply() bool {
	return c < 400
}

// IsError reports whether c is an error reply (ERR_*).
func (c Code) IsError() bool {
	return 400 <= c && c < 600
}

// Reply is a decoded numeric. The first argument of a numeric always names
// the client it is addressed to; the remaining middle parameters are kept
// in order and the trailing parameter is the human-readable text.
type Reply struct {
	Code    Code
	Target  string
	Params  []string
	Text    string
	HasText bool
}

// FromMessage decodes msg as a numeric reply. It fails for non-numeric or
// unknown commands and for numerics without a target. Strings in the
// result share msg's storage (see Detach).
func FromMessage(msg *message.Message) (Reply, bool) {
	code, err := Lookup(msg.Command())
	if err != nil || msg.NumArgs() == 0 {
		return Reply{}, false
	}
	result := Reply{Code: code}
	params := msg.Params()
	text, hasText := msg.Trailing()
	if len(params) == 0 {
		// "001 :Welcome" has only a trailing parameter; it is the target
		result.Target = text
		return result, true
	}
	result.Target = params[0]
	if 1 < len(params) {
		result.Params = params[1:]
	}
	result.Text, result.HasText = text, hasText
	return result, true
}

// ToMessage formats the reply as a server would send it.
func (r Reply) ToMessage(prefix string) (message.Message, error) {
	params := make([]string, 0, 1+len(r.Params))
	params = append(params, r.Target)
	params = append(params, r.Params...)
	return message.Format(message.Parts{
		Prefix:      prefix,
		Command:     r.Code.String(),
		Params:      params,
		Trailing:    r.Text,
		HasTrailing: r.HasText,
	})
}

// Detach returns a copy that owns all of its strings.
func (r Reply) Detach() Reply {
	result := Reply{
		Code:    r.Code,
		Target:  strings.Clone(r.Target),
		Text:    strings.Clone(r.Text),
		HasText: r.HasText,
	}
	if r.Params != nil {
		result.Params = make([]string, len(r.Params))
		for i, p := range r.Params {
			result.Params[i] = strings.Clone(p)
		}
	}
	return result
}
