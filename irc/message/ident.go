// Copyright (c) 2024 ergoclient contributors
// released under the MIT license

package message

import (
	"strings"

	"github.com/ergochat/irc-go/ircmsg"
)

// Ident is the nick!user@host triple of a user prefix.
type Ident struct {
	Nickname string
	User     string
	Host     string
}

// ParseIdent splits a nick!user@host prefix. Server names and other
// prefixes lacking either separator are not idents.
func ParseIdent(prefix string) (ident Ident, ok bool) {
	if strings.IndexByte(prefix, '!') == -1 || strings.IndexByte(prefix, '@') == -1 {
		return
	}
	nuh, err := ircmsg.ParseNUH(prefix)
	if err != nil || nuh.Name == "" {
		return
	}
	return Ident{Nickname: nuh.Name, User: nuh.User, Host: nuh.Host}, true
}

// String returns the canonical nick!user@host form.
func (ident Ident) String() string {
	nuh := ircmsg.NUH{Name: ident.Nickname, User: ident.User, Host: ident.Host}
	return nuh.Canonical()
}

// Ident decomposes the message prefix; it is derived on every call.
func (msg *Message) Ident() (Ident, bool) {
	prefix, ok := msg.Prefix()
	if !ok {
		return Ident{}, false
	}
	return ParseIdent(prefix)
}

// Nick returns the nickname of a user prefix, or the whole prefix (a server
// name) otherwise.
func (msg *Message) Nick() string {
	if ident, ok := msg.Ident(); ok {
		return ident.Nickname
	}
	prefix, _ := msg.Prefix()
	return prefix
}
