// Copyright (c) 2024 ergoclient contributors
// released under the MIT license

package command

import (
	"strings"

	"github.com/ergochat/ergoclient/irc/message"
)

// Privmsg is "PRIVMSG <msgtarget> <text to be sent>" (3.3.1).
type Privmsg struct {
	To      string
	Content string
}

func (Privmsg) Name() string { return "PRIVMSG" }

func (c Privmsg) encode() ([]string, string, bool) {
	return []string{c.To}, c.Content, true
}

func (c Privmsg) detach() Command {
	return Privmsg{To: strings.Clone(c.To), Content: strings.Clone(c.Content)}
}

// CTCP unwraps a CTCP request carried in the message body.
func (c Privmsg) CTCP() (tag, args string, ok bool) {
	return message.UnquoteCTCP(c.Content)
}

func decodePrivmsg(msg *message.Message) (Command, bool) {
	return Privmsg{To: msg.Arg(0), Content: msg.Arg(1)}, true
}

// Notice is "NOTICE <msgtarget> <text>" (3.3.2).
type Notice struct {
	To      string
	Content string
}

func (Notice) Name() string { return "NOTICE" }

func (c Notice) encode() ([]string, string, bool) {
	return []string{c.To}, c.Content, true
}

func (c Notice) detach() Command {
	return Notice{To: strings.Clone(c.To), Content: strings.Clone(c.Content)}
}

// CTCP unwraps a CTCP reply carried in the notice body.
func (c Notice) CTCP() (tag, args string, ok bool) {
	return message.UnquoteCTCP(c.Content)
}

func decodeNotice(msg *message.Message) (Command, bool) {
	return Notice{To: msg.Arg(0), Content: msg.Arg(1)}, true
}

// CTCP builds a CTCP request to target, e.g. CTCP("dan", "VERSION", "").
func CTCP(target, tag, args string) Privmsg {
	return Privmsg{To: target, Content: message.QuoteCTCP(tag, args)}
}

// CTCPReply builds the NOTICE answering a CTCP request.
func CTCPReply(target, tag, args string) Notice {
	return Notice{To: target, Content: message.QuoteCTCP(tag, args)}
}

// Action builds a "/me" message.
func Action(target, text string) Privmsg {
	return CTCP(target, "ACTION", text)
}
