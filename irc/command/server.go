// Copyright (c) 2024 ergoclient contributors
// released under the MIT license

package command

import (
	"strconv"
	"strings"

	"github.com/ergochat/ergoclient/irc/message"
)

// Server queries (RFC 2812 3.4) and service queries (3.5).

type Motd struct {
	Target string
}

func (Motd) Name() string { return "MOTD" }

func (c Motd) encode() ([]string, string, bool) {
	return appendOptional(nil, c.Target), "", false
}

func (c Motd) detach() Command { return Motd{Target: strings.Clone(c.Target)} }

func decodeMotd(msg *message.Message) (Command, bool) {
	return Motd{Target: arg(msg, 0)}, true
}

type Lusers struct {
	Mask   string
	Target string
}

func (Lusers) Name() string { return "LUSERS" }

func (c Lusers) encode() ([]string, string, bool) {
	return appendOptional(nil, c.Mask, c.Target), "", false
}

func (c Lusers) detach() Command {
	return Lusers{Mask: strings.Clone(c.Mask), Target: strings.Clone(c.Target)}
}

func decodeLusers(msg *message.Message) (Command, bool) {
	return Lusers{Mask: arg(msg, 0), Target: arg(msg, 1)}, true
}

type Version struct {
	Target string
}

func (Version) Name() string { return "VERSION" }

func (c Version) encode() ([]string, string, bool) {
	return appendOptional(nil, c.Target), "", false
}

func (c Version) detach() Command { return Version{Target: strings.Clone(c.Target)} }

func decodeVersion(msg *message.Message) (Command, bool) {
	return Version{Target: arg(msg, 0)}, true
}

type Stats struct {
	Query  string
	Target string
}

func (Stats) Name() string { return "STATS" }

func (c Stats) encode() ([]string, string, bool) {
	return appendOptional(nil, c.Query, c.Target), "", false
}

func (c Stats) detach() Command {
	return Stats{Query: strings.Clone(c.Query), Target: strings.Clone(c.Target)}
}

func decodeStats(msg *message.Message) (Command, bool) {
	return Stats{Query: arg(msg, 0), Target: arg(msg, 1)}, true
}

// Links is "LINKS [ [ <remote server> ] <server mask> ]"; the mask comes
// last, so a single argument is the mask.
type Links struct {
	RemoteServer string
	ServerMask   string
}

func (Links) Name() string { return "LINKS" }

func (c Links) encode() ([]string, string, bool) {
	if c.RemoteServer != "" {
		return []string{c.RemoteServer, c.ServerMask}, "", false
	}
	return appendOptional(nil, c.ServerMask), "", false
}

func (c Links) detach() Command {
	return Links{RemoteServer: strings.Clone(c.RemoteServer), ServerMask: strings.Clone(c.ServerMask)}
}

func decodeLinks(msg *message.Message) (Command, bool) {
	switch msg.NumArgs() {
	case 0:
		return Links{}, true
	case 1:
		return Links{ServerMask: msg.Arg(0)}, true
	default:
		return Links{RemoteServer: msg.Arg(0), ServerMask: msg.Arg(1)}, true
	}
}

type Time struct {
	Target string
}

func (Time) Name() string { return "TIME" }

func (c Time) encode() ([]string, string, bool) {
	return appendOptional(nil, c.Target), "", false
}

func (c Time) detach() Command { return Time{Target: strings.Clone(c.Target)} }

func decodeTime(msg *message.Message) (Command, bool) {
	return Time{Target: arg(msg, 0)}, true
}

// Connect is "CONNECT <target server> <port> [ <remote server> ]".
type Connect struct {
	TargetServer string
	Port         int
	RemoteServer string
}

func (Connect) Name() string { return "CONNECT" }

func (c Connect) encode() ([]string, string, bool) {
	return appendOptional([]string{c.TargetServer, strconv.Itoa(c.Port)}, c.RemoteServer), "", false
}

func (c Connect) detach() Command {
	return Connect{TargetServer: strings.Clone(c.TargetServer), Port: c.Port, RemoteServer: strings.Clone(c.RemoteServer)}
}

func decodeConnect(msg *message.Message) (Command, bool) {
	port, err := strconv.Atoi(msg.Arg(1))
	if err != nil || port < 0 || 65535 < port {
		return nil, false
	}
	return Connect{TargetServer: msg.Arg(0), Port: port, RemoteServer: arg(msg, 2)}, true
}

type Trace struct {
	Target string
}

func (Trace) Name() string { return "TRACE" }

func (c Trace) encode() ([]string, string, bool) {
	return appendOptional(nil, c.Target), "", false
}

func (c Trace) detach() Command { return Trace{Target: strings.Clone(c.Target)} }

func decodeTrace(msg *message.Message) (Command, bool) {
	return Trace{Target: arg(msg, 0)}, true
}

type Admin struct {
	Target string
}

func (Admin) Name() string { return "ADMIN" }

func (c Admin) encode() ([]string, string, bool) {
	return appendOptional(nil, c.Target), "", false
}

func (c Admin) detach() Command { return Admin{Target: strings.Clone(c.Target)} }

func decodeAdmin(msg *message.Message) (Command, bool) {
	return Admin{Target: arg(msg, 0)}, true
}

type Info struct {
	Target string
}

func (Info) Name() string { return "INFO" }

func (c Info) encode() ([]string, string, bool) {
	return appendOptional(nil, c.Target), "", false
}

func (c Info) detach() Command { return Info{Target: strings.Clone(c.Target)} }

func decodeInfo(msg *message.Message) (Command, bool) {
	return Info{Target: arg(msg, 0)}, true
}

type Servlist struct {
	Mask string
	Type string
}

func (Servlist) Name() string { return "SERVLIST" }

func (c Servlist) encode() ([]string, string, bool) {
	return appendOptional(nil, c.Mask, c.Type), "", false
}

func (c Servlist) detach() Command {
	return Servlist{Mask: strings.Clone(c.Mask), Type: strings.Clone(c.Type)}
}

func decodeServlist(msg *message.Message) (Command, bool) {
	return Servlist{Mask: arg(msg, 0), Type: arg(msg, 1)}, true
}

type Squery struct {
	ServiceName string
	Text        string
}

func (Squery) Name() string { return "SQUERY" }

func (c Squery) encode() ([]string, string, bool) {
	return []string{c.ServiceName}, c.Text, true
}

func (c Squery) detach() Command {
	return Squery{ServiceName: strings.Clone(c.ServiceName), Text: strings.Clone(c.Text)}
}

func decodeSquery(msg *message.Message) (Command, bool) {
	return Squery{ServiceName: msg.Arg(0), Text: msg.Arg(1)}, true
}
