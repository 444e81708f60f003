// Copyright (c) 2024 ergoclient contributors
// released under the MIT license

package command

import (
	"strings"

	"github.com/ergochat/ergoclient/irc/message"
)

// Who is "WHO [ <mask> [ "o" ] ]" (3.6.1).
type Who struct {
	Mask      string
	Operators bool
}

func (Who) Name() string { return "WHO" }

func (c Who) encode() ([]string, string, bool) {
	params := appendOptional(nil, c.Mask)
	if c.Operators {
		if len(params) == 0 {
			params = append(params, "0")
		}
		params = append(params, "o")
	}
	return params, "", false
}

func (c Who) detach() Command { return Who{Mask: strings.Clone(c.Mask), Operators: c.Operators} }

func decodeWho(msg *message.Message) (Command, bool) {
	return Who{Mask: arg(msg, 0), Operators: arg(msg, 1) == "o"}, true
}

// Whois is "WHOIS [ <target> ] <mask> *( "," <mask> )" (3.6.2).
type Whois struct {
	Target string
	Masks  []string
}

func (Whois) Name() string { return "WHOIS" }

func (c Whois) encode() ([]string, string, bool) {
	return appendOptional(nil, c.Target, joinList(c.Masks)), "", false
}

func (c Whois) detach() Command {
	return Whois{Target: strings.Clone(c.Target), Masks: cloneList(c.Masks)}
}

func decodeWhois(msg *message.Message) (Command, bool) {
	if msg.NumArgs() == 1 {
		return Whois{Masks: splitList(msg.Arg(0))}, true
	}
	return Whois{Target: msg.Arg(0), Masks: splitList(msg.Arg(1))}, true
}

// Whowas is "WHOWAS <nickname> *( "," <nickname> ) [ <count> [ <target> ] ]" (3.6.3).
type Whowas struct {
	Nicknames []string
	Count     string
	Target    string
}

func (Whowas) Name() string { return "WHOWAS" }

func (c Whowas) encode() ([]string, string, bool) {
	return appendOptional([]string{joinList(c.Nicknames)}, c.Count, c.Target), "", false
}

func (c Whowas) detach() Command {
	return Whowas{Nicknames: cloneList(c.Nicknames), Count: strings.Clone(c.Count), Target: strings.Clone(c.Target)}
}

func decodeWhowas(msg *message.Message) (Command, bool) {
	return Whowas{Nicknames: splitList(msg.Arg(0)), Count: arg(msg, 1), Target: arg(msg, 2)}, true
}

// Kill is "KILL <nickname> <comment>" (3.7.1).
type Kill struct {
	Nickname string
	Comment  string
}

func (Kill) Name() string { return "KILL" }

func (c Kill) encode() ([]string, string, bool) {
	return []string{c.Nickname}, c.Comment, true
}

func (c Kill) detach() Command {
	return Kill{Nickname: strings.Clone(c.Nickname), Comment: strings.Clone(c.Comment)}
}

func decodeKill(msg *message.Message) (Command, bool) {
	return Kill{Nickname: msg.Arg(0), Comment: msg.Arg(1)}, true
}

// Ping is "PING <server1> [ <server2> ]" (3.7.2). The last token is written
// as a trailing parameter, since servers commonly send "PING :token".
type Ping struct {
	Server1 string
	Server2 string
}

func (Ping) Name() string { return "PING" }

func (c Ping) encode() ([]string, string, bool) {
	return pingParams(c.Server1, c.Server2)
}

func (c Ping) detach() Command {
	return Ping{Server1: strings.Clone(c.Server1), Server2: strings.Clone(c.Server2)}
}

func decodePing(msg *message.Message) (Command, bool) {
	return Ping{Server1: msg.Arg(0), Server2: arg(msg, 1)}, true
}

// Pong is "PONG <server> [ <server2> ]" (3.7.3).
type Pong struct {
	Server1 string
	Server2 string
}

func (Pong) Name() string { return "PONG" }

func (c Pong) encode() ([]string, string, bool) {
	return pingParams(c.Server1, c.Server2)
}

func (c Pong) detach() Command {
	return Pong{Server1: strings.Clone(c.Server1), Server2: strings.Clone(c.Server2)}
}

func decodePong(msg *message.Message) (Command, bool) {
	return Pong{Server1: msg.Arg(0), Server2: arg(msg, 1)}, true
}

func pingParams(server1, server2 string) ([]string, string, bool) {
	if server2 != "" {
		return []string{server1}, server2, true
	}
	return nil, server1, true
}

// Error is "ERROR <error message>" (3.7.4).
type Error struct {
	Message string
}

func (Error) Name() string { return "ERROR" }

func (c Error) encode() ([]string, string, bool) {
	return nil, c.Message, true
}

func (c Error) detach() Command { return Error{Message: strings.Clone(c.Message)} }

func decodeError(msg *message.Message) (Command, bool) {
	return Error{Message: msg.Arg(0)}, true
}

// Away is "AWAY [ <text> ]" (4.1); no text marks the user as back.
type Away struct {
	Text string
}

func (Away) Name() string { return "AWAY" }

func (c Away) encode() ([]string, string, bool) {
	return nil, c.Text, c.Text != ""
}

func (c Away) detach() Command { return Away{Text: strings.Clone(c.Text)} }

func decodeAway(msg *message.Message) (Command, bool) {
	return Away{Text: arg(msg, 0)}, true
}

type Rehash struct{}

func (Rehash) Name() string                     { return "REHASH" }
func (Rehash) encode() ([]string, string, bool) { return nil, "", false }
func (c Rehash) detach() Command                { return c }

func decodeRehash(msg *message.Message) (Command, bool) { return Rehash{}, true }

type Die struct{}

func (Die) Name() string                     { return "DIE" }
func (Die) encode() ([]string, string, bool) { return nil, "", false }
func (c Die) detach() Command                { return c }

func decodeDie(msg *message.Message) (Command, bool) { return Die{}, true }

type Restart struct{}

func (Restart) Name() string                     { return "RESTART" }
func (Restart) encode() ([]string, string, bool) { return nil, "", false }
func (c Restart) detach() Command                { return c }

func decodeRestart(msg *message.Message) (Command, bool) { return Restart{}, true }

// Summon is "SUMMON <user> [ <target> [ <channel> ] ]" (4.5).
type Summon struct {
	User    string
	Target  string
	Channel string
}

func (Summon) Name() string { return "SUMMON" }

func (c Summon) encode() ([]string, string, bool) {
	return appendOptional([]string{c.User}, c.Target, c.Channel), "", false
}

func (c Summon) detach() Command {
	return Summon{User: strings.Clone(c.User), Target: strings.Clone(c.Target), Channel: strings.Clone(c.Channel)}
}

func decodeSummon(msg *message.Message) (Command, bool) {
	return Summon{User: msg.Arg(0), Target: arg(msg, 1), Channel: arg(msg, 2)}, true
}

type Users struct {
	Target string
}

func (Users) Name() string { return "USERS" }

func (c Users) encode() ([]string, string, bool) {
	return appendOptional(nil, c.Target), "", false
}

func (c Users) detach() Command { return Users{Target: strings.Clone(c.Target)} }

func decodeUsers(msg *message.Message) (Command, bool) {
	return Users{Target: arg(msg, 0)}, true
}

// Wallops is "WALLOPS <Text to be sent>" (4.7).
type Wallops struct {
	Text string
}

func (Wallops) Name() string { return "WALLOPS" }

func (c Wallops) encode() ([]string, string, bool) {
	return nil, c.Text, true
}

func (c Wallops) detach() Command { return Wallops{Text: strings.Clone(c.Text)} }

func decodeWallops(msg *message.Message) (Command, bool) {
	return Wallops{Text: msg.Arg(0)}, true
}

// Userhost is "USERHOST <nickname> *( SPACE <nickname> )" (4.8).
type Userhost struct {
	Nicknames []string
}

func (Userhost) Name() string { return "USERHOST" }

func (c Userhost) encode() ([]string, string, bool) {
	return c.Nicknames, "", false
}

func (c Userhost) detach() Command { return Userhost{Nicknames: cloneList(c.Nicknames)} }

func decodeUserhost(msg *message.Message) (Command, bool) {
	nicknames := nicknameArgs(msg)
	if nicknames == nil {
		return nil, false
	}
	return Userhost{Nicknames: nicknames}, true
}

// Ison is "ISON <nickname> *( SPACE <nickname> )" (4.9).
type Ison struct {
	Nicknames []string
}

func (Ison) Name() string { return "ISON" }

func (c Ison) encode() ([]string, string, bool) {
	return c.Nicknames, "", false
}

func (c Ison) detach() Command { return Ison{Nicknames: cloneList(c.Nicknames)} }

func decodeIson(msg *message.Message) (Command, bool) {
	nicknames := nicknameArgs(msg)
	if nicknames == nil {
		return nil, false
	}
	return Ison{Nicknames: nicknames}, true
}

// nicknameArgs collects space-separated nicknames; some clients send the
// whole list as one trailing parameter.
func nicknameArgs(msg *message.Message) []string {
	var result []string
	for _, a := range msg.Args() {
		result = append(result, strings.Fields(a)...)
	}
	if len(result) == 0 {
		return nil
	}
	return result
}
