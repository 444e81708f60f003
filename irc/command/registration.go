// Copyright (c) 2024 ergoclient contributors
// released under the MIT license

package command

import (
	"strings"

	"github.com/ergochat/ergoclient/irc/message"
)

// Pass is "PASS <password>" (RFC 2812 3.1.1).
type Pass struct {
	Password string
}

func (Pass) Name() string { return "PASS" }

func (c Pass) encode() ([]string, string, bool) {
	return []string{c.Password}, "", false
}

func (c Pass) detach() Command {
	return Pass{Password: strings.Clone(c.Password)}
}

func decodePass(msg *message.Message) (Command, bool) {
	return Pass{Password: msg.Arg(0)}, true
}

// Nick is "NICK <nickname>" (3.1.2).
type Nick struct {
	Nickname string
}

func (Nick) Name() string { return "NICK" }

func (c Nick) encode() ([]string, string, bool) {
	return []string{c.Nickname}, "", false
}

func (c Nick) detach() Command {
	return Nick{Nickname: strings.Clone(c.Nickname)}
}

func decodeNick(msg *message.Message) (Command, bool) {
	return Nick{Nickname: msg.Arg(0)}, true
}

// User is "USER <user> <mode> <unused> <realname>" (3.1.3).
type User struct {
	User     string
	Mode     string
	Unused   string
	Realname string
}

func (User) Name() string { return "USER" }

func (c User) encode() ([]string, string, bool) {
	return []string{c.User, c.Mode, c.Unused}, c.Realname, true
}

func (c User) detach() Command {
	return User{
		User:     strings.Clone(c.User),
		Mode:     strings.Clone(c.Mode),
		Unused:   strings.Clone(c.Unused),
		Realname: strings.Clone(c.Realname),
	}
}

func decodeUser(msg *message.Message) (Command, bool) {
	return User{User: msg.Arg(0), Mode: msg.Arg(1), Unused: msg.Arg(2), Realname: msg.Arg(3)}, true
}

// Oper is "OPER <name> <password>" (3.1.4).
type Oper struct {
	Username string
	Password string
}

func (Oper) Name() string { return "OPER" }

func (c Oper) encode() ([]string, string, bool) {
	return []string{c.Username, c.Password}, "", false
}

func (c Oper) detach() Command {
	return Oper{Username: strings.Clone(c.Username), Password: strings.Clone(c.Password)}
}

func decodeOper(msg *message.Message) (Command, bool) {
	return Oper{Username: msg.Arg(0), Password: msg.Arg(1)}, true
}

// UserMode is the user form of MODE, "MODE <nickname> *( ( "+" / "-" ) *mode )" (3.1.5).
// With no Modes it queries the current modes.
type UserMode struct {
	Nickname string
	Modes    []string
}

func (UserMode) Name() string { return "MODE" }

func (c UserMode) encode() ([]string, string, bool) {
	return append([]string{c.Nickname}, c.Modes...), "", false
}

func (c UserMode) detach() Command {
	return UserMode{Nickname: strings.Clone(c.Nickname), Modes: cloneList(c.Modes)}
}

// ChannelMode is the channel form of MODE,
// "MODE <channel> *( ( "-" / "+" ) *<modes> *<modeparams> )" (3.2.3).
type ChannelMode struct {
	Channel string
	Modes   []string
}

func (ChannelMode) Name() string { return "MODE" }

func (c ChannelMode) encode() ([]string, string, bool) {
	return append([]string{c.Channel}, c.Modes...), "", false
}

func (c ChannelMode) detach() Command {
	return ChannelMode{Channel: strings.Clone(c.Channel), Modes: cloneList(c.Modes)}
}

// MODE is one wire word for two commands; the target decides which.
func decodeMode(msg *message.Message) (Command, bool) {
	target := msg.Arg(0)
	var modes []string
	if 1 < msg.NumArgs() {
		modes = msg.Args()[1:]
	}
	if isChannel(target) {
		return ChannelMode{Channel: target, Modes: modes}, true
	}
	return UserMode{Nickname: target, Modes: modes}, true
}

// Service is "SERVICE <nickname> <reserved> <distribution> <type> <reserved> <info>" (3.1.6).
type Service struct {
	Nickname     string
	Reserved     string
	Distribution string
	Type         string
	Reserved2    string
	Info         string
}

func (Service) Name() string { return "SERVICE" }

func (c Service) encode() ([]string, string, bool) {
	return []string{c.Nickname, c.Reserved, c.Distribution, c.Type, c.Reserved2}, c.Info, true
}

func (c Service) detach() Command {
	return Service{
		Nickname:     strings.Clone(c.Nickname),
		Reserved:     strings.Clone(c.Reserved),
		Distribution: strings.Clone(c.Distribution),
		Type:         strings.Clone(c.Type),
		Reserved2:    strings.Clone(c.Reserved2),
		Info:         strings.Clone(c.Info),
	}
}

func decodeService(msg *message.Message) (Command, bool) {
	return Service{
		Nickname:     msg.Arg(0),
		Reserved:     msg.Arg(1),
		Distribution: msg.Arg(2),
		Type:         msg.Arg(3),
		Reserved2:    msg.Arg(4),
		Info:         msg.Arg(5),
	}, true
}

// Quit is "QUIT [ <Quit Message> ]" (3.1.7).
type Quit struct {
	Message string
}

func (Quit) Name() string { return "QUIT" }

func (c Quit) encode() ([]string, string, bool) {
	return nil, c.Message, c.Message != ""
}

func (c Quit) detach() Command {
	return Quit{Message: strings.Clone(c.Message)}
}

func decodeQuit(msg *message.Message) (Command, bool) {
	return Quit{Message: arg(msg, 0)}, true
}

// Squit is "SQUIT <server> <comment>" (3.1.8).
type Squit struct {
	Server  string
	Comment string
}

func (Squit) Name() string { return "SQUIT" }

func (c Squit) encode() ([]string, string, bool) {
	return []string{c.Server}, c.Comment, true
}

func (c Squit) detach() Command {
	return Squit{Server: strings.Clone(c.Server), Comment: strings.Clone(c.Comment)}
}

func decodeSquit(msg *message.Message) (Command, bool) {
	return Squit{Server: msg.Arg(0), Comment: msg.Arg(1)}, true
}
