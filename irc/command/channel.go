// Copyright (c) 2024 ergoclient contributors
// released under the MIT license

package command

import (
	"strings"

	"github.com/ergochat/ergoclient/irc/message"
)

// Join is "JOIN ( <channel> *( "," <channel> ) [ <key> *( "," <key> ) ] )" (3.2.1).
// Keys pair with Channels by position and may be shorter.
type Join struct {
	Channels []string
	Keys     []string
}

func (Join) Name() string { return "JOIN" }

func (c Join) encode() ([]string, string, bool) {
	params := []string{joinList(c.Channels)}
	if len(c.Keys) != 0 {
		params = append(params, joinList(c.Keys))
	}
	return params, "", false
}

func (c Join) detach() Command {
	return Join{Channels: cloneList(c.Channels), Keys: cloneList(c.Keys)}
}

func decodeJoin(msg *message.Message) (Command, bool) {
	return Join{Channels: splitList(msg.Arg(0)), Keys: splitList(arg(msg, 1))}, true
}

// Part is "PART <channel> *( "," <channel> ) [ <Part Message> ]" (3.2.2).
type Part struct {
	Channels []string
	Message  string
}

func (Part) Name() string { return "PART" }

func (c Part) encode() ([]string, string, bool) {
	return []string{joinList(c.Channels)}, c.Message, c.Message != ""
}

func (c Part) detach() Command {
	return Part{Channels: cloneList(c.Channels), Message: strings.Clone(c.Message)}
}

func decodePart(msg *message.Message) (Command, bool) {
	return Part{Channels: splitList(msg.Arg(0)), Message: arg(msg, 1)}, true
}

// Topic is "TOPIC <channel> [ <topic> ]" (3.2.4). Without HasTopic it
// queries the topic; with HasTopic and an empty Topic it clears it.
type Topic struct {
	Channel  string
	Topic    string
	HasTopic bool
}

func (Topic) Name() string { return "TOPIC" }

func (c Topic) encode() ([]string, string, bool) {
	return []string{c.Channel}, c.Topic, c.HasTopic
}

func (c Topic) detach() Command {
	return Topic{Channel: strings.Clone(c.Channel), Topic: strings.Clone(c.Topic), HasTopic: c.HasTopic}
}

func decodeTopic(msg *message.Message) (Command, bool) {
	if 1 < msg.NumArgs() {
		return Topic{Channel: msg.Arg(0), Topic: msg.Arg(1), HasTopic: true}, true
	}
	return Topic{Channel: msg.Arg(0)}, true
}

// Names is "NAMES [ <channel> *( "," <channel> ) [ <target> ] ]" (3.2.5).
type Names struct {
	Channels []string
	Target   string
}

func (Names) Name() string { return "NAMES" }

func (c Names) encode() ([]string, string, bool) {
	return appendOptional(nil, joinList(c.Channels), c.Target), "", false
}

func (c Names) detach() Command {
	return Names{Channels: cloneList(c.Channels), Target: strings.Clone(c.Target)}
}

func decodeNames(msg *message.Message) (Command, bool) {
	return Names{Channels: splitList(arg(msg, 0)), Target: arg(msg, 1)}, true
}

// List is "LIST [ <channel> *( "," <channel> ) [ <target> ] ]" (3.2.6).
type List struct {
	Channels []string
	Target   string
}

func (List) Name() string { return "LIST" }

func (c List) encode() ([]string, string, bool) {
	return appendOptional(nil, joinList(c.Channels), c.Target), "", false
}

func (c List) detach() Command {
	return List{Channels: cloneList(c.Channels), Target: strings.Clone(c.Target)}
}

func decodeList(msg *message.Message) (Command, bool) {
	return List{Channels: splitList(arg(msg, 0)), Target: arg(msg, 1)}, true
}

// Invite is "INVITE <nickname> <channel>" (3.2.7).
type Invite struct {
	Nickname string
	Channel  string
}

func (Invite) Name() string { return "INVITE" }

func (c Invite) encode() ([]string, string, bool) {
	return []string{c.Nickname, c.Channel}, "", false
}

func (c Invite) detach() Command {
	return Invite{Nickname: strings.Clone(c.Nickname), Channel: strings.Clone(c.Channel)}
}

func decodeInvite(msg *message.Message) (Command, bool) {
	return Invite{Nickname: msg.Arg(0), Channel: msg.Arg(1)}, true
}

// Kick is "KICK <channel> *( "," <channel> ) <user> *( "," <user> ) [<comment>]" (3.2.8).
type Kick struct {
	Channels []string
	Users    []string
	Comment  string
}

func (Kick) Name() string { return "KICK" }

func (c Kick) encode() ([]string, string, bool) {
	return []string{joinList(c.Channels), joinList(c.Users)}, c.Comment, c.Comment != ""
}

func (c Kick) detach() Command {
	return Kick{Channels: cloneList(c.Channels), Users: cloneList(c.Users), Comment: strings.Clone(c.Comment)}
}

func decodeKick(msg *message.Message) (Command, bool) {
	return Kick{Channels: splitList(msg.Arg(0)), Users: splitList(msg.Arg(1)), Comment: arg(msg, 2)}, true
}
