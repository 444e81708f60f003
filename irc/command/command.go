// Copyright (c) 2024 ergoclient contributors
// released under the MIT license

// Package command maps the RFC 2812 client commands onto typed values and
// back onto messages.
package command

import (
	"errors"
	"strings"

	"github.com/ergochat/ergoclient/irc/message"
)

// Command is one of the RFC 2812 client commands (Pass, Nick, ..., Ison).
// The set is closed: new commands are added to the table in this package.
type Command interface {
	// Name returns the command word as sent on the wire.
	Name() string
	// encode returns the middle parameters in RFC order and the free-text
	// field, if the command has one.
	encode() (params []string, trailing string, hasTrailing bool)
	detach() Command
}

var (
	// ErrMissingParam is returned by ToMessage when an optional field is
	// set but an earlier one it depends on positionally is empty.
	ErrMissingParam = errors.New("Optional parameter set without the parameters before it")
)

type entry struct {
	minParams int
	decode    func(msg *message.Message) (Command, bool)
}

// commands holds the decoder for every command word we understand.
var commands map[string]entry

func init() {
	commands = map[string]entry{
		"PASS":     {minParams: 1, decode: decodePass},
		"NICK":     {minParams: 1, decode: decodeNick},
		"USER":     {minParams: 4, decode: decodeUser},
		"OPER":     {minParams: 2, decode: decodeOper},
		"MODE":     {minParams: 1, decode: decodeMode},
		"SERVICE":  {minParams: 6, decode: decodeService},
		"QUIT":     {minParams: 0, decode: decodeQuit},
		"SQUIT":    {minParams: 2, decode: decodeSquit},
		"JOIN":     {minParams: 1, decode: decodeJoin},
		"PART":     {minParams: 1, decode: decodePart},
		"TOPIC":    {minParams: 1, decode: decodeTopic},
		"NAMES":    {minParams: 0, decode: decodeNames},
		"LIST":     {minParams: 0, decode: decodeList},
		"INVITE":   {minParams: 2, decode: decodeInvite},
		"KICK":     {minParams: 2, decode: decodeKick},
		"PRIVMSG":  {minParams: 2, decode: decodePrivmsg},
		"NOTICE":   {minParams: 2, decode: decodeNotice},
		"MOTD":     {minParams: 0, decode: decodeMotd},
		"LUSERS":   {minParams: 0, decode: decodeLusers},
		"VERSION":  {minParams: 0, decode: decodeVersion},
		"STATS":    {minParams: 0, decode: decodeStats},
		"LINKS":    {minParams: 0, decode: decodeLinks},
		"TIME":     {minParams: 0, decode: decodeTime},
		"CONNECT":  {minParams: 2, decode: decodeConnect},
		"TRACE":    {minParams: 0, decode: decodeTrace},
		"ADMIN":    {minParams: 0, decode: decodeAdmin},
		"INFO":     {minParams: 0, decode: decodeInfo},
		"SERVLIST": {minParams: 0, decode: decodeServlist},
		"SQUERY":   {minParams: 2, decode: decodeSquery},
		"WHO":      {minParams: 0, decode: decodeWho},
		"WHOIS":    {minParams: 1, decode: decodeWhois},
		"WHOWAS":   {minParams: 1, decode: decodeWhowas},
		"KILL":     {minParams: 2, decode: decodeKill},
		"PING":     {minParams: 1, decode: decodePing},
		"PONG":     {minParams: 1, decode: decodePong},
		"ERROR":    {minParams: 1, decode: decodeError},
		"AWAY":     {minParams: 0, decode: decodeAway},
		"REHASH":   {minParams: 0, decode: decodeRehash},
		"DIE":      {minParams: 0, decode: decodeDie},
		"RESTART":  {minParams: 0, decode: decodeRestart},
		"SUMMON":   {minParams: 1, decode: decodeSummon},
		"USERS":    {minParams: 0, decode: decodeUsers},
		"WALLOPS":  {minParams: 1, decode: decodeWallops},
		"USERHOST": {minParams: 1, decode: decodeUserhost},
		"ISON":     {minParams: 1, decode: decodeIson},
	}
}

// Known reports whether name is a command word in the table.
func Known(name string) bool {
	_, ok := commands[strings.ToUpper(name)]
	return ok
}

// FromMessage decodes msg into a typed command. It returns false when the
// command word is unknown or the arguments don't fit the command's shape;
// it never returns a partially filled command. Strings in the result share
// msg's storage (see Detach).
func FromMessage(msg *message.Message) (Command, bool) {
	e, ok := commands[strings.ToUpper(msg.Command())]
	if !ok {
		return nil, false
	}
	if msg.NumArgs() < e.minParams {
		return nil, false
	}
	return e.decode(msg)
}

// ToMessage formats cmd without a prefix. If the last middle parameter
// can't be written as one (it is empty, holds a space or starts with ':'),
// it is moved to the trailing position. Values that still can't be
// serialized fail with the message package's errors.
func ToMessage(cmd Command) (message.Message, error) {
	return ToMessageWithPrefix("", cmd)
}

// ToMessageWithPrefix is ToMessage with a sender prefix, for relaying or
// for tests standing in for a server.
func ToMessageWithPrefix(prefix string, cmd Command) (message.Message, error) {
	params, trailing, hasTrailing := cmd.encode()
	for i := 0; i < len(params)-1; i++ {
		if params[i] == "" && params[i+1] != "" {
			return message.Message{}, ErrMissingParam
		}
	}
	if !hasTrailing && 0 < len(params) && requiresTrailing(params[len(params)-1]) {
		trailing, hasTrailing = params[len(params)-1], true
		params = params[:len(params)-1]
	}
	return message.Format(message.Parts{
		Prefix:      prefix,
		Command:     cmd.Name(),
		Params:      params,
		Trailing:    trailing,
		HasTrailing: hasTrailing,
	})
}

// Detach returns a copy of cmd that owns all of its strings, so it no
// longer pins the line it was decoded from.
func Detach(cmd Command) Command {
	if cmd == nil {
		return nil
	}
	return cmd.detach()
}

func requiresTrailing(param string) bool {
	return len(param) == 0 || strings.IndexByte(param, ' ') != -1 || param[0] == ':'
}

// splitList splits a comma-separated list; the empty string is the empty list.
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

func joinList(list []string) string {
	return strings.Join(list, ",")
}

// arg returns the i'th positional argument, or "" if there are fewer.
func arg(msg *message.Message, i int) string {
	if i < msg.NumArgs() {
		return msg.Arg(i)
	}
	return ""
}

func cloneList(list []string) []string {
	if list == nil {
		return nil
	}
	result := make([]string, len(list))
	for i, s := range list {
		result[i] = strings.Clone(s)
	}
	return result
}

// appendOptional appends values in order, up to the last non-empty one.
// An empty value before a set one is kept as a gap, which ToMessage
// rejects rather than shifting the later value into its position.
func appendOptional(params []string, values ...string) []string {
	last := len(values) - 1
	for last >= 0 && values[last] == "" {
		last--
	}
	return append(params, values[:last+1]...)
}

// isChannel reports whether target carries one of the RFC 2812 channel prefixes.
func isChannel(target string) bool {
	return target != "" && strings.IndexByte("#&+!", target[0]) != -1
}
