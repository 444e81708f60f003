// Copyright (c) 2024 ergoclient contributors
// released under the MIT license

package irc

import (
	"github.com/ergochat/ergoclient/irc/command"
	"github.com/ergochat/ergoclient/irc/message"
	"github.com/ergochat/ergoclient/irc/reply"
)

// Event is the classification of an inbound line, or a connection state
// change: CommandEvent, ReplyEvent, Connected or Disconnected.
type Event interface {
	isEvent()
}

// CommandEvent carries a line that decoded as a client command.
type CommandEvent struct {
	Command command.Command
}

// ReplyEvent carries a line that decoded as a numeric reply.
type ReplyEvent struct {
	Reply reply.Reply
}

// Connected is delivered once when Listen starts.
type Connected struct{}

// Disconnected is delivered once when Listen ends. Err is nil after a
// clean end of stream or a local Disconnect.
type Disconnected struct {
	Err error
}

func (CommandEvent) isEvent() {}
func (ReplyEvent) isEvent()   {}
func (Connected) isEvent()    {}
func (Disconnected) isEvent() {}

// Classify decodes msg as a command, then as a numeric reply. It returns
// nil for lines that are neither; those are still delivered to handlers.
func Classify(msg *message.Message) Event {
	if cmd, ok := command.FromMessage(msg); ok {
		return CommandEvent{Command: cmd}
	}
	if r, ok := reply.FromMessage(msg); ok {
		return ReplyEvent{Reply: r}
	}
	return nil
}

// DetachEvent returns an event that owns its strings.
func DetachEvent(ev Event) Event {
	switch ev := ev.(type) {
	case CommandEvent:
		return CommandEvent{Command: command.Detach(ev.Command)}
	case ReplyEvent:
		return ReplyEvent{Reply: ev.Reply.Detach()}
	default:
		return ev
	}
}

// Sender is the outbound half of a client, handed to handlers so they can
// answer without holding a reference to the concrete client type.
type Sender interface {
	Send(cmd command.Command) error
	SendMessage(msg *message.Message) error
	Join(channels []string, keys []string) error
	Msg(target, text string) error
	Register(nick, user, realname, password string) error
}

// Handler receives every inbound line in arrival order. Connected and
// Disconnected are delivered with a nil message; ev is nil for lines that
// don't classify.
type Handler interface {
	HandleEvent(s Sender, msg *message.Message, ev Event)
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(s Sender, msg *message.Message, ev Event)

func (f HandlerFunc) HandleEvent(s Sender, msg *message.Message, ev Event) {
	f(s, msg, ev)
}
