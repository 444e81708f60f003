// Copyright (c) 2024 ergoclient contributors
// released under the MIT license

package main

import (
	"fmt"
	"strings"

	"github.com/ergochat/irc-go/ircfmt"
	"github.com/ergochat/irc-go/ircutils"
	"github.com/okzk/sdnotify"

	"github.com/ergochat/ergoclient/irc"
	"github.com/ergochat/ergoclient/irc/command"
	"github.com/ergochat/ergoclient/irc/isupport"
	"github.com/ergochat/ergoclient/irc/logger"
	"github.com/ergochat/ergoclient/irc/message"
	"github.com/ergochat/ergoclient/irc/reply"
	"github.com/ergochat/ergoclient/irc/utils"
)

const (
	// bytes of user text echoed back, before formatting
	maxEchoLen = 400
)

// echoBot repeats what it is told: in private, and in channels when it is
// addressed by nick. It is driven from a single goroutine.
type echoBot struct {
	nick         string
	channels     []string
	versionReply string
	wrapWidth    int
	logman       *logger.Manager
	registered   bool
	// server capabilities from RPL_ISUPPORT
	isupport *isupport.List
	// notifyReady is called once registration completes
	notifyReady func() error
}

func newEchoBot(config *irc.Config, logman *logger.Manager) *echoBot {
	versionReply := config.Bot.VersionReply
	if versionReply == "" {
		versionReply = irc.Ver
	}
	return &echoBot{
		nick:         config.Identity.Nick,
		channels:     config.Channels,
		versionReply: versionReply,
		wrapWidth:    config.Bot.WrapWidth,
		logman:       logman,
		isupport:     isupport.NewList(),
		notifyReady:  sdnotify.Ready,
	}
}

// serve consumes the command and reply subscriptions until both are closed.
func (b *echoBot) serve(commands, replies *irc.Subscription) {
	commandC, replyC := commands.C, replies.C
	for commandC != nil || replyC != nil {
		select {
		case delivery, ok := <-commandC:
			if !ok {
				commandC = nil
				continue
			}
			b.HandleEvent(delivery.Client, delivery.Message, delivery.Event)
		case delivery, ok := <-replyC:
			if !ok {
				replyC = nil
				continue
			}
			b.HandleEvent(delivery.Client, delivery.Message, delivery.Event)
		}
	}
}

func (b *echoBot) HandleEvent(s irc.Sender, msg *message.Message, ev irc.Event) {
	var err error
	switch ev := ev.(type) {
	case irc.ReplyEvent:
		err = b.handleReply(s, ev.Reply)
	case irc.CommandEvent:
		err = b.handleCommand(s, msg, ev.Command)
	}
	if err != nil {
		b.logman.Warning(logger.TypeBot, "Couldn't respond", err.Error())
	}
}

func (b *echoBot) handleReply(s irc.Sender, r reply.Reply) error {
	switch r.Code {
	case reply.RPL_WELCOME:
		b.registered = true
		b.nick = r.Target
		b.logman.Info(logger.TypeBot, "Registered as", b.nick)
		if b.notifyReady != nil {
			b.notifyReady()
		}
		return s.Join(b.channels, nil)
	case reply.RPL_BOUNCE:
		// modern servers send RPL_ISUPPORT under this numeric
		if err := b.isupport.Apply(r.Params); err != nil {
			b.logman.Debug(logger.TypeBot, "Ignoring ISUPPORT tokens", err.Error())
		}
	case reply.ERR_NICKNAMEINUSE, reply.ERR_NICKCOLLISION:
		if b.registered {
			return nil
		}
		b.nick = nextNick(b.nick, b.isupport.NickLen())
		b.logman.Info(logger.TypeBot, "Nickname in use, trying", b.nick)
		return s.Send(command.Nick{Nickname: b.nick})
	default:
		if r.Code.IsError() {
			b.logman.Warning(logger.TypeBot, r.Code.Name(), strings.Join(r.Params, " "), r.Text)
		}
	}
	return nil
}

func (b *echoBot) handleCommand(s irc.Sender, msg *message.Message, cmd command.Command) error {
	switch cmd := cmd.(type) {
	case command.Privmsg:
		return b.handlePrivmsg(s, msg.Nick(), cmd)
	case command.Nick:
		if b.isMe(msg.Nick()) {
			b.nick = cmd.Nickname
		}
	case command.Kick:
		for i, user := range cmd.Users {
			if b.isMe(user) && i < len(cmd.Channels) {
				b.logman.Info(logger.TypeBot, "Kicked from", cmd.Channels[i], cmd.Comment)
				return s.Join(cmd.Channels[i:i+1], nil)
			}
		}
	case command.Error:
		b.logman.Warning(logger.TypeBot, "Server error", cmd.Message)
	}
	return nil
}

func (b *echoBot) handlePrivmsg(s irc.Sender, from string, privmsg command.Privmsg) error {
	if from == "" || b.isMe(from) {
		return nil
	}

	if tag, args, ok := privmsg.CTCP(); ok {
		switch tag {
		case "VERSION":
			return s.Send(command.CTCPReply(from, "VERSION", b.versionReply))
		case "PING":
			return s.Send(command.CTCPReply(from, "PING", args))
		}
		return nil
	}

	var target, response string
	if b.isupport.IsChannel(privmsg.To) {
		text, addressed := b.addressedText(privmsg.Content)
		if !addressed {
			return nil
		}
		target = privmsg.To
		response = fmt.Sprintf("%s told me: %s", from, bold(text))
	} else {
		target = from
		response = fmt.Sprintf("You wrote: %s", bold(privmsg.Content))
	}
	b.logman.Debug(logger.TypeBot, "Echoing to", target)
	return b.say(s, target, response)
}

// addressedText strips a leading "nick:" (or "nick," or "nick ") from
// content, reporting whether it was there.
func (b *echoBot) addressedText(content string) (text string, addressed bool) {
	if len(content) < len(b.nick) || !b.isMe(content[:len(b.nick)]) {
		return "", false
	}
	rest := content[len(b.nick):]
	if rest != "" && !strings.ContainsAny(rest[:1], ":, ") {
		// a longer nick that starts with ours
		return "", false
	}
	return strings.TrimLeft(rest, ":, "), true
}

// say sends text, pre-wrapped to the configured width if there is one;
// the client splits anything still too long for a line.
func (b *echoBot) say(s irc.Sender, target, text string) error {
	lines := []string{text}
	if b.wrapWidth > 0 {
		lines = utils.WordWrap(text, b.wrapWidth)
	}
	for _, line := range lines {
		if err := s.Msg(target, line); err != nil {
			return err
		}
	}
	return nil
}

// bold strips any formatting from user text, makes it safe to echo and
// wraps it in bold.
func bold(text string) string {
	text = ircutils.SanitizeText(ircfmt.Strip(text), maxEchoLen)
	return ircfmt.Unescape("$b" + ircfmt.Escape(text) + "$b")
}

func (b *echoBot) isMe(nick string) bool {
	return b.isupport.Equal(nick, b.nick)
}

// nextNick appends an underscore to nick, dropping its last character
// when the result would exceed the server's NICKLEN.
func nextNick(nick string, nickLen int) string {
	if len(nick) >= nickLen && nickLen > 1 {
		nick = nick[:nickLen-1]
	}
	return nick + "_"
}
