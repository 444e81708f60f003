// Copyright (c) 2024 ergoclient contributors
// released under the MIT license

package irc

import (
	"crypto/tls"
	"sync"

	"github.com/ergochat/ergoclient/irc/command"
	"github.com/ergochat/ergoclient/irc/message"
)

// SharedClient is a handle to a Client that many goroutines can use at
// once. Copies (and Clone) refer to the same connection; every operation
// serializes on one mutex, except that Listen reads without holding it.
type SharedClient struct {
	state *sharedState
}

type sharedState struct {
	sync.Mutex
	client        *Client
	subscriptions map[*Subscription]struct{}
}

// Delivery is one inbound line, or connection state change, as seen by a
// subscription. Message is nil for Connected and Disconnected.
type Delivery struct {
	Client  SharedClient
	Message *message.Message
	Event   Event
}

// Filter selects the deliveries a subscription receives.
type Filter func(msg *message.Message, ev Event) bool

// AllMessages passes every delivery.
func AllMessages(msg *message.Message, ev Event) bool {
	return true
}

// OnlyEvents passes classified lines and connection state changes.
func OnlyEvents(msg *message.Message, ev Event) bool {
	return ev != nil
}

// OnlyCommands passes lines that decoded as commands.
func OnlyCommands(msg *message.Message, ev Event) bool {
	_, ok := ev.(CommandEvent)
	return ok
}

// OnlyReplies passes numeric replies.
func OnlyReplies(msg *message.Message, ev Event) bool {
	_, ok := ev.(ReplyEvent)
	return ok
}

// Subscription is an independent stream of deliveries. A full buffer
// holds up the receive loop until the subscriber catches up or closes.
type Subscription struct {
	// C is closed by Close, or when the Listen that fed it ends.
	C <-chan Delivery

	c         chan Delivery
	filter    Filter
	done      chan struct{}
	closeOnce sync.Once
	state     *sharedState

	// sendMutex serializes sends on c with closing it
	sendMutex sync.Mutex
	closed    bool
}

// Close unsubscribes and closes C. Deliveries still buffered in C can be
// drained.
func (sub *Subscription) Close() {
	sub.closeOnce.Do(func() {
		// unblocks a send in progress, which holds sendMutex
		close(sub.done)
		sub.state.Lock()
		delete(sub.state.subscriptions, sub)
		sub.state.Unlock()
		sub.closeC()
	})
}

func (sub *Subscription) closeC() {
	sub.sendMutex.Lock()
	defer sub.sendMutex.Unlock()
	if !sub.closed {
		sub.closed = true
		close(sub.c)
	}
}

func (sub *Subscription) send(delivery Delivery) {
	sub.sendMutex.Lock()
	defer sub.sendMutex.Unlock()
	if sub.closed {
		return
	}
	select {
	case sub.c <- delivery:
	case <-sub.done:
	}
}

// Share wraps c for concurrent use. c must not be used directly afterwards.
func (c *Client) Share() SharedClient {
	return SharedClient{
		state: &sharedState{
			client:        c,
			subscriptions: make(map[*Subscription]struct{}),
		},
	}
}

// NewSharedClient is NewClient(opts...).Share().
func NewSharedClient(opts ...Option) SharedClient {
	return NewClient(opts...).Share()
}

// Clone returns another handle to the same client.
func (s SharedClient) Clone() SharedClient {
	return SharedClient{state: s.state}
}

func (s SharedClient) Connect(host string, port int) error {
	s.state.Lock()
	defer s.state.Unlock()
	return s.state.client.Connect(host, port)
}

func (s SharedClient) ConnectTLS(host string, port int, config *tls.Config) error {
	s.state.Lock()
	defer s.state.Unlock()
	return s.state.client.ConnectTLS(host, port, config)
}

func (s SharedClient) ConnectWebSocket(url string, config *tls.Config) error {
	s.state.Lock()
	defer s.state.Unlock()
	return s.state.client.ConnectWebSocket(url, config)
}

func (s SharedClient) Attach(conn IRCConn) error {
	s.state.Lock()
	defer s.state.Unlock()
	return s.state.client.Attach(conn)
}

func (s SharedClient) ConnectServer(config ServerConfig) error {
	s.state.Lock()
	defer s.state.Unlock()
	return s.state.client.ConnectServer(config)
}

func (s SharedClient) IsConnected() bool {
	s.state.Lock()
	defer s.state.Unlock()
	return s.state.client.IsConnected()
}

func (s SharedClient) Disconnect() error {
	s.state.Lock()
	defer s.state.Unlock()
	return s.state.client.Disconnect()
}

func (s SharedClient) Stats() StatsSnapshot {
	// counters are atomic
	return s.state.client.Stats()
}

func (s SharedClient) Send(cmd command.Command) error {
	s.state.Lock()
	defer s.state.Unlock()
	return s.state.client.Send(cmd)
}

func (s SharedClient) SendMessage(msg *message.Message) error {
	s.state.Lock()
	defer s.state.Unlock()
	return s.state.client.SendMessage(msg)
}

// Join holds the lock across all the JOIN lines it sends.
func (s SharedClient) Join(channels []string, keys []string) error {
	s.state.Lock()
	defer s.state.Unlock()
	return s.state.client.Join(channels, keys)
}

// Msg holds the lock across all the lines of a wrapped message.
func (s SharedClient) Msg(target, text string) error {
	s.state.Lock()
	defer s.state.Unlock()
	return s.state.client.Msg(target, text)
}

// Register holds the lock so the registration lines go out together.
func (s SharedClient) Register(nick, user, realname, password string) error {
	s.state.Lock()
	defer s.state.Unlock()
	return s.state.client.Register(nick, user, realname, password)
}

func (s SharedClient) AddHandler(h Handler) {
	s.state.Lock()
	defer s.state.Unlock()
	s.state.client.AddHandler(h)
}

// Subscribe opens a subscription with the given channel buffer.
func (s SharedClient) Subscribe(filter Filter, buffer int) *Subscription {
	if filter == nil {
		filter = AllMessages
	}
	c := make(chan Delivery, buffer)
	sub := &Subscription{
		C:      c,
		c:      c,
		filter: filter,
		done:   make(chan struct{}),
		state:  s.state,
	}
	s.state.Lock()
	s.state.subscriptions[sub] = struct{}{}
	s.state.Unlock()
	return sub
}

func (s SharedClient) Messages(buffer int) *Subscription {
	return s.Subscribe(AllMessages, buffer)
}

func (s SharedClient) Events(buffer int) *Subscription {
	return s.Subscribe(OnlyEvents, buffer)
}

func (s SharedClient) Commands(buffer int) *Subscription {
	return s.Subscribe(OnlyCommands, buffer)
}

func (s SharedClient) Replies(buffer int) *Subscription {
	return s.Subscribe(OnlyReplies, buffer)
}

// Listen is Client.Listen for shared handles: handlers receive this handle
// as their Sender, and every delivery is also fanned out to the open
// subscriptions, which are closed when Listen returns.
func (s SharedClient) Listen(handlers ...Handler) error {
	st := s.state
	st.Lock()
	c := st.client
	if c.conn == nil {
		st.Unlock()
		return ErrNotConnected
	}
	if c.listening {
		st.Unlock()
		return ErrAlreadyListening
	}
	c.listening = true
	conn := c.conn
	reader := conn.NewLineReader()
	all := c.allHandlers(handlers)
	st.Unlock()

	deliver := func(msg *message.Message, ev Event) {
		for _, h := range all {
			h.HandleEvent(s, msg, ev)
		}
		s.broadcast(msg, ev)
	}

	deliver(nil, Connected{})
	err := c.receive(reader, s.SendMessage, deliver)

	st.Lock()
	err = c.finish(conn, err)
	c.listening = false
	st.Unlock()

	deliver(nil, Disconnected{Err: err})
	s.closeSubscriptions()
	return err
}

func (s SharedClient) broadcast(msg *message.Message, ev Event) {
	st := s.state
	st.Lock()
	subs := make([]*Subscription, 0, len(st.subscriptions))
	for sub := range st.subscriptions {
		subs = append(subs, sub)
	}
	st.Unlock()

	delivery := Delivery{Client: s, Message: msg, Event: ev}
	for _, sub := range subs {
		if !sub.filter(msg, ev) {
			continue
		}
		sub.send(delivery)
	}
}

func (s SharedClient) closeSubscriptions() {
	st := s.state
	st.Lock()
	defer st.Unlock()
	for sub := range st.subscriptions {
		delete(st.subscriptions, sub)
		sub.closeC()
	}
}
