// Copyright (c) 2024 ergoclient contributors
// released under the MIT license

package irc

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/ergochat/ergoclient/irc/command"
	"github.com/ergochat/ergoclient/irc/logger"
	"github.com/ergochat/ergoclient/irc/message"
	"github.com/ergochat/ergoclient/irc/text"
	"github.com/ergochat/ergoclient/irc/utils"
)

const (
	DefaultDialTimeout = 30 * time.Second
	// WebSocketSubprotocol is offered when dialing IRC-over-WebSocket.
	WebSocketSubprotocol = "text.ircv3.net"
)

var (
	_ Sender = (*Client)(nil)
	_ Sender = SharedClient{}
)

type clientOptions struct {
	logger      *logger.Manager
	maxLineLen  int
	maxReadQ    int
	decoder     *text.Decoder
	dialTimeout time.Duration
}

// Option configures a Client.
type Option func(*clientOptions)

// WithLogger sets the log manager; by default nothing is logged.
func WithLogger(l *logger.Manager) Option {
	return func(o *clientOptions) {
		o.logger = l
	}
}

// WithMaxLineLen sets the outbound line limit, CRLF included.
func WithMaxLineLen(n int) Option {
	return func(o *clientOptions) {
		o.maxLineLen = n
	}
}

// WithMaxReadQ bounds how much of an unterminated inbound line is buffered.
func WithMaxReadQ(n int) Option {
	return func(o *clientOptions) {
		o.maxReadQ = n
	}
}

// WithDecoder sets the decoder applied to inbound lines that aren't UTF-8.
func WithDecoder(d *text.Decoder) Option {
	return func(o *clientOptions) {
		o.decoder = d
	}
}

// WithDialTimeout bounds dialing and the TLS or WebSocket handshake.
func WithDialTimeout(d time.Duration) Option {
	return func(o *clientOptions) {
		o.dialTimeout = d
	}
}

// Client is a single IRC connection and its handlers. A Client is not
// safe for concurrent use; see Share for a handle that is.
type Client struct {
	opts      clientOptions
	conn      IRCConn
	handlers  []Handler
	listening bool
	stats     Stats
}

// NewClient returns a disconnected client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		opts: clientOptions{
			maxLineLen:  message.MaxLineLen,
			maxReadQ:    DefaultMaxReadQ,
			dialTimeout: DefaultDialTimeout,
		},
	}
	for _, opt := range opts {
		opt(&c.opts)
	}
	if c.opts.logger == nil {
		c.opts.logger = new(logger.Manager)
	}
	if c.opts.decoder == nil {
		// the default label always resolves
		c.opts.decoder, _ = text.NewDecoder("")
	}
	return c
}

// Connect opens a plaintext connection to host:port.
func (c *Client) Connect(host string, port int) error {
	if c.conn != nil {
		return ErrAlreadyConnected
	}
	conn, err := c.dial(host, port)
	if err != nil {
		return err
	}
	c.attach(NewIRCStreamConn(conn, c.opts.maxReadQ), "tcp")
	return nil
}

// ConnectTLS opens a TLS connection to host:port. A nil config verifies
// the server against the system roots; an empty ServerName defaults to host.
func (c *Client) ConnectTLS(host string, port int, config *tls.Config) error {
	if c.conn != nil {
		return ErrAlreadyConnected
	}
	raw, err := c.dial(host, port)
	if err != nil {
		return err
	}
	tlsConn := tls.Client(raw, tlsConfigFor(host, config))
	ctx, cancel := context.WithTimeout(context.Background(), c.opts.dialTimeout)
	defer cancel()
	if err := tlsConn.HandshakeContext(ctx); err != nil {
		raw.Close()
		return &TLSError{Err: err}
	}
	c.attach(NewIRCStreamConn(tlsConn, c.opts.maxReadQ), "tls")
	return nil
}

// ConnectWebSocket dials an IRC-over-WebSocket endpoint (ws:// or wss://).
func (c *Client) ConnectWebSocket(url string, config *tls.Config) error {
	if c.conn != nil {
		return ErrAlreadyConnected
	}
	dialer := websocket.Dialer{
		Proxy:            http.ProxyFromEnvironment,
		HandshakeTimeout: c.opts.dialTimeout,
		TLSClientConfig:  config,
		Subprotocols:     []string{WebSocketSubprotocol},
	}
	conn, _, err := dialer.Dial(url, nil)
	if err != nil {
		if isTLSFailure(err) {
			return &TLSError{Err: err}
		}
		return &IOError{Op: "dial", Err: err}
	}
	c.attach(NewIRCWSConn(conn), "websocket")
	return nil
}

// Attach adopts an already established transport.
func (c *Client) Attach(conn IRCConn) error {
	if c.conn != nil {
		return ErrAlreadyConnected
	}
	c.attach(conn, "attached")
	return nil
}

// ConnectServer connects as described by a server config block.
func (c *Client) ConnectServer(config ServerConfig) error {
	if c.conn != nil {
		return ErrAlreadyConnected
	}
	var tlsConfig *tls.Config
	if config.TLS.Enabled || strings.HasPrefix(config.WebSocket, "wss:") {
		var err error
		tlsConfig, err = config.TLSConfig()
		if err != nil {
			return err
		}
	}
	switch {
	case config.WebSocket != "":
		return c.ConnectWebSocket(config.WebSocket, tlsConfig)
	case config.TLS.Enabled:
		return c.ConnectTLS(config.Host, config.Port, tlsConfig)
	default:
		return c.Connect(config.Host, config.Port)
	}
}

func (c *Client) dial(host string, port int) (net.Conn, error) {
	addr := net.JoinHostPort(host, strconv.Itoa(port))
	conn, err := net.DialTimeout("tcp", addr, c.opts.dialTimeout)
	if err != nil {
		return nil, &IOError{Op: "dial", Err: err}
	}
	return conn, nil
}

func (c *Client) attach(conn IRCConn, kind string) {
	c.conn = conn
	c.opts.logger.Info(logger.TypeConnect, "Connected", kind, addrString(conn.RemoteAddr()))
}

// IsConnected reports whether the client holds a transport.
func (c *Client) IsConnected() bool {
	return c.conn != nil
}

// Disconnect closes the transport. A running Listen returns nil.
func (c *Client) Disconnect() error {
	if c.conn == nil {
		return ErrNotConnected
	}
	if err := c.closeConn(); err != nil {
		return &IOError{Op: "close", Err: err}
	}
	return nil
}

func (c *Client) closeConn() error {
	conn := c.conn
	c.conn = nil
	err := conn.Close()
	c.opts.logger.Info(logger.TypeConnect, "Disconnected", addrString(conn.RemoteAddr()), c.stats.Snapshot().String())
	return err
}

// Stats returns the traffic counters.
func (c *Client) Stats() StatsSnapshot {
	return c.stats.Snapshot()
}

// Send formats and writes one command.
func (c *Client) Send(cmd command.Command) error {
	msg, err := command.ToMessage(cmd)
	if err != nil {
		return err
	}
	return c.SendMessage(&msg)
}

// SendMessage writes one message. Lines over the configured maximum are
// rejected with ErrLineTooLong and nothing is written.
func (c *Client) SendMessage(msg *message.Message) error {
	if c.conn == nil {
		return ErrNotConnected
	}
	line := msg.Line()
	if c.opts.maxLineLen < len(line) {
		c.opts.logger.Warning(logger.TypeRawOutput, "Refusing to send oversized line", msg.Command(), strconv.Itoa(len(line)))
		return ErrLineTooLong
	}
	if c.opts.logger.IsLoggingRawIO() {
		c.opts.logger.Debug(logger.TypeRawOutput, msg.String())
	}
	if err := c.conn.Write(line); err != nil {
		if err == ErrInvalidUTF8 {
			c.opts.logger.Warning(logger.TypeRawOutput, "Refusing to send non-UTF-8 line", msg.Command())
			return err
		}
		return &IOError{Op: "write", Err: err}
	}
	c.stats.addOut(len(line))
	return nil
}

// Join joins channels, keys pairing with channels by position. A long
// keyless list is split over as many JOIN lines as needed.
func (c *Client) Join(channels []string, keys []string) error {
	for _, cmd := range joinCommands(channels, keys, c.opts.maxLineLen) {
		if err := c.Send(cmd); err != nil {
			return err
		}
	}
	return nil
}

// Msg sends a PRIVMSG, wrapping text that doesn't fit on one line or
// that contains line breaks.
func (c *Client) Msg(target, text string) error {
	for _, line := range splitMessage(target, text, c.opts.maxLineLen) {
		if err := c.Send(command.Privmsg{To: target, Content: line}); err != nil {
			return err
		}
	}
	return nil
}

// Register sends PASS (if password is set), NICK and USER, in that order,
// stopping at the first failure.
func (c *Client) Register(nick, user, realname, password string) error {
	for _, cmd := range registrationCommands(nick, user, realname, password) {
		if err := c.Send(cmd); err != nil {
			return err
		}
	}
	return nil
}

// AddHandler registers a handler for every subsequent Listen.
func (c *Client) AddHandler(h Handler) {
	c.handlers = append(c.handlers, h)
}

// Listen runs the receive loop until the connection ends, delivering
// Connected, then every inbound line in order, then Disconnected to the
// registered handlers followed by handlers. PING is answered before the
// handlers see it. It returns nil on a clean end of stream or after
// Disconnect, and an *IOError otherwise.
func (c *Client) Listen(handlers ...Handler) error {
	if c.conn == nil {
		return ErrNotConnected
	}
	if c.listening {
		return ErrAlreadyListening
	}
	c.listening = true
	defer func() {
		c.listening = false
	}()

	conn := c.conn
	all := c.allHandlers(handlers)
	deliver := func(msg *message.Message, ev Event) {
		for _, h := range all {
			h.HandleEvent(c, msg, ev)
		}
	}

	deliver(nil, Connected{})
	err := c.receive(conn.NewLineReader(), c.SendMessage, deliver)
	err = c.finish(conn, err)
	deliver(nil, Disconnected{Err: err})
	return err
}

func (c *Client) allHandlers(extra []Handler) []Handler {
	result := make([]Handler, 0, len(c.handlers)+len(extra))
	result = append(result, c.handlers...)
	return append(result, extra...)
}

// receive reads and dispatches lines until the reader fails.
func (c *Client) receive(reader LineReader, send func(*message.Message) error, deliver func(*message.Message, Event)) error {
	log := c.opts.logger
	for {
		line, err := reader.ReadLine()
		if err != nil {
			return err
		}
		c.stats.addIn(len(line))
		decoded := c.opts.decoder.Decode(line)
		if log.IsLoggingRawIO() {
			log.Debug(logger.TypeRawInput, decoded)
		}

		msg, err := message.Parse(decoded)
		if err != nil {
			log.Debug(logger.TypeListen, "Skipping unparsable line", err.Error())
			continue
		}

		ev := Classify(&msg)
		if cmdEv, ok := ev.(CommandEvent); ok {
			if ping, ok := cmdEv.Command.(command.Ping); ok {
				pong, err := command.ToMessage(command.Pong{Server1: ping.Server1, Server2: ping.Server2})
				if err == nil {
					err = send(&pong)
				}
				if err != nil {
					return err
				}
			}
		} else if ev == nil {
			log.Debug(logger.TypeDispatch, "Unrecognized command", msg.Command())
		}
		deliver(&msg, ev)
	}
}

// finish tears down conn after the receive loop and decides what Listen
// reports.
func (c *Client) finish(conn IRCConn, err error) error {
	if c.conn != conn {
		// closed (and maybe replaced) locally while listening
		return nil
	}
	c.closeConn()
	if isCleanClose(err) {
		return nil
	}
	c.opts.logger.Warning(logger.TypeListen, "Connection lost", err.Error())
	var ioErr *IOError
	if errors.As(err, &ioErr) {
		return err
	}
	return &IOError{Op: "read", Err: err}
}

func isCleanClose(err error) bool {
	return err == nil || errors.Is(err, io.EOF) ||
		websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway)
}

func isTLSFailure(err error) bool {
	var verifyErr *tls.CertificateVerificationError
	var headerErr tls.RecordHeaderError
	var authorityErr x509.UnknownAuthorityError
	var hostnameErr x509.HostnameError
	return errors.As(err, &verifyErr) || errors.As(err, &headerErr) ||
		errors.As(err, &authorityErr) || errors.As(err, &hostnameErr)
}

func tlsConfigFor(host string, config *tls.Config) *tls.Config {
	if config == nil {
		config = new(tls.Config)
	} else {
		config = config.Clone()
	}
	if config.ServerName == "" {
		config.ServerName = host
	}
	return config
}

func joinCommands(channels, keys []string, maxLineLen int) []command.Command {
	if len(channels) == 0 {
		return nil
	}
	if len(keys) != 0 || len(channels) == 1 {
		return []command.Command{command.Join{Channels: channels, Keys: keys}}
	}
	lines := utils.BuildTokenLines(maxLineLen-len("JOIN \r\n"), channels, ",")
	result := make([]command.Command, len(lines))
	for i, line := range lines {
		result[i] = command.Join{Channels: strings.Split(line, ",")}
	}
	return result
}

func splitMessage(target, text string, maxLineLen int) []string {
	width := maxLineLen - len("PRIVMSG  :\r\n") - len(target)
	if len(text) <= width && strings.IndexAny(text, "\r\n") == -1 {
		return []string{text}
	}
	// leave room for a multi-byte rune at the wrap point
	width -= utf8Slack
	if width < 1 {
		return []string{text}
	}
	var result []string
	for _, line := range utils.WordWrap(text, width) {
		if line != "" {
			result = append(result, line)
		}
	}
	return result
}

const utf8Slack = 3

func registrationCommands(nick, user, realname, password string) []command.Command {
	var result []command.Command
	if password != "" {
		result = append(result, command.Pass{Password: password})
	}
	return append(result,
		command.Nick{Nickname: nick},
		command.User{User: user, Mode: "0", Unused: "*", Realname: realname},
	)
}

func addrString(addr net.Addr) string {
	if addr == nil {
		return "<unknown>"
	}
	return addr.String()
}
