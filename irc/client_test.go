// Copyright (c) 2024 ergoclient contributors
// released under the MIT license

package irc

import (
	"bufio"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net"
	"strings"
	"sync"
	"testing"

	"github.com/go-test/deep"
	"github.com/gorilla/websocket"

	"github.com/ergochat/ergoclient/irc/command"
	"github.com/ergochat/ergoclient/irc/message"
	"github.com/ergochat/ergoclient/irc/mkcerts"
	"github.com/ergochat/ergoclient/irc/reply"
)

// scriptedConn is an IRCConn that yields a fixed list of inbound lines,
// then either ends with err (io.EOF if nil), or blocks until closed.
// Writes and handler calls are recorded into one ordered log.
type scriptedConn struct {
	sync.Mutex
	lines     []string
	err       error
	writeErr  error
	hold      chan struct{}
	closeOnce sync.Once
	closed    bool
	log       []string
}

func newScriptedConn(lines ...string) *scriptedConn {
	return &scriptedConn{lines: lines}
}

// newHeldConn returns a conn whose reader blocks once lines run out.
func newHeldConn(lines ...string) *scriptedConn {
	return &scriptedConn{lines: lines, hold: make(chan struct{})}
}

func (sc *scriptedConn) record(entry string) {
	sc.Lock()
	sc.log = append(sc.log, entry)
	sc.Unlock()
}

func (sc *scriptedConn) entries() []string {
	sc.Lock()
	defer sc.Unlock()
	return append([]string(nil), sc.log...)
}

// writes returns the lines written so far, without CRLF.
func (sc *scriptedConn) writes() (result []string) {
	for _, entry := range sc.entries() {
		if strings.HasPrefix(entry, "write ") {
			result = append(result, strings.TrimPrefix(entry, "write "))
		}
	}
	return
}

func (sc *scriptedConn) Write(buf []byte) error {
	sc.Lock()
	defer sc.Unlock()
	if sc.closed {
		return net.ErrClosed
	}
	if sc.writeErr != nil {
		return sc.writeErr
	}
	if !strings.HasSuffix(string(buf), "\r\n") {
		return fmt.Errorf("unterminated line %q", buf)
	}
	sc.log = append(sc.log, "write "+strings.TrimSuffix(string(buf), "\r\n"))
	return nil
}

func (sc *scriptedConn) WriteBuffers(buffers [][]byte) error {
	for _, buf := range buffers {
		if err := sc.Write(buf); err != nil {
			return err
		}
	}
	return nil
}

func (sc *scriptedConn) NewLineReader() LineReader {
	return scriptedReader{sc}
}

func (sc *scriptedConn) RemoteAddr() net.Addr {
	return nil
}

func (sc *scriptedConn) Close() error {
	sc.closeOnce.Do(func() {
		sc.Lock()
		sc.closed = true
		sc.Unlock()
		if sc.hold != nil {
			close(sc.hold)
		}
	})
	return nil
}

func (sc *scriptedConn) isClosed() bool {
	sc.Lock()
	defer sc.Unlock()
	return sc.closed
}

type scriptedReader struct {
	sc *scriptedConn
}

func (r scriptedReader) ReadLine() ([]byte, error) {
	sc := r.sc
	sc.Lock()
	if len(sc.lines) != 0 {
		line := sc.lines[0]
		sc.lines = sc.lines[1:]
		sc.Unlock()
		return []byte(line), nil
	}
	hold := sc.hold
	err := sc.err
	sc.Unlock()
	if hold != nil {
		<-hold
		return nil, net.ErrClosed
	}
	if err == nil {
		err = io.EOF
	}
	return nil, err
}

// recorder is a Handler that keeps everything it is given.
type recorder struct {
	sync.Mutex
	conn   *scriptedConn
	events []Event
	lines  []string
}

func (r *recorder) HandleEvent(s Sender, msg *message.Message, ev Event) {
	r.Lock()
	defer r.Unlock()
	r.events = append(r.events, DetachEvent(ev))
	if msg != nil {
		r.lines = append(r.lines, msg.String())
		if r.conn != nil {
			r.conn.record("handle " + msg.Command())
		}
	}
}

func attachScripted(t *testing.T, sc *scriptedConn, opts ...Option) *Client {
	c := NewClient(opts...)
	if err := c.Attach(sc); err != nil {
		t.Fatal(err)
	}
	return c
}

func TestNotConnected(t *testing.T) {
	c := NewClient()
	if c.IsConnected() {
		t.Error("new client claims to be connected")
	}
	if err := c.Send(command.Nick{Nickname: "alice"}); err != ErrNotConnected {
		t.Errorf("Send: expected ErrNotConnected, got %v", err)
	}
	if err := c.Register("alice", "alice", "Alice", ""); err != ErrNotConnected {
		t.Errorf("Register: expected ErrNotConnected, got %v", err)
	}
	if err := c.Listen(); err != ErrNotConnected {
		t.Errorf("Listen: expected ErrNotConnected, got %v", err)
	}
	if err := c.Disconnect(); err != ErrNotConnected {
		t.Errorf("Disconnect: expected ErrNotConnected, got %v", err)
	}
}

func TestAlreadyConnected(t *testing.T) {
	first := newScriptedConn()
	c := attachScripted(t, first)

	second := newScriptedConn()
	if err := c.Attach(second); err != ErrAlreadyConnected {
		t.Errorf("expected ErrAlreadyConnected, got %v", err)
	}
	if err := c.Connect("127.0.0.1", 1); err != ErrAlreadyConnected {
		t.Errorf("expected ErrAlreadyConnected, got %v", err)
	}
	if err := c.ConnectTLS("127.0.0.1", 1, nil); err != ErrAlreadyConnected {
		t.Errorf("expected ErrAlreadyConnected, got %v", err)
	}

	// the first connection is untouched
	if first.isClosed() {
		t.Error("first connection was closed")
	}
	if err := c.Send(command.Nick{Nickname: "alice"}); err != nil {
		t.Fatal(err)
	}
	if diff := deep.Equal(first.writes(), []string{"NICK alice"}); diff != nil {
		t.Error(diff)
	}
	if len(second.writes()) != 0 {
		t.Error("second connection was written to")
	}
}

func TestRegister(t *testing.T) {
	sc := newScriptedConn()
	c := attachScripted(t, sc)
	if err := c.Register("alice", "al", "Alice Liddell", "hunter2"); err != nil {
		t.Fatal(err)
	}
	expected := []string{
		"PASS hunter2",
		"NICK alice",
		"USER al 0 * :Alice Liddell",
	}
	if diff := deep.Equal(sc.writes(), expected); diff != nil {
		t.Error(diff)
	}

	sc = newScriptedConn()
	c = attachScripted(t, sc)
	if err := c.Register("bob", "bob", "Bob", ""); err != nil {
		t.Fatal(err)
	}
	if diff := deep.Equal(sc.writes(), []string{"NICK bob", "USER bob 0 * :Bob"}); diff != nil {
		t.Error(diff)
	}
}

func TestRegisterStopsAtFirstFailure(t *testing.T) {
	sc := newScriptedConn()
	sc.writeErr = errors.New("broken pipe")
	c := attachScripted(t, sc)
	err := c.Register("alice", "alice", "Alice", "hunter2")
	var ioErr *IOError
	if !errors.As(err, &ioErr) || ioErr.Op != "write" {
		t.Fatalf("expected a write IOError, got %v", err)
	}
	if !errors.Is(err, sc.writeErr) {
		t.Errorf("IOError doesn't wrap the cause: %v", err)
	}
	if len(sc.writes()) != 0 {
		t.Errorf("unexpected writes %v", sc.writes())
	}
}

func TestJoinBeforeRegistration(t *testing.T) {
	// the client doesn't track registration; JOIN goes out as is
	sc := newScriptedConn()
	c := attachScripted(t, sc)
	if err := c.Join([]string{"#a", "#b"}, []string{"key"}); err != nil {
		t.Fatal(err)
	}
	if err := c.Join(nil, nil); err != nil {
		t.Fatal(err)
	}
	if diff := deep.Equal(sc.writes(), []string{"JOIN #a,#b key"}); diff != nil {
		t.Error(diff)
	}
}

func TestJoinSplitsLongLists(t *testing.T) {
	sc := newScriptedConn()
	c := attachScripted(t, sc)
	var channels []string
	for i := 0; i < 100; i++ {
		channels = append(channels, fmt.Sprintf("#channel-number-%d", i))
	}
	if err := c.Join(channels, nil); err != nil {
		t.Fatal(err)
	}
	writes := sc.writes()
	if len(writes) < 2 {
		t.Fatalf("expected the list to be split, got %d lines", len(writes))
	}
	var joined []string
	for _, line := range writes {
		if len(line)+2 > message.MaxLineLen {
			t.Errorf("line too long (%d): %s", len(line), line)
		}
		msg, err := message.Parse(line)
		if err != nil {
			t.Fatal(err)
		}
		cmd, ok := command.FromMessage(&msg)
		if !ok {
			t.Fatalf("couldn't decode %s", line)
		}
		joined = append(joined, cmd.(command.Join).Channels...)
	}
	if diff := deep.Equal(joined, channels); diff != nil {
		t.Error(diff)
	}
}

func TestMsgWrapping(t *testing.T) {
	sc := newScriptedConn()
	c := attachScripted(t, sc)

	if err := c.Msg("#chan", "short"); err != nil {
		t.Fatal(err)
	}
	if err := c.Msg("#chan", "first\r\nsecond"); err != nil {
		t.Fatal(err)
	}
	text := strings.Repeat("lorem ipsum dolor ", 80)
	if err := c.Msg("#chan", text); err != nil {
		t.Fatal(err)
	}

	writes := sc.writes()
	if diff := deep.Equal(writes[:3], []string{"PRIVMSG #chan :short", "PRIVMSG #chan :first", "PRIVMSG #chan :second"}); diff != nil {
		t.Error(diff)
	}
	var content strings.Builder
	for _, line := range writes[3:] {
		if len(line)+2 > message.MaxLineLen {
			t.Errorf("line too long (%d)", len(line))
		}
		content.WriteString(strings.TrimPrefix(line, "PRIVMSG #chan :"))
	}
	if len(writes[3:]) < 2 {
		t.Errorf("expected long text to wrap, got %d lines", len(writes[3:]))
	}
	if content.String() != text {
		t.Error("wrapped text doesn't reassemble to the original")
	}
}

func TestLineTooLong(t *testing.T) {
	sc := newScriptedConn()
	c := attachScripted(t, sc)

	long := strings.Repeat("a", 600)
	msg, err := message.Format(message.Parts{Command: "PRIVMSG", Params: []string{"#chan"}, Trailing: long, HasTrailing: true})
	if err != nil {
		t.Fatal(err)
	}
	if err := c.SendMessage(&msg); err != ErrLineTooLong {
		t.Errorf("expected ErrLineTooLong, got %v", err)
	}
	if len(sc.writes()) != 0 {
		t.Errorf("oversized line was written: %v", sc.writes())
	}

	// exactly 512 bytes including CRLF is allowed
	exact := strings.Repeat("a", message.MaxLineLen-len("PRIVMSG #chan :\r\n"))
	if err := c.Send(command.Privmsg{To: "#chan", Content: exact}); err != nil {
		t.Errorf("maximum length line rejected: %v", err)
	}

	sc = newScriptedConn()
	c = attachScripted(t, sc, WithMaxLineLen(1024))
	if err := c.SendMessage(&msg); err != nil {
		t.Errorf("line within a raised limit rejected: %v", err)
	}
}

func TestListenAnswersPingBeforeHandlers(t *testing.T) {
	sc := newScriptedConn(":irc.example.net PING :abc123", "PING one two")
	c := attachScripted(t, sc)
	r := &recorder{conn: sc}
	if err := c.Listen(r); err != nil {
		t.Fatal(err)
	}
	expected := []string{
		"write PONG :abc123",
		"handle PING",
		"write PONG one :two",
		"handle PING",
	}
	if diff := deep.Equal(sc.entries(), expected); diff != nil {
		t.Error(diff)
	}
}

func TestListenDispatch(t *testing.T) {
	sc := newScriptedConn(
		":irc.example.net 001 alice :Welcome to the network",
		":bob!b@example.com PRIVMSG #chan :hello",
		":onlyaprefix",
		"FROBNICATE x",
	)
	c := attachScripted(t, sc)
	var order []string
	c.AddHandler(HandlerFunc(func(s Sender, msg *message.Message, ev Event) {
		order = append(order, "registered")
	}))
	r := &recorder{}
	err := c.Listen(r, HandlerFunc(func(s Sender, msg *message.Message, ev Event) {
		order = append(order, "extra")
	}))
	if err != nil {
		t.Fatal(err)
	}
	if c.IsConnected() {
		t.Error("client still connected after end of stream")
	}
	if !sc.isClosed() {
		t.Error("transport wasn't closed")
	}

	welcome := reply.Reply{Code: reply.RPL_WELCOME, Target: "alice", Text: "Welcome to the network", HasText: true}
	expected := []Event{
		Connected{},
		ReplyEvent{Reply: welcome},
		CommandEvent{Command: command.Privmsg{To: "#chan", Content: "hello"}},
		nil,
		Disconnected{},
	}
	if diff := deep.Equal(r.events, expected); diff != nil {
		t.Error(diff)
	}
	// the unparsable line is skipped
	expectedLines := []string{
		":irc.example.net 001 alice :Welcome to the network",
		":bob!b@example.com PRIVMSG #chan :hello",
		"FROBNICATE x",
	}
	if diff := deep.Equal(r.lines, expectedLines); diff != nil {
		t.Error(diff)
	}
	if len(order) != 2*len(expected) || order[0] != "registered" || order[1] != "extra" {
		t.Errorf("handlers called out of order: %v", order)
	}
}

func TestListenReadError(t *testing.T) {
	sc := newScriptedConn("PING :x")
	sc.err = errors.New("connection reset by peer")
	c := attachScripted(t, sc)
	r := &recorder{}

	err := c.Listen(r)
	var ioErr *IOError
	if !errors.As(err, &ioErr) || ioErr.Op != "read" {
		t.Fatalf("expected a read IOError, got %v", err)
	}
	if !errors.Is(err, sc.err) {
		t.Errorf("IOError doesn't wrap the cause: %v", err)
	}
	last := r.events[len(r.events)-1]
	if d, ok := last.(Disconnected); !ok || d.Err != err {
		t.Errorf("expected Disconnected carrying the error, got %#v", last)
	}
	if c.IsConnected() {
		t.Error("client still connected")
	}
	// the client can be reused
	if err := c.Attach(newScriptedConn()); err != nil {
		t.Errorf("reattach failed: %v", err)
	}
}

func TestListenReadQExceeded(t *testing.T) {
	sc := newScriptedConn()
	sc.err = errReadQ
	c := attachScripted(t, sc)
	if err := c.Listen(); !errors.Is(err, errReadQ) {
		t.Errorf("expected readQ error, got %v", err)
	}
}

func TestListenPongFailureEndsLoop(t *testing.T) {
	sc := newScriptedConn("PING :x", "PRIVMSG #chan :never seen")
	sc.writeErr = errors.New("broken pipe")
	c := attachScripted(t, sc)
	r := &recorder{}
	err := c.Listen(r)
	var ioErr *IOError
	if !errors.As(err, &ioErr) || ioErr.Op != "write" {
		t.Fatalf("expected the write error, got %v", err)
	}
	// neither the PING nor what follows reaches the handler
	if diff := deep.Equal(r.events, []Event{Connected{}, Disconnected{Err: err}}); diff != nil {
		t.Error(diff)
	}
}

func TestListenFallbackDecoding(t *testing.T) {
	sc := newScriptedConn(":bob!b@h PRIVMSG #chan :caf\xe9", ":bob!b@h PRIVMSG #chan :caf\xc3\xa9")
	c := attachScripted(t, sc)
	r := &recorder{}
	if err := c.Listen(r); err != nil {
		t.Fatal(err)
	}
	for i, ev := range r.events[1:3] {
		privmsg := ev.(CommandEvent).Command.(command.Privmsg)
		if privmsg.Content != "café" {
			t.Errorf("line %d decoded as %q", i, privmsg.Content)
		}
	}
}

func TestStats(t *testing.T) {
	sc := newScriptedConn("PING :a", ":irc 001 alice :hi")
	c := attachScripted(t, sc)
	if err := c.Listen(); err != nil {
		t.Fatal(err)
	}
	stats := c.Stats()
	expected := StatsSnapshot{
		BytesIn:  uint64(len("PING :a") + len(":irc 001 alice :hi")),
		BytesOut: uint64(len("PONG :a\r\n")),
		LinesIn:  2,
		LinesOut: 1,
	}
	if diff := deep.Equal(stats, expected); diff != nil {
		t.Error(diff)
	}
	if stats.String() == "" {
		t.Error("empty stats summary")
	}
}

func TestConnectRefused(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	port := ln.Addr().(*net.TCPAddr).Port
	ln.Close()

	c := NewClient()
	err = c.Connect("127.0.0.1", port)
	var ioErr *IOError
	if !errors.As(err, &ioErr) || ioErr.Op != "dial" {
		t.Errorf("expected a dial IOError, got %v", err)
	}
	if c.IsConnected() {
		t.Error("client connected after a failed dial")
	}
}

// serveOne accepts one connection on ln and runs serve on it.
func serveOne(t *testing.T, ln net.Listener, serve func(conn net.Conn, lines *bufio.Reader)) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		conn, err := ln.Accept()
		if err != nil {
			t.Errorf("accept: %v", err)
			return
		}
		defer conn.Close()
		serve(conn, bufio.NewReader(conn))
	}()
	return done
}

// pingServer reads the registration, pings the client, checks the PONG
// and hangs up.
func pingServer(t *testing.T) func(net.Conn, *bufio.Reader) {
	return func(conn net.Conn, lines *bufio.Reader) {
		for _, expected := range []string{"NICK alice\r\n", "USER alice 0 * :Alice\r\n"} {
			line, err := lines.ReadString('\n')
			if err != nil || line != expected {
				t.Errorf("expected %q, got %q (%v)", expected, line, err)
				return
			}
		}
		conn.Write([]byte(":irc.example.net 001 alice :Welcome\r\nPING :token\r\n"))
		line, err := lines.ReadString('\n')
		if err != nil || line != "PONG :token\r\n" {
			t.Errorf("bad PONG %q (%v)", line, err)
		}
	}
}

func registerAndListen(t *testing.T, c *Client) []Event {
	if err := c.Register("alice", "alice", "Alice", ""); err != nil {
		t.Fatal(err)
	}
	r := &recorder{}
	if err := c.Listen(r); err != nil {
		t.Errorf("Listen: %v", err)
	}
	return r.events
}

func TestConnectTCP(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	defer ln.Close()
	done := serveOne(t, ln, pingServer(t))

	c := NewClient()
	if err := c.Connect("127.0.0.1", ln.Addr().(*net.TCPAddr).Port); err != nil {
		t.Fatal(err)
	}
	events := registerAndListen(t, c)
	<-done
	if len(events) != 4 {
		t.Errorf("unexpected events %#v", events)
	}
}

func TestConnectPipe(t *testing.T) {
	clientSide, serverSide := net.Pipe()
	c := NewClient()
	if err := c.Attach(NewIRCStreamConn(clientSide, 0)); err != nil {
		t.Fatal(err)
	}
	done := make(chan struct{})
	go func() {
		defer close(done)
		defer serverSide.Close()
		pingServer(t)(serverSide, bufio.NewReader(serverSide))
	}()
	// net.Pipe is unbuffered, so registration has to run alongside the server
	registerAndListen(t, c)
	<-done
}

func tlsTestListener(t *testing.T) net.Listener {
	certPEM, keyPEM, err := mkcerts.CreateCertBytes("ergoclient test", "irc.example.net")
	if err != nil {
		t.Fatal(err)
	}
	cert, err := tls.X509KeyPair(certPEM, keyPEM)
	if err != nil {
		t.Fatal(err)
	}
	ln, err := tls.Listen("tcp", "127.0.0.1:0", &tls.Config{Certificates: []tls.Certificate{cert}})
	if err != nil {
		t.Fatal(err)
	}
	return ln
}

func TestConnectTLS(t *testing.T) {
	ln := tlsTestListener(t)
	defer ln.Close()
	done := serveOne(t, ln, pingServer(t))

	c := NewClient()
	port := ln.Addr().(*net.TCPAddr).Port
	if err := c.ConnectTLS("127.0.0.1", port, &tls.Config{InsecureSkipVerify: true}); err != nil {
		t.Fatal(err)
	}
	registerAndListen(t, c)
	<-done
}

func TestConnectTLSUntrusted(t *testing.T) {
	ln := tlsTestListener(t)
	defer ln.Close()
	go func() {
		conn, err := ln.Accept()
		if err == nil {
			// drive the server side of the handshake
			conn.(*tls.Conn).Handshake()
			conn.Close()
		}
	}()

	c := NewClient()
	err := c.ConnectTLS("127.0.0.1", ln.Addr().(*net.TCPAddr).Port, nil)
	var tlsErr *TLSError
	if !errors.As(err, &tlsErr) {
		t.Errorf("expected a TLSError, got %v", err)
	}
	if c.IsConnected() {
		t.Error("client connected after a failed handshake")
	}
}

func TestConnectTLSToPlaintext(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	defer ln.Close()
	done := serveOne(t, ln, func(conn net.Conn, lines *bufio.Reader) {
		conn.Write([]byte(":irc.example.net NOTICE * :this is not tls\r\n"))
	})

	c := NewClient()
	err = c.ConnectTLS("127.0.0.1", ln.Addr().(*net.TCPAddr).Port, &tls.Config{InsecureSkipVerify: true})
	var tlsErr *TLSError
	if !errors.As(err, &tlsErr) {
		t.Errorf("expected a TLSError, got %v", err)
	}
	<-done
}

func TestConnectWebSocket(t *testing.T) {
	server := wsEchoServer(t, func(conn *websocket.Conn) {
		for _, expected := range []string{"NICK alice", "USER alice 0 * :Alice"} {
			_, data, err := conn.ReadMessage()
			if err != nil || string(data) != expected {
				t.Errorf("expected %q, got %q (%v)", expected, data, err)
				return
			}
		}
		conn.WriteMessage(websocket.TextMessage, []byte("PING :token"))
		_, data, err := conn.ReadMessage()
		if err != nil || string(data) != "PONG :token" {
			t.Errorf("bad PONG %q (%v)", data, err)
		}
		conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	})
	defer server.Close()

	c := NewClient()
	if err := c.ConnectWebSocket(wsURL(server), nil); err != nil {
		t.Fatal(err)
	}
	events := registerAndListen(t, c)
	if diff := deep.Equal(events[len(events)-1], Disconnected{}); diff != nil {
		t.Error(diff)
	}
}

func TestWebSocketRejectsInvalidUTF8(t *testing.T) {
	received := make(chan string, 4)
	server := wsEchoServer(t, func(conn *websocket.Conn) {
		defer close(received)
		for {
			_, data, err := conn.ReadMessage()
			if err != nil {
				return
			}
			received <- string(data)
		}
	})
	defer server.Close()

	c := NewClient()
	if err := c.ConnectWebSocket(wsURL(server), nil); err != nil {
		t.Fatal(err)
	}
	if err := c.Msg("#chan", "caf\xe9"); err != ErrInvalidUTF8 {
		t.Errorf("expected ErrInvalidUTF8, got %v", err)
	}
	if stats := c.Stats(); stats.LinesOut != 0 || stats.BytesOut != 0 {
		t.Errorf("rejected line was counted: %v", stats)
	}
	// the connection is still usable
	if err := c.Msg("#chan", "café"); err != nil {
		t.Fatal(err)
	}
	if stats := c.Stats(); stats.LinesOut != 1 {
		t.Errorf("expected one line out, got %v", stats)
	}
	if err := c.Disconnect(); err != nil {
		t.Fatal(err)
	}
	var frames []string
	for frame := range received {
		frames = append(frames, frame)
	}
	if diff := deep.Equal(frames, []string{"PRIVMSG #chan :café"}); diff != nil {
		t.Error(diff)
	}
}

func TestConnectServer(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	defer ln.Close()
	done := serveOne(t, ln, pingServer(t))

	c := NewClient()
	config := ServerConfig{Host: "127.0.0.1", Port: ln.Addr().(*net.TCPAddr).Port}
	if err := c.ConnectServer(config); err != nil {
		t.Fatal(err)
	}
	registerAndListen(t, c)
	<-done

	config.TLS.Cert = "/nonexistent/cert.pem"
	config.TLS.Key = "/nonexistent/key.pem"
	config.TLS.Enabled = true
	if err := c.ConnectServer(config); err != ErrInvalidCertKeyPair {
		t.Errorf("expected ErrInvalidCertKeyPair, got %v", err)
	}
}

func TestDisconnectDuringListen(t *testing.T) {
	sc := newHeldConn("PING :a")
	s := attachScripted(t, sc).Share()
	r := &recorder{}
	result := make(chan error)
	events := s.Events(4)
	go func() {
		result <- s.Listen(r)
	}()
	// Connected, then the PING
	<-events.C
	<-events.C
	if err := s.Disconnect(); err != nil {
		t.Fatal(err)
	}
	if err := <-result; err != nil {
		t.Errorf("expected nil after a local disconnect, got %v", err)
	}
	if s.IsConnected() {
		t.Error("still connected")
	}
}
