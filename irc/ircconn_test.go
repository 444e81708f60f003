// Copyright (c) 2020 Shivaram Lingamneni <slingamn@cs.stanford.edu>
// Copyright (c) 2024 ergoclient contributors
// released under the MIT license

package irc

import (
	"io"
	"math/rand"
	"net"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

// mockConn is a fake net.Conn / io.Reader that yields len(counts) lines,
// each consisting of counts[i] 'a' characters and a terminating '\n'
type mockConn struct {
	counts []int
}

func min(i, j int) (m int) {
	if i < j {
		return i
	} else {
		return j
	}
}

func (c *mockConn) Read(b []byte) (n int, err error) {
	for len(b) > 0 {
		if len(c.counts) == 0 {
			return n, io.EOF
		}
		if c.counts[0] == 0 {
			b[0] = '\n'
			c.counts = c.counts[1:]
			b = b[1:]
			n += 1
			continue
		}
		size := min(c.counts[0], len(b))
		for i := 0; i < size; i++ {
			b[i] = 'a'
		}
		c.counts[0] -= size
		b = b[size:]
		n += size
	}
	return n, nil
}

func (c *mockConn) Write(b []byte) (n int, err error) {
	return
}

func (c *mockConn) Close() error {
	c.counts = nil
	return nil
}

func (c *mockConn) LocalAddr() net.Addr {
	return nil
}

func (c *mockConn) RemoteAddr() net.Addr {
	return nil
}

func (c *mockConn) SetDeadline(t time.Time) error {
	return nil
}

func (c *mockConn) SetReadDeadline(t time.Time) error {
	return nil
}

func (c *mockConn) SetWriteDeadline(t time.Time) error {
	return nil
}

func newMockConn(counts []int) *mockConn {
	cpCounts := make([]int, len(counts))
	copy(cpCounts, counts)
	return &mockConn{
		counts: cpCounts,
	}
}

// construct a mock reader with some number of \n-terminated lines,
// verify that IRCStreamConn can read and split them as expected
func doLineReaderTest(counts []int, t *testing.T) {
	c := newMockConn(counts)
	r := NewIRCStreamConn(c, 0).NewLineReader()
	var readCounts []int
	for {
		line, err := r.ReadLine()
		if err == nil {
			readCounts = append(readCounts, len(line))
		} else if err == io.EOF {
			break
		} else {
			panic(err)
		}
	}

	if !reflect.DeepEqual(counts, readCounts) {
		t.Errorf("expected %#v, got %#v", counts, readCounts)
	}
}

const (
	maxMockReaderLen     = 100
	maxMockReaderLineLen = 4096 + 511
)

func TestLineReader(t *testing.T) {
	counts := []int{44, 428, 3, 0, 200, 2000, 0, 4044, 33, 3, 2, 1, 0, 1, 2, 3, 48, 555}
	doLineReaderTest(counts, t)

	// fuzz
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	for i := 0; i < 1000; i++ {
		countsLen := r.Intn(maxMockReaderLen) + 1
		counts := make([]int, countsLen)
		for i := 0; i < countsLen; i++ {
			counts[i] = r.Intn(maxMockReaderLineLen)
		}
		doLineReaderTest(counts, t)
	}
}

func TestLineReaderReadQ(t *testing.T) {
	c := newMockConn([]int{10, 600, 10})
	r := NewIRCStreamConn(c, 512).NewLineReader()
	line, err := r.ReadLine()
	if err != nil || len(line) != 10 {
		t.Fatalf("unexpected first line: %d %v", len(line), err)
	}
	if _, err = r.ReadLine(); err != errReadQ {
		t.Errorf("expected errReadQ, got %v", err)
	}
}

func TestLineReaderStripsCRLF(t *testing.T) {
	client, server := net.Pipe()
	defer client.Close()
	go func() {
		server.Write([]byte("PING :a\r\nPING :b\n"))
		server.Close()
	}()
	r := NewIRCStreamConn(client, 0).NewLineReader()
	var lines []string
	for {
		line, err := r.ReadLine()
		if err != nil {
			if err != io.EOF {
				t.Fatal(err)
			}
			break
		}
		lines = append(lines, string(line))
	}
	if !reflect.DeepEqual(lines, []string{"PING :a", "PING :b"}) {
		t.Errorf("unexpected lines %#v", lines)
	}
}

// wsEchoServer upgrades each request and hands the server side of the
// websocket to serve.
func wsEchoServer(t *testing.T, serve func(*websocket.Conn)) *httptest.Server {
	upgrader := websocket.Upgrader{
		Subprotocols: []string{WebSocketSubprotocol},
	}
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade failed: %v", err)
			return
		}
		defer conn.Close()
		serve(conn)
	}))
}

func wsURL(server *httptest.Server) string {
	return "ws" + strings.TrimPrefix(server.URL, "http")
}

func TestWebSocketLineReader(t *testing.T) {
	server := wsEchoServer(t, func(conn *websocket.Conn) {
		conn.WriteMessage(websocket.TextMessage, []byte("PING :a\r\n"))
		conn.WriteMessage(websocket.TextMessage, []byte(""))
		conn.WriteMessage(websocket.BinaryMessage, []byte("PING :b"))
		conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	})
	defer server.Close()

	raw, _, err := websocket.DefaultDialer.Dial(wsURL(server), nil)
	if err != nil {
		t.Fatal(err)
	}
	conn := NewIRCWSConn(raw)
	defer conn.Close()

	r := conn.NewLineReader()
	var lines []string
	for {
		line, err := r.ReadLine()
		if err != nil {
			if !isCleanClose(err) {
				t.Errorf("unexpected error %v", err)
			}
			break
		}
		lines = append(lines, string(line))
	}
	if !reflect.DeepEqual(lines, []string{"PING :a", "PING :b"}) {
		t.Errorf("unexpected lines %#v", lines)
	}
}

func TestWebSocketWriteFrames(t *testing.T) {
	received := make(chan string, 4)
	server := wsEchoServer(t, func(conn *websocket.Conn) {
		for {
			messageType, data, err := conn.ReadMessage()
			if err != nil {
				close(received)
				return
			}
			if messageType != websocket.TextMessage {
				t.Errorf("expected text frame, got %d", messageType)
			}
			received <- string(data)
		}
	})
	defer server.Close()

	raw, _, err := websocket.DefaultDialer.Dial(wsURL(server), nil)
	if err != nil {
		t.Fatal(err)
	}
	conn := NewIRCWSConn(raw)
	if err := conn.WriteBuffers([][]byte{[]byte("NICK a\r\n"), {0xff, 0xfe, '\r', '\n'}, []byte("QUIT\r\n")}); err != ErrInvalidUTF8 {
		t.Errorf("expected ErrInvalidUTF8, got %v", err)
	}
	if err := conn.Write([]byte("USER a 0 * :a\r\n")); err != nil {
		t.Fatal(err)
	}
	raw.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))

	var frames []string
	for frame := range received {
		frames = append(frames, frame)
	}
	conn.Close()
	// nothing is written from the invalid UTF-8 line on
	if !reflect.DeepEqual(frames, []string{"NICK a", "USER a 0 * :a"}) {
		t.Errorf("unexpected frames %#v", frames)
	}
}
