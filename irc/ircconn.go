// Copyright (c) 2020 Shivaram Lingamneni <slingamn@cs.stanford.edu>
// Copyright (c) 2024 ergoclient contributors
// released under the MIT license

package irc

import (
	"bytes"
	"net"
	"unicode/utf8"

	"github.com/ergochat/irc-go/ircreader"
	"github.com/gorilla/websocket"
)

const (
	initialBufferSize = 1024
	// DefaultMaxReadQ bounds an inbound line that has not yet seen its
	// newline. Servers may send tagged lines well over 512 bytes.
	DefaultMaxReadQ = 8192 + 512
)

var (
	crlf = []byte{'\r', '\n'}
)

// LineReader is a read cursor over a connection, yielding one line at a
// time without the line terminator. The returned slice is only valid
// until the next call.
type LineReader interface {
	ReadLine() (line []byte, err error)
}

// IRCConn abstracts away the distinction between a regular
// net.Conn (which includes both raw TCP and TLS) and a websocket.
// it doesn't expose Read and Write because websockets are message-oriented,
// not stream-oriented.
type IRCConn interface {
	Write([]byte) error
	WriteBuffers([][]byte) error
	// NewLineReader returns a read cursor for the receive loop. Only one
	// cursor should be reading at a time.
	NewLineReader() LineReader
	RemoteAddr() net.Addr

	Close() error
}

// IRCStreamConn is an IRCConn over a regular stream connection.
type IRCStreamConn struct {
	conn     net.Conn
	maxReadQ int
}

func NewIRCStreamConn(conn net.Conn, maxReadQ int) *IRCStreamConn {
	if maxReadQ <= 0 {
		maxReadQ = DefaultMaxReadQ
	}
	return &IRCStreamConn{
		conn:     conn,
		maxReadQ: maxReadQ,
	}
}

func (cc *IRCStreamConn) Write(buf []byte) (err error) {
	_, err = cc.conn.Write(buf)
	return
}

func (cc *IRCStreamConn) WriteBuffers(buffers [][]byte) (err error) {
	// on Linux, with a plaintext TCP or Unix domain socket,
	// the Go runtime will optimize this into a single writev(2) call:
	_, err = (*net.Buffers)(&buffers).WriteTo(cc.conn)
	return
}

func (cc *IRCStreamConn) NewLineReader() LineReader {
	initialSize := initialBufferSize
	if cc.maxReadQ < initialSize {
		initialSize = cc.maxReadQ
	}
	var r streamLineReader
	r.reader.Initialize(cc.conn, initialSize, cc.maxReadQ)
	return &r
}

func (cc *IRCStreamConn) RemoteAddr() net.Addr {
	return cc.conn.RemoteAddr()
}

func (cc *IRCStreamConn) Close() (err error) {
	return cc.conn.Close()
}

type streamLineReader struct {
	reader ircreader.Reader
}

func (r *streamLineReader) ReadLine() (line []byte, err error) {
	line, err = r.reader.ReadLine()
	if err == ircreader.ErrReadQ {
		err = errReadQ
	}
	return
}

// IRCWSConn is an IRCConn over a websocket, one line per frame.
type IRCWSConn struct {
	conn *websocket.Conn
}

func NewIRCWSConn(conn *websocket.Conn) *IRCWSConn {
	return &IRCWSConn{conn: conn}
}

func (wc *IRCWSConn) Write(buf []byte) (err error) {
	buf = bytes.TrimSuffix(buf, crlf)
	// text frames must be UTF-8
	if !utf8.Valid(buf) {
		return ErrInvalidUTF8
	}
	return wc.conn.WriteMessage(websocket.TextMessage, buf)
}

func (wc *IRCWSConn) WriteBuffers(buffers [][]byte) (err error) {
	for _, buf := range buffers {
		err = wc.Write(buf)
		if err != nil {
			return
		}
	}
	return
}

func (wc *IRCWSConn) NewLineReader() LineReader {
	return wsLineReader{conn: wc.conn}
}

func (wc *IRCWSConn) RemoteAddr() net.Addr {
	return wc.conn.RemoteAddr()
}

func (wc *IRCWSConn) Close() (err error) {
	return wc.conn.Close()
}

type wsLineReader struct {
	conn *websocket.Conn
}

func (r wsLineReader) ReadLine() (line []byte, err error) {
	for {
		var messageType int
		messageType, line, err = r.conn.ReadMessage()
		if err != nil {
			return nil, err
		}
		// binary frames are accepted too (binary.ircv3.net);
		// on an empty frame, try again, block if necessary
		line = bytes.TrimSuffix(line, crlf)
		if (messageType == websocket.TextMessage || messageType == websocket.BinaryMessage) && len(line) != 0 {
			return
		}
	}
}
