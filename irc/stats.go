// Copyright (c) 2024 ergoclient contributors
// released under the MIT license

package irc

import (
	"fmt"
	"sync/atomic"

	"code.cloudfoundry.org/bytefmt"
)

// Stats counts the traffic of one client across its connections.
type Stats struct {
	bytesIn  atomic.Uint64
	bytesOut atomic.Uint64
	linesIn  atomic.Uint64
	linesOut atomic.Uint64
}

// StatsSnapshot is a point-in-time copy of Stats.
type StatsSnapshot struct {
	BytesIn  uint64
	BytesOut uint64
	LinesIn  uint64
	LinesOut uint64
}

func (s *Stats) addIn(n int) {
	s.bytesIn.Add(uint64(n))
	s.linesIn.Add(1)
}

func (s *Stats) addOut(n int) {
	s.bytesOut.Add(uint64(n))
	s.linesOut.Add(1)
}

// Snapshot retrieves the current counters.
func (s *Stats) Snapshot() StatsSnapshot {
	return StatsSnapshot{
		BytesIn:  s.bytesIn.Load(),
		BytesOut: s.bytesOut.Load(),
		LinesIn:  s.linesIn.Load(),
		LinesOut: s.linesOut.Load(),
	}
}

func (s StatsSnapshot) String() string {
	return fmt.Sprintf("in %s (%d lines), out %s (%d lines)",
		bytefmt.ByteSize(s.BytesIn), s.LinesIn, bytefmt.ByteSize(s.BytesOut), s.LinesOut)
}
