/*
Copyright © 2024 Jeff Berkowitz (pdxjjb@gmail.com)

This program is free software: you can redistribute it and/or modify it
under the terms of the GNU Affero General Public License as published by
the Free Software Foundation, either version 3 of the License, or (at your
option) any later version.

This program is distributed in the hope that it will be useful, but
WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
Affero General Public License for more details.

You should have received a copy of the GNU Affero General Public
License along with this program. If not, see <http://www.gnu.org/licenses/>.
*/

// Package simlog carries the two logging concerns a simulation run
// needs: a binary per-lane waveform trace (Trace) and leveled structured
// diagnostics (Diag). Both are instances, not package-level singletons;
// a driver owns one of each per run.
package simlog

import (
	"encoding/binary"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
)

// Severity and record-kind bytes stamped into every trace record.
const (
	SevError = byte('E')
	SevWarn  = byte('W')
	SevInfo  = byte('I')
	SevDebug = byte('D')

	KindHeader = byte('H')
	KindSample = byte('V')
	KindEval   = byte('E')
	KindEdge   = byte('^')
)

const (
	recordSize    = 64
	recordsPerBuf = 128
	bufLen        = recordSize * recordsPerBuf
	srcLen        = 16
	evtLen        = 16
)

// Trace is a fixed-record binary waveform logger with a double-buffered
// write path, carrying a cycle number and lane index per sample. Not
// safe for concurrent use; a Chip's step() is itself single-threaded at
// the gate level.
type Trace struct {
	f      *os.File
	start  time.Time
	bufs   [2][]byte
	bufIdx int
	offset int
	runID  uuid.UUID
}

// OpenTrace creates (or truncates) path and writes a header record
// stamping the run with runID, for correlating a trace file back to the
// FaultCampaign or CLI invocation that produced it.
func OpenTrace(path string, runID uuid.UUID) (*Trace, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("simlog: open trace: %w", err)
	}
	t := &Trace{
		f:     f,
		start: time.Now(),
		bufs:  [2][]byte{make([]byte, bufLen), make([]byte, bufLen)},
		runID: runID,
	}
	idBytes, _ := runID.MarshalBinary() // always 16 bytes, never errors
	b0 := binary.BigEndian.Uint64(idBytes[0:8])
	b1 := binary.BigEndian.Uint64(idBytes[8:16])
	t.write("trace", "runid", b0, b1, SevInfo, KindHeader)
	return t, nil
}

// Eval records a combinational gate's output immediately after it's
// written, before any fault overlay. lane is -1 for a whole-tensor
// summary record, or a specific lane index for per-lane detail.
func (t *Trace) Eval(cycle uint32, signal string, lane int32, v, s uint32) {
	t.sample(cycle, signal, lane, v, s, KindEval)
}

// Edge records a flip-flop's published Q immediately after Commit.
func (t *Trace) Edge(cycle uint32, signal string, lane int32, v, s uint32) {
	t.sample(cycle, signal, lane, v, s, KindEdge)
}

// Sample records an arbitrary (cycle, signal, lane) observation, e.g.
// from netlist.Chip.Sample.
func (t *Trace) Sample(cycle uint32, signal string, lane int32, v, s uint32) {
	t.sample(cycle, signal, lane, v, s, KindSample)
}

func (t *Trace) sample(cycle uint32, signal string, lane int32, v, s uint32, kind byte) {
	b0 := uint64(v)<<32 | uint64(s)
	b1 := uint64(cycle)<<32 | uint64(uint32(lane))
	t.write(signal, "", b0, b1, SevInfo, kind)
}

// RunID returns the UUID stamped into this trace's header record.
func (t *Trace) RunID() uuid.UUID { return t.runID }

// Written to a packed 64-byte binary buffer formatted:
// timestamp uint64 (ns since trace open) (8 bytes)
// source [srcLen]byte (truncated unterminated ASCII-only string)
// event  [evtLen]byte (truncated unterminated ASCII-only string)
// b0 uint64 (8 bytes)
// b1 uint64 (8 bytes)
// sev byte
// kind byte
// 6 bytes unused = 64
func (t *Trace) write(src, evt string, b0, b1 uint64, sev, kind byte) {
	buf := t.bufs[t.bufIdx]

	if t.offset == bufLen {
		if _, err := t.f.Write(buf); err != nil {
			fmt.Fprintf(os.Stderr, "simlog: trace write error: %s\n", err.Error())
			return
		}
		t.offset = 0
		t.bufIdx = 1 - t.bufIdx
		buf = t.bufs[t.bufIdx]
	}

	rec := buf[t.offset : t.offset+recordSize]
	for i := range rec {
		rec[i] = 0
	}

	binary.LittleEndian.PutUint64(rec[0:8], uint64(time.Since(t.start).Nanoseconds()))
	copy(rec[8:8+srcLen], src)
	copy(rec[8+srcLen:8+srcLen+evtLen], evt)
	binary.LittleEndian.PutUint64(rec[40:48], b0)
	binary.LittleEndian.PutUint64(rec[48:56], b1)
	rec[56] = sev
	rec[57] = kind

	t.offset += recordSize
}

// Close flushes any partially-filled buffer and closes the underlying file.
func (t *Trace) Close() error {
	if t.offset != 0 {
		if _, err := t.f.Write(t.bufs[t.bufIdx][0:t.offset]); err != nil {
			t.f.Close()
			return fmt.Errorf("simlog: trace flush on close: %w", err)
		}
	}
	return t.f.Close()
}

// Record is one decoded trace entry, as returned by Dump.
type Record struct {
	TimestampNS uint64
	Source      string
	Event       string
	B0, B1      uint64
	Sev, Kind   byte
}

// Dump reads every record from a trace file written by Trace, in order.
// It is a pure reader, independent of any Trace instance: the waveform
// export boundary's collaborator tooling, not the core.
func Dump(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("simlog: open for dump: %w", err)
	}
	defer f.Close()

	var records []Record
	buf := make([]byte, recordSize)
	var at int64
	for {
		n, err := f.ReadAt(buf, at)
		if n == recordSize {
			records = append(records, decode(buf))
			at += recordSize
			continue
		}
		if err != nil {
			break
		}
	}
	return records, nil
}

func decode(buf []byte) Record {
	return Record{
		TimestampNS: binary.LittleEndian.Uint64(buf[0:8]),
		Source:      trim(buf[8 : 8+srcLen]),
		Event:       trim(buf[8+srcLen : 8+srcLen+evtLen]),
		B0:          binary.LittleEndian.Uint64(buf[40:48]),
		B1:          binary.LittleEndian.Uint64(buf[48:56]),
		Sev:         buf[56],
		Kind:        buf[57],
	}
}

func trim(b []byte) string {
	i := 0
	for i < len(b) && b[i] != 0 {
		i++
	}
	return string(b[0:i])
}
