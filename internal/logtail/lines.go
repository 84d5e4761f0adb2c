package logtail

import (
	"bufio"
	"bytes"
	"errors"
	"io"
)

const readBufferSize = 32 * 1024

// lineReader splits a byte stream into lines of at most max bytes. Data after
// the last '\n' stays pending until its terminator arrives (or flush is
// called), so a writer caught mid-line is never emitted half-finished.
type lineReader struct {
	br      *bufio.Reader
	pending []byte
	line    []byte // scratch returned by next
	max     int
	offset  int64 // bytes consumed from the source, pending included
}

func newLineReader(src io.Reader, offset int64, max int) *lineReader {
	return &lineReader{
		br:     bufio.NewReaderSize(src, readBufferSize),
		max:    max,
		offset: offset,
	}
}

// reset discards buffered and pending data and continues from src, which is
// positioned at offset.
func (lr *lineReader) reset(src io.Reader, offset int64) {
	lr.br.Reset(src)
	lr.pending = lr.pending[:0]
	lr.offset = offset
}

// next returns the next line including its terminator. The slice is only
// valid until the following call. When no complete line is available it
// returns the error that stopped reading, io.EOF at the end of written data.
func (lr *lineReader) next() ([]byte, error) {
	for {
		if line, ok := lr.cut(); ok {
			return line, nil
		}
		chunk, err := lr.br.ReadSlice('\n')
		lr.pending = append(lr.pending, chunk...)
		lr.offset += int64(len(chunk))
		if err == nil || errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		if line, ok := lr.cut(); ok {
			return line, nil
		}
		return nil, err
	}
}

// cut takes one line off the front of pending: everything through the first
// '\n' when that fits in max bytes, otherwise the first max bytes.
func (lr *lineReader) cut() ([]byte, bool) {
	n := 0
	switch i := bytes.IndexByte(lr.pending, '\n'); {
	case i >= 0 && i < lr.max:
		n = i + 1
	case len(lr.pending) >= lr.max:
		n = lr.max
	default:
		return nil, false
	}
	lr.line = append(lr.line[:0], lr.pending[:n]...)
	lr.pending = lr.pending[:copy(lr.pending, lr.pending[n:])]
	return lr.line, true
}

// flush returns whatever unterminated data is pending and clears it.
func (lr *lineReader) flush() []byte {
	if len(lr.pending) == 0 {
		return nil
	}
	lr.line = append(lr.line[:0], lr.pending...)
	lr.pending = lr.pending[:0]
	return lr.line
}
