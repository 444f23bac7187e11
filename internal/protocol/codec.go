package protocol

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// MaxMessageSize bounds a single incoming line.
const MaxMessageSize = 64 * 1024

// ErrEmptyMessage is returned for blank input lines.
var ErrEmptyMessage = errors.New("empty message")

// ErrMalformedMessage is returned for lines that are not a JSON array.
var ErrMalformedMessage = errors.New("malformed message")

// EncodeBatch encodes a batch as a JSON array of arrays.
func EncodeBatch(batch []Event) ([]byte, error) {
	if batch == nil {
		batch = []Event{}
	}
	b, err := json.Marshal(batch)
	if err != nil {
		return nil, fmt.Errorf("encoding batch: %w", err)
	}
	return b, nil
}

// WriteBatch writes batch to w as one JSON line.
func WriteBatch(w io.Writer, batch []Event) error {
	b, err := EncodeBatch(batch)
	if err != nil {
		return err
	}
	b = append(b, '\n')
	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("writing batch: %w", err)
	}
	return nil
}

// Reader reads newline-delimited JSON array messages.
type Reader struct {
	r *bufio.Reader
}

// NewReader wraps r with a line limit of MaxMessageSize.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReaderSize(r, MaxMessageSize)}
}

// ReadMessage reads the next JSON array line. Numbers are kept as
// json.Number. Lines longer than MaxMessageSize are discarded and
// reported as ErrMalformedMessage; reading continues with the next line.
// Returns io.EOF when the input is exhausted.
func (r *Reader) ReadMessage() ([]any, error) {
	line, err := r.r.ReadSlice('\n')
	switch {
	case errors.Is(err, bufio.ErrBufferFull):
		if err := r.skipLine(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: line exceeds %d bytes", ErrMalformedMessage, MaxMessageSize)
	case errors.Is(err, io.EOF):
		if len(line) == 0 {
			return nil, io.EOF
		}
	case err != nil:
		return nil, fmt.Errorf("reading message: %w", err)
	}
	return DecodeMessage(line)
}

// skipLine drops input up to and including the next newline.
func (r *Reader) skipLine() error {
	for {
		_, err := r.r.ReadSlice('\n')
		switch {
		case err == nil, errors.Is(err, io.EOF):
			return nil
		case errors.Is(err, bufio.ErrBufferFull):
			continue
		default:
			return fmt.Errorf("reading message: %w", err)
		}
	}
}

// DecodeMessage decodes one JSON array message.
func DecodeMessage(line []byte) ([]any, error) {
	line = bytes.TrimSpace(line)
	if len(line) == 0 {
		return nil, ErrEmptyMessage
	}

	dec := json.NewDecoder(bytes.NewReader(line))
	dec.UseNumber()

	var msg []any
	if err := dec.Decode(&msg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedMessage, err)
	}
	if len(msg) == 0 {
		return nil, ErrEmptyMessage
	}
	return msg, nil
}
