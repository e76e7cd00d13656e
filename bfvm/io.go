package bfvm

import (
	"io"
)

type flusher interface {
	Flush() error
}

// Reader adapts r to a byte source reading exactly one byte per call.
func Reader(r io.Reader) io.ByteReader {
	if br, ok := r.(io.ByteReader); ok {
		return br
	}
	return &byteReader{
		r: r,
	}
}

type byteReader struct {
	r   io.Reader
	buf [1]byte
}

func (b *byteReader) ReadByte() (byte, error) {
	if _, err := io.ReadFull(b.r, b.buf[:]); err != nil {
		return 0, err
	}
	return b.buf[0], nil
}

// Writer adapts w to a byte sink.
// Sinks that buffer are flushed by the machine after every byte.
func Writer(w io.Writer) io.ByteWriter {
	if bw, ok := w.(io.ByteWriter); ok {
		return bw
	}
	return &byteWriter{
		w: w,
	}
}

type byteWriter struct {
	w   io.Writer
	buf [1]byte
}

func (b *byteWriter) WriteByte(c byte) error {
	b.buf[0] = c
	n, err := b.w.Write(b.buf[:])
	if err != nil {
		return err
	}
	if n < 1 {
		return io.ErrShortWrite
	}
	return nil
}

func (b *byteWriter) Flush() error {
	if f, ok := b.w.(flusher); ok {
		return f.Flush()
	}
	return nil
}

type emptyReader struct{}

func (emptyReader) ReadByte() (byte, error) {
	return 0, io.EOF
}

type discardWriter struct{}

func (discardWriter) WriteByte(byte) error {
	return nil
}
