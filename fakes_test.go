package editline

import "bytes"

// fakeReader is an in-memory Reader: Open/Close are no-ops, and Read pops one
// queued chunk per call (returning 0, nil once the queue is drained, mirroring
// the real non-blocking Reader's "nothing available yet" behavior).
type fakeReader struct {
	chunks [][]byte
	ws     *WinSize
}

func newFakeReader(ws *WinSize) *fakeReader {
	if ws == nil {
		ws = &WinSize{Row: DefRowCount, Col: DefColCount}
	}
	return &fakeReader{ws: ws}
}

func (r *fakeReader) Open() error  { return nil }
func (r *fakeReader) Close() error { return nil }

func (r *fakeReader) Read(buf []byte) (int, error) {
	if len(r.chunks) == 0 {
		return 0, nil
	}
	chunk := r.chunks[0]
	r.chunks = r.chunks[1:]
	return copy(buf, chunk), nil
}

func (r *fakeReader) GetWinSize() *WinSize { return r.ws }

// push queues a raw chunk of input, as DecodeKeys would see it off the wire.
func (r *fakeReader) push(s string) { r.chunks = append(r.chunks, []byte(s)) }

// fakeWriter is a Writer over an in-memory buffer, for asserting on exactly
// what the renderer/completion engine wrote.
type fakeWriter struct {
	buf     bytes.Buffer
	noColor bool
}

func newFakeWriter(noColor bool) *fakeWriter {
	return &fakeWriter{noColor: noColor}
}

func (w *fakeWriter) WriteString(s string) (int, error) { return w.buf.WriteString(s) }
func (w *fakeWriter) Flush() error                      { return nil }

func (w *fakeWriter) AnsiColor(c Color) string {
	if w.noColor {
		return ""
	}
	return ansiColorCodes[c]
}
