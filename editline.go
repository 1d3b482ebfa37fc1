// Package editline implements an interactive single-line editor for
// command-line programs: in-place editing, history recall, incremental
// history search, tab completion, inline hints, and syntax colorization,
// over both POSIX terminals and the Windows console.
package editline

import (
	"errors"
	"os"
	"time"

	"github.com/mattn/go-isatty"
)

// Error kinds surfaced out-of-band from Input, per §7.
var (
	ErrInterrupted    = errors.New("editline: interrupted")
	ErrEOF            = errors.New("editline: eof")
	ErrIO             = errors.New("editline: io failure")
	ErrInvalidPreload = errors.New("editline: invalid preload")
)

// unsupportedTerminals is the deny-list of TERM values that get the plain
// line-read fallback instead of raw-mode editing (§6).
var unsupportedTerminals = map[string]bool{
	"dumb":   true,
	"cons25": true,
	"emacs":  true,
}

// Editor is the interactive line editor. The zero value is not usable;
// construct with New.
type Editor struct {
	reader Reader
	writer Writer

	history  *History
	killRing *KillRing

	completion CompletionConfig
	highlight  HighlightConfig
	noColor    bool

	lastSearchText string

	preloadText    string
	preloadWarning string
}

// Option configures an Editor at construction time (§6 configuration
// options).
type Option func(*Editor)

// WithCompleter installs the tab-completion callback.
func WithCompleter(fn CompletionFunc) Option {
	return func(e *Editor) { e.completion.Completer = fn }
}

// WithHinter installs the inline/below-line hint callback.
func WithHinter(fn HintFunc) Option {
	return func(e *Editor) { e.highlight.Hinter = fn }
}

// WithHighlighter installs the syntax-highlighter callback.
func WithHighlighter(fn HighlighterFunc) Option {
	return func(e *Editor) { e.highlight.Highlighter = fn }
}

// WithWordBreak overrides the default break-character predicate.
func WithWordBreak(fn func(rune) bool) Option {
	return func(e *Editor) {
		e.highlight.WordBreak = fn
		e.completion.WordBreak = fn
	}
}

// WithMaxHintRows sets how many candidate hints are shown below the input
// (default 4; 0 disables the below-line listing).
func WithMaxHintRows(n int) Option {
	return func(e *Editor) { e.highlight.MaxHintRows = n }
}

// WithDoubleTabCompletion requires a second Tab before an ambiguous
// completion is listed.
func WithDoubleTabCompletion(v bool) Option {
	return func(e *Editor) { e.completion.DoubleTabCompletion = v }
}

// WithCompleteOnEmpty allows Tab to trigger completion on an empty buffer.
func WithCompleteOnEmpty(v bool) Option {
	return func(e *Editor) { e.completion.CompleteOnEmpty = v }
}

// WithBeepOnAmbiguousCompletion rings the bell when Tab can't extend the
// buffer.
func WithBeepOnAmbiguousCompletion(v bool) Option {
	return func(e *Editor) { e.completion.BeepOnAmbiguous = v }
}

// WithCompletionCountCutoff sets the candidate count above which listing
// asks "Display all N possibilities?" first (default 100).
func WithCompletionCountCutoff(n int) Option {
	return func(e *Editor) { e.completion.CompletionCountCutoff = n }
}

// WithNoColor disables all ANSI color output, including hint/brace-match
// coloring and the completion listing's common-prefix highlight.
func WithNoColor(v bool) Option {
	return func(e *Editor) {
		e.noColor = v
		e.highlight.NoColor = v
	}
}

// WithMaxHistorySize bounds the number of retained history entries
// (default 1000).
func WithMaxHistorySize(n int) Option {
	return func(e *Editor) { e.history = NewHistory(n) }
}

// WithReader overrides the terminal Reader (primarily for tests).
func WithReader(r Reader) Option {
	return func(e *Editor) { e.reader = r }
}

// WithWriter overrides the terminal Writer (primarily for tests).
func WithWriter(w Writer) Option {
	return func(e *Editor) { e.writer = w }
}

// New returns a configured Editor.
func New(opts ...Option) *Editor {
	e := &Editor{
		history:   NewHistory(0),
		killRing:  NewKillRing(),
		highlight: HighlightConfig{MaxHintRows: 4},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// History exposes the editor's history, so a host program can persist and
// reload it between runs (persistence itself is out of scope, §1).
func (e *Editor) History() *History { return e.history }

// Preload queues text to be inserted into the buffer, cursor and prefix at
// the end, on the next call to Input (§7's "Invalid preload" error kind).
// Control characters are sanitized first: CR is dropped, runs of newline/
// tab collapse to a single space, and any other control character becomes
// a space. If anything but CR/newline/tab was replaced, Preload returns
// ErrInvalidPreload and queues a one-time warning that Input prints before
// the next prompt instead of failing the call outright.
func (e *Editor) Preload(text string) error {
	sanitized, stripped := sanitizePreload(text)
	e.preloadText = sanitized
	if stripped {
		e.preloadWarning = preloadWarningText
		return ErrInvalidPreload
	}
	e.preloadWarning = ""
	return nil
}

// Input reads one line from the controlling terminal with the given
// prompt, running the full edit loop of §4.7 until the line is accepted
// (Ctrl-J/M) or the call is cancelled (Ctrl-C/Ctrl-D-on-empty/EOF). It
// returns the accepted line and true, or ("", false, err) on cancellation.
func (e *Editor) Input(promptText string) (string, bool, error) {
	if e.reader == nil && isUnsupportedTerminal() {
		return e.plainLineRead(promptText)
	}

	if e.reader == nil {
		e.reader = NewStdinReader()
	}
	if e.writer == nil {
		e.writer = NewStdoutWriter(e.noColor)
	}

	if err := e.reader.Open(); err != nil {
		return "", false, errJoin(ErrIO, err)
	}
	defer e.reader.Close()

	ws := e.reader.GetWinSize()
	cols := int(ws.Col)
	if cols <= 0 {
		cols = DefColCount
	}

	buf := NewLineBuffer()
	prompt := NewPrompt(promptText, cols)
	renderer := NewRenderer(e.writer, cols)

	preload := e.preloadText
	e.preloadText = ""
	e.history.PushWorking(preload)
	e.history.ResetPos()
	if preload != "" {
		buf.Reset(preload)
	}

	if e.preloadWarning != "" {
		e.writer.WriteString(e.preloadWarning)
		e.writer.Flush()
		e.preloadWarning = ""
	}

	e.writer.WriteString(promptText)
	renderer.RefreshLine(prompt, buf, e.highlight, HintRegenerate)

	d := &dispatcher{
		ed:       e,
		buf:      buf,
		prompt:   prompt,
		renderer: renderer,
		cols:     cols,
	}

	exitCh := make(chan int, 1)
	winSizeCh := make(chan *WinSize, 1)
	suspendCh := make(chan struct{}, 1)
	stopSig := make(chan struct{})
	go e.handleSignals(exitCh, winSizeCh, suspendCh, stopSig)
	defer close(stopSig)

	var pending []Key

	for {
		select {
		case <-exitCh:
			e.history.DropLast()
			e.history.ResetRecallMostRecent()
			return "", false, ErrInterrupted

		case ws := <-winSizeCh:
			cols = int(ws.Col)
			if cols <= 0 {
				cols = DefColCount
			}
			renderer.SetCols(cols)
			d.cols = cols
			renderer.RefreshLine(prompt, buf, e.highlight, HintRepaint)
			continue

		case <-suspendCh:
			e.reader.Close()
			_ = suspendSelf()
			e.reader.Open()
			renderer.RefreshLine(prompt, buf, e.highlight, HintRepaint)
			continue

		default:
		}

		var k Key
		if len(pending) > 0 {
			k = pending[0]
			pending = pending[1:]
		} else {
			var raw [64]byte
			n, err := e.reader.Read(raw[:])
			if err != nil || n == 0 {
				time.Sleep(10 * time.Millisecond)
				continue
			}
			keys := DecodeKeys(raw[:n])
			if len(keys) == 0 {
				continue
			}
			k = keys[0]
			pending = keys[1:]
		}

		outcome := d.dispatch(k)
		switch outcome.action {
		case actionReturn:
			text := buf.Text()
			e.history.DropLast()
			e.history.Add(text)
			e.history.CommitIndex(e.history.Len() - 1)
			e.history.SetRecallMostRecent()
			e.writer.WriteString("\r\n")
			e.writer.Flush()
			return text, true, nil

		case actionBail:
			e.history.DropLast()
			e.history.ResetRecallMostRecent()
			e.writer.WriteString("\r\n")
			e.writer.Flush()
			return "", false, outcome.err

		case actionInject:
			pending = append([]Key{outcome.inject}, pending...)
		}
	}
}

func errJoin(sentinel, cause error) error {
	if cause == nil {
		return sentinel
	}
	return errors.Join(sentinel, cause)
}

// isUnsupportedTerminal reports whether the controlling terminal should
// bypass raw-mode editing entirely: either TERM names a known dumb
// terminal, or stdin/stdout aren't real TTYs at all (§6).
func isUnsupportedTerminal() bool {
	if unsupportedTerminals[os.Getenv("TERM")] {
		return true
	}
	return !isatty.IsTerminal(os.Stdin.Fd()) || !isatty.IsTerminal(os.Stdout.Fd())
}

// plainLineRead is the §6 fallback for terminals that can't support raw
// mode: print the prompt and read one newline-terminated line verbatim.
func (e *Editor) plainLineRead(promptText string) (string, bool, error) {
	os.Stdout.WriteString(promptText)
	var line []byte
	buf := make([]byte, 1)
	for {
		n, err := os.Stdin.Read(buf)
		if n > 0 {
			if buf[0] == '\n' {
				return string(line), true, nil
			}
			if buf[0] != '\r' {
				line = append(line, buf[0])
			}
		}
		if err != nil {
			if len(line) > 0 {
				return string(line), true, nil
			}
			return "", false, ErrEOF
		}
	}
}
