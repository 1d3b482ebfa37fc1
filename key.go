package editline

// Key is a decoded keystroke: a code point or synthetic key constant in the
// low bits, with modifier flags carried in the high bits.
//
// A value of zero (Signal) means "no input" and is ignored by the
// dispatcher; -1 (RedrawOnly) requests a redraw; -2 (RepaintAndRedraw) is
// dispatched as a redraw with regenerated hints, and the prompt text itself
// is not rewritten.
type Key int32

const (
	// Modifier flags, packed into the high bits of a Key alongside the
	// code point / synthetic constant in the low bits.
	modShift Key = 1 << 24
	modMeta  Key = 1 << 25
	modCtrl  Key = 1 << 26

	modMask  Key = modShift | modMeta | modCtrl
	codeMask Key = ^modMask
)

// Synthetic key constants. These live above any valid Unicode scalar value
// so they never collide with a decoded code point.
const (
	keyBase Key = 0x110000 + iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyDelete
	KeyInsert
	KeyFunction
)

// Sentinel keys recognized by the dispatcher.
const (
	Signal       Key = 0  // no input; a resize or similar signal occurred
	RedrawOnly   Key = -1 // redraw requested, no prompt repaint
	RepaintAndRedraw Key = -2
)

// Modified builds a Key by OR-ing modifier flags onto code.
func Modified(code Key, ctrl, meta, shift bool) Key {
	k := code
	if ctrl {
		k |= modCtrl
	}
	if meta {
		k |= modMeta
	}
	if shift {
		k |= modShift
	}
	return k
}

// Ctrl returns true if k carries the control modifier.
func (k Key) Ctrl() bool { return k&modCtrl != 0 }

// Meta returns true if k carries the meta (alt) modifier.
func (k Key) Meta() bool { return k&modMeta != 0 }

// Shift returns true if k carries the shift modifier.
func (k Key) Shift() bool { return k&modShift != 0 }

// Code returns k with modifier bits stripped.
func (k Key) Code() Key { return k & codeMask }

// Rune returns the code point carried by k when it represents a printable
// or control character rather than a synthetic constant.
func (k Key) Rune() rune { return rune(k.Code()) }

// IsSynthetic reports whether k.Code() is one of the KeyUp..KeyFunction
// constants rather than a real code point.
func (k Key) IsSynthetic() bool {
	c := k.Code()
	return c >= keyBase
}

func ctrlKey(r rune) Key { return Modified(Key(r), true, false, false) }
func metaKey(r rune) Key { return Modified(Key(r), false, true, false) }

// Named control keys, for readability in the dispatcher's keymap.
const (
	CtrlA Key = 'a' &^ 0x60 // 0x01
	CtrlB Key = 'b' &^ 0x60
	CtrlC Key = 'c' &^ 0x60
	CtrlD Key = 'd' &^ 0x60
	CtrlE Key = 'e' &^ 0x60
	CtrlF Key = 'f' &^ 0x60
	CtrlG Key = 'g' &^ 0x60
	CtrlH Key = 'h' &^ 0x60
	CtrlI Key = 'i' &^ 0x60 // Tab
	CtrlJ Key = 'j' &^ 0x60 // \n
	CtrlK Key = 'k' &^ 0x60
	CtrlL Key = 'l' &^ 0x60
	CtrlM Key = 'm' &^ 0x60 // \r
	CtrlN Key = 'n' &^ 0x60
	CtrlP Key = 'p' &^ 0x60
	CtrlR Key = 'r' &^ 0x60
	CtrlS Key = 's' &^ 0x60
	CtrlT Key = 't' &^ 0x60
	CtrlU Key = 'u' &^ 0x60
	CtrlW Key = 'w' &^ 0x60
	CtrlY Key = 'y' &^ 0x60
	CtrlZ Key = 'z' &^ 0x60

	KeyBackspace Key = 0x7f
	KeyEsc       Key = 0x1b
)

// ansiSeq maps a full escape sequence (as sent by VT100-style terminals) to
// a decoded Key. Modeled after the xterm sequences a terminal emulator
// actually produces; left-hand keys list both the common and modern
// (CSI ... ;3/;5) forms so a plain VT100 and a modern xterm both decode.
var ansiSeq = map[string]Key{
	"\x1b[A":  KeyUp,
	"\x1b[B":  KeyDown,
	"\x1b[C":  KeyRight,
	"\x1b[D":  KeyLeft,
	"\x1bOA":  KeyUp,
	"\x1bOB":  KeyDown,
	"\x1bOC":  KeyRight,
	"\x1bOD":  KeyLeft,
	"\x1b[H":  KeyHome,
	"\x1b[F":  KeyEnd,
	"\x1bOH":  KeyHome,
	"\x1bOF":  KeyEnd,
	"\x1b[1~": KeyHome,
	"\x1b[4~": KeyEnd,
	"\x1b[3~": KeyDelete,
	"\x1b[2~": KeyInsert,
	"\x1b[5~": KeyPageUp,
	"\x1b[6~": KeyPageDown,

	"\x1b[1;5A": Modified(KeyUp, true, false, false),
	"\x1b[1;5B": Modified(KeyDown, true, false, false),
	"\x1b[1;5C": Modified(KeyRight, true, false, false),
	"\x1b[1;5D": Modified(KeyLeft, true, false, false),
	"\x1b[1;3C": Modified(KeyRight, false, true, false),
	"\x1b[1;3D": Modified(KeyLeft, false, true, false),

	"\x1bb": metaKey('b'),
	"\x1bf": metaKey('f'),
	"\x1bB": Modified(KeyLeft, false, true, false),
	"\x1bF": Modified(KeyRight, false, true, false),
	"\x1bd": metaKey('d'),
	"\x1by": metaKey('y'),
	"\x1bc": metaKey('c'),
	"\x1bl": metaKey('l'),
	"\x1bu": metaKey('u'),
	"\x1bp": metaKey('p'),
	"\x1bP": metaKey('P'),
	"\x1bn": metaKey('n'),
	"\x1bN": metaKey('N'),
	"\x1b<": metaKey('<'),
	"\x1b>": metaKey('>'),
	"\x1b\x7f": metaKey(0x7f), // Meta-Backspace
}
