//go:build !unix

package editline

// suspendSelf is a no-op on platforms without POSIX job control (§4.7:
// "Ctrl-Z (POSIX only)").
func suspendSelf() error { return nil }

const ctrlZSupported = false
