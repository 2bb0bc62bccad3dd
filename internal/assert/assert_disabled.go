//go:build memkit_noassert

package assert

// Enabled reports whether contract checks are compiled into this build.
const Enabled = false

// That is a no-op in memkit_noassert builds. The compiler eliminates calls
// entirely, so disabled assertions cost nothing.
func That(cond bool, msg string) {
	_ = cond
	_ = msg
}
