//go:build assertions_disabled

package assert

// Enabled reports whether assertions are compiled in.
const Enabled = false

// True is a no-op when built with the assertions_disabled tag.
func True(value bool, args ...any) {
	// Intentionally left blank
}

// False is a no-op when built with the assertions_disabled tag.
func False(value bool, args ...any) {
	// Intentionally left blank
}

// NotNil is a no-op when built with the assertions_disabled tag.
func NotNil(value any, args ...any) {
	// Intentionally left blank
}
