package jtdinfer

import "strings"

// ParseHintPath decodes a JSON-Pointer-like hint path string into the
// segment slice [HintSet] expects.
//
// The empty string means the root (a path of zero segments). Otherwise
// the string is split on "/" after the leading one, and within each
// segment "~1" decodes to "/" and "!0" decodes to "~". The second escape
// is not the standard JSON Pointer "~0"; it reproduces an upstream quirk,
// kept because it is part of the observable hint-path interface.
func ParseHintPath(s string) []string {
	if s == "" {
		return nil
	}

	segments := strings.Split(s, "/")[1:]
	for i, seg := range segments {
		seg = strings.ReplaceAll(seg, "~1", "/")
		segments[i] = strings.ReplaceAll(seg, "!0", "~")
	}

	return segments
}
