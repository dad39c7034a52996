// Package testutil provides helpers for testing UI components.
package testutil

import (
	"regexp"
	"strings"
)

var ansiRe = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// StripANSI removes SGR escape sequences so rendered output can be
// compared as plain text.
func StripANSI(s string) string {
	return ansiRe.ReplaceAllString(s, "")
}

// AssertContains returns a failure message if the stripped output does
// not contain substr, or an empty string if it does.
func AssertContains(output, substr string) string {
	if !strings.Contains(StripANSI(output), substr) {
		return "expected output to contain " + substr
	}
	return ""
}

// AssertNotContains returns a failure message if the stripped output
// contains substr, or an empty string if it does not.
func AssertNotContains(output, substr string) string {
	if strings.Contains(StripANSI(output), substr) {
		return "expected output to NOT contain " + substr
	}
	return ""
}
