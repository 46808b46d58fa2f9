// SPDX-License-Identifier: MPL-2.0

package platform

// OS name constants for runtime.GOOS comparisons.
// Centralizes the string literals to avoid scattered magic strings.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
)

// IsWindowsLike reports whether goos selects the Windows discovery rules
// (PATH scanning for the git launcher instead of the fixed /etc root).
func IsWindowsLike(goos string) bool {
	return goos == Windows
}
