// SPDX-License-Identifier: MPL-2.0

package config

// configDirOverride allows tests to override the config directory.
// This is necessary because os.UserHomeDir() doesn't reliably respect
// the HOME environment variable on all platforms (e.g., macOS in CI).
var configDirOverride string

// configFileOverride holds the --config flag value; when set it is used
// exclusively, bypassing the standard locations.
var configFileOverride string

// Reset clears overrides. Call from test cleanup to restore defaults.
func Reset() {
	configDirOverride = ""
	configFileOverride = ""
}

// SetConfigDirOverride sets a custom config directory path, primarily
// for tests.
func SetConfigDirOverride(dir string) {
	configDirOverride = dir
}

// SetConfigFilePathOverride sets an explicit config file path (the
// --config flag).
func SetConfigFilePathOverride(path string) {
	configFileOverride = path
}
