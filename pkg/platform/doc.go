// SPDX-License-Identifier: MPL-2.0

// Package platform centralizes operating-system identification used by the
// environment resolver's platform-conditional discovery. It is a leaf
// package: standard library only, imported by both internal and pkg code.
package platform
