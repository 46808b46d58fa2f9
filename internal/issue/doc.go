// SPDX-License-Identifier: MPL-2.0

// Package issue provides user-facing error context (ActionableError) and a
// small catalog of rendered help texts for known failure modes.
package issue
