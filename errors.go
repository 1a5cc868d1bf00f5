// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kont

import "errors"

// Misuse errors (§7). These report programmer errors detected at the API
// boundary — a double resume, a dup of a once-handle — as ordinary errors
// rather than panics, since a caller can reasonably want to recover from
// misusing this package without a surrounding recover(). A yield to a
// prompt that is not on the active chain panics instead (ErrNotAncestor
// below, raised in control.go).
var (
	// ErrResumedTwice is returned by PromptResume when a once-resumption
	// has already been resumed or dropped.
	ErrResumedTwice = errors.New("kont: resumption used twice")
	// ErrNotAResumption is returned when a Resumption value is neither a
	// once- nor a multi-handle (only possible via a misbehaving custom
	// Resumption implementation — this package produces only the two).
	ErrNotAResumption = errors.New("kont: not a resumption")
	// ErrDupOnce is returned by ResumeDup when asked to duplicate a
	// once-resumption; duplicate a YieldM handle instead.
	ErrDupOnce = errors.New("kont: cannot dup a once-resumption, use yieldm")
)

// ErrNotAncestor is panicked by Yield/YieldM when the target prompt is not
// on the currently active chain (§4.3.5 precondition violation — this is
// a programming error in the caller's prompt nesting, not a recoverable
// runtime condition, so it panics rather than returning an error).
var ErrNotAncestor = errors.New("kont: yield target is not an ancestor of the active prompt")
