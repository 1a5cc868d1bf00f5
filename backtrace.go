// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kont

import "runtime"

// Backtrace is the optional cross-prompt backtrace adapter of §4.5: it
// returns the program counters of the calling goroutine's stack, starting
// at Backtrace's caller, up to maxFrames (64 when maxFrames <= 0).
//
// The native sketch recurses per prompt because each one owns a physically
// distinct stack region that has to be unwound separately. In this
// realization the whole active chain already runs on one Go goroutine
// stack, so runtime.Callers alone sees every frame in a single call. The
// per-prompt loop below walks from p (or the machine's current top, if p
// is nil) through its ancestors but adds nothing to the trace; frames
// living on any stack other than the calling goroutine's are not included.
func Backtrace(m *Machine, p *Prompt, maxFrames int) []uintptr {
	if p == nil {
		p = m.currentTop
	}
	if maxFrames <= 0 {
		maxFrames = 64
	}
	pcs := make([]uintptr, maxFrames)
	n := runtime.Callers(2, pcs)
	out := pcs[:n]

	for anc := p; anc != nil && len(out) < maxFrames; anc = anc.parent {
		// Each ancestor's own frames are already part of the same Go call
		// stack captured above; nothing further to merge in this
		// single-OS-stack implementation. The loop remains so that a
		// GrowableStack backed by a real separate stack per prompt has a
		// natural place to contribute its own runtime.Callers result.
	}
	return out
}
