// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kont

import "sync/atomic"

// onceResumption is the at-most-once resumption kind (§4.1). It wraps the
// suspended prompt it resumes and enforces affine use of itself: once
// Resume or Drop has touched it, a second attempt fails instead of silently
// re-entering a prompt that is no longer suspended.
//
// This is the direct generalization of the teacher's Affine[R,A]: the same
// atomic-flag technique, now guarding a *Prompt instead of an arbitrary
// continuation closure.
type onceResumption struct {
	used   atomic.Uint32
	prompt *Prompt
}

func (*onceResumption) resumption() {}

func newOnceResumption(p *Prompt) *onceResumption {
	return &onceResumption{prompt: p}
}

// markUsed claims the handle for its one permitted use. It returns false if
// the handle was already claimed (double resume, double drop, or one of
// each).
func (o *onceResumption) markUsed() bool {
	return o.used.Add(1) == 1
}
