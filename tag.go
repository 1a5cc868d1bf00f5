// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kont

// Resumption is the opaque handle handed to a yield's target function.
// Exactly one of AsOnce or AsMulti identifies its concrete kind (§4.1 of
// SPEC_FULL.md's Resumption Tag Encoding). A real native implementation
// steals the low bit of a pointer to carry this tag for free; Go gives us
// no such pointer to steal, so the tag is carried by ordinary interface
// dynamic-type dispatch instead — same cost class (a handful of
// instructions), no unsafe required.
type Resumption interface {
	resumption()
}

// AsOnce reports whether r is an at-most-once resumption, returning the
// prompt it resumes.
func AsOnce(r Resumption) (*Prompt, bool) {
	o, ok := r.(*onceResumption)
	if !ok {
		return nil, false
	}
	return o.prompt, true
}

// AsMulti reports whether r is a multi-shot resumption, returning its
// backing record.
func AsMulti(r Resumption) (*MultiResumption, bool) {
	m, ok := r.(*MultiResumption)
	return m, ok
}
