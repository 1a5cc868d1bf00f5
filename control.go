// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kont

import "fmt"

// The Control-Transfer Engine (§4.3). It generalizes the teacher's
// Shift/Reset — a single implicit nearest-delimiter pair — into named,
// explicitly targeted prompts: Yield/YieldM name the prompt they transfer
// to instead of always meaning "the nearest Reset", and PromptResume
// re-enters a prompt from the outside instead of from inside the
// continuation that captured it.
//
// Spec.md's transitions PI, P, PR and Y are native longjmp-driven register
// switches; here a single Go function call/return plays the same role,
// because a captured Go closure already carries "where to jump back to"
// the way a jmp_buf does — see SPEC_FULL.md's mapping table for why
// return_point's RETURN/YIELD_ONCE/YIELD_MULTI/EXCEPTION "kinds" collapse
// to ordinary Go control flow (return, handler call, panic/recover) rather
// than a tagged dispatch switch.

// Prompt creates a fresh prompt and immediately enters it with
// fun(p, arg), returning its result, or an error if fun panicked (§6
// `prompt`).
func (m *Machine) Prompt(fun func(p *Prompt, arg any) Cont[Resumed, Resumed], arg any) (any, error) {
	p := m.PromptCreate(func(p *Prompt, _, resumeArg any) Cont[Resumed, Resumed] {
		return fun(p, resumeArg)
	}, nil)
	return PromptEnter(m, p, arg)
}

// PromptEnter enters an existing, never-yet-entered prompt p for the first
// time, handing it arg (transition PI of §4.3.2). Most callers want
// Prompt, which creates and enters in one step; PromptEnter is for a
// prompt created earlier via PromptCreate, for instance so it can be
// referenced by other code before it first runs.
func PromptEnter(m *Machine, p *Prompt, arg any) (any, error) {
	return enter(m, p, arg)
}

// PromptResume re-enters the prompt r refers to at its last yield point,
// handing it arg (transition PR of §4.3.2). First entry of a prompt made
// by PromptCreate goes through PromptEnter instead.
//
// r must be a Resumption previously handed to a yield target. Once-kind
// handles may be resumed exactly once; a second Resume (or a Resume after
// ResumeDrop) reports ErrResumedTwice instead of re-entering a prompt that
// is no longer suspended.
func PromptResume(m *Machine, r Resumption, arg any) (result any, err error) {
	switch h := r.(type) {
	case *onceResumption:
		if !h.markUsed() {
			return nil, ErrResumedTwice
		}
		return enter(m, h.prompt, arg)
	case *MultiResumption:
		p := h.consume(arg)
		return enter(m, p, arg)
	default:
		return nil, ErrNotAResumption
	}
}

// PromptResumeTail resumes in tail position (§4.3.7). The native design
// reuses the caller's own return-point allocation instead of creating a
// fresh one, bounding a chain of mutually tail-resuming handlers to O(1)
// space on the parent's stack. This Go realization has no separate
// heap-allocated return-point object to reuse or skip — a Go closure call
// already plays that role — so PromptResumeTail and PromptResume are
// observably identical here; the distinct name is kept for API fidelity
// and documents the caller's intent. See DESIGN.md for why a literal O(1)
// bound is not attainable without native stack-pointer control, and how
// Go's own automatically growable goroutine stack absorbs the gap in
// practice.
func PromptResumeTail(m *Machine, r Resumption, arg any) (any, error) {
	return PromptResume(m, r, arg)
}

// ResumeDrop releases a resumption handle without invoking it (§6
// resume_drop). Dropping a not-yet-used once-handle, or the last copy of a
// multi-handle, releases the prompt it refers to; dropping a once-handle
// that was already resumed or dropped does nothing.
func ResumeDrop(r Resumption) {
	switch h := r.(type) {
	case *onceResumption:
		if h.markUsed() {
			h.prompt.drop()
		}
	case *MultiResumption:
		h.dropHandle()
	}
}

// enter runs p's body from its start (if p.resumePoint is nil) or from its
// last yield point, under an exception guard (§4.3.3 step 2, §7).
func enter(m *Machine, p *Prompt, arg any) (result Resumed, err error) {
	m.link(p)
	defer func() {
		rec := recover()
		if rec == nil {
			return
		}
		// p only belongs to this call's RET/EXCEPTION bookkeeping if it is
		// still where link left it. A yield reached from inside p's body
		// (targeting p itself, or an ancestor with p on the path) already
		// unlinked p — and possibly p's own caller too — via unlink, whose
		// bookkeeping must not be redone or undone here (see the isAncestor
		// check below for the non-panicking twin of this reasoning).
		if isAncestor(m, p) {
			m.currentTop = p.parent
			p.parent = nil
			p.drop()
		}
		if e, ok := rec.(error); ok {
			err = e
		} else {
			err = fmt.Errorf("kont: %v", rec)
		}
	}()

	var body Resumed
	if p.resumePoint == nil {
		body = p.startFun(p, p.startArg, arg)(toResumed)
	} else {
		rp := p.resumePoint
		p.resumePoint = nil
		body = rp(arg)
	}
	// p genuinely returned (RET) only if it is still active here. A nested
	// yield — to p itself with no resume, or past p to one of its own
	// ancestors — already unlinked p (and possibly this very call's p)
	// via unlink/a recursive enter, whose bookkeeping already ran; running
	// unlinkReturn/drop a second time here would double-free or clobber a
	// chain another frame is still relying on.
	if isAncestor(m, p) {
		m.unlinkReturn(p)
		p.drop()
	}
	return body, nil
}

func toResumed(v Resumed) Resumed { return v }

// Yield suspends the currently running prompt and transfers control to p,
// an ancestor on the active chain, handing fun an at-most-once resumption
// handle for the suspended computation (§4.3.5 yield_internal, once kind).
//
// fun's return value becomes the result that flows back to whoever
// eventually calls PromptResume/PromptResumeTail on p (or, if fun never
// resumes, the result of the outer Prompt/PromptResume call that entered
// p in the first place).
func Yield(m *Machine, p *Prompt, fun func(Resumption, any) any, arg any) Cont[Resumed, Resumed] {
	return func(k func(Resumed) Resumed) Resumed {
		return yieldInternal(m, p, fun, arg, k, newOnceResumption(p))
	}
}

// YieldM is Yield's multi-shot counterpart: fun receives a Resumption that
// may be resumed (via ResumeDup'd copies) more than once, each time
// replaying the captured continuation from the point of capture (§4.3.5
// yield_internal, multi kind; §4.4).
func YieldM(m *Machine, p *Prompt, fun func(Resumption, any) any, arg any) Cont[Resumed, Resumed] {
	return func(k func(Resumed) Resumed) Resumed {
		return yieldInternal(m, p, fun, arg, k, newMultiResumption(p))
	}
}

func yieldInternal(m *Machine, p *Prompt, fun func(Resumption, any) any, arg any, k func(Resumed) Resumed, handle Resumption) Resumed {
	if !isAncestor(m, p) {
		panic(ErrNotAncestor)
	}
	p.resumePoint = func(v any) Resumed { return k(v) }
	m.unlink(p)
	return fun(handle, arg)
}
