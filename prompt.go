// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kont

// StartFunc is the body of a prompt (§3 Prompt.start_fun). It receives the
// prompt itself (so it can later Yield to it or to one of its ancestors),
// the start argument fixed at PromptCreate, and the argument handed to
// PromptEnter on first entry. It is written in continuation-passing style — a Cont, not
// a plain func — because that is what lets a Yield inside it capture "the
// rest of this body" as an ordinary Go closure instead of a raw stack
// pointer (see SPEC_FULL.md's mapping table).
type StartFunc func(p *Prompt, startArg, resumeArg any) Cont[Resumed, Resumed]

// resumePoint is the captured "rest of the computation" at a prompt's most
// recent yield (§3 Prompt.resume_point). Calling it resumes execution
// exactly where Yield suspended, handing it the resume argument.
type resumePoint func(arg any) Resumed

// Prompt is one delimited stack segment (§3). Its fields mirror the native
// data model, except that there is no return-point field: returning to the
// caller is an ordinary Go return from enter. See SPEC_FULL.md for the
// mapping from each field's native meaning to its Go realization.
type Prompt struct {
	parent *Prompt // nearest active ancestor, or nil at the root of a chain
	top    *Prompt // when suspended: the leaf of this prompt's captured sub-chain

	refcount int32

	gstack StackHandle

	resumePoint resumePoint
	unwindFrame any // opaque hook payload for unwindFrameUpdate (§4.2)

	startFun StartFunc
	startArg any
}

// Machine owns one prompt chain. Spec.md's native design keeps the active
// chain in thread-local storage; Go has no idiomatic per-goroutine
// equivalent (parsing runtime.Stack output to recover a goroutine ID is
// explicitly rejected as non-idiomatic — see SPEC_FULL.md's Resolved Open
// Question), so a Machine is an ordinary value the caller holds and passes
// explicitly, standing in for "the current thread". A Machine must not be
// driven from more than one goroutine at a time.
type Machine struct {
	currentTop *Prompt
	cfg        Config
}

// NewMachine returns a Machine ready to host prompts, configured per cfg.
func NewMachine(cfg Config) *Machine {
	return &Machine{cfg: cfg.withDefaults()}
}

// Top returns the currently active prompt, or nil if none is active.
func (m *Machine) Top() *Prompt {
	return m.currentTop
}

// Parent returns p's active parent, or the machine's current top if p is
// nil (§4.2 prompt_parent).
func (m *Machine) Parent(p *Prompt) *Prompt {
	if p == nil {
		return m.currentTop
	}
	return p.parent
}

// PromptCreate allocates a growable stack via the GrowableStack collaborator
// and returns a fresh, suspended prompt ready for its first PromptEnter (§4.2
// prompt_create). The returned prompt has a single owning reference.
func (m *Machine) PromptCreate(start StartFunc, startArg any) *Prompt {
	gs, err := m.cfg.stack.Alloc(m.cfg)
	if err != nil {
		fatal(err)
		return nil
	}
	p := &Prompt{
		gstack:   gs,
		refcount: 1,
		startFun: start,
		startArg: startArg,
	}
	p.top = p
	return p
}

// isAncestor reports whether p is on the machine's currently active chain
// (required precondition of Yield/YieldM, §4.3.5).
func isAncestor(m *Machine, p *Prompt) bool {
	for cur := m.currentTop; cur != nil; cur = cur.parent {
		if cur == p {
			return true
		}
	}
	return false
}

// link activates a suspended prompt p onto m's chain (§4.2 prompt_link).
// current_top becomes p.top, the leaf of whatever sub-chain p had captured
// — not p itself — because p may head a multi-prompt capture (scenario
// "Nested prompts").
func (m *Machine) link(p *Prompt) {
	p.parent = m.currentTop
	m.currentTop = p.top
	p.top = nil
	unwindFrameUpdate(p.unwindFrame)
}

// unlink suspends p, and with it everything above p on the active chain,
// as one captured sub-chain, then reactivates whatever was active below p
// (§4.2 prompt_unlink, the Y transition). The caller must already have
// stashed the captured continuation in p.resumePoint.
func (m *Machine) unlink(p *Prompt) {
	p.top = m.currentTop
	m.currentTop = p.parent
	p.parent = nil
}

// unlinkReturn undoes link on an ordinary return from p's body (§4.3.3
// RET, the P transition's non-yielding case).
func (m *Machine) unlinkReturn(p *Prompt) {
	m.currentTop = p.parent
	p.parent = nil
}

// dup adds one reference to p and returns it, mirroring prompt_dup (§4.2).
func (p *Prompt) dup() *Prompt {
	p.refcount++
	return p
}

// drop releases one reference to p. At zero it frees p's own stack and
// cascades down the captured sub-chain it headed (p.top through p's
// parent link), releasing every intermediate prompt in turn (§4.2
// prompt_drop, §3 lifecycle summary).
//
// This assumes every intermediate suspended prompt between p.top and p is
// uniquely owned by p's reference — documented as a resolved Open Question
// in DESIGN.md, matching spec.md §9's own acknowledged assumption.
func (p *Prompt) drop() {
	p.refcount--
	if p.refcount > 0 {
		return
	}
	cur := p.top
	p.gstack.Free(false)
	for cur != nil && cur != p {
		next := cur.parent
		cur.refcount--
		if cur.refcount > 0 {
			return
		}
		cur.gstack.Free(false)
		cur = next
	}
}

// unwindFrameUpdate is the no-op hook call site matching spec.md §6's
// unwind_frame_update collaborator. Out of scope here (there is no separate
// unwind-table maintenance to do without a real native stack), kept as an
// explicit call so an embedder wiring a real backtrace/unwind library in
// has exactly one place to attach it.
func unwindFrameUpdate(frame any) {
	_ = frame
}
