// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kont

// MultiResumption is the multi-shot resumption kind (§3 Multi-Resumption
// record, §4.4). Unlike a once-resumption it may be resumed more than
// once: ResumeDup produces an independent handle copy, and each resume
// after the first replays the captured continuation from its point of
// capture rather than continuing whatever state a previous resume left
// behind.
//
// A real native implementation must physically copy stack bytes to make
// replay possible. This realization represents a prompt's suspended state
// as an immutable Go closure (resumePoint) to begin with, so "copying" it
// is simply sharing the same closure value again — the save/restore walk
// below exists to keep the API and the bookkeeping (refcounts,
// resume_count, should_unwind) faithful to spec.md even though the payload
// itself needs no byte-level duplication.
type MultiResumption struct {
	refcount    int32
	resumeCount int32
	prompt      *Prompt
	save        *SavedStack
}

func (*MultiResumption) resumption() {}

func newMultiResumption(p *Prompt) *MultiResumption {
	return &MultiResumption{refcount: 1, prompt: p}
}

// consume implements the mresume policy of §4.4: decide whether this
// resume needs a fresh snapshot, a restore of a previous one, or neither,
// then hands back the prompt for the control-transfer engine to enter.
func (r *MultiResumption) consume(arg any) *Prompt {
	r.resumeCount++
	switch {
	case r.save != nil:
		// A prior resume already snapshotted the chain: every resume from
		// here on replays from that snapshot (§4.4 "already saved ->
		// restore").
		r.save.Restore(r.prompt)
	case r.refcount > 1 || r.prompt.refcount > 1:
		// Shared: this resume must not consume the only copy of the
		// continuation, so snapshot it first (§4.4 "shared -> save then
		// consume").
		r.save = saveChain(r.prompt)
	default:
		// Sole owner and no snapshot exists yet: this resume may consume
		// the chain outright (§4.4 "sole owner -> consume without
		// snapshot").
	}
	p := r.prompt.dup()
	r.dropHandle()
	return p
}

// ResumeDup duplicates a multi-shot resumption handle, so it (and the
// original) can each be resumed independently (§6 resume_dup). Dup'ing a
// once-handle is a misuse; see ErrDupOnce.
func ResumeDup(r Resumption) (Resumption, error) {
	mr, ok := AsMulti(r)
	if !ok {
		return nil, ErrDupOnce
	}
	mr.refcount++
	return mr, nil
}

// dropHandle releases one reference to the Multi-Resumption record. At
// zero it releases the saved chain's held references and the record's own
// reference on the prompt (§4.4 "Drop").
func (r *MultiResumption) dropHandle() {
	r.refcount--
	if r.refcount > 0 {
		return
	}
	if r.save != nil {
		r.save.freeAll()
	}
	r.prompt.drop()
}

// ResumeCount reports how many times r has been resumed so far. It is 0
// for a once-resumption and for a multi-resumption not yet resumed (§6
// resume_count).
func ResumeCount(r Resumption) int {
	if mr, ok := AsMulti(r); ok {
		return int(mr.resumeCount)
	}
	return 0
}

// ShouldUnwind reports whether r is the sole surviving reference to a
// multi-resumption that has never been resumed — the case in which a
// handler that decides not to resume should actively unwind (e.g. re-throw
// rather than silently drop), since no other copy can ever resume it (§6
// should_unwind). It is always false for a once-resumption.
func ShouldUnwind(r Resumption) bool {
	mr, ok := AsMulti(r)
	return ok && mr.refcount == 1 && mr.resumeCount == 0
}

// SavedStack snapshots what a multi-shot resumption needs in order to
// replay: the captured continuation itself (already immutable data in this
// realization), the leaf of the captured sub-chain (p.top at capture time,
// needed to correctly re-link p on a later restore — a resume's own RET
// leaves p.top pointing nowhere in particular, since that prompt is not,
// in general, being entered again), plus one held reference on every
// intermediate prompt in the captured sub-chain, so they outlive a resume
// that does not consume them (§3 Saved-Stack entry, §4.4 save/restore
// walk).
type SavedStack struct {
	resume  resumePoint
	topLeaf *Prompt
	held    []*Prompt
}

// saveChain snapshots the sub-chain headed by p (from p.top, its captured
// leaf, down to p itself).
func saveChain(p *Prompt) *SavedStack {
	s := &SavedStack{resume: p.resumePoint, topLeaf: p.top}
	for cur := p.top; cur != nil && cur != p; cur = cur.parent {
		cur.dup()
		s.held = append(s.held, cur)
	}
	return s
}

// Restore re-installs a saved snapshot into p, including the captured
// sub-chain's leaf so the next link() reactivates the whole chain exactly
// as it stood at capture, not wherever an intervening resume's own RET
// happened to leave p.top. Restoring the same snapshot more than once is
// safe, because the captured continuation is immutable data rather than
// mutable memory (spec.md Testable Property 6: capture -> restore ->
// capture -> restore is idempotent).
func (s *SavedStack) Restore(p *Prompt) {
	p.resumePoint = s.resume
	p.top = s.topLeaf
}

func (s *SavedStack) freeAll() {
	for _, p := range s.held {
		p.drop()
	}
}
