// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package kont provides delimited, multi-prompt control transfer over a
// single Go goroutine's call stack: named prompts that a deeply nested
// computation can suspend past in one step, and resumption handles that
// either replay the suspended computation exactly once or, for multi-shot
// prompts, any number of times from the same point of capture.
//
// # Design Philosophy
//
// The core type [Cont] represents a computation that accepts a
// continuation and produces a final result — the same continuation-passing
// encoding a native engine gets from a saved register context, except here
// the "saved context" is an ordinary Go closure. A captured closure already
// carries where to jump back to, so the engine's entry/yield/resume paths
// reduce to plain Go control flow (call, return, panic/recover) instead of
// a tagged return-point dispatch.
//
// # Prompts and the Control-Transfer Engine
//
// A [Machine] tracks the currently active chain of prompts for one
// goroutine, replacing a native implementation's implicit thread-local
// "current top" with an explicit, caller-held value.
//
//   - [Machine.Prompt]: Create a prompt and enter it immediately
//   - [Machine.PromptCreate]: Create a prompt without entering it
//   - [PromptEnter]: Enter a previously created prompt for the first time
//   - [PromptResume]: Resume a suspended prompt from a [Resumption]
//   - [PromptResumeTail]: Resume in tail position (see its doc comment for
//     how this realization's space bound differs from a native one)
//   - [ResumeDrop]: Release a resumption handle without invoking it
//   - [Yield]: Suspend the running prompt, handing an ancestor an
//     at-most-once [Resumption]
//   - [YieldM]: Suspend with a multi-shot [Resumption] instead
//
// # Resumptions
//
// [Resumption] is the interface common to both kinds of suspended
// continuation a yield can produce:
//
//   - [AsOnce]: Recover the once-kind prompt a [Resumption] refers to
//   - [AsMulti]: Recover the concrete [*MultiResumption], if multi-shot
//   - [ResumeDup]: Duplicate a multi-shot handle (fails on a once handle)
//   - [ResumeCount]: Number of times a multi-shot handle has been resumed
//     so far (always 0 for a once handle)
//   - [ShouldUnwind]: Whether a handle is the sole reference to a
//     multi-shot resumption that has never been resumed (always false for
//     a once handle)
//
// Saving a multi-shot continuation for replay is represented by
// [SavedStack], an immutable snapshot of the captured closure plus
// refcounted ownership of the prompts it spans.
//
// # Misuse and Exceptions
//
// Resuming a once-handle twice, dropping it and then resuming it, or
// passing a value that isn't a [Resumption] at all, are reported as errors
// ([ErrResumedTwice], [ErrNotAResumption]) rather than panics — the caller
// is expected to handle these as ordinary control flow. Yielding to a
// prompt that is not an ancestor of the current one, or a panic raised
// inside a prompt body, are programming errors: the former panics with
// [ErrNotAncestor]; the latter propagates across the yield boundary and
// surfaces as the error result of whichever [PromptEnter]/[PromptResume]
// call re-enters the unwound prompt.
//
// # Growable Stacks
//
// [GrowableStack] and [StackHandle] are the collaborator interfaces a host
// embedder would implement to back a prompt with its own reserved stack
// region (guard pages, a fixed allocation budget, and so on). The engine's
// own realization needs no such region — a suspended computation is a Go
// closure, not a byte range — so [Config]'s default stack is a no-op
// adapter; the interfaces exist so the API shape matches a native
// implementation and so a future backend with real per-prompt memory can
// be dropped in without changing caller code.
//
// # Backtraces
//
// [Backtrace] walks the chain of prompts active on a [Machine], returning
// program counters suitable for symbolization with the standard runtime
// or debug/pprof tooling.
//
// # Core Continuation Operations
//
// Minimal monad operations, inherited from the underlying CPS
// representation:
//
//   - [Return]: Lift a pure value into a continuation
//   - [Bind]: Sequence two continuations
//
// Derived operations:
//
//   - [Map]: Apply a function to the result — equivalent to Bind(m, func(a) Return(f(a)))
//   - [Then]: Sequence, discarding first result — equivalent to Bind(m, func(_) n)
//
// Execution:
//
//   - [Suspend]: Create a continuation from a CPS function
//   - [Run]: Execute a continuation to obtain the result
//   - [RunWith]: Execute with a custom final handler
//   - [Pure]: Lift a value into an [Eff] computation with no effects
//
// # Either Type
//
// [Either] represents success (Right) or failure (Left), used as the
// result shape for [Bracket]:
//
//   - [Left], [Right]: Constructors
//   - [Either.IsLeft], [Either.IsRight]: Predicates
//   - [Either.GetLeft], [Either.GetRight]: Accessors
//   - [MatchEither]: Pattern matching
//   - [MapEither]: Functor map over Right
//   - [FlatMapEither]: Monadic bind
//   - [MapLeftEither]: Transform Left value
//
// # Resource Safety
//
// Exception-safe resource management, built directly on panic/recover —
// the same mechanism the engine itself uses to propagate a prompt body's
// panic across a yield boundary:
//
//   - [Bracket]: Acquire-release-use with guaranteed cleanup
//   - [OnError]: Run cleanup only on error
//
// # Example
//
//	m := kont.NewMachine(kont.Config{})
//	result, err := m.Prompt(func(p *kont.Prompt, arg any) kont.Cont[kont.Resumed, kont.Resumed] {
//		return kont.Yield(m, p, func(r kont.Resumption, v any) any {
//			res, _ := kont.PromptResume(m, r, v.(int)+1)
//			return res
//		}, arg)
//	}, 41)
//	// result == 42, err == nil
package kont
