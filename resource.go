// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kont

// Resource safety primitives for exception-safe resource management.
//
// The teacher builds these on its own Throw/Catch effect operations. This
// package drops that general effect algebra (see DESIGN.md — it implements
// the Non-goal "typed effect handlers"), so Bracket and OnError are rebuilt
// directly on Go panic/recover instead, which is also how the engine
// itself propagates a prompt body's panic across a yield boundary (§4.3.4
// EXCEPTION, §7) — the same mechanism, used consistently end to end.

// Bracket provides exception-safe resource acquisition and release:
// acquire, then use, then release — release always runs, even if use
// panics. A panic whose recovered value is an E is caught and returned as
// a Left; any other panic propagates past Bracket once release has run.
func Bracket[E, R, A any](
	acquire Cont[Resumed, R],
	release func(R) Cont[Resumed, struct{}],
	use func(R) Cont[Resumed, A],
) Cont[Resumed, Either[E, A]] {
	return Bind(acquire, func(resource R) Cont[Resumed, Either[E, A]] {
		var result Either[E, A]
		func() {
			defer func() {
				if rec := recover(); rec != nil {
					release(resource)(func(struct{}) Resumed { return nil })
					panic(rec)
				}
			}()
			result = runCatching[E, A](use(resource))
		}()
		return Bind(release(resource), func(_ struct{}) Cont[Resumed, Either[E, A]] {
			return Return[Resumed](result)
		})
	})
}

// OnError runs cleanup only if body panics with an E, then re-panics with
// the same value once cleanup has run.
func OnError[E, A any](
	body Cont[Resumed, A],
	cleanup func(E) Cont[Resumed, struct{}],
) Cont[Resumed, A] {
	return func(k func(A) Resumed) (result Resumed) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			e, ok := rec.(E)
			if !ok {
				panic(rec)
			}
			cleanup(e)(func(struct{}) Resumed { return nil })
			panic(rec)
		}()
		return body(k)
	}
}

// runCatching drives m to completion, recovering a panic whose value is an
// E into a Left; any other panic is re-raised.
func runCatching[E, A any](m Cont[Resumed, A]) (result Either[E, A]) {
	defer func() {
		rec := recover()
		if rec == nil {
			return
		}
		e, ok := rec.(E)
		if !ok {
			panic(rec)
		}
		result = Left[E, A](e)
	}()
	v := m(func(a A) Resumed { return a })
	a, _ := v.(A)
	return Right[E, A](a)
}
