// Package statemachine provides a small, type-safe finite-state-machine used
// to model one-way lifecycles.
//
// The package revolves around two minimal interfaces, State and Event, with
// string-based implementations (StringState, StringEvent) for the common case.
// Transitions are declared at construction time through functional options;
// a machine with no transition back into a state structurally guarantees that
// the state is entered at most once:
//
//	sm := statemachine.MustNew(Queued,
//	    statemachine.WithTransition(Queued, Open, Start),
//	    statemachine.WithTransition(Open, Closed, Close),
//	)
//
//	_ = sm.Fire(ctx, Start, nil) // Queued -> Open
//	_ = sm.Fire(ctx, Close, nil) // Open -> Closed
//	err := sm.Fire(ctx, Start, nil) // ErrNoTransitionAvailable: no re-open
//
// Transition actions run before the state change; an action error aborts the
// transition and leaves the machine in its current state.
package statemachine
