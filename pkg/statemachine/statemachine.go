package statemachine

import (
	"context"
	"fmt"
	"sync"
)

// State represents a state in the state machine.
type State interface {
	Name() string
}

// Event represents an event that can trigger a state transition.
type Event interface {
	Name() string
}

// Action executes side effects during a transition. Returning an error aborts it.
type Action func(ctx context.Context, from, to State, event Event, data any) error

// StringState provides a simple string-based state implementation.
type StringState string

func (s StringState) Name() string {
	return string(s)
}

// StringEvent provides a simple string-based event implementation.
type StringEvent string

func (e StringEvent) Name() string {
	return string(e)
}

type transition struct {
	to      State
	actions []Action
}

// Machine is a thread-safe in-memory state machine.
// Transition lookup is O(1) via a nested map: [fromState][event].
type Machine struct {
	current     State
	transitions map[string]map[string]transition
	mu          sync.RWMutex
}

// Option configures a machine during construction.
type Option func(*Machine) error

// New creates a state machine at the given initial state.
func New(initial State, opts ...Option) (*Machine, error) {
	if initial == nil {
		return nil, fmt.Errorf("initial state cannot be nil")
	}

	m := &Machine{
		current:     initial,
		transitions: make(map[string]map[string]transition),
	}

	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// MustNew creates a state machine and panics if any option fails,
// following the fail-fast construction pattern.
func MustNew(initial State, opts ...Option) *Machine {
	m, err := New(initial, opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to create state machine: %v", err))
	}
	return m
}

// WithTransition declares a transition between two states triggered by an event.
// Optional actions run in order before the state change.
func WithTransition(from, to State, event Event, actions ...Action) Option {
	return func(m *Machine) error {
		if from == nil || to == nil || event == nil {
			return ErrInvalidTransition
		}

		fromName := from.Name()
		eventName := event.Name()

		if _, ok := m.transitions[fromName]; !ok {
			m.transitions[fromName] = make(map[string]transition)
		}
		if _, exists := m.transitions[fromName][eventName]; exists {
			return fmt.Errorf("%w: duplicate transition from %q on %q",
				ErrInvalidTransition, fromName, eventName)
		}

		m.transitions[fromName][eventName] = transition{to: to, actions: actions}
		return nil
	}
}

// Current returns the machine's current state.
func (m *Machine) Current() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// CanFire reports whether a transition exists for the event in the current state.
func (m *Machine) CanFire(event Event) bool {
	if event == nil {
		return false
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.transitions[m.current.Name()][event.Name()]
	return ok
}

// Fire attempts the transition for the event from the current state.
// Actions run before the state change; any action error aborts the transition.
func (m *Machine) Fire(ctx context.Context, event Event, data any) error {
	if event == nil {
		return ErrInvalidEvent
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := m.transitions[m.current.Name()][event.Name()]
	if !ok {
		return NewErrNoTransitionAvailable(m.current.Name(), event.Name())
	}

	for _, action := range t.actions {
		if action != nil {
			if err := action(ctx, m.current, t.to, event, data); err != nil {
				return fmt.Errorf("action failed: %w", err)
			}
		}
	}

	m.current = t.to
	return nil
}
