package core

// Scheduler decides which agents are processed in a simulation step, and in
// what order. Implementations take a snapshot of the model's population at
// call time and return agent ids; order matters for models that mutate
// shared state during iteration.
//
// Stateless policies are plain values; stateful schedulers own private
// mutable fields updated exactly once per invocation. Both satisfy the same
// interface, enabling uniform storage in the Model.
type Scheduler interface {
	Schedule(m *Model) []int
}

// ScheduleFunc adapts an ordinary function to the Scheduler interface,
// supporting ad-hoc user policies and closures over external state.
type ScheduleFunc func(m *Model) []int

// Schedule calls f(m).
func (f ScheduleFunc) Schedule(m *Model) []int { return f(m) }
