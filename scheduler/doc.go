// Package scheduler provides the built-in scheduling policies deciding
// which agents a simulation step processes, and in what order.
//
// Every policy satisfies core.Scheduler. The stateless policies (ByID,
// Fastest, Randomly, Partially, ByProperty, ByType) are plain values and
// draw any randomness from the model-scoped random source, keeping runs
// reproducible under a fixed seed. User code can supply arbitrary custom
// policies, including stateful ones, via core.ScheduleFunc or its own
// Scheduler implementations.
package scheduler
