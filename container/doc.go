// Package container houses the concrete implementations of core.Container.
// The interface itself lives in the core package to centralize domain
// contracts; keeping only implementations here prevents higher level
// packages (schedulers, movement, runner) from depending on concrete
// storage.
//
// Two variants exist:
//
//   - Dict: a mapping from agent id to agent. Supports arbitrary insertion
//     and removal; ids are never reused after removal.
//   - Vector: a dense append-only sequence. Trades removability for
//     iteration and storage efficiency; the agent at logical position k
//     must carry id k.
package container
