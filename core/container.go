package core

// Container is the storage strategy holding all agents of a Model. Exactly
// one container backs a Model, chosen at construction and fixed for the
// model's lifetime.
//
// Two implementations exist in the container package: a mapping variant
// supporting arbitrary insertion and removal, and an append-only sequence
// variant that trades removability for iteration and storage efficiency.
// Both mutate shared state without locking; a Model is single-writer (see
// the concurrency notes on Model).
type Container interface {
	// Add inserts the agent. Mapping containers reject ids already present
	// with ErrDuplicateID; sequence containers reject any id other than
	// count+1 with ErrIDSequence. Add is atomic: on error the container is
	// unchanged.
	Add(a Agent) error

	// Remove deletes the agent with the given id. Sequence containers
	// always fail with ErrUnsupportedOperation. Removing an id that is not
	// present is a no-op.
	Remove(id int) error

	// Get returns the agent with the given id, if present.
	Get(id int) (Agent, bool)

	// IDs returns all current agent ids in the container's native iteration
	// order: insertion order for the mapping variant (not guaranteed stable
	// across removals), index order for the sequence variant. The returned
	// slice is a copy.
	IDs() []int

	// Len returns the number of agents currently stored.
	Len() int

	// NextID returns the id the next added agent should carry. It is
	// monotonically non-decreasing for the mapping variant (ids are never
	// reused after removal) and count+1 for the sequence variant.
	NextID() int
}
