package scheduler

import (
	"github.com/hupe1980/agentsim/core"
)

// byType partitions the population by concrete agent type and concatenates
// the partitions.
type byType struct {
	order         []string
	shuffleTypes  bool
	shuffleAgents bool
}

// ByType schedules agents grouped by concrete runtime type. The union
// prototypes declare which types participate; ids of unlisted types are not
// scheduled.
//
// Partition order is the canonical decomposition of the union (member type
// names, deduplicated and sorted, independent of declaration order), so
// repeated calls reproduce an identical order. With shuffleTypes the
// partition order is freshly shuffled per invocation; with shuffleAgents
// the ids inside each partition are. Without shuffle flags both orders are
// identical across calls.
func ByType(shuffleTypes, shuffleAgents bool, union ...core.Agent) core.Scheduler {
	return &byType{
		order:         core.CanonicalTypes(union...),
		shuffleTypes:  shuffleTypes,
		shuffleAgents: shuffleAgents,
	}
}

// ByTypeOrdered schedules agents grouped by concrete runtime type with an
// explicit caller-provided partition order: all agents of the first
// prototype's type precede all of the second's, and so on. With
// shuffleAgents the ids inside each partition are freshly shuffled per
// invocation while partition membership stays fixed.
func ByTypeOrdered(shuffleAgents bool, order ...core.Agent) core.Scheduler {
	names := make([]string, 0, len(order))
	seen := make(map[string]struct{}, len(order))
	for _, p := range order {
		name := core.TypeName(p)
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return &byType{order: names, shuffleAgents: shuffleAgents}
}

// Schedule implements core.Scheduler.
func (s *byType) Schedule(m *core.Model) []int {
	partitions := make(map[string][]int, len(s.order))
	for _, id := range m.IDs() {
		a, ok := m.Agent(id)
		if !ok {
			continue
		}
		name := core.TypeName(a)
		partitions[name] = append(partitions[name], id)
	}

	order := s.order
	if s.shuffleTypes {
		order = make([]string, len(s.order))
		copy(order, s.order)
		m.Rand().Shuffle(len(order), func(i, j int) {
			order[i], order[j] = order[j], order[i]
		})
	}

	var ids []int
	for _, name := range order {
		part := partitions[name]
		if s.shuffleAgents {
			m.Rand().Shuffle(len(part), func(i, j int) {
				part[i], part[j] = part[j], part[i]
			})
		}
		ids = append(ids, part...)
	}

	return ids
}
