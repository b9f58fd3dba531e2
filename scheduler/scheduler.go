package scheduler

import (
	"math"
	"reflect"
	"sort"

	"github.com/hupe1980/agentsim/core"
)

// ByID schedules all current agents by ascending id. Deterministic, no
// randomness.
func ByID() core.Scheduler {
	return core.ScheduleFunc(func(m *core.Model) []int {
		ids := m.IDs()
		sort.Ints(ids)
		return ids
	})
}

// Fastest schedules agents in the container's native iteration order with
// no reordering: fastest because it performs no extra work. The order is a
// container implementation detail (insertion order for the mapping variant,
// index order for the sequence variant) and must not be assumed stable
// across additions or removals.
func Fastest() core.Scheduler {
	return core.ScheduleFunc(func(m *core.Model) []int {
		return m.IDs()
	})
}

// Randomly schedules a uniformly random permutation of all current agents,
// freshly shuffled on every invocation using the model's random source.
func Randomly() core.Scheduler {
	return core.ScheduleFunc(func(m *core.Model) []int {
		ids := m.IDs()
		m.Rand().Shuffle(len(ids), func(i, j int) {
			ids[i], ids[j] = ids[j], ids[i]
		})
		return ids
	})
}

// Partially schedules a uniformly random sample, without replacement, of
// round(fraction x populationSize) agents. The fraction is fixed at
// construction; the sample is redrawn every invocation.
func Partially(fraction float64) core.Scheduler {
	return core.ScheduleFunc(func(m *core.Model) []int {
		ids := m.IDs()
		k := int(math.Round(fraction * float64(len(ids))))
		if k <= 0 {
			return nil
		}
		if k > len(ids) {
			k = len(ids)
		}
		sample := make([]int, 0, k)
		for _, idx := range m.Rand().Perm(len(ids))[:k] {
			sample = append(sample, ids[idx])
		}
		return sample
	})
}

// ByProperty schedules all agents sorted ascending by a numeric value read
// per agent through the accessor. The sort is stable, so ties keep the
// container's iteration order. The population and values are snapshot at
// call time.
func ByProperty(value func(a core.Agent) float64) core.Scheduler {
	return core.ScheduleFunc(func(m *core.Model) []int {
		ids := m.IDs()
		keys := make(map[int]float64, len(ids))
		for _, id := range ids {
			if a, ok := m.Agent(id); ok {
				keys[id] = value(a)
			}
		}
		sort.SliceStable(ids, func(i, j int) bool {
			return keys[ids[i]] < keys[ids[j]]
		})
		return ids
	})
}

// ByPropertyKey is ByProperty reading the named struct field (an int or
// float kind) from each agent via reflection. Missing or non-numeric fields
// sort as zero.
func ByPropertyKey(field string) core.Scheduler {
	return ByProperty(func(a core.Agent) float64 {
		v := reflect.ValueOf(a)
		for v.Kind() == reflect.Ptr {
			v = v.Elem()
		}
		if v.Kind() != reflect.Struct {
			return 0
		}
		f := v.FieldByName(field)
		if !f.IsValid() {
			return 0
		}
		switch f.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return float64(f.Int())
		case reflect.Float32, reflect.Float64:
			return f.Float()
		default:
			return 0
		}
	})
}
