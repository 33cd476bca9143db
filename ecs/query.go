package ecs

// IntersectEntities returns the ids present in every set. The smallest set
// drives the scan; a nil set or no sets gives nil.
func IntersectEntities(sets ...*SparseSet) []int {
	if len(sets) == 0 {
		return nil
	}
	smallest := 0
	for i, s := range sets {
		if s == nil {
			return nil
		}
		if s.Len() < sets[smallest].Len() {
			smallest = i
		}
	}

	out := make([]int, 0, sets[smallest].Len())
	for _, id := range sets[smallest].Entities() {
		inAll := true
		for i, s := range sets {
			if i != smallest && !s.Has(id) {
				inAll = false
				break
			}
		}
		if inAll {
			out = append(out, id)
		}
	}
	return out
}
