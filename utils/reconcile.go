package utils

// Diff describes how a stored set has to change to become the incoming set.
// Retained pairs the stored item with the incoming item that replaces it.
type Diff[V any] struct {
	Added    []V
	Removed  []V
	Retained []Retained[V]
}

type Retained[V any] struct {
	Existing V
	Incoming V
}

func (d Diff[V]) IsEmpty() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0 && len(d.Retained) == 0
}

// Reconcile computes the difference between a stored set and an incoming set,
// matching items by key. Duplicate incoming keys collapse to the last one.
func Reconcile[K comparable, V any](existing []V, incoming []V, key func(V) K) Diff[V] {
	diff := Diff[V]{
		Added:    make([]V, 0),
		Removed:  make([]V, 0),
		Retained: make([]Retained[V], 0),
	}
	existingByKey := KeyBy(existing, key)

	incomingByKey := make(map[K]V, len(incoming))
	order := make([]K, 0, len(incoming))
	for _, item := range incoming {
		k := key(item)
		if _, ok := incomingByKey[k]; !ok {
			order = append(order, k)
		}
		incomingByKey[k] = item
	}

	for _, k := range order {
		item := incomingByKey[k]
		if stored, ok := existingByKey[k]; ok {
			diff.Retained = append(diff.Retained, Retained[V]{Existing: stored, Incoming: item})
		} else {
			diff.Added = append(diff.Added, item)
		}
	}
	for _, item := range existing {
		if _, ok := incomingByKey[key(item)]; !ok {
			diff.Removed = append(diff.Removed, item)
		}
	}
	return diff
}
