package utils

func Map[A any, B any](input []A, mapper func(A) B) []B {
	output := make([]B, len(input))
	for i, item := range input {
		output[i] = mapper(item)
	}
	return output
}

func Filter[A any](input []A, filter func(A) bool) []A {
	output := make([]A, 0)
	for _, item := range input {
		if filter(item) {
			output = append(output, item)
		}
	}
	return output
}

func Contains[A comparable](input []A, item A) bool {
	for _, i := range input {
		if i == item {
			return true
		}
	}
	return false
}

// Uniques keeps the first occurrence of every item, preserving input order.
func Uniques[A comparable](input []A) []A {
	seen := make(map[A]bool, len(input))
	output := make([]A, 0, len(input))
	for _, item := range input {
		if seen[item] {
			continue
		}
		seen[item] = true
		output = append(output, item)
	}
	return output
}

func KeyBy[K comparable, V any](input []V, key func(V) K) map[K]V {
	output := make(map[K]V, len(input))
	for _, item := range input {
		output[key(item)] = item
	}
	return output
}

func GroupBy[K comparable, V any](input []V, key func(V) K) map[K][]V {
	output := make(map[K][]V)
	for _, item := range input {
		k := key(item)
		output[k] = append(output[k], item)
	}
	return output
}
