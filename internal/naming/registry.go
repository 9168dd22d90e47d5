package naming

import "strconv"

// registry tracks how many times each candidate name has been claimed
// within one naming pass.
type registry struct {
	counts map[string]int
}

func newRegistry() *registry {
	return &registry{counts: make(map[string]int)}
}

// claim returns name unchanged the first time it is seen and name-N for the
// Nth repeat. Suffixed names are not registered, so "blue-500-1" produced
// here can still coincide with a literal candidate "blue-500-1".
func (r *registry) claim(name string) string {
	n, seen := r.counts[name]
	if !seen {
		r.counts[name] = 0
		return name
	}
	n++
	r.counts[name] = n
	return name + "-" + strconv.Itoa(n)
}
