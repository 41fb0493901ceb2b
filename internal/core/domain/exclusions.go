package domain

// ExclusionSet records, per ancestry path, the libraries excluded from
// expansion beneath that path (not at the path itself).
type ExclusionSet map[string]map[Lib]bool

// NewExclusionSet returns an empty exclusion set.
func NewExclusionSet() ExclusionSet {
	return make(ExclusionSet)
}

// Add records libs as excluded beneath path. Classifier suffixes are
// stripped so classifier variants share an entry with the base library.
func (x ExclusionSet) Add(path Path, libs []Lib) {
	if len(libs) == 0 {
		return
	}
	key := path.Key()
	set, ok := x[key]
	if !ok {
		set = make(map[Lib]bool, len(libs))
		x[key] = set
	}
	for _, lib := range libs {
		set[lib.Base()] = true
	}
}

// Excluded reports whether lib is excluded at path: true iff any prefix of
// path, including path itself, carries lib in its set.
func (x ExclusionSet) Excluded(path Path, lib Lib) bool {
	if len(x) == 0 {
		return false
	}
	base := lib.Base()
	for p := path; ; p = p.Parent() {
		if x[p.Key()][base] {
			return true
		}
		if len(p) == 0 {
			return false
		}
	}
}
