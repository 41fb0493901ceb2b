package domain

// LibMap is the final projection of a resolution: exactly one coordinate
// per library, each annotated with the direct parents through which it was
// selected.
type LibMap map[Lib]*Coord

// LibMapFrom projects the terminal version map to a lib map. For each
// library with a selection it emits the selected coordinate, with
// Dependents holding the last element of every still-selected introducing
// path (deduplicated, first-seen order). Paths that a later selection
// change invalidated are pruned here; a non-top library whose every
// introducing path is invalid is dropped entirely.
func LibMapFrom(vm VersionMap) LibMap {
	lm := make(LibMap, len(vm))
	for lib, e := range vm {
		if e.Select == "" {
			continue
		}
		var dependents []Lib
		seen := make(map[Lib]bool)
		selected := false
		for _, p := range e.Paths[e.Select] {
			if !vm.PathSelected(p) {
				continue
			}
			selected = true
			if last := p.Last(); last != "" && !seen[last] {
				seen[last] = true
				dependents = append(dependents, last)
			}
		}
		if !selected && !e.Top {
			continue
		}
		coord := e.Versions[e.Select].Clone()
		coord.Dependents = dependents
		lm[lib] = coord
	}
	return lm
}

// Libs returns the library names in unspecified order.
func (lm LibMap) Libs() []Lib {
	libs := make([]Lib, 0, len(lm))
	for lib := range lm {
		libs = append(libs, lib)
	}
	return libs
}
