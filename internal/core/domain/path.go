package domain

import "strings"

// Path is an ancestry sequence of libraries from a top-level dependency to
// (but not including) the current one. The empty path denotes a top dep.
type Path []Lib

// pathSep never occurs in a qualified library name.
const pathSep = "\x1f"

// Key returns a canonical map key for the path.
func (p Path) Key() string {
	if len(p) == 0 {
		return ""
	}
	parts := make([]string, len(p))
	for i, lib := range p {
		parts[i] = string(lib)
	}
	return strings.Join(parts, pathSep)
}

// Parent returns the path with its last element removed.
// Parent of the empty path is the empty path.
func (p Path) Parent() Path {
	if len(p) == 0 {
		return nil
	}
	return p[:len(p)-1]
}

// Last returns the final library of the path, or "" for the empty path.
func (p Path) Last() Lib {
	if len(p) == 0 {
		return ""
	}
	return p[len(p)-1]
}

// Child returns a new path extended by lib. The receiver is not modified.
func (p Path) Child(lib Lib) Path {
	child := make(Path, len(p)+1)
	copy(child, p)
	child[len(p)] = lib
	return child
}

func (p Path) String() string {
	if len(p) == 0 {
		return "<top>"
	}
	parts := make([]string, len(p))
	for i, lib := range p {
		parts[i] = string(lib)
	}
	return strings.Join(parts, " -> ")
}

// Dep pairs a library with the coordinate that introduced it.
type Dep struct {
	Lib   Lib
	Coord *Coord
}

// DepPath is a pathed dependency: the ancestry of (lib, coord) pairs from
// a top dependency down to the node currently being considered.
type DepPath []Dep

// Leaf returns the node under consideration.
func (p DepPath) Leaf() Dep {
	return p[len(p)-1]
}

// Parents returns the library ancestry above the leaf.
func (p DepPath) Parents() Path {
	if len(p) <= 1 {
		return nil
	}
	libs := make(Path, len(p)-1)
	for i := range p[:len(p)-1] {
		libs[i] = p[i].Lib
	}
	return libs
}

// Child returns a new pathed dependency extended by dep.
func (p DepPath) Child(dep Dep) DepPath {
	child := make(DepPath, len(p)+1)
	copy(child, p)
	child[len(p)] = dep
	return child
}
