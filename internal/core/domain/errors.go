package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidLib is returned for library names that are not of the form
	// "group/artifact".
	ErrInvalidLib = zerr.New("invalid library name")

	// ErrMissingCoord is returned when a dependency carries no coordinate
	// and no default coordinate applies.
	ErrMissingCoord = zerr.New("no coordinate and no default coordinate")

	// ErrUnknownProcurer is returned when no extension is registered for a
	// coordinate's procurer tag.
	ErrUnknownProcurer = zerr.New("unknown procurer")

	// ErrUnknownManifest is returned when no reader is registered for a
	// coordinate's manifest kind.
	ErrUnknownManifest = zerr.New("unknown manifest kind")

	// ErrProcurerMismatch is returned when two coordinates of different
	// procurers are compared for dominance.
	ErrProcurerMismatch = zerr.New("cannot compare coordinates of different procurers")

	// ErrUnknownAlias is returned when combining an alias that the
	// manifest does not define.
	ErrUnknownAlias = zerr.New("unknown alias")

	// ErrUnknownAliasKey is returned for alias bodies containing keys the
	// merge rules do not recognize.
	ErrUnknownAliasKey = zerr.New("unknown alias key")

	// ErrUnknownPathKey is returned when classpath assembly chases an
	// alias key that resolves to nothing.
	ErrUnknownPathKey = zerr.New("unknown path alias key")

	// ErrExpansionOverflow is returned when the expander exceeds its
	// iteration cap, which bounds pathological inputs.
	ErrExpansionOverflow = zerr.New("dependency expansion exceeded iteration limit")

	// ErrInvariant marks a broken internal invariant of the version map.
	// It indicates a bug, not a user error.
	ErrInvariant = zerr.New("version map invariant violated")
)
