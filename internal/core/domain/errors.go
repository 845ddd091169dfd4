package domain

import "go.trai.ch/zerr"

var (
	// ErrParse is returned when a specification's text cannot be parsed as
	// an attribute document.
	ErrParse = zerr.New("failed to parse specification")

	// ErrSchema is returned when an attribute tree does not match a node
	// variant's expectations: a required key is missing, or a value has the
	// wrong shape.
	ErrSchema = zerr.New("specification does not match expected schema")

	// ErrUnknownKind is returned when an attribute keyword names neither a
	// registered node kind nor a registered plugin.
	ErrUnknownKind = zerr.New("unknown node kind")

	// ErrDuplicateTarget is returned when two nodes are produced with the
	// same full_path.
	ErrDuplicateTarget = zerr.New("duplicate target")

	// ErrUnresolvedDependency is returned when a dep_target has no matching
	// node once the BFS closure is complete.
	ErrUnresolvedDependency = zerr.New("unresolved dependency")

	// ErrPluginLoop is returned when plugin expansion of an attribute
	// object does not converge within the iteration bound.
	ErrPluginLoop = zerr.New("plugin expansion did not converge")

	// ErrSourceUnavailable is returned when a SourceProvider cannot fetch or
	// check out a file's backing storage.
	ErrSourceUnavailable = zerr.New("source unavailable")

	// ErrIO is returned when a SourceProvider cannot read a file's
	// contents once its storage has been initialized.
	ErrIO = zerr.New("io error reading source")

	// ErrInvalidTarget is returned when a target string cannot be parsed
	// into a TargetInfo.
	ErrInvalidTarget = zerr.New("invalid target reference")

	// ErrNoTargetsSpecified is returned when a run is requested with an
	// empty target list.
	ErrNoTargetsSpecified = zerr.New("no targets specified")
)
