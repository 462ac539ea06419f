package modules

// Version identifies the route group a module is registering on.
type Version int

const (
	// VersionBase is the unversioned /api group.
	VersionBase Version = iota
	// VersionV1 is /api/v1.
	VersionV1
)

