package snippet

// SharedNetworkOption is the option key under which the surrounding system
// registers the ids of shared network snippets.
const SharedNetworkOption = "shared_network_snippets"

// Environment supplies the installation context a record cannot observe by
// itself. Records call it synchronously during field normalization and when
// computing the shared-network view; implementations must not block.
//
// Passing the environment in explicitly (rather than reading ambient
// globals) keeps records testable without standing up a host system.
type Environment interface {
	// IsNetworkAdmin reports whether the current execution context is a
	// network-wide administrative context. Consulted only when the
	// network field is written as unset.
	IsNetworkAdmin() bool

	// IsMultisite reports whether the installation runs in multi-site
	// mode. Consulted only when computing the shared-network view.
	IsMultisite() bool

	// SharedIDs returns the snippet ids registered under the given
	// option key.
	SharedIDs(option string) []uint
}

// StaticEnvironment is an Environment with fixed answers. It serves
// single-binary tools and tests; a hosted deployment wires its own
// implementation.
type StaticEnvironment struct {
	NetworkAdmin bool
	Multisite    bool
	Shared       map[string][]uint
}

func (e StaticEnvironment) IsNetworkAdmin() bool { return e.NetworkAdmin }

func (e StaticEnvironment) IsMultisite() bool { return e.Multisite }

func (e StaticEnvironment) SharedIDs(option string) []uint { return e.Shared[option] }
