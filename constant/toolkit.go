package constant

// OpenXR Toolkit layout in the per-user settings store.
const (
	// RootPath is the key holding one sub-key per configured application.
	RootPath = `SOFTWARE\OpenXR_Toolkit`

	// DefaultModule is the module targeted when none is given.
	DefaultModule = "DCS World"

	// PathSeparator joins key names into store paths.
	PathSeparator = `\`
)

// Store backend identifiers.
const (
	BackendRegistry = "registry"
	BackendFile     = "file"
	BackendMemory   = "memory"
)
