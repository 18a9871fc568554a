// Package key defines the canonical set of configuration identifiers used for oxrcfg's own settings.
package key

// DefinedFieldsCount represents the total cardinality of the application configuration schema.
const DefinedFieldsCount = 10

// Module Selection - these keys choose the toolkit module targeted by default.
const (
	ModuleDefault = "module.default"
)

// Settings Store - these keys select and locate the backend holding toolkit settings.
const (
	StoreBackend = "store.backend"
	StoreRoot    = "store.root"
	StoreFile    = "store.file"
)

// Value Translation - these keys govern how stored codes are decoded into labels.
const (
	MapperStrict = "mapper.strict"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these settings govern terminal rendering.
const (
	CliColored   = "cli.colored"
	IconsVariant = "icons.variant"
)
