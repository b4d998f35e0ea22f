package core

// ConfigurationOption describes one piece of user-facing configuration:
// a CLI flag, its help text, and the type/default pflag should bind it as.
// It mirrors the shape hercules's pipeline item registry exposes per item,
// without the reflection-driven registry behind it — treediff has a fixed
// set of renderers, so static metadata is enough. The CLI's `--help` text
// comes from its own cobra flag definitions, not from these values.
type ConfigurationOption struct {
	Name        string
	Description string
	Flag        string
	Type        FieldType
	Default     interface{}
}

// FieldType enumerates the primitive shapes a ConfigurationOption can bind.
type FieldType int

const (
	// BoolConfigurationOption is a boolean flag.
	BoolConfigurationOption FieldType = iota
	// IntConfigurationOption is an integer-valued flag.
	IntConfigurationOption
	// StringConfigurationOption is a string-valued flag.
	StringConfigurationOption
)

// FormatName returns a human-readable name for the option's type.
func (t FieldType) FormatName() string {
	switch t {
	case BoolConfigurationOption:
		return "bool"
	case IntConfigurationOption:
		return "int"
	case StringConfigurationOption:
		return "string"
	default:
		return "unknown"
	}
}
