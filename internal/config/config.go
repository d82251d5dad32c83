// Package config loads generator settings from defaults, an optional YAML
// file, NULLABLEGEN_* environment variables and explicit CLI flags.
package config

// DefaultFile is looked up in the working directory when no --config path is given.
const DefaultFile = ".nullablegen.yaml"

// Container kinds understood by the generator.
const (
	ContainerOptional = "optional"
	ContainerPointer  = "pointer"
)

// Config holds all generator settings.
type Config struct {
	// Container selects how absence is stored: optional.Value[T] or *T.
	Container string `koanf:"container" validate:"oneof=optional pointer"`
	// OptionalImport is the import path of the optional package used by generated code.
	OptionalImport string `koanf:"optional_import" validate:"required"`
	// Suffix is appended to the lower-cased type name to form the output file name.
	Suffix string `koanf:"suffix" validate:"required,endswith=.go"`
	// Comments enables doc comments on generated declarations.
	Comments bool `koanf:"comments"`
	// Log configures the CLI logger.
	Log LogConfig `koanf:"log"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `koanf:"level" validate:"oneof=debug info warn error"`
	JSON   bool   `koanf:"json"`
	Source bool   `koanf:"source"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Container:      ContainerOptional,
		OptionalImport: "nullable-generator/optional",
		Suffix:         "_nullable.go",
		Comments:       true,
		Log: LogConfig{
			Level: "info",
		},
	}
}

// envMappings maps environment variables onto koanf paths.
var envMappings = map[string]string{
	"NULLABLEGEN_CONTAINER":       "container",
	"NULLABLEGEN_OPTIONAL_IMPORT": "optional_import",
	"NULLABLEGEN_SUFFIX":          "suffix",
	"NULLABLEGEN_COMMENTS":        "comments",
	"NULLABLEGEN_LOG_LEVEL":       "log.level",
	"NULLABLEGEN_LOG_JSON":        "log.json",
	"NULLABLEGEN_LOG_SOURCE":      "log.source",
}

// EnvPrefix is shared by every supported environment variable.
const EnvPrefix = "NULLABLEGEN_"
