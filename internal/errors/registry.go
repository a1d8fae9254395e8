package errors

import "sort"

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Reactive engine (R001-R019)
	// ============================================

	"R001": {
		Category: CategoryConfig,
		Message:  "Getter is nil",
		Detail:   "Watch and NewComputed need a getter function to discover dependencies.",
	},
	"R002": {
		Category: CategoryConfig,
		Message:  "Effect callback is nil",
		Detail:   "Watch needs a callback to invoke when a dependency changes.",
	},
	"R003": {
		Category: CategoryRuntime,
		Message:  "Nested tracking pass",
		Detail:   "A Watch or NewComputed call started while another tracking pass of the same kind was running on this goroutine. Listeners would be registered under the wrong key.",
	},
	"R004": {
		Category: CategoryRuntime,
		Message:  "Path not found",
		Detail:   "The path does not resolve to a value in the reactive tree.",
	},
	"R005": {
		Category: CategoryRuntime,
		Message:  "Path does not address a container",
		Detail:   "Every segment but the last must resolve to an object or an array.",
	},

	// ============================================
	// Configuration (C001-C019)
	// ============================================

	"C001": {
		Category: CategoryConfig,
		Message:  "Config file not found",
		Detail:   "No reactkit.json or reactkit.yaml was found.",
	},
	"C002": {
		Category: CategoryConfig,
		Message:  "Invalid config file",
		Detail:   "The configuration file could not be read or parsed.",
	},
	"C003": {
		Category: CategoryConfig,
		Message:  "Invalid log level",
		Detail:   "Log level must be one of debug, info, warn or error.",
	},
	"C004": {
		Category: CategoryConfig,
		Message:  "Invalid snapshot settings",
		Detail:   "The snapshot driver or codec is unknown, or a required field for the driver is empty.",
	},
	"C005": {
		Category: CategoryConfig,
		Message:  "Invalid inspector address",
		Detail:   "The inspector address must be in host:port form.",
	},

	// ============================================
	// Storage (S001-S019)
	// ============================================

	"S001": {
		Category: CategoryStorage,
		Message:  "Snapshot not found",
		Detail:   "No snapshot is stored under this name.",
	},
	"S002": {
		Category: CategoryStorage,
		Message:  "Snapshot write failed",
		Detail:   "The snapshot store rejected the write.",
	},
	"S003": {
		Category: CategoryStorage,
		Message:  "Snapshot decode failed",
		Detail:   "The stored snapshot could not be decoded with the configured codec.",
	},

	// ============================================
	// Inspector protocol (P001-P019)
	// ============================================

	"P001": {
		Category: CategoryProtocol,
		Message:  "Invalid request body",
		Detail:   "The request body must be a JSON value.",
	},
	"P002": {
		Category: CategoryProtocol,
		Message:  "WebSocket upgrade failed",
		Detail:   "The connection could not be upgraded to a WebSocket.",
	},

	// ============================================
	// CLI (X001-X019)
	// ============================================

	"X001": {
		Category: CategoryCLI,
		Message:  "Invalid script",
		Detail:   "The replay script could not be parsed. Each step needs an op (set or delete) and a path.",
	},
	"X002": {
		Category: CategoryCLI,
		Message:  "Invalid state file",
		Detail:   "The state file must contain a JSON or YAML document.",
	},
}

// GetAllCodes returns all registered error codes in sorted order.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}

// Register adds a custom error template.
func Register(code string, template ErrorTemplate) {
	registry[code] = template
}
