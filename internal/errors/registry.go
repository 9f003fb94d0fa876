package errors

import (
	"sort"
	"sync"
)

// Template defines a registered error type.
type Template struct {
	Category Category
	Message  string
	Detail   string
}

var (
	registryMu sync.RWMutex

	// registry maps error codes to their templates.
	registry = map[string]Template{
		// ============================================
		// Caller contract violations (E100-E199)
		// ============================================

		"E101": {
			Category: CategoryContract,
			Message:  "Value out of range",
			Detail:   "A typed markup helper was given a value outside its accepted range.",
		},

		// ============================================
		// Configuration errors (E200-E299)
		// ============================================

		"E201": {
			Category: CategoryConfig,
			Message:  "Invalid configuration",
		},
		"E202": {
			Category: CategoryConfig,
			Message:  "Failed to read configuration",
		},

		// ============================================
		// Export errors (E300-E399)
		// ============================================

		"E301": {
			Category: CategoryExport,
			Message:  "Failed to write exported page",
		},
		"E302": {
			Category: CategoryExport,
			Message:  "Failed to publish exported page",
		},

		// ============================================
		// Render errors (E400-E499)
		// ============================================

		"E401": {
			Category: CategoryRender,
			Message:  "Render failed",
			Detail:   "Writing markup to the output failed before the tree was complete.",
		},

		// ============================================
		// CLI errors (E500-E599)
		// ============================================

		"E501": {
			Category: CategoryCLI,
			Message:  "Unknown page",
		},
		"E502": {
			Category: CategoryCLI,
			Message:  "Unknown project template",
		},
		"E503": {
			Category: CategoryCLI,
			Message:  "File already exists",
			Detail:   "init never overwrites files. Remove them or pick another directory.",
		},
	}
)

// Lookup returns the template for an error code.
func Lookup(code string) (Template, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	t, ok := registry[code]
	return t, ok
}

// Register adds a new error template to the registry.
func Register(code string, template Template) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[code] = template
}

// Codes returns all registered error codes in sorted order.
func Codes() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
