package errors

import "sort"

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Runtime Errors (E001-E099)
	// ============================================

	"E001": {
		Category: CategoryRuntime,
		Message:  "Unbalanced collector stack",
		Detail:   "A dependency collector was popped that was never pushed on this goroutine. Use reactive.WithCollector so push and pop always pair, even across panics.",
		DocURL:   "https://sitewinder.dev/docs/errors/E001",
	},
	"E002": {
		Category: CategoryRuntime,
		Message:  "Mount host not found",
		Detail:   "The selector or element given to Mount did not resolve to a live document node.",
		DocURL:   "https://sitewinder.dev/docs/errors/E002",
	},
	"E003": {
		Category: CategoryRuntime,
		Message:  "Component already mounted",
		Detail:   "A component instance can be mounted once. Create a new instance, or destroy this one first.",
		DocURL:   "https://sitewinder.dev/docs/errors/E003",
	},
	"E004": {
		Category: CategoryRuntime,
		Message:  "Component destroyed",
		Detail:   "A destroyed component cannot be mounted again. Construct a fresh instance instead.",
		DocURL:   "https://sitewinder.dev/docs/errors/E004",
	},

	// ============================================
	// Config Errors (E100-E199)
	// ============================================

	"E101": {
		Category: CategoryConfig,
		Message:  "Project configuration not found",
		Detail:   "No sitewinder.yaml was found in this directory or any parent.",
		DocURL:   "https://sitewinder.dev/docs/errors/E101",
	},
	"E102": {
		Category: CategoryConfig,
		Message:  "Invalid project configuration",
		Detail:   "sitewinder.yaml could not be parsed.",
		DocURL:   "https://sitewinder.dev/docs/errors/E102",
	},
	"E103": {
		Category: CategoryConfig,
		Message:  "Invalid configuration value",
		DocURL:   "https://sitewinder.dev/docs/errors/E103",
	},

	// ============================================
	// Build Errors (E200-E299)
	// ============================================

	"E201": {
		Category: CategoryBuild,
		Message:  "Build failed",
		DocURL:   "https://sitewinder.dev/docs/errors/E201",
	},
	"E202": {
		Category: CategoryBuild,
		Message:  "Cannot write build output",
		Detail:   "The output directory could not be created or written.",
		DocURL:   "https://sitewinder.dev/docs/errors/E202",
	},

	// ============================================
	// Dev Server Errors (E300-E399)
	// ============================================

	"E301": {
		Category: CategoryDev,
		Message:  "Dev server failed to start",
		Detail:   "The port may already be in use. Pick another with --port or the dev.port config key.",
		DocURL:   "https://sitewinder.dev/docs/errors/E301",
	},
	"E302": {
		Category: CategoryDev,
		Message:  "File watcher failed",
		DocURL:   "https://sitewinder.dev/docs/errors/E302",
	},

	// ============================================
	// Deploy Errors (E400-E499)
	// ============================================

	"E401": {
		Category: CategoryDeploy,
		Message:  "Deploy target not configured",
		Detail:   "The deploy command needs a bucket. Set deploy.bucket in sitewinder.yaml or pass --bucket.",
		DocURL:   "https://sitewinder.dev/docs/errors/E401",
	},
	"E402": {
		Category: CategoryDeploy,
		Message:  "Upload failed",
		DocURL:   "https://sitewinder.dev/docs/errors/E402",
	},
	"E403": {
		Category: CategoryDeploy,
		Message:  "Nothing to deploy",
		Detail:   "The build output directory does not exist. Run the build command first.",
		DocURL:   "https://sitewinder.dev/docs/errors/E403",
	},

	// ============================================
	// CLI Errors (E500-E599)
	// ============================================

	"E501": {
		Category: CategoryCLI,
		Message:  "Project directory already exists",
		DocURL:   "https://sitewinder.dev/docs/errors/E501",
	},
	"E502": {
		Category: CategoryCLI,
		Message:  "Cannot create project",
		DocURL:   "https://sitewinder.dev/docs/errors/E502",
	},
}

// GetAllCodes returns all registered error codes, sorted.
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

// Register adds or replaces an error template at runtime.
func Register(code string, template ErrorTemplate) {
	registry[code] = template
}
