package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category   Category
	Message    string
	Detail     string
	Suggestion string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// Config errors (H001-H099)

	"H001": {
		Category:   CategoryConfig,
		Message:    "hashnav.json not found",
		Detail:     "The current directory does not contain a hashnav.json project file.",
		Suggestion: "Run the command from the project root.",
	},
	"H002": {
		Category:   CategoryConfig,
		Message:    "hashnav.json is not valid JSON",
		Suggestion: "Check the file for trailing commas or unquoted keys.",
	},
	"H003": {
		Category: CategoryConfig,
		Message:  "invalid configuration value",
	},

	// Dev server errors (H101-H199)

	"H101": {
		Category:   CategoryDev,
		Message:    "app directory does not exist",
		Detail:     "The dev server serves a built wasm app directory, which was not found.",
		Suggestion: "Build your app first, or set \"app\" in hashnav.json.",
	},
	"H102": {
		Category: CategoryDev,
		Message:  "dev server failed to start",
	},

	// Deploy errors (H201-H299)

	"H201": {
		Category:   CategoryDeploy,
		Message:    "no deploy bucket configured",
		Suggestion: "Set \"deploy.bucket\" in hashnav.json or pass --bucket.",
	},
	"H202": {
		Category: CategoryDeploy,
		Message:  "deploy upload failed",
	},
}
