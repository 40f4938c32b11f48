package normalization

import "strings"

// providerAliases maps the provider identifiers tenants write in their
// configuration to the canonical adapter keys. Centralized here so the
// registry and config tooling agree on spelling.
var providerAliases = map[string]string{
	// Booqable
	"booqable": "booqable",

	// Wix Velo sites (served by the universal adapter)
	"wix":      "wix",
	"wix-velo": "wix",
	"wixvelo":  "wix",
	"velo":     "wix",

	// Arbitrary REST APIs (universal adapter, no Wix URL rewriting)
	"generic":   "generic",
	"rest":      "generic",
	"api":       "generic",
	"universal": "generic",

	// Upstreams that already speak the grid schema
	"custom":       "custom",
	"passthrough":  "custom",
	"pass-through": "custom",
	"external":     "custom",

	// WordPress installs are pointed at an external endpoint too
	"wordpress": "wordpress",
	"wp":        "wordpress",

	// Demo data
	"mock":   "mock",
	"demo":   "mock",
	"sample": "mock",
}

// NormalizeProvider converts a tenant-supplied provider identifier into its
// canonical form, tolerating case, whitespace, and underscore separators.
//
// Example:
//
//	NormalizeProvider("Wix_Velo") => "wix"
//	NormalizeProvider("REST") => "generic"
func NormalizeProvider(raw string) string {
	trimmed := strings.ToLower(strings.TrimSpace(raw))
	normalized := strings.ReplaceAll(trimmed, "_", "-")
	if canonical, found := providerAliases[normalized]; found {
		return canonical
	}
	if canonical, found := providerAliases[trimmed]; found {
		return canonical
	}
	return normalized
}

// IsValidProvider checks whether the identifier resolves to a known adapter key.
func IsValidProvider(raw string) bool {
	switch NormalizeProvider(raw) {
	case "booqable", "wix", "generic", "custom", "wordpress", "mock":
		return true
	}
	return false
}
