package assets

// DefaultTemplate is the name of the built-in page template.
const DefaultTemplate = "default"

// Loader defines the contract for loading page templates. Implementations
// may load from embedded assets, the filesystem, or elsewhere.
type Loader interface {
	// LoadTemplate loads an HTML template by name (without .html extension).
	// Returns ErrTemplateNotFound if the template doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadTemplate(name string) (string, error)
}
