// Package assets provides HTML page templates for site generation.
//
// The package implements a layered loading system:
//
//	Loader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (built-in templates)
//	    ├── FilesystemLoader  - loads from a custom directory on disk
//	    └── Resolver          - combines both with custom-first fallback
//
// Templates live under {basePath}/templates/{name}.html and contain the
// literal {{ Title }} and {{ Content }} placeholders.
//
// Template names are validated to prevent path traversal, and
// FilesystemLoader resolves symlinks and verifies paths stay within its
// base directory.
package assets
