package assets

import "fmt"

// MaxTemplateNameLength bounds template names; anything longer is not a
// name someone typed.
const MaxTemplateNameLength = 64

// ValidateAssetName checks that a template name is safe to splice into a
// filesystem path. Names are an allowlist: ASCII letters, digits, hyphen,
// and underscore. Everything else (separators, dots, traversal sequences,
// control characters) is rejected with ErrInvalidAssetName.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if len(name) > MaxTemplateNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidAssetName, MaxTemplateNameLength)
	}
	for i := 0; i < len(name); i++ {
		if !isNameByte(name[i]) {
			return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
		}
	}
	return nil
}

func isNameByte(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z':
		return true
	case c >= 'A' && c <= 'Z':
		return true
	case c >= '0' && c <= '9':
		return true
	case c == '-' || c == '_':
		return true
	}
	return false
}
