package domain

// TargetType identifies which kind of platform content is being processed.
// The set is closed: preprocessing profiles exist only for these four types.
type TargetType string

const (
	// TargetTypeProduct is a product listing description.
	TargetTypeProduct TargetType = "product"
	// TargetTypePost is a long-form article or blog post.
	TargetTypePost TargetType = "post"
	// TargetTypeGalleryItem is a gallery image caption or alt text.
	TargetTypeGalleryItem TargetType = "gallery_item"
	// TargetTypeComment is a user comment, typically short and informal.
	TargetTypeComment TargetType = "comment"
)

// AllTargetTypes returns the closed set of supported target types
// in their canonical display order.
func AllTargetTypes() []TargetType {
	return []TargetType{
		TargetTypeProduct,
		TargetTypePost,
		TargetTypeGalleryItem,
		TargetTypeComment,
	}
}

// ParseTargetType converts a raw string into a TargetType.
// Returns ErrUnknownTargetType for anything outside the closed set.
func ParseTargetType(s string) (TargetType, error) {
	t := TargetType(s)
	if !t.IsValid() {
		return "", ErrUnknownTargetType
	}
	return t, nil
}

// IsValid reports whether the type is one of the supported four.
func (t TargetType) IsValid() bool {
	switch t {
	case TargetTypeProduct, TargetTypePost, TargetTypeGalleryItem, TargetTypeComment:
		return true
	}
	return false
}

// String returns the wire/config representation of the type.
func (t TargetType) String() string {
	return string(t)
}
