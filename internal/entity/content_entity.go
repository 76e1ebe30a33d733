package entity

import "time"

// Shared CMS value types.

type Slug struct {
	Current string `json:"current" validate:"required,max=96"`
}

type ImageAsset struct {
	Ref  string `json:"_ref"`
	Type string `json:"_type,omitempty"`
}

type Image struct {
	Asset   *ImageAsset `json:"asset,omitempty"`
	Alt     string      `json:"alt,omitempty"`
	Caption string      `json:"caption,omitempty"`
	// URL is filled in after fetch from the asset reference.
	URL string `json:"url,omitempty"`
}

// HasAsset reports whether the image points at an uploaded asset.
func (i *Image) HasAsset() bool {
	return i != nil && i.Asset != nil && i.Asset.Ref != ""
}

type CTAButton struct {
	Label      string `json:"label" validate:"required"`
	Link       string `json:"link" validate:"required"`
	IsExternal bool   `json:"isExternal,omitempty"`
	Variant    string `json:"variant,omitempty" validate:"omitempty,oneof=primary secondary outline"`
}

// Block is one portable-text or custom block of rich content. Content is
// passed through to the page as-is.
type Block map[string]interface{}

type Document struct {
	ID        string     `json:"_id"`
	Type      string     `json:"_type,omitempty"`
	CreatedAt *time.Time `json:"_createdAt,omitempty"`
	UpdatedAt *time.Time `json:"_updatedAt,omitempty"`
}
