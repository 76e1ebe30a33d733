package entity

type PricingFeature struct {
	Feature     string `json:"feature" validate:"required"`
	Description string `json:"description,omitempty"`
}

type PricingPackage struct {
	Document
	PackageName string           `json:"packageName" validate:"required"`
	Image       *Image           `json:"image,omitempty"`
	Price       string           `json:"price" validate:"required"`
	Features    []PricingFeature `json:"features" validate:"min=1,dive"`
	IsPopular   bool             `json:"isPopular"`
	CTAButton   *CTAButton       `json:"ctaButton,omitempty"`
	Order       int              `json:"order"`
	IsActive    bool             `json:"isActive"`
}
