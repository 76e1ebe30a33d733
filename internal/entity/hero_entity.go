package entity

type HeroImage struct {
	Image       Image  `json:"image" validate:"required"`
	Orientation string `json:"orientation" validate:"required,oneof=portrait landscape"`
}

type Hero struct {
	Document
	Title           string      `json:"title" validate:"required"`
	Subtitle        string      `json:"subtitle,omitempty"`
	Description     string      `json:"description,omitempty"`
	BackgroundImage *Image      `json:"backgroundImage,omitempty"`
	ImageGallery    []HeroImage `json:"imageGallery,omitempty" validate:"omitempty,dive"`
	CTAButtons      []CTAButton `json:"ctaButtons,omitempty" validate:"omitempty,dive"`
	Alignment       string      `json:"alignment,omitempty" validate:"omitempty,oneof=left center right"`
	IsActive        bool        `json:"isActive"`
}

type CTA struct {
	Document
	Tagline         string `json:"tagline" validate:"required"`
	Description     string `json:"description" validate:"required"`
	ButtonText      string `json:"buttonText" validate:"required"`
	WhatsappLink    string `json:"whatsappLink" validate:"required,url"`
	BackgroundImage *Image `json:"backgroundImage,omitempty"`
	IsActive        bool   `json:"isActive"`
}

type PageSections struct {
	Document
	CaseStudiesTitle  string `json:"caseStudiesTitle" validate:"required"`
	DeliverablesTitle string `json:"deliverablesTitle" validate:"required"`
	CreateWithUsTitle string `json:"createWithUsTitle" validate:"required"`
	IsActive          bool   `json:"isActive"`
}
