package entity

const (
	DefaultContactTitle    = "Contact us"
	DefaultContactSubtitle = "Get in touch with us for any enquiries and questions"
)

type ContactCategory struct {
	Category string   `json:"category" validate:"required"`
	Email    string   `json:"email,omitempty" validate:"omitempty,email"`
	Phone    string   `json:"phone,omitempty"`
	Address  []string `json:"address,omitempty"`
}

type SocialLink struct {
	Platform string `json:"platform" validate:"required,oneof=behance instagram telegram linkedin twitter facebook"`
	URL      string `json:"url" validate:"required,url"`
}

type ContactPage struct {
	Document
	Title             string            `json:"title" validate:"required"`
	Subtitle          string            `json:"subtitle" validate:"required"`
	ContactCategories []ContactCategory `json:"contactCategories" validate:"required,dive"`
	WhatsappLink      string            `json:"whatsappLink,omitempty" validate:"omitempty,url"`
	SocialLinks       []SocialLink      `json:"socialLinks,omitempty" validate:"omitempty,dive"`
	Image             *Image            `json:"image" validate:"required"`
	IsActive          bool              `json:"isActive"`
}

func (c *ContactPage) ApplyDefaults() {
	if c.Title == "" {
		c.Title = DefaultContactTitle
	}
	if c.Subtitle == "" {
		c.Subtitle = DefaultContactSubtitle
	}
}
