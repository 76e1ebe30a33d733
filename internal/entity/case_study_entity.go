package entity

import "time"

const DefaultCaseStudyColor = "#0066CC"

type CaseStudy struct {
	Document
	Title           string `json:"title" validate:"required"`
	Client          string `json:"client,omitempty"`
	Highlight       string `json:"highlight,omitempty"`
	Description     string `json:"description,omitempty"`
	Image           *Image `json:"image" validate:"required"`
	BackgroundColor string `json:"backgroundColor,omitempty" validate:"omitempty,oneof=#0066CC #F5F5F5 #22C55E #F97316 #8B5CF6 #000000 #FFFFFF"`
	IsFeatured      bool   `json:"isFeatured"`
	Link            string `json:"link,omitempty" validate:"omitempty,url"`
	Order           int    `json:"order"`
	IsActive        bool   `json:"isActive"`
}

func (c *CaseStudy) ApplyDefaults() {
	if c.BackgroundColor == "" {
		c.BackgroundColor = DefaultCaseStudyColor
	}
}

// CaseStudyPage is the long-form case study served under /case-studies/:slug.
type CaseStudyPage struct {
	Document
	Title         string     `json:"title" validate:"required"`
	Slug          Slug       `json:"slug" validate:"required"`
	Excerpt       string     `json:"excerpt" validate:"required,max=200"`
	FeaturedImage *Image     `json:"featuredImage" validate:"required"`
	Client        string     `json:"client,omitempty"`
	Category      string     `json:"category,omitempty"`
	Tags          []string   `json:"tags,omitempty"`
	Content       []Block    `json:"content,omitempty"`
	PublishedAt   *time.Time `json:"publishedAt,omitempty"`
	IsActive      bool       `json:"isActive"`
}
