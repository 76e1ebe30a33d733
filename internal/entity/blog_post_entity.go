package entity

import "time"

const DefaultBlogAuthor = "Stratigo Team"

const DefaultReadTime = 5

type BlogPost struct {
	Document
	Title         string     `json:"title" validate:"required"`
	Slug          Slug       `json:"slug" validate:"required"`
	Excerpt       string     `json:"excerpt" validate:"required,max=200"`
	FeaturedImage *Image     `json:"featuredImage" validate:"required"`
	Author        string     `json:"author,omitempty"`
	PublishedAt   *time.Time `json:"publishedAt" validate:"required"`
	Category      string     `json:"category,omitempty" validate:"omitempty,oneof=web-design development seo marketing business tips-tricks"`
	Tags          []string   `json:"tags,omitempty"`
	Content       []Block    `json:"content,omitempty"`
	ReadTime      int        `json:"readTime,omitempty" validate:"omitempty,min=1"`
	IsFeatured    bool       `json:"isFeatured"`
	IsActive      bool       `json:"isActive"`
}

// ApplyDefaults fills the values the studio would have initialised.
func (p *BlogPost) ApplyDefaults() {
	if p.Author == "" {
		p.Author = DefaultBlogAuthor
	}
	if p.ReadTime == 0 {
		p.ReadTime = DefaultReadTime
	}
}
