package entity

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validPost() BlogPost {
	now := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	return BlogPost{
		Title:         "Why SEO matters",
		Slug:          Slug{Current: "why-seo-matters"},
		Excerpt:       "Short summary",
		FeaturedImage: &Image{Asset: &ImageAsset{Ref: "image-abc-800x600-jpg"}},
		PublishedAt:   &now,
		Category:      "seo",
	}
}

func TestBlogPostValidation(t *testing.T) {
	post := validPost()
	assert.NoError(t, Validate(&post))

	long := validPost()
	long.Excerpt = strings.Repeat("x", 201)
	assert.Error(t, Validate(&long))

	noSlug := validPost()
	noSlug.Slug = Slug{}
	assert.Error(t, Validate(&noSlug))

	badCategory := validPost()
	badCategory.Category = "gardening"
	assert.Error(t, Validate(&badCategory))
}

func TestBlogPostDefaults(t *testing.T) {
	post := validPost()
	post.ApplyDefaults()
	assert.Equal(t, DefaultBlogAuthor, post.Author)
	assert.Equal(t, DefaultReadTime, post.ReadTime)
}

func TestPricingPackageRequiresFeature(t *testing.T) {
	pkg := PricingPackage{PackageName: "Starter", Price: "Rp 5.000.000"}
	assert.Error(t, Validate(&pkg))

	pkg.Features = []PricingFeature{{Feature: "Landing page"}}
	assert.NoError(t, Validate(&pkg))
}

func TestHeroButtonVariant(t *testing.T) {
	hero := Hero{Title: "We build brands", CTAButtons: []CTAButton{{Label: "Talk", Link: "/kontak", Variant: "neon"}}}
	assert.Error(t, Validate(&hero))

	hero.CTAButtons[0].Variant = "outline"
	assert.NoError(t, Validate(&hero))
}
