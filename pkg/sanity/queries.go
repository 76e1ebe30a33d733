package sanity

// GROQ queries used by the site. Only active documents are ever served.

const imageProjection = `{ asset, alt, caption }`

const HeroQuery = `*[_type == "hero" && isActive == true] | order(_createdAt desc) [0] {
  _id, _type, _createdAt, _updatedAt, title, subtitle, description,
  backgroundImage ` + imageProjection + `,
  imageGallery[] { image ` + imageProjection + `, orientation },
  ctaButtons[] { label, link, isExternal, variant },
  alignment, isActive
}`

const blogPostFields = `_id, _type, _createdAt, _updatedAt, title, slug, excerpt,
  featuredImage ` + imageProjection + `,
  author, publishedAt, category, tags, readTime, isFeatured, isActive`

const BlogPostsQuery = `*[_type == "blogPost" && isActive == true] | order(publishedAt desc) {
  ` + blogPostFields + `
}`

const FeaturedBlogPostsQuery = `*[_type == "blogPost" && isActive == true && isFeatured == true] | order(publishedAt desc) [0...$limit] {
  ` + blogPostFields + `
}`

const BlogPostBySlugQuery = `*[_type == "blogPost" && isActive == true && slug.current == $slug] [0] {
  ` + blogPostFields + `, content
}`

const CaseStudiesQuery = `*[_type == "caseStudy" && isActive == true] | order(order asc) {
  _id, _type, title, client, highlight, description,
  image ` + imageProjection + `,
  backgroundColor, isFeatured, link, order, isActive
}`

const CaseStudyPageBySlugQuery = `*[_type == "caseStudyPage" && isActive == true && slug.current == $slug] [0] {
  _id, _type, _updatedAt, title, slug, excerpt,
  featuredImage ` + imageProjection + `,
  client, category, tags, content, publishedAt, isActive
}`

const PricingPackagesQuery = `*[_type == "pricingPackage" && isActive == true] | order(order asc) {
  _id, _type, packageName, image ` + imageProjection + `, price,
  features[] { feature, description }, isPopular, ctaButton { label, link }, order, isActive
}`

const ContactQuery = `*[_type == "contact" && isActive == true] | order(_createdAt desc) [0] {
  _id, _type, title, subtitle,
  contactCategories[] { category, email, phone, address },
  whatsappLink, socialLinks[] { platform, url },
  image ` + imageProjection + `, isActive
}`

const CTAQuery = `*[_type == "cta" && isActive == true] | order(_createdAt desc) [0] {
  _id, _type, tagline, description, buttonText, whatsappLink,
  backgroundImage ` + imageProjection + `, isActive
}`

const SitemapPostsQuery = `*[_type == "blogPost" && isActive == true] | order(publishedAt desc) {
  "slug": slug.current,
  _updatedAt
}`
