package model

import "time"

// PlaceholderFounderImage is shown for founders without a photo. It is never written back to Airtable.
const PlaceholderFounderImage = "/placeholder-founder.jpg"

// Brand is one sustainable-brand listing as served to the UI.
// Any optional field may be empty; the external spreadsheet owns consistency.
type Brand struct {
	ID             string                    `json:"id"`
	Slug           string                    `json:"slug"`
	Name           string                    `json:"name"`
	Logo           string                    `json:"logo"`
	Cover          string                    `json:"cover"`
	IsCuratorsPick bool                      `json:"is_curators_pick"`
	Categories     []Category                `json:"categories"`
	Content        BrandContent              `json:"content"`
	URL            string                    `json:"url"`
	BusinessStart  string                    `json:"business_start_date"`
	Images         []BrandImage              `json:"images"`
	Founders       []Founder                 `json:"founder"`
	Workforce      *Workforce                `json:"workforce,omitempty"`
	BrandVideo     string                    `json:"brand_video,omitempty"`
	ProductRange   []string                  `json:"product_range"`
	Certifications []Certification           `json:"certifications"`
	Retailers      []MarketplaceAvailability `json:"retailers"`
	Origin         BrandOrigin               `json:"origin"`
}

type BrandContent struct {
	About               string           `json:"about"`
	Impact              string           `json:"impact"`
	SustainableFeatures []FeatureContent `json:"sustainable_features"`
}

// FeatureContent is a sustainable feature as described by a specific brand.
type FeatureContent struct {
	Title       SustainableFeature `json:"title"`
	Description string             `json:"description"`
	Icon        string             `json:"icon,omitempty"`
}

type BrandImage struct {
	URL         string `json:"url"`
	Description string `json:"description"`
}

type Founder struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	ImageURL string `json:"image_url"`
}

type Workforce struct {
	Description string `json:"description"`
}

type BrandOrigin struct {
	City    string `json:"city"`
	Country string `json:"country"`
}

// MarketplaceAvailability links a brand to a storefront listing of its products.
type MarketplaceAvailability struct {
	Marketplace Marketplace `json:"marketplace"`
	URL         string      `json:"url"`
	Logo        string      `json:"logo,omitempty"`
}

// Retailer is a row of the retailers table.
type Retailer struct {
	ID      string      `json:"id"`
	Name    Marketplace `json:"name"`
	Logo    string      `json:"logo"`
	Website string      `json:"website"`
}

// BrandSummary is the compact form used by header search results.
type BrandSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
	Logo string `json:"logo"`
}

// BrandInput carries every writable field for a new brand.
type BrandInput struct {
	Name           string                    `json:"name"`
	Logo           string                    `json:"logo"`
	Cover          string                    `json:"cover"`
	IsCuratorsPick bool                      `json:"is_curators_pick"`
	Categories     []Category                `json:"categories"`
	Content        BrandContent              `json:"content"`
	URL            string                    `json:"url"`
	BusinessStart  string                    `json:"business_start_date"`
	Images         []BrandImage              `json:"images"`
	Founders       []Founder                 `json:"founder"`
	Workforce      *Workforce                `json:"workforce,omitempty"`
	BrandVideo     string                    `json:"brand_video"`
	ProductRange   []string                  `json:"product_range"`
	Certifications []Certification           `json:"certifications"`
	Retailers      []MarketplaceAvailability `json:"retailers"`
	Origin         BrandOrigin               `json:"origin"`
}

// BrandPatch is a partial update. Nil fields are left untouched.
type BrandPatch struct {
	Name                *string                   `json:"name,omitempty"`
	Logo                *string                   `json:"logo,omitempty"`
	Cover               *string                   `json:"cover,omitempty"`
	IsCuratorsPick      *bool                     `json:"is_curators_pick,omitempty"`
	Categories          []Category                `json:"categories,omitempty"`
	About               *string                   `json:"about,omitempty"`
	Impact              *string                   `json:"impact,omitempty"`
	SustainableFeatures []FeatureContent          `json:"sustainable_features,omitempty"`
	URL                 *string                   `json:"url,omitempty"`
	BusinessStart       *string                   `json:"business_start_date,omitempty"`
	Images              []BrandImage              `json:"images,omitempty"`
	Founders            []Founder                 `json:"founder,omitempty"`
	Workforce           *string                   `json:"workforce,omitempty"`
	BrandVideo          *string                   `json:"brand_video,omitempty"`
	ProductRange        []string                  `json:"product_range,omitempty"`
	Certifications      []Certification           `json:"certifications,omitempty"`
	Retailers           []MarketplaceAvailability `json:"retailers,omitempty"`
	OriginCity          *string                   `json:"origin_city,omitempty"`
	OriginCountry       *string                   `json:"origin_country,omitempty"`
}

// ImageKind names the folder a brand image is stored under.
type ImageKind string

const (
	ImageLogo    ImageKind = "logo"
	ImageCover   ImageKind = "cover"
	ImageGallery ImageKind = "gallery"
	ImageFounder ImageKind = "founder"
)

// Valid reports whether k is one of the known image kinds.
func (k ImageKind) Valid() bool {
	switch k {
	case ImageLogo, ImageCover, ImageGallery, ImageFounder:
		return true
	}
	return false
}

// Suggestion is a visitor-submitted brand recommendation.
type Suggestion struct {
	ID             string    `json:"id"`
	BrandName      string    `json:"brand_name"`
	Website        string    `json:"website"`
	SubmitterName  string    `json:"submitter_name"`
	SubmitterEmail string    `json:"submitter_email"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

const (
	SuggestionSent   = "sent"
	SuggestionFailed = "failed"
)
