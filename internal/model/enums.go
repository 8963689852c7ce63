package model

import "strings"

// Category is a product category a brand is listed under.
type Category string

const (
	CategoryClothing     Category = "Clothing"
	CategoryAccessories  Category = "Accessories"
	CategoryFoodBeverage Category = "Food & Beverage"
	CategoryHome         Category = "Home"
	CategoryBeauty       Category = "Beauty"
	CategoryElectronics  Category = "Electronics"
	CategoryToys         Category = "Toys"
	CategoryOutdoor      Category = "Outdoor"
	CategorySports       Category = "Sports"
	CategoryGifts        Category = "Gifts"
	CategoryHealth       Category = "Health"
	CategoryStationery   Category = "Stationery"
	CategoryPets         Category = "Pets"
	CategoryTravel       Category = "Travel"
	CategoryGarden       Category = "Garden"
	CategoryBooks        Category = "Books"
	CategoryAutomotive   Category = "Automotive"
	CategoryCrafts       Category = "Crafts"
	CategoryArt          Category = "Art"
	CategoryFurniture    Category = "Furniture"
	CategoryDecor        Category = "Decor"
	CategoryTextiles     Category = "Textiles"
	CategoryFarming      Category = "Farming"
	CategoryJewelry      Category = "Jewelry"
	CategoryFootwear     Category = "Footwear"
	CategoryCleaning     Category = "Cleaning"
	CategoryTechnology   Category = "Technology"
)

// Categories lists every category in quick-filter display order.
var Categories = []Category{
	CategoryClothing, CategoryAccessories, CategoryFoodBeverage, CategoryHome,
	CategoryBeauty, CategoryElectronics, CategoryToys, CategoryOutdoor,
	CategorySports, CategoryGifts, CategoryHealth, CategoryStationery,
	CategoryPets, CategoryTravel, CategoryGarden, CategoryBooks,
	CategoryAutomotive, CategoryCrafts, CategoryArt, CategoryFurniture,
	CategoryDecor, CategoryTextiles, CategoryFarming, CategoryJewelry,
	CategoryFootwear, CategoryCleaning, CategoryTechnology,
}

// Label is the text shown on the quick-filter chip.
func (c Category) Label() string {
	if c == CategoryToys {
		return "Kids & Toys"
	}
	return string(c)
}

// ParseCategory returns the category whose value matches s exactly.
func ParseCategory(s string) (Category, bool) {
	for _, c := range Categories {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

// Certification is a third-party sustainability certification.
type Certification string

const (
	CertificationGOTS           Certification = "GOTS Certified"
	CertificationFairTrade      Certification = "Fair Trade Certified"
	CertificationVegan          Certification = "Vegan Certified"
	CertificationOrganic        Certification = "Organic Certified"
	CertificationBCorporation   Certification = "B Corporation"
	CertificationCradleToCradle Certification = "Cradle to Cradle"
	CertificationFSC            Certification = "FSC Certified"
	CertificationEnergyStar     Certification = "Energy Star"
)

var Certifications = []Certification{
	CertificationGOTS, CertificationFairTrade, CertificationVegan, CertificationOrganic,
	CertificationBCorporation, CertificationCradleToCradle, CertificationFSC, CertificationEnergyStar,
}

// ParseCertification returns the certification whose value matches s exactly.
func ParseCertification(s string) (Certification, bool) {
	for _, c := range Certifications {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

// SustainableFeature is a tag describing one sustainable practice of a brand.
type SustainableFeature string

const (
	FeatureOrganicMaterials     SustainableFeature = "Organic Materials"
	FeatureRecycledMaterials    SustainableFeature = "Recycled Materials"
	FeatureZeroWaste            SustainableFeature = "Zero Waste"
	FeatureCarbonNeutral        SustainableFeature = "Carbon Neutral"
	FeatureWaterConservation    SustainableFeature = "Water Conservation"
	FeatureRenewableEnergy      SustainableFeature = "Renewable Energy"
	FeatureLocalProduction      SustainableFeature = "Local Production"
	FeatureFairTrade            SustainableFeature = "Fair Trade"
	FeatureVegan                SustainableFeature = "Vegan"
	FeaturePlasticFree          SustainableFeature = "Plastic Free"
	FeatureCircularEconomy      SustainableFeature = "Circular Economy"
	FeatureBiodegradable        SustainableFeature = "Biodegradable"
	FeatureEthicalLabor         SustainableFeature = "Ethical Labor"
	FeatureSustainablePackaging SustainableFeature = "Sustainable Packaging"
	FeatureChemicalFree         SustainableFeature = "Chemical Free"
	FeatureTreePlanting         SustainableFeature = "Tree Planting"
	FeatureUpcycled             SustainableFeature = "Upcycled"
	FeatureNaturalDyes          SustainableFeature = "Natural Dyes"
	FeatureHandcrafted          SustainableFeature = "Handcrafted"
	FeatureCrueltyFree          SustainableFeature = "Cruelty Free"
)

// SustainableFeatures lists every feature alongside its icon name, in display order.
var SustainableFeatures = []FeatureDefinition{
	{FeatureOrganicMaterials, "Sprout"},
	{FeatureRecycledMaterials, "Recycle"},
	{FeatureZeroWaste, "CircleDot"},
	{FeatureCarbonNeutral, "Leaf"},
	{FeatureWaterConservation, "Droplets"},
	{FeatureRenewableEnergy, "Sun"},
	{FeatureLocalProduction, "MapPin"},
	{FeatureFairTrade, "HeartHandshake"},
	{FeatureVegan, "Flower2"},
	{FeaturePlasticFree, "PackageX"},
	{FeatureCircularEconomy, "RefreshCw"},
	{FeatureBiodegradable, "Trees"},
	{FeatureEthicalLabor, "Users"},
	{FeatureSustainablePackaging, "Package"},
	{FeatureChemicalFree, "ShieldCheck"},
	{FeatureTreePlanting, "Palmtree"},
	{FeatureUpcycled, "ArrowUpCircle"},
	{FeatureNaturalDyes, "Palette"},
	{FeatureHandcrafted, "Hand"},
	{FeatureCrueltyFree, "Heart"},
}

// FeatureDefinition pairs a feature with the icon the UI renders for it.
type FeatureDefinition struct {
	Feature SustainableFeature `json:"feature"`
	Icon    string             `json:"icon"`
}

// Icon returns the icon name for f, or "" for features outside the known set.
func (f SustainableFeature) Icon() string {
	for _, d := range SustainableFeatures {
		if d.Feature == f {
			return d.Icon
		}
	}
	return ""
}

// Marketplace is a third-party storefront that sells brand products.
type Marketplace string

const (
	MarketplaceAmazon    Marketplace = "Amazon"
	MarketplaceFlipkart  Marketplace = "Flipkart"
	MarketplaceWalmart   Marketplace = "Walmart"
	MarketplaceMeesho    Marketplace = "Meesho"
	MarketplaceSwift     Marketplace = "Swift"
	MarketplaceTataCliq  Marketplace = "Tata CLiQ"
	MarketplaceMyntra    Marketplace = "Myntra"
	MarketplaceSnapdeal  Marketplace = "Snapdeal"
	MarketplacePaytmMall Marketplace = "Paytm Mall"
)

var marketplaceBaseURLs = map[Marketplace]string{
	MarketplaceAmazon:    "https://www.amazon.in",
	MarketplaceFlipkart:  "https://www.flipkart.com",
	MarketplaceWalmart:   "https://www.walmart.com",
	MarketplaceMeesho:    "https://www.meesho.com",
	MarketplaceSwift:     "https://www.swift.com",
	MarketplaceTataCliq:  "https://www.tatacliq.com",
	MarketplaceMyntra:    "https://www.myntra.com",
	MarketplaceSnapdeal:  "https://www.snapdeal.com",
	MarketplacePaytmMall: "https://paytmmall.com",
}

// Marketplaces lists the known storefronts.
var Marketplaces = []Marketplace{
	MarketplaceAmazon, MarketplaceFlipkart, MarketplaceWalmart, MarketplaceMeesho,
	MarketplaceSwift, MarketplaceTataCliq, MarketplaceMyntra, MarketplaceSnapdeal,
	MarketplacePaytmMall,
}

// BaseURL returns the storefront home page, or "" if m is not a known marketplace.
func (m Marketplace) BaseURL() string {
	return marketplaceBaseURLs[m]
}

// LogoPath returns the site-relative path of the storefront logo.
func (m Marketplace) LogoPath() string {
	return "/logos/" + strings.ReplaceAll(strings.ToLower(string(m)), " ", "-") + ".svg"
}
