package airtable

import (
	"strings"

	"go.uber.org/zap"

	"ecobrands/internal/model"
	"ecobrands/internal/slug"
)

// toBrand maps a brands-table row to the UI-facing model. retailers is keyed by record ID.
func toBrand(rec brandRecord, retailers map[string]model.Retailer, log *zap.Logger) model.Brand {
	f := rec.Fields
	b := model.Brand{
		ID:             rec.ID,
		Slug:           slug.Slugify(f.Name),
		Name:           f.Name,
		Logo:           string(f.Logo),
		Cover:          string(f.Cover),
		IsCuratorsPick: bool(f.IsCuratorsPick),
		Categories:     mapCategories(rec.ID, f.Categories, log),
		Content: model.BrandContent{
			About:               f.About,
			Impact:              f.Impact,
			SustainableFeatures: mapFeatures(f.SustainableFeatures, f.FeatureDescription),
		},
		URL:            f.URL,
		BusinessStart:  f.BusinessStartDate,
		Images:         mapImages(f.Images, f.ImageDescriptions),
		Founders:       mapFounders(f.FoundersNames, f.FounderRoles, f.FounderImages),
		BrandVideo:     f.BrandVideo,
		ProductRange:   []string(f.ProductRange),
		Certifications: mapCertifications(rec.ID, f.Certifications, log),
		Retailers:      mapRetailers(f.Retailers, f.RetailersURLs, retailers),
		Origin: model.BrandOrigin{
			City:    f.OriginCity,
			Country: f.OriginCountry,
		},
	}
	if f.WorkforceDescription != "" {
		b.Workforce = &model.Workforce{Description: f.WorkforceDescription}
	}
	if b.ProductRange == nil {
		b.ProductRange = []string{}
	}
	return b
}

func toRetailer(rec retailerRecord) model.Retailer {
	return model.Retailer{
		ID:      rec.ID,
		Name:    model.Marketplace(rec.Fields.Name),
		Logo:    string(rec.Fields.Logo),
		Website: rec.Fields.Website,
	}
}

func mapCategories(recordID string, values []string, log *zap.Logger) []model.Category {
	if values == nil {
		return []model.Category{model.CategoryClothing}
	}
	out := make([]model.Category, 0, len(values))
	for _, v := range values {
		c, ok := model.ParseCategory(v)
		if !ok {
			log.Warn("unknown category value", zap.String("record_id", recordID), zap.String("value", v))
			c = model.CategoryClothing
		}
		out = append(out, c)
	}
	return dedupe(out)
}

func mapCertifications(recordID string, values []string, log *zap.Logger) []model.Certification {
	out := make([]model.Certification, 0, len(values))
	for _, v := range values {
		c, ok := model.ParseCertification(v)
		if !ok {
			log.Warn("unknown certification value", zap.String("record_id", recordID), zap.String("value", v))
			c = model.CertificationOrganic
		}
		out = append(out, c)
	}
	return dedupe(out)
}

func mapFeatures(titles []string, descriptions string) []model.FeatureContent {
	titles = dedupe(titles)
	descs := splitAligned(descriptions)
	out := make([]model.FeatureContent, 0, len(titles))
	for i, t := range titles {
		feature := model.SustainableFeature(t)
		out = append(out, model.FeatureContent{
			Title:       feature,
			Description: at(descs, i),
			Icon:        feature.Icon(),
		})
	}
	return out
}

func mapImages(urls urlList, descriptions string) []model.BrandImage {
	descs := splitAligned(descriptions)
	out := make([]model.BrandImage, 0, len(urls))
	for i, u := range urls {
		out = append(out, model.BrandImage{URL: u, Description: at(descs, i)})
	}
	return out
}

func mapFounders(names, roles string, images urlList) []model.Founder {
	nameList := splitAligned(names)
	roleList := splitAligned(roles)
	out := make([]model.Founder, 0, len(nameList))
	for i, n := range nameList {
		if n == "" {
			continue
		}
		img := at(images, i)
		if img == "" {
			img = model.PlaceholderFounderImage
		}
		out = append(out, model.Founder{Name: n, Role: at(roleList, i), ImageURL: img})
	}
	return out
}

// mapRetailers zips the linked retailer IDs with the ';'-joined URL column.
// Links to unknown retailers or without a URL are dropped.
func mapRetailers(ids []string, urls string, retailers map[string]model.Retailer) []model.MarketplaceAvailability {
	linkURLs := splitAligned(urls)
	seen := make(map[string]struct{}, len(ids))
	out := make([]model.MarketplaceAvailability, 0, len(ids))
	for i, id := range ids {
		info, ok := retailers[id]
		u := at(linkURLs, i)
		if !ok || u == "" {
			continue
		}
		key := string(info.Name) + "-" + u
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		logo := info.Logo
		if logo == "" {
			logo = info.Name.LogoPath()
		}
		out = append(out, model.MarketplaceAvailability{Marketplace: info.Name, URL: u, Logo: logo})
	}
	return out
}

// retailerIndex maps marketplace names to the first retailer record carrying that name.
func retailerIndex(retailers []model.Retailer) map[model.Marketplace]string {
	idx := make(map[model.Marketplace]string, len(retailers))
	for _, r := range retailers {
		if _, ok := idx[r.Name]; !ok {
			idx[r.Name] = r.ID
		}
	}
	return idx
}

func toWriteFields(in model.BrandInput, retailerIDs map[model.Marketplace]string) brandWriteFields {
	pick := in.IsCuratorsPick
	w := brandWriteFields{
		Name:              in.Name,
		Logo:              in.Logo,
		Cover:             in.Cover,
		IsCuratorsPick:    &pick,
		Categories:        categoryColumn(in.Categories),
		About:             in.Content.About,
		Impact:            in.Content.Impact,
		URL:               in.URL,
		BusinessStartDate: in.BusinessStart,
		BrandVideo:        in.BrandVideo,
		ProductRange:      strings.Join(in.ProductRange, ";"),
		Certifications:    certificationColumn(in.Certifications),
		OriginCity:        in.Origin.City,
		OriginCountry:     in.Origin.Country,
	}
	w.SustainableFeatures, w.FeatureDescription = featureColumns(in.Content.SustainableFeatures)
	w.Images, w.ImageDescriptions = imageColumns(in.Images)
	w.FoundersNames, w.FounderRoles, w.FounderImages = founderColumns(in.Founders)
	w.Retailers, w.RetailersURLs = retailerColumns(in.Retailers, retailerIDs)
	if in.Workforce != nil {
		w.WorkforceDescription = in.Workforce.Description
	}
	return w
}

func patchWriteFields(p model.BrandPatch, retailerIDs map[model.Marketplace]string) brandPatchFields {
	w := brandPatchFields{
		Name:                 p.Name,
		Logo:                 p.Logo,
		Cover:                p.Cover,
		IsCuratorsPick:       p.IsCuratorsPick,
		About:                p.About,
		Impact:               p.Impact,
		URL:                  p.URL,
		BusinessStartDate:    p.BusinessStart,
		WorkforceDescription: p.Workforce,
		BrandVideo:           p.BrandVideo,
		OriginCity:           p.OriginCity,
		OriginCountry:        p.OriginCountry,
	}
	if p.Categories != nil {
		w.Categories = ptr(categoryColumn(p.Categories))
	}
	if p.SustainableFeatures != nil {
		titles, descs := featureColumns(p.SustainableFeatures)
		w.SustainableFeatures, w.FeatureDescription = &titles, &descs
	}
	if p.Images != nil {
		urls, descs := imageColumns(p.Images)
		w.Images, w.ImageDescriptions = &urls, &descs
	}
	if p.Founders != nil {
		names, roles, images := founderColumns(p.Founders)
		w.FoundersNames, w.FounderRoles, w.FounderImages = &names, &roles, &images
	}
	if p.ProductRange != nil {
		w.ProductRange = ptr(strings.Join(p.ProductRange, ";"))
	}
	if p.Certifications != nil {
		w.Certifications = ptr(certificationColumn(p.Certifications))
	}
	if p.Retailers != nil {
		ids, urls := retailerColumns(p.Retailers, retailerIDs)
		w.Retailers, w.RetailersURLs = &ids, &urls
	}
	return w
}

func ptr[T any](v T) *T { return &v }

func categoryColumn(cs []model.Category) []string {
	out := make([]string, 0, len(cs))
	for _, c := range dedupe(cs) {
		out = append(out, string(c))
	}
	return out
}

func certificationColumn(cs []model.Certification) []string {
	out := make([]string, 0, len(cs))
	for _, c := range dedupe(cs) {
		out = append(out, string(c))
	}
	return out
}

// featureColumns dedupes by title and keeps each description aligned with its title.
func featureColumns(fs []model.FeatureContent) ([]string, string) {
	seen := make(map[model.SustainableFeature]struct{}, len(fs))
	titles := make([]string, 0, len(fs))
	descs := make([]string, 0, len(fs))
	for _, f := range fs {
		if _, ok := seen[f.Title]; ok {
			continue
		}
		seen[f.Title] = struct{}{}
		titles = append(titles, string(f.Title))
		descs = append(descs, f.Description)
	}
	return titles, strings.Join(descs, ";")
}

func imageColumns(imgs []model.BrandImage) ([]string, string) {
	urls := make([]string, 0, len(imgs))
	descs := make([]string, 0, len(imgs))
	for _, img := range imgs {
		urls = append(urls, img.URL)
		descs = append(descs, img.Description)
	}
	return urls, strings.Join(descs, ";")
}

func founderColumns(fs []model.Founder) (string, string, []string) {
	names := make([]string, 0, len(fs))
	roles := make([]string, 0, len(fs))
	images := make([]string, 0, len(fs))
	for _, f := range fs {
		names = append(names, f.Name)
		roles = append(roles, f.Role)
		if f.ImageURL != "" && f.ImageURL != model.PlaceholderFounderImage {
			images = append(images, f.ImageURL)
		}
	}
	return strings.Join(names, ";"), strings.Join(roles, ";"), images
}

// retailerColumns keeps only links whose marketplace resolves to a retailer record,
// so the ID list and the URL column stay index-aligned.
func retailerColumns(links []model.MarketplaceAvailability, retailerIDs map[model.Marketplace]string) ([]string, string) {
	ids := make([]string, 0, len(links))
	urls := make([]string, 0, len(links))
	for _, l := range links {
		id, ok := retailerIDs[l.Marketplace]
		if !ok {
			continue
		}
		ids = append(ids, id)
		urls = append(urls, l.URL)
	}
	return ids, strings.Join(urls, ";")
}
