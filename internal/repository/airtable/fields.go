package airtable

import (
	"encoding/json"
	"strings"
)

// The brands table has drifted over time: some columns hold plain URLs where
// others hold attachments, and list-like columns are sometimes ';'-joined text.
// The field types below accept every shape seen in the base.

type attachment struct {
	ID       string `json:"id"`
	URL      string `json:"url"`
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
	Type     string `json:"type"`
}

// urlField holds a single URL stored as text or as an attachment list.
type urlField string

func (u *urlField) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*u = urlField(s)
		return nil
	}
	var atts []attachment
	if err := json.Unmarshal(b, &atts); err != nil {
		return err
	}
	if len(atts) > 0 {
		*u = urlField(atts[0].URL)
	}
	return nil
}

// urlList holds URLs stored as a text list or as attachments.
type urlList []string

func (l *urlList) UnmarshalJSON(b []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		var single urlField
		if err := single.UnmarshalJSON(b); err != nil {
			return err
		}
		if single != "" {
			*l = urlList{string(single)}
		}
		return nil
	}
	out := make(urlList, 0, len(raw))
	for _, r := range raw {
		var s string
		if err := json.Unmarshal(r, &s); err == nil {
			out = append(out, s)
			continue
		}
		var a attachment
		if err := json.Unmarshal(r, &a); err != nil {
			return err
		}
		out = append(out, a.URL)
	}
	*l = out
	return nil
}

// checkbox is true for a boolean true, "true", or the check mark some rows were imported with.
type checkbox bool

func (c *checkbox) UnmarshalJSON(b []byte) error {
	var v bool
	if err := json.Unmarshal(b, &v); err == nil {
		*c = checkbox(v)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		*c = false
		return nil
	}
	*c = checkbox(s == "true" || s == "✓")
	return nil
}

// textList holds either a ';'-joined string or a multiple-select list.
// Items are trimmed, empties dropped, and list duplicates removed.
type textList []string

func (l *textList) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*l = textList(splitList(s))
		return nil
	}
	var items []string
	if err := json.Unmarshal(b, &items); err != nil {
		return err
	}
	*l = textList(dedupe(items))
	return nil
}

// splitList splits a ';'-joined column, trimming each item and dropping empties.
func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// splitAligned splits a ';'-joined column keeping positions, so index i lines up
// with the i-th value of a sibling column.
func splitAligned(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ";")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func at(items []string, i int) string {
	if i < len(items) {
		return items[i]
	}
	return ""
}

func dedupe[T comparable](items []T) []T {
	seen := make(map[T]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, it := range items {
		if _, ok := seen[it]; ok {
			continue
		}
		seen[it] = struct{}{}
		out = append(out, it)
	}
	return out
}

// brandFields mirrors the columns of the brands table.
type brandFields struct {
	Name                 string   `json:"Name"`
	Logo                 urlField `json:"Logo"`
	Cover                urlField `json:"Cover"`
	IsCuratorsPick       checkbox `json:"IsCuratorsPick"`
	Categories           []string `json:"Categories"`
	About                string   `json:"About"`
	Impact               string   `json:"Impact"`
	SustainableFeatures  []string `json:"SustainableFeatures"`
	FeatureDescription   string   `json:"FeatureDescription"`
	URL                  string   `json:"URL"`
	BusinessStartDate    string   `json:"BusinessStartDate"`
	Images               urlList  `json:"Images"`
	ImageDescriptions    string   `json:"ImageDescriptions"`
	FoundersNames        string   `json:"FoundersNames"`
	FounderRoles         string   `json:"FounderRoles"`
	FounderImages        urlList  `json:"FounderImages"`
	WorkforceDescription string   `json:"WorkforceDescription"`
	BrandVideo           string   `json:"BrandVideo"`
	ProductRange         textList `json:"ProductRange"`
	Certifications       []string `json:"Certifications"`
	Retailers            []string `json:"Retailers"`
	RetailersURLs        string   `json:"Retailers_URLs"`
	OriginCity           string   `json:"Origin_City"`
	OriginCountry        string   `json:"Origin_Country"`
}

type brandRecord struct {
	ID     string      `json:"id"`
	Fields brandFields `json:"fields"`
}

// brandWriteFields is the create payload. Empty values are not sent.
type brandWriteFields struct {
	Name                 string   `json:"Name,omitempty"`
	Logo                 string   `json:"Logo,omitempty"`
	Cover                string   `json:"Cover,omitempty"`
	IsCuratorsPick       *bool    `json:"IsCuratorsPick,omitempty"`
	Categories           []string `json:"Categories,omitempty"`
	About                string   `json:"About,omitempty"`
	Impact               string   `json:"Impact,omitempty"`
	SustainableFeatures  []string `json:"SustainableFeatures,omitempty"`
	FeatureDescription   string   `json:"FeatureDescription,omitempty"`
	URL                  string   `json:"URL,omitempty"`
	BusinessStartDate    string   `json:"BusinessStartDate,omitempty"`
	Images               []string `json:"Images,omitempty"`
	ImageDescriptions    string   `json:"ImageDescriptions,omitempty"`
	FoundersNames        string   `json:"FoundersNames,omitempty"`
	FounderRoles         string   `json:"FounderRoles,omitempty"`
	FounderImages        []string `json:"FounderImages,omitempty"`
	WorkforceDescription string   `json:"WorkforceDescription,omitempty"`
	BrandVideo           string   `json:"BrandVideo,omitempty"`
	ProductRange         string   `json:"ProductRange,omitempty"`
	Certifications       []string `json:"Certifications,omitempty"`
	Retailers            []string `json:"Retailers,omitempty"`
	RetailersURLs        string   `json:"Retailers_URLs,omitempty"`
	OriginCity           string   `json:"Origin_City,omitempty"`
	OriginCountry        string   `json:"Origin_Country,omitempty"`
}

type brandWriteRecord struct {
	ID     string           `json:"id,omitempty"`
	Fields brandWriteFields `json:"fields"`
}

// brandPatchFields is the update payload. A nil field is left alone; a set field is
// written even when empty, so "" and [] clear the column.
type brandPatchFields struct {
	Name                 *string   `json:"Name,omitempty"`
	Logo                 *string   `json:"Logo,omitempty"`
	Cover                *string   `json:"Cover,omitempty"`
	IsCuratorsPick       *bool     `json:"IsCuratorsPick,omitempty"`
	Categories           *[]string `json:"Categories,omitempty"`
	About                *string   `json:"About,omitempty"`
	Impact               *string   `json:"Impact,omitempty"`
	SustainableFeatures  *[]string `json:"SustainableFeatures,omitempty"`
	FeatureDescription   *string   `json:"FeatureDescription,omitempty"`
	URL                  *string   `json:"URL,omitempty"`
	BusinessStartDate    *string   `json:"BusinessStartDate,omitempty"`
	Images               *[]string `json:"Images,omitempty"`
	ImageDescriptions    *string   `json:"ImageDescriptions,omitempty"`
	FoundersNames        *string   `json:"FoundersNames,omitempty"`
	FounderRoles         *string   `json:"FounderRoles,omitempty"`
	FounderImages        *[]string `json:"FounderImages,omitempty"`
	WorkforceDescription *string   `json:"WorkforceDescription,omitempty"`
	BrandVideo           *string   `json:"BrandVideo,omitempty"`
	ProductRange         *string   `json:"ProductRange,omitempty"`
	Certifications       *[]string `json:"Certifications,omitempty"`
	Retailers            *[]string `json:"Retailers,omitempty"`
	RetailersURLs        *string   `json:"Retailers_URLs,omitempty"`
	OriginCity           *string   `json:"Origin_City,omitempty"`
	OriginCountry        *string   `json:"Origin_Country,omitempty"`
}

type brandPatchRecord struct {
	ID     string           `json:"id,omitempty"`
	Fields brandPatchFields `json:"fields"`
}

type retailerFields struct {
	Name    string   `json:"Name"`
	Logo    urlField `json:"Logo"`
	Website string   `json:"Website"`
}

type retailerRecord struct {
	ID     string         `json:"id"`
	Fields retailerFields `json:"fields"`
}
