package catalog

import (
	"strings"
	"time"
)

// Temple mirrors a single record returned by the temples endpoint.
type Temple struct {
	ID           string        `json:"id" yaml:"id"`
	Title        string        `json:"title" yaml:"title"`
	Summary      string        `json:"summary" yaml:"summary"`
	Descriptions []Description `json:"descriptions" yaml:"descriptions"`
	Images       []Image       `json:"images" yaml:"images"`
	Tags         []string      `json:"tags" yaml:"tags"`
	Location     Location      `json:"location" yaml:"location"`
	UpdatedAt    string        `json:"updatedAt" yaml:"updatedAt"`
}

// Description is one labelled block of long-form text.
type Description struct {
	Label string `json:"label" yaml:"label"`
	Text  string `json:"text" yaml:"text"`
}

// Image references a picture of the temple by role (cover, gallery, ...).
type Image struct {
	Role string `json:"role" yaml:"role"`
	URL  string `json:"url" yaml:"url"`
}

// Location places the temple administratively.
type Location struct {
	Province string `json:"province" yaml:"province"`
	Country  string `json:"country" yaml:"country"`
}

// CoverURL returns the first image URL, or "" when the temple has none.
func (t Temple) CoverURL() string {
	for _, img := range t.Images {
		if url := strings.TrimSpace(img.URL); url != "" {
			return url
		}
	}
	return ""
}

// ParsedUpdatedAt returns the UpdatedAt timestamp, or the zero time when it
// is missing or unparsable.
func (t Temple) ParsedUpdatedAt() time.Time {
	return parseTime(t.UpdatedAt)
}

// Clone returns a deep copy so callers can't alias the store's slices.
func (t Temple) Clone() Temple {
	dup := t
	if t.Descriptions != nil {
		dup.Descriptions = append([]Description(nil), t.Descriptions...)
	}
	if t.Images != nil {
		dup.Images = append([]Image(nil), t.Images...)
	}
	if t.Tags != nil {
		dup.Tags = append([]string(nil), t.Tags...)
	}
	return dup
}

// CloneAll deep-copies a collection. A nil or empty input yields nil.
func CloneAll(items []Temple) []Temple {
	if len(items) == 0 {
		return nil
	}
	dup := make([]Temple, len(items))
	for i, item := range items {
		dup[i] = item.Clone()
	}
	return dup
}

func parseTime(value string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}
