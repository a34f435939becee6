package page

// Type tells what kind of page a path resolved to.
type Type string

const (
	// TypeStatic is a fixed page from the static table, and the fallback
	// for anything the classifier cannot place.
	TypeStatic Type = "static"

	// TypeCMSItem is a single entry of a content collection.
	TypeCMSItem Type = "cms-item"

	// TypeCMSList is a collection index page.
	TypeCMSList Type = "cms-list"
)

// Descriptor is the classification result for one pageview. It is created
// fresh on every pageview, never persisted, and immutable by convention.
type Descriptor struct {
	URL   string `json:"url"`
	Path  string `json:"path"`
	Title string `json:"title"`

	MetaDescription string `json:"description,omitempty"`
	OGTitle         string `json:"ogTitle,omitempty"`
	OGImage         string `json:"ogImage,omitempty"`

	Type       Type   `json:"type"`
	Category   string `json:"category,omitempty"`
	Collection string `json:"collection,omitempty"`
	Slug       string `json:"slug,omitempty"`
	ItemName   string `json:"itemName,omitempty"`

	// Diagnostics side-reads; not used in classification.
	HasCMSList   bool `json:"hasCMSList"`
	CMSItemCount int  `json:"hasCMSItems"`
	FormCount    int  `json:"formCount"`
}
