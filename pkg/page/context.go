package page

// Context captures everything the classifier may read about the current
// page. Callers build it from whatever rendering environment they run in
// (a headless browser bridge, a server-side render pass, a test) so the
// classifier itself stays pure.
type Context struct {
	// URL is the full page URL; Path is its path component.
	URL  string
	Path string

	// Title is the document title.
	Title string

	// Meta values, empty when the page does not declare them.
	MetaDescription string
	OGTitle         string
	OGImage         string

	// Headings holds the page's heading texts in document order. The first
	// entry names CMS items when present.
	Headings []string

	// CMS markers, counted for diagnostics only. They never influence
	// classification.
	HasCMSList   bool
	CMSItemCount int

	// FormCount is the number of forms on the page.
	FormCount int
}
