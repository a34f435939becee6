// Package clicks classifies user clicks into the tracker's click event
// taxonomy: contact links (phone/email), call-to-action links with an
// inferred CTA type, navigation into content collections, and standalone
// buttons. The presentation layer describes each click as a Click value
// object; classification itself never touches a DOM.
package clicks
