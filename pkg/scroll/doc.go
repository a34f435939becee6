// Package scroll reports scroll-depth milestones for the current page.
// Milestones fire once; sampling is throttled by an in-flight flag so a
// burst of scroll callbacks costs at most one computation.
package scroll
