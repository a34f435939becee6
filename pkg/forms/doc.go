// Package forms tracks the form funnel: first interaction, submission and
// confirmed success. Submitted form ids persist in the key-value store so
// a form's very first submission can be flagged across sessions.
package forms
