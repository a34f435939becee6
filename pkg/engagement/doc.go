// Package engagement reports time-on-page milestones. One timer is armed
// per milestone; timers are independent and best-effort, so a milestone
// firing after the visitor has left is lost work, not an error.
package engagement
