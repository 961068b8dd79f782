// Package contact relays contact-form submissions to the business inbox.
//
// Every accepted submission produces two sends through the configured
// email provider: an internal notification to the office (fatal on
// failure) followed by a best-effort confirmation back to the visitor.
// Delivery is at-most-once per request; there is no retry queue and no
// deduplication, so a client that resubmits sends duplicate mail.
package contact
