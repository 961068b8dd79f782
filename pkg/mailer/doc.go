// Package mailer provides transactional email sending with markdown
// template rendering.
//
// Templates are markdown files with YAML frontmatter. The frontmatter
// carries the subject (itself a text/template, so it can reference the
// template data), the body is converted to HTML with goldmark and wrapped
// in an HTML layout. The processed markdown doubles as the plain-text
// alternative.
//
// Delivery is abstracted behind the Sender interface; the resend
// subpackage implements it on top of the Resend API.
package mailer
