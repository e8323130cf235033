package rukunhub

import "embed"

// EmailFS carries the transactional email templates shipped with the binary.
//
//go:embed templates/emails
var EmailFS embed.FS
