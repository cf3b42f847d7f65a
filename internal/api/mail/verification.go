package mail

import (
	"fmt"
	"net/url"
	"strings"
)

const verificationSubject = "Verify your email"

// VerificationBody builds the HTML body of the account-verification mail.
// The link embeds the opaque token; following it is what proves ownership of
// the mailbox.
func VerificationBody(baseURL, token string) string {
	link := strings.TrimSuffix(baseURL, "/") + "/api/auth/verify/" + url.PathEscape(token)
	return fmt.Sprintf(
		`<a target="_blank" href="%s">Click to verify your email</a>`,
		link,
	)
}

// VerificationSubject returns the subject line used for verification mail.
func VerificationSubject() string { return verificationSubject }
