package mailtemplate

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"

	"MarketLens/internal/domain/models"
)

//go:embed verification.html
var verificationHTML string

var verificationTmpl = template.Must(template.New("verification").Parse(verificationHTML))

type verificationData struct {
	Email string
	// template.URL keeps the token query string byte-for-byte intact;
	// re-encoding here would invalidate the link.
	VerificationURL template.URL
	ExpiresInHours  int
}

// BuildVerificationEmail renders the verification email body. Pure and
// deterministic given its inputs.
func BuildVerificationEmail(p models.VerificationParams) (string, error) {
	if p.ExpiresInHours <= 0 {
		p.ExpiresInHours = 24
	}

	var buf bytes.Buffer
	err := verificationTmpl.Execute(&buf, verificationData{
		Email:           p.Email,
		VerificationURL: template.URL(p.VerificationURL),
		ExpiresInHours:  p.ExpiresInHours,
	})
	if err != nil {
		return "", fmt.Errorf("render verification email: %w", err)
	}
	return buf.String(), nil
}
