package contact

import (
	"embed"
	"io/fs"

	"github.com/estatehub/api/pkg/mailer"
)

const (
	internalTemplate     = "contact_internal.md"
	confirmationTemplate = "contact_confirmation.md"
)

//go:embed templates
var templatesFS embed.FS

func newMailer(sender mailer.Sender) *mailer.Mailer {
	sub, err := fs.Sub(templatesFS, "templates")
	if err != nil {
		// The templates directory is embedded at compile time; a missing
		// subtree is a build defect, not a runtime condition.
		panic(err)
	}

	renderer := mailer.NewRendererWithConfig(sub, mailer.RendererConfig{LayoutDir: "layouts"})
	return mailer.New(sender, renderer, mailer.Config{
		DefaultLayout:   "base.html",
		FallbackSubject: "EstateHub Properties",
	})
}
