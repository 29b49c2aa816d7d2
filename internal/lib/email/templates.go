package email

// Template names an embedded email template.
type Template string

const (
	// TemplateNewsletterCreated corresponds to templates/newsletter_created.html
	TemplateNewsletterCreated Template = "newsletter_created"
)

func (t Template) file() string {
	return string(t) + ".html"
}
