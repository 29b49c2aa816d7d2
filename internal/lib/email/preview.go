package email

// PreviewData holds sample data for every template, keyed by template name.
var PreviewData = map[Template]map[string]string{
	TemplateNewsletterCreated: {
		"NewsletterID":    "42",
		"NewsletterTitle": "Weekly Digest",
	},
}
