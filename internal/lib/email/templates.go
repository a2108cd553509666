package email

// Template names an embedded email template file (templates/<name>.html).
type Template string

const (
	// TemplateWelcome greets a newly created account.
	TemplateWelcome Template = "welcome"
)
