package email

// SendWelcomeEmail greets a newly created account holder by name.
func (c *Client) SendWelcomeEmail(to, name string) error {
	return c.SendEmail(to, "Welcome to Accounts", TemplateWelcome, map[string]string{
		"Name": name,
	})
}
