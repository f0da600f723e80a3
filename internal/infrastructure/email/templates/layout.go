// Package templates renders transactional email HTML.
package templates

import "fmt"

// EmailLayoutProps configures the shared email shell.
type EmailLayoutProps struct {
	Content string
}

// GetEmailLayout wraps content in the shared email shell.
func GetEmailLayout(props EmailLayoutProps) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="margin:0;padding:0;background-color:#f4f4f5;font-family:-apple-system,BlinkMacSystemFont,'Segoe UI',Roboto,sans-serif;">
<table role="presentation" width="100%%" cellpadding="0" cellspacing="0" style="background-color:#f4f4f5;padding:32px 0;">
<tr><td align="center">
<table role="presentation" width="560" cellpadding="0" cellspacing="0" style="background-color:#ffffff;border-radius:8px;padding:40px;">
<tr><td>
%s
</td></tr>
<tr><td style="padding-top:32px;border-top:1px solid #e4e4e7;color:#71717a;font-size:12px;">
Shelfwise &middot; practical guides for what comes next
</td></tr>
</table>
</td></tr>
</table>
</body>
</html>`, props.Content)
}

// WelcomeEmailProps configures the new-profile welcome email.
type WelcomeEmailProps struct {
	Name string
}

// GetWelcomeEmailContent renders the welcome email body.
func GetWelcomeEmailContent(props WelcomeEmailProps) string {
	return fmt.Sprintf(`<h1 style="color:#18181b;font-size:22px;margin:0 0 16px;">Welcome, %s</h1>
<p style="color:#3f3f46;font-size:15px;line-height:1.6;margin:0 0 12px;">
Your Shelfwise library is ready. Every guide you pick up lives in your
dashboard, keeps your place between sessions, and tracks the chapters
you finish.
</p>
<p style="color:#3f3f46;font-size:15px;line-height:1.6;margin:0 0 12px;">
Tell us what you're working toward and we'll point you at the chapters
that move you there fastest.
</p>`, props.Name)
}
