package notify

import (
	"fmt"
	"strings"
)

// appleScript builds the osascript program for a notification
func appleScript(n Notification) string {
	script := fmt.Sprintf(`display notification %q with title %q`, n.Message, n.Title)
	if n.Sound != "" {
		script += fmt.Sprintf(` sound name %q`, n.Sound)
	}
	return script
}

// notifySendArgs builds the notify-send argument list. Permission prompts
// are raised as critical so they stay on screen.
func notifySendArgs(n Notification) []string {
	urgency := "normal"
	if n.Context != nil && n.Context.NotificationType == "permission_prompt" {
		urgency = "critical"
	}
	args := []string{"-u", urgency, "-a", "Claude Code"}
	if n.IconPath != "" {
		args = append(args, "-i", n.IconPath)
	}
	return append(args, n.Title, n.Message)
}

// toastScript builds the PowerShell program that shows a toast notification
func toastScript(n Notification) string {
	return fmt.Sprintf(`
[Windows.UI.Notifications.ToastNotificationManager, Windows.UI.Notifications, ContentType = WindowsRuntime] | Out-Null
$template = [Windows.UI.Notifications.ToastNotificationManager]::GetTemplateContent([Windows.UI.Notifications.ToastTemplateType]::ToastText02)
$textNodes = $template.GetElementsByTagName('text')
$textNodes.Item(0).AppendChild($template.CreateTextNode('%s')) | Out-Null
$textNodes.Item(1).AppendChild($template.CreateTextNode('%s')) | Out-Null
$toast = [Windows.UI.Notifications.ToastNotification]::new($template)
[Windows.UI.Notifications.ToastNotificationManager]::CreateToastNotifier('Claude Code').Show($toast)
`, escapeForPowerShell(n.Title), escapeForPowerShell(n.Message))
}

// escapeForPowerShell escapes special characters for single-quoted
// PowerShell strings
func escapeForPowerShell(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, c := range s {
		switch c {
		case '\'':
			b.WriteString("''")
		case '`', '$':
			b.WriteByte('`')
			b.WriteRune(c)
		default:
			b.WriteRune(c)
		}
	}
	return b.String()
}
