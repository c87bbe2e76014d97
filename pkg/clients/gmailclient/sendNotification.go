package gmailclient

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"google.golang.org/api/gmail/v1"
)

// SendTaskNotification delivers a cleaning task notification email with
// the room number, notes, photo data URIs and the dispatch timestamp.
// Callers treat delivery as best effort; errors are returned for logging
// but carry no retry semantics.
func (c *Client) SendTaskNotification(ctx context.Context, recipient, roomNumber, notes, images, date string) error {
	subject := fmt.Sprintf(c.subjectTemplate, roomNumber)
	body := buildNotificationBody(roomNumber, notes, images, date)
	message := buildMessage(c.sender, recipient, subject, body)

	gmailMessage := &gmail.Message{
		Raw: base64.URLEncoding.EncodeToString([]byte(message)),
	}

	if _, err := c.service.Users.Messages.Send(c.userID, gmailMessage).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to send notification email: %w", err)
	}

	return nil
}

// buildNotificationBody renders the fixed notification layout
func buildNotificationBody(roomNumber, notes, images, date string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Room: %s\n", roomNumber)
	fmt.Fprintf(&b, "Sent: %s\n", date)
	fmt.Fprintf(&b, "\nNotes:\n%s\n", notes)
	if images != "" {
		fmt.Fprintf(&b, "\nPhotos:\n%s\n", images)
	}
	return b.String()
}

// buildMessage assembles an RFC 2822 message for the Gmail raw payload
func buildMessage(sender, to, subject, body string) string {
	var b strings.Builder
	if sender != "" {
		fmt.Fprintf(&b, "From: %s\r\n", sender)
	}
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("\r\n")
	b.WriteString(body)
	return b.String()
}
