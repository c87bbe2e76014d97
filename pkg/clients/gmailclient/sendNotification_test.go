package gmailclient

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildNotificationBody(t *testing.T) {
	body := buildNotificationBody("204", "broken lamp", "data:image/png;base64,abc", "2026-03-02 14:30:00")

	assert.Contains(t, body, "Room: 204")
	assert.Contains(t, body, "Sent: 2026-03-02 14:30:00")
	assert.Contains(t, body, "Notes:\nbroken lamp")
	assert.Contains(t, body, "Photos:\ndata:image/png;base64,abc")
}

func TestBuildNotificationBody_NoPhotos(t *testing.T) {
	body := buildNotificationBody("204", "broken lamp", "", "2026-03-02 14:30:00")

	assert.NotContains(t, body, "Photos:")
}

func TestBuildMessage(t *testing.T) {
	msg := buildMessage("facility@example.com", "lead@example.com", "Cleaning notification for room 204", "body text")

	assert.Equal(t, "From: facility@example.com\r\nTo: lead@example.com\r\nSubject: Cleaning notification for room 204\r\n\r\nbody text", msg)
}

func TestBuildMessage_NoSender(t *testing.T) {
	msg := buildMessage("", "lead@example.com", "subject", "body")

	assert.Equal(t, "To: lead@example.com\r\nSubject: subject\r\n\r\nbody", msg)
}
