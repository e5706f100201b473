package util

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
)

var webhookClient = http.Client{
	Timeout: time.Duration(10) * time.Second,
}

// Log message to the ops webhook and sentry
func LogMessage(content string) {
	if Config.LoggingWebhook != nil {
		body := fmt.Sprintf(`{"content": "%s"}`, content)
		resp, err := webhookClient.Post(*Config.LoggingWebhook, "application/json", bytes.NewBuffer([]byte(body)))
		if err != nil {
			sentry.CaptureException(err)
		} else if resp.StatusCode != http.StatusOK {
			sentry.CaptureException(errors.New("failed to log to webhook"))
		}
	}

	sentry.CaptureMessage(content)
}
