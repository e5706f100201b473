package util

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

func InitConfig() {
	var loggingWebhook *string
	if w := os.Getenv("LOGGING_WEBHOOK"); w != "" {
		loggingWebhook = &w
	}

	mailCfg := func() *mail {
		host := os.Getenv("EMAIL_SMTP_HOST")
		if host == "" {
			return nil
		}

		port, _ := strconv.Atoi(os.Getenv("EMAIL_SMTP_PORT"))

		return &mail{
			PlatformName:      os.Getenv("EMAIL_PLATFORM_NAME"),
			PlatformFrontend:  os.Getenv("EMAIL_PLATFORM_FRONTEND"),
			FromName:          os.Getenv("EMAIL_FROM_NAME"),
			FromAddress:       os.Getenv("EMAIL_FROM_ADDRESS"),
			EmailSMTPHost:     host,
			EmailSMTPPort:     port,
			EmailSMTPUsername: os.Getenv("EMAIL_SMTP_USERNAME"),
			EmailSMTPPassword: os.Getenv("EMAIL_SMTP_PASSWORD"),
		}
	}()

	if mailCfg == nil {
		slog.Warn("No SMTP configured, emails disabled")
	}

	perPage := 10
	if p, err := strconv.Atoi(os.Getenv("PER_PAGE")); err == nil && p > 0 {
		perPage = p
	}

	Config = config{
		StartTime:      time.Now().Unix(),
		Version:        os.Getenv("VERSION"),
		LoggingWebhook: loggingWebhook,
		PerPage:        perPage,
		MaxPerPage:     100,
		Mail:           mailCfg,
	}
}

var Config config

type config struct {
	StartTime      int64
	Version        string
	LoggingWebhook *string
	PerPage        int
	MaxPerPage     int
	Mail           *mail
}

type mail struct {
	PlatformName      string
	PlatformFrontend  string
	FromName          string
	FromAddress       string
	EmailSMTPHost     string
	EmailSMTPPort     int
	EmailSMTPUsername string
	EmailSMTPPassword string
}
