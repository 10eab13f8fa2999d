package main

import (
	"testing"

	appconfig "github.com/bidedigitala/contact-service/internal/config"
	"github.com/bidedigitala/contact-service/internal/notify"
)

func TestBuildSenderFallsBackToStubWithoutSMTPHost(t *testing.T) {
	cfg := &appconfig.Config{EmailProvider: appconfig.ProviderSMTP}

	sender := buildSender(cfg, nil)
	if _, ok := sender.(*notify.StubEmailSender); !ok {
		t.Fatalf("expected stub sender, got %T", sender)
	}
}

func TestBuildSenderSMTP(t *testing.T) {
	cfg := &appconfig.Config{
		EmailProvider: appconfig.ProviderSMTP,
		SMTPHost:      "mail.example.com",
		SMTPPort:      587,
		MailFrom:      "info@bidedigitala.eus",
	}

	sender := buildSender(cfg, nil)
	if _, ok := sender.(*notify.SMTPSender); !ok {
		t.Fatalf("expected smtp sender, got %T", sender)
	}
}

func TestBuildSenderSendGrid(t *testing.T) {
	cfg := &appconfig.Config{
		EmailProvider:     appconfig.ProviderSendGrid,
		SendGridAPIKey:    "key",
		SendGridFromEmail: "info@bidedigitala.eus",
	}

	sender := buildSender(cfg, nil)
	if _, ok := sender.(*notify.SendGridSender); !ok {
		t.Fatalf("expected sendgrid sender, got %T", sender)
	}
}

func TestBuildSenderStubProvider(t *testing.T) {
	cfg := &appconfig.Config{EmailProvider: appconfig.ProviderStub}

	sender := buildSender(cfg, nil)
	if _, ok := sender.(*notify.StubEmailSender); !ok {
		t.Fatalf("expected stub sender, got %T", sender)
	}
}
