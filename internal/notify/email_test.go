package notify

import (
	"context"
	"testing"
	"time"
)

func TestNewStubEmailSenderSends(t *testing.T) {
	sender := NewStubEmailSender(nil)

	err := sender.Send(context.Background(), EmailMessage{
		To:      "juan@bidedigitala.eus",
		ReplyTo: "lead@example.com",
		Subject: "Nuevo contacto",
		Body:    "hola",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNewSendGridSender_NilWithoutAPIKey(t *testing.T) {
	sender := NewSendGridSender(SendGridConfig{
		APIKey:    "",
		FromEmail: "info@bidedigitala.eus",
	}, nil)

	if sender != nil {
		t.Error("expected nil sender when API key is empty")
	}
}

func TestNewSendGridSender_DefaultFromName(t *testing.T) {
	sender := NewSendGridSender(SendGridConfig{
		APIKey:    "test-key",
		FromEmail: "info@bidedigitala.eus",
	}, nil)

	if sender == nil {
		t.Fatal("expected non-nil sender")
	}
	if sender.fromName != "Bide Digitala" {
		t.Errorf("expected default from name 'Bide Digitala', got %q", sender.fromName)
	}
}

func TestSendGridSender_Send_NilClient(t *testing.T) {
	sender := &SendGridSender{}

	err := sender.Send(context.Background(), EmailMessage{
		To:      "juan@bidedigitala.eus",
		Subject: "Test",
		Body:    "Test body",
	})
	if err == nil {
		t.Error("expected error from unconfigured sender")
	}
}

func TestNewSMTPSenderRequiresHost(t *testing.T) {
	_, err := NewSMTPSender(SMTPConfig{}, nil)
	if err == nil {
		t.Fatal("expected error when host is empty")
	}
}

func TestNewSMTPSenderWithAuth(t *testing.T) {
	sender, err := NewSMTPSender(SMTPConfig{
		Host:    "mail.example.com",
		Port:    587,
		User:    "info@bidedigitala.eus",
		Pass:    "secret",
		From:    "Bide Digitala <info@bidedigitala.eus>",
		Timeout: 5 * time.Second,
	}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sender.client == nil {
		t.Fatal("expected configured client")
	}
	if sender.from != "Bide Digitala <info@bidedigitala.eus>" {
		t.Errorf("unexpected from address %q", sender.from)
	}
}

func TestSMTPSenderRejectsBadAddresses(t *testing.T) {
	sender, err := NewSMTPSender(SMTPConfig{
		Host: "mail.example.com",
		Port: 587,
		From: "not-an-address",
	}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err = sender.Send(context.Background(), EmailMessage{
		To:      "juan@bidedigitala.eus",
		Subject: "x",
		Body:    "x",
	})
	if err == nil {
		t.Fatal("expected error for malformed from address")
	}
}
