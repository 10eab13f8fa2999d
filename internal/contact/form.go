package contact

import (
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/bidedigitala/contact-service/internal/i18n"
)

// honeypotField is invisible to humans; bots that fill it are dropped
// silently before validation ever runs.
const honeypotField = "website"

// emailPattern is the same light syntax check the site applies
// client-side: something@something.tld, no whitespace.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Submission is the validated, closed form of a contact request.
// Consent is always true here; a submission without consent never
// passes validation.
type Submission struct {
	Nombre    string
	Email     string
	Telefono  string
	Empresa   string
	Tamano    string
	Mensaje   string
	Marketing bool
	Consent   bool
	Lang      string
	Source    string
	UserAgent string
	Referer   string
}

// FieldErrors maps a form field to its localized error messages.
type FieldErrors map[string][]string

// IsSpam reports whether the honeypot field was filled in.
func IsSpam(values url.Values) bool {
	return strings.TrimSpace(values.Get(honeypotField)) != ""
}

// ParseSubmission validates the raw form values and produces either a
// Submission or the complete set of per-field errors. Every field is
// checked; validation never stops at the first failure, so the caller
// can render all errors at once. Messages are localized by the declared
// lang (normalized to a supported locale first).
func ParseSubmission(values url.Values) (*Submission, FieldErrors) {
	lang := i18n.Normalize(values.Get("lang"))

	errs := FieldErrors{}
	fail := func(field string) {
		errs[field] = append(errs[field], i18n.T(lang, "form."+field))
	}

	nombre := strings.TrimSpace(values.Get("nombre"))
	if utf8.RuneCountInString(nombre) < 2 {
		fail("nombre")
	}

	email := strings.TrimSpace(values.Get("email"))
	if !emailPattern.MatchString(email) {
		fail("email")
	}

	telefono := strings.TrimSpace(values.Get("telefono"))
	if len(digits(telefono)) < 7 {
		fail("telefono")
	}

	empresa := strings.TrimSpace(values.Get("empresa"))
	if utf8.RuneCountInString(empresa) < 2 {
		fail("empresa")
	}

	tamano := strings.TrimSpace(values.Get("tamano"))
	if tamano == "" {
		fail("tamano")
	}

	if !isConsent(values.Get("consent")) {
		fail("consent")
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return &Submission{
		Nombre:    nombre,
		Email:     email,
		Telefono:  telefono,
		Empresa:   empresa,
		Tamano:    tamano,
		Mensaje:   values.Get("mensaje"),
		Marketing: strings.TrimSpace(values.Get("marketing")) != "",
		Consent:   true,
		Lang:      lang,
		Source:    strings.TrimSpace(values.Get("source")),
	}, nil
}

// isConsent accepts the true-like tokens checkboxes and clients send.
func isConsent(v string) bool {
	switch strings.TrimSpace(v) {
	case "on", "yes", "true":
		return true
	}
	return false
}

// digits strips everything but 0-9.
func digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
