package contact

import (
	"encoding/json"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/bidedigitala/contact-service/internal/leads"
	"github.com/bidedigitala/contact-service/internal/notify"
	"github.com/bidedigitala/contact-service/internal/observability/metrics"
	"github.com/bidedigitala/contact-service/pkg/logging"
)

const (
	livenessHint = "El endpoint está vivo ✅"

	// Generic failure message; infrastructure errors never leak
	// internals to the client.
	mailerErrorMessage = "Mailer error"

	maxMultipartMemory = 1 << 20
)

// Handler serves the contact-form endpoint: spam check, validation,
// lead persistence and operator notification.
type Handler struct {
	store   leads.Store
	sender  notify.EmailSender
	to      string
	logger  *logging.Logger
	metrics *metrics.ContactMetrics
}

// NewHandler creates a contact handler. to is the operator address that
// receives lead notifications.
func NewHandler(store leads.Store, sender notify.EmailSender, to string, logger *logging.Logger, m *metrics.ContactMetrics) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		store:   store,
		sender:  sender,
		to:      to,
		logger:  logger,
		metrics: m,
	}
}

type livenessResponse struct {
	OK     bool   `json:"ok"`
	Method string `json:"method"`
	Hint   string `json:"hint"`
}

type submitResponse struct {
	OK   bool `json:"ok"`
	Spam bool `json:"spam,omitempty"`
}

type validationResponse struct {
	OK     bool        `json:"ok"`
	Errors FieldErrors `json:"errors"`
}

type errorResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

// Liveness handles GET /api/contact, a probe only.
func (h *Handler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, livenessResponse{OK: true, Method: http.MethodGet, Hint: livenessHint})
}

// Submit handles POST /api/contact. Flow: honeypot -> validation ->
// persist "received" -> send mail -> persist "sent"/"mailer_error" ->
// respond. Persistence failures are logged and swallowed; they never
// abort the request or skip the mail attempt.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := parseForm(r); err != nil {
		h.logger.Error("failed to parse contact form", "error", err)
		h.metrics.ObserveSubmission(metrics.OutcomeError)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: mailerErrorMessage})
		return
	}

	// Success-shaped response on purpose so automated senders learn
	// nothing; runs before validation so bots get no field feedback.
	if IsSpam(r.Form) {
		h.logger.Info("honeypot tripped, dropping submission", "remote_ip", r.RemoteAddr)
		h.metrics.ObserveSubmission(metrics.OutcomeSpam)
		writeJSON(w, http.StatusOK, submitResponse{OK: true, Spam: true})
		return
	}

	sub, errs := ParseSubmission(r.Form)
	if errs != nil {
		h.metrics.ObserveSubmission(metrics.OutcomeInvalid)
		writeJSON(w, http.StatusBadRequest, validationResponse{OK: false, Errors: errs})
		return
	}
	sub.UserAgent = r.UserAgent()
	sub.Referer = r.Referer()

	rec := newRecord(sub)
	if err := h.store.Append(ctx, rec); err != nil {
		h.logger.Error("failed to persist received lead", "error", err, "email", rec.Email)
	}

	msg := notify.BuildLeadEmail(rec, h.to)
	start := time.Now()
	sendErr := h.sender.Send(ctx, msg)
	elapsed := time.Since(start).Seconds()

	if sendErr != nil {
		h.metrics.ObserveEmailSend("error", elapsed)
		h.logger.Error("failed to send lead notification", "error", sendErr, "email", rec.Email)

		final := rec.WithStatus(leads.StatusMailerError)
		final.Error = sendErr.Error()
		if err := h.store.Append(ctx, final); err != nil {
			h.logger.Error("failed to persist mailer_error lead", "error", err, "email", rec.Email)
		}

		h.metrics.ObserveSubmission(metrics.OutcomeError)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: mailerErrorMessage})
		return
	}

	h.metrics.ObserveEmailSend("sent", elapsed)
	if err := h.store.Append(ctx, rec.WithStatus(leads.StatusSent)); err != nil {
		h.logger.Error("failed to persist sent lead", "error", err, "email", rec.Email)
	}

	h.logger.Info("lead received", "empresa", rec.Empresa, "lang", rec.Lang)
	h.metrics.ObserveSubmission(metrics.OutcomeOK)
	writeJSON(w, http.StatusOK, submitResponse{OK: true})
}

// newRecord copies the submission into a "received" lead record. Source
// falls back to the Referer header; when both are empty the log carries
// an explicit null.
func newRecord(sub *Submission) *leads.Record {
	var source *string
	if s := sub.Source; s != "" {
		source = &s
	} else if ref := sub.Referer; ref != "" {
		source = &ref
	}
	return &leads.Record{
		Status:    leads.StatusReceived,
		Nombre:    sub.Nombre,
		Email:     sub.Email,
		Telefono:  sub.Telefono,
		Empresa:   sub.Empresa,
		Tamano:    sub.Tamano,
		Mensaje:   sub.Mensaje,
		Marketing: sub.Marketing,
		Consent:   sub.Consent,
		Lang:      sub.Lang,
		Source:    source,
		UA:        sub.UserAgent,
	}
}

// parseForm accepts multipart/form-data or URL-encoded bodies.
func parseForm(r *http.Request) error {
	ct := r.Header.Get("Content-Type")
	if mediaType, _, err := mime.ParseMediaType(ct); err == nil && strings.HasPrefix(mediaType, "multipart/") {
		return r.ParseMultipartForm(maxMultipartMemory)
	}
	return r.ParseForm()
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
