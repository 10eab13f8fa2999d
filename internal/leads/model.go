package leads

import "time"

// Status tracks a lead through the submission pipeline. A lead is first
// appended as StatusReceived; after the notification attempt a second
// record is appended as StatusSent or StatusMailerError. Records are
// never rewritten.
type Status string

const (
	StatusReceived    Status = "received"
	StatusSent        Status = "sent"
	StatusMailerError Status = "mailer_error"
)

// Record is one line of the append-only lead log.
type Record struct {
	Status    Status    `json:"status"`
	Nombre    string    `json:"nombre"`
	Email     string    `json:"email"`
	Telefono  string    `json:"telefono"`
	Empresa   string    `json:"empresa"`
	Tamano    string    `json:"tamano"`
	Mensaje   string    `json:"mensaje"`
	Marketing bool      `json:"marketing"`
	Consent   bool      `json:"consent"`
	Lang      string    `json:"lang"`
	Source    *string   `json:"source"`
	UA        string    `json:"ua"`
	TS        time.Time `json:"ts"`
	Error     string    `json:"error,omitempty"`
}

// WithStatus returns a copy of the record carrying a new status. The
// timestamp is cleared so the store stamps the copy at write time.
func (r *Record) WithStatus(status Status) *Record {
	c := *r
	c.Status = status
	c.TS = time.Time{}
	return &c
}
