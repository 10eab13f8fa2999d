package notify

import (
	"fmt"
	"strings"

	"github.com/bidedigitala/contact-service/internal/i18n"
	"github.com/bidedigitala/contact-service/internal/leads"
)

// htmlEscaper neutralizes the three HTML metacharacters so submitted
// free text can never become live markup in the operator's mail client.
var htmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func escapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// BuildLeadEmail renders the operator notification for a received lead:
// a localized subject plus plain-text and HTML bodies. Reply-to is set
// to the submitter so answers route directly to them.
func BuildLeadEmail(rec *leads.Record, to string) EmailMessage {
	lang := i18n.Normalize(rec.Lang)

	source := "-"
	if rec.Source != nil && *rec.Source != "" {
		source = *rec.Source
	}

	mensaje := rec.Mensaje
	if mensaje == "" {
		mensaje = i18n.T(lang, "mail.no_message")
	}

	marketing := i18n.T(lang, "mail.no")
	if rec.Marketing {
		marketing = i18n.T(lang, "mail.yes")
	}

	subject := fmt.Sprintf("%s: %s · %s", i18n.T(lang, "mail.subject"), rec.Nombre, rec.Empresa)

	label := func(key string) string { return i18n.T(lang, "mail.label."+key) }

	text := strings.Join([]string{
		fmt.Sprintf("%s: %s", label("nombre"), rec.Nombre),
		fmt.Sprintf("%s: %s", label("email"), rec.Email),
		fmt.Sprintf("%s: %s", label("telefono"), rec.Telefono),
		fmt.Sprintf("%s: %s", label("empresa"), rec.Empresa),
		fmt.Sprintf("%s: %s", label("tamano"), rec.Tamano),
		fmt.Sprintf("%s: %s", label("marketing"), marketing),
		fmt.Sprintf("%s: %s", label("idioma"), lang),
		fmt.Sprintf("%s: %s", label("origen"), source),
		fmt.Sprintf("%s: %s", label("ua"), rec.UA),
		"",
		label("mensaje") + ":",
		mensaje,
	}, "\n")

	rows := strings.Join([]string{
		row(label("nombre"), escapeHTML(rec.Nombre)),
		row(label("email"), fmt.Sprintf(`<a href="mailto:%s">%s</a>`, escapeHTML(rec.Email), escapeHTML(rec.Email))),
		row(label("telefono"), escapeHTML(rec.Telefono)),
		row(label("empresa"), escapeHTML(rec.Empresa)),
		row(label("tamano"), escapeHTML(rec.Tamano)),
		row(label("marketing"), marketing),
		row(label("idioma"), strings.ToUpper(lang)),
		row(label("origen"), escapeHTML(source)),
		row(label("ua"), escapeHTML(rec.UA)),
		row(label("mensaje"), escapeHTML(mensaje)),
	}, "\n")

	html := fmt.Sprintf(`<div style="font-family:ui-sans-serif,system-ui,-apple-system,Segoe UI,Roboto;line-height:1.6;color:#111">
<h2 style="margin:0 0 .5rem">%s</h2>
<table style="border-collapse:collapse;width:100%%;max-width:640px">
<tbody>
%s
</tbody>
</table>
</div>`, i18n.T(lang, "mail.heading"), rows)

	return EmailMessage{
		To:      to,
		ReplyTo: rec.Email,
		Subject: subject,
		Body:    text,
		HTML:    html,
	}
}

func row(label, val string) string {
	return fmt.Sprintf(`<tr>
<td style="padding:.5rem .75rem;border-bottom:1px solid #e5e7eb;color:#374151;width:160px"><strong>%s</strong></td>
<td style="padding:.5rem .75rem;border-bottom:1px solid #e5e7eb;color:#111">%s</td>
</tr>`, label, val)
}
