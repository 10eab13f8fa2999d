// Package i18n holds the user-facing strings of the contact pipeline for
// the two site locales. Spanish is the primary locale; anything else
// falls back to it.
package i18n

import "strings"

// Supported locale codes.
const (
	LocaleES = "es"
	LocaleEU = "eu"
)

// catalogs maps locale -> dot-path key -> text.
var catalogs = map[string]map[string]string{
	LocaleES: {
		"form.nombre":   "Nombre muy corto",
		"form.email":    "Email inválido",
		"form.telefono": "Teléfono inválido",
		"form.empresa":  "Empresa requerida",
		"form.tamano":   "Selecciona un tamaño",
		"form.consent":  "Debes aceptar la política de privacidad",

		"mail.subject":         "Nuevo contacto",
		"mail.heading":         "Nuevo contacto",
		"mail.no_message":      "(sin mensaje)",
		"mail.yes":             "Sí",
		"mail.no":              "No",
		"mail.label.nombre":    "Nombre",
		"mail.label.email":     "Email",
		"mail.label.telefono":  "Teléfono",
		"mail.label.empresa":   "Empresa",
		"mail.label.tamano":    "Tamaño",
		"mail.label.marketing": "Marketing",
		"mail.label.idioma":    "Idioma",
		"mail.label.origen":    "Origen",
		"mail.label.ua":        "User-Agent",
		"mail.label.mensaje":   "Mensaje",
	},
	LocaleEU: {
		"form.nombre":   "Izena laburregia",
		"form.email":    "Email baliogabea",
		"form.telefono": "Telefono baliogabea",
		"form.empresa":  "Enpresa beharrezkoa",
		"form.tamano":   "Aukeratu tamaina bat",
		"form.consent":  "Pribatutasun-politika onartu behar duzu",

		"mail.subject":         "Kontaktua",
		"mail.heading":         "Kontaktu berria",
		"mail.no_message":      "(mezurik ez)",
		"mail.yes":             "Bai",
		"mail.no":              "Ez",
		"mail.label.nombre":    "Izena",
		"mail.label.email":     "Emaila",
		"mail.label.telefono":  "Telefonoa",
		"mail.label.empresa":   "Enpresa",
		"mail.label.tamano":    "Tamaina",
		"mail.label.marketing": "Marketing",
		"mail.label.idioma":    "Hizkuntza",
		"mail.label.origen":    "Jatorria",
		"mail.label.ua":        "User-Agent",
		"mail.label.mensaje":   "Mezua",
	},
}

// Normalize maps any language code onto a supported locale, defaulting to
// Spanish for absent or unrecognized values.
func Normalize(lang string) string {
	switch strings.ToLower(strings.TrimSpace(lang)) {
	case LocaleEU:
		return LocaleEU
	default:
		return LocaleES
	}
}

// T returns the translation for the given key, or the key itself when no
// translation exists.
func T(lang, key string) string {
	if text, ok := catalogs[Normalize(lang)][key]; ok {
		return text
	}
	return key
}

// LocalizePath prefixes an internal route with the locale, e.g.
// LocalizePath("/blog", "eu") -> "/eu/blog".
func LocalizePath(path, lang string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return "/" + Normalize(lang) + path
}
