package config

import (
	"bytes"
	"os"
	"strings"
	"text/template"
)

// ExpandEnv substitutes environment variables in YAML content using Go
// template syntax ({{.TELEGRAM_BOT_TOKEN}}). Plain $ stays untouched, so
// values like passwords and keyword patterns survive verbatim.
//
// Missing variables expand to the empty string; required fields that end
// up empty are caught by validation.
func ExpandEnv(data []byte) []byte {
	tmpl, err := template.New("config").Option("missingkey=zero").Parse(string(data))
	if err != nil {
		// Not a template, pass the YAML through as-is.
		return data
	}

	env := make(map[string]string)
	for _, kv := range os.Environ() {
		if key, value, ok := strings.Cut(kv, "="); ok && key != "" {
			env[key] = value
		}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, env); err != nil {
		return data
	}
	return buf.Bytes()
}
