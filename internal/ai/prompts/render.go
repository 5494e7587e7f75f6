package prompts

import (
	"fmt"
	"strconv"
	"strings"
	"text/template"
)

// Template binds a named prompt text to the JSON schema its reply must
// satisfy. Rendering is pure string construction: every placeholder must
// resolve from the input, and list-valued fields are expanded with range
// blocks. Templates with an empty OutputSchema (image prompts) render the
// body alone; otherwise the reply contract is appended so the schema's
// per-field descriptions steer the model.
type Template struct {
	Name         string
	OutputSchema string
	tmpl         *template.Template
}

var funcs = template.FuncMap{
	// Plain decimal formatting. The default %v rendering switches large
	// floats to exponent notation, which reads badly inside a prompt.
	"num": func(v float64) string {
		return strconv.FormatFloat(v, 'f', -1, 64)
	},
}

func bind(name, outputSchema, text string) Template {
	return Template{
		Name:         name,
		OutputSchema: outputSchema,
		tmpl: template.Must(template.New(name).
			Funcs(funcs).
			Option("missingkey=error").
			Parse(text)),
	}
}

// Render substitutes the input into the template and, when an output schema
// is bound, appends the reply contract.
func (t Template) Render(input any) (string, error) {
	var sb strings.Builder
	if err := t.tmpl.Execute(&sb, input); err != nil {
		return "", fmt.Errorf("render prompt %s: %w", t.Name, err)
	}
	if t.OutputSchema == "" {
		return sb.String(), nil
	}
	sb.WriteString("\n\nRespond with a single JSON object and nothing else: no prose, no markdown fences. ")
	sb.WriteString("The object must conform to the following JSON Schema; each field's \"description\" tells you what to produce:\n\n")
	sb.WriteString(t.OutputSchema)
	return sb.String(), nil
}
