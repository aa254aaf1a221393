// Package sections provides the built-in section components of the public
// site and assembles them into a layout.Registry.
package sections

import (
	"bytes"
	"html/template"

	"github.com/mzinga/pageforge/core/layout"
)

// Registry returns the component catalog, in the order the admin UI
// presents them.
func Registry() (*layout.Registry, error) {
	return layout.NewRegistry(
		heroDefinition,
		articleDefinition,
		cardGridDefinition,
		promoBannerDefinition,
		faqDefinition,
	)
}

func execute(tmpl *template.Template, data interface{}) (string, error) {
	var b bytes.Buffer
	if err := tmpl.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}
