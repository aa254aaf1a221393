package sections

import (
	"context"
	"html/template"

	"github.com/mzinga/pageforge/core/layout"
)

var promoBannerDefinition = layout.Definition{
	ID:    "promo_banner",
	Label: "Promo Banner",
	DefaultProps: layout.Props{
		"text":  "",
		"url":   "",
		"theme": "dark",
	},
	Render: renderPromoBanner,
}

var promoBannerTmpl = template.Must(template.New("promo_banner").Parse(`<aside class="promo-banner promo-{{.Theme}}"><a href="{{.URL}}" rel="sponsored">{{.Text}}</a></aside>
`))

func renderPromoBanner(_ context.Context, props layout.Props) (string, error) {
	theme := strProp(props, "theme")
	if theme == "" {
		theme = "dark"
	}
	return execute(promoBannerTmpl, struct {
		Text, URL, Theme string
	}{
		Text:  strProp(props, "text"),
		URL:   strProp(props, "url"),
		Theme: theme,
	})
}
