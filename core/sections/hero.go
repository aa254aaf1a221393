package sections

import (
	"context"
	"html/template"

	"github.com/mzinga/pageforge/core/layout"
)

var heroDefinition = layout.Definition{
	ID:    "hero",
	Label: "Hero Banner",
	DefaultProps: layout.Props{
		"title":     "Welcome",
		"subtitle":  "",
		"cta_text":  "",
		"cta_url":   "",
		"image_url": "",
	},
	Render: renderHero,
}

var heroTmpl = template.Must(template.New("hero").Parse(`<section class="hero"{{with .ImageURL}} style="background-image: url('{{.}}')"{{end}}>
<h1>{{.Title}}</h1>
{{with .Subtitle}}<p class="hero-subtitle">{{.}}</p>{{end}}
{{if .CTAText}}<a class="hero-cta" href="{{.CTAURL}}">{{.CTAText}}</a>{{end}}
</section>
`))

func renderHero(_ context.Context, props layout.Props) (string, error) {
	return execute(heroTmpl, struct {
		Title, Subtitle, CTAText string
		CTAURL, ImageURL         string
	}{
		Title:    strProp(props, "title"),
		Subtitle: strProp(props, "subtitle"),
		CTAText:  strProp(props, "cta_text"),
		CTAURL:   strProp(props, "cta_url"),
		ImageURL: strProp(props, "image_url"),
	})
}
