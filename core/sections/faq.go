package sections

import (
	"context"
	"html/template"

	"github.com/mzinga/pageforge/core/layout"
)

var faqDefinition = layout.Definition{
	ID:    "faq",
	Label: "FAQ",
	DefaultProps: layout.Props{
		"title": "Frequently Asked Questions",
		"items": []interface{}{},
	},
	Render: renderFAQ,
}

var faqTmpl = template.Must(template.New("faq").Parse(`<section class="faq">
{{with .Title}}<h2>{{.}}</h2>{{end}}
<dl>
{{range .Items}}<dt>{{.Question}}</dt><dd>{{.Answer}}</dd>
{{end}}</dl>
</section>
`))

type faqItem struct {
	Question, Answer string
}

func renderFAQ(_ context.Context, props layout.Props) (string, error) {
	entries := listProp(props, "items")
	items := make([]faqItem, 0, len(entries))
	for _, entry := range entries {
		items = append(items, faqItem{
			Question: strProp(entry, "question"),
			Answer:   strProp(entry, "answer"),
		})
	}
	return execute(faqTmpl, struct {
		Title string
		Items []faqItem
	}{
		Title: strProp(props, "title"),
		Items: items,
	})
}
