package sections

import (
	"context"
	"html/template"

	"github.com/mzinga/pageforge/core/layout"
)

var cardGridDefinition = layout.Definition{
	ID:    "card_grid",
	Label: "Review Card Grid",
	DefaultProps: layout.Props{
		"title":   "",
		"columns": 3,
		"cards":   []interface{}{},
	},
	Render: renderCardGrid,
}

var cardGridTmpl = template.Must(template.New("card_grid").Parse(`<section class="card-grid">
{{with .Title}}<h2>{{.}}</h2>{{end}}
<div class="cards cols-{{.Columns}}">
{{range .Cards}}<article class="card">{{with .Badge}}<span class="badge">{{.}}</span>{{end}}<h3><a href="{{.URL}}">{{.Name}}</a></h3><span class="rating">{{printf "%.1f" .Rating}}</span></article>
{{end}}</div>
</section>
`))

type card struct {
	Name, URL, Badge string
	Rating           float64
}

func renderCardGrid(_ context.Context, props layout.Props) (string, error) {
	items := listProp(props, "cards")
	cards := make([]card, 0, len(items))
	for _, item := range items {
		cards = append(cards, card{
			Name:   strProp(item, "name"),
			URL:    strProp(item, "url"),
			Badge:  strProp(item, "badge"),
			Rating: floatProp(item, "rating", 0),
		})
	}
	return execute(cardGridTmpl, struct {
		Title   string
		Columns int
		Cards   []card
	}{
		Title:   strProp(props, "title"),
		Columns: intProp(props, "columns", 3),
		Cards:   cards,
	})
}
