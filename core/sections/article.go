package sections

import (
	"context"
	"html/template"
	"strings"

	"github.com/mzinga/pageforge/core/layout"
)

// defaultAdInterval is how many paragraphs of article body separate two
// promotional inserts when the instance does not say otherwise.
const defaultAdInterval = 3

var articleDefinition = layout.Definition{
	ID:    "article",
	Label: "Article",
	DefaultProps: layout.Props{
		"body":        "",
		"ad_interval": defaultAdInterval,
		"ads":         []interface{}{},
	},
	Render: renderArticle,
}

var (
	articleTmpl = template.Must(template.New("article").Parse(`<article class="article-body">
{{.Body}}</article>
`))

	adTmpl = template.Must(template.New("ad").Parse(`<aside class="ad-slot"><a href="{{.URL}}" rel="sponsored">{{with .ImageURL}}<img src="{{.}}" alt="{{$.Title}}">{{end}}<span>{{.Title}}</span></a></aside>
`))
)

// renderArticle emits the rich-text body with promotional banners
// interleaved every ad_interval paragraphs. Ads are consumed in order and
// left-over ads are not appended at the end of a short article.
func renderArticle(_ context.Context, props layout.Props) (string, error) {
	body := strProp(props, "body")
	interval := intProp(props, "ad_interval", defaultAdInterval)
	ads := listProp(props, "ads")

	interleaved, err := interleaveAds(body, ads, interval)
	if err != nil {
		return "", err
	}
	return execute(articleTmpl, struct{ Body template.HTML }{Body: template.HTML(interleaved)})
}

// interleaveAds splits html at paragraph boundaries and inserts one rendered
// ad after every interval-th paragraph. interval < 1 disables interleaving.
func interleaveAds(html string, ads []layout.Props, interval int) (string, error) {
	if len(ads) == 0 || interval < 1 {
		return html, nil
	}

	paragraphs := strings.SplitAfter(html, "</p>")
	var b strings.Builder
	adIdx := 0
	for i, par := range paragraphs {
		b.WriteString(par)
		if par == "" || adIdx >= len(ads) {
			continue
		}
		// only insert between paragraphs, never after the last one
		atBoundary := i < len(paragraphs)-1 && paragraphs[i+1] != ""
		if atBoundary && (i+1)%interval == 0 {
			out, err := renderAd(ads[adIdx])
			if err != nil {
				return "", err
			}
			b.WriteString(out)
			adIdx++
		}
	}
	return b.String(), nil
}

func renderAd(ad layout.Props) (string, error) {
	return execute(adTmpl, struct {
		Title, URL, ImageURL string
	}{
		Title:    strProp(ad, "title"),
		URL:      strProp(ad, "url"),
		ImageURL: strProp(ad, "image_url"),
	})
}
