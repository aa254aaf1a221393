package echoapi

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/mzinga/pageforge/core"
	"github.com/mzinga/pageforge/core/layout"
)

type siteApi struct {
	svc      *layout.Service
	renderer *layout.Renderer
	conf     *core.Config
}

func registerSiteAPI(e *echo.Echo, svc *layout.Service, renderer *layout.Renderer, conf *core.Config) {
	api := siteApi{svc: svc, renderer: renderer, conf: conf}

	e.GET("/site", api.render)   // root page ("/")
	e.GET("/site/*", api.render) // everything else
}

var siteTmpl = template.Must(template.New("site").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
{{with .Description}}<meta name="description" content="{{.}}">
{{end}}</head>
<body>
<main>
{{.Body}}</main>
</body>
</html>
`))

// render serves the public version of a composed page: SEO head plus the
// visible sections in their stored order.
func (api *siteApi) render(ctx echo.Context) error {
	doc, err := api.svc.GetBySlug(ctx.Request().Context(), pageSlug(ctx))
	if err != nil {
		if errors.Cause(err) == layout.ErrPageNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "getting page")
	}

	body := api.renderer.Render(ctx.Request().Context(), doc)

	title := doc.SeoTitle
	if title == "" {
		title = doc.Title
	}
	if api.conf.SiteName != "" {
		title += " | " + api.conf.SiteName
	}

	var b bytes.Buffer
	err = siteTmpl.Execute(&b, struct {
		Title, Description string
		Body               template.HTML
	}{
		Title:       title,
		Description: doc.SeoDescription,
		Body:        template.HTML(body),
	})
	if err != nil {
		return errors.Wrap(err, "rendering page")
	}
	return ctx.HTML(http.StatusOK, b.String())
}
