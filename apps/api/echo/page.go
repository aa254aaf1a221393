package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/mzinga/pageforge/core"
	"github.com/mzinga/pageforge/core/layout"
)

type pageApi struct {
	svc *layout.Service
}

func registerPageAPI(g *echo.Group, svc *layout.Service) {
	api := pageApi{svc: svc}

	g.GET("/sections", api.querySections)

	pg := g.Group("/pages")
	pg.GET("", api.query)
	pg.POST("", api.create)

	// the wildcard carries the "/"-prefixed page slug
	pg.GET("/*", api.retrieve)
	pg.PUT("/*", api.update)
	pg.DELETE("/*", api.destroy)
}

// pageSlug rebuilds the page slug from the route wildcard.
func pageSlug(ctx echo.Context) string {
	return "/" + ctx.Param("*")
}

// Handlers

// querySections lists the component catalog the admin UI builds its
// "add section" picker from.
func (api *pageApi) querySections(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.svc.Registry().Definitions())
}

func (api *pageApi) query(ctx echo.Context) error {
	var ordering Ordering
	ordering.Bind(ctx)

	docs, err := api.svc.QueryAll(ctx.Request().Context(), ordering.Orderings...)
	if err != nil {
		return errors.Wrap(err, "querying pages")
	}
	return ctx.JSON(http.StatusOK, docs)
}

func (api *pageApi) create(ctx echo.Context) error {
	var data layout.NewPage
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewPage")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	doc, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		if errors.Cause(err) == layout.ErrPageExists {
			return core.NewValidationError(err, core.FieldError{Field: "slug", Error: err.Error()})
		}
		return errors.Wrap(err, "creating page")
	}
	return ctx.JSON(http.StatusCreated, doc)
}

func (api *pageApi) retrieve(ctx echo.Context) error {
	doc, err := api.svc.GetBySlug(ctx.Request().Context(), pageSlug(ctx))
	if err != nil {
		if errors.Cause(err) == layout.ErrPageNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "getting page")
	}
	return ctx.JSON(http.StatusOK, doc)
}

// update overwrites the page's metadata and its full ordered section list
// in a single save; the admin UI owns the working copy until then.
func (api *pageApi) update(ctx echo.Context) error {
	var data layout.UpdatePage
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdatePage")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	doc, err := api.svc.Save(ctx.Request().Context(), pageSlug(ctx), data)
	if err != nil {
		if errors.Cause(err) == layout.ErrPageNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "saving page")
	}
	return ctx.JSON(http.StatusOK, doc)
}

func (api *pageApi) destroy(ctx echo.Context) error {
	if err := api.svc.Delete(ctx.Request().Context(), pageSlug(ctx)); err != nil {
		if errors.Cause(err) == layout.ErrPageNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "deleting page")
	}
	return ctx.NoContent(http.StatusNoContent)
}
