package layout

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/mzinga/pageforge/core"
)

var (
	pagePathTag   = "pagepath"
	pagePathText  = "must be a /-prefixed path of lowercase letters, digits and dashes"
	pagePathRegex = regexp.MustCompile(`^/[a-z0-9\-/]*$`)
)

func init() {
	_ = core.Validate.RegisterValidation(pagePathTag, pagePathValidation)
	core.RegisterCustomTranslation(pagePathTag, pagePathText)
}

// pagePathValidation checks the page slug form: "/"-prefixed, lowercase,
// no empty segments ("//") and no trailing slash except for the root page.
func pagePathValidation(fl validator.FieldLevel) bool {
	slug := fl.Field().String()
	if !pagePathRegex.MatchString(slug) {
		return false
	}
	if strings.Contains(slug, "//") {
		return false
	}
	if slug != "/" && strings.HasSuffix(slug, "/") {
		return false
	}
	return true
}
