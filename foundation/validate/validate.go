// Package validate provides support for validating decoded models with
// human readable field errors.
package validate

import (
	"errors"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// validate holds the settings and caches for validating models.
var validate *validator.Validate

// translator is a cache of locale and translation information.
var translator ut.Translator

func init() {

	// Instantiate a validator.
	validate = validator.New()

	// Instantiate the english locale for the validator library.
	translator, _ = ut.New(en.New(), en.New()).GetTranslator("en")

	// Register the english error messages for use.
	en_translations.RegisterDefaultTranslations(validate, translator)
}

// Check validates the provided model against its declared tags.
func Check(model any) error {
	if err := validate.Struct(model); err != nil {

		// Use a type assertion to get the real error value.
		verrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return err
		}

		var b strings.Builder
		for i, verror := range verrors {
			if i > 0 {
				b.WriteString("; ")
			}
			b.WriteString(verror.Translate(translator))
		}

		return errors.New(b.String())
	}

	return nil
}
