package req

import (
	"errors"
	"fmt"
	"net/url"

	gallery "github.com/aguasmedia/gallery"
	"github.com/gorilla/schema"
)

type queryParamDecoder struct {
	dec *schema.Decoder
}

func newQueryParamDecoder() queryParamDecoder {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)

	return queryParamDecoder{dec}
}

func (q queryParamDecoder) decode(structPtr interface{}, params url.Values) error {
	if err := q.dec.Decode(structPtr, params); err != nil {
		return translateDecoderError(err)
	}

	return nil
}

// translateDecoderError converts an error returned by *schema.Decoder into standardized errors.
func translateDecoderError(err error) error {
	var pkgErrs schema.MultiError
	if !errors.As(err, &pkgErrs) {
		return fmt.Errorf("%w: %s", gallery.ErrBadFormat, err)
	}

	var validErrs ValidationErrors
	for _, pkgErr := range pkgErrs {
		switch err := pkgErr.(type) {
		case schema.ConversionError:
			validErrs = append(validErrs, ValidationError{
				Field: err.Key,
				Got:   "bad value",
				Rule:  "must be " + err.Type.String(),
			})

		case schema.UnknownKeyError:
			validErrs = append(validErrs, ValidationError{
				Field: err.Key,
				Got:   "value is set",
				Rule:  "unexpected key should not be set",
			})

		default:
			// anything else is a programming error in the target struct
			return fmt.Errorf("%w: %s", gallery.ErrUnexpected, err)
		}
	}

	return validErrs
}
