package postgres

import (
	"errors"
	"fmt"
	"regexp"

	gallery "github.com/aguasmedia/gallery"
	"gorm.io/gorm"
)

var (
	// errUniqViolation matches PostgreSQL's unique-constraint error code.
	//
	// Cf., https://www.postgresql.org/docs/current/errcodes-appendix.html
	errUniqViolation       = regexp.MustCompile(`SQLSTATE (23505)`)
	errConstraintViolation = regexp.MustCompile(`SQLSTATE (23502)`)
)

// TranslateError converts gorm and driver errors into the app's sentinel
// error taxonomy so callers never switch on driver strings.
func TranslateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %s", gallery.ErrNotExist, err)
	}

	msg := err.Error()
	if errUniqViolation.MatchString(msg) || errConstraintViolation.MatchString(msg) {
		return fmt.Errorf("%w: %s", gallery.ErrNotValid, err)
	}

	return fmt.Errorf("%w: %s", gallery.ErrUnexpected, err)
}
