package gallery

// An Environment is a different context in which a gallery app operates.
type Environment string

const (
	Development Environment = "DEVELOPMENT"
	Production  Environment = "PRODUCTION"
	Review      Environment = "REVIEW"
	Staging     Environment = "STAGING"
	Testing     Environment = "TESTING"
)

func (e Environment) String() string { return string(e) }

func (e Environment) Valid() error {
	switch e {
	case Development, Production, Review, Staging, Testing:
		return nil
	default:
		return ErrNotValid
	}
}

func (e Environment) IsDevelopment() bool {
	return e == Development
}

func (e Environment) IsProduction() bool {
	return e == Production
}

func (e Environment) IsTesting() bool {
	return e == Testing
}

// SecureCookies asserts whether the Environment requires the Secure flag
// on cookies the app sets.
func (e Environment) SecureCookies() bool {
	switch e {
	case Production, Review, Staging:
		return true
	default:
		return false
	}
}

// Enumerable is the interface implemented by types that can only be represented by enumerable, constant values.
//
// Implementing a new Enumerable or adding a new constant value ought to include updating the database with the same
// types and values.
type Enumerable interface {
	String() string
	Valid() error
}
