package models

// SignupForm carries the raw values of the signup form.
type SignupForm struct {
	FirstName       string
	LastName        string
	Email           string
	Password        string
	ConfirmPassword string
	TermsAgreed     bool
	Newsletter      bool
}

// LoginForm carries the raw values of the login form.
type LoginForm struct {
	Email    string
	Password string
}

// RecipeForm carries the raw values of the recipe submission form.
// PrepTime is kept as typed so that non-numeric input can be reported.
type RecipeForm struct {
	Title                 string
	Category              string
	PrepTime              string
	LeftoverIngredients   string
	AdditionalIngredients string
	Instructions          string
	Tips                  string
	Author                string
}

// Severity is the tone of a user-facing message.
type Severity string

// Message severities.
const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)
