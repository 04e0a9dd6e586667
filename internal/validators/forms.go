package validators

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/MKhiriev/recook-book/models"
)

// Signup and login form fields.
const (
	FieldFirstName       = "firstName"
	FieldLastName        = "lastName"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirmPassword"
	FieldTerms           = "termsAgreement"
)

// Recipe form fields.
const (
	FieldTitle               = "title"
	FieldCategory            = "category"
	FieldPrepTime            = "prepTime"
	FieldLeftoverIngredients = "leftoverIngredients"
	FieldInstructions        = "instructions"
	FieldAuthor              = "author"
)

const (
	MinPrepTime = 1
	MaxPrepTime = 300
)

var (
	signupFields = []string{FieldFirstName, FieldLastName, FieldEmail, FieldPassword, FieldConfirmPassword, FieldTerms}
	loginFields  = []string{FieldEmail, FieldPassword}
	recipeFields = []string{FieldTitle, FieldCategory, FieldPrepTime, FieldLeftoverIngredients, FieldInstructions, FieldAuthor}
)

// FormValidator validates the signup, login and recipe forms.
type FormValidator struct {
}

func NewFormValidator() Validator {
	return &FormValidator{}
}

func (v *FormValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SignupForm:
		return v.validateSignup(ctx, value, fields...)
	case *models.SignupForm:
		return v.validateSignup(ctx, *value, fields...)

	case models.LoginForm:
		return v.validateLogin(ctx, value, fields...)
	case *models.LoginForm:
		return v.validateLogin(ctx, *value, fields...)

	case models.RecipeForm:
		return v.validateRecipe(ctx, value, fields...)
	case *models.RecipeForm:
		return v.validateRecipe(ctx, *value, fields...)

	case models.Recipe:
		return v.validateRecipe(ctx, recipeToForm(value), fields...)
	case *models.Recipe:
		return v.validateRecipe(ctx, recipeToForm(*value), fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *FormValidator) validateSignup(_ context.Context, form models.SignupForm, fields ...string) error {
	if len(fields) == 0 {
		fields = signupFields
	}

	var errs ValidationErrors
	for _, f := range fields {
		switch f {
		case FieldFirstName:
			if strings.TrimSpace(form.FirstName) == "" {
				errs = append(errs, FieldError{f, ErrRequired, "First name is required"})
			}
		case FieldLastName:
			if strings.TrimSpace(form.LastName) == "" {
				errs = append(errs, FieldError{f, ErrRequired, "Last name is required"})
			}
		case FieldEmail:
			if !IsValidEmail(form.Email) {
				errs = append(errs, FieldError{f, ErrInvalidEmail, "Please enter a valid email address"})
			}
		case FieldPassword:
			if !IsValidPassword(form.Password) {
				errs = append(errs, FieldError{f, ErrWeakPassword, "Password must be at least 8 characters with uppercase, lowercase, and number"})
			}
		case FieldConfirmPassword:
			if form.Password != form.ConfirmPassword {
				errs = append(errs, FieldError{f, ErrPasswordMismatch, "Passwords do not match"})
			}
		case FieldTerms:
			if !form.TermsAgreed {
				errs = append(errs, FieldError{f, ErrTermsNotAccepted, "You must agree to the terms and conditions"})
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return errs.orNil()
}

func (v *FormValidator) validateLogin(_ context.Context, form models.LoginForm, fields ...string) error {
	if len(fields) == 0 {
		fields = loginFields
	}

	var errs ValidationErrors
	for _, f := range fields {
		switch f {
		case FieldEmail:
			if !IsValidEmail(form.Email) {
				errs = append(errs, FieldError{f, ErrInvalidEmail, "Please enter a valid email address"})
			}
		case FieldPassword:
			if form.Password == "" {
				errs = append(errs, FieldError{f, ErrRequired, "Password is required"})
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return errs.orNil()
}

func (v *FormValidator) validateRecipe(_ context.Context, form models.RecipeForm, fields ...string) error {
	if len(fields) == 0 {
		fields = recipeFields
	}

	var errs ValidationErrors
	required := func(field, value, label string) bool {
		if strings.TrimSpace(value) == "" {
			errs = append(errs, FieldError{field, ErrRequired, label + " is required"})
			return false
		}
		return true
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			required(f, form.Title, "Recipe title")
		case FieldCategory:
			if required(f, form.Category, "Category") && !IsKnownCategory(form.Category) {
				errs = append(errs, FieldError{f, ErrInvalidCategory, "Please choose a valid category"})
			}
		case FieldPrepTime:
			if required(f, form.PrepTime, "Prep time") {
				if _, err := ParsePrepTime(form.PrepTime); err != nil {
					errs = append(errs, FieldError{f, ErrInvalidPrepTime, "Prep time must be between 1 and 300 minutes"})
				}
			}
		case FieldLeftoverIngredients:
			required(f, form.LeftoverIngredients, "Leftover ingredients")
		case FieldInstructions:
			required(f, form.Instructions, "Instructions")
		case FieldAuthor:
			required(f, form.Author, "Author name")
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return errs.orNil()
}

// recipeToForm lets stored and imported records share the form rules.
func recipeToForm(r models.Recipe) models.RecipeForm {
	return models.RecipeForm{
		Title:                 r.Title,
		Category:              string(r.Category),
		PrepTime:              strconv.Itoa(r.PrepTime),
		LeftoverIngredients:   r.LeftoverIngredients,
		AdditionalIngredients: r.AdditionalIngredients,
		Instructions:          r.Instructions,
		Tips:                  r.Tips,
		Author:                r.Author,
	}
}

// ParsePrepTime converts the raw prep time input into minutes.
func ParsePrepTime(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPrepTime, raw)
	}
	if n < MinPrepTime || n > MaxPrepTime {
		return 0, fmt.Errorf("%w: %d", ErrInvalidPrepTime, n)
	}

	return n, nil
}

// IsKnownCategory reports whether s names one of [models.Categories].
func IsKnownCategory(s string) bool {
	return slices.Contains(models.Categories, models.Category(s))
}
