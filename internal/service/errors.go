// Package service implements the business logic of the recipe backend:
// recipe composition, shopping-list aggregation, favorites/basket
// membership, follows, authentication and image storage.
//
// This file centralizes service-level error values so that they can be
// consistently returned by service methods and checked by callers.
// Translation into HTTP status codes happens at the handler layer.
package service

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// Validation errors: malformed or policy-violating input. A validation
// failure aborts before any write.
var (
	// ErrInvalidCookingTime is returned when a recipe's cooking time is
	// below one minute.
	ErrInvalidCookingTime = errors.New("cooking time must be at least 1")

	// ErrInvalidAmount is returned when an ingredient amount is below 1.
	ErrInvalidAmount = errors.New("amount must not be zero")

	// ErrIngredientNotFound is returned when a submitted ingredient id
	// does not resolve to a catalog entry.
	ErrIngredientNotFound = errors.New("ingredient not found")

	// ErrDuplicateIngredient is returned when the same ingredient id
	// appears more than once in a single payload.
	ErrDuplicateIngredient = errors.New("ingredient already in recipe")

	// ErrNoIngredients / ErrNoTags are returned when the configured
	// minimum-count policy is enabled and the payload is empty.
	ErrNoIngredients = errors.New("recipe requires at least one ingredient")
	ErrNoTags        = errors.New("recipe requires at least one tag")

	// ErrSelfFollow is returned when a user attempts to follow themselves.
	ErrSelfFollow = errors.New("cannot follow yourself")
)

// ErrNotRecipeAuthor is returned when a user tries to mutate a recipe
// they do not own.
var ErrNotRecipeAuthor = errors.New("not the recipe author")

// Conflict errors: a uniqueness constraint already holds. Constraint
// enforcement lives in the store, so concurrent adds race safely.
var (
	ErrAlreadyFavorited = errors.New("recipe already in favorites")
	ErrAlreadyInBasket  = errors.New("recipe already in basket")
	ErrAlreadyFollowing = errors.New("already subscribed")
)

// Not-found errors: the referenced entity or membership row is absent.
var (
	ErrRecipeNotFound = errors.New("recipe not found")
	ErrUserNotFound   = errors.New("user not found")
	ErrTagNotFound    = errors.New("tag not found")
	ErrNotInFavorites = errors.New("not in favorites")
	ErrNotInBasket    = errors.New("not in basket")
	ErrNotSubscribed  = errors.New("not subscribed")
)

// Auth errors.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
	ErrTokenRevoked       = errors.New("token revoked")
)

// IsValidation reports whether err belongs to the validation taxonomy.
func IsValidation(err error) bool {
	for _, e := range []error{
		ErrInvalidCookingTime, ErrInvalidAmount, ErrIngredientNotFound,
		ErrDuplicateIngredient, ErrNoIngredients, ErrNoTags, ErrSelfFollow,
	} {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}

// IsConflict reports whether err belongs to the conflict taxonomy.
func IsConflict(err error) bool {
	return errors.Is(err, ErrAlreadyFavorited) ||
		errors.Is(err, ErrAlreadyInBasket) ||
		errors.Is(err, ErrAlreadyFollowing) ||
		errors.Is(err, ErrUserExists)
}

// IsNotFound reports whether err belongs to the not-found taxonomy.
func IsNotFound(err error) bool {
	for _, e := range []error{
		ErrRecipeNotFound, ErrUserNotFound, ErrTagNotFound,
		ErrNotInFavorites, ErrNotInBasket, ErrNotSubscribed,
	} {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}

// isDuplicateKey classifies store-level unique violations. GORM's error
// translation covers the postgres and sqlite drivers; the string checks
// keep the classification working when translation is unavailable.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}
