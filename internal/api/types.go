package api

import (
	"errors"
	"fmt"
)

// QueryParams holds optional query string values; empty values are dropped.
type QueryParams map[string]string

// --- Errors ---

// NetworkError reports a failed call to the remote API: transport failures,
// non-2xx responses and undecodable bodies all land here.
type NetworkError struct {
	Op         string
	URL        string
	StatusCode int
	Err        error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err is a NetworkError for a 404 response.
func IsNotFound(err error) bool {
	var netErr *NetworkError
	return errors.As(err, &netErr) && netErr.StatusCode == 404
}

// --- Resource Lists ---

// NamedResource is a name plus the absolute URL of the full resource.
type NamedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type namedResourceList struct {
	Count    int             `json:"count"`
	Next     *string         `json:"next"`
	Previous *string         `json:"previous"`
	Results  []NamedResource `json:"results"`
}

// --- Creature ---

// Creature is the full record behind one catalog entry.
type Creature struct {
	ID             int           `json:"id"`
	Name           string        `json:"name"`
	Height         int           `json:"height"`
	Weight         int           `json:"weight"`
	BaseExperience *int          `json:"base_experience"`
	Sprites        Sprites       `json:"sprites"`
	Types          []TypeSlot    `json:"types"`
	Abilities      []AbilitySlot `json:"abilities"`
	Stats          []StatValue   `json:"stats"`
}

// Sprites holds image URLs. The default sprite may be null upstream.
type Sprites struct {
	FrontDefault *string `json:"front_default"`
}

// TypeSlot is one of a creature's types.
type TypeSlot struct {
	Slot int           `json:"slot"`
	Type NamedResource `json:"type"`
}

// AbilitySlot is one of a creature's abilities.
type AbilitySlot struct {
	Slot     int           `json:"slot"`
	IsHidden bool          `json:"is_hidden"`
	Ability  NamedResource `json:"ability"`
}

// StatValue is a base stat such as hp or speed.
type StatValue struct {
	BaseStat int           `json:"base_stat"`
	Effort   int           `json:"effort"`
	Stat     NamedResource `json:"stat"`
}
