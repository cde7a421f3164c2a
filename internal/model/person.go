package model

import (
	"fmt"
	"strings"

	"github.com/deppfellow/people-api/internal/validation"
)

// HairColor is the closed set of accepted hair colors.
type HairColor string

const (
	HairColorBlack  HairColor = "black"
	HairColorWhite  HairColor = "white"
	HairColorBrown  HairColor = "brown"
	HairColorRed    HairColor = "red"
	HairColorBlonde HairColor = "blonde"
)

var hairColors = []HairColor{
	HairColorBlack,
	HairColorWhite,
	HairColorBrown,
	HairColorRed,
	HairColorBlonde,
}

// IsValid reports whether h is one of the declared colors.
func (h HairColor) IsValid() bool {
	for _, c := range hairColors {
		if h == c {
			return true
		}
	}
	return false
}

// Values lists every accepted color, in declaration order.
func (h HairColor) Values() []string {
	values := make([]string, len(hairColors))
	for i, c := range hairColors {
		values[i] = string(c)
	}
	return values
}

// ParseHairColor returns the color named s.
func ParseHairColor(s string) (HairColor, error) {
	h := HairColor(s)
	if !h.IsValid() {
		return "", fmt.Errorf("invalid hair color %q, want one of: %s", s, strings.Join(h.Values(), ", "))
	}
	return h, nil
}

func (h HairColor) String() string {
	return string(h)
}

func (h HairColor) MarshalText() ([]byte, error) {
	return []byte(h), nil
}

// UnmarshalText accepts any string. Membership is checked by the `enum`
// validation so an unknown color is reported as a field error.
func (h *HairColor) UnmarshalText(text []byte) error {
	*h = HairColor(text)
	return nil
}

// PersonBase holds the public attributes of a person.
type PersonBase struct {
	FirstName string     `json:"first_name" validate:"required,min=1,max=50" example:"Facundo"`
	LastName  string     `json:"last_name" validate:"required,min=1,max=50" example:"García Martoni"`
	Age       int        `json:"age" validate:"required,gte=18,lt=100" example:"25"`
	Email     string     `json:"email" validate:"required,email" example:"facundo@example.com"`
	HairColor *HairColor `json:"hair_color" validate:"omitnil,enum" example:"black"`
	IsMarried *bool      `json:"is_married" example:"false"`
}

// Person is the request body used to create or update a person.
type Person struct {
	PersonBase
	Password string `json:"password" validate:"required,min=8" example:"supersecret"`
}

func (p *Person) Validate() error {
	return validation.Struct(p)
}

// Out returns the response shape of p. The password is dropped.
func (p Person) Out() PersonOut {
	return PersonOut{PersonBase: p.PersonBase}
}

// Fields returns every field of p keyed by its wire name, password included.
func (p Person) Fields() map[string]any {
	return map[string]any{
		"first_name": p.FirstName,
		"last_name":  p.LastName,
		"age":        p.Age,
		"email":      p.Email,
		"hair_color": p.HairColor,
		"is_married": p.IsMarried,
		"password":   p.Password,
	}
}

// PersonOut is the response shape for a person: PersonBase and nothing else.
type PersonOut struct {
	PersonBase
}

// Location is where a person lives.
type Location struct {
	City    string `json:"city" validate:"required,min=2,max=40" example:"Buenos Aires"`
	State   string `json:"state" validate:"required,min=2,max=40" example:"Buenos Aires"`
	Country string `json:"country" validate:"required,min=2,max=40" example:"Argentina"`
}

// Fields returns every field of l keyed by its wire name.
func (l Location) Fields() map[string]any {
	return map[string]any{
		"city":    l.City,
		"state":   l.State,
		"country": l.Country,
	}
}
