package restaurant

import (
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// MaxLimit bounds the top-N slider.
const MaxLimit = 20

// Selection is a dashboard filter. A nil list includes everything; an empty
// non-nil list includes nothing.
type Selection struct {
	Countries []string `json:"countries" yaml:"countries"`
	Cuisines  []string `json:"cuisines" yaml:"cuisines"`
	Limit     int      `json:"limit" yaml:"limit" validate:"min=0,max=20"`
}

// DefaultSelection includes every row and shows the full top list.
func DefaultSelection() Selection {
	return Selection{Limit: MaxLimit}
}

var validate = validator.New()

// Validate checks the selection bounds.
func (s Selection) Validate() error {
	if err := validate.Struct(s); err != nil {
		return errors.Wrap(err, "invalid selection")
	}
	return nil
}

// Match reports whether a restaurant passes the country and cuisine filters.
func (s Selection) Match(r Restaurant) bool {
	return includes(s.Countries, r.Country) && includes(s.Cuisines, r.Cuisine)
}

func includes(set []string, v string) bool {
	if set == nil {
		return true
	}
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
