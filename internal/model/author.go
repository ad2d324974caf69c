package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Author is a writer in the catalog. ID is assigned by the system of record;
// Biography and Image are optional and omitted from JSON when absent.
type Author struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null;uniqueIndex"`
	Biography *string   `json:"biography,omitempty"`
	Image     *string   `json:"image,omitempty"`
	Active    bool      `json:"active" gorm:"not null"`
	Books     []Book    `json:"-" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

var ErrInvalidAuthorShape = errors.New("invalid author shape")

type authorShape struct {
	ID        *uint   `json:"id" validate:"required"`
	Name      *string `json:"name" validate:"required"`
	Biography *string `json:"biography"`
	Image     *string `json:"image"`
	Active    *bool   `json:"active" validate:"required"`
}

var shapeValidator = newShapeValidator()

func newShapeValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// DecodeAuthor parses an externally supplied author and checks that id, name
// and active are present. Zero values (id 0, active false) count as present.
func DecodeAuthor(data []byte) (Author, error) {
	var s authorShape
	if err := json.Unmarshal(data, &s); err != nil {
		return Author{}, fmt.Errorf("%w: %v", ErrInvalidAuthorShape, err)
	}

	if err := shapeValidator.Struct(s); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			missing := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				missing = append(missing, fe.Field())
			}
			return Author{}, fmt.Errorf("%w: missing %s", ErrInvalidAuthorShape, strings.Join(missing, ", "))
		}
		return Author{}, fmt.Errorf("%w: %v", ErrInvalidAuthorShape, err)
	}

	return Author{
		ID:        *s.ID,
		Name:      *s.Name,
		Biography: s.Biography,
		Image:     s.Image,
		Active:    *s.Active,
	}, nil
}

// DecodeAuthors decodes a JSON array of authors, failing on the first entry
// that does not match the author shape.
func DecodeAuthors(data []byte) ([]Author, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAuthorShape, err)
	}

	authors := make([]Author, 0, len(raw))
	for i, r := range raw {
		a, err := DecodeAuthor(r)
		if err != nil {
			return nil, fmt.Errorf("author[%d]: %w", i, err)
		}
		authors = append(authors, a)
	}
	return authors, nil
}
