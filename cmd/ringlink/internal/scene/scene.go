// Package scene loads and validates the YAML scene file consumed by
// "ringlink run".
//
// Example:
//
//	items: 12
//	radius: 3
//	min_clusters: 5
//	seed: 20250717
//	similarity:
//	  low: 0.2
//	  high: 1.0
//	fitter:
//	  padding: 0.3
//	  min_axis: 0.25
package scene

import (
	"errors"
	"fmt"
	"math"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/ringlink/layout"
	"github.com/katalvlaran/ringlink/similarity"
)

// Default scene values: the twelve-item demo.
const (
	DefaultItems       = 12
	DefaultMinClusters = 5
)

var (
	// ErrInvalid wraps every validation failure.
	ErrInvalid = errors.New("scene: invalid")

	// ErrMatrixSize indicates a similarity matrix that does not match items.
	ErrMatrixSize = errors.New("scene: similarity matrix size does not match items")

	// ErrOrderSize indicates an order whose length does not match items.
	ErrOrderSize = errors.New("scene: order length does not match items")
)

var validate = newValidator()

// newValidator reports fields by their YAML keys and registers "finite",
// which rejects ±Inf and NaN (YAML accepts .inf and .nan for floats).
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return !math.IsInf(f, 0) && !math.IsNaN(f)
	})

	return v
}

// Scene is one clustering run.
type Scene struct {
	Items       int        `yaml:"items" validate:"min=1"`
	Radius      float64    `yaml:"radius" validate:"finite,gt=0"`
	MinClusters int        `yaml:"min_clusters" validate:"min=1"`
	Seed        int64      `yaml:"seed"`
	Similarity  Similarity `yaml:"similarity"`
	Fitter      Fitter     `yaml:"fitter"`
	Order       []int      `yaml:"order" validate:"omitempty,unique,dive,gte=0"`
}

// Similarity selects a random matrix (Low/High) or an explicit one (Matrix).
type Similarity struct {
	Low    float64     `yaml:"low" validate:"finite,gt=0"`
	High   float64     `yaml:"high" validate:"finite,gtfield=Low,lte=1"`
	Matrix [][]float64 `yaml:"matrix"`
}

// Fitter overrides ellipse fitter settings; nil keeps the library default.
type Fitter struct {
	Padding *float64 `yaml:"padding" validate:"omitempty,finite,gte=0"`
	MinAxis *float64 `yaml:"min_axis" validate:"omitempty,finite,gt=0"`
}

// Default returns a scene with every default applied.
func Default() Scene {
	return Scene{
		Items:       DefaultItems,
		Radius:      layout.DefaultRadius,
		MinClusters: DefaultMinClusters,
		Similarity: Similarity{
			Low:  similarity.DefaultLow,
			High: similarity.DefaultHigh,
		},
	}
}

// Load reads and validates a scene file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML over Default and validates the result. When items is
// omitted and a matrix is given, items is taken from the matrix.
func Parse(data []byte) (*Scene, error) {
	s := Default()
	var raw struct {
		Items *int `yaml:"items"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	if raw.Items == nil && len(s.Similarity.Matrix) > 0 {
		s.Items = len(s.Similarity.Matrix)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// Validate checks struct tags and cross-field sizes.
func (s *Scene) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalid, formatValidationError(err))
	}
	if m := s.Similarity.Matrix; len(m) > 0 && len(m) != s.Items {
		return fmt.Errorf("%w: %d rows for %d items", ErrMatrixSize, len(m), s.Items)
	}
	if len(s.Order) > 0 && len(s.Order) != s.Items {
		return fmt.Errorf("%w: %d entries for %d items", ErrOrderSize, len(s.Order), s.Items)
	}

	return nil
}

// InitialOrder returns Order, or 0..Items-1 when Order is empty.
func (s *Scene) InitialOrder() []int {
	if len(s.Order) > 0 {
		return append([]int(nil), s.Order...)
	}
	out := make([]int, s.Items)
	for i := range out {
		out[i] = i
	}

	return out
}

func formatValidationError(err error) string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err.Error()
	}
	msgs := make([]string, 0, len(ve))
	for _, e := range ve {
		msgs = append(msgs, formatFieldError(e))
	}

	return strings.Join(msgs, "; ")
}

func formatFieldError(e validator.FieldError) string {
	field := strings.ToLower(e.Namespace())
	switch e.Tag() {
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s", field, e.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, e.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", field, e.Param())
	case "gtfield":
		return fmt.Sprintf("%s must be greater than %s", field, strings.ToLower(e.Param()))
	case "finite":
		return fmt.Sprintf("%s must be finite", field)
	case "unique":
		return fmt.Sprintf("%s must not repeat values", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
