package schemas

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/shopfront/catalog-service/models"
)

// schemaField collects errors that concern the document as a whole.
const schemaField = "_schema"

const (
	msgRequired     = "Missing data for required field."
	msgUnknown      = "Unknown field."
	msgNull         = "Field may not be null."
	msgInvalidInput = "Invalid input type."
)

// ValidationError lists the messages collected per input field.
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = name + ": " + strings.Join(e.Fields[name], " ")
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

func (e *ValidationError) add(field, msg string) {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[field] = append(e.Fields[field], msg)
}

type productInput struct {
	Name        *string  `json:"name" validate:"required,max=100"`
	Description *string  `json:"description" validate:"required,max=200"`
	Price       *float64 `json:"price" validate:"required,money"`
	Qty         *int     `json:"qty" validate:"required"`
}

func (in *productInput) fields() map[string]any {
	return map[string]any{
		"name":        &in.Name,
		"description": &in.Description,
		"price":       &in.Price,
		"qty":         &in.Qty,
	}
}

type categoryInput struct {
	Name *string `json:"name" validate:"required,max=100"`
}

func (in *categoryInput) fields() map[string]any {
	return map[string]any{
		"name": &in.Name,
	}
}

// input is a loadable schema: fields maps each accepted JSON key to the
// destination it decodes into.
type input interface {
	fields() map[string]any
}

var validate = newValidator()

// maxPrice bounds prices to what a decimal(10,2) column holds.
var maxPrice = decimal.New(1, 8)

// validMoney accepts values with at most two decimal places that fit the
// price column.
func validMoney(fl validator.FieldLevel) bool {
	d := decimal.NewFromFloat(fl.Field().Float())
	return d.Exponent() >= -2 && d.Abs().LessThan(maxPrice)
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("money", validMoney); err != nil {
		panic(err)
	}
	return v
}

// LoadProduct parses a plain product document into a new, unsaved product.
func LoadProduct(r io.Reader) (*models.Product, error) {
	var in productInput
	if err := load(r, &in); err != nil {
		return nil, err
	}
	return &models.Product{
		Name:        *in.Name,
		Description: *in.Description,
		Price:       decimal.NewFromFloat(*in.Price),
		Qty:         *in.Qty,
	}, nil
}

// LoadCategory parses a plain category document into a new, unsaved category.
func LoadCategory(r io.Reader) (*models.Category, error) {
	var in categoryInput
	if err := load(r, &in); err != nil {
		return nil, err
	}
	return &models.Category{Name: *in.Name}, nil
}

func load(r io.Reader, in input) error {
	verr := &ValidationError{}

	var raw map[string]json.RawMessage
	dec := json.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		verr.add(schemaField, msgInvalidInput)
		return verr
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		verr.add(schemaField, msgInvalidInput)
		return verr
	}

	fields := in.fields()
	for key, value := range raw {
		dst, ok := fields[key]
		if !ok {
			verr.add(key, msgUnknown)
			continue
		}
		if bytes.Equal(bytes.TrimSpace(value), []byte("null")) {
			verr.add(key, msgNull)
			continue
		}
		if err := json.Unmarshal(value, dst); err != nil {
			verr.add(key, typeMessage(dst))
		}
	}

	if err := validate.Struct(in); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return fmt.Errorf("validate input: %w", err)
		}
		for _, fe := range fieldErrs {
			if _, reported := verr.Fields[fe.Field()]; reported {
				continue
			}
			verr.add(fe.Field(), ruleMessage(fe))
		}
	}

	if len(verr.Fields) > 0 {
		return verr
	}
	return nil
}

func typeMessage(dst any) string {
	switch dst.(type) {
	case **string:
		return "Not a valid string."
	case **int:
		return "Not a valid integer."
	case **float64:
		return "Not a valid number."
	default:
		return msgInvalidInput
	}
}

func ruleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return msgRequired
	case "money":
		return "Not a valid price: at most 2 decimal places and below 100000000."
	case "max":
		return fmt.Sprintf("Longer than maximum length %s.", fe.Param())
	default:
		return fmt.Sprintf("Failed %s validation.", fe.Tag())
	}
}
