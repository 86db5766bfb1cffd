package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"time"

	val "github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"rental/shared/constant"
	"rental/shared/failure"
)

var validate *val.Validate

func registerMimetypeValidation(field val.FieldLevel) bool {
	var contentType string

	switch file := field.Field().Interface().(type) {
	case multipart.FileHeader:
		contentType = file.Header.Get(constant.RequestHeaderContentType)
	case *multipart.FileHeader:
		contentType = file.Header.Get(constant.RequestHeaderContentType)
	default:
		return false
	}

	allowedTypes := strings.Split(field.Param(), " ")

	return slices.Contains(allowedTypes, contentType)
}

func registerFileSizeValidation(field val.FieldLevel) bool {
	var fileSize int64

	switch file := field.Field().Interface().(type) {
	case multipart.FileHeader:
		fileSize = file.Size
	case *multipart.FileHeader:
		fileSize = file.Size
	}

	maxSizeMB, err := strconv.ParseFloat(field.Param(), 64)
	if err != nil {
		return false
	}

	bytesConversion := 1024.0
	maxSizeBytes := int64(maxSizeMB * bytesConversion * bytesConversion)

	return fileSize <= maxSizeBytes
}

// decimalCompare backs the dgt and dgte tags, compared exactly against the tag parameter.
func decimalCompare(strict bool) val.Func {
	return func(field val.FieldLevel) bool {
		value, ok := field.Field().Interface().(decimal.Decimal)
		if !ok {
			return false
		}

		bound, err := decimal.NewFromString(field.Param())
		if err != nil {
			return false
		}

		if strict {
			return value.GreaterThan(bound)
		}

		return value.GreaterThanOrEqual(bound)
	}
}

func registerDateValidation(field val.FieldLevel) bool {
	_, err := time.Parse(time.DateOnly, field.Field().String())

	return err == nil
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	validations := map[string]val.Func{
		"mimetypes":   registerMimetypeValidation,
		"maxfilesize": registerFileSizeValidation,
		"dgt":         decimalCompare(true),
		"dgte":        decimalCompare(false),
		"date":        registerDateValidation,
	}

	for tag, fn := range validations {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}

		return name
	})
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	if err := Decode(r, data); err != nil {
		return err
	}

	return ValidateStruct(data)
}

// Decode only parses the JSON body. Used when the service normalizes input before validating it.
func Decode[T any](r io.Reader, data *T) error {
	if err := json.NewDecoder(r).Decode(data); err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return nil
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}
