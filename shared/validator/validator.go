package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"reflect"
	"strconv"

	val "github.com/go-playground/validator/v10"

	"frs/shared/constant"
	"frs/shared/failure"
)

var validate *val.Validate

func fileHeader(field val.FieldLevel) (*multipart.FileHeader, bool) {
	switch file := field.Field().Interface().(type) {
	case multipart.FileHeader:
		return &file, true
	case *multipart.FileHeader:
		return file, file != nil
	}

	return nil, false
}

// registerFileSizeValidation accepts a multipart file, a string (its length) or
// a byte count. The parameter is the limit in megabytes.
func registerFileSizeValidation(field val.FieldLevel) bool {
	var fileSize int64

	if file, ok := fileHeader(field); ok {
		fileSize = file.Size
	} else {
		switch v := field.Field(); v.Kind() {
		case reflect.String:
			fileSize = int64(v.Len())
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			fileSize = v.Int()
		default:
			return false
		}
	}

	maxSizeMB, err := strconv.ParseFloat(field.Param(), 64)
	if err != nil {
		return false
	}

	return fileSize <= int64(maxSizeMB*constant.BytesPerMegabyte)
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	if err := validate.RegisterValidation("maxfilesize", registerFileSizeValidation); err != nil {
		panic(err)
	}
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
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
