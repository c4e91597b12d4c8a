// Package decode wraps mapstructure with the strict settings shared by the
// option and configuration loaders.
package decode

import (
	"fmt"
	"math"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// Strict decodes input into the struct pointed to by output. Unknown keys are
// errors, no weak typing is applied, and floats are only accepted for integer
// fields when they carry no fractional part.
func Strict(input interface{}, output interface{}) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:  integralFloat,
		ErrorUnused: true,
		Result:      output,
	})
	if err != nil {
		return err
	}
	return dec.Decode(input)
}

// Messages flattens a mapstructure error into its individual messages.
func Messages(err error) []string {
	if merr, ok := err.(*mapstructure.Error); ok {
		return merr.Errors
	}
	return []string{err.Error()}
}

func integralFloat(from, to reflect.Type, data interface{}) (interface{}, error) {
	for to.Kind() == reflect.Ptr {
		to = to.Elem()
	}
	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
	default:
		return data, nil
	}

	var f float64
	switch v := data.(type) {
	case float64:
		f = v
	case float32:
		f = float64(v)
	default:
		return data, nil
	}
	if f != math.Trunc(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("expected an integer, got %v", data)
	}
	return int64(f), nil
}
