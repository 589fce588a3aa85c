// Package converters provides stock rules.TypeConverter implementations.
package converters

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/google/uuid"

	"automapper/rules"
)

var (
	// ErrNotCountable is returned by Count for values without a length.
	ErrNotCountable = errors.New("converters: value is not countable")
	// ErrNotList is returned by Join for values that are not a slice or array.
	ErrNotList = errors.New("converters: value is not a list")
	// ErrNotUUID is returned when a value cannot be read as a UUID.
	ErrNotUUID = errors.New("converters: value is not a uuid")
)

// Count converts a slice, array, map or string into its length. nil counts
// as zero.
var Count rules.TypeConverter = rules.ConverterFunc(func(value any) (any, error) {
	if value == nil {
		return 0, nil
	}

	v := reflect.ValueOf(value)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return 0, nil
		}

		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map, reflect.String, reflect.Chan:
		return v.Len(), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrNotCountable, value)
	}
})

// Join converts a slice or array into its elements' text joined by delimiter.
type Join string

// Convert implements rules.TypeConverter.
func (j Join) Convert(value any) (any, error) {
	if value == nil {
		return "", nil
	}

	v := reflect.ValueOf(value)
	if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		return nil, fmt.Errorf("%w: %T", ErrNotList, value)
	}

	parts := make([]string, v.Len())
	for i := range parts {
		parts[i] = fmt.Sprint(v.Index(i).Interface())
	}

	return strings.Join(parts, string(j)), nil
}

// UUID parses a string or byte slice into a uuid.UUID. An empty string
// yields uuid.Nil.
var UUID rules.TypeConverter = rules.ConverterFunc(func(value any) (any, error) {
	switch v := value.(type) {
	case nil:
		return uuid.Nil, nil
	case uuid.UUID:
		return v, nil
	case string:
		if v == "" {
			return uuid.Nil, nil
		}

		id, err := uuid.Parse(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrNotUUID, err)
		}

		return id, nil
	case []byte:
		id, err := uuid.ParseBytes(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrNotUUID, err)
		}

		return id, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrNotUUID, value)
	}
})

// UUIDString formats a uuid.UUID as its canonical string. uuid.Nil and nil
// become the empty string.
var UUIDString rules.TypeConverter = rules.ConverterFunc(func(value any) (any, error) {
	switch v := value.(type) {
	case nil:
		return "", nil
	case uuid.UUID:
		if v == uuid.Nil {
			return "", nil
		}

		return v.String(), nil
	case *uuid.UUID:
		if v == nil || *v == uuid.Nil {
			return "", nil
		}

		return v.String(), nil
	case [16]byte:
		return uuid.UUID(v).String(), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrNotUUID, value)
	}
})

type chain []rules.TypeConverter

// Chain applies converters left to right. The first error stops the chain.
func Chain(cs ...rules.TypeConverter) rules.TypeConverter {
	return chain(cs)
}

func (c chain) Convert(value any) (any, error) {
	var err error
	for _, conv := range c {
		if value, err = conv.Convert(value); err != nil {
			return nil, err
		}
	}

	return value, nil
}
