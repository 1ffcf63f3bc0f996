package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"slices"

	"github.com/MonkyMars/gecho"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ErrMalformed marks a stored value that does not decode into the expected shape
var ErrMalformed = errors.New("malformed stored value")

// Codec converts between a typed value and its stored text
type Codec[T any] interface {
	Encode(v T) (string, error)
	Decode(raw string) (T, error)
}

// Key is a typed storage key. Loading a value that fails to decode reports it
// as absent; the stored text is left untouched.
type Key[T any] struct {
	Scope Scope
	Name  string
	Codec Codec[T]
}

// Load returns the decoded value and whether a usable value was present
func (k Key[T]) Load(ctx context.Context, a *Accessor) (T, bool, error) {
	var zero T

	raw, ok, err := a.Get(ctx, k.Scope, k.Name)
	if err != nil || !ok {
		return zero, false, err
	}

	v, err := k.Codec.Decode(raw)
	if err != nil {
		if a.logger != nil {
			a.logger.Debug("Ignoring malformed stored value",
				gecho.Field("scope", k.Scope.String()),
				gecho.Field("key", k.Name),
				gecho.Field("error", err),
			)
		}
		return zero, false, nil
	}

	return v, true, nil
}

func (k Key[T]) Save(ctx context.Context, a *Accessor, v T) error {
	raw, err := k.Codec.Encode(v)
	if err != nil {
		return fmt.Errorf("encode %q failed: %w", k.Name, err)
	}
	return a.Set(ctx, k.Scope, k.Name, raw)
}

func (k Key[T]) Delete(ctx context.Context, a *Accessor) error {
	return a.Remove(ctx, k.Scope, k.Name)
}

// Take loads the value and removes the key, so a second Take sees nothing.
// The key is removed even when the stored value is malformed.
func (k Key[T]) Take(ctx context.Context, a *Accessor) (T, bool, error) {
	var zero T

	raw, present, err := a.Get(ctx, k.Scope, k.Name)
	if err != nil || !present {
		return zero, false, err
	}
	if err := a.Remove(ctx, k.Scope, k.Name); err != nil {
		return zero, false, err
	}

	v, err := k.Codec.Decode(raw)
	if err != nil {
		return zero, false, nil
	}
	return v, true, nil
}

// JSON returns a codec that stores values as JSON and validates decoded structs
// (and slices of structs) against their `validate` tags.
func JSON[T any]() Codec[T] {
	return jsonCodec[T]{}
}

type jsonCodec[T any] struct{}

func (jsonCodec[T]) Encode(v T) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (jsonCodec[T]) Decode(raw string) (T, error) {
	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return v, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if err := validateValue(v); err != nil {
		var zero T
		return zero, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return v, nil
}

func validateValue(v any) error {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Struct:
		return validate.Struct(v)
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			elem := rv.Index(i)
			if elem.Kind() != reflect.Struct {
				continue
			}
			if err := validate.Struct(elem.Interface()); err != nil {
				return fmt.Errorf("element %d: %w", i, err)
			}
		}
	}
	return nil
}

// OneOf returns a codec for plain text values restricted to the given set
func OneOf(values ...string) Codec[string] {
	return enumCodec(values)
}

type enumCodec []string

func (c enumCodec) Encode(v string) (string, error) {
	if !slices.Contains(c, v) {
		return "", fmt.Errorf("value %q not allowed", v)
	}
	return v, nil
}

func (c enumCodec) Decode(raw string) (string, error) {
	if !slices.Contains(c, raw) {
		return "", fmt.Errorf("%w: value %q not allowed", ErrMalformed, raw)
	}
	return raw, nil
}

// Flag returns a codec for presence flags: any non-empty value is true
func Flag() Codec[bool] {
	return flagCodec{}
}

type flagCodec struct{}

func (flagCodec) Encode(v bool) (string, error) {
	if !v {
		return "", errors.New("false flags are removed, not stored")
	}
	return "true", nil
}

func (flagCodec) Decode(raw string) (bool, error) {
	return raw != "", nil
}
