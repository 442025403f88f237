// Copyright 2021 Converter Systems LLC. All rights reserved.

package ua

import (
	"reflect"

	"github.com/pkg/errors"
)

// GetValue returns the value of the DataValue, with ExtensionObjects unwrapped.
// If the value is an ExtensionObject with an Encodable body, the body is
// returned. If the value is an array of ExtensionObjects, a []any is returned
// where each ExtensionObject with an Encodable body is replaced by the body
// and the others are kept as is. Other values are returned unchanged.
func GetValue(dv *DataValue) (any, error) {
	if dv == nil {
		return nil, errors.Wrap(BadInvalidArgument, "data value is nil")
	}
	return unwrapValue(dv.Value()), nil
}

func unwrapValue(value any) any {
	switch v := value.(type) {
	case *ExtensionObject:
		if body, ok := v.Encodable(); ok {
			return body
		}
		return v
	case []*ExtensionObject:
		if v == nil {
			return v
		}
		values := make([]any, len(v))
		for i, eo := range v {
			if body, ok := eo.Encodable(); ok {
				values[i] = body
				continue
			}
			values[i] = eo
		}
		return values
	default:
		return value
	}
}

// GetValueOrDefault returns the unwrapped value of the DataValue if it is a T,
// otherwise defaultValue. If T is a slice type and the value is an array of
// ExtensionObjects, each unwrapped element must be assignable to the element
// type of T, or defaultValue is returned.
//
//	req := ua.GetValueOrDefault[*ua.ReadRequest](dv, nil)
//	reqs := ua.GetValueOrDefault[[]*ua.ReadRequest](dv, nil)
func GetValueOrDefault[T any](dv *DataValue, defaultValue T) T {
	if dv == nil {
		return defaultValue
	}
	value := unwrapValue(dv.Value())
	if v, ok := value.(T); ok {
		return v
	}
	if values, ok := value.([]any); ok {
		if v, ok := convertArray[T](values); ok {
			return v
		}
	}
	return defaultValue
}

// convertArray copies the values into a new slice of type T. It fails if T
// is not a slice type or if any value is not assignable to its element type.
func convertArray[T any](values []any) (T, bool) {
	var zero T
	typ := reflect.TypeOf((*T)(nil)).Elem()
	if typ.Kind() != reflect.Slice {
		return zero, false
	}
	elemType := typ.Elem()
	s := reflect.MakeSlice(typ, len(values), len(values))
	for i, elem := range values {
		if elem == nil {
			return zero, false
		}
		v := reflect.ValueOf(elem)
		if !v.Type().AssignableTo(elemType) {
			return zero, false
		}
		s.Index(i).Set(v)
	}
	return s.Interface().(T), true
}

// GetValueOrZero returns the unwrapped value of the DataValue if it is a T,
// otherwise the zero value of T.
func GetValueOrZero[T any](dv *DataValue) T {
	var zero T
	return GetValueOrDefault(dv, zero)
}

// GetArrayOrDefault returns the unwrapped value of the DataValue as a []E. If
// the value is not an array, or if any element is not an E, defaultValue is
// returned. No partial array is ever returned.
//
//	acks := ua.GetArrayOrDefault[*ua.SubscriptionAcknowledgement](dv, nil)
func GetArrayOrDefault[E any](dv *DataValue, defaultValue []E) []E {
	if dv == nil {
		return defaultValue
	}
	switch v := unwrapValue(dv.Value()).(type) {
	case []E:
		return v
	case []any:
		values := make([]E, len(v))
		for i, elem := range v {
			e, ok := elem.(E)
			if !ok {
				return defaultValue
			}
			values[i] = e
		}
		return values
	default:
		return defaultValue
	}
}

// GetArrayOrZero returns the unwrapped value of the DataValue as a []E, or nil.
func GetArrayOrZero[E any](dv *DataValue) []E {
	return GetArrayOrDefault[E](dv, nil)
}
