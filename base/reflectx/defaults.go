// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package reflectx provides reflection helpers for config structs.
package reflectx

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"cogentcore.org/gloom/base/errors"
)

// SetFromDefaultTags sets the values of the fields of the given
// pointer to a struct from their `default:` struct field tags.
// Nested structs without a tag are set recursively. Slice defaults
// are comma separated. It returns the first error encountered, but
// keeps setting the remaining fields.
func SetFromDefaultTags(obj any) error {
	val := reflect.ValueOf(obj)
	if val.Kind() != reflect.Pointer || val.IsNil() {
		return fmt.Errorf("reflectx.SetFromDefaultTags: need a non-nil pointer to a struct, not %T", obj)
	}
	val = val.Elem()
	if val.Kind() != reflect.Struct {
		return fmt.Errorf("reflectx.SetFromDefaultTags: need a pointer to a struct, not %T", obj)
	}
	typ := val.Type()
	var errs []error
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		fv := val.Field(i)
		def, ok := f.Tag.Lookup("default")
		if f.Type.Kind() == reflect.Struct && !ok {
			if err := SetFromDefaultTags(fv.Addr().Interface()); err != nil {
				errs = append(errs, err)
			}
			continue
		}
		if !ok {
			continue
		}
		if err := SetFromString(fv, def); err != nil {
			errs = append(errs, fmt.Errorf("reflectx.SetFromDefaultTags: field %s of %s: %w", f.Name, typ.Name(), err))
		}
	}
	return errors.Join(errs...)
}

// SetFromString sets the given addressable value from the given string.
// Values implementing [encoding.TextUnmarshaler] are set with it.
// Slices are set from comma separated elements.
func SetFromString(v reflect.Value, s string) error {
	if v.CanAddr() {
		if tu, ok := v.Addr().Interface().(encoding.TextUnmarshaler); ok {
			return tu.UnmarshalText([]byte(s))
		}
	}
	switch v.Kind() {
	case reflect.String:
		v.SetString(s)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 0, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(s, 0, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetUint(n)
	case reflect.Float32, reflect.Float64:
		n, err := strconv.ParseFloat(s, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetFloat(n)
	case reflect.Slice:
		var parts []string
		if s != "" {
			parts = strings.Split(s, ",")
		}
		sl := reflect.MakeSlice(v.Type(), len(parts), len(parts))
		for i, p := range parts {
			if err := SetFromString(sl.Index(i), strings.TrimSpace(p)); err != nil {
				return err
			}
		}
		v.Set(sl)
	default:
		return fmt.Errorf("cannot set value of kind %s from a string", v.Kind())
	}
	return nil
}
