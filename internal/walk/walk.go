/*
SPDX-FileCopyrightText: 2026 livepatch-k8s-operator contributors
SPDX-License-Identifier: Apache-2.0
*/

package walk

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// VisitFunc is invoked for every node encountered while walking a value.
// Addressable non-pointer nodes are passed as a pointer to the node, so the
// callback may mutate them in place; path describes the position in the tree
// (map keys and struct field names verbatim, slice indices as strings); tag is
// the struct tag of the innermost struct field on the path.
type VisitFunc func(x any, path []string, tag reflect.StructTag) error

// Walk traverses x recursively using reflection and applies f to each node.
// Slices, arrays and maps are traversed element by element (map order is not
// predictable), structs field by field (exported fields only).
//
// Walk panics when given a nil or non-pointer value, or when an unsupported
// kind (such as a channel) is encountered. It produces no errors of its own;
// it only collects errors returned by f.
func Walk(x any, f VisitFunc) error {
	v, ok := x.(reflect.Value)
	if !ok {
		v = reflect.ValueOf(x)
	}
	if v.Kind() != reflect.Pointer || v.IsNil() {
		panic("non-nil pointer expected")
	}
	if errs := walk(v, nil, "", f); len(errs) > 0 {
		return multierror.Append(nil, errs...)
	}
	return nil
}

type nodeError struct {
	err  error
	path []string
}

func (e nodeError) Error() string {
	return fmt.Sprintf("/%s: %s", strings.Join(e.path, "/"), e.err)
}

func (e nodeError) Unwrap() error {
	return e.err
}

func (e nodeError) Cause() error {
	return e.err
}

func walk(v reflect.Value, path []string, tag reflect.StructTag, f VisitFunc) (errs []error) {
	t := v.Type()

	visit := func() {
		var x any
		if t.Kind() != reflect.Pointer && v.CanAddr() {
			x = v.Addr().Interface()
		} else {
			x = v.Interface()
		}
		if err := f(x, path, tag); err != nil {
			errs = append(errs, nodeError{err: err, path: path})
		}
	}

	switch t.Kind() {
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			visit()
		} else {
			errs = append(errs, walk(v.Elem(), path, tag, f)...)
		}
	case reflect.Slice, reflect.Array:
		visit()
		for i := 0; i < v.Len(); i++ {
			errs = append(errs, walk(v.Index(i), append(path, strconv.Itoa(i)), tag, f)...)
		}
	case reflect.Map:
		visit()
		for it := v.MapRange(); it.Next(); {
			errs = append(errs, walk(it.Value(), append(path, it.Key().String()), tag, f)...)
		}
	case reflect.Struct:
		visit()
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if field.IsExported() {
				errs = append(errs, walk(v.FieldByIndex(field.Index), append(path, field.Name), field.Tag, f)...)
			}
		}
	case reflect.String,
		reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		visit()
	default:
		panic(nodeError{err: fmt.Errorf("unrecognized type: %v", t.Kind()), path: path})
	}
	return
}
