// Package validate provides struct-tag validation.
//
// Supported rules (comma-separated in the `validate` tag):
//
//	required      field must not be zero/empty (nil pointers are empty)
//	filled        when present (non-nil pointer) the value must not be empty
//	nullable      if empty, skip all remaining rules for this field
//	min=N         string: min rune length | number: min value
//	max=N         string: max rune length | number: max value
//	in=a|b|c      value must be one of the listed items
//
// Pointer fields are dereferenced before rules run, so optional inputs for
// partial updates can be declared as `*string` with `filled,max=255`.
//
//	type CreateTask struct {
//	    Title       string `json:"title"       validate:"required,max=255"`
//	    Description string `json:"description" validate:"nullable,max=2000"`
//	}
package validate

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Struct validates the exported fields of v that carry a `validate` tag and
// returns field name → message. An empty map means v is valid.
func Struct(v interface{}) map[string]string {
	errs := make(map[string]string)

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return errs
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return errs
	}
	rt := rv.Type()

	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		tag := field.Tag.Get("validate")
		if tag == "" || !field.IsExported() {
			continue
		}

		name := jsonFieldName(field)
		value := rv.Field(i)
		rules := strings.Split(tag, ",")

		if hasRule(rules, "nullable") && isEmpty(value) {
			continue
		}

		for _, rule := range rules {
			if rule == "nullable" {
				continue
			}
			if msg := apply(strings.TrimSpace(rule), name, value); msg != "" {
				errs[name] = msg
				break
			}
		}
	}

	return errs
}

// HasErrors reports whether errs is non-empty.
func HasErrors(errs map[string]string) bool { return len(errs) > 0 }

func apply(rule, field string, v reflect.Value) string {
	key, param, _ := strings.Cut(rule, "=")

	if key == "required" {
		if isEmpty(v) {
			return fmt.Sprintf("The %s field is required.", field)
		}
		return ""
	}
	if key == "filled" {
		if v.Kind() == reflect.Ptr && v.IsNil() {
			return ""
		}
		if isEmpty(v) {
			return fmt.Sprintf("The %s field must have a value.", field)
		}
		return ""
	}

	v = indirect(v)
	if !v.IsValid() {
		return ""
	}

	switch key {
	case "min":
		n, _ := strconv.ParseFloat(param, 64)
		if isNumeric(v) {
			if toFloat(v) < n {
				return fmt.Sprintf("The %s must be at least %s.", field, param)
			}
		} else if float64(runeLen(v)) < n {
			return fmt.Sprintf("The %s must be at least %s characters.", field, param)
		}
	case "max":
		n, _ := strconv.ParseFloat(param, 64)
		if isNumeric(v) {
			if toFloat(v) > n {
				return fmt.Sprintf("The %s must not be greater than %s.", field, param)
			}
		} else if float64(runeLen(v)) > n {
			return fmt.Sprintf("The %s must not exceed %s characters.", field, param)
		}
	case "in":
		raw := fmt.Sprintf("%v", v.Interface())
		for _, allowed := range strings.Split(param, "|") {
			if raw == strings.TrimSpace(allowed) {
				return ""
			}
		}
		return fmt.Sprintf("The selected %s is invalid.", field)
	}

	return ""
}

func indirect(v reflect.Value) reflect.Value {
	for v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

func isEmpty(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface:
		if v.IsNil() {
			return true
		}
		if v.Elem().Kind() == reflect.String {
			return strings.TrimSpace(v.Elem().String()) == ""
		}
		return false
	case reflect.String:
		return strings.TrimSpace(v.String()) == ""
	case reflect.Slice, reflect.Map, reflect.Array:
		return v.Len() == 0
	case reflect.Bool:
		return false
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	}
	return false
}

func isNumeric(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func toFloat(v reflect.Value) float64 {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint())
	default:
		return v.Float()
	}
}

func runeLen(v reflect.Value) int {
	if v.Kind() == reflect.String {
		return len([]rune(v.String()))
	}
	return len([]rune(fmt.Sprintf("%v", v.Interface())))
}

func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return strings.ToLower(f.Name)
	}
	return name
}

func hasRule(rules []string, target string) bool {
	for _, r := range rules {
		if strings.TrimSpace(r) == target {
			return true
		}
	}
	return false
}
