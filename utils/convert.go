package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	reflect "github.com/goccy/go-reflect"
)

// Convert assigns the contents of a decoded JSON map onto a typed
// destination, honoring json struct tags. v must be a non-nil pointer.
func Convert(src map[string]any, v any) error {
	destVal := reflect.ValueOf(v)
	if destVal.Kind() != reflect.Ptr || destVal.IsNil() {
		return errors.New("v must be a non-nil pointer")
	}
	return assignValue(reflect.ValueOf(src), destVal.Elem())
}

func assignValue(src, dest reflect.Value) error {
	if !dest.IsValid() {
		return errors.New("invalid destination")
	}
	if dest.Kind() == reflect.Ptr {
		if dest.IsNil() {
			dest.Set(reflect.New(dest.Type().Elem()))
		}
		return assignValue(src, dest.Elem())
	}
	// Durations arrive as strings like "15m".
	if dest.Type() == reflect.TypeOf(time.Duration(0)) {
		switch v := src.Interface().(type) {
		case string:
			d, err := time.ParseDuration(v)
			if err != nil {
				return fmt.Errorf("cannot parse duration: %v", err)
			}
			dest.SetInt(int64(d))
			return nil
		case float64:
			dest.SetInt(int64(v))
			return nil
		case int:
			dest.SetInt(int64(v))
			return nil
		default:
			return fmt.Errorf("expected duration string but got %T", src.Interface())
		}
	}
	switch dest.Kind() {
	case reflect.Struct:
		srcMap, ok := src.Interface().(map[string]any)
		if !ok {
			return fmt.Errorf("expected map for struct assignment but got %T", src.Interface())
		}
		destType := dest.Type()
		for i := 0; i < dest.NumField(); i++ {
			field := destType.Field(i)
			if field.PkgPath != "" {
				continue
			}
			tag := field.Tag.Get("json")
			fieldName := field.Name
			if tag != "" {
				parts := strings.Split(tag, ",")
				if parts[0] != "" {
					fieldName = parts[0]
				}
			}
			if value, exists := srcMap[fieldName]; exists {
				if err := assignValue(reflect.ValueOf(value), dest.Field(i)); err != nil {
					return fmt.Errorf("field %s: %v", field.Name, err)
				}
			}
		}
	case reflect.Map:
		if src.Kind() != reflect.Map {
			return fmt.Errorf("expected map for assignment but got %T", src.Interface())
		}
		newMap := reflect.MakeMap(dest.Type())
		for _, key := range src.MapKeys() {
			srcVal := src.MapIndex(key)
			destKey := reflect.New(dest.Type().Key()).Elem()
			if err := assignValue(key, destKey); err != nil {
				return err
			}
			destVal := reflect.New(dest.Type().Elem()).Elem()
			if err := assignValue(srcVal, destVal); err != nil {
				return err
			}
			newMap.SetMapIndex(destKey, destVal)
		}
		dest.Set(newMap)
	case reflect.Slice:
		srcSlice, ok := src.Interface().([]any)
		if !ok {
			return fmt.Errorf("expected slice for assignment but got %T", src.Interface())
		}
		slice := reflect.MakeSlice(dest.Type(), len(srcSlice), len(srcSlice))
		for i, item := range srcSlice {
			if err := assignValue(reflect.ValueOf(item), slice.Index(i)); err != nil {
				return fmt.Errorf("slice index %d: %v", i, err)
			}
		}
		dest.Set(slice)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		switch v := src.Interface().(type) {
		case float64:
			dest.SetInt(int64(v))
		case int:
			dest.SetInt(int64(v))
		default:
			return fmt.Errorf("cannot convert %T to int", src.Interface())
		}
	case reflect.Float32, reflect.Float64:
		switch v := src.Interface().(type) {
		case float64:
			dest.SetFloat(v)
		case int:
			dest.SetFloat(float64(v))
		default:
			return fmt.Errorf("cannot convert %T to float", src.Interface())
		}
	case reflect.Bool:
		switch v := src.Interface().(type) {
		case bool:
			dest.SetBool(v)
		case int:
			dest.SetBool(v != 0)
		case float64:
			dest.SetBool(v != 0)
		default:
			return fmt.Errorf("cannot convert %T to bool", src.Interface())
		}
	case reflect.String:
		if v, ok := src.Interface().(string); ok {
			dest.SetString(v)
		} else {
			return fmt.Errorf("cannot convert %T to string", src.Interface())
		}
	default:
		if src.Type().AssignableTo(dest.Type()) {
			dest.Set(src)
		} else {
			return fmt.Errorf("unsupported destination type: %s", dest.Kind())
		}
	}
	return nil
}
