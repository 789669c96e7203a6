package eval

import (
	"context"
	"fmt"
	"reflect"
)

// FromGo converts a value produced by compiled code into a Value.
// Go functions of one argument and one result become a *Builtin
func FromGo(v any) (Value, error) {
	switch v := v.(type) {
	case bool:
		return Bool(v), nil
	case int64:
		return Int(v), nil
	case int:
		return Int(v), nil
	case string:
		return String(v), nil
	case func(any) any:
		return &Builtin{Name: "compiled", Fn: goFunction(v)}, nil
	case Value:
		return v, nil
	}

	// functions made by an interpreter may have another func type
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Func && rv.Type().NumIn() == 1 && rv.Type().NumOut() == 1 {
		return &Builtin{Name: "compiled", Fn: goFunction(func(arg any) any {
			return rv.Call([]reflect.Value{reflect.ValueOf(arg)})[0].Interface()
		})}, nil
	}
	return nil, fmt.Errorf("no value corresponds to Go %T", v)
}

// ToGo is the inverse of FromGo
func ToGo(v Value) (any, error) {
	switch v := v.(type) {
	case Bool:
		return bool(v), nil
	case Int:
		return int64(v), nil
	case String:
		return string(v), nil
	case Function:
		return func(arg any) any {
			converted, err := FromGo(arg)
			if err != nil {
				panic(err)
			}
			result, err := v.Apply(context.Background(), converted)
			if err != nil {
				panic(err)
			}
			goResult, err := ToGo(result)
			if err != nil {
				panic(err)
			}
			return goResult
		}, nil
	default:
		return nil, fmt.Errorf("cannot convert %s to Go", Show(v))
	}
}

func goFunction(fn func(any) any) func(context.Context, Value) (Value, error) {
	return func(ctx context.Context, arg Value) (result Value, err error) {
		goArg, err := ToGo(arg)
		if err != nil {
			return nil, err
		}
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("compiled function panicked: %v", r)
			}
		}()
		return FromGo(fn(goArg))
	}
}
