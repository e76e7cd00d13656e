package cmds

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/reusee/bf/vars"
)

func parseArg(t reflect.Type, str string) (reflect.Value, error) {
	value := reflect.New(t).Elem()
	var err error
	switch t.Kind() {

	case reflect.String:
		value.SetString(str)

	case reflect.Bool:
		var b bool
		b, err = vars.ParseBool(str)
		value.SetBool(b)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		var n int64
		n, err = strconv.ParseInt(str, 0, t.Bits())
		value.SetInt(n)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		var n uint64
		n, err = strconv.ParseUint(str, 0, t.Bits())
		value.SetUint(n)

	case reflect.Float32, reflect.Float64:
		var f float64
		f, err = strconv.ParseFloat(str, t.Bits())
		value.SetFloat(f)

	default:
		return value, fmt.Errorf("unsupported argument type %s", t)
	}

	if err != nil {
		return value, fmt.Errorf("bad %s argument: %w", t.Kind(), err)
	}
	return value, nil
}
