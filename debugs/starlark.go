package debugs

import (
	"fmt"
	"reflect"

	"github.com/reusee/bf/bfcode"
	"github.com/reusee/bf/bfvm"
	"github.com/reusee/starlarkutil"
	"go.starlark.net/starlark"
	"go.starlark.net/starlarkstruct"
)

func toStarlarkValue(v any) (starlark.Value, error) {
	switch v := v.(type) {

	case nil:
		return starlark.None, nil

	case int:
		return starlark.MakeInt(v), nil
	case string:
		return starlark.String(v), nil
	case []byte:
		return starlark.Bytes(v), nil

	case *bfvm.Tape:
		if v == nil {
			return starlark.None, nil
		}
		return starlarkstruct.FromStringDict(starlarkstruct.Default, starlark.StringDict{
			"cells":  starlark.Bytes(v.Cells),
			"cursor": starlark.MakeInt(v.Cursor),
			"len":    starlark.MakeInt(v.Len()),
			"window": starlark.String(Window(v, 8)),
		}), nil

	case bfcode.Pos:
		var source string
		if v.Source != nil {
			source = v.Source.Name
		}
		return starlarkstruct.FromStringDict(starlarkstruct.Default, starlark.StringDict{
			"source": starlark.String(source),
			"offset": starlark.MakeInt(v.Offset),
			"line":   starlark.MakeInt(v.Line),
			"column": starlark.MakeInt(v.Column),
			"text":   starlark.String(v.String()),
		}), nil

	case error:
		return starlark.String(v.Error()), nil

	}

	if reflect.TypeOf(v).Kind() == reflect.Func {
		return starlarkutil.MakeFunc("", v), nil
	}

	return nil, fmt.Errorf("no starlark form for %T", v)
}
