package cmds

import (
	"fmt"
	"reflect"
	"strings"
)

// Command binds an argv word to a function.
// Each parameter consumes one following word; pointer parameters may be left out at the end of argv.
type Command struct {
	fn          reflect.Value
	Description string
	Aliases     []string
}

func (c *Command) Desc(desc string) *Command {
	c.Description = desc
	return c
}

func (c *Command) Alias(names ...string) *Command {
	c.Aliases = append(c.Aliases, names...)
	return c
}

var errorType = reflect.TypeFor[error]()

// Func panics if fn is not a function returning nothing or an error.
func Func(fn any) *Command {
	value := reflect.ValueOf(fn)
	if value.Kind() != reflect.Func {
		panic(fmt.Errorf("command must be a function, got %T", fn))
	}
	fnType := value.Type()
	if fnType.IsVariadic() {
		panic(fmt.Errorf("command must not be variadic: %T", fn))
	}
	if n := fnType.NumOut(); n > 1 || n == 1 && fnType.Out(0) != errorType {
		panic(fmt.Errorf("command must return nothing or an error: %T", fn))
	}
	return &Command{
		fn: value,
	}
}

func (c *Command) call(args []string) (rest []string, err error) {
	fnType := c.fn.Type()
	in := make([]reflect.Value, fnType.NumIn())
	for i := range in {
		argType := fnType.In(i)
		optional := argType.Kind() == reflect.Pointer
		if optional {
			argType = argType.Elem()
		}

		if len(args) == 0 {
			if !optional {
				return nil, fmt.Errorf("missing %s argument", argType.Kind())
			}
			in[i] = reflect.New(argType)
			continue
		}

		value, err := parseArg(argType, args[0])
		if err != nil {
			return nil, err
		}
		args = args[1:]
		if optional {
			ptr := reflect.New(argType)
			ptr.Elem().Set(value)
			value = ptr
		}
		in[i] = value
	}

	if out := c.fn.Call(in); len(out) == 1 && !out[0].IsNil() {
		return nil, out[0].Interface().(error)
	}
	return args, nil
}

// placeholders renders parameters as "<int>", or "[<int>]" when optional.
func (c *Command) placeholders() string {
	fnType := c.fn.Type()
	parts := make([]string, 0, fnType.NumIn())
	for i := range fnType.NumIn() {
		argType := fnType.In(i)
		if argType.Kind() == reflect.Pointer {
			parts = append(parts, "[<"+argType.Elem().Kind().String()+">]")
		} else {
			parts = append(parts, "<"+argType.Kind().String()+">")
		}
	}
	return strings.Join(parts, " ")
}
