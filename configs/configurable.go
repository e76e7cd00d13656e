package configs

// Configurable is implemented by values resolvable from config files.
// ConfigExpr names the value in logs and dumps.
type Configurable interface {
	ConfigExpr() string
}

// Attrs renders configurables as key-value pairs for structured logging.
func Attrs(values ...Configurable) []any {
	ret := make([]any, 0, len(values)*2)
	for _, value := range values {
		ret = append(ret, value.ConfigExpr(), value)
	}
	return ret
}
