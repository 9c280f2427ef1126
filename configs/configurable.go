package configs

// Configurable is implemented by values read from a single config path.
type Configurable interface {
	ConfigExpr() string
}

// Value decodes the first value at T's config path, or returns the zero T.
func Value[T Configurable](loader Loader) T {
	var zero T
	return First[T](loader, zero.ConfigExpr())
}
