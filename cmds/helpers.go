package cmds

// Var defines name to set the value from the next argument and name+"." to
// reset it to zero.
func Var[T any](name string) *T {
	var value T

	Define(name, Func(func(v T) {
		value = v
	}).Args("value").Desc("set "+name))

	var zero T
	Define(name+".", Func(func() {
		value = zero
	}).Desc("reset "+name))

	return &value
}

// Switch defines name to turn the value on and "!"+name to turn it off.
func Switch(name string) *bool {
	var value bool

	Define(name, Func(func() {
		value = true
	}).Desc("turn on "+name))

	Define("!"+name, Func(func() {
		value = false
	}).Desc("turn off "+name))

	return &value
}

// Collect defines name to append the next argument, it can be repeated.
func Collect[T any](name string) *[]T {
	var value []T
	Define(name, Func(func(v T) {
		value = append(value, v)
	}).Args("value").Desc("add to "+name))
	return &value
}
