package cmds

// Var registers a `name value` command setting a value, plus a
// `name.` command resetting it to zero.
func Var[T any](name string) *T {
	p := new(T)
	Define(name, Func(func(v T) {
		*p = v
	}))
	Define(name+".", Func(func() {
		*p = *new(T)
	}))
	return p
}

// Switch registers `name` and `!name` commands toggling a bool.
func Switch(name string) *bool {
	p := new(bool)
	Define(name, Func(func() {
		*p = true
	}))
	Define("!"+name, Func(func() {
		*p = false
	}))
	return p
}

// Collect registers a repeatable `name value` command appending to a
// slice, plus a `name.` command clearing it.
func Collect[T any](name string) *[]T {
	p := new([]T)
	Define(name, Func(func(v T) {
		*p = append(*p, v)
	}))
	Define(name+".", Func(func() {
		*p = nil
	}))
	return p
}
