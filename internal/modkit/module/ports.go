package module

import "fmt"

// PortsOf returns m's ports as a T
func PortsOf[T any](m Module) (T, bool) {
	var zero T
	if m == nil {
		return zero, false
	}
	v, ok := m.Ports().(T)
	return v, ok
}

// MustPortsOf is PortsOf that panics naming the module
func MustPortsOf[T any](m Module) T {
	v, ok := PortsOf[T](m)
	if !ok {
		panic(fmt.Sprintf("module %q does not export %T", m.Name(), v))
	}
	return v
}
