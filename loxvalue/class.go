/*
File    : lox/loxvalue/class.go

Grounded on the teacher's objects/struct.go (GoMixStruct): a Class
carries its own method table and, unlike go-mix's structs, an optional
superclass reference forming the single-inheritance chain spec.md §3
describes. Method lookup walks the class's own table first, then its
superclass chain.
*/
package loxvalue

import "fmt"

// Class is a user-defined class: its name, optional superclass, and its
// own methods (not including inherited ones — FindMethod walks the
// chain).
type Class struct {
	Name       string
	Superclass *Class
	Methods    map[string]*Function
}

// FindMethod looks up name on this class, then recursively on its
// superclass chain. The returned Function is unbound; callers bind it to
// an instance with Function.Bind.
func (c *Class) FindMethod(name string) (*Function, bool) {
	if m, ok := c.Methods[name]; ok {
		return m, true
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethod(name)
	}
	return nil, false
}

// Arity is the arity of "init" if the class (or an ancestor) defines one,
// else zero — a class with no constructor takes no arguments.
func (c *Class) Arity() int {
	if init, ok := c.FindMethod("init"); ok {
		return init.Arity()
	}
	return 0
}

// Call constructs a new instance, running "init" against it (if present)
// before returning it. The instance is always the result, regardless of
// what (if anything) "init" returns.
func (c *Class) Call(it Interp, args []any) (any, error) {
	instance := &Instance{Class: c, Fields: make(map[string]any)}
	if init, ok := c.FindMethod("init"); ok {
		if _, err := init.Bind(instance).Call(it, args); err != nil {
			return nil, err
		}
	}
	return instance, nil
}

func (c *Class) String() string {
	return fmt.Sprintf("class %s", c.Name)
}

// Instance is a runtime object: a reference to its class plus a shared,
// mutable field map. Two variables holding the same *Instance observe
// each other's field writes (spec.md §8's alias invariant), which falls
// out of Go's pointer semantics for free.
type Instance struct {
	Class  *Class
	Fields map[string]any
}

// Get reads property name: a field if present, otherwise a method from
// the class chain bound to this instance. Returns ok=false (a runtime
// "undefined property" error, raised by the caller) if neither exists.
func (i *Instance) Get(name string) (any, bool) {
	if v, ok := i.Fields[name]; ok {
		return v, true
	}
	if m, ok := i.Class.FindMethod(name); ok {
		return m.Bind(i), true
	}
	return nil, false
}

// Set assigns value to field name, creating it if absent.
func (i *Instance) Set(name string, value any) {
	i.Fields[name] = value
}

func (i *Instance) String() string {
	return fmt.Sprintf("%s instance", i.Class.Name)
}
