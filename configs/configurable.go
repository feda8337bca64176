package configs

import (
	"reflect"
	"slices"

	"github.com/reusee/dscope"
)

// Configurable marks a scope-provided value as config-backed; its
// ConfigExpr names the value for usage listings.
type Configurable interface {
	ConfigExpr() string
}

var configurableType = reflect.TypeFor[Configurable]()

// Exprs lists the ConfigExpr of every Configurable the scope can
// provide, sorted.
func Exprs(scope dscope.Scope) []string {
	var exprs []string
	for t := range scope.AllTypes() {
		if !t.Implements(configurableType) {
			continue
		}
		v := reflect.New(t).Elem().Interface().(Configurable)
		exprs = append(exprs, v.ConfigExpr())
	}
	slices.Sort(exprs)
	return slices.Compact(exprs)
}
