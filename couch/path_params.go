package couch

import (
	"github.com/go-andiamo/urit"
)

type pathParams []string

var _ urit.PathVars = pathParams{}

func (p pathParams) GetPositional(position int) (string, bool) {
	if position >= 0 && position < len(p) {
		return p[position], true
	}
	return "", false
}

func (p pathParams) GetNamed(name string, position int) (string, bool) {
	panic("not implemented, not used")
}

func (p pathParams) GetNamedFirst(name string) (string, bool) {
	panic("not implemented, not used")
}

func (p pathParams) GetNamedLast(name string) (string, bool) {
	panic("not implemented, not used")
}

func (p pathParams) Get(idents ...interface{}) (string, bool) {
	panic("not implemented, not used")
}

func (p pathParams) GetAll() []urit.PathVar {
	panic("not implemented, not used")
}

func (p pathParams) Len() int {
	return len(p)
}

func (p pathParams) Clear() {
	panic("not implemented, not used")
}

func (p pathParams) VarsType() urit.PathVarsType {
	return urit.Positions
}

func (p pathParams) AddNamedValue(name string, val interface{}) error {
	panic("not implemented, not used")
}

func (p pathParams) AddPositionalValue(val interface{}) error {
	panic("not implemented, not used")
}
