package sexpr

import (
	"github.com/pkg/errors"
)

// symbolTable maps operator names to their definitions. It is never modified
// after newSymbolTable returns, so it can be shared between goroutines.
type symbolTable struct {
	n map[string]*Operator
}

func newSymbolTable(parent *symbolTable, ops ...Operator) (*symbolTable, error) {
	st := &symbolTable{
		n: make(map[string]*Operator),
	}
	if parent != nil {
		for name, op := range parent.n {
			st.n[name] = op
		}
	}
	for i := range ops {
		op := ops[i]
		if err := op.validate(); err != nil {
			return nil, err
		}
		st.n[op.Name] = &op
	}
	return st, nil
}

func (st *symbolTable) Get(name string) (*Operator, error) {
	if op, ok := st.n[name]; ok {
		return op, nil
	}
	return nil, errors.Wrapf(ErrUnknownOperator, "%q", name)
}

func (st *symbolTable) Names() []string {
	names := make([]string, 0, len(st.n))
	for name := range st.n {
		names = append(names, name)
	}
	return names
}
