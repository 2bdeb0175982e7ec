package domain

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Payload is a decoded JSON object exactly as a client sent it. Creation
// entities are built from it so that presence and type can be told apart.
type Payload map[string]any

var validate = validator.New()

// readStrings pulls the named fields out of p as strings. A field counts as
// missing when it is absent, null or a zero value (empty string, 0, false);
// all fields are checked for presence before any of them is type checked.
func readStrings(p Payload, entity string, fields ...string) (map[string]string, error) {
	for _, f := range fields {
		v, ok := p[f]
		if !ok || v == nil || validate.Var(v, "required") != nil {
			return nil, newError(ErrMissingProperty,
				fmt.Sprintf("tidak dapat membuat %s baru karena properti yang dibutuhkan tidak ada", entity))
		}
	}

	res := make(map[string]string, len(fields))
	for _, f := range fields {
		s, ok := p[f].(string)
		if !ok {
			return nil, newError(ErrInvalidType,
				fmt.Sprintf("tidak dapat membuat %s baru karena tipe data tidak sesuai", entity))
		}
		res[f] = s
	}
	return res, nil
}
