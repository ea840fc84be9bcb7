// Package errors attaches key/value context to errors so it can be logged in a structured way
package errors

import (
	"github.com/pkg/errors"
)

type withKeyVals struct {
	error
	keyVals []interface{}
}

func (w withKeyVals) Cause() error  { return w.error }
func (w withKeyVals) Unwrap() error { return w.error }

// With attaches the given key/value pairs to the error
func With(err error, keyVals ...interface{}) error {
	if err == nil {
		return nil
	}

	return withKeyVals{error: err, keyVals: keyVals}
}

// KeyVals returns all key/value pairs attached to the error chain, outermost first
func KeyVals(err error) []interface{} {
	var keyVals []interface{}
	for err != nil {
		if kv, ok := err.(withKeyVals); ok {
			keyVals = append(keyVals, kv.keyVals...)
		}

		err = errors.Unwrap(err)
	}

	return keyVals
}
