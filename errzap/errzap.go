// Package errzap renders unified errors as structured zap fields.
package errzap

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	apiError "github.com/next-trace/path-error/error"
)

type object struct{ e *apiError.Error }

// Object returns a marshaler that encodes kind, description and, for
// converted failures, the cause text and its Go type.
func Object(e *apiError.Error) zapcore.ObjectMarshaler {
	return object{e: e}
}

func (o object) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	if o.e == nil {
		return nil
	}

	enc.AddString("kind", o.e.Code())
	enc.AddString("description", o.e.Description())

	if cause := o.e.Cause(); cause != nil {
		enc.AddString("cause", cause.Error())
		enc.AddString("causeType", fmt.Sprintf("%T", cause))
	}

	return nil
}

// Field is NamedField with the conventional "error" key.
func Field(err error) zap.Field {
	return NamedField("error", err)
}

// NamedField encodes err as an object when its chain holds an *Error and
// falls back to zap.NamedError otherwise.
func NamedField(key string, err error) zap.Field {
	var e *apiError.Error
	if errors.As(err, &e) {
		return zap.Object(key, Object(e))
	}

	return zap.NamedError(key, err)
}
