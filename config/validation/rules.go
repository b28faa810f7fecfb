// Package validation defines ozzo-validation rules for configuration entries.
package validation

import (
	"net"
	"reflect"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/ARM-software/golang-batchqueue/commonerrors"
	"github.com/ARM-software/golang-batchqueue/reflection"
)

// IsPort checks that a value (integer, string or bytes) is a valid port number.
func IsPort() validation.Rule {
	return validation.By(func(vRaw any) (err error) {
		val := reflect.ValueOf(vRaw)
		switch val.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			err = is.Port.Validate(strconv.FormatInt(val.Int(), 10))
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			err = is.Port.Validate(strconv.FormatUint(val.Uint(), 10))
		case reflect.String:
			err = is.Port.Validate(val.String())
		case reflect.Slice:
			b, ok := vRaw.([]byte)
			if !ok {
				return commonerrors.Newf(commonerrors.ErrMarshalling, "unsupported type for port validation: %T", vRaw)
			}
			err = is.Port.Validate(string(b))
		default:
			return commonerrors.Newf(commonerrors.ErrMarshalling, "unsupported type for port validation: %T", vRaw)
		}
		if err != nil {
			err = commonerrors.WrapError(commonerrors.ErrInvalid, err, "")
		}
		return
	})
}

// IsListenAddress checks that a string is an address a server can listen on i.e. `[host]:port`. Empty values are accepted.
func IsListenAddress() validation.Rule {
	return validation.By(func(vRaw any) error {
		if reflection.IsEmpty(vRaw) {
			return nil
		}
		address, ok := vRaw.(string)
		if !ok {
			return commonerrors.Newf(commonerrors.ErrMarshalling, "unsupported type for address validation: %T", vRaw)
		}
		host, port, err := net.SplitHostPort(address)
		if err != nil {
			return commonerrors.WrapErrorf(commonerrors.ErrInvalid, err, "invalid address %q", address)
		}
		if host != "" {
			err = validation.Validate(host, is.Host)
			if err != nil {
				return commonerrors.WrapErrorf(commonerrors.ErrInvalid, err, "invalid host %q", host)
			}
		}
		return validation.Validate(port, IsPort())
	})
}
