package service

import "errors"

// passOrWrap returns err untouched when it matches one of known, otherwise wraps it as an opaque failure of op
func passOrWrap(op string, err error, known ...error) error {
	for _, k := range known {
		if errors.Is(err, k) {
			return err
		}
	}
	return errors.New(op + " error: " + err.Error())
}
