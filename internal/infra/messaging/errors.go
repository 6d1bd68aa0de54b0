package messaging

import "errors"

var ErrMalformedMessage = errors.New("malformed route import message")
