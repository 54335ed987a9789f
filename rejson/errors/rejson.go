package errors

import "errors"

var ErrorServerReply = errors.New("reply.serverError")
var ErrorUnexpectedReply = errors.New("reply.unexpected")
var ErrorDecode = errors.New("document.invalidJson")
var ErrorInvalidArgument = errors.New("path.singlePathExpected")
var ErrorTransaction = errors.New("transaction.failed")
var ErrorSetFailed = errors.New("transaction.setFailed")
var ErrorExpireFailed = errors.New("transaction.expireFailed")
