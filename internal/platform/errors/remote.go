// Remote classification helpers for failures coming back from the GitHub API
package errors

import "net/http"

// Remote returns a typed error for a non-success upstream response
// msg should be the service-provided message so handlers can render it verbatim
// 403 maps to the rate-limit code and 404 to not-found so retry policies can
// suppress retries without string matching; everything else is a plain remote
// rejection. The upstream status rides along on the error
func Remote(status int, msg string) error {
	var code ErrorCode
	switch status {
	case http.StatusForbidden, http.StatusTooManyRequests:
		code = ErrorCodeRateLimited
	case http.StatusNotFound:
		code = ErrorCodeNotFound
	default:
		code = ErrorCodeRemote
	}
	return &Error{code: code, msg: msg, status: status}
}

// Remotef is Remote with a formatted message
func Remotef(status int, format string, a ...any) error {
	return WithStatus(Newf(ErrorCodeRemote, format, a...), status)
}

// IsRateLimited reports whether err carries an upstream 403 or 429
func IsRateLimited(err error) bool {
	s := StatusOf(err)
	return s == http.StatusForbidden || s == http.StatusTooManyRequests
}

// IsNotFound reports whether err is a not-found, by code or upstream 404
func IsNotFound(err error) bool {
	return IsCode(err, ErrorCodeNotFound) || StatusOf(err) == http.StatusNotFound
}

// Retryable reports whether retrying the failed operation could succeed
// Quota and existence rejections never benefit from a retry; validation and
// JSON failures are caller bugs, not transient conditions
func Retryable(err error) bool {
	if err == nil {
		return false
	}
	if IsRateLimited(err) || IsNotFound(err) {
		return false
	}
	switch CodeOf(err) {
	case ErrorCodeValidation, ErrorCodeInvalidArgument, ErrorCodeJSON:
		return false
	}
	return true
}
