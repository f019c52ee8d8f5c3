package cups

import (
	"context"
	"errors"
	"net"

	"github.com/printkit/ipp/transport"
)

func isHTTPError(err error) bool {
	var he *transport.HTTPError
	return errors.As(err, &he)
}

func httpErrorCode(err error) int {
	var he *transport.HTTPError
	if errors.As(err, &he) {
		return he.Code
	}
	return 0
}

func isAuthRequired(err error) bool {
	return errors.Is(err, transport.ErrAuthRequired)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
