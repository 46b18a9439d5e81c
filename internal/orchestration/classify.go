package orchestration

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"

	apperrors "github.com/agbru/sampler/internal/errors"
)

// timeouter matches net.Error as well as apperrors.TimeoutError.
type timeouter interface {
	Timeout() bool
}

// Classify converts any failure into a NormalizedError labelled with the
// operation context. The checks run in a fixed order: timeout, remote
// status, transport, then unknown. It returns nil for a nil error.
func Classify(label string, err error) *apperrors.NormalizedError {
	if err == nil {
		return nil
	}
	norm := &apperrors.NormalizedError{Label: label, Cause: err}

	var sc apperrors.StatusCoder
	switch {
	case isTimeout(err):
		norm.Kind = apperrors.KindTimeout
		norm.Detail = apperrors.TimeoutDetail
	case errors.As(err, &sc):
		norm.Kind = apperrors.KindRemoteStatus
		norm.StatusCode = sc.Status()
		norm.Detail = sc.RemoteMessage()
		if norm.Detail == "" {
			norm.Detail = fmt.Sprintf("remote returned status %d", sc.Status())
		}
	case isTransport(err):
		norm.Kind = apperrors.KindTransport
		norm.Detail = err.Error()
	default:
		norm.Kind = apperrors.KindUnknown
		norm.Detail = err.Error()
		if norm.Detail == "" {
			norm.Detail = apperrors.UnknownDetail
		}
	}
	return norm
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var t timeouter
	return errors.As(err, &t) && t.Timeout()
}

func isTransport(err error) bool {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return true
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}
	var dnsErr *net.DNSError
	return errors.As(err, &dnsErr)
}
