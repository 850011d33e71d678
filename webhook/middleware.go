package webhook

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
)

type payloadKey struct{}

// PayloadFromContext returns the decoded payload stored by Middleware.
// Returns nil if the request was not verified by Middleware.
func PayloadFromContext(ctx context.Context) map[string]any {
	if p, ok := ctx.Value(payloadKey{}).(map[string]any); ok {
		return p
	}

	return nil
}

// MiddlewareConfig configures the server-side verification middleware.
type MiddlewareConfig struct {
	// Verifier checks incoming deliveries. Required.
	Verifier *Verifier

	// MaxBodyBytes caps the request body read for verification. Zero
	// means no limit.
	MaxBodyBytes int64

	// OnError is called when reading or verification fails. When nil,
	// the response status is chosen by StatusCode and no body is written.
	OnError func(w http.ResponseWriter, r *http.Request, err error)
}

// Middleware returns a middleware that verifies Standard Webhooks
// signatures on incoming requests. The request body is restored after
// verification so downstream handlers can read it again, and the decoded
// payload is available through PayloadFromContext.
//
// It returns ErrNoVerifier if MiddlewareConfig.Verifier is nil.
func Middleware(cfg MiddlewareConfig) (func(http.Handler) http.Handler, error) {
	if cfg.Verifier == nil {
		return nil, ErrNoVerifier
	}

	onError := cfg.OnError
	if onError == nil {
		onError = defaultOnError
	}

	verifier := cfg.Verifier
	maxBytes := cfg.MaxBodyBytes

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if maxBytes > 0 && r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			}

			body, err := readAndRestoreBody(r)
			if err != nil {
				onError(w, r, err)
				return
			}

			payload, err := verifier.Verify(body, HeadersFromHTTP(r.Header))
			if err != nil {
				onError(w, r, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), payloadKey{}, payload)))
		})
	}, nil
}

// StatusCode maps a middleware error to an HTTP status: 400 for argument
// errors and unreadable bodies, 401 for timestamp and signature errors,
// 413 for bodies over MaxBodyBytes.
func StatusCode(err error) int {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return http.StatusRequestEntityTooLarge
	}

	kind, ok := KindOf(err)
	if !ok {
		return http.StatusBadRequest
	}

	switch kind {
	case KindTimestamp, KindSignature:
		return http.StatusUnauthorized
	default:
		return http.StatusBadRequest
	}
}

func defaultOnError(w http.ResponseWriter, _ *http.Request, err error) {
	w.WriteHeader(StatusCode(err))
}

// readAndRestoreBody reads the full request body and replaces it with a
// reader over the same bytes.
func readAndRestoreBody(r *http.Request) ([]byte, error) {
	if r.Body == nil || r.Body == http.NoBody {
		return nil, nil
	}

	body, err := io.ReadAll(r.Body)
	r.Body.Close()

	if err != nil {
		return nil, err
	}

	r.Body = io.NopCloser(bytes.NewReader(body))

	return body, nil
}
