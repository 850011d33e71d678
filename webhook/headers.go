package webhook

import "net/http"

// Header names defined by the Standard Webhooks specification.
const (
	HeaderID        = "webhook-id"
	HeaderTimestamp = "webhook-timestamp"
	HeaderSignature = "webhook-signature"
)

// Headers holds the values required to verify a webhook delivery.
type Headers struct {
	// ID is the unique message identifier (webhook-id).
	ID string

	// Timestamp is the send time in seconds since the Unix epoch, as
	// received (webhook-timestamp).
	Timestamp string

	// Signature is the space-separated signature list (webhook-signature).
	Signature string
}

// HeadersFromHTTP extracts the webhook headers from h. Lookup is
// case-insensitive.
func HeadersFromHTTP(h http.Header) Headers {
	return Headers{
		ID:        h.Get(HeaderID),
		Timestamp: h.Get(HeaderTimestamp),
		Signature: h.Get(HeaderSignature),
	}
}

// Apply sets the webhook headers on h, replacing existing values.
func (hs Headers) Apply(h http.Header) {
	h.Set(HeaderID, hs.ID)
	h.Set(HeaderTimestamp, hs.Timestamp)
	h.Set(HeaderSignature, hs.Signature)
}
