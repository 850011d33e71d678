package webhook

import (
	"net/http"
	"strconv"
	"time"
)

// TransportConfig configures outgoing webhook signing.
type TransportConfig struct {
	// Signers produce the webhook-signature entries. Configure more than
	// one while rotating secrets so receivers holding either secret
	// accept the delivery. Required.
	Signers []*Verifier

	// IDFunc returns the webhook-id for requests that do not carry one.
	// Defaults to NewMessageID.
	IDFunc func(r *http.Request) string

	// Now returns the send time. Defaults to time.Now.
	Now func() time.Time
}

// Transport is an http.RoundTripper that signs outgoing webhook deliveries.
type Transport struct {
	base   http.RoundTripper
	config TransportConfig
}

// NewTransport creates a signing Transport that delegates to base after
// signing each request. When base is nil, a clone of http.DefaultTransport
// is used.
func NewTransport(base *http.Transport, cfg TransportConfig) *Transport {
	var rt http.RoundTripper
	if base != nil {
		rt = base
	} else {
		rt = http.DefaultTransport.(*http.Transport).Clone()
	}

	if cfg.IDFunc == nil {
		cfg.IDFunc = func(*http.Request) string { return NewMessageID() }
	}

	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	return &Transport{
		base:   rt,
		config: cfg,
	}
}

// RoundTrip signs a clone of req and sends it through the base transport.
// A webhook-id already present on req is kept, so a redelivery carries the
// ID of the original attempt.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	if len(t.config.Signers) == 0 {
		return nil, ErrNoSigner
	}

	clone := req.Clone(req.Context())

	if clone.Body != nil && req.GetBody != nil {
		body, err := req.GetBody()
		if err != nil {
			return nil, err
		}

		clone.Body = body
	}

	payload, err := readAndRestoreBody(clone)
	if err != nil {
		return nil, err
	}

	msgID := clone.Header.Get(HeaderID)
	if msgID == "" {
		msgID = t.config.IDFunc(clone)
	}

	timestamp := t.config.Now().Unix()

	sigs := make([]string, 0, len(t.config.Signers))

	for _, signer := range t.config.Signers {
		sig, err := signer.Sign(msgID, timestamp, payload)
		if err != nil {
			return nil, err
		}

		sigs = append(sigs, sig)
	}

	Headers{
		ID:        msgID,
		Timestamp: strconv.FormatInt(timestamp, 10),
		Signature: JoinSignatures(sigs...),
	}.Apply(clone.Header)

	return t.base.RoundTrip(clone)
}
