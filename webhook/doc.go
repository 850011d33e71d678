// Package webhook signs and verifies webhook deliveries following the
// Standard Webhooks scheme.
//
// A message is signed with HMAC-SHA256 over "{id}.{timestamp}.{payload}"
// and delivered with three headers:
//
//   - webhook-id: unique message identifier
//   - webhook-timestamp: send time in seconds since the Unix epoch
//   - webhook-signature: space-separated "v1,<base64>" signatures
//
// Several signatures may be present at once, which lets a sender rotate
// secrets without breaking receivers. Receivers reject timestamps outside a
// tolerance window (five minutes by default) to limit replay.
//
// # Verifying Deliveries
//
//	v, err := webhook.New("whsec_MfKQ9r8GKYqrTwjUPD8ILPZIo2LaLaSw")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	payload, err := v.Verify(body, webhook.HeadersFromHTTP(r.Header))
//	switch {
//	case errors.Is(err, webhook.ErrTimestamp):
//	    // stale or replayed delivery
//	case errors.Is(err, webhook.ErrSignature):
//	    // tampered payload or wrong secret
//	}
//
// # Signing Deliveries
//
//	sig, err := v.Sign(webhook.NewMessageID(), time.Now().Unix(), body)
//
// # Server Middleware
//
// Middleware verifies every request before it reaches the handler:
//
//	mw, err := webhook.Middleware(webhook.MiddlewareConfig{
//	    Verifier:     v,
//	    MaxBodyBytes: 1 << 20,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	http.Handle("/hooks", mw(handler))
//
// # Client Transport
//
// NewTransport creates an http.RoundTripper that signs outgoing deliveries:
//
//	client := &http.Client{
//	    Transport: webhook.NewTransport(nil, webhook.TransportConfig{
//	        Signers: []*webhook.Verifier{current, previous},
//	    }),
//	}
package webhook
