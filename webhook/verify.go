package webhook

import (
	"crypto/hmac"
	"encoding/json"
	"strconv"
	"strings"
)

// VerifyTimestamp parses a webhook-timestamp value and checks that it lies
// within the tolerance window [now-tolerance, now+tolerance].
func (v *Verifier) VerifyTimestamp(header string) (int64, error) {
	timestamp, err := strconv.ParseInt(header, 10, 64)
	if err != nil {
		return 0, ErrInvalidTimestampFormat
	}

	now := v.now().Unix()

	if timestamp < now-v.tolerance {
		return 0, ErrTimestampTooOld
	}

	if timestamp > now+v.tolerance {
		return 0, ErrTimestampTooNew
	}

	return timestamp, nil
}

// Verify authenticates payload against the webhook headers and returns the
// payload decoded as a JSON object.
//
// Checks run in order and stop at the first failure: header presence
// (ErrMissingHeaders), timestamp window (see VerifyTimestamp), and
// signature match (ErrNoMatchingSignature).
func (v *Verifier) Verify(payload []byte, h Headers) (map[string]any, error) {
	var out map[string]any
	if err := v.VerifyInto(payload, h, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// VerifyInto is like Verify but decodes the authenticated JSON payload into
// dst. It returns ErrInvalidPayload if decoding fails.
func (v *Verifier) VerifyInto(payload []byte, h Headers, dst any) error {
	if err := v.verify(payload, h); err != nil {
		return err
	}

	if err := json.Unmarshal(payload, dst); err != nil {
		return wrap(ErrInvalidPayload, err)
	}

	return nil
}

func (v *Verifier) verify(payload []byte, h Headers) error {
	if h.ID == "" || h.Timestamp == "" || h.Signature == "" {
		return ErrMissingHeaders
	}

	timestamp, err := v.VerifyTimestamp(h.Timestamp)
	if err != nil {
		return err
	}

	sig, err := v.Sign(h.ID, timestamp, payload)
	if err != nil {
		return err
	}

	_, expected, _ := strings.Cut(sig, ",")

	for entry := range strings.SplitSeq(h.Signature, " ") {
		version, digest, ok := strings.Cut(entry, ",")
		if !ok || version != SignatureVersion {
			continue
		}

		if hmac.Equal([]byte(digest), []byte(expected)) {
			return nil
		}
	}

	return ErrNoMatchingSignature
}
