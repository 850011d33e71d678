package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"strconv"
	"strings"
	"time"
)

// SignatureVersion is the only signature scheme version produced and
// accepted: HMAC-SHA256 over the canonical message.
const SignatureVersion = "v1"

// Sign returns the "v1,<base64>" signature of the message identified by
// msgID and timestamp (seconds since the Unix epoch). The payload is signed
// as the exact bytes given.
//
// It returns ErrInvalidTimestamp if timestamp is not positive.
func (v *Verifier) Sign(msgID string, timestamp int64, payload []byte) (string, error) {
	if timestamp <= 0 {
		return "", ErrInvalidTimestamp
	}

	return SignatureVersion + "," + v.digest(msgID, timestamp, payload), nil
}

// SignHeaders signs payload and returns the complete set of headers for
// delivering it.
func (v *Verifier) SignHeaders(msgID string, ts time.Time, payload []byte) (Headers, error) {
	timestamp := ts.Unix()

	sig, err := v.Sign(msgID, timestamp, payload)
	if err != nil {
		return Headers{}, err
	}

	return Headers{
		ID:        msgID,
		Timestamp: strconv.FormatInt(timestamp, 10),
		Signature: sig,
	}, nil
}

// JoinSignatures combines signatures from several secrets into a single
// webhook-signature value, as sent while a secret is being rotated.
func JoinSignatures(sigs ...string) string {
	return strings.Join(sigs, " ")
}

// digest returns the base64 HMAC-SHA256 of "{msgID}.{timestamp}.{payload}".
func (v *Verifier) digest(msgID string, timestamp int64, payload []byte) string {
	return base64.StdEncoding.EncodeToString(computeHMAC(v.secret, canonical(msgID, timestamp, payload)))
}

// canonical builds the signing input. Fields are joined with a literal '.'
// and never escaped.
func canonical(msgID string, timestamp int64, payload []byte) []byte {
	buf := make([]byte, 0, len(msgID)+len(payload)+22)
	buf = append(buf, msgID...)
	buf = append(buf, '.')
	buf = strconv.AppendInt(buf, timestamp, 10)
	buf = append(buf, '.')
	buf = append(buf, payload...)

	return buf
}

func computeHMAC(key, message []byte) []byte {
	h := hmac.New(sha256.New, key)
	h.Write(message)

	return h.Sum(nil)
}
