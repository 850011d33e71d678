package webhook

import "time"

// DefaultTolerance is the accepted distance between a message timestamp and
// the local clock when Config.Tolerance is zero.
const DefaultTolerance = 300 * time.Second

// Config configures a Verifier.
type Config struct {
	// Secret is the signing secret in "whsec_<base64>" form (the prefix
	// is optional). Ignored when RawSecret is set.
	Secret string `yaml:"secret"`

	// RawSecret is the already decoded HMAC key.
	RawSecret []byte `yaml:"-"`

	// Tolerance is the maximum distance, in either direction, between a
	// message timestamp and now. Defaults to DefaultTolerance. Only whole
	// seconds are significant.
	Tolerance time.Duration `yaml:"tolerance"`

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time `yaml:"-"`
}

// Verifier signs and verifies webhook messages with a single secret.
//
// A Verifier is immutable after construction and safe for concurrent use.
type Verifier struct {
	secret    Secret
	tolerance int64
	now       func() time.Time
}

// New creates a Verifier from a secret in "whsec_<base64>" form using the
// default tolerance.
func New(secret string) (*Verifier, error) {
	return NewWithConfig(Config{Secret: secret})
}

// NewFromRaw creates a Verifier that uses raw directly as the HMAC key.
func NewFromRaw(raw []byte) *Verifier {
	return newVerifier(NewSecretFromRaw(raw), DefaultTolerance, time.Now)
}

// NewWithConfig creates a Verifier from cfg.
func NewWithConfig(cfg Config) (*Verifier, error) {
	if cfg.Tolerance < 0 {
		return nil, ErrInvalidTolerance
	}

	var secret Secret
	if cfg.RawSecret != nil {
		secret = NewSecretFromRaw(cfg.RawSecret)
	} else {
		var err error

		secret, err = NewSecret(cfg.Secret)
		if err != nil {
			return nil, err
		}
	}

	tolerance := cfg.Tolerance
	if tolerance == 0 {
		tolerance = DefaultTolerance
	}

	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return newVerifier(secret, tolerance, now), nil
}

func newVerifier(secret Secret, tolerance time.Duration, now func() time.Time) *Verifier {
	return &Verifier{
		secret:    secret,
		tolerance: int64(tolerance / time.Second),
		now:       now,
	}
}

// Tolerance returns the configured timestamp tolerance.
func (v *Verifier) Tolerance() time.Duration {
	return time.Duration(v.tolerance) * time.Second
}
