package webhook

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSecret(t *testing.T) {
	want, err := base64.StdEncoding.DecodeString("MfKQ9r8GKYqrTwjUPD8ILPZIo2LaLaSw")
	require.NoError(t, err)

	tests := []struct {
		name    string
		input   string
		want    Secret
		wantErr error
	}{
		{name: "with prefix", input: testSecret, want: want},
		{name: "without prefix", input: "MfKQ9r8GKYqrTwjUPD8ILPZIo2LaLaSw", want: want},
		{name: "invalid base64", input: "whsec_not base64!", wantErr: ErrInvalidSecret},
		{name: "empty", input: "", wantErr: ErrInvalidSecret},
		{name: "prefix only", input: "whsec_", wantErr: ErrInvalidSecret},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewSecret(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, ErrArgument)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewSecretFromRaw(t *testing.T) {
	raw := []byte("test_secret")
	s := NewSecretFromRaw(raw)

	raw[0] = 'X'
	assert.Equal(t, Secret("test_secret"), s)
}

func TestSecretString(t *testing.T) {
	s, err := NewSecret(testSecret)
	require.NoError(t, err)
	assert.Equal(t, testSecret, s.String())

	generated, err := GenerateSecret()
	require.NoError(t, err)
	assert.Len(t, generated, secretSize)

	parsed, err := NewSecret(generated.String())
	require.NoError(t, err)
	assert.Equal(t, generated, parsed)
}

func TestNewWithConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		v, err := NewWithConfig(Config{Secret: testSecret})
		require.NoError(t, err)
		assert.Equal(t, DefaultTolerance, v.Tolerance())
		assert.NotNil(t, v.now)
	})

	t.Run("custom tolerance", func(t *testing.T) {
		v, err := NewWithConfig(Config{Secret: testSecret, Tolerance: time.Minute})
		require.NoError(t, err)
		assert.Equal(t, time.Minute, v.Tolerance())
	})

	t.Run("negative tolerance", func(t *testing.T) {
		_, err := NewWithConfig(Config{Secret: testSecret, Tolerance: -time.Second})
		assert.ErrorIs(t, err, ErrInvalidTolerance)
	})

	t.Run("raw secret wins over encoded", func(t *testing.T) {
		v, err := NewWithConfig(Config{Secret: "not base64!", RawSecret: []byte("test_secret")})
		require.NoError(t, err)
		assert.Equal(t, Secret("test_secret"), v.secret)
	})

	t.Run("invalid secret", func(t *testing.T) {
		_, err := New("whsec_%%%")
		assert.ErrorIs(t, err, ErrInvalidSecret)
	})
}
