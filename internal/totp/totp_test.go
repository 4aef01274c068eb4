package totp_test

import (
	"encoding/base32"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/SimpnicServerTeam/scs-mfa-server/internal/totp"
	pquerna "github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rfcSecret is the ASCII key "12345678901234567890" from RFC 6238 Appendix B,
// base32-encoded.
var rfcSecret = base32.StdEncoding.WithPadding(base32.NoPadding).
	EncodeToString([]byte("12345678901234567890"))

func TestGenerateTOTP_RFC6238Vectors(t *testing.T) {
	// Low-order 6 digits of the SHA-1 vectors in RFC 6238 Appendix B.
	vectors := []struct {
		unix     int64
		expected string
	}{
		{59, "287082"},
		{1111111109, "081804"},
		{1111111111, "050471"},
		{1234567890, "005924"},
		{2000000000, "279037"},
	}

	for _, v := range vectors {
		code, err := totp.GenerateTOTP(rfcSecret, time.Unix(v.unix, 0).UTC())
		require.NoError(t, err)
		assert.Equal(t, v.expected, code, "timestamp %d", v.unix)
	}
}

func TestGenerateTOTP_MatchesReferenceImplementation(t *testing.T) {
	secret, err := totp.GenerateSecret()
	require.NoError(t, err)

	for _, at := range []time.Time{
		time.Unix(1700000000, 0).UTC(),
		time.Unix(1700000029, 0).UTC(),
		time.Now().UTC(),
	} {
		ours, err := totp.GenerateTOTP(secret, at)
		require.NoError(t, err)

		theirs, err := pquerna.GenerateCode(secret, at)
		require.NoError(t, err)

		assert.Equal(t, theirs, ours, "at %v", at)
	}
}

func TestGenerateTOTP_Deterministic(t *testing.T) {
	at := time.Unix(1700000000, 0).UTC()
	first, err := totp.GenerateTOTP(rfcSecret, at)
	require.NoError(t, err)
	second, err := totp.GenerateTOTP(rfcSecret, at)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Len(t, first, 6)
}

func TestGenerateTOTP_InvalidSecret(t *testing.T) {
	_, err := totp.GenerateTOTP("not base32 !!!", time.Now().UTC())
	require.Error(t, err)
}

func TestVerifyTOTP_RoundTrip(t *testing.T) {
	secret, err := totp.GenerateSecret()
	require.NoError(t, err)

	at := time.Unix(1700000010, 0).UTC()
	code, err := totp.GenerateTOTP(secret, at)
	require.NoError(t, err)

	assert.True(t, totp.VerifyTOTP(secret, code, at))
}

func TestVerifyTOTP_WindowBoundaries(t *testing.T) {
	secret, err := totp.GenerateSecret()
	require.NoError(t, err)

	// Step-aligned server time so each 30s offset is exactly one step.
	at := time.Unix(1699999980, 0).UTC()

	cases := []struct {
		name    string
		offset  time.Duration
		accepts bool
	}{
		{"Current", 0, true},
		{"MinusOneStep", -30 * time.Second, true},
		{"PlusOneStep", 30 * time.Second, true},
		{"MinusTwoSteps", -60 * time.Second, true},
		{"PlusTwoSteps", 60 * time.Second, true},
		{"MinusThreeSteps", -90 * time.Second, false},
		{"PlusThreeSteps", 90 * time.Second, false},
		{"PlusFiveSteps", 150 * time.Second, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, err := totp.GenerateTOTP(secret, at.Add(tc.offset))
			require.NoError(t, err)
			assert.Equal(t, tc.accepts, totp.VerifyTOTP(secret, code, at))
		})
	}
}

func TestVerifyTOTP_RejectsGarbage(t *testing.T) {
	secret, err := totp.GenerateSecret()
	require.NoError(t, err)

	assert.False(t, totp.VerifyTOTP(secret, "000000x", time.Now().UTC()))
	assert.False(t, totp.VerifyTOTP(secret, "", time.Now().UTC()))
}

func TestGenerateSecret_Format(t *testing.T) {
	seen := map[string]struct{}{}
	for i := 0; i < 10; i++ {
		secret, err := totp.GenerateSecret()
		require.NoError(t, err)
		// 160 bits -> 32 unpadded base32 characters.
		assert.Len(t, secret, 32)
		assert.NotContains(t, secret, "=")
		_, err = base32.StdEncoding.WithPadding(base32.NoPadding).DecodeString(secret)
		require.NoError(t, err)
		seen[secret] = struct{}{}
	}
	assert.Len(t, seen, 10, "secrets must not repeat")
}

func TestGenerateQRCodeURL(t *testing.T) {
	uri := totp.GenerateQRCodeURL("JBSWY3DPEHPK3PXP", "alice@example.com", "SCS")

	parsed, err := url.Parse(uri)
	require.NoError(t, err)
	assert.Equal(t, "otpauth", parsed.Scheme)
	assert.Equal(t, "totp", parsed.Host)
	assert.True(t, strings.HasPrefix(parsed.Path, "/SCS:"), "label must carry the issuer prefix: %s", parsed.Path)

	q := parsed.Query()
	assert.Equal(t, "JBSWY3DPEHPK3PXP", q.Get("secret"))
	assert.Equal(t, "SCS", q.Get("issuer"))
	assert.Equal(t, "SHA1", q.Get("algorithm"))
	assert.Equal(t, "6", q.Get("digits"))
	assert.Equal(t, "30", q.Get("period"))
}

func TestGenerateBackupCodes(t *testing.T) {
	codes, err := totp.GenerateBackupCodes(10)
	require.NoError(t, err)
	require.Len(t, codes, 10)

	seen := map[string]struct{}{}
	for _, code := range codes {
		assert.Len(t, code, 8)
		assert.Equal(t, strings.ToUpper(code), code)
		assert.True(t, totp.ValidateBackupCode(code), "generated code must validate: %s", code)
		seen[code] = struct{}{}
	}
	assert.Len(t, seen, 10, "codes must be distinct")
}

func TestGenerateBackupCodes_DefaultCount(t *testing.T) {
	codes, err := totp.GenerateBackupCodes(0)
	require.NoError(t, err)
	assert.Len(t, codes, totp.DefaultBackupCodeCount)
}

func TestValidateBackupCode(t *testing.T) {
	assert.True(t, totp.ValidateBackupCode("A1B2C3D4"))
	assert.True(t, totp.ValidateBackupCode("a1b2c3d4")) // case-insensitive
	assert.False(t, totp.ValidateBackupCode("A1B2C3D"))   // too short
	assert.False(t, totp.ValidateBackupCode("A1B2C3D45")) // too long
	assert.False(t, totp.ValidateBackupCode("G1B2C3D4"))  // not hex
	assert.False(t, totp.ValidateBackupCode(""))
}

func TestConstantTimeEquals(t *testing.T) {
	assert.True(t, totp.ConstantTimeEquals("123456", "123456"))
	assert.False(t, totp.ConstantTimeEquals("123456", "123457"))
	assert.False(t, totp.ConstantTimeEquals("123456", "12345"))
	assert.True(t, totp.ConstantTimeEquals("", ""))
}
