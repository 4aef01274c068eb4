// Package totp implements RFC 6238 time-based one-time passwords and the
// companion backup codes used as a recovery factor.
package totp

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha1"
	"crypto/subtle"
	"encoding/base32"
	"encoding/binary"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"
)

const (
	// Period is the TOTP time step in seconds.
	Period = 30
	// Digits is the number of digits in a generated code.
	Digits = 6
	// SkewSteps is the number of time steps accepted on each side of now,
	// tolerating +/-60s of client clock drift.
	SkewSteps = 2

	secretBytes     = 20 // 160 bits per RFC 4226 recommendation
	backupCodeBytes = 4
)

// DefaultBackupCodeCount is how many backup codes a fresh set contains.
const DefaultBackupCodeCount = 10

var b32 = base32.StdEncoding.WithPadding(base32.NoPadding)

var backupCodePattern = regexp.MustCompile(`^[A-Fa-f0-9]{8}$`)

// GenerateSecret returns a fresh 160-bit shared secret as an unpadded
// RFC 4648 base32 string. Fails only when the entropy source does.
func GenerateSecret() (string, error) {
	buf := make([]byte, secretBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random secret: %w", err)
	}
	return b32.EncodeToString(buf), nil
}

// GenerateTOTP computes the 6-digit code for the given secret at the given
// time. Deterministic for a fixed (secret, timestamp) pair.
func GenerateTOTP(secret string, at time.Time) (string, error) {
	return generateAtStep(secret, at.Unix()/Period)
}

func generateAtStep(secret string, step int64) (string, error) {
	key, err := b32.DecodeString(strings.ToUpper(strings.TrimRight(secret, "=")))
	if err != nil {
		return "", fmt.Errorf("invalid base32 secret: %w", err)
	}

	// 8-byte big-endian counter, written as two 32-bit halves.
	var counter [8]byte
	binary.BigEndian.PutUint32(counter[0:4], uint32(uint64(step)>>32))
	binary.BigEndian.PutUint32(counter[4:8], uint32(uint64(step)&0xffffffff))

	mac := hmac.New(sha1.New, key)
	mac.Write(counter[:])
	sum := mac.Sum(nil)

	// RFC 4226 dynamic truncation.
	offset := sum[len(sum)-1] & 0x0f
	code := (uint32(sum[offset]&0x7f)<<24 |
		uint32(sum[offset+1])<<16 |
		uint32(sum[offset+2])<<8 |
		uint32(sum[offset+3])) % 1000000

	return fmt.Sprintf("%06d", code), nil
}

// VerifyTOTP reports whether token matches the secret's code at any step in
// the +/-SkewSteps window around the given time. Comparison is constant-time.
func VerifyTOTP(secret, token string, at time.Time) bool {
	step := at.Unix() / Period
	for delta := int64(-SkewSteps); delta <= SkewSteps; delta++ {
		expected, err := generateAtStep(secret, step+delta)
		if err != nil {
			return false
		}
		if ConstantTimeEquals(expected, token) {
			return true
		}
	}
	return false
}

// GenerateQRCodeURL builds the otpauth://totp provisioning URI an
// authenticator app can enroll from.
func GenerateQRCodeURL(secret, label, issuer string) string {
	params := url.Values{}
	params.Set("secret", secret)
	params.Set("issuer", issuer)
	params.Set("algorithm", "SHA1")
	params.Set("digits", fmt.Sprintf("%d", Digits))
	params.Set("period", fmt.Sprintf("%d", Period))

	return fmt.Sprintf("otpauth://totp/%s:%s?%s",
		url.PathEscape(issuer), url.PathEscape(label), params.Encode())
}

// GenerateBackupCodes returns count one-time recovery codes, each 8 uppercase
// hex characters from 4 random bytes.
func GenerateBackupCodes(count int) ([]string, error) {
	if count <= 0 {
		count = DefaultBackupCodeCount
	}
	codes := make([]string, 0, count)
	for i := 0; i < count; i++ {
		buf := make([]byte, backupCodeBytes)
		if _, err := rand.Read(buf); err != nil {
			return nil, fmt.Errorf("failed to read random backup code: %w", err)
		}
		codes = append(codes, strings.ToUpper(fmt.Sprintf("%02x%02x%02x%02x", buf[0], buf[1], buf[2], buf[3])))
	}
	return codes, nil
}

// ValidateBackupCode checks the recovery code format (8 hex characters,
// case-insensitive) without consulting any store.
func ValidateBackupCode(code string) bool {
	return backupCodePattern.MatchString(code)
}

// ConstantTimeEquals compares two strings without leaking how far they match.
// Unequal lengths are rejected immediately; that only leaks the length.
func ConstantTimeEquals(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
