package mpesa

import (
	"encoding/base64"
	"strconv"
	"time"
)

const timestampLayout = "20060102150405"

// Timestamp renders t as YYYYMMDDHHmmss in t's own location.
func Timestamp(t time.Time) string {
	return t.Format(timestampLayout)
}

// Signer produces the request password for a given request timestamp.
type Signer interface {
	Sign(timestamp string) string
}

type SignerFunc func(timestamp string) string

func (f SignerFunc) Sign(timestamp string) string { return f(timestamp) }

// PasskeySigner implements the Daraja scheme base64(shortCode + passkey + timestamp).
func PasskeySigner(shortCode int64, passkey string) Signer {
	prefix := strconv.FormatInt(shortCode, 10) + passkey
	return SignerFunc(func(timestamp string) string {
		return base64.StdEncoding.EncodeToString([]byte(prefix + timestamp))
	})
}

// StaticSigner ignores the timestamp and always returns password.
// The sandbox accepts a pre-computed password; production endpoints do not.
func StaticSigner(password string) Signer {
	return SignerFunc(func(string) string { return password })
}
