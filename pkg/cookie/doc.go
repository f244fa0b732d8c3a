// Package cookie wraps net/http cookie handling with sane secure defaults
// (Path=/, HttpOnly, SameSite=Lax) and tamper-evident values signed with
// HMAC-SHA256.
//
// Signed values are encoded as base64url(value) + "." + base64url(hmac).
// The manager accepts several secrets: the first one signs new cookies,
// every secret is tried on verification, which makes key rotation a matter
// of prepending the new secret and keeping the old one around until issued
// cookies age out.
//
//	cookies, err := cookie.New([]string{"at-least-32-characters-long-key!"})
//	if err != nil { ... }
//
//	cookies.SetSigned(w, "sid", token, cookie.WithMaxAge(3600))
//	token, err := cookies.GetSigned(r, "sid")
//
// Verification failures come back as ErrInvalidFormat or
// ErrInvalidSignature; callers treating cookies as untrusted input (session
// lookups) should treat both as "no cookie".
package cookie
