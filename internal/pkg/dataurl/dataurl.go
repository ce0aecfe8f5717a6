// Package dataurl embeds image files as base64 data URIs so records can carry
// their pictures inline instead of referencing an object store.
package dataurl

import (
	"encoding/base64"
	"errors"
	"strings"
)

var (
	ErrTooLarge        = errors.New("image exceeds size limit")
	ErrUnsupportedType = errors.New("unsupported content type")
	ErrMalformed       = errors.New("malformed data URI")
)

const prefix = "data:"

// Encode converts raw file bytes into a data URI. maxBytes caps the decoded
// size; files exactly at the cap pass, one byte over fails.
func Encode(data []byte, contentType string, maxBytes int) (string, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return "", ErrUnsupportedType
	}
	if maxBytes > 0 && len(data) > maxBytes {
		return "", ErrTooLarge
	}
	return prefix + contentType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// IsDataURI reports whether s looks like an embedded image rather than an
// external URL or placeholder.
func IsDataURI(s string) bool {
	return strings.HasPrefix(s, prefix)
}

// Validate checks an already-encoded data URI against the decoded byte cap.
// Plain URLs (placeholders, external images) pass through untouched.
func Validate(s string, maxBytes int) error {
	if !IsDataURI(s) {
		return nil
	}

	rest := s[len(prefix):]
	semi := strings.Index(rest, ";base64,")
	if semi < 0 {
		return ErrMalformed
	}
	contentType := rest[:semi]
	if !strings.HasPrefix(contentType, "image/") {
		return ErrUnsupportedType
	}

	payload := rest[semi+len(";base64,"):]
	decoded, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return ErrMalformed
	}
	if maxBytes > 0 && len(decoded) > maxBytes {
		return ErrTooLarge
	}
	return nil
}

// DecodedSize returns the decoded byte length of the payload.
func DecodedSize(s string) (int, error) {
	if !IsDataURI(s) {
		return 0, ErrMalformed
	}
	rest := s[len(prefix):]
	semi := strings.Index(rest, ";base64,")
	if semi < 0 {
		return 0, ErrMalformed
	}
	payload := rest[semi+len(";base64,"):]
	decoded, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return 0, ErrMalformed
	}
	return len(decoded), nil
}
