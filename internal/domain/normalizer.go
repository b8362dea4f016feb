package domain

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/idna"
)

const (
	maxNameLen  = 253
	maxLabelLen = 63
)

// ErrInvalidDomain is returned for strings that are not usable domain names.
var ErrInvalidDomain = errors.New("invalid domain")

// ParseKey normalizes raw and builds a Key from it.
// Unlike NewKey it rejects malformed names with ErrInvalidDomain.
func ParseKey(raw string) (Key, error) {
	host, err := NormalizeHost(raw)
	if err != nil {
		return Key{}, err
	}
	return NewKey(host), nil
}

// NormalizeHost turns a domain name as found in registries or user input
// into its canonical lower-case ASCII form and validates its syntax.
func NormalizeHost(raw string) (string, error) {
	host := strings.TrimSpace(raw)
	if host == "" {
		return "", fmt.Errorf("%w: empty name", ErrInvalidDomain)
	}

	// Fully qualified names carry a single trailing dot: "example.com.".
	host = strings.TrimSuffix(host, ".")

	if isASCII(host) {
		host = toLowerASCII(host)
	} else {
		// Non-ASCII names are matched by their punycode form.
		asciiHost, err := idna.Lookup.ToASCII(host)
		if err != nil {
			return "", fmt.Errorf("%w: idna: %v", ErrInvalidDomain, err)
		}
		host = strings.ToLower(asciiHost)
	}

	if err := validateHost(host); err != nil {
		return "", err
	}
	return host, nil
}

func validateHost(host string) error {
	if host == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidDomain)
	}
	if len(host) > maxNameLen {
		return fmt.Errorf("%w: name longer than %d bytes", ErrInvalidDomain, maxNameLen)
	}

	for _, label := range strings.Split(host, ".") {
		switch {
		case label == "":
			return fmt.Errorf("%w: empty label in %q", ErrInvalidDomain, host)
		case len(label) > maxLabelLen:
			return fmt.Errorf("%w: label %q longer than %d bytes", ErrInvalidDomain, label, maxLabelLen)
		case label[0] == '-' || label[len(label)-1] == '-':
			return fmt.Errorf("%w: label %q starts or ends with '-'", ErrInvalidDomain, label)
		}
		for i := 0; i < len(label); i++ {
			if !isLabelByte(label[i]) {
				return fmt.Errorf("%w: unexpected character %q in %q", ErrInvalidDomain, label[i], host)
			}
		}
	}
	return nil
}

// isLabelByte accepts LDH characters plus '_', which shows up in real
// registries (service labels such as "_dmarc").
func isLabelByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= '0' && c <= '9' || c == '-' || c == '_'
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

func toLowerASCII(s string) string {
	b := []byte(s)
	for i := 0; i < len(b); i++ {
		c := b[i]
		if c >= 'A' && c <= 'Z' {
			b[i] = c + 32
		}
	}
	return string(b)
}
