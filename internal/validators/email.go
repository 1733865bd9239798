package validators

import (
	"net"
	"strings"
)

// IsEmailDomainValid checks that the address domain actually accepts
// mail before an account is created around it. Walk-in clients get
// registered from hand-typed addresses, so the domain is normalized
// first and bare hostnames are rejected outright.
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 1 || at == len(email)-1 {
		return false
	}

	domain := strings.ToLower(strings.TrimSpace(email[at+1:]))
	domain = strings.TrimSuffix(domain, ".")

	if domain == "" || !strings.Contains(domain, ".") {
		return false
	}

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
