package utils

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/url"
	"strings"

	"bm/config"
	"bm/utils/security"
)

// SecureHTTPClientWithConfig creates an HTTP client that refuses to dial
// private networks. Import gateways use it for all outbound requests.
func SecureHTTPClientWithConfig(cfg *config.HTTPConfig) *http.Client {
	dialer := &net.Dialer{
		Timeout: cfg.DialTimeout,
	}

	transport := &http.Transport{
		DialContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
			host, port, err := net.SplitHostPort(addr)
			if err != nil {
				return nil, err
			}

			if err := validateTarget(host, port); err != nil {
				return nil, err
			}

			return dialer.DialContext(ctx, network, addr)
		},
		TLSHandshakeTimeout: cfg.TLSHandshakeTimeout,
		IdleConnTimeout:     cfg.IdleConnTimeout,
		MaxIdleConns:        200,
		MaxIdleConnsPerHost: 50,
	}

	return &http.Client{
		Transport: transport,
		Timeout:   cfg.ClientTimeout,
	}
}

// validateTarget validates the target host and port for SSRF protection
func validateTarget(host, port string) error {
	// Block common internal ports
	blockedPorts := map[string]bool{
		"22":    true, // SSH
		"23":    true, // Telnet
		"25":    true, // SMTP
		"53":    true, // DNS
		"110":   true, // POP3
		"143":   true, // IMAP
		"993":   true, // IMAPS
		"995":   true, // POP3S
		"1433":  true, // MSSQL
		"3306":  true, // MySQL
		"5432":  true, // PostgreSQL
		"6379":  true, // Redis
		"11211": true, // Memcached
	}

	if blockedPorts[port] {
		return errors.New("access to this port is not allowed")
	}

	if isPrivateHost(host) {
		return errors.New("access to private networks not allowed")
	}

	return nil
}

// isPrivateHost blocks localhost variations, metadata endpoints and
// internal domain suffixes before delegating IP checks to security.
func isPrivateHost(hostname string) bool {
	hostnameLC := strings.ToLower(hostname)
	if hostnameLC == "localhost" || strings.HasPrefix(hostnameLC, "127.") {
		return true
	}

	if hostnameLC == "169.254.169.254" || hostnameLC == "metadata.google.internal" {
		return true
	}

	internalDomains := []string{".local", ".internal", ".corp", ".lan"}
	for _, domain := range internalDomains {
		if strings.HasSuffix(hostnameLC, domain) {
			return true
		}
	}

	return security.IsPrivateHost(hostname)
}

// ValidateURL validates a URL for SSRF protection
func ValidateURL(u *url.URL) error {
	if u.Scheme != "https" && u.Scheme != "http" {
		return errors.New("only HTTP and HTTPS schemes allowed")
	}

	if u.Hostname() == "" {
		return errors.New("URL must contain a host")
	}

	return validateTarget(u.Hostname(), u.Port())
}
