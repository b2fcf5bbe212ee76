// Package clientip resolves the address a request came from.
package clientip

import (
	"net"
	"net/http"
	"strings"
)

// RealClientIP returns the host part of r.RemoteAddr. When the router runs
// chi's RealIP middleware, RemoteAddr already holds the proxy-reported client
// address and may have no port.
func RealClientIP(r *http.Request) string {
	addr := strings.TrimSpace(r.RemoteAddr)
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	return host
}
