package sources

import (
	"net/url"
	"strings"
)

// Proxy rewrites absolute upstream URLs to go through a CORS passthrough
// endpoint. The transport behind it is not our concern, only the rewrite
// and the "already proxied" check are.
type Proxy struct {
	Base string
}

func (p Proxy) Proxied(u string) string {
	return p.Base + "?url=" + url.QueryEscape(u)
}

func (p Proxy) IsProxied(u string) bool {
	return p.Base != "" && strings.HasPrefix(u, p.Base)
}

// Maybe proxies absolute http(s) URLs, everything else passes through.
func (p Proxy) Maybe(u string) string {
	if p.Base == "" || u == "" {
		return u
	}
	if p.IsProxied(u) {
		return u
	}
	if strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://") {
		return p.Proxied(u)
	}
	return u
}
