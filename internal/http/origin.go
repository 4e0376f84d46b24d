package http

import (
	"net/http"
	"net/url"
	"strings"
)

// requireSameOrigin пропускает события только со страниц самого клиента:
// Origin (или Referer) из AllowedOrigins и Sec-Fetch-Site не cross-site.
func (h *Handler) requireSameOrigin(next http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(h.AllowedOrigins))
	for _, o := range h.AllowedOrigins {
		if n := normalizeOrigin(o); n != "" {
			allowed[n] = struct{}{}
		}
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		const handlerName = "requireSameOrigin"

		if strings.EqualFold(r.Header.Get("Sec-Fetch-Site"), "cross-site") {
			h.writeError(w, r, handlerName, http.StatusForbidden, "FORBIDDEN", "cross-site request", nil)
			return
		}

		source := strings.TrimSpace(r.Header.Get("Origin"))
		if source == "" {
			source = strings.TrimSpace(r.Header.Get("Referer"))
		}
		if _, ok := allowed[normalizeOrigin(source)]; !ok || source == "" {
			h.writeError(w, r, handlerName, http.StatusForbidden, "FORBIDDEN", "origin not allowed", nil)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// normalizeOrigin сводит Origin или Referer к виду scheme://host[:port].
func normalizeOrigin(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ""
	}
	scheme := strings.ToLower(u.Scheme)
	host := strings.ToLower(u.Hostname())
	port := u.Port()
	if (scheme == "http" && port == "80") || (scheme == "https" && port == "443") {
		port = ""
	}
	if port != "" {
		host += ":" + port
	}
	return scheme + "://" + host
}
