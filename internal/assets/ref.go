package assets

import (
	"path"
	"strings"
)

// legacyProxyPrefix is how older rows referenced files through the image proxy.
const legacyProxyPrefix = "/api/images"

// Ref is a stored reference to an uploaded file: either an absolute URL
// (object storage, external links) or a path under the public static root.
type Ref string

// FromPtr converts a nullable column into a Ref.
func FromPtr(s *string) Ref {
	if s == nil {
		return ""
	}
	return Ref(strings.TrimSpace(*s))
}

// Ptr converts r back into a nullable column value.
func (r Ref) Ptr() *string {
	if r.IsZero() {
		return nil
	}
	s := string(r)
	return &s
}

func (r Ref) IsZero() bool {
	return strings.TrimSpace(string(r)) == ""
}

// IsRemote reports whether r points outside the public root.
func (r Ref) IsRemote() bool {
	s := strings.ToLower(strings.TrimSpace(string(r)))
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") || strings.HasPrefix(s, "//")
}

// LocalPath returns r as a clean slash path relative to the public root, or ""
// for remote or empty references. The result never escapes the root.
func (r Ref) LocalPath() string {
	if r.IsZero() || r.IsRemote() {
		return ""
	}
	p := strings.TrimSpace(string(r))
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	p = strings.ReplaceAll(p, "\\", "/")
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if p == legacyProxyPrefix || strings.HasPrefix(p, legacyProxyPrefix+"/") {
		p = strings.TrimPrefix(p, legacyProxyPrefix)
	}
	p = path.Clean("/" + p)
	p = strings.TrimPrefix(p, "/")
	if p == "" || p == "." {
		return ""
	}
	return p
}

// Resolve turns r into the URL a browser should load. Local references become
// root-relative paths, prefixed with baseURL when one is configured.
func (r Ref) Resolve(baseURL string) string {
	if r.IsZero() {
		return ""
	}
	if r.IsRemote() {
		return strings.TrimSpace(string(r))
	}
	local := r.LocalPath()
	if local == "" {
		return ""
	}
	return strings.TrimRight(baseURL, "/") + "/" + local
}

// Same reports whether r and o name the same file. A legacy /api/images
// reference matches the plain path it proxies.
func (r Ref) Same(o Ref) bool {
	if r.IsZero() || o.IsZero() {
		return r.IsZero() && o.IsZero()
	}
	return r.Resolve("") == o.Resolve("")
}
