// SPDX-License-Identifier: EPL-2.0

package cache

import (
	"net/url"
	"path/filepath"
	"strings"
)

// NormalizeKey maps equivalent spellings of a resource to one cache key.
//
// Plain paths are cleaned and made absolute. URLs get a lower-case scheme
// and host; file:// URLs are reduced to their path and treated like plain
// paths. Anything that fails to parse as a URL is kept as given.
func NormalizeKey(key string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", ErrEmptyKey
	}

	if !strings.Contains(key, "://") {
		return normalizePath(key), nil
	}

	u, err := url.Parse(key)
	if err != nil {
		return key, nil
	}

	if strings.EqualFold(u.Scheme, "file") {
		if u.Path == "" {
			return "", ErrEmptyKey
		}
		return normalizePath(filepath.FromSlash(u.Path)), nil
	}

	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)

	return u.String(), nil
}

func normalizePath(p string) string {
	p = filepath.Clean(p)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
