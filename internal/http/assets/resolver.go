// Package assets maps static file names to cache-busted URLs.
package assets

import (
	"crypto/sha256"
	"encoding/hex"
	"io/fs"
	"log/slog"
	"path"
	"strings"
	"sync"
)

// URLPrefix is where static files are mounted.
const URLPrefix = "/static/"

// VersionParam is the query parameter carrying the content fingerprint.
const VersionParam = "v"

// AssetResolver fingerprints files from a static filesystem so templates can
// reference them with a long-lived cache. Fingerprints are computed on first
// use and cached unless the resolver is in dev mode.
type AssetResolver struct {
	fsys    fs.FS
	devMode bool
	logger  *slog.Logger

	mu     sync.RWMutex
	hashes map[string]string
}

// NewAssetResolver creates a resolver over fsys (rooted at the static dir).
// A nil fsys yields plain, unversioned URLs.
func NewAssetResolver(fsys fs.FS, devMode bool, logger *slog.Logger) *AssetResolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &AssetResolver{fsys: fsys, devMode: devMode, logger: logger, hashes: make(map[string]string)}
}

// Resolve returns the public URL for a logical asset name such as "css/app.css".
func (ar *AssetResolver) Resolve(logicalName string) string {
	name := strings.TrimPrefix(path.Clean("/"+logicalName), "/")
	u := URLPrefix + name
	if ar == nil || ar.fsys == nil {
		return u
	}
	if v := ar.fingerprint(name); v != "" {
		return u + "?" + VersionParam + "=" + v
	}
	return u
}

func (ar *AssetResolver) fingerprint(name string) string {
	if !ar.devMode {
		ar.mu.RLock()
		v, ok := ar.hashes[name]
		ar.mu.RUnlock()
		if ok {
			return v
		}
	}

	data, err := fs.ReadFile(ar.fsys, name)
	if err != nil {
		ar.logger.Warn("asset not found", slog.String("asset", name), slog.Any("error", err))
		return ""
	}
	sum := sha256.Sum256(data)
	v := hex.EncodeToString(sum[:])[:12]

	if !ar.devMode {
		ar.mu.Lock()
		ar.hashes[name] = v
		ar.mu.Unlock()
	}
	return v
}

// IsVersioned reports whether a request query carries a fingerprint.
func IsVersioned(rawQuery string) bool {
	return strings.Contains(rawQuery, VersionParam+"=")
}
