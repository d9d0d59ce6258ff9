package vitae

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

// ErrNoAssetDir is returned when stylesheets are requested from a Site that
// has nowhere to read them from.
var ErrNoAssetDir = errors.New("site has no asset directory")

// Stylesheets reads the stylesheets at paths from the Site's AssetDir and
// joins them, in order, into one block of CSS. A path listed twice, or two
// files with identical contents, are only included once.
//
// If the Site is a StylesheetCacher, each file is only read once until the
// cache is purged.
func Stylesheets(ctx context.Context, site Site, paths ...string) (string, error) {
	if len(paths) < 1 {
		return "", nil
	}
	assets, ok := site.(AssetSite)
	if !ok || assets.AssetDir(ctx) == nil {
		return "", ErrNoAssetDir
	}
	fsys := assets.AssetDir(ctx)
	cache, cacheable := site.(StylesheetCacher)

	var results []string
	seen := map[string]struct{}{}
	for _, path := range paths {
		var css string
		if cached := lookupStylesheet(ctx, cache, cacheable, path); cached != nil {
			css = *cached
		} else {
			contents, err := fs.ReadFile(fsys, path)
			if err != nil {
				return "", fmt.Errorf("error reading stylesheet %q: %w", path, err)
			}
			css = string(contents)
			if cacheable {
				cache.SetCachedStylesheet(ctx, path, css)
			}
		}
		sum := sha256.Sum256([]byte(css))
		checksum := hex.EncodeToString(sum[:])
		if _, ok := seen[checksum]; ok {
			logger(ctx).DebugContext(ctx, "skipping duplicate stylesheet", "path", path)
			continue
		}
		seen[checksum] = struct{}{}
		results = append(results, css)
	}
	return strings.Join(results, "\n"), nil
}

func lookupStylesheet(ctx context.Context, cache StylesheetCacher, cacheable bool, path string) *string {
	if !cacheable {
		return nil
	}
	return cache.GetCachedStylesheet(ctx, path)
}
