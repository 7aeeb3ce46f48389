package ribbon

import (
	"fmt"
	"image"
	"io"
	"sync"

	// Register the texture formats walls and ribbons are shipped in.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/gogpu/gputypes"

	"github.com/meshform/ribbon/internal/texscan"
)

// VisibleBand is a public alias for the internal row-scan result: the
// vertical span of texture rows containing non-transparent pixels.
type VisibleBand = texscan.Band

// AlphaThreshold is the alpha value a pixel must exceed for its row to
// count as visible. Historically two call sites disagreed (10 and 4);
// the lower, conservative value is used everywhere now: trimming too
// little keeps antialiased texture edges intact, while trimming too much
// visibly clips them.
const AlphaThreshold uint8 = 4

// TextureInfo describes a decoded texture at the engine boundary: pixel
// dimensions, the pixel layout handed to the renderer, and a stable cache
// key. The engine never holds the pixels themselves.
type TextureInfo struct {
	Key    string
	Width  int
	Height int
	Format gputypes.TextureFormat
}

// DecodeTexture decodes a texture image (PNG, JPEG, WebP or BMP), and
// returns its info plus the normalized straight-alpha pixels for visible
// row scanning. key identifies the texture for caching.
func DecodeTexture(r io.Reader, key string) (TextureInfo, *image.NRGBA, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return TextureInfo{}, nil, fmt.Errorf("ribbon: decode texture %q: %w", key, err)
	}
	n := texscan.ToNRGBA(img)
	info := TextureInfo{
		Key:    key,
		Width:  n.Rect.Dx(),
		Height: n.Rect.Dy(),
		Format: gputypes.TextureFormatRGBA8Unorm,
	}
	return info, n, nil
}

// BandCache memoizes visible-band detection per texture identity.
// Detection is idempotent, so the cache is read-mostly with
// single-writer-on-miss semantics; concurrent misses for the same key do
// redundant but harmless scans.
type BandCache struct {
	mu    sync.RWMutex
	bands map[string]bandEntry
}

type bandEntry struct {
	band VisibleBand
	ok   bool
}

// NewBandCache creates an empty band cache.
func NewBandCache() *BandCache {
	return &BandCache{bands: make(map[string]bandEntry)}
}

// Band returns the visible band for the texture identified by key,
// scanning img on the first request. ok is false when the texture has no
// visible rows (or img is nil); callers then use the full texture height.
func (c *BandCache) Band(key string, img image.Image) (VisibleBand, bool) {
	c.mu.RLock()
	e, hit := c.bands[key]
	c.mu.RUnlock()
	if hit {
		return e.band, e.ok
	}

	band, ok := texscan.ScanVisibleRows(img, AlphaThreshold)
	if !ok {
		Logger().Warn("visible-band scan failed, using full texture height", "texture", key)
	}

	c.mu.Lock()
	c.bands[key] = bandEntry{band: band, ok: ok}
	c.mu.Unlock()
	return band, ok
}

// DefaultBandCache is the package-level band cache used by VisibleBandOf.
var DefaultBandCache = NewBandCache()

// VisibleBandOf is shorthand for DefaultBandCache.Band.
func VisibleBandOf(key string, img image.Image) (VisibleBand, bool) {
	return DefaultBandCache.Band(key, img)
}
