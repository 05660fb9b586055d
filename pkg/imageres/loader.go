// Package imageres fetches and decodes the image references a report may
// carry (school logo, stamp, student avatar).
//
// A missing or broken image must never abort a report build: every failure
// path resolves to nil and the affected visual slot renders a placeholder.
package imageres

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"golang.org/x/image/webp"
)

const (
	// DefaultTimeout bounds one remote fetch; a stalled host degrades to
	// the placeholder path instead of hanging the build.
	DefaultTimeout = 5 * time.Second

	// maxDim caps embedded bitmaps; larger images are fit-resized.
	maxDim = 512

	// maxPayload caps a fetched body at 10 MiB.
	maxPayload = 10 << 20
)

// AssetStore resolves ephemeral local object references ("asset:<id>").
// The bundled HTTP service's in-memory asset manager implements it.
type AssetStore interface {
	Asset(id string) (data []byte, mime string, ok bool)
}

// Loaded is a decoded, size-bounded image ready for embedding.
type Loaded struct {
	PNG    []byte
	Width  int // pixels
	Height int
}

// Loader resolves image references. Zero value is not usable; construct
// with NewLoader.
type Loader struct {
	client *http.Client
	store  AssetStore
}

// NewLoader builds a loader. store may be nil when asset references are not
// in play (CLI use); timeout <= 0 selects DefaultTimeout.
func NewLoader(store AssetStore, timeout time.Duration) *Loader {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Loader{
		client: &http.Client{Timeout: timeout},
		store:  store,
	}
}

// Load resolves one image reference. Supported forms: a data: URI with an
// inline base64 payload, an "asset:<id>" store reference, and an http(s)
// URL fetched without credentials and with caching bypassed. Returns nil on
// any failure.
func (l *Loader) Load(ctx context.Context, ref string) *Loaded {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil
	}

	var payload []byte
	var hint string

	switch {
	case strings.HasPrefix(ref, "data:"):
		payload, hint = decodeDataURI(ref)
	case strings.HasPrefix(ref, "asset:"):
		if l.store == nil {
			return nil
		}
		data, mime, ok := l.store.Asset(strings.TrimPrefix(ref, "asset:"))
		if !ok {
			return nil
		}
		payload, hint = data, mime
	case strings.HasPrefix(ref, "http://"), strings.HasPrefix(ref, "https://"):
		payload, hint = l.fetch(ctx, ref)
	default:
		return nil
	}

	if len(payload) == 0 {
		return nil
	}

	img := decodeImage(payload, hint)
	if img == nil {
		return nil
	}

	return encodeBounded(img)
}

// fetch downloads a remote reference within the client timeout. The cache
// is bypassed so a replaced logo never renders stale across sessions.
func (l *Loader) fetch(ctx context.Context, url string) (payload []byte, hint string) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, ""
	}
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ""
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxPayload))
	if err != nil {
		return nil, ""
	}
	return data, resp.Header.Get("Content-Type")
}

// decodeDataURI extracts the payload of a base64 data URI.
func decodeDataURI(uri string) (payload []byte, hint string) {
	rest := strings.TrimPrefix(uri, "data:")
	meta, encoded, ok := strings.Cut(rest, ",")
	if !ok {
		return nil, ""
	}
	if !strings.HasSuffix(meta, ";base64") {
		return nil, ""
	}
	hint = strings.TrimSuffix(meta, ";base64")

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, ""
	}
	return data, hint
}

// decodeImage tries the codec implied by the hint first, then the other
// supported raster codec, then webp as a last resort.
func decodeImage(payload []byte, hint string) image.Image {
	hint = strings.ToLower(hint)

	order := []func(io.Reader) (image.Image, error){png.Decode, jpeg.Decode}
	if strings.Contains(hint, "jpeg") || strings.Contains(hint, "jpg") {
		order[0], order[1] = jpeg.Decode, png.Decode
	}
	order = append(order, webp.Decode)

	for _, decode := range order {
		if img, err := decode(bytes.NewReader(payload)); err == nil {
			return img
		}
	}
	return nil
}

// encodeBounded fit-resizes oversized images and re-encodes to PNG.
func encodeBounded(img image.Image) *Loaded {
	b := img.Bounds()
	if b.Dx() > maxDim || b.Dy() > maxDim {
		img = imaging.Fit(img, maxDim, maxDim, imaging.Lanczos)
		b = img.Bounds()
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil
	}
	return &Loaded{PNG: buf.Bytes(), Width: b.Dx(), Height: b.Dy()}
}
