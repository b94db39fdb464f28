// Package thumbs materializes thumbnail references into the on-disk
// thumbnail store and garbage-collects files no content item references
// anymore.
package thumbs

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/spf13/afero"
	"github.com/zeebo/blake3"
)

const (
	defaultExt   = "png"
	fetchTimeout = 30 * time.Second
	maxWidth     = 1200
)

var dataURIRe = regexp.MustCompile(`^data:image/([a-zA-Z0-9]+);base64,(.+)$`)

// Tracker resolves thumbnail references against the store directory and
// records which store files the current run referenced. The store is a
// derived cache keyed by content-item id; content files and remote URLs
// stay authoritative, so Cleanup may delete anything unreferenced.
//
// One Tracker serves a whole build run, across both content kinds.
type Tracker struct {
	fs       afero.Fs
	dir      string // store location on fs
	webBase  string // site-relative store path recorded in pages and index JSON
	logger   *slog.Logger
	client   *http.Client
	optimize bool
	used     map[string]struct{}
}

func NewTracker(fs afero.Fs, dir, webBase string, logger *slog.Logger, optimize bool) *Tracker {
	return &Tracker{
		fs:       fs,
		dir:      dir,
		webBase:  strings.TrimSuffix(webBase, "/"),
		logger:   logger,
		client:   &http.Client{Timeout: fetchTimeout},
		optimize: optimize,
		used:     make(map[string]struct{}),
	}
}

// Resolve turns a front-matter thumbnail reference into a site-relative
// store path, materializing the file when needed. It returns "" when the
// item ends up without a thumbnail; pages then fall back to the site-wide
// default image. Remote fetch failures degrade the same way and never abort
// the build.
func (t *Tracker) Resolve(ref, id string) string {
	switch {
	case ref == "":
		return ""
	case strings.HasPrefix(ref, "data:image"):
		return t.resolveInline(ref, id)
	case strings.HasPrefix(ref, "http"):
		return t.resolveRemote(ref, id)
	case strings.Contains(ref, t.webBase+"/"):
		// Already points into the store; keep the file alive.
		t.MarkUsed(path.Base(ref))
		return ref
	default:
		return ref
	}
}

func (t *Tracker) resolveInline(ref, id string) string {
	m := dataURIRe.FindStringSubmatch(ref)
	if m == nil {
		t.logger.Warn("unrecognized inline thumbnail payload", "id", id)
		return ""
	}
	data, err := base64.StdEncoding.DecodeString(m[2])
	if err != nil {
		t.logger.Warn("failed to decode inline thumbnail", "id", id, "error", err)
		return ""
	}
	ext := m[1]
	if ext == "jpeg" {
		ext = "jpg"
	}
	filename := id + "." + ext
	if err := t.write(filename, data); err != nil {
		t.logger.Warn("failed to store inline thumbnail", "id", id, "error", err)
		return ""
	}
	t.MarkUsed(filename)
	return t.webBase + "/" + filename
}

func (t *Tracker) resolveRemote(ref, id string) string {
	u, err := url.Parse(ref)
	if err != nil {
		t.logger.Warn("invalid thumbnail URL", "id", id, "url", ref, "error", err)
		return ""
	}
	ext := strings.TrimPrefix(path.Ext(u.Path), ".")
	if ext == "" {
		ext = defaultExt
	}

	fmt.Printf("   Downloading thumbnail for %s from %s\n", id, ref)
	resp, err := t.client.Get(ref)
	if err != nil {
		t.logger.Warn("thumbnail fetch failed", "id", id, "url", ref, "error", err)
		return ""
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		t.logger.Warn("thumbnail fetch failed", "id", id, "url", ref, "status", resp.Status)
		return ""
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.logger.Warn("thumbnail read failed", "id", id, "url", ref, "error", err)
		return ""
	}

	if t.optimize {
		if optimized, ok := reencode(data); ok {
			data = optimized
			ext = "webp"
		}
	}

	filename := id + "." + ext
	if err := t.write(filename, data); err != nil {
		t.logger.Warn("failed to store thumbnail", "id", id, "error", err)
		return ""
	}
	t.MarkUsed(filename)
	return t.webBase + "/" + filename
}

// reencode decodes a fetched raster image, bounds its width, and re-encodes
// it as webp. Undecodable payloads are kept as fetched.
func reencode(data []byte) ([]byte, bool) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, false
	}
	if img.Bounds().Dx() > maxWidth {
		img = imaging.Resize(img, maxWidth, 0, imaging.Lanczos)
	}
	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Lossless: false, Quality: 80}); err != nil {
		return nil, false
	}
	return buf.Bytes(), true
}

// write stores data at name inside the store, skipping the write when the
// existing file already has identical content.
func (t *Tracker) write(name string, data []byte) error {
	if err := t.fs.MkdirAll(t.dir, 0755); err != nil {
		return err
	}
	target := filepath.Join(t.dir, name)
	if existing, err := afero.ReadFile(t.fs, target); err == nil {
		if blake3.Sum256(existing) == blake3.Sum256(data) {
			return nil
		}
	}
	return afero.WriteFile(t.fs, target, data, 0644)
}

// MarkUsed records a store file name as referenced by the current run.
func (t *Tracker) MarkUsed(name string) {
	t.used[name] = struct{}{}
}

// Cleanup deletes every file in the store that no content item referenced
// during this run. Called once, after all items are processed.
func (t *Tracker) Cleanup() error {
	infos, err := afero.ReadDir(t.fs, t.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read thumbnail store: %w", err)
	}
	for _, info := range infos {
		if info.IsDir() {
			continue
		}
		if _, ok := t.used[info.Name()]; ok {
			continue
		}
		fmt.Printf("   Removing unused thumbnail: %s\n", info.Name())
		if err := t.fs.Remove(filepath.Join(t.dir, info.Name())); err != nil {
			return fmt.Errorf("remove thumbnail %s: %w", info.Name(), err)
		}
	}
	return nil
}
