package plugins

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDiscoverManifestsWalksDirectories(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "voice", "deep")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}
	writeManifest(t, nested, `{"id": "voice-call", "configSchema": {"type": "object"}}`)

	other := t.TempDir()
	writeManifest(t, other, `{"id": "mem-store", "configSchema": {"type": "object"}}`)

	manifests, err := DiscoverManifests([]string{root, other}, false)
	if err != nil {
		t.Fatalf("DiscoverManifests() error = %v", err)
	}
	if len(manifests) != 2 {
		t.Fatalf("expected 2 manifests, got %d", len(manifests))
	}
	if _, ok := manifests["voice-call"]; !ok {
		t.Fatalf("expected voice-call from nested dir")
	}
	if _, ok := manifests["mem-store"]; !ok {
		t.Fatalf("expected mem-store")
	}
}

func TestDiscoverManifestsSkipsMissingPaths(t *testing.T) {
	manifests, err := DiscoverManifests([]string{filepath.Join(t.TempDir(), "missing")}, false)
	if err != nil {
		t.Fatalf("DiscoverManifests() error = %v", err)
	}
	if len(manifests) != 0 {
		t.Fatalf("expected no manifests, got %d", len(manifests))
	}
}

func TestDiscoverManifestsRejectsDuplicateIDs(t *testing.T) {
	a := t.TempDir()
	b := t.TempDir()
	writeManifest(t, a, `{"id": "twin", "configSchema": {"type": "object"}}`)
	writeManifest(t, b, `{"id": "twin", "configSchema": {"type": "object"}}`)

	_, err := DiscoverManifests([]string{a, b}, false)
	if err == nil || !strings.Contains(err.Error(), "duplicate manifest id") {
		t.Fatalf("expected duplicate id error, got %v", err)
	}
}

func TestDiscoverManifestsRejectsInvalidManifest(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `{"id": "", "configSchema": {"type": "object"}}`)

	_, err := DiscoverManifests([]string{dir}, false)
	if err == nil || !strings.Contains(err.Error(), "manifest id is required") {
		t.Fatalf("expected manifest validation error, got %v", err)
	}
}

func TestDiscoverManifestsBypassesCacheWhenDisabled(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `{"id": "first", "configSchema": {"type": "object"}}`)

	manifests, err := DiscoverManifests([]string{dir}, true)
	if err != nil {
		t.Fatalf("DiscoverManifests() error = %v", err)
	}
	if _, ok := manifests["first"]; !ok {
		t.Fatalf("expected first manifest")
	}

	// Replace the manifest on disk. A cached scan would still see "first";
	// an uncached scan must see the replacement.
	writeManifest(t, dir, `{"id": "second", "configSchema": {"type": "object"}}`)

	manifests, err = DiscoverManifests([]string{dir}, false)
	if err != nil {
		t.Fatalf("DiscoverManifests() error = %v", err)
	}
	if _, ok := manifests["second"]; !ok {
		t.Fatalf("expected uncached scan to see replacement, got %v", manifestIDs(manifests))
	}
}

func TestLoadManifestForPathDirectory(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `{"id": "voice-call", "configSchema": {"type": "object"}}`)

	info, err := LoadManifestForPath(dir)
	if err != nil {
		t.Fatalf("LoadManifestForPath() error = %v", err)
	}
	if info.Manifest.ID != "voice-call" {
		t.Fatalf("unexpected manifest %+v", info.Manifest)
	}
}

func TestLoadManifestForPathMissing(t *testing.T) {
	_, err := LoadManifestForPath(filepath.Join(t.TempDir(), "missing"))
	if err == nil || !strings.Contains(err.Error(), "manifest not found") {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func manifestIDs(manifests map[string]ManifestInfo) []string {
	ids := make([]string, 0, len(manifests))
	for id := range manifests {
		ids = append(ids, id)
	}
	return ids
}
