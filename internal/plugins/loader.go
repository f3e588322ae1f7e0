package plugins

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/perchbot/perch/internal/config"
	"github.com/perchbot/perch/internal/userpath"
)

// Mode selects how much work the loader does.
type Mode string

const (
	// ModeValidate discovers manifests and checks entry configs against
	// their schemas. No plugin code runs.
	ModeValidate Mode = "validate"

	// ModeRuntime additionally prepares plugins for execution.
	ModeRuntime Mode = "runtime"
)

// MemorySlot is the slot name for the memory plugin.
const MemorySlot = "memory"

// Options configures a plugin load.
type Options struct {
	Config       *config.Config
	WorkspaceDir string
	Cache        bool
	Mode         Mode
	Logger       Logger
}

// Load builds the plugin registry for a config/workspace pair. Problems with
// individual plugins are reported as registry diagnostics, not errors; the
// returned error is reserved for misuse (nil config).
func Load(ctx context.Context, opts Options) (*Registry, error) {
	cfg := opts.Config
	if cfg == nil {
		return nil, fmt.Errorf("plugins: config is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	reg := newRegistry(opts.Logger)
	if !cfg.Plugins.LoadingEnabled() {
		reg.addDiagnostic(Diagnostic{Level: DiagnosticInfo, Message: "plugins disabled"})
		return reg, nil
	}

	manifests, err := discoverAll(cfg, opts.WorkspaceDir, opts.Cache)
	if err != nil {
		reg.addDiagnostic(Diagnostic{
			Level:   DiagnosticError,
			Message: fmt.Sprintf("manifest discovery failed: %v", err),
		})
		return reg, nil
	}

	applyEntryOverrides(cfg, manifests, reg)
	buildRecords(cfg, manifests, reg, opts.Mode)
	validateEntryConfigs(cfg, manifests, reg)
	checkMemorySlot(cfg, manifests, reg)

	return reg, nil
}

// discoverAll scans the configured load paths plus the workspace plugins
// directory.
func discoverAll(cfg *config.Config, workspaceDir string, useCache bool) (map[string]ManifestInfo, error) {
	var paths []string
	for _, p := range cfg.Plugins.Load.Paths {
		if strings.TrimSpace(p) == "" {
			continue
		}
		paths = append(paths, userpath.Resolve(p))
	}
	if strings.TrimSpace(workspaceDir) != "" {
		paths = append(paths, filepath.Join(workspaceDir, "plugins"))
	}
	return DiscoverManifests(paths, useCache)
}

// applyEntryOverrides loads manifests for entries that pin an explicit path.
// An explicit path wins over a discovered manifest with the same id.
func applyEntryOverrides(cfg *config.Config, manifests map[string]ManifestInfo, reg *Registry) {
	for _, id := range sortedEntryIDs(cfg.Plugins.Entries) {
		entry := cfg.Plugins.Entries[id]
		if strings.TrimSpace(entry.Path) == "" {
			continue
		}
		info, err := LoadManifestForPath(userpath.Resolve(entry.Path))
		if err != nil {
			reg.addDiagnostic(Diagnostic{
				Level:    DiagnosticError,
				PluginID: id,
				Message:  fmt.Sprintf("manifest error: %v", err),
			})
			continue
		}
		if manifestID := strings.TrimSpace(info.Manifest.ID); manifestID != "" && manifestID != id {
			reg.addDiagnostic(Diagnostic{
				Level:    DiagnosticError,
				PluginID: id,
				Source:   info.Path,
				Message:  fmt.Sprintf("manifest id mismatch: %q", manifestID),
			})
			continue
		}
		manifests[id] = info
	}
}

func buildRecords(cfg *config.Config, manifests map[string]ManifestInfo, reg *Registry, mode Mode) {
	for _, id := range sortedManifestIDs(manifests) {
		info := manifests[id]
		record := &PluginRecord{
			ID:          id,
			Name:        info.Manifest.Name,
			Description: info.Manifest.Description,
			Version:     info.Manifest.Version,
			Source:      info.Path,
			Slots:       info.Manifest.Slots,
		}

		state := resolveEnableState(id, cfg.Plugins)
		if !state.enabled {
			record.Status = PluginStatusDisabled
			record.Error = state.reason
			reg.addRecord(record)
			continue
		}

		record.Enabled = true
		record.Status = PluginStatusLoaded
		reg.addRecord(record)
		if mode == ModeRuntime {
			reg.logger.Info("plugin loaded", "id", id, "source", info.Path)
		}
	}
}

// validateEntryConfigs checks each configured entry against its manifest
// configSchema. Entries without a known manifest are left for the reference
// cross-check.
func validateEntryConfigs(cfg *config.Config, manifests map[string]ManifestInfo, reg *Registry) {
	for _, id := range sortedEntryIDs(cfg.Plugins.Entries) {
		info, ok := manifests[id]
		if !ok {
			continue
		}
		entry := cfg.Plugins.Entries[id]
		values := entry.Config
		if values == nil {
			values = map[string]any{}
		}
		if err := info.Manifest.ValidateConfig(values); err != nil {
			if record, ok := reg.Record(id); ok {
				record.Status = PluginStatusError
				record.Error = err.Error()
			}
			reg.addDiagnostic(Diagnostic{
				Level:    DiagnosticError,
				PluginID: id,
				Source:   info.Path,
				Message:  err.Error(),
			})
		}
	}
}

// checkMemorySlot verifies the plugin assigned to the memory slot is usable.
// Unknown slot ids are left for the reference cross-check.
func checkMemorySlot(cfg *config.Config, manifests map[string]ManifestInfo, reg *Registry) {
	slotID := strings.TrimSpace(cfg.Plugins.Slots.Memory)
	if slotID == "" {
		return
	}
	info, ok := manifests[slotID]
	if !ok {
		return
	}
	record, _ := reg.Record(slotID)
	if record != nil && !record.Enabled {
		reg.addDiagnostic(Diagnostic{
			Level:    DiagnosticError,
			PluginID: slotID,
			Message:  fmt.Sprintf("assigned to %s slot but disabled (%s)", MemorySlot, record.Error),
		})
		return
	}
	if !info.Manifest.ProvidesSlot(MemorySlot) {
		reg.addDiagnostic(Diagnostic{
			Level:    DiagnosticWarn,
			PluginID: slotID,
			Message:  fmt.Sprintf("does not declare the %s slot", MemorySlot),
		})
	}
}

func sortedEntryIDs(entries map[string]config.PluginEntryConfig) []string {
	ids := make([]string, 0, len(entries))
	for id := range entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func sortedManifestIDs(manifests map[string]ManifestInfo) []string {
	ids := make([]string, 0, len(manifests))
	for id := range manifests {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
