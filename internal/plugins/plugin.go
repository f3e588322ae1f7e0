package plugins

import (
	"sort"
	"sync"

	"github.com/perchbot/perch/internal/config"
)

// PluginStatus indicates the current state of a plugin record.
type PluginStatus string

const (
	PluginStatusLoaded   PluginStatus = "loaded"
	PluginStatusDisabled PluginStatus = "disabled"
	PluginStatusError    PluginStatus = "error"
)

// PluginRecord contains metadata about a discovered plugin.
type PluginRecord struct {
	ID          string
	Name        string
	Description string
	Version     string
	Source      string
	Status      PluginStatus
	Error       string
	Enabled     bool
	Slots       []string
}

// DiagnosticLevel indicates severity of a diagnostic message.
type DiagnosticLevel string

const (
	DiagnosticInfo  DiagnosticLevel = "info"
	DiagnosticWarn  DiagnosticLevel = "warn"
	DiagnosticError DiagnosticLevel = "error"
)

// Diagnostic represents a message produced while loading plugins.
type Diagnostic struct {
	Level    DiagnosticLevel
	PluginID string
	Source   string
	Message  string
}

// Logger is the minimal logging interface the loader depends on.
type Logger interface {
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// Registry holds the plugins discovered for a config/workspace pair.
// The id set it exposes is authoritative for which plugins are known,
// including disabled ones.
type Registry struct {
	mu          sync.RWMutex
	records     []*PluginRecord
	diagnostics []Diagnostic
	logger      Logger
}

func newRegistry(logger Logger) *Registry {
	if logger == nil {
		logger = noopLogger{}
	}
	return &Registry{logger: logger}
}

func (r *Registry) addRecord(record *PluginRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, record)
}

func (r *Registry) addDiagnostic(diag Diagnostic) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.diagnostics = append(r.diagnostics, diag)
}

// Records returns all plugin records.
func (r *Registry) Records() []*PluginRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*PluginRecord, len(r.records))
	copy(out, r.records)
	return out
}

// Record returns a plugin record by id.
func (r *Registry) Record(id string) (*PluginRecord, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, rec := range r.records {
		if rec.ID == id {
			return rec, true
		}
	}
	return nil, false
}

// Diagnostics returns all diagnostic messages.
func (r *Registry) Diagnostics() []Diagnostic {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Diagnostic, len(r.diagnostics))
	copy(out, r.diagnostics)
	return out
}

// IDSet returns the set of known plugin ids.
func (r *Registry) IDSet() map[string]struct{} {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make(map[string]struct{}, len(r.records))
	for _, rec := range r.records {
		ids[rec.ID] = struct{}{}
	}
	return ids
}

// IDs returns the known plugin ids in sorted order.
func (r *Registry) IDs() []string {
	set := r.IDSet()
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

type enableState struct {
	enabled bool
	reason  string
}

// resolveEnableState applies deny, allow, and per-entry toggles, in that
// order of precedence.
func resolveEnableState(id string, cfg config.PluginsConfig) enableState {
	for _, denied := range cfg.Deny {
		if denied == id {
			return enableState{false, "blocked by denylist"}
		}
	}

	if len(cfg.Allow) > 0 {
		found := false
		for _, allowed := range cfg.Allow {
			if allowed == id {
				found = true
				break
			}
		}
		if !found {
			return enableState{false, "not in allowlist"}
		}
	}

	if entry, ok := cfg.Entries[id]; ok {
		if entry.Enabled != nil && !*entry.Enabled {
			return enableState{false, "disabled in config"}
		}
	}

	return enableState{true, ""}
}
