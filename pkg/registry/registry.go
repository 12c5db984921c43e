// Package registry loads app descriptors into an ordered, immutable
// snapshot. Reload rebuilds the whole snapshot off to the side and
// publishes it atomically, so in-flight readers keep the snapshot they
// started with and never observe a partial registry.
package registry

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync/atomic"

	"github.com/lvim-tech/qlaunch/pkg/app"
	"github.com/lvim-tech/qlaunch/pkg/log"
)

// Snapshot е immutable подреден списък от descriptors
type Snapshot struct {
	Apps []*app.Descriptor
}

// Find returns the descriptor with the given display name, or nil.
func (s *Snapshot) Find(name string) *app.Descriptor {
	for _, d := range s.Apps {
		if d.Name == name {
			return d
		}
	}
	return nil
}

// masterFile е формата на master.json
type masterFile struct {
	Order []string `json:"order"`
}

// Registry holds the published snapshot and the descriptor source.
type Registry struct {
	src  Source
	snap atomic.Pointer[Snapshot]
}

// New създава registry върху source; извикай Load преди Snapshot
func New(src Source) *Registry {
	r := &Registry{src: src}
	r.snap.Store(&Snapshot{})
	return r
}

// Snapshot returns the currently published snapshot. Never nil.
func (r *Registry) Snapshot() *Snapshot {
	return r.snap.Load()
}

// Load rebuilds the registry from the source and atomically publishes the
// result. A failing descriptor file is skipped with a warning and never
// aborts the batch; only a failing source listing is fatal.
func (r *Registry) Load() error {
	paths, err := r.src.List()
	if err != nil {
		return fmt.Errorf("failed to list descriptors: %w", err)
	}

	var apps []*app.Descriptor
	byName := make(map[string]int)

	for _, path := range paths {
		data, err := r.src.Read(path)
		if err != nil {
			log.Warn("failed to read descriptor, skipping", "path", path, "error", err)
			continue
		}
		d, err := app.Parse(path, data)
		if err != nil {
			log.Warn("invalid descriptor, skipping", "path", path, "error", err)
			continue
		}

		// Дублирано име: последният зареден печели
		if i, ok := byName[d.Name]; ok {
			log.Warn("duplicate app name, last loaded wins", "name", d.Name, "replaced", apps[i].Stem, "kept", d.Stem)
			apps = append(apps[:i], apps[i+1:]...)
			delete(byName, d.Name)
			for name, j := range byName {
				if j > i {
					byName[name] = j - 1
				}
			}
		}
		byName[d.Name] = len(apps)
		apps = append(apps, d)
	}

	ordered := r.order(apps)

	r.snap.Store(&Snapshot{Apps: ordered})
	log.Info("registry loaded", "apps", len(ordered))
	return nil
}

// order подрежда по master.json, останалите лексикографски по име
func (r *Registry) order(apps []*app.Descriptor) []*app.Descriptor {
	remaining := make(map[string]*app.Descriptor, len(apps))
	byStem := make(map[string]*app.Descriptor, len(apps))
	for _, d := range apps {
		remaining[d.Name] = d
		byStem[d.Stem] = d
	}

	var ordered []*app.Descriptor

	for _, id := range r.masterOrder() {
		d := byStem[id]
		if d == nil {
			d = remaining[id]
		}
		if d == nil || remaining[d.Name] == nil {
			// Dangling reference: silently absent from the output
			continue
		}
		ordered = append(ordered, d)
		delete(remaining, d.Name)
	}

	rest := make([]*app.Descriptor, 0, len(remaining))
	for _, d := range remaining {
		rest = append(rest, d)
	}
	sort.Slice(rest, func(i, j int) bool {
		return strings.ToLower(rest[i].Name) < strings.ToLower(rest[j].Name)
	})

	return append(ordered, rest...)
}

// masterOrder чете подредбата от master.json; липсата е валидна
func (r *Registry) masterOrder() []string {
	data, err := r.src.Master()
	if err != nil {
		log.Warn("failed to read master order", "error", err)
		return nil
	}
	if data == nil {
		return nil
	}

	var master masterFile
	if err := json.Unmarshal(data, &master); err != nil {
		log.Warn("invalid master order file, ignoring", "error", err)
		return nil
	}
	return master.Order
}
