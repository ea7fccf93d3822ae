package data

import "sync"

// View holds the persisted preferences of one resource view.
type View struct {
	Columns  []string `yaml:"columns,omitempty"`
	PageSize int      `yaml:"pageSize,omitempty"`
}

// Views maps resource names to their preferences.
type Views struct {
	Views map[string]*View `yaml:"views"`
	mx    sync.RWMutex
}

// NewViews returns an empty preference set.
func NewViews() *Views {
	return &Views{Views: make(map[string]*View)}
}

// Get returns a copy of the view preferences, or nil if none were saved.
func (v *Views) Get(name string) *View {
	v.mx.RLock()
	defer v.mx.RUnlock()

	vw, ok := v.Views[name]
	if !ok || vw == nil {
		return nil
	}
	cp := View{Columns: append([]string(nil), vw.Columns...), PageSize: vw.PageSize}
	return &cp
}

// SetColumns records the visible column properties of a view.
func (v *Views) SetColumns(name string, cols []string) {
	v.mx.Lock()
	defer v.mx.Unlock()

	v.ensure(name).Columns = append([]string(nil), cols...)
}

// SetPageSize records the page size of a view.
func (v *Views) SetPageSize(name string, size int) {
	v.mx.Lock()
	defer v.mx.Unlock()

	v.ensure(name).PageSize = size
}

func (v *Views) ensure(name string) *View {
	if v.Views == nil {
		v.Views = make(map[string]*View)
	}
	vw, ok := v.Views[name]
	if !ok || vw == nil {
		vw = &View{}
		v.Views[name] = vw
	}
	return vw
}

// Save writes the preferences to disk at the given path.
func (v *Views) Save(path string) error {
	v.mx.RLock()
	defer v.mx.RUnlock()

	return SaveYAML(path, v)
}

// Load reads preferences from path. A missing file leaves the set empty.
func (v *Views) Load(path string) error {
	v.mx.Lock()
	defer v.mx.Unlock()

	if err := LoadYAMLIfExists(path, v); err != nil {
		return err
	}
	if v.Views == nil {
		v.Views = make(map[string]*View)
	}
	return nil
}
