// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of passdesk

package view

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"
	"gopkg.in/yaml.v3"

	"github.com/passdesk/passdesk/internal/dao"
	"github.com/passdesk/passdesk/internal/render"
	"github.com/passdesk/passdesk/internal/ui"
)

// Describe formats.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Describe shows every field of a single record.
type Describe struct {
	*tview.TextView

	host     Host
	rid      dao.ResourceID
	renderer render.Renderer
	object   dao.Object
	format   string
	actions  *ui.KeyActions
	wrapOn   bool
}

// NewDescribe returns a detail view of a record.
func NewDescribe(h Host, rid dao.ResourceID, r render.Renderer, o dao.Object) *Describe {
	d := Describe{
		TextView: tview.NewTextView(),
		host:     h,
		rid:      rid,
		renderer: r,
		object:   o,
		format:   FormatYAML,
		actions:  ui.NewKeyActions(),
	}
	d.SetDynamicColors(true)
	d.SetWrap(false)
	d.SetScrollable(true)
	d.SetBorder(true)
	d.SetBorderPadding(0, 0, 1, 1)
	d.SetBorderColor(tcell.ColorAqua)

	return &d
}

// Init binds the keys.
func (d *Describe) Init(context.Context) error {
	if d.object == nil {
		return fmt.Errorf("no %s record selected", d.rid)
	}
	d.actions.Bulk(ui.KeyMap{
		ui.KeyY:      ui.NewKeyAction("YAML", d.formatCmd(FormatYAML), true),
		ui.KeyShiftJ: ui.NewKeyAction("JSON", d.formatCmd(FormatJSON), true),
		ui.KeyW:      ui.NewKeyAction("Wrap", d.toggleWrap, true),
		tcell.KeyEsc: ui.NewKeyAction("Back", d.backCmd, true),
	})
	d.SetInputCapture(d.keyboard)

	return nil
}

// Start renders the record.
func (d *Describe) Start() {
	d.render()
}

// Stop is a no-op.
func (*Describe) Stop() {}

// Name returns the view name.
func (d *Describe) Name() string {
	return d.rid.String() + ":" + d.object.GetID()
}

// Hints returns the menu hints.
func (d *Describe) Hints() ui.MenuHints {
	return d.actions.Hints()
}

// Content returns the record text in the current format, without colors.
func (d *Describe) Content() (string, error) {
	rec := d.record()
	if d.format == FormatJSON {
		raw, err := json.MarshalIndent(rec.ordered(), "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to marshal json: %w", err)
		}
		return string(raw), nil
	}

	raw, err := yaml.Marshal(rec.node())
	if err != nil {
		return "", fmt.Errorf("failed to marshal yaml: %w", err)
	}
	return string(raw), nil
}

func (d *Describe) render() {
	d.Clear()
	d.SetTitle(fmt.Sprintf(" %s/%s [%s] ", d.rid, d.object.GetID(), strings.ToUpper(d.format)))

	s, err := d.Content()
	if err != nil {
		d.SetText("[red::]" + tview.Escape(err.Error()) + "[-::]")
		return
	}
	if d.format == FormatYAML {
		s = highlightYAML(s)
	}
	d.SetText(s)
	d.ScrollToBeginning()
}

func (d *Describe) keyboard(evt *tcell.EventKey) *tcell.EventKey {
	if evt.Key() == tcell.KeyRune {
		row, _ := d.GetScrollOffset()
		switch evt.Rune() {
		case 'j':
			d.ScrollTo(row+1, 0)
			return nil
		case 'k':
			d.ScrollTo(max(row-1, 0), 0)
			return nil
		case 'g':
			d.ScrollToBeginning()
			return nil
		case 'G':
			d.ScrollToEnd()
			return nil
		}
	}
	if out, ok := d.actions.Handle(evt); ok {
		return out
	}

	return evt
}

func (d *Describe) formatCmd(format string) ui.ActionHandler {
	return func(*tcell.EventKey) *tcell.EventKey {
		d.format = format
		d.render()
		return nil
	}
}

func (d *Describe) toggleWrap(*tcell.EventKey) *tcell.EventKey {
	d.wrapOn = !d.wrapOn
	d.SetWrap(d.wrapOn)
	d.SetWordWrap(d.wrapOn)
	return nil
}

func (d *Describe) backCmd(*tcell.EventKey) *tcell.EventKey {
	d.host.Pop()
	return nil
}

type field struct {
	key, value string
}

type record []field

// record lists the id then every declared column, hidden ones included.
func (d *Describe) record() record {
	ff := d.renderer.Fields(d.object)
	rec := record{{key: "id", value: d.object.GetID()}}
	for _, c := range d.renderer.Columns() {
		rec = append(rec, field{key: c.Property, value: ff.Get(c.Property)})
	}
	return rec
}

func (r record) node() *yaml.Node {
	n := yaml.Node{Kind: yaml.MappingNode}
	for _, f := range r {
		n.Content = append(n.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: f.key},
			&yaml.Node{Kind: yaml.ScalarNode, Value: f.value, Tag: "!!str"},
		)
	}
	return &n
}

func (r record) ordered() json.RawMessage {
	var sb strings.Builder
	sb.WriteString("{")
	for i, f := range r {
		if i > 0 {
			sb.WriteString(",")
		}
		k, _ := json.Marshal(f.key)
		v, _ := json.Marshal(f.value)
		sb.Write(k)
		sb.WriteString(":")
		sb.Write(v)
	}
	sb.WriteString("}")

	return json.RawMessage(sb.String())
}

func highlightYAML(content string) string {
	var sb strings.Builder
	for _, line := range strings.Split(strings.TrimRight(content, "\n"), "\n") {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			sb.WriteString(tview.Escape(line) + "\n")
			continue
		}
		fmt.Fprintf(&sb, "[aqua::]%s:[-::]%s\n", tview.Escape(key), colorizeValue(value))
	}
	return sb.String()
}

func colorizeValue(value string) string {
	trimmed := strings.Trim(strings.TrimSpace(value), "\"'")
	switch strings.ToLower(trimmed) {
	case "active":
		return "[green::]" + tview.Escape(value) + "[-::]"
	case "expired":
		return "[red::]" + tview.Escape(value) + "[-::]"
	case "draft":
		return "[yellow::]" + tview.Escape(value) + "[-::]"
	case "n/a", "<none>":
		return "[gray::]" + tview.Escape(value) + "[-::]"
	}
	return tview.Escape(value)
}
