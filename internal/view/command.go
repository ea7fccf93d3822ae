// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of passdesk

package view

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/passdesk/passdesk/internal/config"
	"github.com/passdesk/passdesk/internal/dao"
	"github.com/passdesk/passdesk/internal/model1"
)

// Built-in commands.
const (
	cmdHelp      = "help"
	cmdQuit      = "quit"
	cmdResources = "resources"
)

var builtins = map[string]string{
	"?":   cmdHelp,
	"q":   cmdQuit,
	"q!":  cmdQuit,
	"res": cmdResources,
}

// Command interprets the command bar input.
type Command struct {
	app     *App
	aliases *config.Aliases
}

// NewCommand returns a new command interpreter.
func NewCommand(app *App, aliases *config.Aliases) *Command {
	if aliases == nil {
		aliases = config.NewAliases()
	}
	return &Command{app: app, aliases: aliases}
}

// Init checks every alias points at a known view.
func (c *Command) Init() error {
	for alias, target := range c.aliases.All() {
		if isBuiltin(c.resolve(target)) {
			continue
		}
		var rid dao.ResourceID
		if err := rid.Parse(target); err != nil {
			return fmt.Errorf("alias %q: %w", alias, err)
		}
	}
	return nil
}

// Resources returns the browsable resource names.
func (*Command) Resources() []string {
	rids := dao.ListAccessors()
	out := make([]string, 0, len(rids))
	for _, rid := range rids {
		out = append(out, rid.String())
	}
	return out
}

// Commands returns every command the bar can complete.
func (c *Command) Commands() []string {
	cc := c.Resources()
	cc = append(cc, cmdHelp, cmdQuit, cmdResources)
	for k := range c.aliases.All() {
		cc = append(cc, k)
	}
	sort.Strings(cc)

	return cc
}

// Run executes a command line such as "offers status=ACTIVE city=Ghent".
// A blank line opens the default view.
func (c *Command) Run(line string) error {
	name, criteria, err := ParseCommand(line)
	if err != nil {
		return err
	}
	if name == "" {
		if name, criteria, err = ParseCommand(c.defaultView()); err != nil {
			return err
		}
		if name == "" {
			name = config.DefaultView
		}
	}
	name = c.resolve(name)

	switch name {
	case cmdQuit:
		c.app.Stop()
		return nil
	case cmdHelp:
		c.app.showHelp()
		return nil
	case cmdResources:
		return c.resourcesCmd()
	}

	var rid dao.ResourceID
	if err := rid.Parse(name); err != nil {
		return err
	}
	return c.browse(rid, criteria)
}

// ParseCommand splits a command line into its name and filter criteria.
// Arguments take the form key=value, bare keys get the filter suffix.
func ParseCommand(line string) (string, model1.FilterCriteria, error) {
	fields := strings.Fields(strings.TrimPrefix(strings.TrimSpace(line), ":"))
	if len(fields) == 0 {
		return "", nil, nil
	}

	criteria := make(model1.FilterCriteria, len(fields)-1)
	for _, arg := range fields[1:] {
		k, v, ok := strings.Cut(arg, "=")
		if !ok || k == "" {
			return "", nil, fmt.Errorf("invalid filter %q, expected key=value", arg)
		}
		if !strings.HasSuffix(k, "Filter") {
			k = model1.FilterKey(k)
		}
		criteria.Set(k, v)
	}

	return strings.ToLower(fields[0]), criteria, nil
}

func (c *Command) resolve(name string) string {
	if b, ok := builtins[name]; ok {
		return b
	}
	if target := c.aliases.Get(name); target != "" {
		return target
	}
	return name
}

func (c *Command) defaultView() string {
	if cfg := c.app.Config(); cfg != nil && cfg.Passdesk != nil && cfg.Passdesk.DefaultView != "" {
		return cfg.Passdesk.DefaultView
	}
	return config.DefaultView
}

func (c *Command) browse(rid dao.ResourceID, criteria model1.FilterCriteria) error {
	b := NewBrowser(c.app, rid)
	b.SetCriteria(criteria)
	if err := b.Init(context.Background()); err != nil {
		return fmt.Errorf("failed to open %s: %w", rid, err)
	}

	c.app.Content.Flush()
	c.app.Push(b)
	c.app.Flash().Infof("Viewing %s...", rid)

	return nil
}

func (c *Command) resourcesCmd() error {
	r := NewResources(c.app, func(rid dao.ResourceID) {
		if err := c.browse(rid, nil); err != nil {
			c.app.Flash().Err(err)
		}
	})
	if err := r.Init(context.Background()); err != nil {
		return err
	}
	c.app.Push(r)

	return nil
}

func isBuiltin(name string) bool {
	return name == cmdHelp || name == cmdQuit || name == cmdResources
}
