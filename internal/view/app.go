// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of passdesk

package view

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"
	"go.uber.org/zap"

	"github.com/passdesk/passdesk/internal/config"
	"github.com/passdesk/passdesk/internal/dao"
	"github.com/passdesk/passdesk/internal/ui"
)

const (
	// FlashDelay sets the flash auto-clear delay.
	FlashDelay = 5 * time.Second

	helpPage = "help"
)

// FlashLevel represents flash message severity.
type FlashLevel int

const (
	// FlashInfo represents an info message.
	FlashInfo FlashLevel = iota
	// FlashWarn represents a warning message.
	FlashWarn
	// FlashErr represents an error message.
	FlashErr
)

// Flash shows a transient status line.
type Flash struct {
	*tview.TextView

	dispatch func(func())
	last     string
	cancel   context.CancelFunc
	mx       sync.RWMutex
}

// NewFlash returns a flash line. UI updates go through dispatch.
func NewFlash(dispatch func(func())) *Flash {
	if dispatch == nil {
		dispatch = func(f func()) { f() }
	}
	f := &Flash{
		TextView: tview.NewTextView(),
		dispatch: dispatch,
	}
	f.SetDynamicColors(true)
	f.SetTextAlign(tview.AlignLeft)
	f.SetBorderPadding(0, 0, 1, 1)

	return f
}

// Info displays an informational message.
func (f *Flash) Info(msg string) {
	f.setMessage(FlashInfo, msg)
}

// Infof displays a formatted informational message.
func (f *Flash) Infof(format string, args ...any) {
	f.Info(fmt.Sprintf(format, args...))
}

// Warn displays a warning message.
func (f *Flash) Warn(msg string) {
	f.setMessage(FlashWarn, msg)
}

// Warnf displays a formatted warning message.
func (f *Flash) Warnf(format string, args ...any) {
	f.Warn(fmt.Sprintf(format, args...))
}

// Err displays an error message.
func (f *Flash) Err(err error) {
	if err != nil {
		f.setMessage(FlashErr, err.Error())
	}
}

// Errf displays a formatted error message.
func (f *Flash) Errf(format string, args ...any) {
	f.setMessage(FlashErr, fmt.Sprintf(format, args...))
}

// Last returns the last message shown, prefix included.
func (f *Flash) Last() string {
	f.mx.RLock()
	defer f.mx.RUnlock()
	return f.last
}

// Clear clears the flash message.
func (f *Flash) Clear() {
	f.mx.Lock()
	if f.cancel != nil {
		f.cancel()
		f.cancel = nil
	}
	f.last = ""
	f.mx.Unlock()

	f.dispatch(func() { f.TextView.Clear() })
}

func (f *Flash) setMessage(level FlashLevel, msg string) {
	if msg == "" {
		f.Clear()
		return
	}

	text := flashPrefix(level) + " " + msg
	ctx, cancel := context.WithCancel(context.Background())
	f.mx.Lock()
	if f.cancel != nil {
		f.cancel()
	}
	f.cancel, f.last = cancel, text
	f.mx.Unlock()

	f.dispatch(func() {
		f.TextView.Clear()
		f.SetTextColor(flashColor(level))
		f.SetText(tview.Escape(text))
	})

	go f.autoClear(ctx)
}

func (f *Flash) autoClear(ctx context.Context) {
	select {
	case <-ctx.Done():
	case <-time.After(FlashDelay):
		f.Clear()
	}
}

func flashColor(level FlashLevel) tcell.Color {
	switch level {
	case FlashWarn:
		return tcell.ColorYellow
	case FlashErr:
		return tcell.ColorRed
	default:
		return tcell.ColorGreen
	}
}

func flashPrefix(level FlashLevel) string {
	switch level {
	case FlashWarn:
		return "[WARN]"
	case FlashErr:
		return "[ERROR]"
	default:
		return "[INFO]"
	}
}

// App represents the main application container.
type App struct {
	*tview.Application

	version string
	Main    *tview.Pages
	Content *ui.Pages
	command *Command
	factory dao.Factory
	cfg     *config.Config
	log     *zap.Logger
	cmdBar  *ui.CmdBar
	menu    *ui.Menu
	crumbs  *ui.Crumbs
	flash   *Flash
	help    *Help
	running bool
	mx      sync.RWMutex
}

// NewApp returns an application browsing the factory data.
func NewApp(cfg *config.Config, aliases *config.Aliases, f dao.Factory, log *zap.Logger, version string) *App {
	if log == nil {
		log = zap.NewNop()
	}
	a := App{
		Application: tview.NewApplication(),
		version:     version,
		Main:        tview.NewPages(),
		Content:     ui.NewPages(),
		factory:     f,
		cfg:         cfg,
		log:         log,
		menu:        ui.NewMenu(),
		crumbs:      ui.NewCrumbs(),
		cmdBar:      ui.NewCmdBar(),
	}
	a.flash = NewFlash(a.Dispatch)
	a.command = NewCommand(&a, aliases)
	a.help = NewHelp(a.command.Resources(), aliases)

	return &a
}

// Init builds the layout and wires the input handlers.
func (a *App) Init() error {
	if err := a.command.Init(); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}
	a.cmdBar.SetCommands(a.command.Commands())

	a.Content.AddListener(a.menu)
	a.Content.AddListener(a.crumbs)

	a.cmdBar.SetActiveFn(func(active bool) {
		if active {
			a.SetFocus(a.cmdBar)
			return
		}
		a.focusCurrent()
	})
	a.cmdBar.SetCommandFn(func(cmd string) {
		if err := a.command.Run(cmd); err != nil {
			a.log.Warn("command failed", zap.String("command", cmd), zap.Error(err))
			a.flash.Err(err)
		}
	})
	a.cmdBar.SetSearchFn(func(text string) {
		if s, ok := a.Content.Current().(Searchable); ok {
			s.Search(text)
		}
	})
	a.cmdBar.SetCancelFn(func() {
		if s, ok := a.Content.Current().(Searchable); ok {
			s.Search("")
		}
	})

	a.Application.SetInputCapture(a.keyboard)
	a.Main.AddPage("main", a.layout(), true, true)
	a.SetRoot(a.Main, true)
	if a.cfg != nil && a.cfg.Passdesk != nil {
		a.EnableMouse(a.cfg.Passdesk.UI.EnableMouse)
	}

	return nil
}

// Run shows the startup view and runs the event loop.
func (a *App) Run(startup string) error {
	a.mx.Lock()
	a.running = true
	a.mx.Unlock()

	if err := a.command.Run(startup); err != nil {
		a.log.Error("startup view failed", zap.String("command", startup), zap.Error(err))
		ui.ErrorDialog(a.Content, fmt.Sprintf("Failed to open %q\n\n%v", startup, err)).Show()
	}

	return a.Application.Run()
}

// Stop stops the components and the event loop.
func (a *App) Stop() {
	a.mx.Lock()
	a.running = false
	a.mx.Unlock()

	a.Content.Flush()
	a.Application.Stop()
}

// IsRunning returns whether the event loop runs.
func (a *App) IsRunning() bool {
	a.mx.RLock()
	defer a.mx.RUnlock()

	return a.running
}

// Dispatch runs fn on the event loop and redraws.
func (a *App) Dispatch(fn func()) {
	go a.Application.QueueUpdateDraw(fn)
}

// Flash returns the flash line.
func (a *App) Flash() *Flash {
	return a.flash
}

// Factory returns the data factory.
func (a *App) Factory() dao.Factory {
	return a.factory
}

// Config returns the configuration.
func (a *App) Config() *config.Config {
	return a.cfg
}

// Logger returns the application logger.
func (a *App) Logger() *zap.Logger {
	return a.log
}

// Pages returns the component stack.
func (a *App) Pages() *ui.Pages {
	return a.Content
}

// Focus gives the keyboard focus to p.
func (a *App) Focus(p tview.Primitive) {
	a.SetFocus(p)
}

// Push shows a new component on top of the stack.
func (a *App) Push(c ui.Component) {
	a.Content.Push(c)
	c.Start()
	a.SetFocus(c)
}

// Pop closes the top component and restarts the one below.
func (a *App) Pop() {
	if a.Content.Len() <= 1 {
		return
	}
	a.Content.Pop()
	if top := a.Content.Current(); top != nil {
		top.Start()
	}
	a.focusCurrent()
}

func (a *App) focusCurrent() {
	if top := a.Content.Current(); top != nil {
		a.SetFocus(top)
		return
	}
	a.SetFocus(a.Content)
}

func (a *App) layout() *tview.Flex {
	header := tview.NewFlex().
		AddItem(a.crumbs, 0, 1, false).
		AddItem(a.menu, 0, 3, false)
	if a.cfg != nil && a.cfg.Passdesk != nil && a.cfg.Passdesk.UI.Logoless {
		header = tview.NewFlex().AddItem(a.menu, 0, 1, false)
	}

	return tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(header, ui.MenuRows, 0, false).
		AddItem(a.cmdBar, 3, 0, false).
		AddItem(a.Content, 0, 1, true).
		AddItem(a.flash, 1, 0, false)
}

func (a *App) keyboard(evt *tcell.EventKey) *tcell.EventKey {
	if evt.Key() == tcell.KeyCtrlC {
		a.Stop()
		return nil
	}
	if a.cmdBar.IsActive() || a.Content.HasOverlay() {
		return evt
	}
	if name, _ := a.Main.GetFrontPage(); name == helpPage {
		return evt
	}

	switch evt.Key() {
	case tcell.KeyEsc:
		if a.Content.Len() > 1 {
			a.Pop()
			return nil
		}
		return evt
	case tcell.KeyRune:
	default:
		return evt
	}

	switch evt.Rune() {
	case ':':
		a.cmdBar.Activate(ui.ModeCommand)
		return nil
	case '/':
		if _, ok := a.Content.Current().(Searchable); !ok {
			return evt
		}
		a.cmdBar.Activate(ui.ModeSearch)
		return nil
	case '?':
		a.showHelp()
		return nil
	case 'q':
		a.quit()
		return nil
	}

	return evt
}

func (a *App) quit() {
	ui.ConfirmDialog(a.Content, "Quit passdesk?", false, a.Stop).Show()
}

func (a *App) showHelp() {
	a.help.SetCloseFn(func() {
		a.Main.RemovePage(helpPage)
		a.focusCurrent()
	})
	a.Main.AddPage(helpPage, a.help, true, true)
	a.SetFocus(a.help)
}
