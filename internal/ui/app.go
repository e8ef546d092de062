package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/hashicorp/go-hclog"

	"FigureEditor/internal/config"
	"FigureEditor/internal/editor"
	"FigureEditor/internal/figure"
	"FigureEditor/internal/state"
)

// AppID identifies the application preferences.
const AppID = "io.github.figureeditor"

// MainWindow is the editor window: menus, toolbar, style panel, canvas,
// figure info and status bar.
type MainWindow struct {
	fyne.Window
	app    fyne.App
	editor *editor.Editor
	board  *BoardWidget
	side   *sidePanel
	info   *infoPanel
	menu   *fyne.MainMenu
	items  map[string]*fyne.MenuItem
	log    hclog.Logger
}

// RunApp opens the editor window and blocks until the application quits.
func RunApp(cfg config.Config, log hclog.Logger) error {
	mw, err := NewMainWindow(app.NewWithID(AppID), cfg, log)
	if err != nil {
		return err
	}
	mw.ShowAndRun()
	return nil
}

// NewMainWindow builds the editor window of a.
func NewMainWindow(a fyne.App, cfg config.Config, log hclog.Logger) (*MainWindow, error) {
	cs, err := cfg.CurrentStyle()
	if err != nil {
		return nil, err
	}
	mw := &MainWindow{
		app:   a,
		info:  newInfoPanel(),
		items: make(map[string]*fyne.MenuItem),
		log:   log,
	}
	mw.Window = a.NewWindow(editor.AboutText)

	d := state.NewDrawing(state.WithLogger(log.Named("drawing")), state.WithCurrentStyle(cs))
	mw.editor = editor.New(d,
		editor.WithLogger(log.Named("editor")),
		editor.WithHistoryCapacity(cfg.Canvas.HistoryDepth),
		editor.WithSinks(editor.Sinks{
			Status:      mw.info.setStatus,
			Info:        mw.info.showInfo,
			Coordinates: mw.info.setCoordinates,
			About:       mw.showAbout,
			Quit:        a.Quit,
		}))

	mw.board = NewBoardWidget(mw.editor)
	mw.side = newSidePanel(d, a.Preferences(), mw.pickColor, mw.info.setStatus)
	toolbar := NewToolbar(mw.editor, mw.run, log)

	mw.setupMenus()
	mw.setupShortcuts()
	mw.editor.History().OnChange(mw.refreshMenus)
	d.On(state.ChangeSelection, func(state.Change) { mw.refreshMenus() })

	mw.SetContent(container.NewBorder(toolbar, mw.info.statusBar(), mw.side.content(), mw.info.content(), mw.board))
	mw.Resize(fyne.NewSize(float32(cfg.Canvas.Width), float32(cfg.Canvas.Height)))
	mw.info.setStatus(mw.editor.Controller().Hint())
	return mw, nil
}

func (mw *MainWindow) Editor() *editor.Editor { return mw.editor }

// run performs the named action and reports a failure in the status bar.
func (mw *MainWindow) run(name string) {
	if err := mw.editor.Run(name); err != nil {
		mw.log.Error("action failed", "name", name, "error", err)
		mw.info.setStatus(err.Error())
	}
}

func (mw *MainWindow) showAbout(text string) {
	dialog.ShowInformation("About", text, mw.Window)
}

func (mw *MainWindow) pickColor(title string, done func(color.Color)) {
	picker := dialog.NewColorPicker(title, "", done, mw.Window)
	picker.Advanced = true
	picker.Show()
}

// setupMenus creates the application menus.
func (mw *MainWindow) setupMenus() {
	drawingMenu := fyne.NewMenu("Drawing",
		mw.menuItem("MagicDraw"),
		mw.menuItem("Clear"),
		fyne.NewMenuItemSeparator(),
		mw.menuItem("Quit"),
	)
	mw.items["Quit"].IsQuit = true

	editMenu := fyne.NewMenu("Edition",
		mw.menuItem("Undo"),
		mw.menuItem("Redo"),
		fyne.NewMenuItemSeparator(),
		mw.menuItem("ToggleEdit"),
		mw.menuItem("SelectAll"),
		fyne.NewMenuItemSeparator(),
		mw.menuItem("Delete"),
		mw.menuItem("MoveUp"),
		mw.menuItem("MoveDown"),
		mw.menuItem("Style"),
	)

	figures := fyne.NewMenuItem("Figures", nil)
	var kinds []*fyne.MenuItem
	for _, k := range figure.Kinds {
		kinds = append(kinds, mw.menuItem("Filter."+k.String()))
	}
	figures.ChildMenu = fyne.NewMenu("", kinds...)

	colors := fyne.NewMenuItem("Colors", nil)
	colors.ChildMenu = fyne.NewMenu("", mw.menuItem("Filter.FillColor"), mw.menuItem("Filter.EdgeColor"))

	strokes := fyne.NewMenuItem("Strokes", nil)
	var lines []*fyne.MenuItem
	for _, lt := range figure.LineTypes {
		lines = append(lines, mw.menuItem("Filter."+lt.String()))
	}
	strokes.ChildMenu = fyne.NewMenu("", lines...)

	filterMenu := fyne.NewMenu("Filter",
		mw.menuItem("Filter"),
		fyne.NewMenuItemSeparator(),
		figures,
		colors,
		strokes,
		fyne.NewMenuItemSeparator(),
		mw.menuItem("Filter.Reset"),
	)

	helpMenu := fyne.NewMenu("Help", mw.menuItem("About"))

	mw.menu = fyne.NewMainMenu(drawingMenu, editMenu, filterMenu, helpMenu)
	mw.SetMainMenu(mw.menu)
	mw.refreshMenus()
}

// menuItem builds the item of the named action. Toggle items show a check
// mark that follows the toggle.
func (mw *MainWindow) menuItem(name string) *fyne.MenuItem {
	a, err := mw.editor.Action(name)
	if err != nil {
		mw.log.Error("menu", "error", err)
		item := fyne.NewMenuItem(name, nil)
		item.Disabled = true
		return item
	}
	item := fyne.NewMenuItem(a.Label, func() { mw.run(name) })
	if a.Toggle != nil {
		item.Checked = a.Toggle.On()
		a.Toggle.Listen(func(on bool) {
			item.Checked = on
			mw.refreshMenus()
		})
	}
	mw.items[name] = item
	return item
}

// refreshMenus greys out the actions that cannot run.
func (mw *MainWindow) refreshMenus() {
	for name, item := range mw.items {
		if a, err := mw.editor.Action(name); err == nil {
			item.Disabled = !a.Enabled()
		}
	}
	if mw.menu != nil {
		mw.menu.Refresh()
	}
}

// setupShortcuts binds the modified shortcuts to the canvas and the bare
// keys to the typed key handler.
func (mw *MainWindow) setupShortcuts() {
	c := mw.Canvas()
	for _, a := range mw.editor.Actions() {
		if sc := fyneShortcut(a.Shortcut); sc != nil {
			name := a.Name
			c.AddShortcut(sc, func(fyne.Shortcut) { mw.run(name) })
		}
	}
	c.SetOnTypedKey(func(ev *fyne.KeyEvent) {
		mw.editor.HandleKey(editor.Shortcut{Key: string(ev.Name)})
	})
}

// fyneShortcut converts s, or returns nil for a key without modifiers.
// Ctrl maps to the platform shortcut modifier.
func fyneShortcut(s editor.Shortcut) *desktop.CustomShortcut {
	var mod fyne.KeyModifier
	if s.Ctrl {
		mod |= fyne.KeyModifierShortcutDefault
	}
	if s.Shift {
		mod |= fyne.KeyModifierShift
	}
	if s.Alt {
		mod |= fyne.KeyModifierAlt
	}
	if s.Key == "" || mod == 0 {
		return nil
	}
	return &desktop.CustomShortcut{KeyName: fyne.KeyName(s.Key), Modifier: mod}
}
