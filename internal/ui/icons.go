package ui

import (
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"
)

// ErrResourceMissing is returned when an icon name has no resource.
var ErrResourceMissing = errors.New("resource missing")

// placeholderIcon stands in for missing icons.
var placeholderIcon = fyne.NewStaticResource("placeholder.svg", []byte(
	`<svg xmlns="http://www.w3.org/2000/svg" width="24" height="24" viewBox="0 0 24 24"/>`))

var (
	iconsOnce sync.Once
	icons     map[string]fyne.Resource
)

func loadIcons() {
	icons = map[string]fyne.Resource{
		"quit":   theme.LogoutIcon(),
		"undo":   theme.ContentUndoIcon(),
		"redo":   theme.ContentRedoIcon(),
		"clear":  theme.ContentClearIcon(),
		"about":  theme.InfoIcon(),
		"edit":   theme.DocumentCreateIcon(),
		"filter": theme.VisibilityIcon(),
		"delete": theme.DeleteIcon(),
		"up":     theme.MoveUpIcon(),
		"down":   theme.MoveDownIcon(),
		"style":  theme.ColorPaletteIcon(),
		"magic":  theme.ContentAddIcon(),
		"fill":   theme.ColorChromaticIcon(),
		"edge":   theme.ColorAchromaticIcon(),
		"select": theme.CheckButtonCheckedIcon(),
		"reset":  theme.ViewRefreshIcon(),
	}
}

// Icon returns the resource registered under name. A missing icon yields
// the empty placeholder together with ErrResourceMissing.
func Icon(name string) (fyne.Resource, error) {
	iconsOnce.Do(loadIcons)
	if r, ok := icons[name]; ok {
		return r, nil
	}
	return placeholderIcon, errors.Wrapf(ErrResourceMissing, "icon %q", name)
}

// iconOrPlaceholder logs a missing icon and returns the placeholder.
func iconOrPlaceholder(name string, log hclog.Logger) fyne.Resource {
	r, err := Icon(name)
	if err != nil {
		log.Warn("using placeholder", "error", err)
	}
	return r
}
