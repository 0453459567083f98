package game

import (
	"github.com/ncruces/zenity"
	"github.com/pkg/errors"

	"github.com/iburimskiy/bouncing-balls/internal/config"
)

// pickScene asks the user for a scene file. A cancelled dialog returns "" and no error.
func pickScene() (string, error) {
	filename, err := zenity.SelectFile(
		zenity.Title("Open Scene"),
		zenity.FileFilters{{
			Name:     "Scene",
			Patterns: []string{"*.toml"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", nil
		}
		return "", errors.Wrap(err, "open scene dialog")
	}
	return filename, nil
}

// ShowFatal reports an error that ends the program in a native dialog.
func ShowFatal(err error) {
	_ = zenity.Error(err.Error(), zenity.Title(config.WindowTitle), zenity.ErrorIcon)
}
