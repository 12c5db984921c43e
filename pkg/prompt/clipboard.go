package prompt

import (
	"errors"
	"os/exec"

	"github.com/lvim-tech/qlaunch/pkg/utils"
)

// Инструменти за четене на clipboard, по приоритет
var clipboardTools = [][]string{
	{"wl-paste", "--no-newline"},
	{"xclip", "-selection", "clipboard", "-o"},
	{"xsel", "-b"},
}

// SystemClipboard reads the clipboard through wl-paste, xclip, or xsel.
type SystemClipboard struct{}

// ReadText returns the current clipboard text. An empty or unset
// clipboard reads as an empty string; a missing tool is an error.
func (SystemClipboard) ReadText() (string, error) {
	for _, tool := range clipboardTools {
		if !utils.CommandExists(tool[0]) {
			continue
		}

		output, err := exec.Command(tool[0], tool[1:]...).Output()
		if err != nil {
			// wl-paste и xclip излизат с грешка при празен clipboard
			if len(output) == 0 {
				return "", nil
			}
			return "", err
		}
		return string(output), nil
	}

	return "", errors.New("no clipboard tool found (wl-paste, xclip, xsel)")
}
