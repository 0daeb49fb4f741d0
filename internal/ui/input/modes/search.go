package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"hnsearch/internal/ui/input/types"
)

type SearchMode struct {
	TextInputMode
}

func NewSearchMode(keys types.KeyMap, ti *textinput.Model) *SearchMode {
	return &SearchMode{
		TextInputMode: NewTextInputMode(types.ModeSearch, "search", keys, ti),
	}
}
