package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
}

func (a SubmitTextAction) Type() string { return "submit_text" }

// Result actions
type DismissAction struct {
	ItemID string
}

func (a DismissAction) Type() string { return "dismiss" }

type LoadMoreAction struct{}

func (a LoadMoreAction) Type() string { return "load_more" }

type ShowDetailsAction struct {
	ItemID string
}

func (a ShowDetailsAction) Type() string { return "show_details" }

// UI actions
type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type ShowHelpPagerAction struct{}

func (a ShowHelpPagerAction) Type() string { return "show_help_pager" }

type ToggleActivityAction struct{}

func (a ToggleActivityAction) Type() string { return "toggle_activity" }

type QuitAction struct{}

func (a QuitAction) Type() string { return "quit" }
