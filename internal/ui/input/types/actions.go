package types

// Slide navigation actions
type NavigateSlideAction struct {
	Direction string // "next", "previous", "first", "last"
}

func (a NavigateSlideAction) Type() string { return "navigate_slide" }

// Step navigation actions, only produced for cyclic slides
type NavigateStepAction struct {
	Direction string // "next" or "previous"
}

func (a NavigateStepAction) Type() string { return "navigate_step" }

// SelectStepAction selects a step by its selector button
type SelectStepAction struct {
	Index int
}

func (a SelectStepAction) Type() string { return "select_step" }

// FollowLinkAction jumps to the slide the selected step links to
type FollowLinkAction struct{}

func (a FollowLinkAction) Type() string { return "follow_link" }

// ScrollAction scrolls the slide body
type ScrollAction struct {
	Lines int // negative scrolls up
}

func (a ScrollAction) Type() string { return "scroll" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data interface{} // Optional data for the mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Command actions
type CopyCodeAction struct{}

func (a CopyCodeAction) Type() string { return "copy_code" }

type ShowOutlineAction struct{}

func (a ShowOutlineAction) Type() string { return "show_outline" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
