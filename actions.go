package main

// ActionDefinition defines an action with its default keybindings, mouse bindings, and description
type ActionDefinition struct {
	Name         string
	Keys         []string
	MouseActions []string
	Description  string
}

// actionDefinitions contains all action definitions with default keybindings, mouse bindings, and descriptions
var actionDefinitions = []ActionDefinition{
	{"exit", []string{"Escape", "KeyQ"}, []string{}, "Close viewer / quit application"},
	{"help", []string{"Shift+Slash"}, []string{}, "Show/hide help"},
	{"fullscreen", []string{"Enter"}, []string{"DoubleLeftClick"}, "Toggle fullscreen"},

	// Viewer navigation
	{"next", []string{"Space", "KeyN", "ArrowRight"}, []string{"WheelDown"}, "Next image"},
	{"previous", []string{"Backspace", "KeyP", "ArrowLeft"}, []string{"WheelUp"}, "Previous image"},

	// Grid scrolling
	{"scroll_up", []string{"ArrowUp"}, []string{}, "Scroll up"},
	{"scroll_down", []string{"ArrowDown"}, []string{}, "Scroll down"},
	{"page_up", []string{"PageUp"}, []string{}, "Scroll up one page"},
	{"page_down", []string{"PageDown"}, []string{}, "Scroll down one page"},
	{"jump_top", []string{"Home"}, []string{}, "Jump to top"},
	{"jump_bottom", []string{"End"}, []string{}, "Jump to bottom"},

	// Collection
	{"toggle_order", []string{"KeyO"}, []string{}, "Toggle newest-first / oldest-first"},
	{"reload", []string{"KeyR"}, []string{}, "Reload collection"},
	{"search", []string{"Slash"}, []string{}, "Search folders"},

	// Selection and sharing
	{"toggle_select", []string{"KeyX"}, []string{"Ctrl+LeftClick"}, "Toggle selection"},
	{"clear_selection", []string{"Shift+KeyX"}, []string{}, "Clear selection"},
	{"download", []string{"KeyD"}, []string{}, "Download selected (or current) images"},
	{"copy_link", []string{"KeyC"}, []string{}, "Copy share link"},
	{"back", []string{"Shift+ArrowLeft"}, []string{}, "History back"},
	{"forward", []string{"Shift+ArrowRight"}, []string{}, "History forward"},

	// Slideshow
	{"slideshow", []string{"KeyS"}, []string{"MiddleClick"}, "Start/stop slideshow"},
	{"slideshow_filter", []string{"KeyF"}, []string{}, "Edit slideshow filter"},
}

// ActionExecutor provides centralized action execution logic shared by the
// keyboard and mouse binding managers
type ActionExecutor struct{}

// NewActionExecutor creates a new ActionExecutor instance
func NewActionExecutor() *ActionExecutor {
	return &ActionExecutor{}
}

// ExecuteAction executes the given action using the InputActions interface
// This is the single source of truth for all action execution logic
func (ae *ActionExecutor) ExecuteAction(action string, inputActions InputActions, inputState InputState) bool {
	switch action {
	case "exit":
		inputActions.Exit()
	case "help":
		inputActions.ToggleHelp()
	case "fullscreen":
		inputActions.ToggleFullscreen()
	case "next":
		inputActions.NavigateNext()
	case "previous":
		inputActions.NavigatePrevious()
	case "scroll_up":
		inputActions.ScrollLines(-1)
	case "scroll_down":
		inputActions.ScrollLines(+1)
	case "page_up":
		inputActions.ScrollPage(-1)
	case "page_down":
		inputActions.ScrollPage(+1)
	case "jump_top":
		inputActions.JumpTop()
	case "jump_bottom":
		inputActions.JumpBottom()
	case "toggle_order":
		inputActions.ToggleOrder()
	case "reload":
		inputActions.Reload()
	case "search":
		if !inputState.IsTextInputActive() {
			inputActions.EnterSearchMode()
		}
	case "toggle_select":
		inputActions.ToggleSelect()
	case "clear_selection":
		inputActions.ClearSelection()
	case "download":
		inputActions.DownloadSelected()
	case "copy_link":
		inputActions.CopyShareLink()
	case "back":
		inputActions.HistoryBack()
	case "forward":
		inputActions.HistoryForward()
	case "slideshow":
		inputActions.ToggleSlideshow()
	case "slideshow_filter":
		if !inputState.IsTextInputActive() {
			inputActions.EnterFilterMode()
		}
	default:
		return false
	}

	return true
}

// globalActionExecutor is the global instance of ActionExecutor used throughout the application
var globalActionExecutor = NewActionExecutor()

// GetActionDescriptions returns a map of action names to their descriptions
func GetActionDescriptions() map[string]string {
	descriptions := make(map[string]string)
	for _, action := range actionDefinitions {
		descriptions[action.Name] = action.Description
	}
	return descriptions
}

// GetDefaultKeybindings returns a map of action names to their default keybindings
func GetDefaultKeybindings() map[string][]string {
	keybindings := make(map[string][]string)
	for _, action := range actionDefinitions {
		keybindings[action.Name] = action.Keys
	}
	return keybindings
}

// GetDefaultMousebindings returns a map of action names to their default mouse bindings
func GetDefaultMousebindings() map[string][]string {
	mousebindings := make(map[string][]string)
	for _, action := range actionDefinitions {
		mousebindings[action.Name] = action.MouseActions
	}
	return mousebindings
}
