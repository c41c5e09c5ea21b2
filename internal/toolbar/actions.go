package toolbar

// Icon names understood by the page stylesheets.
const (
	IconBold         = "bold"
	IconItalic       = "italic"
	IconUnderline    = "underline"
	IconAlignLeft    = "align-left"
	IconAlignCenter  = "align-center"
	IconAlignRight   = "align-right"
	IconAlignJustify = "align-justify"
	IconEllipsisV    = "ellipsis-dots-v"
)

// Action is one formatting command shown both inline and in the overflow
// menu.
type Action struct {
	Name  string
	Label string
	Icon  string
}

// Actions is the ordered action list. Inline buttons and overflow menu items
// are both built from it.
var Actions = []Action{
	{Name: "bold", Label: "Bold", Icon: IconBold},
	{Name: "italic", Label: "Italic", Icon: IconItalic},
	{Name: "underline", Label: "Underline", Icon: IconUnderline},
	{Name: "left", Label: "Left", Icon: IconAlignLeft},
	{Name: "center", Label: "Center", Icon: IconAlignCenter},
	{Name: "right", Label: "Right", Icon: IconAlignRight},
	{Name: "justify", Label: "Justify", Icon: IconAlignJustify},
}

// Labels returns the labels of actions in order.
func Labels(actions []Action) []string {
	out := make([]string, len(actions))
	for i, a := range actions {
		out[i] = a.Label
	}
	return out
}
