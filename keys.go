package stagecraft

// Well-known property keys shared by the view catalog and the paint
// engine's sub-painters. Keeping them centralized is what lets a
// sub-painter written for KindBadge read exactly the keys views.Badge
// wrote, without the paint engine importing the views package.
var (
	PropText          = StringKey("text")
	PropTitle         = StringKey("title")
	PropForeground    = ColorKey("foreground")
	PropBackground    = ColorKey("background")
	PropStyle         = StyleKey("style")
	PropWidth         = IntKey("width")
	PropHeight        = IntKey("height")
	PropPadding       = IntKey("padding")
	PropSpacing       = IntKey("spacing")
	PropMinLength     = IntKey("minLength")
	PropBordered      = BoolKey("bordered")
	PropItems         = StringsKey("items")
	PropSelectedIndex = IntKey("selectedIndex")
	PropTotal         = IntKey("total")
	PropCurrent       = IntKey("current")
	PropFrames        = StringsKey("frames")
	PropFrameIndex    = IntKey("frameIndex")
	PropPlaceholder   = StringKey("placeholder")
	PropValue         = StringKey("value")
	PropPressed       = BoolKey("pressed")
	PropLanguage      = StringKey("language")
	PropAlign         = StringKey("align")
)
