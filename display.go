package ecap

import "image/color"

import "github.com/tinne26/ecap/font"
import "github.com/tinne26/ecap/mask"
import "github.com/tinne26/ecap/cache"

// Byte size of the glyph mask cache owned by each display.
const displayCacheSize = 8*1024*1024 // 8MiB

// Display is the package's main type: a caption display fed by
// [Message] values and user property edits, composing its text onto
// an [Overlay] texture whenever the resulting configuration changes.
//
// Message and property inputs merge under per-group "overtake"
// precedence: while a group's overtake flag is active, that group is
// driven exclusively by properties and message values for it are
// ignored; otherwise each message overwrites the group. See
// [Display.ProcessMessage]() for the exact field groups.
//
// Displays follow a single goroutine cooperative model: properties,
// [Display.ProcessMessage]() and [Display.Update]() must all be used
// from the same goroutine. The only concurrent-safe entry point is
// the message queue, where other goroutines may push messages that
// the next Update tick will drain.
type Display struct {
	fonts *font.Library
	props *Properties
	config RenderConfig
	queue *MessageQueue
	overlay Overlay
	renderer *Renderer
	rasterizer *mask.FauxRasterizer
	enabled bool
	dirty bool
}

// Creates a caption display that draws fonts from the given library.
//
// Displays start enabled, with an empty caption and no overlay; the
// overlay is created when the first message arrives. The initial
// configuration is pulled from the default property values, and the
// font property options are populated from the library's families.
func NewDisplay(fonts *font.Library) *Display {
	rasterizer := &mask.FauxRasterizer{}
	renderer := NewRenderer()
	renderer.SetRasterizer(rasterizer)
	renderer.SetCacheHandler(cache.NewDefaultCache(displayCacheSize).NewHandler())

	display := &Display{
		fonts: fonts,
		props: NewProperties(fonts.Families()),
		config: newRenderConfig(),
		queue: NewMessageQueue(),
		renderer: renderer,
		rasterizer: rasterizer,
		enabled: true,
	}
	display.wireProperties()

	// fold the initial property values into the configuration and
	// align widget visibility with the inactive overtake flags
	display.onOvertakePositionChange(false)
	display.onOvertakeFgColorChange(false)
	display.onOvertakeBgColorChange(false)
	display.pullTop()
	display.pullLeft()
	display.pullWidth()
	display.pullHeight()
	display.pullTextSize()
	display.pullFgColor()
	display.pullFgAlpha()
	display.pullBgColor()
	display.pullBgAlpha()
	display.pullFont()
	display.pullLineWidth()
	display.dirty = true
	return display
}

// Subscribes the display to every property cell.
func (self *Display) wireProperties() {
	props := self.props
	props.OvertakePosition.OnChange(self.onOvertakePositionChange)
	props.OvertakeFgColor.OnChange(self.onOvertakeFgColorChange)
	props.OvertakeBgColor.OnChange(self.onOvertakeBgColorChange)
	props.AlignBottom.OnChange(func(bool) { self.dirty = true })
	props.InvertShadow.OnChange(func(bool) { self.dirty = true })
	props.Top.OnChange(func(int) { self.pullTop() })
	props.Left.OnChange(func(int) { self.pullLeft() })
	props.Width.OnChange(func(int) { self.pullWidth() })
	props.Height.OnChange(func(int) { self.pullHeight() })
	props.TextSize.OnChange(func(int) { self.pullTextSize() })
	props.FgColor.OnChange(func(color.RGBA) { self.pullFgColor() })
	props.FgAlpha.OnChange(func(float64) { self.pullFgAlpha() })
	props.LineWidth.OnChange(func(int) { self.pullLineWidth() })
	props.Font.OnChange(func(int) { self.pullFont() })
	props.BgColor.OnChange(func(color.RGBA) { self.pullBgColor() })
	props.BgAlpha.OnChange(func(float64) { self.pullBgAlpha() })
}

// Folds a caption message into the display configuration, honoring
// the overtake precedence rules:
//   - Text and both alignments are always overwritten.
//   - Position overtake inactive: texture size, font size and the
//     on-screen distances come from the message.
//   - Foreground overtake inactive: foreground color, font family
//     and line width come from the message.
//   - Background overtake inactive: background color comes from
//     the message.
//
// The overlay is created on the first message. [ActionDelete] hides
// it and [ActionAdd] shows it again; the configuration is retained
// either way. Messages received while the display is disabled are
// ignored entirely.
func (self *Display) ProcessMessage(message Message) {
	if !self.enabled { return }

	if self.overlay == nil {
		self.overlay = newOverlay(nextOverlayName())
		self.overlay.Show()
	}
	switch message.Action {
	case ActionAdd: self.overlay.Show()
	case ActionDelete: self.overlay.Hide()
	}

	self.config.Text = message.Text
	self.config.HorzAlign = message.HorzAlign
	self.config.VertAlign = message.VertAlign

	if !self.props.OvertakePosition.Get() {
		self.config.TextureWidth = message.Width
		self.config.TextureHeight = message.Height
		self.config.FontSize = message.TextSize
		self.config.HorzDistance = message.HorzDistance
		self.config.VertDistance = message.VertDistance
	}
	if !self.props.OvertakeBgColor.Get() {
		self.config.Background = message.BgColor.ToRGBA()
	}
	if !self.props.OvertakeFgColor.Get() {
		self.config.Foreground = message.FgColor.ToRGBA()
		self.config.Font = message.Font
		self.config.LineWidth = message.LineWidth
	}

	self.overlay.SetPosition(
		int(self.config.HorzDistance), int(self.config.VertDistance),
		self.config.HorzAlign, self.config.VertAlign,
	)
	self.dirty = true
}

// The display's render tick. Update first drains the message queue,
// then re-composes the caption texture if the configuration changed
// since the last composition. Composition is skipped while the
// display is disabled, the overlay doesn't exist yet or the overlay
// is hidden; in the hidden case pending changes are retained so the
// next visible tick picks them up.
//
// Update never panics: composition failures are logged through
// [Logger]() and leave the previous texture content in place.
func (self *Display) Update() {
	for _, message := range self.queue.Drain() {
		self.ProcessMessage(message)
	}

	if !self.dirty { return }
	if !self.enabled { return }
	if self.overlay == nil { return }
	if !self.overlay.IsVisible() { return }
	self.render()
	self.dirty = false
}

// Enables or disables the display. Disabling hides the overlay and
// makes the display ignore messages and skip composing; enabling
// shows the overlay again.
func (self *Display) SetEnabled(enabled bool) {
	if enabled == self.enabled { return }
	self.enabled = enabled
	if self.overlay == nil { return }
	if enabled {
		self.overlay.Show()
	} else {
		self.overlay.Hide()
	}
}

// Returns whether the display is enabled. Displays start enabled.
func (self *Display) Enabled() bool { return self.enabled }

// Hides the overlay without clearing the caption configuration. A
// later [ActionAdd] message or an enable cycle shows it again.
func (self *Display) Reset() {
	if self.overlay != nil { self.overlay.Hide() }
}

// Returns the display's message queue. Pushing to the queue is the
// only display interaction allowed from other goroutines.
func (self *Display) Queue() *MessageQueue { return self.queue }

// Returns the display's current rendering configuration.
func (self *Display) Config() RenderConfig { return self.config }

// Returns the display's user-editable property set.
func (self *Display) Properties() *Properties { return self.props }

// Returns the display's overlay, or nil if no message has created it
// yet. On regular builds the concrete type is [*TextureOverlay],
// whose Draw method places the caption over the game screen.
func (self *Display) Overlay() Overlay { return self.overlay }

// Replaces the display's overlay. Mostly useful for tests observing
// overlay interactions through a custom [Overlay] implementation.
func (self *Display) SetOverlay(overlay Overlay) { self.overlay = overlay }

// --- property pulls ---
// Each pull folds one property value into the configuration. Dirty
// marking follows the overtake rule: edits to an overtaken group
// invalidate the texture, edits to a non-overtaken group are stored
// but only become visible once a message or toggle exposes them.

func (self *Display) pullTop() {
	self.config.VertDistance = uint(self.props.Top.Get())
	if self.props.OvertakePosition.Get() { self.dirty = true }
}

func (self *Display) pullLeft() {
	self.config.HorzDistance = uint(self.props.Left.Get())
	if self.props.OvertakePosition.Get() { self.dirty = true }
}

func (self *Display) pullWidth() {
	self.config.TextureWidth = uint(self.props.Width.Get())
	if self.props.OvertakePosition.Get() { self.dirty = true }
}

func (self *Display) pullHeight() {
	self.config.TextureHeight = uint(self.props.Height.Get())
	if self.props.OvertakePosition.Get() { self.dirty = true }
}

func (self *Display) pullTextSize() {
	self.config.FontSize = uint(self.props.TextSize.Get())
	if self.props.OvertakePosition.Get() { self.dirty = true }
}

func (self *Display) pullFgColor() {
	rgba := withAlpha(self.props.FgColor.Get(), self.config.Foreground.A)
	self.config.Foreground = rgba
	if self.props.OvertakeFgColor.Get() { self.dirty = true }
}

func (self *Display) pullFgAlpha() {
	alpha := channelToByte(self.props.FgAlpha.Get())
	self.config.Foreground = withAlpha(self.config.Foreground, alpha)
	if self.props.OvertakeFgColor.Get() { self.dirty = true }
}

func (self *Display) pullFont() {
	family, valid := self.props.Font.Value()
	if !valid {
		Logger().Error("caption font selection out of range", "index", self.props.Font.Get())
		return
	}
	self.config.Font = family
	if self.props.OvertakeFgColor.Get() { self.dirty = true }
}

func (self *Display) pullLineWidth() {
	self.config.LineWidth = uint(self.props.LineWidth.Get())
	if self.props.OvertakeFgColor.Get() { self.dirty = true }
}

func (self *Display) pullBgColor() {
	rgba := withAlpha(self.props.BgColor.Get(), self.config.Background.A)
	self.config.Background = rgba
	if self.props.OvertakeBgColor.Get() { self.dirty = true }
}

func (self *Display) pullBgAlpha() {
	alpha := channelToByte(self.props.BgAlpha.Get())
	self.config.Background = withAlpha(self.config.Background, alpha)
	if self.props.OvertakeBgColor.Get() { self.dirty = true }
}

// --- overtake toggles ---
// Activating an overtake pulls the whole group from the current
// property values and invalidates the texture; deactivating it keeps
// the configuration as-is until the next message overwrites it.
// Widget visibility of the group cells tracks the flag.

func (self *Display) onOvertakePositionChange(overtake bool) {
	props := self.props
	if overtake {
		self.pullTop()
		self.pullLeft()
		self.pullWidth()
		self.pullHeight()
		self.pullTextSize()
		self.dirty = true
		props.Top.Show()
		props.Left.Show()
		props.Width.Show()
		props.Height.Show()
		props.TextSize.Show()
	} else {
		props.Top.Hide()
		props.Left.Hide()
		props.Width.Hide()
		props.Height.Hide()
		props.TextSize.Hide()
	}
}

func (self *Display) onOvertakeFgColorChange(overtake bool) {
	props := self.props
	if overtake {
		self.pullFgColor()
		self.pullFgAlpha()
		self.pullFont()
		self.pullLineWidth()
		self.dirty = true
		props.FgColor.Show()
		props.FgAlpha.Show()
		props.LineWidth.Show()
		props.Font.Show()
	} else {
		props.FgColor.Hide()
		props.FgAlpha.Hide()
		props.LineWidth.Hide()
		props.Font.Hide()
	}
}

func (self *Display) onOvertakeBgColorChange(overtake bool) {
	props := self.props
	if overtake {
		self.pullBgColor()
		self.pullBgAlpha()
		self.dirty = true
		props.BgColor.Show()
		props.BgAlpha.Show()
	} else {
		props.BgColor.Hide()
		props.BgAlpha.Hide()
	}
}
