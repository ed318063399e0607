package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings     = "⚙"
	IconHeart        = "♥"
	IconHeartOutline = "♡"
	IconDownload     = "⤓"
	IconClose        = "×"
	IconProfile      = "@"
	IconPrev         = "‹"
	IconNext         = "›"
)

// Text fragments
const (
	SeenCounterFormat = "%d / %d"
)

// Card and stack sizing
const (
	CardWidth  float32 = 320
	CardHeight float32 = 420

	// StackRenderLimit caps how many cards of the rotating window are
	// visible at once.
	StackRenderLimit = 3

	StackDepthOffsetX   float32 = 26
	StackDepthScaleStep float32 = 0.05
)

// Back-card dimming
const (
	// Opacity of the card directly behind the front card and of the one
	// behind that.
	BackCardNearOpacity float32 = 1.0
	BackCardFarOpacity  float32 = 0.5

	// Alpha of the brightness-dim overlay drawn over every non-front card.
	BackCardDimAlpha uint8 = 70
)

// Lightbox sizing
const (
	LightboxWidth  float32 = 560
	LightboxHeight float32 = 640
)

// History grid sizing
const (
	HistoryCellWidth  float32 = 180
	HistoryCellHeight float32 = 230
	HistoryWidth      float32 = 600
	HistoryHeight     float32 = 520
)

// Toast notification sizing and behavior
const (
	ToastMargin   float32 = 24
	ToastAutoHide         = 2500 * time.Millisecond
)

// Modal and content-swap timing
const (
	// LightboxHideDelay defers hiding the popup until its close
	// transition has run.
	LightboxHideDelay = 300 * time.Millisecond

	// LightboxFadeSwap is the fade-out/fade-in pause when stepping
	// between images.
	LightboxFadeSwap = 200 * time.Millisecond

	// CardSnapBackDuration is the glide back to the resting position after
	// a drag released short of the swipe threshold.
	CardSnapBackDuration = 200 * time.Millisecond
)
