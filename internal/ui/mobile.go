package ui

import (
	"fyne.io/fyne/v2"
)

// MobileUI adapts sizes to the device the app runs on
type MobileUI struct {
	mobile bool
}

// NewMobileUI creates a helper for the current device
func NewMobileUI() *MobileUI {
	return &MobileUI{mobile: fyne.CurrentDevice().IsMobile()}
}

// IsMobileDevice checks if the app is running on a mobile device
func (m *MobileUI) IsMobileDevice() bool {
	return m.mobile
}

// CardSize returns the size of a trending card
func (m *MobileUI) CardSize() fyne.Size {
	if m.mobile {
		return fyne.NewSize(MobileCardWidth, MobileCardHeight)
	}
	return fyne.NewSize(CardWidth, CardHeight)
}

// CarouselPadding returns the empty space at both ends of the carousel
func (m *MobileUI) CarouselPadding() float32 {
	if m.mobile {
		return CarouselPadding / 2
	}
	return CarouselPadding
}

// GetMobileSpacing returns appropriate spacing for mobile devices
func (m *MobileUI) GetMobileSpacing() float32 {
	if m.mobile {
		return 16
	}
	return 8
}
