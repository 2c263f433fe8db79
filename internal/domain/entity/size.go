package entity

import (
	"strconv"
	"strings"
)

// SizeKind discriminates the ImageSize variants.
type SizeKind int

const (
	// SizeDefault keeps the image at its original dimensions.
	SizeDefault SizeKind = iota

	// SizeSmall resizes to 16x16.
	SizeSmall

	// SizeMedium resizes to 32x32.
	SizeMedium

	// SizeLarge resizes to 64x64.
	SizeLarge

	// SizeCustom resizes to caller-supplied dimensions.
	SizeCustom

	// SizeInvalid marks an unparseable size string. It must be rejected
	// before use; resizing with it fails with ErrInvalidSize.
	SizeInvalid
)

// Standard size edge lengths in pixels.
const (
	SmallEdge  = 16
	MediumEdge = 32
	LargeEdge  = 64
)

// ImageSize selects the target dimensions for a resize.
// Width and Height are only meaningful for SizeCustom.
type ImageSize struct {
	Kind   SizeKind
	Width  int
	Height int
}

// Convenience constructors for the fixed variants.
var (
	SizeSpecDefault = ImageSize{Kind: SizeDefault}
	SizeSpecSmall   = ImageSize{Kind: SizeSmall}
	SizeSpecMedium  = ImageSize{Kind: SizeMedium}
	SizeSpecLarge   = ImageSize{Kind: SizeLarge}
)

// CustomSize returns a SizeCustom spec with the given dimensions.
// Dimension validation happens at resize time, not construction.
func CustomSize(width, height int) ImageSize {
	return ImageSize{Kind: SizeCustom, Width: width, Height: height}
}

// ParseImageSize parses the string form of an ImageSize:
// "small", "medium", "large", "default", or "<w>,<h>".
// Unrecognized strings yield the SizeInvalid variant rather than an error.
func ParseImageSize(s string) ImageSize {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "small":
		return SizeSpecSmall
	case "medium":
		return SizeSpecMedium
	case "large":
		return SizeSpecLarge
	case "default", "":
		return SizeSpecDefault
	}

	w, h, ok := strings.Cut(s, ",")
	if !ok {
		return ImageSize{Kind: SizeInvalid}
	}
	width, err := strconv.Atoi(strings.TrimSpace(w))
	if err != nil {
		return ImageSize{Kind: SizeInvalid}
	}
	height, err := strconv.Atoi(strings.TrimSpace(h))
	if err != nil {
		return ImageSize{Kind: SizeInvalid}
	}
	return CustomSize(width, height)
}

// Dimensions returns the target pixel dimensions for the spec.
// ok is false for SizeDefault (no resize) and SizeInvalid.
func (s ImageSize) Dimensions() (width, height int, ok bool) {
	switch s.Kind {
	case SizeSmall:
		return SmallEdge, SmallEdge, true
	case SizeMedium:
		return MediumEdge, MediumEdge, true
	case SizeLarge:
		return LargeEdge, LargeEdge, true
	case SizeCustom:
		return s.Width, s.Height, true
	default:
		return 0, 0, false
	}
}

// String returns the canonical string form of the spec.
func (s ImageSize) String() string {
	switch s.Kind {
	case SizeDefault:
		return "default"
	case SizeSmall:
		return "small"
	case SizeMedium:
		return "medium"
	case SizeLarge:
		return "large"
	case SizeCustom:
		return strconv.Itoa(s.Width) + "," + strconv.Itoa(s.Height)
	default:
		return "invalid"
	}
}
