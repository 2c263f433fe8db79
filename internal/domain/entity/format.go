package entity

import "strings"

// Format identifies an image container for the reformat/export boundary.
type Format string

const (
	FormatPNG  Format = "png"
	FormatICO  Format = "ico"
	FormatJPEG Format = "jpeg"
	FormatGIF  Format = "gif"
	FormatBMP  Format = "bmp"

	// FormatInvalid marks an unrecognized format string. Reformatting
	// with it fails with ErrEncode.
	FormatInvalid Format = "invalid"
)

// ParseFormat parses a format name. Unrecognized names yield FormatInvalid.
func ParseFormat(s string) Format {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "png":
		return FormatPNG
	case "ico":
		return FormatICO
	case "jpeg", "jpg":
		return FormatJPEG
	case "gif":
		return FormatGIF
	case "bmp":
		return FormatBMP
	default:
		return FormatInvalid
	}
}

// Ext returns the file extension for the format, without the dot.
func (f Format) Ext() string {
	if f == FormatJPEG {
		return "jpg"
	}
	return string(f)
}
