package layout

import (
	"errors"
	"fmt"
	"strings"
)

// Mode 是打印模式：彩色或黑白。
type Mode string

const (
	ModeColor Mode = "color"
	ModeBW    Mode = "bw"
)

// ErrInvalidMode 表示无法识别的打印模式。
var ErrInvalidMode = errors.New("layout: 未知的打印模式")

// ParseMode 解析打印模式，大小写不敏感；空字符串视为彩色。
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "color", "colour":
		return ModeColor, nil
	case "bw", "mono", "monochrome", "printer":
		return ModeBW, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
}

// Scheme 是一张卡片的填充色与边框色。
type Scheme struct {
	Fill   Color `json:"fill"`
	Border Color `json:"border"`
}

// 两组平行的调色板：每个浅色填充对应同色相的深色边框。
var (
	fillPalette = [...]Color{
		{R: 255, G: 205, B: 210}, // red
		{R: 200, G: 230, B: 201}, // green
		{R: 187, G: 222, B: 251}, // blue
		{R: 255, G: 249, B: 196}, // yellow
		{R: 225, G: 190, B: 231}, // purple
	}
	borderPalette = [...]Color{
		{R: 198, G: 40, B: 40},
		{R: 46, G: 125, B: 50},
		{R: 21, G: 101, B: 192},
		{R: 249, G: 168, B: 37},
		{R: 106, G: 27, B: 154},
	}
)

// PaletteSize 是彩色模式下循环使用的颜色数。
const PaletteSize = len(fillPalette)

var (
	white = Color{R: 255, G: 255, B: 255}
	black = Color{R: 0, G: 0, B: 0}
)

// AssignColor 返回全局序号 index 的配色，只取决于 index mod PaletteSize。
func AssignColor(index int, mode Mode) Scheme {
	if mode == ModeBW {
		return Scheme{Fill: white, Border: black}
	}
	i := ((index % PaletteSize) + PaletteSize) % PaletteSize
	return Scheme{Fill: fillPalette[i], Border: borderPalette[i]}
}
