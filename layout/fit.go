package layout

// FitFontSize 在文本宽度超过卡片宽度的 FitRatio 时按比例缩小字号。
// 只缩放一次，不再重新测量；没有最小字号限制，超长单词会变得很小但仍会绘制。
func FitFontSize(base, measured, cardWidth float64) float64 {
	limit := FitRatio * cardWidth
	if measured <= limit || measured <= 0 {
		return base
	}
	return base * (limit / measured)
}

// PlaceText 计算文本在卡片 (x, y, w, h) 中水平、垂直居中时的字号与基线位置。
// 字形框（下降部到上升部）上下留白相等，基线位于框底之上 descent 处。
func PlaceText(m Measurer, content string, x, y, w, h float64) TextPlacement {
	measured := m.TextWidth(content, BaseFontSize)
	size := FitFontSize(BaseFontSize, measured, w)
	width := m.TextWidth(content, size)
	height := m.TextHeight(size)
	descent := m.TextDescent(size)
	return TextPlacement{
		Content:  content,
		FontSize: size,
		X:        x + (w-width)/2,
		Baseline: y + (h-height)/2 + descent,
		Width:    width,
		Height:   height,
		Shrunk:   size < BaseFontSize,
	}
}
