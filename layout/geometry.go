package layout

import "math"

// 页面与网格常量（pt）。页面尺寸与卡片数量固定，不随请求变化。
const (
	PageWidth  = 595.28 // A4
	PageHeight = 841.89

	PageMargin = 30.0
	CardGap    = 10.0

	Columns      = 4
	Rows         = 12
	CardsPerPage = Columns * Rows

	BaseFontSize = 16.0
	FitRatio     = 0.9
	BorderWidth  = 0.5
)

// Margin 以 pt 为单位。
type Margin struct {
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

// Geometry 是整份文档共用的网格。卡片尺寸只计算一次，所有页面、所有卡片一致。
type Geometry struct {
	PageWidth    float64 `json:"pageWidth"`
	PageHeight   float64 `json:"pageHeight"`
	Margin       Margin  `json:"margin"`
	Gap          float64 `json:"gap"`
	Columns      int     `json:"columns"`
	Rows         int     `json:"rows"`
	UsableWidth  float64 `json:"usableWidth"`
	UsableHeight float64 `json:"usableHeight"`
	CardWidth    float64 `json:"cardWidth"`
	CardHeight   float64 `json:"cardHeight"`
}

// Plan 根据固定的页面常量计算网格。
func Plan() Geometry {
	margin := Margin{Top: PageMargin, Right: PageMargin, Bottom: PageMargin, Left: PageMargin}
	return planGrid(PageWidth, PageHeight, margin, CardGap, Columns, Rows)
}

// planGrid 按 (可用尺寸 - 间距总和) / 格数 求卡片尺寸，再截断到整点，使裁切线落在整点上。
func planGrid(pageW, pageH float64, margin Margin, gap float64, cols, rows int) Geometry {
	usableW := pageW - margin.Left - margin.Right
	usableH := pageH - margin.Top - margin.Bottom
	return Geometry{
		PageWidth:    pageW,
		PageHeight:   pageH,
		Margin:       margin,
		Gap:          gap,
		Columns:      cols,
		Rows:         rows,
		UsableWidth:  usableW,
		UsableHeight: usableH,
		CardWidth:    math.Floor((usableW - gap*float64(cols-1)) / float64(cols)),
		CardHeight:   math.Floor((usableH - gap*float64(rows-1)) / float64(rows)),
	}
}

// CardsPerPage 返回每页可容纳的卡片数。
func (g Geometry) CardsPerPage() int { return g.Columns * g.Rows }

// PageCount 返回 n 张卡片单面所需的页数，即 ceil(n / CardsPerPage)。
func (g Geometry) PageCount(n int) int {
	per := g.CardsPerPage()
	if n <= 0 || per <= 0 {
		return 0
	}
	return (n + per - 1) / per
}

// RowWidth 返回一行放 n 张卡片时占用的总宽度。
func (g Geometry) RowWidth(n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(n)*g.CardWidth + float64(n-1)*g.Gap
}

// RowLeft 返回一行的起始 x：满行在可用宽度内居中，不满的行从左边距开始。
func (g Geometry) RowLeft(n int) float64 {
	if n == g.Columns {
		return g.Margin.Left + (g.UsableWidth-g.RowWidth(n))/2
	}
	return g.Margin.Left
}

// RowBottom 返回第 row 行（从 0 开始，自上而下）卡片底边的 y。
func (g Geometry) RowBottom(row int) float64 {
	return g.PageHeight - g.Margin.Top - float64(row)*(g.CardHeight+g.Gap) - g.CardHeight
}
