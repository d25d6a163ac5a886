package layout

import "github.com/ByLCY/wordcards/deck"

// 该文件定义布局结果，供渲染器与调试 JSON 共用。所有长度单位为 pt，原点在页面左下角。

// Result 保存整份文档的页面、几何参数与元信息。
type Result struct {
	Pages     []Page       `json:"pages"`
	Geometry  Geometry     `json:"geometry"`
	Mode      Mode         `json:"mode"`
	PairCount int          `json:"pairCount"`
	Meta      DocumentMeta `json:"meta"`
}

// PageCount 返回单面的页数（原文页数 = 译文页数）。
func (r *Result) PageCount() int {
	return len(r.Pages) / 2
}

// Page 是卡片组上的一个窗口：[Start, Start+Count)。
type Page struct {
	Side   deck.Side `json:"side"`
	Start  int       `json:"start"`
	Count  int       `json:"count"`
	Width  float64   `json:"width"`
	Height float64   `json:"height"`
	Cards  []Card    `json:"cards"`
}

// Card 是已经定好位置、配色与字号的一张卡片。
type Card struct {
	Index       int           `json:"index"` // 全局卡片序号
	Row         int           `json:"row"`
	Column      int           `json:"column"`
	X           float64       `json:"x"`
	Y           float64       `json:"y"`
	Width       float64       `json:"width"`
	Height      float64       `json:"height"`
	Fill        Color         `json:"fill"`
	Border      Color         `json:"border"`
	StrokeWidth float64       `json:"strokeWidth"`
	Text        TextPlacement `json:"text"`
}

// TextPlacement 描述卡片内文本的最终字号与基线起点。
type TextPlacement struct {
	Content  string  `json:"content"`
	FontSize float64 `json:"fontSize"`
	X        float64 `json:"x"`
	Baseline float64 `json:"baseline"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Shrunk   bool    `json:"shrunk,omitempty"`
}

// Color 采用 0-255 的 RGB 数值。
type Color struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// DocumentMeta 保存 PDF 元信息。
type DocumentMeta struct {
	Title    string   `json:"title" yaml:"title"`
	Author   string   `json:"author" yaml:"author"`
	Subject  string   `json:"subject" yaml:"subject"`
	Creator  string   `json:"creator" yaml:"creator"`
	Keywords []string `json:"keywords" yaml:"keywords"`
}
