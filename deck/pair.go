// Package deck 负责把原始词对文本解析为有序的卡片组，并把字形集以外的字符规范化为 ASCII。
package deck

// WordPair 是一张卡片正反两面的文本，解析后不再修改。
type WordPair struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// Deck 是一次生成请求中的全部词对。顺序决定每张卡片的页、行、列与配色，
// 正反两面共用同一顺序，双面打印时才能一一对齐。
type Deck []WordPair

// Side 表示页面渲染的是原文还是译文。
type Side string

const (
	SideSource Side = "source"
	SideTarget Side = "target"
)

// Text 按页面方向选择词对中的文本。
func (p WordPair) Text(side Side) string {
	if side == SideTarget {
		return p.Target
	}
	return p.Source
}

// Normalized 返回两侧文本均已规范化的新 Deck，原 Deck 不变。
func (d Deck) Normalized() Deck {
	out := make(Deck, len(d))
	for i, p := range d {
		out[i] = WordPair{Source: Normalize(p.Source), Target: Normalize(p.Target)}
	}
	return out
}
