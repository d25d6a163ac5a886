package layout

import "github.com/ByLCY/wordcards/deck"

// ComposePage 把 d[start, start+count) 按行优先排入一页，每行最多 geom.Columns 张。
// 配色使用全局序号，跨页连续；正反两面相同序号的卡片配色一致。
func ComposePage(d deck.Deck, side deck.Side, start, count int, geom Geometry, mode Mode, m Measurer) Page {
	page := Page{
		Side:   side,
		Start:  start,
		Count:  count,
		Width:  geom.PageWidth,
		Height: geom.PageHeight,
		Cards:  make([]Card, 0, count),
	}
	for k := 0; k < count; k++ {
		row, col := k/geom.Columns, k%geom.Columns
		inRow := min(geom.Columns, count-row*geom.Columns)
		x := geom.RowLeft(inRow) + float64(col)*(geom.CardWidth+geom.Gap)
		y := geom.RowBottom(row)
		page.Cards = append(page.Cards, composeCard(d[start+k].Text(side), start+k, row, col, x, y, geom, mode, m))
	}
	return page
}

func composeCard(content string, index, row, col int, x, y float64, geom Geometry, mode Mode, m Measurer) Card {
	scheme := AssignColor(index, mode)
	return Card{
		Index:       index,
		Row:         row,
		Column:      col,
		X:           x,
		Y:           y,
		Width:       geom.CardWidth,
		Height:      geom.CardHeight,
		Fill:        scheme.Fill,
		Border:      scheme.Border,
		StrokeWidth: BorderWidth,
		Text:        PlaceText(m, content, x, y, geom.CardWidth, geom.CardHeight),
	}
}
