package layout

import (
	"fmt"
	"math"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ByLCY/wordcards/deck"
)

// stubMeasurer 是一个最小实现：每个字符宽 0.5em，高度 0.7em，宽度随字号线性变化。
type stubMeasurer struct{}

func (stubMeasurer) TextWidth(content string, fontSize float64) float64 {
	return 0.5 * fontSize * float64(utf8.RuneCountInString(content))
}

func (stubMeasurer) TextHeight(fontSize float64) float64 { return 0.7 * fontSize }

func (stubMeasurer) TextDescent(fontSize float64) float64 { return 0.2 * fontSize }

func makeDeck(n int) deck.Deck {
	d := make(deck.Deck, n)
	for i := range d {
		d[i] = deck.WordPair{Source: fmt.Sprintf("src%d", i), Target: fmt.Sprintf("tgt%d", i)}
	}
	return d
}

func build(t *testing.T, d deck.Deck, mode Mode) *Result {
	t.Helper()
	res, err := Build(d, BuildOptions{Mode: mode, Measurer: stubMeasurer{}})
	require.NoError(t, err)
	return res
}

func TestPlanGeometry(t *testing.T) {
	g := Plan()

	assert.Equal(t, 48, g.CardsPerPage())
	assert.InDelta(t, PageWidth-2*PageMargin, g.UsableWidth, 1e-9)
	assert.InDelta(t, PageHeight-2*PageMargin, g.UsableHeight, 1e-9)
	assert.Equal(t, math.Floor((g.UsableWidth-3*CardGap)/4), g.CardWidth)
	assert.Equal(t, math.Floor((g.UsableHeight-11*CardGap)/12), g.CardHeight)
	// 网格必须放得下
	assert.LessOrEqual(t, g.RowWidth(Columns), g.UsableWidth)
	assert.LessOrEqual(t, float64(Rows)*g.CardHeight+float64(Rows-1)*g.Gap, g.UsableHeight)
	assert.Equal(t, Plan(), g)
}

func TestPageCount(t *testing.T) {
	g := Plan()
	cases := map[int]int{0: 0, 1: 1, 47: 1, 48: 1, 49: 2, 96: 2, 97: 3, 480: 10}
	for n, want := range cases {
		assert.Equal(t, want, g.PageCount(n), "n=%d", n)
	}
}

func TestRowLeftAlignment(t *testing.T) {
	g := Plan()
	full := g.RowLeft(Columns)
	assert.InDelta(t, g.Margin.Left+(g.UsableWidth-g.RowWidth(Columns))/2, full, 1e-9)
	for n := 1; n < Columns; n++ {
		assert.Equal(t, g.Margin.Left, g.RowLeft(n), "row of %d", n)
		assert.NotEqual(t, full, g.RowLeft(n), "full row must start at a different x than a short row")
	}
}

func TestRowBottomStacksDownward(t *testing.T) {
	g := Plan()
	assert.InDelta(t, g.PageHeight-g.Margin.Top-g.CardHeight, g.RowBottom(0), 1e-9)
	for r := 1; r < Rows; r++ {
		assert.InDelta(t, g.CardHeight+g.Gap, g.RowBottom(r-1)-g.RowBottom(r), 1e-9)
	}
	assert.GreaterOrEqual(t, g.RowBottom(Rows-1), g.Margin.Bottom)
}

func TestParseMode(t *testing.T) {
	for in, want := range map[string]Mode{"color": ModeColor, "COLOR": ModeColor, "": ModeColor, "colour": ModeColor, "bw": ModeBW, " BW ": ModeBW, "mono": ModeBW, "printer": ModeBW} {
		got, err := ParseMode(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseMode("sepia")
	assert.ErrorIs(t, err, ErrInvalidMode)
}

func TestAssignColor(t *testing.T) {
	for i := 0; i < 3*PaletteSize; i++ {
		s := AssignColor(i, ModeColor)
		assert.Equal(t, fillPalette[i%PaletteSize], s.Fill)
		assert.Equal(t, borderPalette[i%PaletteSize], s.Border)
		assert.Equal(t, s, AssignColor(i+PaletteSize, ModeColor))
	}
	seen := map[Color]bool{}
	for i := 0; i < PaletteSize; i++ {
		seen[AssignColor(i, ModeColor).Fill] = true
	}
	assert.Len(t, seen, PaletteSize)

	for _, i := range []int{0, 1, 7, 1000} {
		assert.Equal(t, Scheme{Fill: white, Border: black}, AssignColor(i, ModeBW))
	}
}

func TestBorderIsDarkerThanFill(t *testing.T) {
	lum := func(c Color) int { return c.R + c.G + c.B }
	for i := 0; i < PaletteSize; i++ {
		s := AssignColor(i, ModeColor)
		assert.Less(t, lum(s.Border), lum(s.Fill), "palette index %d", i)
	}
}

func TestFitFontSize(t *testing.T) {
	// 未超过 90% 时保持基准字号
	assert.Equal(t, 16.0, FitFontSize(16, 90, 100))
	assert.Equal(t, 16.0, FitFontSize(16, 50, 100))
	// 超出时按比例缩小
	assert.InDelta(t, 16*90.0/180, FitFontSize(16, 180, 100), 1e-9)
	// 极长文本也只是变小，没有下限
	tiny := FitFontSize(16, 1e6, 100)
	assert.Greater(t, tiny, 0.0)
	assert.Less(t, tiny, 0.01)
}

func TestPlaceTextCentersAndShrinks(t *testing.T) {
	m := stubMeasurer{}
	p := PlaceText(m, "cat", 100, 200, 126, 55)
	assert.Equal(t, BaseFontSize, p.FontSize)
	assert.False(t, p.Shrunk)
	assert.InDelta(t, 100+(126-p.Width)/2, p.X, 1e-9)
	// 字形框 [baseline-descent, baseline-descent+height] 上下留白相等
	bottom := p.Baseline - m.TextDescent(p.FontSize)
	top := bottom + p.Height
	assert.InDelta(t, bottom-200, 200+55-top, 1e-9)
	assert.Greater(t, p.Baseline, 200+(55-p.Height)/2)

	long := "pneumonoultramicroscopicsilicovolcanoconiosis"
	p = PlaceText(m, long, 0, 0, 126, 55)
	assert.True(t, p.Shrunk)
	assert.Less(t, p.FontSize, BaseFontSize)
	// 线性测量下缩放后恰好占 90% 宽度
	assert.InDelta(t, FitRatio*126, p.Width, 1e-6)
	assert.InDelta(t, (126-p.Width)/2, p.X, 1e-9)
	bottom = p.Baseline - m.TextDescent(p.FontSize)
	assert.InDelta(t, bottom, 55-(bottom+p.Height), 1e-9)
}

func TestBuildEmptyDeck(t *testing.T) {
	_, err := Build(nil, BuildOptions{Measurer: stubMeasurer{}})
	assert.ErrorIs(t, err, ErrEmptyDeck)
}

func TestBuildRequiresMeasurer(t *testing.T) {
	_, err := Build(makeDeck(1), BuildOptions{})
	assert.Error(t, err)
}

func TestBuildRejectsUnknownMode(t *testing.T) {
	_, err := Build(makeDeck(1), BuildOptions{Mode: "sepia", Measurer: stubMeasurer{}})
	assert.ErrorIs(t, err, ErrInvalidMode)
}

func TestBuildPageTotals(t *testing.T) {
	for _, n := range []int{1, 3, 47, 48, 49, 95, 96, 97, 200} {
		res := build(t, makeDeck(n), ModeColor)
		per := (n + CardsPerPage - 1) / CardsPerPage
		assert.Len(t, res.Pages, 2*per, "n=%d", n)
		assert.Equal(t, per, res.PageCount())
		assert.Equal(t, n, res.PairCount)

		for i, p := range res.Pages {
			if i < per {
				assert.Equal(t, deck.SideSource, p.Side)
			} else {
				assert.Equal(t, deck.SideTarget, p.Side)
			}
			assert.LessOrEqual(t, p.Count, CardsPerPage)
			assert.Len(t, p.Cards, p.Count)
		}
	}
}

func TestBuildCardsShareDimensions(t *testing.T) {
	res := build(t, makeDeck(130), ModeColor)
	for _, p := range res.Pages {
		for _, c := range p.Cards {
			assert.Equal(t, res.Geometry.CardWidth, c.Width)
			assert.Equal(t, res.Geometry.CardHeight, c.Height)
			assert.Equal(t, BorderWidth, c.StrokeWidth)
		}
	}
}

func TestBuildSidesLineUp(t *testing.T) {
	d := makeDeck(60)
	res := build(t, d, ModeColor)
	half := res.PageCount()
	for p := 0; p < half; p++ {
		src, tgt := res.Pages[p], res.Pages[p+half]
		require.Equal(t, src.Start, tgt.Start)
		require.Equal(t, src.Count, tgt.Count)
		for k := range src.Cards {
			s, g := src.Cards[k], tgt.Cards[k]
			assert.Equal(t, s.Index, g.Index)
			assert.Equal(t, s.X, g.X)
			assert.Equal(t, s.Y, g.Y)
			assert.Equal(t, s.Fill, g.Fill)
			assert.Equal(t, s.Border, g.Border)
			assert.Equal(t, d[s.Index].Source, s.Text.Content)
			assert.Equal(t, d[g.Index].Target, g.Text.Content)
		}
	}
}

func TestBuildColorsContinueAcrossPages(t *testing.T) {
	res := build(t, makeDeck(50), ModeColor)
	second := res.Pages[1]
	require.Equal(t, 48, second.Start)
	assert.Equal(t, AssignColor(48, ModeColor).Fill, second.Cards[0].Fill)
	assert.Equal(t, fillPalette[48%PaletteSize], second.Cards[0].Fill)
}

func TestBuildIsDeterministic(t *testing.T) {
	d := makeDeck(75)
	assert.Equal(t, build(t, d, ModeColor), build(t, d, ModeColor))
	assert.Equal(t, build(t, d, ModeBW), build(t, d, ModeBW))
}

func TestBuildThreePairs(t *testing.T) {
	d := deck.Deck{{Source: "cat", Target: "kedi"}, {Source: "dog", Target: "kopek"}, {Source: "bird", Target: "kus"}}
	res := build(t, d, ModeColor)
	require.Len(t, res.Pages, 2)

	g := res.Geometry
	for _, p := range res.Pages {
		require.Len(t, p.Cards, 3)
		for k, c := range p.Cards {
			assert.Equal(t, 0, c.Row)
			assert.Equal(t, g.RowBottom(0), c.Y)
			assert.InDelta(t, g.Margin.Left+float64(k)*(g.CardWidth+g.Gap), c.X, 1e-9)
			assert.Equal(t, AssignColor(k, ModeColor), Scheme{Fill: c.Fill, Border: c.Border})
		}
	}
	assert.Equal(t, []string{"kedi", "kopek", "kus"}, []string{res.Pages[1].Cards[0].Text.Content, res.Pages[1].Cards[1].Text.Content, res.Pages[1].Cards[2].Text.Content})
}

func TestBuildBoundary48And49(t *testing.T) {
	g := Plan()

	res := build(t, makeDeck(48), ModeColor)
	require.Len(t, res.Pages, 2)
	last := res.Pages[0].Cards[47]
	assert.Equal(t, Rows-1, last.Row)
	assert.InDelta(t, g.RowLeft(Columns)+3*(g.CardWidth+g.Gap), last.X, 1e-9)
	assert.Equal(t, g.RowLeft(Columns), res.Pages[0].Cards[44].X)

	res = build(t, makeDeck(49), ModeColor)
	require.Len(t, res.Pages, 4)
	for _, p := range []Page{res.Pages[1], res.Pages[3]} {
		require.Len(t, p.Cards, 1)
		assert.Equal(t, 48, p.Cards[0].Index)
		assert.Equal(t, g.Margin.Left, p.Cards[0].X)
		assert.Equal(t, g.RowBottom(0), p.Cards[0].Y)
	}
}

func TestComposePageShortLastRow(t *testing.T) {
	g := Plan()
	p := ComposePage(makeDeck(10), deck.SideSource, 0, 10, g, ModeBW, stubMeasurer{})
	require.Len(t, p.Cards, 10)
	// 前两行满行居中，第三行两张靠左
	assert.Equal(t, g.RowLeft(Columns), p.Cards[0].X)
	assert.Equal(t, g.RowLeft(Columns), p.Cards[4].X)
	assert.Equal(t, g.Margin.Left, p.Cards[8].X)
	assert.NotEqual(t, p.Cards[0].X, p.Cards[8].X)
	assert.Equal(t, 2, p.Cards[9].Row)
	assert.Equal(t, white, p.Cards[3].Fill)
}

func TestBuildOversizedWordStillRenders(t *testing.T) {
	word := ""
	for i := 0; i < 500; i++ {
		word += "x"
	}
	res := build(t, deck.Deck{{Source: word, Target: "y"}}, ModeColor)
	c := res.Pages[0].Cards[0]
	assert.True(t, c.Text.Shrunk)
	assert.Greater(t, c.Text.FontSize, 0.0)
	assert.Equal(t, word, c.Text.Content)
}
