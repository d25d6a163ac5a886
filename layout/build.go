package layout

import (
	"errors"
	"fmt"

	"github.com/ByLCY/wordcards/deck"
)

// ErrEmptyDeck 表示没有任何可排版的词对，此时不生成文档。
var ErrEmptyDeck = errors.New("layout: 卡片组为空")

// Build 对整副卡片分页两次：先输出全部原文页，再以相同切分输出全部译文页。
func Build(d deck.Deck, opts BuildOptions) (*Result, error) {
	if len(d) == 0 {
		return nil, ErrEmptyDeck
	}
	if opts.Measurer == nil {
		return nil, fmt.Errorf("layout: 缺少文本测量后端 Measurer")
	}
	mode := opts.Mode
	if mode == "" {
		mode = ModeColor
	}
	if mode != ModeColor && mode != ModeBW {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMode, mode)
	}

	geom := Plan()
	pageCount := geom.PageCount(len(d))
	pages := make([]Page, 0, 2*pageCount)
	for _, side := range []deck.Side{deck.SideSource, deck.SideTarget} {
		for p := 0; p < pageCount; p++ {
			start := p * geom.CardsPerPage()
			count := min(geom.CardsPerPage(), len(d)-start)
			pages = append(pages, ComposePage(d, side, start, count, geom, mode, opts.Measurer))
		}
	}

	return &Result{
		Pages:     pages,
		Geometry:  geom,
		Mode:      mode,
		PairCount: len(d),
		Meta:      opts.Meta,
	}, nil
}
