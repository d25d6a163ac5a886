// Package generator 串联解析、规范化、布局与渲染，每次调用生成一份完整的 PDF。
package generator

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/ByLCY/wordcards/binding"
	"github.com/ByLCY/wordcards/deck"
	"github.com/ByLCY/wordcards/dsl"
	"github.com/ByLCY/wordcards/layout"
	"github.com/ByLCY/wordcards/renderer"
)

// ErrNoValidPairs 表示解析后没有任何有效词对，不会生成文档。
var ErrNoValidPairs = errors.New("no valid pairs")

// Request 是一次生成请求的参数；除卡片组外只有打印模式与文档元信息。
type Request struct {
	Mode layout.Mode
	Meta layout.DocumentMeta
	// Vars 提供给标题模板的额外占位符，例如 kit.name。
	Vars binding.Vars
}

// Output 是生成结果。
type Output struct {
	PDF       []byte
	PairCount int
	PageCount int // 单面页数，文档总页数为其两倍
	Dropped   []int
	Layout    *layout.Result
}

// Generator 无内部可变状态，可被并发调用。
type Generator struct {
	renderer renderer.Renderer
	measurer layout.Measurer
	logger   *zap.Logger
}

// New 创建生成器；r 必须同时实现 layout.Measurer。logger 为空时不输出日志。
func New(r renderer.Renderer, logger *zap.Logger) (*Generator, error) {
	if r == nil {
		return nil, fmt.Errorf("renderer 不能为空")
	}
	m, ok := r.(layout.Measurer)
	if !ok {
		return nil, fmt.Errorf("renderer 未实现文本测量接口")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{renderer: r, measurer: m, logger: logger}, nil
}

// Generate 解析多行文本并生成 PDF。
func (g *Generator) Generate(text string, req Request) (*Output, error) {
	rep := deck.ParseReport(text)
	if len(rep.Dropped) > 0 {
		g.logger.Debug("skipped lines without separator",
			zap.Int("dropped", len(rep.Dropped)),
			zap.Ints("lines", rep.Dropped),
		)
	}
	out, err := g.GenerateDeck(rep.Pairs, req)
	if err != nil {
		return nil, err
	}
	out.Dropped = rep.Dropped
	return out, nil
}

// GenerateKit 渲染预置词包；与自由文本走同一条流水线。
func (g *Generator) GenerateKit(kit *dsl.Kit, req Request) (*Output, error) {
	if kit == nil {
		return nil, fmt.Errorf("kit 不能为空")
	}
	if req.Meta.Title == "" {
		req.Meta.Title = kit.Title()
	}
	if req.Meta.Author == "" {
		req.Meta.Author = kit.Meta()["author"]
	}
	vars := binding.Vars{}
	for k, v := range req.Vars {
		vars[k] = v
	}
	vars["kit"] = map[string]string{"name": kit.Name, "version": kit.Version, "title": kit.Title()}
	req.Vars = vars
	return g.GenerateDeck(kit.Deck(), req)
}

// GenerateDeck 规范化卡片组并生成 PDF；空卡片组返回 ErrNoValidPairs。
func (g *Generator) GenerateDeck(d deck.Deck, req Request) (*Output, error) {
	if len(d) == 0 {
		return nil, ErrNoValidPairs
	}
	mode := req.Mode
	if mode == "" {
		mode = layout.ModeColor
	}
	normalized := d.Normalized()
	geom := layout.Plan()

	vars := binding.Vars{
		"pairs": len(normalized),
		"pages": geom.PageCount(len(normalized)),
		"mode":  string(mode),
	}
	for k, v := range req.Vars {
		vars[k] = v
	}
	meta := req.Meta
	meta.Title = binding.Interpolate(meta.Title, vars)
	meta.Subject = binding.Interpolate(meta.Subject, vars)

	result, err := layout.Build(normalized, layout.BuildOptions{
		Mode:     mode,
		Measurer: g.measurer,
		Meta:     meta,
	})
	if err != nil {
		if errors.Is(err, layout.ErrEmptyDeck) {
			return nil, ErrNoValidPairs
		}
		return nil, fmt.Errorf("布局计算失败: %w", err)
	}

	data, err := g.renderer.Render(result)
	if err != nil {
		return nil, fmt.Errorf("渲染 PDF 失败: %w", err)
	}

	g.logger.Info("flashcards generated",
		zap.Int("pairs", result.PairCount),
		zap.Int("pages", result.PageCount()),
		zap.String("mode", string(mode)),
		zap.Int("bytes", len(data)),
	)
	return &Output{
		PDF:       data,
		PairCount: result.PairCount,
		PageCount: result.PageCount(),
		Layout:    result,
	}, nil
}
