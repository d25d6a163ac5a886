package canvasrenderer

import (
	"bytes"
	"fmt"
	"image/color"
	"math"
	"os"
	"strings"
	"sync"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"

	"github.com/ByLCY/wordcards/fonts"
	"github.com/ByLCY/wordcards/layout"
	"github.com/ByLCY/wordcards/renderer"
)

const defaultCreator = "wordcards"

// Renderer draws flashcard layouts via github.com/tdewolff/canvas.
// It also measures text for the layout stage, so both stages use the same font.
type Renderer struct {
	font Resource

	fontMu sync.Mutex
	family *canvas.FontFamily
}

var (
	_ renderer.Renderer = (*Renderer)(nil)
	_ layout.Measurer   = (*Renderer)(nil)
)

// Options configures the canvas renderer.
type Options struct {
	Font Resource // defaults to the embedded Go Regular font
}

// Resource can be provided either by Bytes or by Path.
type Resource struct {
	Bytes []byte
	Path  string
}

// NewRenderer creates a renderer using the embedded font.
func NewRenderer() *Renderer { return NewRendererWithOptions(Options{}) }

// NewRendererWithOptions creates a renderer with an injected font.
func NewRendererWithOptions(opts Options) *Renderer {
	return &Renderer{font: opts.Font}
}

// Render renders the result into a PDF byte slice.
func (r *Renderer) Render(result *layout.Result) ([]byte, error) {
	if result == nil {
		return nil, fmt.Errorf("渲染结果为空")
	}
	if len(result.Pages) == 0 {
		return nil, fmt.Errorf("缺少可渲染的页面")
	}
	family, err := r.ensureFontFamily()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	first := result.Pages[0]
	writer := pdf.New(&buf, layout.ToMM(first.Width), layout.ToMM(first.Height), nil)
	applyMeta(writer, result.Meta)
	for i, page := range result.Pages {
		w, h := layout.ToMM(page.Width), layout.ToMM(page.Height)
		if i > 0 {
			writer.NewPage(w, h)
		}
		c := canvas.New(w, h)
		ctx := canvas.NewContext(c)
		// 布局坐标以左下角为原点，与 canvas 默认坐标系一致
		ctx.SetCoordSystem(canvas.CartesianI)
		for _, card := range page.Cards {
			drawCard(ctx, family, card)
		}
		c.RenderTo(writer)
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("写入 PDF 失败: %w", err)
	}
	return buf.Bytes(), nil
}

func applyMeta(writer *pdf.PDF, meta layout.DocumentMeta) {
	creator := meta.Creator
	if creator == "" {
		creator = defaultCreator
	}
	writer.SetInfo(meta.Title, meta.Subject, strings.Join(meta.Keywords, ", "), meta.Author, creator)
}

// drawCard 先画带边框的矩形，再在基线位置绘制已缩放的文本。
func drawCard(ctx *canvas.Context, family *canvas.FontFamily, card layout.Card) {
	ctx.SetFillColor(colorFromLayout(card.Fill))
	ctx.SetStrokeColor(colorFromLayout(card.Border))
	ctx.SetStrokeWidth(layout.ToMM(card.StrokeWidth))
	ctx.DrawPath(layout.ToMM(card.X), layout.ToMM(card.Y), canvas.Rectangle(layout.ToMM(card.Width), layout.ToMM(card.Height)))

	tp := card.Text
	if tp.Content == "" || tp.FontSize <= 0 {
		return
	}
	face := family.Face(tp.FontSize, canvas.Black, canvas.FontRegular, canvas.FontNormal)
	line := canvas.NewTextLine(face, tp.Content, canvas.Left)
	ctx.DrawText(layout.ToMM(tp.X), layout.ToMM(tp.Baseline), line)
}

// TextWidth 实现 layout.Measurer：fontSize 为 pt，返回 pt。
func (r *Renderer) TextWidth(content string, fontSize float64) float64 {
	face, err := r.face(fontSize)
	if err != nil {
		return 0
	}
	return layout.ToPT(face.TextWidth(content))
}

// TextHeight 实现 layout.Measurer：返回字体上升部与下降部之和（pt）。
func (r *Renderer) TextHeight(fontSize float64) float64 {
	face, err := r.face(fontSize)
	if err != nil {
		return fontSize
	}
	m := face.Metrics()
	return layout.ToPT(m.Ascent + math.Abs(m.Descent))
}

// TextDescent 实现 layout.Measurer：返回基线以下的下降部高度（pt）。
func (r *Renderer) TextDescent(fontSize float64) float64 {
	face, err := r.face(fontSize)
	if err != nil {
		return 0
	}
	return layout.ToPT(math.Abs(face.Metrics().Descent))
}

func (r *Renderer) face(sizePt float64) (*canvas.FontFace, error) {
	family, err := r.ensureFontFamily()
	if err != nil {
		return nil, err
	}
	return family.Face(sizePt, canvas.Black, canvas.FontRegular, canvas.FontNormal), nil
}

func (r *Renderer) ensureFontFamily() (*canvas.FontFamily, error) {
	r.fontMu.Lock()
	defer r.fontMu.Unlock()

	if r.family != nil {
		return r.family, nil
	}
	data, err := r.loadFontBytes()
	if err != nil {
		return nil, err
	}
	family := canvas.NewFontFamily("wordcards")
	if err := family.LoadFont(data, 0, canvas.FontRegular); err != nil {
		return nil, fmt.Errorf("加载字体失败: %w", err)
	}
	r.family = family
	return family, nil
}

func (r *Renderer) loadFontBytes() ([]byte, error) {
	if len(r.font.Bytes) > 0 {
		return r.font.Bytes, nil
	}
	if r.font.Path != "" {
		data, err := os.ReadFile(r.font.Path)
		if err != nil {
			return nil, fmt.Errorf("读取字体 %s 失败: %w", r.font.Path, err)
		}
		return data, nil
	}
	return fonts.Load(fonts.Regular)
}

func colorFromLayout(c layout.Color) color.Color {
	return canvas.RGBA(float64(c.R)/255.0, float64(c.G)/255.0, float64(c.B)/255.0, 1.0)
}
