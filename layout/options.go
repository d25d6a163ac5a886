package layout

// BuildOptions 配置布局阶段所需的依赖，例如测量文本宽度的字体后端。
type BuildOptions struct {
	Mode     Mode
	Measurer Measurer
	Meta     DocumentMeta
}

// Measurer 以 pt 为单位测量文本。宽度需随字号线性变化，缩放只测量一次。
type Measurer interface {
	TextWidth(content string, fontSize float64) float64
	TextHeight(fontSize float64) float64
	// TextDescent 返回基线以下部分的高度（正值）。
	TextDescent(fontSize float64) float64
}
