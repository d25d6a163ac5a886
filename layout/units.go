package layout

// 布局统一使用 pt（PDF 点）；canvas 渲染器以 mm 为单位，在边界处换算。

// Conversion constants between pt and mm.
const (
	PtToMm = 0.352777
	MmToPt = 1.0 / PtToMm
)

// ToMM converts points to millimeters.
func ToMM(pt float64) float64 { return pt * PtToMm }

// ToPT converts millimeters to points.
func ToPT(mm float64) float64 { return mm * MmToPt }
