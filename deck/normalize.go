package deck

import (
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// asciiFallback 把内置字体无法可靠显示的字符映射到基础拉丁字母。
// 所有目标值都是 ASCII 且不是表中的键，因此规范化是幂等的。
var asciiFallback = map[rune]rune{
	// Turkish
	'ç': 'c', 'Ç': 'C',
	'ğ': 'g', 'Ğ': 'G',
	'ı': 'i', 'İ': 'I',
	'ö': 'o', 'Ö': 'O',
	'ş': 's', 'Ş': 'S',
	'ü': 'u', 'Ü': 'U',
	'â': 'a', 'Â': 'A',
	'î': 'i', 'Î': 'I',
	'û': 'u', 'Û': 'U',
	// Western European
	'á': 'a', 'à': 'a', 'ä': 'a', 'å': 'a', 'ã': 'a',
	'Á': 'A', 'À': 'A', 'Ä': 'A', 'Å': 'A', 'Ã': 'A',
	'é': 'e', 'è': 'e', 'ê': 'e', 'ë': 'e',
	'É': 'E', 'È': 'E', 'Ê': 'E', 'Ë': 'E',
	'í': 'i', 'ì': 'i', 'ï': 'i',
	'Í': 'I', 'Ì': 'I', 'Ï': 'I',
	'ó': 'o', 'ò': 'o', 'ô': 'o', 'õ': 'o', 'ø': 'o',
	'Ó': 'O', 'Ò': 'O', 'Ô': 'O', 'Õ': 'O', 'Ø': 'O',
	'ú': 'u', 'ù': 'u',
	'Ú': 'U', 'Ù': 'U',
	'ñ': 'n', 'Ñ': 'N',
	'ý': 'y', 'ÿ': 'y', 'Ý': 'Y',
	'ß': 's',
	// Central European
	'č': 'c', 'Č': 'C', 'ć': 'c', 'Ć': 'C',
	'ę': 'e', 'Ę': 'E', 'ě': 'e', 'Ě': 'E',
	'ł': 'l', 'Ł': 'L',
	'ń': 'n', 'Ń': 'N', 'ň': 'n', 'Ň': 'N',
	'ř': 'r', 'Ř': 'R',
	'ś': 's', 'Ś': 'S', 'š': 's', 'Š': 'S',
	'ź': 'z', 'Ź': 'Z', 'ż': 'z', 'Ż': 'Z', 'ž': 'z', 'Ž': 'Z',
	'ą': 'a', 'Ą': 'A',
}

func fallback(r rune) rune {
	if m, ok := asciiFallback[r]; ok {
		return m
	}
	return r
}

// Normalizer 返回执行同一映射的 transform.Transformer，可直接包裹 io.Reader。
func Normalizer() transform.Transformer {
	return runes.Map(fallback)
}

// Normalize 将 s 中表内的字符替换为 ASCII 回退字符，表外字符原样保留。
func Normalize(s string) string {
	out, _, err := transform.String(Normalizer(), s)
	if err != nil {
		// runes.Map 对合法与非法 UTF-8 都不会返回错误，保底返回原串
		return s
	}
	return out
}
