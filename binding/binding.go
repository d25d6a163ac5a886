// Package binding 负责把 ${name} 形式的占位符替换为生成过程中的统计值，例如文档标题模板。
package binding

import (
	"fmt"
	"regexp"
	"strings"
)

var exprPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// Vars 是占位符可引用的值；嵌套的 map 以点号路径访问，如 ${kit.name}。
type Vars map[string]any

// Interpolate 将文本中的 ${path} 替换为 vars 中的值。
// 若 vars 为空或路径不存在，则保留原占位符。
func Interpolate(text string, vars Vars) string {
	if len(vars) == 0 {
		return text
	}
	return exprPattern.ReplaceAllStringFunc(text, func(match string) string {
		path := strings.TrimSpace(match[2 : len(match)-1])
		if path == "" {
			return match
		}
		if val, ok := lookup(vars, path); ok {
			return fmt.Sprint(val)
		}
		return match
	})
}

func lookup(vars Vars, path string) (any, bool) {
	var current any = map[string]any(vars)
	for _, segment := range strings.Split(path, ".") {
		switch c := current.(type) {
		case map[string]any:
			val, ok := c[segment]
			if !ok {
				return nil, false
			}
			current = val
		case Vars:
			val, ok := c[segment]
			if !ok {
				return nil, false
			}
			current = val
		case map[string]string:
			val, ok := c[segment]
			if !ok {
				return nil, false
			}
			current = val
		default:
			return nil, false
		}
	}
	return current, true
}
