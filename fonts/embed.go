package fonts

import (
	"fmt"
	"strings"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// 内置字体名。Go 字体覆盖拉丁字母，卡片文本会先规范化为 ASCII。
const (
	Regular = "go-regular"
	Bold    = "go-bold"
	Mono    = "go-mono"
)

var builtin = map[string][]byte{
	Regular: goregular.TTF,
	Bold:    gobold.TTF,
	Mono:    gomono.TTF,
}

// Load 返回内置字体的字节数据，name 可写为 "embed:go-regular" 或直接 "go-regular"。
func Load(name string) ([]byte, error) {
	clean := strings.TrimPrefix(name, "embed:")
	data, ok := builtin[clean]
	if !ok {
		return nil, fmt.Errorf("读取内置字体 %s 失败: 未知字体", name)
	}
	return data, nil
}
