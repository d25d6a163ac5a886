// Package pdfcheck validates generated documents with pdfcpu before they are handed out.
package pdfcheck

import (
	"bytes"
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

func init() {
	// pdfcpu 默认会在用户目录写配置文件
	api.DisableConfigDir()
}

// Info summarizes a validated PDF.
type Info struct {
	Pages int
	Bytes int
}

// Inspect validates data in relaxed mode and returns its page count.
func Inspect(data []byte) (Info, error) {
	if len(data) == 0 {
		return Info{}, fmt.Errorf("PDF 内容为空")
	}
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	if err := api.Validate(bytes.NewReader(data), conf); err != nil {
		return Info{}, fmt.Errorf("PDF 校验失败: %w", err)
	}
	pages, err := api.PageCount(bytes.NewReader(data), conf)
	if err != nil {
		return Info{}, fmt.Errorf("读取页数失败: %w", err)
	}
	return Info{Pages: pages, Bytes: len(data)}, nil
}

// ExpectPages validates data and checks that it holds want pages.
func ExpectPages(data []byte, want int) error {
	info, err := Inspect(data)
	if err != nil {
		return err
	}
	if info.Pages != want {
		return fmt.Errorf("页数不符: got=%d want=%d", info.Pages, want)
	}
	return nil
}
