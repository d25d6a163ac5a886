package deck

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// hyphenSeparator 匹配两侧带空白的连字符，例如 "cat - kedi"。
var hyphenSeparator = regexp.MustCompile(`\s+-\s+`)

// Report 记录一次解析的结果，Dropped 为被丢弃行的行号（从 1 开始，不含空行）。
type Report struct {
	Pairs   Deck
	Dropped []int
}

// Parse 将多行文本解析为词对，无法识别分隔符的行被静默丢弃。
func Parse(text string) Deck {
	return ParseReport(text).Pairs
}

// ParseReport 与 Parse 规则相同，额外返回被丢弃的行号，便于调用方自行做严格校验。
func ParseReport(text string) Report {
	var rep Report
	for i, line := range strings.Split(text, "\n") {
		pair, ok, skip := parseLine(line)
		if skip {
			continue
		}
		if !ok {
			rep.Dropped = append(rep.Dropped, i+1)
			continue
		}
		rep.Pairs = append(rep.Pairs, pair)
	}
	return rep
}

// ParseReader 从 r 读取全部内容后解析。
func ParseReader(r io.Reader) (Report, error) {
	var b strings.Builder
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		b.WriteString(sc.Text())
		b.WriteByte('\n')
	}
	if err := sc.Err(); err != nil {
		return Report{}, fmt.Errorf("读取词对文本失败: %w", err)
	}
	return ParseReport(b.String()), nil
}

// ParsePair 解析单行；ok 为 false 表示该行没有可用的词对。
func ParsePair(line string) (WordPair, bool) {
	pair, ok, _ := parseLine(line)
	return pair, ok
}

func parseLine(line string) (pair WordPair, ok bool, skip bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return WordPair{}, false, true
	}
	line = hyphenSeparator.ReplaceAllString(line, ": ")
	source, target, found := strings.Cut(line, ":")
	if !found {
		return WordPair{}, false, false
	}
	// 分隔符任一侧为空时仍保留该词对，对应卡片留白
	return WordPair{Source: strings.TrimSpace(source), Target: strings.TrimSpace(target)}, true, false
}
