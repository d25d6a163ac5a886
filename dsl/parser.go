package dsl

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/ByLCY/wordcards/deck"
)

var (
	kitLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r]+`},
		{Name: "Newline", Pattern: `\n+`},
		{Name: "BlockComment", Pattern: `/\*[^*]*\*+(?:[^/*][^*]*\*+)*/`},
		{Name: "LineComment", Pattern: `//[^\n]*`},
		{Name: "HashComment", Pattern: `#[^\n]*`},
		{Name: "String", Pattern: `"(?:\\.|[^"])*"`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_.-]*`},
		{Name: "Symbol", Pattern: `[:;\-]`},
		{Name: "LBrace", Pattern: `{`},
		{Name: "RBrace", Pattern: `}`},
	})

	kitParser = participle.MustBuild[Kit](
		participle.Lexer(kitLexer),
		participle.Elide("Whitespace", "LineComment", "BlockComment", "HashComment"),
	)
)

// Kit is the root AST node for a preset word kit file.
type Kit struct {
	Pos      lexer.Position `parser:"" json:"-"`
	Name     string         `parser:"Newline* 'kit' @Ident"`
	Version  string         `parser:"@Ident?"`
	Sections []*Section     `parser:"'{' Newline* ( @@ Newline* )* '}' Newline*"`
}

// Section is either a meta block or a pairs block.
type Section struct {
	Meta  *MetaSection  `parser:"  @@"`
	Pairs *PairsSection `parser:"| @@"`
}

// Kind returns the human-readable section type.
func (s *Section) Kind() string {
	switch {
	case s == nil:
		return "unknown"
	case s.Meta != nil:
		return "meta"
	case s.Pairs != nil:
		return "pairs"
	default:
		return "unknown"
	}
}

// MetaSection captures metadata assignments.
type MetaSection struct {
	Entries []*Assignment `parser:"'meta' '{' Newline* ( @@ ( ';' | Newline )* )* '}'"`
}

// PairsSection lists word pairs in declaration order.
type PairsSection struct {
	Entries []*Entry `parser:"'pairs' '{' Newline* ( @@ ( ';' | Newline )* )* '}'"`
}

// Assignment uses colon syntax (key: value).
type Assignment struct {
	Key   string `parser:"@Ident ':'"`
	Value Scalar `parser:"( @String | @Ident )"`
}

// Entry is one pair: "source": "target" or "source" - "target".
type Entry struct {
	Pos    lexer.Position `parser:"" json:"-"`
	Source StringLiteral  `parser:"@String"`
	Sep    string         `parser:"@( ':' | '-' )"`
	Target StringLiteral  `parser:"@String"`
}

// StringLiteral unquotes Go-style strings on capture.
type StringLiteral string

// Capture implements participle.Capture.
func (s *StringLiteral) Capture(values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("string literal capture requires value")
	}
	val, err := strconv.Unquote(values[0])
	if err != nil {
		return err
	}
	*s = StringLiteral(val)
	return nil
}

// Scalar accepts either a quoted string or a bare identifier.
type Scalar string

// Capture implements participle.Capture.
func (s *Scalar) Capture(values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("scalar capture requires value")
	}
	raw := values[0]
	if strings.HasPrefix(raw, `"`) {
		val, err := strconv.Unquote(raw)
		if err != nil {
			return err
		}
		*s = Scalar(val)
		return nil
	}
	*s = Scalar(raw)
	return nil
}

// ParseKit parses kit content from an io.Reader.
func ParseKit(r io.Reader) (*Kit, error) {
	return kitParser.Parse("", r)
}

// ParseKitString parses kit content from a string.
func ParseKitString(input string) (*Kit, error) {
	return kitParser.ParseString("", input)
}

// Meta 合并全部 meta 段，后出现的键覆盖先出现的。
func (k *Kit) Meta() map[string]string {
	out := map[string]string{}
	for _, s := range k.Sections {
		if s.Meta == nil {
			continue
		}
		for _, a := range s.Meta.Entries {
			out[a.Key] = string(a.Value)
		}
	}
	return out
}

// Title 返回 meta 中的 title，缺省时使用 kit 名称。
func (k *Kit) Title() string {
	if t := strings.TrimSpace(k.Meta()["title"]); t != "" {
		return t
	}
	return k.Name
}

// Deck 按声明顺序返回全部词对，两侧去空白；空字符串照样保留为空白卡片。
func (k *Kit) Deck() deck.Deck {
	var d deck.Deck
	for _, s := range k.Sections {
		if s.Pairs == nil {
			continue
		}
		for _, e := range s.Pairs.Entries {
			src := strings.TrimSpace(string(e.Source))
			tgt := strings.TrimSpace(string(e.Target))
			d = append(d, deck.WordPair{Source: src, Target: tgt})
		}
	}
	return d
}
