package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/ByLCY/wordcards/config"
	"github.com/ByLCY/wordcards/deck"
	"github.com/ByLCY/wordcards/dsl"
	"github.com/ByLCY/wordcards/generator"
	"github.com/ByLCY/wordcards/layout"
	"github.com/ByLCY/wordcards/pdfcheck"
	canvasrenderer "github.com/ByLCY/wordcards/renderer/canvas"
	"github.com/ByLCY/wordcards/server"
)

type options struct {
	input    string
	output   string
	mode     string
	debug    string
	validate bool
	strict   bool
}

func main() {
	configPath := flag.String("config", "", "YAML 配置文件路径")
	input := flag.String("in", "", "词对文本文件路径（每行 \"原文: 译文\"），.kit 结尾按预置词包解析；为空时读取标准输入")
	output := flag.String("out", "", "PDF 输出路径（默认取配置）")
	mode := flag.String("mode", "", "打印模式：color 或 bw（默认取配置）")
	debug := flag.String("debug", "", "布局调试 JSON 输出路径")
	validate := flag.Bool("validate", false, "用 pdfcpu 校验生成的 PDF")
	strict := flag.Bool("strict", false, "存在无法解析的行时报错")
	serve := flag.Bool("serve", false, "以 HTTP 服务方式运行")
	addr := flag.String("addr", "", "HTTP 监听地址，如 :8080（默认取配置）")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}
	applyFlags(cfg, *mode, *output, *addr)
	printMode, err := cfg.PrintMode()
	if err != nil {
		logger.Fatal("Invalid printer mode", zap.Error(err))
	}

	gen, err := generator.New(canvasrenderer.NewRenderer(), logger)
	if err != nil {
		logger.Fatal("Failed to create generator", zap.Error(err))
	}

	if *serve {
		srv := server.New(gen, logger, printMode, cfg.Document)
		if err := srv.Start(cfg.Addr); err != nil {
			logger.Fatal("HTTP server stopped", zap.Error(err))
		}
		return
	}

	opts := options{input: *input, output: cfg.Output, debug: *debug, validate: *validate, strict: *strict}
	out, err := run(gen, opts, generator.Request{Mode: printMode, Meta: cfg.Document})
	if errors.Is(err, generator.ErrNoValidPairs) {
		logger.Fatal("No valid pairs found; expected lines like \"cat: kedi\" or \"cat - kedi\"")
	}
	if err != nil {
		logger.Fatal("Failed to generate PDF", zap.Error(err))
	}
	logger.Info("PDF generated",
		zap.String("path", cfg.Output),
		zap.Int("pairs", out.PairCount),
		zap.Int("pages", 2*out.PageCount),
	)
}

// applyFlags 用非空的命令行参数覆盖配置（文件与环境变量之上）。
func applyFlags(cfg *config.Config, mode, output, addr string) {
	if mode != "" {
		cfg.Mode = mode
	}
	if output != "" {
		cfg.Output = output
	}
	if addr != "" {
		cfg.Addr = addr
	}
}

// run 串联读取、生成、校验与写文件。
func run(gen *generator.Generator, opts options, req generator.Request) (*generator.Output, error) {
	out, err := generate(gen, opts.input, req)
	if err != nil {
		return nil, err
	}
	if opts.strict && len(out.Dropped) > 0 {
		return nil, fmt.Errorf("存在无法解析的行: %v", out.Dropped)
	}
	if opts.validate {
		if err := pdfcheck.ExpectPages(out.PDF, 2*out.PageCount); err != nil {
			return nil, err
		}
	}
	if opts.debug != "" {
		if err := writeDebug(out.Layout, opts.debug); err != nil {
			return nil, err
		}
	}
	if err := os.MkdirAll(filepath.Dir(opts.output), 0o755); err != nil {
		return nil, fmt.Errorf("创建输出目录失败: %w", err)
	}
	if err := os.WriteFile(opts.output, out.PDF, 0o644); err != nil {
		return nil, fmt.Errorf("写入 PDF 文件失败: %w", err)
	}
	return out, nil
}

func generate(gen *generator.Generator, input string, req generator.Request) (*generator.Output, error) {
	if strings.HasSuffix(strings.ToLower(input), ".kit") {
		file, err := os.Open(input)
		if err != nil {
			return nil, fmt.Errorf("无法打开词包文件 %s: %w", input, err)
		}
		defer file.Close()
		kit, err := dsl.ParseKit(file)
		if err != nil {
			return nil, fmt.Errorf("解析词包失败: %w", err)
		}
		req.Meta.Title = ""
		return gen.GenerateKit(kit, req)
	}

	src := os.Stdin
	if input != "" {
		file, err := os.Open(input)
		if err != nil {
			return nil, fmt.Errorf("无法打开词对文件 %s: %w", input, err)
		}
		defer file.Close()
		src = file
	}
	rep, err := deck.ParseReader(src)
	if err != nil {
		return nil, err
	}
	out, err := gen.GenerateDeck(rep.Pairs, req)
	if err != nil {
		return nil, err
	}
	out.Dropped = rep.Dropped
	return out, nil
}

func writeDebug(result *layout.Result, debugPath string) error {
	if err := os.MkdirAll(filepath.Dir(debugPath), 0o755); err != nil {
		return fmt.Errorf("创建调试目录失败: %w", err)
	}
	if err := layout.WriteDebugJSON(result, debugPath); err != nil {
		return fmt.Errorf("输出调试 JSON 失败: %w", err)
	}
	return nil
}
