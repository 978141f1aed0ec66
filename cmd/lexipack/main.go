// lexipack - dictionary-substitution text codec CLI
//
// Usage:
//
//	lexipack load --db FILE --lang CODE WORDLIST...   Load wordlist files
//	lexipack load --db FILE --manifest FILE           Load from a YAML manifest
//	lexipack compress --db FILE --lang CODE [TEXT]    Compress to hex
//	lexipack decompress --db FILE [HEX]               Decompress from hex
//	lexipack demo --db FILE                           Run multilingual demo vectors
//	lexipack stats --db FILE [--chart FILE]           Report demo compression ratios
//	lexipack version                                  Print version info
//
// If TEXT/HEX is not given, input is read from stdin. Wordlist files ending
// in .gz are decompressed on the fly.
package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	"gopkg.in/yaml.v3"

	"github.com/Neumenon/lexipack/lexipack"
	"github.com/Neumenon/lexipack/store"
)

const version = "1.0.0"

// Manifest maps language codes to wordlist paths.
type Manifest struct {
	Wordlists map[string]string `yaml:"wordlists"`
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "load":
		cmdLoad(args)
	case "compress":
		cmdCompress(args)
	case "decompress":
		cmdDecompress(args)
	case "demo":
		cmdDemo(args)
	case "stats":
		cmdStats(args)
	case "version":
		fmt.Printf("lexipack %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "lexipack: unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

// options holds the flags shared by the subcommands; rest carries the
// positional arguments.
type options struct {
	db       string
	lang     string
	manifest string
	chartOut string
	rest     []string
}

func parseArgs(args []string) options {
	opts := options{db: "multilang.db"}
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--db" && i+1 < len(args):
			i++
			opts.db = args[i]
		case strings.HasPrefix(arg, "--db="):
			opts.db = strings.TrimPrefix(arg, "--db=")
		case arg == "--lang" && i+1 < len(args):
			i++
			opts.lang = args[i]
		case strings.HasPrefix(arg, "--lang="):
			opts.lang = strings.TrimPrefix(arg, "--lang=")
		case arg == "--manifest" && i+1 < len(args):
			i++
			opts.manifest = args[i]
		case strings.HasPrefix(arg, "--manifest="):
			opts.manifest = strings.TrimPrefix(arg, "--manifest=")
		case arg == "--chart" && i+1 < len(args):
			i++
			opts.chartOut = args[i]
		case strings.HasPrefix(arg, "--chart="):
			opts.chartOut = strings.TrimPrefix(arg, "--chart=")
		case strings.HasPrefix(arg, "--"):
			fatal("unknown flag: %s", arg)
		default:
			opts.rest = append(opts.rest, arg)
		}
	}
	return opts
}

func cmdLoad(args []string) {
	opts := parseArgs(args)

	db, err := store.Open(opts.db)
	if err != nil {
		fatal("%v", err)
	}
	defer db.Close()

	if opts.manifest != "" {
		loadManifest(db, opts.manifest)
		return
	}

	if opts.lang == "" || len(opts.rest) == 0 {
		fatal("load: need --lang and at least one wordlist file (or --manifest)")
	}
	lang, ok := lexipack.ParseLanguage(opts.lang)
	if !ok {
		fatal("load: unknown language: %s", opts.lang)
	}
	for _, path := range opts.rest {
		n, err := store.LoadFile(db, path, lang)
		if err != nil {
			fatal("load %s: %v", path, err)
		}
		fmt.Printf("loaded %d entries from %s (%s)\n", n, path, lang)
	}
}

func loadManifest(db *store.DB, path string) {
	raw, err := os.ReadFile(path)
	if err != nil {
		fatal("read manifest: %v", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		fatal("parse manifest: %v", err)
	}

	// Stable load order.
	codes := make([]string, 0, len(m.Wordlists))
	for code := range m.Wordlists {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	for _, code := range codes {
		lang, ok := lexipack.ParseLanguage(code)
		if !ok {
			fatal("manifest: unknown language: %s", code)
		}
		n, err := store.LoadFile(db, m.Wordlists[code], lang)
		if err != nil {
			fatal("load %s: %v", m.Wordlists[code], err)
		}
		fmt.Printf("loaded %d entries from %s (%s)\n", n, m.Wordlists[code], lang)
	}
}

func cmdCompress(args []string) {
	opts := parseArgs(args)
	if opts.lang == "" {
		fatal("compress: --lang is required")
	}
	lang, ok := lexipack.ParseLanguage(opts.lang)
	if !ok {
		fatal("compress: unknown language: %s", opts.lang)
	}

	text := strings.Join(opts.rest, " ")
	if text == "" {
		text = readStdin()
	}

	codec := openCodec(opts.db)
	frame, err := codec.Compress(text, lang)
	if err != nil {
		fatal("compress: %v", err)
	}
	fmt.Println(hex.EncodeToString(frame))
}

func cmdDecompress(args []string) {
	opts := parseArgs(args)

	encoded := ""
	if len(opts.rest) > 0 {
		encoded = opts.rest[0]
	} else {
		encoded = readStdin()
	}
	frame, err := hex.DecodeString(strings.TrimSpace(encoded))
	if err != nil {
		fatal("decompress: bad hex input: %v", err)
	}

	codec := openCodec(opts.db)
	text, err := codec.Decompress(frame)
	if err != nil {
		fatal("decompress: %v", err)
	}
	fmt.Println(text)
}

// demoVectors exercises every supported script class: space-delimited
// Latin/Cyrillic text and per-character CJK/Kana.
var demoVectors = []struct {
	text string
	lang lexipack.Language
}{
	{"hi", lexipack.EN},
	{"hello world", lexipack.EN},
	{"the quick brown fox jumps over the lazy dog", lexipack.EN},
	{"compression algorithms are fascinating because they reduce data size while preserving information", lexipack.EN},
	{"Привет мир как дела", lexipack.RU},
	{"Это тест компрессии", lexipack.RU},
	{"你好世界", lexipack.ZH},
	{"这是一个测试", lexipack.ZH},
	{"こんにちは世界", lexipack.JA},
	{"これはテストです", lexipack.JA},
	{"Hola mundo", lexipack.ES},
	{"La compresión es fascinante", lexipack.ES},
	{"Bonjour le monde", lexipack.FR},
	{"Ciao mondo", lexipack.IT},
	{"Olá mundo", lexipack.PT},
	{"Hallo Welt", lexipack.DE},
}

func cmdDemo(args []string) {
	opts := parseArgs(args)
	codec := openCodec(opts.db)

	for i, v := range demoVectors {
		frame, err := codec.Compress(v.text, v.lang)
		if err != nil {
			fatal("demo: compress %q: %v", v.text, err)
		}
		text, err := codec.Decompress(frame)
		if err != nil {
			fatal("demo: decompress %q: %v", v.text, err)
		}
		fmt.Printf("Test %d (%s): %s\n", i+1, v.lang, hex.EncodeToString(frame))
		fmt.Printf("Original: %s\n", v.text)
		fmt.Printf("Decompressed: %s\n\n", text)
	}
}

func cmdStats(args []string) {
	opts := parseArgs(args)
	codec := openCodec(opts.db)

	xvals := make([]float64, 0, len(demoVectors))
	yvals := make([]float64, 0, len(demoVectors))

	fmt.Printf("%-5s %-6s %8s %8s %7s\n", "test", "lang", "in", "out", "ratio")
	for i, v := range demoVectors {
		frame, err := codec.Compress(v.text, v.lang)
		if err != nil {
			fatal("stats: compress %q: %v", v.text, err)
		}
		in := len(v.text)
		out := len(frame)
		ratio := float64(out) / float64(in)
		fmt.Printf("%-5d %-6s %8d %8d %7.3f\n", i+1, v.lang, in, out, ratio)
		xvals = append(xvals, float64(i+1))
		yvals = append(yvals, ratio)
	}

	if opts.chartOut != "" {
		if err := renderRatioChart(opts.chartOut, xvals, yvals); err != nil {
			fatal("stats: %v", err)
		}
		fmt.Printf("wrote %s\n", opts.chartOut)
	}
}

// renderRatioChart writes an SVG of compressed/original ratio per demo test.
func renderRatioChart(path string, xvals, yvals []float64) error {
	graph := chart.Chart{
		XAxis: chart.XAxis{Name: "test"},
		YAxis: chart.YAxis{Name: "ratio"},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Style: chart.Style{
					DotWidth: 3,
				},
				XValues: xvals,
				YValues: yvals,
			},
		},
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart: %w", err)
	}
	defer f.Close()
	if err := graph.Render(chart.SVG, f); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}

// openCodec opens the dictionary DB with a read-through cache in front.
func openCodec(path string) *lexipack.Codec {
	db, err := store.Open(path)
	if err != nil {
		fatal("%v", err)
	}
	cached, err := store.NewCached(db, 0)
	if err != nil {
		fatal("%v", err)
	}
	return lexipack.New(cached)
}

func readStdin() string {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		fatal("read stdin: %v", err)
	}
	return strings.TrimRight(string(data), "\n")
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `lexipack - dictionary-substitution text codec

Usage:
  lexipack load --db FILE --lang CODE WORDLIST...
  lexipack load --db FILE --manifest FILE
  lexipack compress --db FILE --lang CODE [TEXT]
  lexipack decompress --db FILE [HEX]
  lexipack demo --db FILE
  lexipack stats --db FILE [--chart FILE]
  lexipack version

Languages: de en es fr it ja pt ru zh ar fa ko nl po th vi`)
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "lexipack: "+format+"\n", args...)
	os.Exit(1)
}
