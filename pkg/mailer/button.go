package mailer

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// Button is an inline AST node for a call-to-action link.
type Button struct {
	ast.BaseInline
	Label []byte
	URL   []byte
}

// KindButton identifies Button nodes in the goldmark AST.
var KindButton = ast.NewNodeKind("Button")

func (b *Button) Kind() ast.NodeKind { return KindButton }

func (b *Button) Dump(source []byte, level int) {
	ast.DumpHelper(b, source, level, nil, nil)
}

// The inline syntax is [!button|Label](URL), all on one line.
const buttonOpen = "[!button|"

type buttonParser struct{}

func (buttonParser) Trigger() []byte { return []byte{'['} }

func (buttonParser) Parse(_ ast.Node, block text.Reader, _ parser.Context) ast.Node {
	line, _ := block.PeekLine()
	if !bytes.HasPrefix(line, []byte(buttonOpen)) {
		return nil
	}

	rest := line[len(buttonOpen):]
	sep := bytes.IndexByte(rest, ']')
	if sep < 0 || sep+1 >= len(rest) || rest[sep+1] != '(' {
		return nil
	}

	target := rest[sep+2:]
	end := bytes.IndexByte(target, ')')
	if end < 0 {
		return nil
	}

	block.Advance(len(buttonOpen) + sep + 2 + end + 1)
	return &Button{Label: rest[:sep], URL: target[:end]}
}

// buttonStyle is inlined on the anchor because many email clients strip
// <style> blocks; the btn class remains for layouts that keep theirs.
const buttonStyle = `display:inline-block;padding:12px 24px;background-color:#1a73e8;color:#ffffff;text-decoration:none;border-radius:4px`

type buttonRenderer struct{}

func (r buttonRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindButton, r.render)
}

func (buttonRenderer) render(w util.BufWriter, _ []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}

	b := node.(*Button)
	_, _ = w.WriteString(`<a href="`)
	_, _ = w.Write(util.EscapeHTML(b.URL))
	_, _ = w.WriteString(`" class="btn" style="` + buttonStyle + `">`)
	_, _ = w.Write(util.EscapeHTML(b.Label))
	_, _ = w.WriteString(`</a>`)
	return ast.WalkContinue, nil
}

// Buttons returns the goldmark extension implementing the button syntax.
func Buttons() goldmark.Extender { return buttonExtension{} }

type buttonExtension struct{}

func (buttonExtension) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithInlineParsers(
		util.Prioritized(buttonParser{}, 50),
	))
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(buttonRenderer{}, 50),
	))
}
