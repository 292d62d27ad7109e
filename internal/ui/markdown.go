package ui

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/wordwrap"
)

// Compiled regex patterns for inline markdown
var (
	boldPattern       = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	inlineCodePattern = regexp.MustCompile("`([^`]+)`")
)

// highlightCode applies syntax highlighting to code using chroma
func highlightCode(code, language string) string {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get("monokai")
	if style == nil {
		style = styles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return code
	}

	return buf.String()
}

// renderInline applies bold and inline-code formatting to a line
func renderInline(line string) string {
	line = inlineCodePattern.ReplaceAllStringFunc(line, func(match string) string {
		code := inlineCodePattern.FindStringSubmatch(match)[1]
		return MarkdownInlineCodeStyle.Render(code)
	})
	line = boldPattern.ReplaceAllStringFunc(line, func(match string) string {
		text := boldPattern.FindStringSubmatch(match)[1]
		return MarkdownBoldStyle.Render(text)
	})
	return line
}

// wrapText wraps text to the specified width, handling ANSI escape codes
func wrapText(text string, width int) string {
	if width <= 0 {
		return text
	}
	return wordwrap.String(text, width)
}

// RenderContent renders message/post body text: fenced code blocks are
// syntax highlighted, headers emphasized, everything else wrapped with
// inline formatting applied.
func RenderContent(content string, width int) string {
	var out []string
	var codeLines []string
	codeLang := ""
	inCode := false

	flushCode := func() {
		code := strings.Join(codeLines, "\n")
		highlighted := highlightCode(code, codeLang)
		for _, l := range strings.Split(strings.TrimRight(highlighted, "\n"), "\n") {
			// Highlighted lines keep their escapes; hard-cut instead of wrap.
			out = append(out, ansi.Truncate(l, width, ""))
		}
		codeLines = nil
	}

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") {
			if inCode {
				flushCode()
				inCode = false
			} else {
				inCode = true
				codeLang = strings.TrimPrefix(trimmed, "```")
			}
			continue
		}
		if inCode {
			codeLines = append(codeLines, line)
			continue
		}
		if strings.HasPrefix(trimmed, "#") {
			out = append(out, MarkdownHeaderStyle.Render(strings.TrimLeft(trimmed, "# ")))
			continue
		}
		out = append(out, wrapText(renderInline(line), width))
	}
	if inCode {
		flushCode()
	}

	return strings.Join(out, "\n")
}
