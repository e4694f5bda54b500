package mailer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark"
)

func renderButtons(t *testing.T, source string) string {
	t.Helper()

	md := goldmark.New(goldmark.WithExtensions(Buttons()))

	var buf bytes.Buffer
	require.NoError(t, md.Convert([]byte(source), &buf))
	return buf.String()
}

func TestButtonSyntax(t *testing.T) {
	t.Parallel()

	t.Run("renders an inline styled anchor", func(t *testing.T) {
		t.Parallel()

		out := renderButtons(t, `[!button|Click Me](https://example.com)`)
		require.Contains(t, out, `<a href="https://example.com" class="btn" style="`+buttonStyle+`">Click Me</a>`)
	})

	t.Run("escapes label and URL", func(t *testing.T) {
		t.Parallel()

		out := renderButtons(t, `[!button|<script>alert("x")</script>](https://example.com?a=1&b=2)`)
		require.NotContains(t, out, "<script>")
		require.Contains(t, out, "&lt;script&gt;")
		require.Contains(t, out, "a=1&amp;b=2")
	})

	t.Run("keeps surrounding markdown intact", func(t *testing.T) {
		t.Parallel()

		out := renderButtons(t, "# Welcome\n\nPlease verify your email:\n\n[!button|Verify Email](https://example.com/verify)\n\nThank you!")
		require.Contains(t, out, "<h1>Welcome</h1>")
		require.Contains(t, out, `<a href="https://example.com/verify" class="btn"`)
		require.Contains(t, out, "Thank you!")
	})

	t.Run("renders every button in the document", func(t *testing.T) {
		t.Parallel()

		out := renderButtons(t, "[!button|Accept](https://example.com/accept)\n[!button|Decline](https://example.com/decline)")
		require.Contains(t, out, `href="https://example.com/accept"`)
		require.Contains(t, out, `href="https://example.com/decline"`)
	})

	t.Run("leaves regular links alone", func(t *testing.T) {
		t.Parallel()

		out := renderButtons(t, `[Regular Link](https://example.com)`)
		require.NotContains(t, out, `class="btn"`)
		require.Contains(t, out, `<a href="https://example.com">Regular Link</a>`)
	})

	t.Run("allows an empty label", func(t *testing.T) {
		t.Parallel()

		out := renderButtons(t, `[!button|](https://example.com)`)
		require.Contains(t, out, `class="btn"`)
		require.Contains(t, out, `href="https://example.com"`)
	})

	t.Run("escapes an ampersand in the label", func(t *testing.T) {
		t.Parallel()

		out := renderButtons(t, `[!button|Accept & Continue](https://example.com)`)
		require.Contains(t, out, "Accept &amp; Continue")
	})
}

func TestButtonSyntaxIgnoresMalformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		source string
	}{
		{name: "no URL part", source: `[!button|Click Me]`},
		{name: "unclosed label", source: `[!button|Click Me(https://example.com)`},
		{name: "unclosed URL", source: `[!button|Click Me](https://example.com`},
		{name: "plain bracket prefix", source: `[button|Click Me](https://example.com)`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out := renderButtons(t, tt.source)
			require.NotContains(t, out, `class="btn"`)
		})
	}
}
