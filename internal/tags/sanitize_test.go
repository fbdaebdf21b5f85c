package tags

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain", "Ala ma 3 koty.", "Ala ma 3 koty."},
		{"entities", "&lt;problem&gt;x &amp; y&lt;/problem&gt;", "<problem>x & y</problem>"},
		{"double escaped", "&amp;lt;check&amp;gt;", "<check>"},
		{"fence with info string", "```xml\n<problem>A</problem>\n```", "<problem>A</problem>\n"},
		{"bare fence", "przed ```<a>b</a>``` po", "przed <a>b</a> po"},
		{"escaped fence content", "```\n&lt;sanity&gt;ok&lt;/sanity&gt;\n```", "<sanity>ok</sanity>\n"},
		{"inline fence", "wynik ```x+1``` gotowy", "wynik x+1 gotowy"},
		{"decomposed diacritics", "inz\u0307ynieria", "in\u017cynieria"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.in))
		})
	}
}

func TestSanitize_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"zwykły tekst",
		"&amp;amp;amp;",
		"```python\nprint(1)\n```",
		"&```lt```;problem&gt;",
		"````a```",
		"```a``` ```b```",
		"&lt;&lt;&gt;&gt; ```\n&amp;```",
		"é ą ż",
		"R&D & co",
	}
	for _, in := range inputs {
		once := Sanitize(in)
		assert.Equal(t, once, Sanitize(once), "input %q", in)
	}
}
