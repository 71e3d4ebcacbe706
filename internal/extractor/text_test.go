package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVisibleLines(t *testing.T) {
	doc := newDoc(t, `<html><head><style>.a { color: red }</style></head><body>
<div id="card">Universal Car Cover<p>₹ 1,199</p><script>var tracking = "car cover";</script><span>Mumbai,</span> <b>Maharashtra</b><br>Today<!-- hidden comment --><noscript>Enable JavaScript</noscript></div>
</body></html>`)

	lines := VisibleLines(doc.Find("#card"))
	assert.Equal(t, []string{"Universal Car Cover", "₹ 1,199", "Mumbai, Maharashtra", "Today"}, lines)
}

func TestVisibleLinesTextNewlines(t *testing.T) {
	doc := newDoc(t, "<ul><li><span>  first  </span>\n\n<span>second</span>\t</li><li>third</li></ul>")

	assert.Equal(t, []string{"first", "second", "third"}, VisibleLines(doc.Find("ul")))
	assert.Empty(t, VisibleLines(doc.Find("table")))
}

func TestSplitLines(t *testing.T) {
	assert.Equal(t, []string{"a", "b c"}, SplitLines("  a \n\n\t\n b c \n"))
	assert.Empty(t, SplitLines(""))
	assert.Empty(t, SplitLines(" \n \n"))
}

func TestRuneLen(t *testing.T) {
	assert.Equal(t, 6, runeLen("₹1,199"))
	assert.Equal(t, 0, runeLen(""))
}
