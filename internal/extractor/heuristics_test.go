package extractor

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

var testHeuristics = Heuristics{Origin: "https://www.olx.in", CurrencySymbols: []string{"₹"}}

func TestHeuristicsListingLines(t *testing.T) {
	lines := []string{"Home", "Universal Car Cover - Waterproof, Size M", "₹1,199", "Mumbai, Maharashtra"}

	assert.Equal(t, "Universal Car Cover - Waterproof, Size M", testHeuristics.Title(lines))
	assert.Equal(t, "₹1,199", testHeuristics.Price(lines))
	assert.Equal(t, "Mumbai, Maharashtra", testHeuristics.Location(lines))

	for _, place := range []string{"Koramangala, Bengaluru, Karnataka", "Sector 62, Noida", "Mumbai, Maharashtra - Today"} {
		assert.Equal(t, place, testHeuristics.Location([]string{"Car Cover for Hatchback Models", "₹ 999", place}))
	}
}

func TestHeuristicsSentinels(t *testing.T) {
	for _, lines := range [][]string{nil, {}} {
		assert.Equal(t, UnknownTitle, testHeuristics.Title(lines))
		assert.Equal(t, UnknownPrice, testHeuristics.Price(lines))
		assert.Equal(t, UnknownLocation, testHeuristics.Location(lines))
	}

	doc := newDoc(t, "")
	assert.Equal(t, UnknownURL, testHeuristics.URL(doc.Selection))
	assert.Equal(t, UnknownURL, testHeuristics.URL(doc.Find("div")))
}

func TestHeuristicsTitle(t *testing.T) {
	testCases := []struct {
		name  string
		lines []string
		want  string
	}{
		{
			name:  "skips short and long lines",
			lines: []string{"Featured", strings.Repeat("x", 100), "Car Cover for Hatchback Models"},
			want:  "Car Cover for Hatchback Models",
		},
		{
			name:  "skips lines opening with a price",
			lines: []string{"₹ 1,199 negotiable for quick sale", "Car Cover for Hatchback Models"},
			want:  "Car Cover for Hatchback Models",
		},
		{
			name:  "skips lines opening with Rs",
			lines: []string{"Rs 1,199 negotiable for quick sale", "Car Cover for Hatchback Models"},
			want:  "Car Cover for Hatchback Models",
		},
		{
			name:  "keeps a price later in the line",
			lines: []string{"Car Cover for Hatchback at ₹ 999"},
			want:  "Car Cover for Hatchback at ₹ 999",
		},
		{
			name:  "falls back to the first line",
			lines: []string{"Cover", "₹ 500"},
			want:  "Cover",
		},
		{
			name:  "counts characters not bytes",
			lines: []string{"₹₹₹₹₹₹₹", "Car Cover for Hatchback Models"},
			want:  "Car Cover for Hatchback Models",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, testHeuristics.Title(tc.lines))
		})
	}
}

func TestHeuristicsPrice(t *testing.T) {
	testCases := []struct {
		name  string
		lines []string
		want  string
	}{
		{name: "currency symbol", lines: []string{"Car Cover", "₹ 2,499"}, want: "₹ 2,499"},
		{name: "symbol inside line", lines: []string{"Price: ₹ 2,499"}, want: "Price: ₹ 2,499"},
		{name: "rs prefix", lines: []string{"Car Cover", "Rs. 800"}, want: "Rs. 800"},
		{name: "lowercase rs prefix", lines: []string{"rs 800 only"}, want: "rs 800 only"},
		{name: "first match wins", lines: []string{"₹ 1", "₹ 2"}, want: "₹ 1"},
		{name: "no marker", lines: []string{"Car Cover", "Mumbai, Maharashtra"}, want: UnknownPrice},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, testHeuristics.Price(tc.lines))
		})
	}
}

func TestHeuristicsLocation(t *testing.T) {
	testCases := []struct {
		line string
		want bool
	}{
		{"Mumbai, Maharashtra", true},
		{"Delhi, NCR", true},
		{"St. Thomas Mount, Chennai", true},
		{"Andheri West, Mumbai", true},
		{"Koramangala, Bengaluru, Karnataka", true},
		{"Sector 62, Noida", true},
		{"Mumbai, Maharashtra - Today", true},
		{"Rs 1,199", false},
		{"Universal Car Cover - Waterproof, Size M", false},
		{"₹1,199", false},
		{"Mumbai Maharashtra", false},
		{"Kanyakumari District Area, Tamil Nadu State India South", false},
	}

	for _, tc := range testCases {
		t.Run(tc.line, func(t *testing.T) {
			assert.Equal(t, tc.want, isLocation(tc.line))
		})
	}
}

func TestHeuristicsURL(t *testing.T) {
	testCases := []struct {
		name string
		html string
		want string
	}{
		{
			name: "relative link",
			html: `<div id="card"><a href="/item/car-cover-iid-1">Car cover</a></div>`,
			want: "https://www.olx.in/item/car-cover-iid-1",
		},
		{
			name: "absolute link",
			html: `<div id="card"><a href="https://example.com/item/1">Car cover</a></div>`,
			want: "https://example.com/item/1",
		},
		{
			name: "protocol relative link",
			html: `<div id="card"><a href="//www.olx.in/item/2">Car cover</a></div>`,
			want: "https://www.olx.in/item/2",
		},
		{
			name: "path without slash",
			html: `<div id="card"><a href="item/3">Car cover</a></div>`,
			want: "https://www.olx.in/item/3",
		},
		{
			name: "first of several links",
			html: `<div id="card"><a href="/item/4">one</a><a href="/item/5">two</a></div>`,
			want: "https://www.olx.in/item/4",
		},
		{
			name: "element is the link",
			html: `<a id="card" href="/item/6"><span>Car cover</span></a>`,
			want: "https://www.olx.in/item/6",
		},
		{
			name: "empty href",
			html: `<div id="card"><a href="  ">Car cover</a></div>`,
			want: UnknownURL,
		},
		{
			name: "no link",
			html: `<div id="card"><span>Car cover</span></div>`,
			want: UnknownURL,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			doc := newDoc(t, tc.html)
			assert.Equal(t, tc.want, testHeuristics.URL(doc.Find("#card")))
		})
	}
}

func TestRelevanceFilter(t *testing.T) {
	filter := NewRelevanceFilter([]string{"cover", "Car Cover", " waterproof "})

	testCases := []struct {
		title string
		want  bool
	}{
		{"Dust Cover for Sedan", true},
		// Any cover matches, including unrelated categories
		{"Mobile Phone Cover", true},
		{"WATERPROOF tarpaulin sheet", true},
		{"Car Vacuum Cleaner", false},
		{UnknownTitle, false},
		{"", false},
	}

	for _, tc := range testCases {
		t.Run(tc.title, func(t *testing.T) {
			assert.Equal(t, tc.want, filter.IsRelevant(Record{Title: tc.title}))
		})
	}

	// Only the title is considered
	assert.False(t, filter.IsRelevant(Record{Title: "Sedan seat", Price: "cover included", Location: "Cover, Goa"}))
}
