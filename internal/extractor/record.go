package extractor

// Sentinel values substituted for fields that could not be inferred
const (
	UnknownTitle    = "Unknown Title"
	UnknownPrice    = "Check price on OLX"
	UnknownLocation = "Location varies"
	UnknownURL      = "URL not found"
	RecentDate      = "Recent"
)

// Record is a single listing extracted from a marketplace page.
// Every field is always populated; missing data is rendered as a sentinel.
type Record struct {
	Title    string `json:"title"`
	Price    string `json:"price"`
	Location string `json:"location"`
	Date     string `json:"date"`
	URL      string `json:"url"`
}

// Fields returns the serialized field names in column order
func Fields() []string {
	return []string{"title", "price", "location", "date", "url"}
}

// Values returns the record's fields in the same order as Fields
func (r Record) Values() []string {
	return []string{r.Title, r.Price, r.Location, r.Date, r.URL}
}
