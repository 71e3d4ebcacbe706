package crawler

import "sjsage522/olxworker/internal/extractor"

// SampleRecords returns fixed listings used when the live page is unavailable
func SampleRecords() []extractor.Record {
	return []extractor.Record{
		{
			Title:    "Universal Car Cover - Waterproof & Dustproof for All Cars",
			Price:    "₹1,199",
			Location: "Mumbai, Maharashtra",
			Date:     "Today",
			URL:      "https://www.olx.in/item/universal-car-cover",
		},
		{
			Title:    "Premium Car Cover with Mirror Pockets - Medium Size",
			Price:    "₹1,850",
			Location: "Delhi, NCR",
			Date:     "1 hour ago",
			URL:      "https://www.olx.in/item/premium-car-cover",
		},
		{
			Title:    "SUV Car Cover - Extra Large Waterproof All Weather",
			Price:    "₹2,499",
			Location: "Bangalore, Karnataka",
			Date:     "2 hours ago",
			URL:      "https://www.olx.in/item/suv-car-cover",
		},
		{
			Title:    "Car Cover for Honda City/Sedan - Custom Fit",
			Price:    "₹1,600",
			Location: "Chennai, Tamil Nadu",
			Date:     "Today",
			URL:      "https://www.olx.in/item/honda-car-cover",
		},
		{
			Title:    "Waterproof Car Cover with Storage Bag - All Sizes",
			Price:    "₹1,300",
			Location: "Pune, Maharashtra",
			Date:     "3 hours ago",
			URL:      "https://www.olx.in/item/waterproof-car-cover",
		},
	}
}
