package listing

// DemoListings returns the listings installed at startup, in display order.
func DemoListings() []Listing {
	return []Listing{
		{
			ID:          "1",
			Name:        "Leftover Roasted Chicken",
			Description: "Half a roasted chicken, perfectly seasoned. Great for salads or sandwiches.",
			Quantity:    "Approx. 2 lbs",
			PickupTime:  "Today by 8 PM",
			Restaurant:  "The Corner Bistro",
			Image:       "https://picsum.photos/seed/chicken/400/300",
		},
		{
			ID:          "2",
			Name:        "Steamed Vegetable Medley",
			Description: "Broccoli, carrots, and bell peppers. Healthy and ready to eat.",
			Quantity:    "Family-size container",
			PickupTime:  "Today by 8 PM",
			Restaurant:  "The Corner Bistro",
			Image:       "https://picsum.photos/seed/veggies/400/300",
		},
		{
			ID:          "3",
			Name:        "Sourdough Bread Loaves",
			Description: "Freshly baked sourdough from this morning. A bit past its prime for sale, but perfect for toast.",
			Quantity:    "5 loaves",
			PickupTime:  "Today by 6 PM",
			Restaurant:  "Artisan Bakes",
			Image:       "https://picsum.photos/seed/bread/400/300",
			IsClaimed:   true,
		},
		{
			ID:          "4",
			Name:        "Tomato Basil Soup",
			Description: "A large batch of our signature tomato basil soup.",
			Quantity:    "2 gallons",
			PickupTime:  "Today by 9 PM",
			Restaurant:  "Soup & Co.",
			Image:       "https://picsum.photos/seed/soup/400/300",
		},
	}
}
