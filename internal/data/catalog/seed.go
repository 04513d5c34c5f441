package catalog

import (
	"hotel-booking/internal/data/entity"
)

// Stock photography shared across the seed hotels.
const (
	imgFacade = "https://images.unsplash.com/photo-1506744038136-46273834b3fb?w=400"
	imgLobby  = "https://images.unsplash.com/photo-1465101046530-73398c7f28ca?w=400"
	imgPool   = "https://images.unsplash.com/photo-1500534314209-a25ddb2bd429?w=400"
	imgSuite  = "https://images.unsplash.com/photo-1519125323398-675f0ddb6308?w=400"
	imgBeach  = "https://images.unsplash.com/photo-1465101178521-c1a9136a3b99?w=400"
)

// seedHotels returns the demo catalog. Order matters: insertion order is the
// order List returns and the tiebreaker for recommendation ranking.
func seedHotels() []entity.Hotel {
	return []entity.Hotel{
		{
			ID:            "1",
			Name:          "The Taj Mahal Palace",
			Description:   "Iconic luxury hotel overlooking the Gateway of India, offering world-class amenities and heritage charm in Mumbai.",
			Image:         imgFacade,
			Images:        []string{imgFacade, imgLobby, imgPool, imgSuite},
			PricePerNight: 8500,
			Rating:        4.9,
			City:          "Mumbai",
			RoomTypes: []entity.RoomType{
				{ID: "1", Name: "Deluxe Room", Price: 8500, Capacity: 2},
				{ID: "2", Name: "Luxury Suite", Price: 15000, Capacity: 4},
				{ID: "3", Name: "Sea View Suite", Price: 20000, Capacity: 4},
			},
		},
		{
			ID:            "2",
			Name:          "Trident Nariman Point",
			Description:   "Modern high-rise hotel with stunning views of Marine Drive and the Arabian Sea, perfect for business and leisure.",
			Image:         imgLobby,
			Images:        []string{imgLobby, imgFacade, imgSuite, imgPool},
			PricePerNight: 7000,
			Rating:        4.7,
			City:          "Mumbai",
			RoomTypes: []entity.RoomType{
				{ID: "1", Name: "Premier Room", Price: 7000, Capacity: 2},
				{ID: "2", Name: "Executive Suite", Price: 12000, Capacity: 4},
				{ID: "3", Name: "Presidential Suite", Price: 25000, Capacity: 6},
			},
		},
		{
			ID:            "3",
			Name:          "ITC Grand Central",
			Description:   "A luxury hotel in Mumbai with colonial architecture, lush gardens, and award-winning restaurants.",
			Image:         imgSuite,
			Images:        []string{imgSuite, imgLobby, imgFacade, imgPool},
			PricePerNight: 9000,
			Rating:        4.6,
			City:          "Mumbai",
			RoomTypes: []entity.RoomType{
				{ID: "1", Name: "Luxury Room", Price: 9000, Capacity: 2},
				{ID: "2", Name: "Tower Suite", Price: 16000, Capacity: 4},
				{ID: "3", Name: "Heritage Suite", Price: 22000, Capacity: 5},
			},
		},
		{
			ID:            "4",
			Name:          "The Leela Palace",
			Description:   "A blend of modern luxury and royal elegance, located in the heart of New Delhi. Renowned for its hospitality and fine dining.",
			Image:         imgFacade,
			Images:        []string{imgFacade, imgLobby, imgPool, imgSuite},
			PricePerNight: 9500,
			Rating:        4.8,
			City:          "Delhi",
			RoomTypes: []entity.RoomType{
				{ID: "1", Name: "Premier Room", Price: 9500, Capacity: 2},
				{ID: "2", Name: "Royal Suite", Price: 18000, Capacity: 4},
				{ID: "3", Name: "Presidential Suite", Price: 30000, Capacity: 6},
			},
		},
		{
			ID:            "5",
			Name:          "The Imperial New Delhi",
			Description:   "A historic hotel with colonial charm, lush lawns, and a central location near Connaught Place.",
			Image:         imgPool,
			Images:        []string{imgPool, imgLobby, imgSuite, imgFacade},
			PricePerNight: 8000,
			Rating:        4.7,
			City:          "Delhi",
			RoomTypes: []entity.RoomType{
				{ID: "1", Name: "Heritage Room", Price: 8000, Capacity: 2},
				{ID: "2", Name: "Imperial Suite", Price: 14000, Capacity: 4},
				{ID: "3", Name: "Grand Suite", Price: 20000, Capacity: 5},
			},
		},
		{
			ID:            "6",
			Name:          "JW Marriott Hotel New Delhi",
			Description:   "A contemporary hotel near the airport with luxurious rooms, spa, and multiple dining options.",
			Image:         imgLobby,
			Images:        []string{imgLobby, imgFacade, imgSuite, imgPool},
			PricePerNight: 10500,
			Rating:        4.6,
			City:          "Delhi",
			RoomTypes: []entity.RoomType{
				{ID: "1", Name: "Deluxe Room", Price: 10500, Capacity: 2},
				{ID: "2", Name: "Club Suite", Price: 17000, Capacity: 4},
				{ID: "3", Name: "Presidential Suite", Price: 32000, Capacity: 6},
			},
		},
		{
			ID:            "7",
			Name:          "JW Marriott Pune",
			Description:   "A luxury hotel in Pune with panoramic city views, rooftop dining, and a relaxing spa.",
			Image:         imgFacade,
			Images:        []string{imgFacade, imgLobby, imgSuite, imgPool},
			PricePerNight: 7500,
			Rating:        4.7,
			City:          "Pune",
			RoomTypes: []entity.RoomType{
				{ID: "1", Name: "Deluxe Room", Price: 7500, Capacity: 2},
				{ID: "2", Name: "Executive Suite", Price: 12000, Capacity: 4},
				{ID: "3", Name: "Presidential Suite", Price: 20000, Capacity: 6},
			},
		},
		{
			ID:            "8",
			Name:          "Conrad Pune",
			Description:   "A 5-star hotel in Pune with contemporary design, multiple restaurants, and a central location.",
			Image:         imgSuite,
			Images:        []string{imgSuite, imgLobby, imgFacade, imgPool},
			PricePerNight: 6800,
			Rating:        4.6,
			City:          "Pune",
			RoomTypes: []entity.RoomType{
				{ID: "1", Name: "Premium Room", Price: 6800, Capacity: 2},
				{ID: "2", Name: "Deluxe Suite", Price: 11000, Capacity: 4},
				{ID: "3", Name: "Grand Suite", Price: 17000, Capacity: 5},
			},
		},
		{
			ID:            "9",
			Name:          "Hyatt Pune",
			Description:   "A stylish hotel near Pune airport with lush gardens, an outdoor pool, and modern amenities.",
			Image:         imgLobby,
			Images:        []string{imgLobby, imgFacade, imgSuite, imgPool},
			PricePerNight: 6000,
			Rating:        4.5,
			City:          "Pune",
			RoomTypes: []entity.RoomType{
				{ID: "1", Name: "Standard Room", Price: 6000, Capacity: 2},
				{ID: "2", Name: "Club Suite", Price: 9500, Capacity: 4},
				{ID: "3", Name: "Presidential Suite", Price: 18000, Capacity: 6},
			},
		},
		{
			ID:            "10",
			Name:          "ITC Gardenia",
			Description:   "Eco-friendly luxury hotel in Bangalore, known for its lush gardens, contemporary design, and exceptional service.",
			Image:         imgSuite,
			Images:        []string{imgSuite, imgLobby, imgFacade, imgBeach},
			PricePerNight: 7000,
			Rating:        4.7,
			City:          "Bangalore",
			RoomTypes: []entity.RoomType{
				{ID: "1", Name: "Executive Room", Price: 7000, Capacity: 2},
				{ID: "2", Name: "Luxury Suite", Price: 12000, Capacity: 4},
				{ID: "3", Name: "Garden Suite", Price: 16000, Capacity: 4},
			},
		},
		{
			ID:            "11",
			Name:          "The Park Hyatt",
			Description:   "A contemporary hotel in Chennai, offering elegant rooms, a tranquil spa, and gourmet dining experiences.",
			Image:         imgLobby,
			Images:        []string{imgLobby, imgFacade, imgSuite, imgBeach},
			PricePerNight: 6000,
			Rating:        4.6,
			City:          "Chennai",
			RoomTypes: []entity.RoomType{
				{ID: "1", Name: "Park Room", Price: 6000, Capacity: 2},
				{ID: "2", Name: "Hyatt Suite", Price: 11000, Capacity: 4},
				{ID: "3", Name: "Presidential Suite", Price: 25000, Capacity: 6},
			},
		},
		{
			ID:            "12",
			Name:          "Novotel Hyderabad",
			Description:   "Modern hotel in Hyderabad with spacious rooms, outdoor pool, and easy access to business and leisure destinations.",
			Image:         imgPool,
			Images:        []string{imgPool, imgLobby, imgSuite, imgBeach},
			PricePerNight: 5500,
			Rating:        4.5,
			City:          "Hyderabad",
			RoomTypes: []entity.RoomType{
				{ID: "1", Name: "Superior Room", Price: 5500, Capacity: 2},
				{ID: "2", Name: "Executive Suite", Price: 10000, Capacity: 4},
				{ID: "3", Name: "Family Suite", Price: 14000, Capacity: 5},
			},
		},
		{
			ID:            "13",
			Name:          "Grand Hyatt Goa",
			Description:   "A luxury resort in Goa with stunning sea views, lush gardens, and a private beach. Perfect for a relaxing getaway.",
			Image:         imgBeach,
			Images:        []string{imgBeach, imgFacade, imgSuite, imgPool},
			PricePerNight: 12000,
			Rating:        4.8,
			City:          "Goa",
			RoomTypes: []entity.RoomType{
				{ID: "1", Name: "Grand Room", Price: 12000, Capacity: 2},
				{ID: "2", Name: "Sea View Suite", Price: 18000, Capacity: 4},
				{ID: "3", Name: "Presidential Suite", Price: 35000, Capacity: 6},
			},
		},
		{
			ID:            "14",
			Name:          "Rambagh Palace",
			Description:   "A former royal residence in Jaipur, now a luxury hotel with regal suites, lush gardens, and heritage architecture.",
			Image:         imgSuite,
			Images:        []string{imgSuite, imgLobby, imgFacade, imgBeach},
			PricePerNight: 17000,
			Rating:        4.9,
			City:          "Jaipur",
			RoomTypes: []entity.RoomType{
				{ID: "1", Name: "Palace Room", Price: 17000, Capacity: 2},
				{ID: "2", Name: "Royal Suite", Price: 25000, Capacity: 4},
				{ID: "3", Name: "Grand Presidential Suite", Price: 40000, Capacity: 6},
			},
		},
	}
}
