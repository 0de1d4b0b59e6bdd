package dataset

import (
	"github.com/sells-group/poiforge/internal/geo"
	"github.com/sells-group/poiforge/internal/synth"
)

// Approximate extent of the Delhi metropolitan area.
var delhiBox = geo.BBox{LatMin: 28.40, LatMax: 28.80, LonMin: 76.95, LonMax: 77.40}

var delhiCenter = geo.Point{Latitude: 28.6139, Longitude: 77.2090}

const (
	delhiRadiusKM        = 20
	defaultSpacingKM     = 0.005
	defaultAttemptFactor = 5
)

// commercialHubs lists Delhi's major shopping districts with density weights
// on a 1-10 scale. Shopping draws cluster around these.
var commercialHubs = []synth.Hub{
	{Name: "Connaught Place", Center: geo.Point{Latitude: 28.6304, Longitude: 77.2177}, Weight: 10},
	{Name: "Saket", Center: geo.Point{Latitude: 28.5246, Longitude: 77.2099}, Weight: 8},
	{Name: "Lajpat Nagar", Center: geo.Point{Latitude: 28.5693, Longitude: 77.2432}, Weight: 9},
	{Name: "Karol Bagh", Center: geo.Point{Latitude: 28.6520, Longitude: 77.1901}, Weight: 9},
	{Name: "Chandni Chowk", Center: geo.Point{Latitude: 28.6506, Longitude: 77.2295}, Weight: 10},
	{Name: "South Extension", Center: geo.Point{Latitude: 28.5730, Longitude: 77.2233}, Weight: 8},
	{Name: "Rajouri Garden", Center: geo.Point{Latitude: 28.6492, Longitude: 77.1220}, Weight: 7},
	{Name: "Nehru Place", Center: geo.Point{Latitude: 28.5491, Longitude: 77.2538}, Weight: 8},
	{Name: "Kamla Nagar", Center: geo.Point{Latitude: 28.6812, Longitude: 77.2055}, Weight: 7},
	{Name: "Sarojini Nagar", Center: geo.Point{Latitude: 28.5775, Longitude: 77.1969}, Weight: 9},
	{Name: "Janakpuri", Center: geo.Point{Latitude: 28.6290, Longitude: 77.0815}, Weight: 6},
	{Name: "Dwarka", Center: geo.Point{Latitude: 28.5823, Longitude: 77.0500}, Weight: 6},
	{Name: "Rohini", Center: geo.Point{Latitude: 28.7186, Longitude: 77.1118}, Weight: 6},
	{Name: "Pitampura", Center: geo.Point{Latitude: 28.6991, Longitude: 77.1322}, Weight: 7},
	{Name: "Greater Kailash", Center: geo.Point{Latitude: 28.5439, Longitude: 77.2430}, Weight: 8},
}

// educationalSeeds lists major Delhi institutions merged into the
// educational dataset regardless of what the external query returns.
var educationalSeeds = []geo.Point{
	// Universities
	{Latitude: 28.6129, Longitude: 77.2295}, // Delhi University (North Campus)
	{Latitude: 28.5823, Longitude: 77.1669}, // Delhi University (South Campus)
	{Latitude: 28.5403, Longitude: 77.1675}, // Jawaharlal Nehru University
	{Latitude: 28.5450, Longitude: 77.1926}, // Indian Institute of Technology Delhi
	{Latitude: 28.5617, Longitude: 77.2809}, // Jamia Millia Islamia
	{Latitude: 28.7496, Longitude: 77.1183}, // Delhi Technological University
	{Latitude: 28.6094, Longitude: 77.0363}, // Netaji Subhas University of Technology
	{Latitude: 28.5942, Longitude: 77.0322}, // Guru Gobind Singh Indraprastha University
	{Latitude: 28.5672, Longitude: 77.2100}, // All India Institute of Medical Sciences
	{Latitude: 28.6280, Longitude: 77.2177}, // Indira Gandhi National Open University
	{Latitude: 28.5647, Longitude: 77.2249}, // Indian Institute of Foreign Trade
	{Latitude: 28.6417, Longitude: 77.2277}, // Jamia Hamdard
	{Latitude: 28.6884, Longitude: 77.2115}, // Ambedkar University Delhi
	{Latitude: 28.6333, Longitude: 77.2417}, // National Institute of Educational Planning and Administration
	{Latitude: 28.5439, Longitude: 77.2726}, // National Institute of Fashion Technology

	// Colleges
	{Latitude: 28.6506, Longitude: 77.2152}, // Shri Ram College of Commerce
	{Latitude: 28.6884, Longitude: 77.2074}, // Hindu College
	{Latitude: 28.6884, Longitude: 77.2095}, // Miranda House
	{Latitude: 28.6884, Longitude: 77.2054}, // Kirori Mal College
	{Latitude: 28.6884, Longitude: 77.2034}, // Hansraj College
	{Latitude: 28.6884, Longitude: 77.2014}, // Ramjas College
	{Latitude: 28.6884, Longitude: 77.1994}, // Daulat Ram College
	{Latitude: 28.6884, Longitude: 77.1974}, // SGTB Khalsa College
	{Latitude: 28.5823, Longitude: 77.1649}, // Lady Shri Ram College
	{Latitude: 28.5823, Longitude: 77.1629}, // Jesus and Mary College
	{Latitude: 28.5823, Longitude: 77.1609}, // Gargi College
	{Latitude: 28.5823, Longitude: 77.1589}, // Kamala Nehru College
	{Latitude: 28.5823, Longitude: 77.1569}, // Sri Venkateswara College
	{Latitude: 28.5823, Longitude: 77.1549}, // Deshbandhu College
	{Latitude: 28.6884, Longitude: 77.1954}, // Delhi College of Engineering (old campus)
	{Latitude: 28.6884, Longitude: 77.1934}, // Maulana Azad Medical College
	{Latitude: 28.6884, Longitude: 77.1914}, // Lady Hardinge Medical College
	{Latitude: 28.6884, Longitude: 77.1874}, // Zakir Husain Delhi College

	// Major schools
	{Latitude: 28.5923, Longitude: 77.1869}, // Delhi Public School, R.K. Puram
	{Latitude: 28.5607, Longitude: 77.1792}, // Delhi Public School, Vasant Kunj
	{Latitude: 28.6392, Longitude: 77.2550}, // Modern School, Barakhamba Road
	{Latitude: 28.5787, Longitude: 77.2065}, // Sanskriti School
	{Latitude: 28.5923, Longitude: 77.1889}, // Mother's International School
	{Latitude: 28.5923, Longitude: 77.1909}, // Sardar Patel Vidyalaya
	{Latitude: 28.6392, Longitude: 77.2570}, // Convent of Jesus and Mary
	{Latitude: 28.6392, Longitude: 77.2590}, // St. Columba's School
}
