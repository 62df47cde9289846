package fooddata

// Reference data

type cityState struct {
	City  string
	State string
}

// Locations cycle through this list, so more than thirty locations repeat
// cities and an address city can match several locations.
var cities = []cityState{
	{"Delhi", "Delhi"},
	{"Mumbai", "Maharashtra"},
	{"Bangalore", "Karnataka"},
	{"Hyderabad", "Telangana"},
	{"Chennai", "Tamil Nadu"},
	{"Kolkata", "West Bengal"},
	{"Pune", "Maharashtra"},
	{"Ahmedabad", "Gujarat"},
	{"Jaipur", "Rajasthan"},
	{"Lucknow", "Uttar Pradesh"},
	{"Chandigarh", "Punjab"},
	{"Bhopal", "Madhya Pradesh"},
	{"Guwahati", "Assam"},
	{"Kochi", "Kerala"},
	{"Indore", "Madhya Pradesh"},
	{"Surat", "Gujarat"},
	{"Nagpur", "Maharashtra"},
	{"Patna", "Bihar"},
	{"Vadodara", "Gujarat"},
	{"Thane", "Maharashtra"},
	{"Agra", "Uttar Pradesh"},
	{"Nashik", "Maharashtra"},
	{"Faridabad", "Haryana"},
	{"Meerut", "Uttar Pradesh"},
	{"Rajkot", "Gujarat"},
	{"Varanasi", "Uttar Pradesh"},
	{"Srinagar", "Jammu and Kashmir"},
	{"Aurangabad", "Maharashtra"},
	{"Dhanbad", "Jharkhand"},
	{"Amritsar", "Punjab"},
}

var restaurantCuisines = []string{
	"North Indian", "South Indian", "Chinese", "Italian", "Continental",
	"Mediterranean", "Mexican", "Thai", "Japanese", "Lebanese",
	"Mughlai", "Street Food", "Desserts", "Beverages", "Fast Food",
	"Cafe", "Bakery", "Ice Cream", "Pizza", "Burger",
}

var restaurantFirstParts = []string{
	"Royal", "Spice", "Taste", "Flavors", "Urban", "Green", "Blue", "Red",
	"Golden", "Silver", "Diamond", "Emerald", "Crystal", "Pearl", "Ruby",
}

var restaurantSecondParts = []string{
	"Kitchen", "Bistro", "Restaurant", "Cafe", "Diner", "Eatery", "Grill",
	"Bites", "Table", "Garden", "House", "Palace", "Corner", "Junction", "Hub",
}

var floorPrefixes = []string{"Ground Floor, ", "First Floor, ", "Second Floor, ", "Third Floor, ", ""}

var menuCategories = []string{"Appetizers", "Main Course", "Desserts", "Beverages", "Snacks"}

var menuItemsByCategory = map[string][]string{
	"Appetizers": {
		"Samosa", "Paneer Tikka", "Chicken Tikka", "Aloo Tikki", "Fish Fry",
		"Spring Rolls", "Hara Bhara Kebab", "Seekh Kebab", "Chicken Wings", "Prawn Skewers",
	},
	"Main Course": {
		"Butter Chicken", "Paneer Butter Masala", "Dal Makhani", "Chole Bhature", "Biryani",
		"Rogan Josh", "Palak Paneer", "Malai Kofta", "Mutton Curry", "Fish Curry",
	},
	"Desserts": {
		"Gulab Jamun", "Rasgulla", "Kheer", "Jalebi", "Kulfi",
		"Ras Malai", "Gajar Halwa", "Mysore Pak", "Peda", "Sandesh",
	},
	"Beverages": {
		"Masala Chai", "Lassi", "Nimbu Pani", "Cold Coffee", "Fruit Juice",
		"Coconut Water", "Aam Panna", "Buttermilk", "Thandai", "Falooda",
	},
	"Snacks": {
		"Pav Bhaji", "Bhel Puri", "Pani Puri", "Vada Pav", "Pakora",
		"Dhokla", "Kachori", "Sev Puri", "Dabeli", "Aloo Chaat",
	},
}

// nonVegItems decides ItemType; every other dish is Veg.
var nonVegItems = map[string]bool{
	"Chicken Tikka":  true,
	"Fish Fry":       true,
	"Seekh Kebab":    true,
	"Chicken Wings":  true,
	"Prawn Skewers":  true,
	"Butter Chicken": true,
	"Biryani":        true,
	"Rogan Josh":     true,
	"Mutton Curry":   true,
	"Fish Curry":     true,
}

// ItemTypeFor returns "Non-Veg" or "Veg" for a dish name.
func ItemTypeFor(name string) string {
	if nonVegItems[name] {
		return "Non-Veg"
	}
	return "Veg"
}

var menuDescriptions = []string{
	"Delicious and authentic %s.",
	"A popular Indian dish, %s.",
	"Traditional Indian %s with rich flavors.",
	"A must-try %s from India.",
	"Classic %s with a twist.",
}

var loginMethods = []string{"GMail_Account", "Apple_ID", "Other_EMail"}

var genders = []string{"Male", "Female", "Other"}

var emailDomains = []string{"gmail.com", "yahoo.com", "hotmail.com", "outlook.com"}

var foodPreferences = []string{"Veg", "Non-Veg", "Vegan", "Eggetarian"}

var customerCuisines = []string{
	"North Indian", "South Indian", "Chinese", "Italian", "Continental",
	"Mediterranean", "Mexican", "Thai", "Japanese", "Street Food",
}

var addressTypes = []string{"Home", "Work", "Other"}

var buildingSuffixes = []string{"Apartments", "Residency", "Heights", "Towers", "Complex"}

var landmarkPrefixes = []string{"Near ", "Opp. ", "B/h. ", "Beside ", "Behind ", ""}

var localities = []string{
	"Saket", "Connaught Place", "Dwarka", "Vasant Kunj", "South Extension",
	"Rohini", "Karol Bagh", "Pitampura", "Janakpuri", "Lajpat Nagar",
	"Malviya Nagar", "Greater Kailash", "Hauz Khas", "Mayur Vihar", "Rajouri Garden",
}

var androidDevices = []string{"Samsung Galaxy", "OnePlus", "Xiaomi", "Oppo", "Vivo", "Realme"}

var browsers = []string{"Chrome", "Firefox", "Safari", "Edge", "Opera"}

var paymentMethods = []string{"Cash", "UPI", "Wallet"}

var vehicleTypes = []string{"Bike", "Scooter"}

// Order status weights. Orders placed within recentOrderWindow of the
// reference time may still be in flight.
var (
	settledStatuses = []OrderStatus{OrderDelivered, OrderCanceled, OrderFailed, OrderReturned}
	settledWeights  = []int{80, 10, 5, 5}

	recentStatuses = []OrderStatus{OrderDelivered, OrderInTransit, OrderPreparing}
	recentWeights  = []int{60, 30, 10}
)
