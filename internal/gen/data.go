package gen

// Value pools for the synthetic dataset. Sizes are deliberately modest; the
// point is plausible-looking rows with stable referential structure, not
// realistic demographics.

var firstNames = []string{
	"Ada", "Alan", "Alice", "Anna", "Carlos", "Chen", "Clara", "David",
	"Elena", "Emma", "Felix", "Grace", "Hana", "Igor", "Ines", "James",
	"Jana", "Karim", "Lena", "Liam", "Lucia", "Marek", "Maria", "Noah",
	"Olga", "Omar", "Petra", "Ravi", "Sofia", "Tomas", "Wei", "Yuki",
}

var lastNames = []string{
	"Adams", "Bauer", "Brown", "Chen", "Costa", "Dvorak", "Fischer",
	"Garcia", "Haas", "Ito", "Jansen", "Kim", "Kovacs", "Larsen", "Lopez",
	"Meyer", "Nakamura", "Novak", "Okafor", "Patel", "Rossi", "Santos",
	"Schmidt", "Silva", "Singh", "Smith", "Svoboda", "Tanaka", "Weber",
}

var countries = []string{
	"Austria", "Brazil", "Canada", "Czechia", "France", "Germany", "India",
	"Italy", "Japan", "Mexico", "Netherlands", "Nigeria", "Poland",
	"Portugal", "Spain", "Sweden", "United Kingdom", "United States",
}

// categories matches the fixed category set reported by the category
// revenue aggregation.
var categories = []string{"Electronics", "Apparel", "Home", "Sports", "Beauty"}

// productAdjectives and productNouns combine into product display names.
var productAdjectives = []string{
	"Compact", "Deluxe", "Eco", "Ergonomic", "Foldable", "Heavy-Duty",
	"Lightweight", "Modular", "Portable", "Premium", "Smart", "Wireless",
}

var productNouns = []string{
	"Backpack", "Blender", "Desk Lamp", "Headphones", "Jacket", "Kettle",
	"Keyboard", "Monitor", "Mug", "Running Shoes", "Speaker", "Water Bottle",
	"Yoga Mat",
}

// orderStatuses with selection weights; weights sum to 1.
var orderStatuses = []struct {
	status string
	weight float64
}{
	{"pending", 0.20},
	{"processing", 0.50},
	{"fulfilled", 0.25},
	{"cancelled", 0.05},
}

var paymentMethods = []string{"card", "paypal", "bank_transfer", "gift_card"}
