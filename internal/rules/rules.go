package rules

// Rule maps a canonical uppercase merchant token to a category and
// subcategory label.
type Rule struct {
	Merchant    string `toml:"merchant"`
	Category    string `toml:"category"`
	Subcategory string `toml:"subcategory"`
}

// Default returns the built-in rule table. The table is an ordered slice,
// never a map: partial matching walks it top to bottom and the first hit
// wins, so declaration order is part of the contract.
func Default() []Rule {
	return []Rule{
		// Shopping
		{Merchant: "AMAZON", Category: "Wants", Subcategory: "Shopping"},
		{Merchant: "FLIPKART", Category: "Wants", Subcategory: "Shopping"},
		{Merchant: "MEESHO", Category: "Wants", Subcategory: "Shopping"},
		{Merchant: "SNAPDEAL", Category: "Wants", Subcategory: "Shopping"},

		// Food & dining
		{Merchant: "ZOMATO", Category: "Wants", Subcategory: "Food Delivery"},
		{Merchant: "SWIGGY", Category: "Wants", Subcategory: "Food Delivery"},
		{Merchant: "DOMINOS", Category: "Wants", Subcategory: "Dining Out"},
		{Merchant: "MCDONALDS", Category: "Wants", Subcategory: "Dining Out"},
		{Merchant: "STARBUCKS", Category: "Wants", Subcategory: "Dining Out"},
		{Merchant: "CAFE COFFEE DAY", Category: "Wants", Subcategory: "Dining Out"},

		// Groceries
		{Merchant: "BIGBASKET", Category: "Needs", Subcategory: "Groceries"},
		{Merchant: "BLINKIT", Category: "Needs", Subcategory: "Groceries"},
		{Merchant: "ZEPTO", Category: "Needs", Subcategory: "Groceries"},
		{Merchant: "DMART", Category: "Needs", Subcategory: "Groceries"},
		{Merchant: "RELIANCE FRESH", Category: "Needs", Subcategory: "Groceries"},

		// Transportation
		{Merchant: "UBER", Category: "Needs", Subcategory: "Transportation"},
		{Merchant: "OLA", Category: "Needs", Subcategory: "Transportation"},
		{Merchant: "RAPIDO", Category: "Needs", Subcategory: "Transportation"},
		{Merchant: "METRO", Category: "Needs", Subcategory: "Transportation"},

		// Travel
		{Merchant: "IRCTC", Category: "Wants", Subcategory: "Travel"},
		{Merchant: "MAKEMYTRIP", Category: "Wants", Subcategory: "Travel"},
		{Merchant: "GOIBIBO", Category: "Wants", Subcategory: "Travel"},
		{Merchant: "INDIGO", Category: "Wants", Subcategory: "Travel"},
		{Merchant: "AIR INDIA", Category: "Wants", Subcategory: "Travel"},

		// Entertainment
		{Merchant: "NETFLIX", Category: "Wants", Subcategory: "Entertainment"},
		{Merchant: "SPOTIFY", Category: "Wants", Subcategory: "Entertainment"},
		{Merchant: "HOTSTAR", Category: "Wants", Subcategory: "Entertainment"},
		{Merchant: "BOOKMYSHOW", Category: "Wants", Subcategory: "Entertainment"},
		{Merchant: "PVR", Category: "Wants", Subcategory: "Entertainment"},

		// Bills & utilities
		{Merchant: "AIRTEL", Category: "Needs", Subcategory: "Utilities"},
		{Merchant: "JIO", Category: "Needs", Subcategory: "Utilities"},
		{Merchant: "VODAFONE", Category: "Needs", Subcategory: "Utilities"},
		{Merchant: "BESCOM", Category: "Needs", Subcategory: "Utilities"},
		{Merchant: "TATA POWER", Category: "Needs", Subcategory: "Utilities"},

		// Healthcare
		{Merchant: "APOLLO", Category: "Needs", Subcategory: "Healthcare"},
		{Merchant: "PHARMEASY", Category: "Needs", Subcategory: "Healthcare"},
		{Merchant: "NETMEDS", Category: "Needs", Subcategory: "Healthcare"},
		{Merchant: "PRACTO", Category: "Needs", Subcategory: "Healthcare"},

		// Electronics
		{Merchant: "CROMA", Category: "Wants", Subcategory: "Electronics"},
		{Merchant: "RELIANCE DIGITAL", Category: "Wants", Subcategory: "Electronics"},
		{Merchant: "VIJAY SALES", Category: "Wants", Subcategory: "Electronics"},

		// Fashion
		{Merchant: "MYNTRA", Category: "Wants", Subcategory: "Fashion"},
		{Merchant: "AJIO", Category: "Wants", Subcategory: "Fashion"},
		{Merchant: "NYKAA", Category: "Wants", Subcategory: "Fashion"},

		// Financial services
		{Merchant: "ZERODHA", Category: "Savings", Subcategory: "Investments"},
		{Merchant: "GROWW", Category: "Savings", Subcategory: "Investments"},
		{Merchant: "LIC", Category: "Needs", Subcategory: "Insurance"},
		{Merchant: "POLICYBAZAAR", Category: "Needs", Subcategory: "Insurance"},
		{Merchant: "EMI", Category: "Needs", Subcategory: "Loan EMI"},

		// Government & tax
		{Merchant: "INCOME TAX", Category: "Needs", Subcategory: "Taxes"},
		{Merchant: "GST", Category: "Needs", Subcategory: "Taxes"},
	}
}
