package translate

// foodDictionary maps common English grocery terms to Spanish. Known terms
// are answered offline before the remote translation API is consulted.
var foodDictionary = map[string]string{
	// Dairy & eggs
	"milk":           "leche",
	"whole milk":     "leche entera",
	"skim milk":      "leche desnatada",
	"cheese":         "queso",
	"butter":         "mantequilla",
	"yogurt":         "yogur",
	"cream":          "nata",
	"eggs":           "huevos",
	"egg":            "huevo",

	// Meat & fish
	"ham":            "jamón",
	"cured ham":      "jamón ibérico",
	"chicken":        "pollo",
	"beef":           "ternera",
	"pork":           "cerdo",
	"turkey":         "pavo",
	"fish":           "pescado",
	"salmon":         "salmón",
	"tuna":           "atún",
	"shrimp":         "gambas",
	"sausage":        "salchicha",
	"bacon":          "beicon",

	// Bakery & grains
	"bread":          "pan",
	"flour":          "harina",
	"rice":           "arroz",
	"pasta":          "pasta",
	"cereal":         "cereales",
	"cookies":        "galletas",
	"cake":           "tarta",

	// Produce
	"apple":          "manzana",
	"banana":         "plátano",
	"orange":         "naranja",
	"lemon":          "limón",
	"strawberry":     "fresa",
	"grapes":         "uvas",
	"tomato":         "tomate",
	"potato":         "patata",
	"onion":          "cebolla",
	"garlic":         "ajo",
	"carrot":         "zanahoria",
	"lettuce":        "lechuga",
	"spinach":        "espinacas",
	"pepper":         "pimiento",
	"cucumber":       "pepino",
	"avocado":        "aguacate",
	"mushrooms":      "champiñones",

	// Pantry
	"olive oil":      "aceite de oliva",
	"sunflower oil":  "aceite de girasol",
	"vinegar":        "vinagre",
	"salt":           "sal",
	"sugar":          "azúcar",
	"honey":          "miel",
	"jam":            "mermelada",
	"chocolate":      "chocolate",
	"coffee":         "café",
	"tea":            "té",
	"beans":          "alubias",
	"chickpeas":      "garbanzos",
	"lentils":        "lentejas",
	"olives":         "aceitunas",
	"canned tuna":    "atún en lata",

	// Drinks
	"water":          "agua",
	"juice":          "zumo",
	"orange juice":   "zumo de naranja",
	"wine":           "vino",
	"beer":           "cerveza",

	// Household
	"toilet paper":   "papel higiénico",
	"detergent":      "detergente",
	"soap":           "jabón",
	"shampoo":        "champú",
	"dish soap":      "lavavajillas",
}
