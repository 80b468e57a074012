package catalog

import (
	"math/rand/v2"
	"strconv"

	"github.com/shopspring/decimal"

	domproduct "example.com/beadwork-storefront/app/internal/domain/product"
)

// Category ids the generator cycles through, in order.
var GeneratedCategories = []string{"necklaces", "bracelets", "accessories", "ceremonial"}

const (
	MinPrice       = 15.0
	priceVariation = 25.0

	featuredChance = 0.10
	inStockChance  = 0.95
)

var basePrices = map[string]float64{
	"ceremonial":  150,
	"necklaces":   60,
	"bracelets":   40,
	"accessories": 30,
}

var nameSuffixes = map[string]string{
	"necklaces":   "Necklace",
	"bracelets":   "Bracelet",
	"accessories": "Accessory",
	"ceremonial":  "Piece",
}

var productNames = map[string][]string{
	"necklaces": {
		"Royal Zulu Collar", "Heritage Warrior", "Sacred Spirit", "Ancient Wisdom", "Tribal Princess",
		"Rainbow Pride Choker", "Traditional Medicine", "Sunset Celebration", "Earth Mother", "Sky Dancer",
		"Golden Harvest", "Red River", "Blue Ocean", "Green Forest", "Orange Flame",
		"Purple Mountain", "White Cloud", "Black Thunder", "Silver Moon", "Bronze Sun",
		"Emerald Dream", "Ruby Heart", "Sapphire Soul", "Diamond Spirit", "Pearl Essence",
	},
	"bracelets": {
		"Heritage Bead Set", "Warrior's Honor", "Unity Circle", "Strength Band", "Courage Wrap",
		"Desert Wind", "Mountain Spirit", "River Flow", "Fire Dance", "Earth Song",
		"Storm Cloud", "Sun Ray", "Moon Beam", "Star Light", "Dawn Break",
		"Dusk Fall", "Rain Drop", "Snow Flake", "Wind Whisper", "Thunder Roll",
		"Lightning Strike", "Rainbow Bridge", "Golden Path", "Silver Trail", "Bronze Way",
	},
	"accessories": {
		"Sunset Dreams Earrings", "Celestial Moon", "Desert Sunset Anklet", "Morning Glory", "Evening Star",
		"Crystal Clear", "Ocean Wave", "Mountain Peak", "Forest Deep", "Prairie Wide",
		"Valley Low", "Ridge High", "Canyon Deep", "Mesa Flat", "Butte Tall",
		"Creek Narrow", "River Wide", "Lake Calm", "Sea Vast", "Pond Small",
		"Spring Fresh", "Summer Warm", "Autumn Cool", "Winter Cold", "Flower Bloom",
	},
	"ceremonial": {
		"Warrior Princess Crown", "Royal Crown Headpiece", "Chief's Regalia", "Shaman's Staff", "Sacred Mask",
		"Victory Banner", "Honor Shield", "Peace Pipe", "War Paint", "Spirit Guide",
		"Ancestor Call", "Elder Wisdom", "Youth Energy", "Mother Earth", "Father Sky",
		"Sister Moon", "Brother Sun", "Child Star", "Grandparent Tree", "Family Circle",
		"Tribe Unity", "Clan Honor", "Nation Pride", "Heritage Strong", "Legacy Eternal",
	},
}

var descriptions = []string{
	"Handcrafted with traditional techniques passed down through generations.",
	"Features authentic Zulu patterns and vibrant color combinations.",
	"Made by skilled artisans using premium quality beads and materials.",
	"Perfect for special occasions or meaningful everyday wear.",
	"Each piece tells a unique story of African heritage and culture.",
	"Inspired by ancient Zulu traditions and modern artistic vision.",
	"Carefully designed to honor the rich cultural legacy of the Zulu people.",
	"Combines traditional craftsmanship with contemporary style elements.",
	"A timeless piece that celebrates the beauty of African beadwork.",
	"Reflects the spiritual and cultural significance of Zulu art.",
}

var colorSets = [][]string{
	{"red", "gold", "blue"}, {"orange", "black", "white"}, {"green", "brown", "white"},
	{"blue", "white", "gold"}, {"red", "orange", "yellow"}, {"purple", "pink", "white"},
	{"black", "red", "gold"}, {"green", "yellow", "brown"}, {"blue", "silver", "white"},
	{"orange", "brown", "gold"}, {"red", "black", "white"}, {"green", "blue", "yellow"},
}

var images = []string{
	"https://images.unsplash.com/photo-1618160702438-9b02ab6515c9?w=800&h=800&fit=crop",
	"https://images.unsplash.com/photo-1582562124811-c09040d0a901?w=800&h=800&fit=crop",
	"https://images.unsplash.com/photo-1465146344425-f00d5f5c8f07?w=800&h=800&fit=crop",
	"https://images.unsplash.com/photo-1500375592092-40eb2168fd21?w=800&h=800&fit=crop",
	"https://images.unsplash.com/photo-1482938289607-e9573fc25ebb?w=800&h=800&fit=crop",
	"https://images.unsplash.com/photo-1500673922987-e212871fec22?w=800&h=800&fit=crop",
	"https://images.unsplash.com/photo-1470813740244-df37b8c1edcb?w=800&h=800&fit=crop",
	"https://images.unsplash.com/photo-1486718448742-163732cd1544?w=800&h=800&fit=crop",
}

// Generator synthesises catalog entries from fixed pools. The shape of the
// output depends only on the arguments to Generate; prices, featured and
// stock flags come from the random source. A Generator is not safe for
// concurrent use.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a generator seeded with seed. A zero seed draws a
// fresh seed, so every process gets different prices.
func NewGenerator(seed uint64) *Generator {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &Generator{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Generate returns count products with ids startID, startID+1, ...
func (g *Generator) Generate(startID, count int) []*domproduct.Product {
	if count <= 0 {
		return []*domproduct.Product{}
	}

	products := make([]*domproduct.Product, 0, count)
	for i := 0; i < count; i++ {
		category := GeneratedCategories[i%len(GeneratedCategories)]
		names := productNames[category]
		name := names[(i/len(GeneratedCategories))%len(names)]

		price := basePrices[category] + g.rng.Float64()*2*priceVariation - priceVariation
		price = max(MinPrice, price)

		colors := make([]string, len(colorSets[i%len(colorSets)]))
		copy(colors, colorSets[i%len(colorSets)])

		products = append(products, &domproduct.Product{
			ID:          strconv.Itoa(startID + i),
			Name:        name + " " + nameSuffixes[category],
			Description: descriptions[i%len(descriptions)],
			Price:       decimal.NewFromFloat(price).Round(2),
			Category:    category,
			Image:       images[i%len(images)],
			Featured:    g.rng.Float64() < featuredChance,
			Colors:      colors,
			InStock:     g.rng.Float64() < inStockChance,
		})
	}
	return products
}
