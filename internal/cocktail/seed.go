package cocktail

import "bartrender/pkg/models"

// Hand-curated catalog entries. These ship with the service so the home
// screen is never empty and the flagship recipes never depend on the
// generative backend.

var curatedList = []models.CocktailSummary{
	{Name: "Porn Star Martini", Description: "The world's most searched cocktail. Passion fruit, vanilla, and a sparkling touch.", Tags: []string{"Sweet", "Passion Fruit", "Popular"}, IsPremium: true, Likes: 1250000},
	{Name: "Espresso Martini", Description: "A sumptuous blend of vodka, coffee liqueur, and fresh espresso.", Tags: []string{"Energizing", "Coffee", "Vodka"}, IsPremium: true, Likes: 980000},
	{Name: "Margarita", Description: "The perfect balance of tequila, lime juice, and salt.", Tags: []string{"Classic", "Sour", "Tequila"}, Likes: 850000},
	{Name: "Old Fashioned", Description: "Pure elegance: whiskey, sugar, bitters, and a dash of tradition.", Tags: []string{"Unforgettable", "Strong", "Whiskey"}, IsPremium: true, Likes: 720000},
	{Name: "Negroni", Description: "The ultimate Italian bitter. Gin, Campari, and Sweet Red Vermouth.", Tags: []string{"Unforgettable", "Bitter", "Gin"}, IsPremium: true, Likes: 680000},
	{Name: "Caipirinha", Description: "Brazil's sunshine: Cachaça, fresh lime, and brown sugar.", Tags: []string{"Classic", "Refreshing", "Cachaça"}, Likes: 650000},
	{Name: "Mojito", Description: "The Cuban refreshment: fresh mint, lime, and white rum.", Tags: []string{"Classic", "Minty", "Rum"}, Likes: 1120000},
	{Name: "Americano", Description: "The precursor to the Negroni, lighter and sparkling.", Tags: []string{"Unforgettable", "Aperitif", "Bubbly"}, Likes: 450000},
	{Name: "Dry Martini", Description: "The king of cocktails. Dry, powerful, and sophisticated.", Tags: []string{"Unforgettable", "Dry", "Gin"}, IsPremium: true, Likes: 580000},
	{Name: "Sex on the Beach", Description: "A fruity and sunny blend of vodka, peach, and cranberry.", Tags: []string{"Classic", "Fruity", "Vodka"}, Likes: 420000},
	{Name: "Mai Tai", Description: "A tropical explosion of rum, lime, orgeat, and orange curaçao.", Tags: []string{"Tiki", "Tropical", "Rum"}, Likes: 380000},
	{Name: "Daiquiri", Description: "The holy trinity of rum, lime, and sugar. Simple perfection.", Tags: []string{"Classic", "Sour", "Rum"}, Likes: 410000},
	{Name: "Bloody Mary", Description: "The ultimate brunch cocktail. Vodka, tomato juice, and spices.", Tags: []string{"Savory", "Spicy", "Vodka"}, Likes: 350000},
	{Name: "Moscow Mule", Description: "Vodka, spicy ginger beer, and lime juice. Served in a copper mug.", Tags: []string{"Refreshing", "Spicy", "Vodka"}, Likes: 520000},
	{Name: "Whiskey Sour", Description: "Whiskey, lemon juice, sugar, and optionally an egg white for texture.", Tags: []string{"Classic", "Sour", "Whiskey"}, Likes: 480000},
	{Name: "Gimlet", Description: "A sharp and refreshing blend of gin and lime cordial.", Tags: []string{"Classic", "Sour", "Gin"}, Likes: 290000},
	{Name: "Mimosa", Description: "Sparkling wine and chilled orange juice. A breakfast staple.", Tags: []string{"Brunch", "Bubbly", "Fruity"}, Likes: 310000},
	{Name: "Bellini", Description: "Prosecco and white peach purée. Venetian elegance.", Tags: []string{"Brunch", "Bubbly", "Fruity"}, IsPremium: true, Likes: 280000},
	{Name: "French 75", Description: "Gin, champagne, lemon juice, and sugar. Packs a punch.", Tags: []string{"Classic", "Bubbly", "Gin"}, IsPremium: true, Likes: 340000},
	{Name: "Aperol Spritz", Description: "Aperol, Prosecco, and soda water. The taste of Italian summer.", Tags: []string{"Aperitif", "Bubbly", "Refreshing"}, Likes: 600000},
	{Name: "Tom Collins", Description: "Gin, lemon juice, sugar, and carbonated water.", Tags: []string{"Classic", "Refreshing", "Gin"}, Likes: 250000},
	{Name: "Long Island Iced Tea", Description: "Five spirits and a splash of cola. Deceptively strong.", Tags: []string{"Party", "Strong", "Complex"}, Likes: 400000},
	{Name: "Piña Colada", Description: "Rum, coconut cream, and pineapple juice. A Caribbean dream.", Tags: []string{"Tropical", "Creamy", "Rum"}, Likes: 550000},
	{Name: "Tequila Sunrise", Description: "Tequila, orange juice, and grenadine syrup.", Tags: []string{"Fruity", "Classic", "Tequila"}, Likes: 320000},
	{Name: "Singapore Sling", Description: "A complex gin-based sling cocktail from Singapore.", Tags: []string{"Complex", "Fruity", "Gin"}, IsPremium: true, Likes: 210000},
	{Name: "Dark 'n' Stormy", Description: "Dark rum and ginger beer served over ice.", Tags: []string{"Spicy", "Highball", "Rum"}, Likes: 270000},
	{Name: "Vesper", Description: "Gin, vodka, and Kina Lillet. Shaken, not stirred.", Tags: []string{"Strong", "Classy", "Bond"}, IsPremium: true, Likes: 180000},
	{Name: "Sidecar", Description: "Cognac, orange liqueur, and lemon juice.", Tags: []string{"Classic", "Sour", "Cognac"}, IsPremium: true, Likes: 190000},
	{Name: "Mint Julep", Description: "Bourbon, sugar, water, crushed or shaved ice, and fresh mint.", Tags: []string{"Classic", "Minty", "Bourbon"}, Likes: 230000},
	{Name: "Boulevardier", Description: "Whiskey, sweet vermouth, and campari.", Tags: []string{"Bitter", "Strong", "Whiskey"}, IsPremium: true, Likes: 150000},
	{Name: "Sazerac", Description: "A local variation of a cognac or whiskey cocktail from New Orleans.", Tags: []string{"Classic", "Strong", "Absinthe"}, IsPremium: true, Likes: 140000},
	{Name: "Paloma", Description: "Tequila and grapefruit soda. Refreshing and tart.", Tags: []string{"Refreshing", "Citrus", "Tequila"}, Likes: 360000},
	{Name: "Aviation", Description: "Gin, maraschino liqueur, crème de violette, and lemon juice.", Tags: []string{"Floral", "Classic", "Gin"}, IsPremium: true, Likes: 160000},
	{Name: "Corpse Reviver No. 2", Description: "Gin, lemon juice, Cointreau, Lillet Blanc, and a dash of absinthe.", Tags: []string{"Classic", "Strong", "Gin"}, IsPremium: true, Likes: 130000},
	{Name: "Penicillin", Description: "Scotch, lemon juice, honey-ginger syrup.", Tags: []string{"Spicy", "Smoky", "Scotch"}, IsPremium: true, Likes: 175000},
	{Name: "Bramble", Description: "Gin, lemon juice, sugar syrup, crème de mûre, and crushed ice.", Tags: []string{"Fruity", "Refreshing", "Gin"}, Likes: 220000},
	{Name: "Clover Club", Description: "Gin, lemon juice, raspberry syrup, and an egg white.", Tags: []string{"Fruity", "Classic", "Gin"}, IsPremium: true, Likes: 145000},
	{Name: "White Russian", Description: "Vodka, coffee liqueur, and cream.", Tags: []string{"Creamy", "Sweet", "Vodka"}, Likes: 390000},
	{Name: "Black Russian", Description: "Vodka and coffee liqueur.", Tags: []string{"Strong", "Coffee", "Vodka"}, Likes: 260000},
	{Name: "Grasshopper", Description: "Crème de menthe, crème de cacao, and cream.", Tags: []string{"Sweet", "Creamy", "Minty"}, Likes: 200000},
}

var shotsList = []models.CocktailSummary{
	{Name: "B-52", Description: "Layered shot: coffee liqueur, Irish cream, and Grand Marnier.", Tags: []string{"Layered", "Sweet", "Creamy"}, Likes: 8500},
	{Name: "Kamikaze", Description: "The striking classic: Vodka, triple sec, and fresh lime.", Tags: []string{"Sour", "Strong", "Vodka"}, Likes: 6200},
	{Name: "Brain Hemorrhage", Description: "Peach schnapps, Baileys, and grenadine creating a spooky visual.", Tags: []string{"Creepy", "Sweet", "Halloween"}, Likes: 5400},
	{Name: "Flatliner", Description: "Sambuca, tequila and tabasco. Not for the faint hearted.", Tags: []string{"Spicy", "Strong", "Intense"}, Likes: 3100},
	{Name: "Jägerbomb", Description: "A shot of Jägermeister dropped into an energy drink.", Tags: []string{"Party", "Energy", "Herbal"}, Likes: 12000},
	{Name: "Lemon Drop", Description: "Vodka and lemon juice with a sugar rim. Sweet and sour.", Tags: []string{"Sour", "Citrus", "Party"}, Likes: 7800},
	{Name: "Silver Bullet", Description: "Gin, Scotch whisky and a twist of lemon peel.", Tags: []string{"Strong", "Classic", "Gin"}, IsPremium: true, Likes: 2200},
	{Name: "Irish Frog", Description: "Midori melon liqueur layered with Irish cream.", Tags: []string{"Sweet", "Layered", "Fun"}, Likes: 4500},
}

const aiLabel = "AI CREATION"

var aiMixes = []models.CocktailSummary{
	{Name: "The Velvet Poet", Description: "A sophisticated blend of aged rum, fig syrup, and walnut bitters, smoked with cinnamon bark.", Tags: []string{"AI Creation", "Elegant", "Smoky", "Winter"}, SpecialLabel: aiLabel, IsPremium: true, Likes: 2400},
	{Name: "Saffron Sunset", Description: "Gin infused with saffron, apricot liqueur, lemon juice, and an egg white foam.", Tags: []string{"AI Creation", "Floral", "Complex", "Summer"}, SpecialLabel: aiLabel, IsPremium: true, Likes: 1850},
	{Name: "Midnight in Tokyo", Description: "Japanese whisky, yuzu juice, matcha syrup, and a splash of soda water.", Tags: []string{"AI Creation", "Refreshing", "Whiskey", "Spring"}, SpecialLabel: aiLabel, IsPremium: true, Likes: 3100},
	{Name: "Scarlet Empress", Description: "Hibiscus-infused vodka, pomegranate molasses, lime, and rose water.", Tags: []string{"AI Creation", "Floral", "Red", "Valentine"}, SpecialLabel: aiLabel, Likes: 1500},
	{Name: "Golden Hour Sour", Description: "Reposado Tequila, agave nectar, grapefruit juice, and a pinch of smoked salt.", Tags: []string{"AI Creation", "Citrus", "Tequila", "Summer"}, SpecialLabel: aiLabel, Likes: 2200},
	{Name: "Emerald City", Description: "Green Chartreuse, gin, maraschino liqueur, and lime. A modern twist on the Last Word.", Tags: []string{"AI Creation", "Herbal", "Strong", "Spring"}, SpecialLabel: aiLabel, IsPremium: true, Likes: 4100},
	{Name: "Smoked Honeycomb", Description: "Mezcal, honeycomb wax, ginger syrup, and lemon. Served with a piece of honeycomb.", Tags: []string{"AI Creation", "Smoky", "Sweet", "Autumn"}, SpecialLabel: aiLabel, IsPremium: true, Likes: 2800},
	{Name: "White Linen", Description: "Cucumber, gin, elderflower liqueur, and lemon. Clean, crisp, and refreshing.", Tags: []string{"AI Creation", "Refreshing", "Gin", "Summer"}, SpecialLabel: aiLabel, Likes: 1900},
	{Name: "Coco Chanel", Description: "Coconut washed vodka, dry vermouth, and a twist of lemon. Pure minimalism.", Tags: []string{"AI Creation", "Creamy", "Classy", "Winter"}, SpecialLabel: aiLabel, IsPremium: true, Likes: 3500},
	{Name: "Autumn Orchard", Description: "Calvados, pear liqueur, maple syrup, and lemon juice. The essence of fall.", Tags: []string{"AI Creation", "Fruity", "Autumn"}, SpecialLabel: aiLabel, Likes: 1200},
	{Name: "Sakura Breeze", Description: "A delicate Spring mix of Roku gin, cherry blossom syrup, and yuzu tonic.", Tags: []string{"AI Creation", "Floral", "Spring", "Light"}, SpecialLabel: aiLabel, Likes: 1600},
	{Name: "Solar Flare", Description: "Blood orange juice, spicy tequila, jalapeño slices and agave. Hot and cold.", Tags: []string{"AI Creation", "Spicy", "Summer", "Tequila"}, SpecialLabel: aiLabel, IsPremium: true, Likes: 2100},
	{Name: "Nordic Frost", Description: "Aquavit, blue curacao, white cacao liqueur and cream. A winter wonderland.", Tags: []string{"AI Creation", "Creamy", "Winter", "Frozen"}, SpecialLabel: aiLabel, IsPremium: true, Likes: 2900},
	{Name: "Maple Pecan Old Fashioned", Description: "Butter-washed bourbon, maple syrup, and pecan bitters. Cozy autumn vibes.", Tags: []string{"AI Creation", "Cozy", "Autumn", "Bourbon"}, SpecialLabel: aiLabel, IsPremium: true, Likes: 3300},
	{Name: "Lavender Haze", Description: "Empress gin, lavender honey syrup, lemon, and egg white foam. Purple perfection.", Tags: []string{"AI Creation", "Floral", "Spring", "Gin"}, SpecialLabel: aiLabel, IsPremium: true, Likes: 4500},
	{Name: "Electric Melon", Description: "Midori, vodka, sour mix and sparkling water. Neon green summer energy.", Tags: []string{"AI Creation", "Party", "Summer", "Sweet"}, SpecialLabel: aiLabel, Likes: 1800},
	{Name: "Spiced Pumpkin Flip", Description: "Dark rum, pumpkin spice syrup, whole egg and nutmeg dust.", Tags: []string{"AI Creation", "Creamy", "Autumn", "Halloween"}, SpecialLabel: aiLabel, Likes: 2600},
	{Name: "Glacier Mint", Description: "White rum, peppermint schnapps, lime and soda. Icy fresh.", Tags: []string{"AI Creation", "Minty", "Winter", "Refreshing"}, SpecialLabel: aiLabel, Likes: 1400},
	{Name: "Rosemary Paloma", Description: "Grapefruit soda, tequila, and a burnt rosemary sprig garnish.", Tags: []string{"AI Creation", "Herbal", "Spring", "Tequila"}, SpecialLabel: aiLabel, Likes: 2300},
	{Name: "Campfire S'mores", Description: "Marshmallow vodka, chocolate liqueur, cream, with a graham cracker rim.", Tags: []string{"AI Creation", "Sweet", "Autumn", "Dessert"}, SpecialLabel: aiLabel, IsPremium: true, Likes: 3800},
}

// seedDetails holds full recipes for the flagship drinks, keyed by
// display name.
var seedDetails = map[string]models.CocktailDetails{
	"Porn Star Martini": {
		CocktailSummary: models.CocktailSummary{
			Name:        "Porn Star Martini",
			Description: "A provocative and delicious modern cocktail, served with a side of Prosecco.",
			Tags:        []string{"Sweet", "Passion Fruit"},
			IsPremium:   true,
			Likes:       1250000,
		},
		GlassType:     "Coupe Glass",
		VisualContext: "An elegant coupe glass containing a velvety orange-yellow liquid, topped with half a passion fruit, with a small shot of Prosecco on the side.",
		Tools:         []string{"Shaker", "Fine Strainer"},
		Ingredients: []models.Ingredient{
			{Name: "Vanilla Vodka", Amount: "1.5 oz"},
			{Name: "Passion Fruit Liqueur", Amount: "0.5 oz"},
			{Name: "Passion Fruit Purée", Amount: "1 oz"},
			{Name: "Vanilla Syrup", Amount: "0.5 oz"},
			{Name: "Lime Juice", Amount: "0.5 oz"},
			{Name: "Prosecco", Amount: "2 oz", Detail: "Served on the side"},
		},
		Steps: []models.MixingStep{
			{
				Title:       "Passion Freshness",
				Instruction: "Pour all ingredients (except Prosecco) into a shaker filled with ice.",
				ActionType:  "pour",
				VisualState: models.VisualState{
					Background:  "Modern dimly lit bar",
					Glass:       "Stainless steel shaker",
					Accessories: "Jigger",
					Ingredients: "Vodka, passion purée, lime",
					Action:      "Pouring colorful liquids",
					Result:      "Mixture ready to be chilled",
				},
			},
			{
				Title:       "Shake with Force",
				Instruction: "Shake vigorously for 15 seconds to create a beautiful foam.",
				ActionType:  "shake",
				VisualState: models.VisualState{
					Background:  "Modern bar",
					Glass:       "Closed shaker",
					Accessories: "Ice cubes",
					Ingredients: "Passion mixture",
					Action:      "Dynamic shaking motion",
					Result:      "Frosted shaker",
				},
			},
			{
				Title:       "The Service",
				Instruction: "Double strain into a chilled coupe glass.",
				ActionType:  "strain",
				VisualState: models.VisualState{
					Background:  "Modern bar",
					Glass:       "Crystal coupe",
					Accessories: "Fine strainer",
					Ingredients: "Creamy foam",
					Action:      "Straining orange liquid",
					Result:      "Perfect cocktail without ice shards",
				},
			},
			{
				Title:       "The Final Touch",
				Instruction: "Garnish with half a passion fruit and serve the Prosecco on the side.",
				ActionType:  "garnish",
				VisualState: models.VisualState{
					Background:  "Marble counter",
					Glass:       "Coupe + Shot",
					Accessories: "Passion fruit half",
					Ingredients: "Bubbling Prosecco",
					Action:      "Placing fruit delicately",
					Result:      "Iconic duo ready to enjoy",
				},
			},
		},
	},
	"Old Fashioned": {
		CocktailSummary: models.CocktailSummary{
			Name:        "Old Fashioned",
			Description: "The father of all cocktails, simple and powerful.",
			Tags:        []string{"Unforgettable", "Strong", "Whiskey"},
			IsPremium:   true,
			Likes:       720000,
		},
		GlassType:     "Rocks Glass",
		VisualContext: "A heavy rocks glass with a large crystal-clear ice cube and an orange zest.",
		Tools:         []string{"Mixing glass", "Bar spoon"},
		Ingredients: []models.Ingredient{
			{Name: "Bourbon or Rye Whiskey", Amount: "2 oz"},
			{Name: "Angostura Bitters", Amount: "2 dashes"},
			{Name: "Sugar", Amount: "1 cube", Detail: "Or 0.25 oz simple syrup"},
			{Name: "Water", Amount: "a few drops"},
		},
		Steps: []models.MixingStep{
			{
				Title:       "Dissolve",
				Instruction: "Muddle the sugar with bitters and water at the bottom of the glass.",
				ActionType:  "muddle",
				VisualState: models.VisualState{
					Background:  "Dark wood",
					Glass:       "Mixing glass",
					Accessories: "Muddler",
					Ingredients: "Sugar, bitters",
					Action:      "Crushing the sugar",
					Result:      "Aromatic syrup",
				},
			},
			{
				Title:       "The Spirit",
				Instruction: "Add the whiskey and ice, then stir long enough to chill.",
				ActionType:  "stir",
				VisualState: models.VisualState{
					Background:  "Dark wood",
					Glass:       "Mixing glass",
					Accessories: "Bar spoon",
					Ingredients: "Whiskey, ice",
					Action:      "Circular stirring",
					Result:      "Diluted and chilled mixture",
				},
			},
		},
	},
}

// IsSeedShot reports whether name is one of the built-in shots. The
// shots search filter accepts these even without a shot tag.
func IsSeedShot(name string) bool {
	for _, c := range shotsList {
		if c.Name == name {
			return true
		}
	}
	return false
}

// SeedSummaries returns every built-in card in one slice, for search and
// the populate sweep. Copies, so callers may transform freely.
func SeedSummaries() []models.CocktailSummary {
	out := make([]models.CocktailSummary, 0, len(curatedList)+len(shotsList)+len(aiMixes))
	for _, src := range [][]models.CocktailSummary{curatedList, shotsList, aiMixes} {
		for _, c := range src {
			out = append(out, c.Clone())
		}
	}
	return out
}
