package llm

import "strings"

type scenarioTemplate struct {
	keywords []string
	items    string
}

// scenarioTemplates are evaluated in order against the lowercased prompt;
// the first template with a matching keyword wins.
var scenarioTemplates = []scenarioTemplate{
	{
		[]string{"formal", "business", "office"},
		"Navy blue blazer, White button-up shirt, Gray dress pants, Black leather belt, Black oxford shoes, Silver tie clip",
	},
	{
		[]string{"date", "dinner"},
		"Black slim-fit jeans, Burgundy button-up shirt, Brown leather jacket, Brown chelsea boots, Silver watch",
	},
	{
		[]string{"summer", "hot", "beach"},
		"White linen shirt, Beige chino shorts, Brown leather sandals, Straw hat, Tortoise shell sunglasses",
	},
	{
		[]string{"winter", "cold", "snow"},
		"Gray wool sweater, Dark blue jeans, Black puffer jacket, Black leather boots, Red beanie, Black leather gloves",
	},
	{
		[]string{"workout", "gym", "exercise"},
		"Black moisture-wicking t-shirt, Gray athletic shorts, White running shoes, Black athletic socks, Black fitness watch",
	},
}

const casualTemplate = "White t-shirt, Blue jeans, Gray hoodie, White sneakers, Black watch"

// FallbackOutfit picks a canned outfit for the prompt by scenario keyword
// match. The default casual template guarantees a non-empty result.
func FallbackOutfit(prompt string) []string {
	p := strings.ToLower(prompt)
	for _, tmpl := range scenarioTemplates {
		for _, keyword := range tmpl.keywords {
			if strings.Contains(p, keyword) {
				return SplitItems(tmpl.items)
			}
		}
	}
	return SplitItems(casualTemplate)
}
