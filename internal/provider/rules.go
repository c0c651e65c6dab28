package provider

import "nonton/internal/extract"

// Field names shared by the rulesets and the record mappers.
const (
	fieldTitle    = "title"
	fieldLink     = "link"
	fieldImage    = "image"
	fieldEpisodes = "episodes"
	fieldStatus   = "status"
	fieldSrc      = "src"
)

// searchRules matches one result card per ".bs" block on the search page.
var searchRules = extract.Ruleset{
	Item: ".bs",
	Fields: []extract.Field{
		{Name: fieldTitle, Selector: ".tt"},
		{Name: fieldLink, Selector: "a", Attr: "href", Kind: extract.Link},
		{Name: fieldImage, Selector: "img", Attr: "src", Kind: extract.Link},
		{Name: fieldEpisodes, Selector: ".epx"},
		{Name: fieldStatus, Selector: ".sb"},
	},
}

// episodeRules matches the items of the detail page's episode list.
var episodeRules = extract.Ruleset{
	Scope: "#daftarepisode",
	Item:  "li",
	Fields: []extract.Field{
		{Name: fieldTitle, Selector: "a"},
		{Name: fieldLink, Selector: "a", Attr: "href", Kind: extract.Link},
	},
}

// streamRules matches the embed frame inside the episode page's player.
var streamRules = extract.Ruleset{
	Scope: "#pembed",
	Item:  "iframe",
	Fields: []extract.Field{
		{Name: fieldSrc, Attr: "src", Kind: extract.Link},
	},
}
