package chart

import (
	"hash/fnv"
	"image/color"
	"strings"
)

// team colors as used by the official timing graphics; unknown teams
// fall back to a hash-derived color so the two traces stay apart
var teamColors = map[string]color.RGBA{
	"red bull racing": {0x36, 0x71, 0xC6, 0xff},
	"ferrari":         {0xE8, 0x00, 0x2D, 0xff},
	"mercedes":        {0x27, 0xF4, 0xD2, 0xff},
	"mclaren":         {0xFF, 0x80, 0x00, 0xff},
	"aston martin":    {0x22, 0x99, 0x71, 0xff},
	"alpine":          {0x00, 0x93, 0xCC, 0xff},
	"williams":        {0x64, 0xC4, 0xFF, 0xff},
	"rb":              {0x66, 0x92, 0xFF, 0xff},
	"alphatauri":      {0x66, 0x92, 0xFF, 0xff},
	"toro rosso":      {0x66, 0x92, 0xFF, 0xff},
	"kick sauber":     {0x52, 0xE2, 0x52, 0xff},
	"sauber":          {0x52, 0xE2, 0x52, 0xff},
	"alfa romeo":      {0xC9, 0x2D, 0x4B, 0xff},
	"haas":            {0xB6, 0xBA, 0xBD, 0xff},
	"racing point":    {0xF5, 0x98, 0xC8, 0xff},
	"force india":     {0xF5, 0x98, 0xC8, 0xff},
	"renault":         {0xFF, 0xF5, 0x00, 0xff},
}

func TeamColor(team string) color.RGBA {
	key := strings.ToLower(strings.TrimSpace(team))
	if c, ok := teamColors[key]; ok {
		return c
	}
	for name, c := range teamColors {
		if strings.Contains(key, name) {
			return c
		}
	}

	h := fnv.New32a()
	h.Write([]byte(key))
	sum := h.Sum32()
	return color.RGBA{
		R: 0x60 | uint8(sum),
		G: 0x60 | uint8(sum>>8),
		B: 0x60 | uint8(sum>>16),
		A: 0xff,
	}
}
