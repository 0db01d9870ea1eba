package inventory

import "strconv"

// Quality is the quality tier of an item as reported by the game.
type Quality int

const (
	QualityNormal    Quality = 0
	QualityGenuine   Quality = 1
	QualityVintage   Quality = 3
	QualityUnusual   Quality = 5
	QualityUnique    Quality = 6
	QualityCommunity Quality = 7
	QualityValve     Quality = 8
	QualitySelfMade  Quality = 9
	QualityStrange   Quality = 11
	QualityHaunted   Quality = 13
	QualityPowerup   Quality = 255
)

type qualityInfo struct {
	name   string
	abbrev string
}

var qualities = map[Quality]qualityInfo{
	QualityNormal:    {"Normal", "N"},
	QualityGenuine:   {"Genuine", "G"},
	QualityVintage:   {"Vintage", "V"},
	QualityUnusual:   {"Unusual", "!"},
	QualityUnique:    {"Unique", "U"},
	QualityCommunity: {"Community", "C"},
	QualityValve:     {"Valve", "*"},
	QualitySelfMade:  {"Self-made", "^"},
	QualityStrange:   {"Strange", "S"},
	QualityHaunted:   {"Haunted", "H"},
	QualityPowerup:   {"Powerup", "P"},
}

// Name returns the display name of the quality, or the numeric value for unknown tiers.
func (q Quality) Name() string {
	if info, ok := qualities[q]; ok {
		return info.name
	}
	return strconv.Itoa(int(q))
}

// Known reports whether the quality is in the quality table.
func (q Quality) Known() bool {
	_, ok := qualities[q]
	return ok
}

// Abbrev returns the short display abbreviation of the quality.
func (q Quality) Abbrev() string {
	if info, ok := qualities[q]; ok {
		return info.abbrev
	}
	return "?"
}

// Is reports whether s names this quality by display name or abbreviation.
func (q Quality) Is(s string) bool {
	info, ok := qualities[q]
	if !ok {
		return false
	}
	return s == info.name || s == info.abbrev
}

func (q Quality) String() string {
	return q.Name()
}
