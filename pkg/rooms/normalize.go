package rooms

import (
	"regexp"
	"strings"
)

// locationPattern captures the first bracketed location name, e.g.
// "[C.Didat.Morgagni (Piano Terra)]".
var locationPattern = regexp.MustCompile(`\[([^\]]+)\]`)

// Normalizer derives short room names such as "CDm 001" or "CDm Aud A" from
// the verbose location column of a schedule.
type Normalizer struct {
	rules []Rule
}

// NewNormalizer builds a normalizer that evaluates the built-in rules
// followed by extra, in order.
func NewNormalizer(extra ...Rule) (*Normalizer, error) {
	rules := append(DefaultRules(), extra...)
	for i := range rules {
		if err := rules[i].compile(); err != nil {
			return nil, err
		}
	}
	return &Normalizer{rules: rules}, nil
}

// Rules returns the rules in evaluation order.
func (n *Normalizer) Rules() []Rule {
	return append([]Rule(nil), n.rules...)
}

// LocationAbbreviation returns the mapped (or verbatim) name of the bracketed
// location, or "" when raw has no brackets.
func LocationAbbreviation(raw string, roomMap map[string]string) string {
	m := locationPattern.FindStringSubmatch(raw)
	if m == nil {
		return ""
	}
	full := strings.TrimSpace(strings.SplitN(m[1], "(", 2)[0])
	if abbr, ok := roomMap[full]; ok {
		return abbr
	}
	return full
}

// RoomToken returns the token of the first matching rule, or "".
func (n *Normalizer) RoomToken(raw string, roomMap map[string]string) string {
	for _, rule := range n.rules {
		if token, ok := rule.Match(raw, roomMap); ok {
			return token
		}
	}
	return ""
}

// Normalize combines location and room tokens ("LOC 5"). When neither
// resolves it falls back to a bare classroom number, then to raw itself.
func (n *Normalizer) Normalize(raw string, roomMap map[string]string) string {
	location := LocationAbbreviation(raw, roomMap)
	room := n.RoomToken(raw, roomMap)

	switch {
	case location != "" && room != "":
		return location + " " + room
	case location != "":
		return location
	case room != "":
		return room
	}

	if m := aulaPattern.FindStringSubmatch(raw); m != nil {
		return m[1]
	}
	return raw
}
