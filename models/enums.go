package models

import (
	"encoding/json"
	"strings"
)

// Firm and product categories.
const (
	CategoryVeg    = "veg"
	CategoryNonVeg = "non-veg"
)

// Firm regions.
const (
	RegionSouthIndian = "south-indian"
	RegionNorthIndian = "north-indian"
	RegionChinese     = "chinese"
	RegionBakery      = "bakery"
)

var (
	ValidCategories = []string{CategoryVeg, CategoryNonVeg}
	ValidRegions    = []string{RegionSouthIndian, RegionNorthIndian, RegionChinese, RegionBakery}
)

// StringList is a list-valued field that tolerates the shapes dashboard
// clients actually send: a JSON array, a single JSON string, a JSON-encoded
// array inside a string, or a plain comma-separated string.
type StringList []string

func (s *StringList) UnmarshalJSON(data []byte) error {
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*s = splitTokens(arr)
		return nil
	}
	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	*s = ParseStringList(single)
	return nil
}

// ParseStringList normalizes one raw form value into tokens. A value like
// `["veg","non-veg"]` arrives when the dashboard JSON-encodes the field into
// a multipart part; `veg,non-veg` and `veg` arrive from plain forms.
func ParseStringList(raw string) StringList {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	if strings.HasPrefix(raw, "[") {
		var arr []string
		if err := json.Unmarshal([]byte(raw), &arr); err == nil {
			return splitTokens(arr)
		}
	}
	return splitTokens(strings.Split(raw, ","))
}

// ParseFormList flattens repeated form values into a single token list.
func ParseFormList(values []string) StringList {
	var out StringList
	for _, v := range values {
		out = append(out, ParseStringList(v)...)
	}
	return out
}

func splitTokens(values []string) StringList {
	var out StringList
	for _, v := range values {
		for _, tok := range strings.Split(v, ",") {
			tok = strings.ToLower(strings.TrimSpace(tok))
			if tok != "" {
				out = append(out, tok)
			}
		}
	}
	return out
}

// NormalizeCategories maps raw input onto the fixed category set.
// Unknown tokens are returned, not dropped, so callers can reject them.
func NormalizeCategories(raw StringList) (StringList, []string) {
	return normalizeEnum(raw, ValidCategories)
}

// NormalizeRegions maps raw input onto the fixed region set.
func NormalizeRegions(raw StringList) (StringList, []string) {
	return normalizeEnum(raw, ValidRegions)
}

func normalizeEnum(raw StringList, allowed []string) (StringList, []string) {
	valid := make(map[string]bool, len(allowed))
	for _, v := range allowed {
		valid[v] = true
	}

	var out StringList
	var unknown []string
	seen := make(map[string]bool)
	for _, tok := range raw {
		switch {
		case !valid[tok]:
			unknown = append(unknown, tok)
		case !seen[tok]:
			seen[tok] = true
			out = append(out, tok)
		}
	}
	return out, unknown
}
