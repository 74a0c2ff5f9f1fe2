package packlist

import (
	"math"
	"strings"
)

// computeQuantities derives the clothing counts for a trip. The base count is
// clamped to [2, 6]: a one day trip still packs for two, and very long trips
// assume re-wear or laundry. Underwear and socks scale linearly with the trip
// length instead. Every category is scaled by the profile factor using
// math.Round (half away from zero) and floored at 1, so a warm trip still
// lists a single jacket even though its raw count is zero. Line items are
// never omitted, only scaled.
func computeQuantities(days int, bucket Bucket, factor float64) Quantities {
	base := days
	if base < 2 {
		base = 2
	}
	if base > 6 {
		base = 6
	}

	tshirts := base
	if bucket == BucketWarm {
		tshirts++
	}
	jacket := 1
	if bucket == BucketWarm {
		jacket = 0
	}

	scale := func(raw int) int {
		scaled := int(math.Round(float64(raw) * factor))
		if scaled < 1 {
			return 1
		}
		return scaled
	}

	return Quantities{
		TShirts:   scale(tshirts),
		Underwear: scale(days),
		Socks:     scale(days),
		Jacket:    scale(jacket),
	}
}

type activityRule struct {
	tags  []string
	items []string
}

// Each rule is checked independently, so a trip tagged both beach and hiking
// collects the items of both rules.
var activityRules = []activityRule{
	{tags: []string{"beach", "strand"}, items: []string{"Swimwear", "Flip-Flops"}},
	{tags: []string{"hiking", "wandern"}, items: []string{"Hiking Boots", "Backpack Rain Cover"}},
	{tags: []string{"business", "arbeit"}, items: []string{"Business Outfit", "Chargers/Laptop"}},
}

// activityItems returns the supplementary items for the given activity tags.
// Tags are matched case-insensitively; unknown tags are ignored.
func activityItems(activities []string) []Item {
	tags := make(map[string]struct{}, len(activities))
	for _, a := range activities {
		tags[strings.ToLower(strings.TrimSpace(a))] = struct{}{}
	}

	var extra []Item
	for _, rule := range activityRules {
		for _, tag := range rule.tags {
			if _, ok := tags[tag]; ok {
				for _, name := range rule.items {
					extra = append(extra, Item{Name: name, Qty: 1})
				}
				break
			}
		}
	}
	return extra
}
