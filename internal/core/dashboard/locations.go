package dashboard

import (
	"sort"

	"github.com/ogurasousui/gymledger/internal/core/record"
)

var locationColors = map[record.Location]string{
	record.LocationNexus:    "#9EC9FF",
	record.LocationElisir:   "#E8D9C0",
	record.LocationYounique: "#D9B3FF",
	record.LocationAvenue:   "#A6DAD9",
}

const defaultLocationColor = "#DDDDDD"

// LocationColor は拠点の表示色を返します。表示専用のヒントです。
func LocationColor(location record.Location) string {
	if c, ok := locationColors[location]; ok {
		return c
	}
	return defaultLocationColor
}

// LocationTotal は拠点と取引種別ごとの金額合計です。
type LocationTotal struct {
	Location record.Location
	Type     record.TransactionType
	Total    float64
}

// LocationBreakdown は拠点×取引種別の合計を返します。
// 既知の拠点と種別はすべて 0 で初期化され、データに現れた未知の拠点や種別はその後ろに名前順で並びます。
// 拠点または種別が空の行は集計しません。金額を解釈できない行は 0 として扱います。
func LocationBreakdown(transactions []record.Row) []LocationTotal {
	totals := make(map[record.Location]map[record.TransactionType]float64)
	locations := record.Locations()
	types := record.TransactionTypes()

	for _, loc := range locations {
		totals[loc] = make(map[record.TransactionType]float64, len(types))
		for _, typ := range types {
			totals[loc][typ] = 0
		}
	}

	var extraLocations []record.Location
	extraTypes := make(map[record.TransactionType]struct{})

	for _, row := range transactions {
		loc := record.Location(row.Value(record.ColLocation))
		typ := record.TransactionType(row.Value(record.ColType))
		if loc == "" || typ == "" {
			continue
		}

		byType, ok := totals[loc]
		if !ok {
			byType = make(map[record.TransactionType]float64, len(types))
			for _, known := range types {
				byType[known] = 0
			}
			totals[loc] = byType
			extraLocations = append(extraLocations, loc)
		}
		if !isKnownType(typ) {
			extraTypes[typ] = struct{}{}
		}

		amount, err := record.ParseAmount(row.Value(record.ColAmount))
		if err != nil {
			amount = 0
		}
		byType[typ] += amount
	}

	sort.Slice(extraLocations, func(i, j int) bool { return extraLocations[i] < extraLocations[j] })
	locations = append(locations, extraLocations...)

	sortedExtraTypes := make([]record.TransactionType, 0, len(extraTypes))
	for typ := range extraTypes {
		sortedExtraTypes = append(sortedExtraTypes, typ)
	}
	sort.Slice(sortedExtraTypes, func(i, j int) bool { return sortedExtraTypes[i] < sortedExtraTypes[j] })

	out := make([]LocationTotal, 0, len(locations)*len(types))
	for _, loc := range locations {
		byType := totals[loc]
		for _, typ := range types {
			out = append(out, LocationTotal{Location: loc, Type: typ, Total: byType[typ]})
		}
		for _, typ := range sortedExtraTypes {
			if total, ok := byType[typ]; ok {
				out = append(out, LocationTotal{Location: loc, Type: typ, Total: total})
			}
		}
	}
	return out
}

func isKnownType(typ record.TransactionType) bool {
	for _, known := range record.TransactionTypes() {
		if known == typ {
			return true
		}
	}
	return false
}
