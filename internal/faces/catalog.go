package faces

import "github.com/wesen/techo/pkg/pixelart"

// Faces in flag order: -0 is Composed, -5 is Troubled.
var catalog = []Face{
	{
		Name:        "composed",
		Description: "prim, closed-mouth default",
		Art: pixelart.New(
			"...........111...........",
			"..........13.............",
			"..........1..............",
			"...........1.............",
			"..........11011216...11..",
			".....16..1125731516.41113",
			"...1135..1051110115401155",
			"..11101014111101311511111",
			"..11010115237333111061611",
			"...0165151111115511041332",
			"...1012110111101511131011",
			"...1050110051500151500106",
			"...1101110405130011501055",
			"....101105340573345510101",
			"....110100013110001134041",
			".....10147107731030150506",
			".....141677777777315.011.",
			"......1057375377331..102.",
			"......1..6777777730..113.",
			".......1..07013730....1..",
			"...........0777300....1..",
			".006000000..000050.......",
			".030470700000001104......",
			".0407460407001100006000..",
			"000042004400001101760000.",
			"1150203330060000421076600",
			"0150003377706020120207060",
			"0350030737330605002020500",
		),
	},
	{
		Name:        "smile",
		Description: "eyes closed in a smile",
		Art: pixelart.New(
			"...........111...........",
			"..........13.............",
			"..........1..............",
			"...........1.............",
			"..........11011216...11..",
			".....16..1125731516.41113",
			"...1135.11051110115401155",
			"..11101014111101311511111",
			"..11010115237333111061611",
			"...0165151111115511041332",
			"...1012110111101511131011",
			"...1050110051520151500106",
			"...1101110305173011501055",
			"....101107730577305510101",
			"....110107073170770134041",
			".....10160707707070150506",
			".....141677777777315.011.",
			"......1057375377331..102.",
			"......1..6704407330..113.",
			".......1..07017730....1..",
			"...........0777300....1..",
			".006000000..000050.......",
			".030470700000001104......",
			".0407460407001100006000..",
			"000042004400001101760000.",
			"1150203330060000421076600",
			"0150003377706020120207060",
			"0350030737330605002020500",
		),
	},
	{
		Name:        "grin",
		Description: "sharp eyes with a grin",
		Art: pixelart.New(
			"...........111...........",
			"..........13.............",
			"..........1..............",
			"...........1.............",
			"..........11011216...11..",
			".....16..1125731516.41113",
			"...1135.11051110115401155",
			"..11101014111101311511111",
			"..11010115237333111061611",
			"...0165151111115511041332",
			"...1012110111101511131011",
			"...1050110051500151500106",
			"...1101110405134011501055",
			"....101107340543045510101",
			"....110100073170001134041",
			".....10147107701030150506",
			".....141677777777315.011.",
			"......1057375377331..102.",
			"......1..6704407730..113.",
			".......1..07013730....1..",
			"...........0777300....1..",
			".006000000..000050.......",
			".030470700000001104......",
			".0407460407001100006000..",
			"000042004400001101760000.",
			"1150203330060000421076600",
			"0150003377706020120207060",
			"0350030737330605002020500",
		),
	},
	{
		Name:        "wide-eyed",
		Description: "eyes wide open",
		Art: pixelart.New(
			"...........111...........",
			"..........13.............",
			"..........1..............",
			"...........1.............",
			"..........11011216...11..",
			".....16..1125731516.41113",
			"...1135.11051110115401155",
			"..11101014111101311511111",
			"..11010115237333111061611",
			"...0165151111115511041332",
			"...1012110111101511131011",
			"...1050110051500151500106",
			"...1101110405130011501055",
			"....101105340573345510101",
			"....110100000110001134041",
			".....10147017710130150506",
			".....141670077700315.011.",
			"......1057375377331..102.",
			"......1..6777777730..113.",
			".......1..07010730....1..",
			"...........0777300....1..",
			".006000000..000050.......",
			".030470700000001104......",
			".0407460407001100006000..",
			"000042004400001101760000.",
			"1150203330060000421076600",
			"0150003377706020120207060",
			"0350030737330605002020500",
		),
	},
	{
		Name:        "surprised",
		Description: "round eyes and an open mouth",
		Art: pixelart.New(
			"...........111...........",
			"..........13.............",
			"..........1..............",
			"...........1.............",
			"..........11011216...11..",
			".....16..1125731516.41113",
			"...1135.11051110115401155",
			"..11101014111101311511111",
			"..11010115237333111061611",
			"...0165151111115511041332",
			"...1012110111101511131011",
			"...1050110051500151500106",
			"...1101110405140011501055",
			"....101105040540445510101",
			"....110100703107001134041",
			".....10140707707030150506",
			".....141670777707315.011.",
			"......1057375377331..102.",
			"......1..6770007730..113.",
			".......1..07010730....1..",
			"...........0777300....1..",
			".006000000..000050.......",
			".030470700000001104......",
			".0407460407001100006000..",
			"000042004400001101760000.",
			"1150203330060000421076600",
			"0150003377706020120207060",
			"0350030737330605002020500",
		),
	},
	{
		Name:        "troubled",
		Description: "worried brows",
		Art: pixelart.New(
			"...........111...........",
			"..........13.............",
			"..........1..............",
			"...........1.............",
			"..........11011216...11..",
			".....16..1125731516.41113",
			"...1135.11051110115401155",
			"..11101014111101311511111",
			"..11010115237333111061611",
			"...0165151111115511041332",
			"...1012110111101511131011",
			"...1050110051500151500106",
			"...1101110405140011501055",
			"....101105440574345510101",
			"....110100003100031134041",
			".....10147177771730150506",
			".....141600077000315.011.",
			"......1057375377331..102.",
			"......1..6777777730..113.",
			".......1..07010730....1..",
			"...........0777300....1..",
			".006000000..000050.......",
			".030470700000001104......",
			".0407460407001100006000..",
			"000042004400001101760000.",
			"1150203330060000421076600",
			"0150003377706020120207060",
			"0350030737330605002020500",
		),
	},
}
