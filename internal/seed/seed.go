// Package seed holds the static 17-facility sample portfolio loaded at
// process startup. spec.md §1 names the seed dataset as an external
// collaborator ("static configuration loaded at startup") rather than
// part of the quantitative core, so it lives in its own package away
// from the engines it feeds.
package seed

import "github.com/climatefin/riskcore/internal/facility"

// Facilities returns a fresh copy of the 17-facility sample portfolio
// on every call so callers (including the session store, which takes
// ownership of whatever slice it is handed) never share backing
// arrays with the process-wide seed set.
func Facilities() []facility.Facility {
	out := make([]facility.Facility, len(seedData))
	copy(out, seedData)
	return out
}

var seedData = []facility.Facility{
	{
		ID: "seed-001", Name: "Gwangyang Integrated Works", Company: "Daehan Steel Group",
		Sector: "steel", Location: "Gwangyang, South Korea", Latitude: 34.94, Longitude: 127.70,
		Scope1: 5_200_000, Scope2: 1_100_000, Scope3: 2_400_000,
		Revenue: 9_800_000_000, EBITDA: 1_300_000_000, AssetValue: 11_500_000_000,
	},
	{
		ID: "seed-002", Name: "Pohang No. 2 Works", Company: "Daehan Steel Group",
		Sector: "steel", Location: "Pohang, South Korea", Latitude: 36.03, Longitude: 129.38,
		Scope1: 4_700_000, Scope2: 980_000, Scope3: 2_100_000,
		Revenue: 8_200_000_000, EBITDA: 1_050_000_000, AssetValue: 9_600_000_000,
	},
	{
		ID: "seed-003", Name: "Danyang Clinker Plant", Company: "Hanil Cement",
		Sector: "cement", Location: "Danyang, South Korea", Latitude: 36.98, Longitude: 128.36,
		Scope1: 1_800_000, Scope2: 260_000, Scope3: 420_000,
		Revenue: 900_000_000, EBITDA: 140_000_000, AssetValue: 1_600_000_000,
	},
	{
		ID: "seed-004", Name: "Samcheok Cement Works", Company: "Hanil Cement",
		Sector: "cement", Location: "Samcheok, South Korea", Latitude: 37.45, Longitude: 129.17,
		Scope1: 2_100_000, Scope2: 310_000, Scope3: 500_000,
		Revenue: 1_050_000_000, EBITDA: 165_000_000, AssetValue: 1_850_000_000,
	},
	{
		ID: "seed-005", Name: "Yeosu NCC Complex", Company: "Taeyang Chemical",
		Sector: "chemicals", Location: "Yeosu, South Korea", Latitude: 34.76, Longitude: 127.66,
		Scope1: 2_600_000, Scope2: 700_000, Scope3: 1_900_000,
		Revenue: 4_500_000_000, EBITDA: 520_000_000, AssetValue: 5_300_000_000,
	},
	{
		ID: "seed-006", Name: "Daesan Petrochemical Complex", Company: "Taeyang Chemical",
		Sector: "chemicals", Location: "Daesan, South Korea", Latitude: 37.00, Longitude: 126.35,
		Scope1: 2_900_000, Scope2: 760_000, Scope3: 2_050_000,
		Revenue: 4_900_000_000, EBITDA: 560_000_000, AssetValue: 5_700_000_000,
	},
	{
		ID: "seed-007", Name: "Dangjin Coal Station Units 1-4", Company: "Korea Eastern Power",
		Sector: "power_generation", Location: "Dangjin, South Korea", Latitude: 37.02, Longitude: 126.58,
		Scope1: 9_500_000, Scope2: 0, Scope3: 350_000,
		Revenue: 2_700_000_000, EBITDA: 310_000_000, AssetValue: 6_200_000_000,
	},
	{
		ID: "seed-008", Name: "Boryeong LNG Combined Cycle", Company: "Korea Eastern Power",
		Sector: "power_generation", Location: "Boryeong, South Korea", Latitude: 36.33, Longitude: 126.49,
		Scope1: 3_100_000, Scope2: 0, Scope3: 120_000,
		Revenue: 1_650_000_000, EBITDA: 210_000_000, AssetValue: 2_900_000_000,
	},
	{
		ID: "seed-009", Name: "Ulsan Refinery Complex", Company: "Hanbando Energy",
		Sector: "oil_gas", Location: "Ulsan, South Korea", Latitude: 35.50, Longitude: 129.38,
		Scope1: 3_400_000, Scope2: 610_000, Scope3: 4_200_000,
		Revenue: 7_300_000_000, EBITDA: 640_000_000, AssetValue: 8_100_000_000,
	},
	{
		ID: "seed-010", Name: "Incheon Terminal & Storage", Company: "Hanbando Energy",
		Sector: "oil_gas", Location: "Incheon, South Korea", Latitude: 37.46, Longitude: 126.63,
		Scope1: 620_000, Scope2: 140_000, Scope3: 980_000,
		Revenue: 1_900_000_000, EBITDA: 190_000_000, AssetValue: 2_200_000_000,
	},
	{
		ID: "seed-011", Name: "Incheon Hub Fleet Operations", Company: "Hanseong Air Cargo",
		Sector: "aviation", Location: "Incheon, South Korea", Latitude: 37.46, Longitude: 126.44,
		Scope1: 2_200_000, Scope2: 60_000, Scope3: 1_500_000,
		Revenue: 3_600_000_000, EBITDA: 290_000_000, AssetValue: 4_400_000_000,
	},
	{
		ID: "seed-012", Name: "Busan New Port Terminal", Company: "Nambu Shipping Lines",
		Sector: "shipping", Location: "Busan, South Korea", Latitude: 35.10, Longitude: 129.04,
		Scope1: 1_600_000, Scope2: 90_000, Scope3: 2_800_000,
		Revenue: 2_950_000_000, EBITDA: 250_000_000, AssetValue: 3_700_000_000,
	},
	{
		ID: "seed-013", Name: "Ulsan Vehicle Assembly Plant", Company: "Hyeondae Motors",
		Sector: "automotive", Location: "Ulsan, South Korea", Latitude: 35.54, Longitude: 129.31,
		Scope1: 480_000, Scope2: 310_000, Scope3: 3_900_000,
		Revenue: 12_000_000_000, EBITDA: 1_100_000_000, AssetValue: 7_800_000_000,
	},
	{
		ID: "seed-014", Name: "Asan Battery Components Plant", Company: "Hyeondae Motors",
		Sector: "automotive", Location: "Asan, South Korea", Latitude: 36.79, Longitude: 127.00,
		Scope1: 210_000, Scope2: 260_000, Scope3: 1_650_000,
		Revenue: 4_100_000_000, EBITDA: 410_000_000, AssetValue: 3_300_000_000,
	},
	{
		ID: "seed-015", Name: "Jeongseon Anthracite Mine", Company: "Taebaek Resources",
		Sector: "mining", Location: "Jeongseon, South Korea", Latitude: 37.38, Longitude: 128.66,
		Scope1: 640_000, Scope2: 95_000, Scope3: 210_000,
		Revenue: 410_000_000, EBITDA: 48_000_000, AssetValue: 620_000_000,
	},
	{
		ID: "seed-016", Name: "Gimje Rice & Grain Processing", Company: "Honam Agribusiness",
		Sector: "agriculture", Location: "Gimje, South Korea", Latitude: 35.80, Longitude: 126.88,
		Scope1: 95_000, Scope2: 60_000, Scope3: 310_000,
		Revenue: 580_000_000, EBITDA: 52_000_000, AssetValue: 410_000_000,
	},
	{
		// consumer_electronics is deliberately not one of the ten
		// canonical sector tags, so this facility always exercises the
		// unknown-sector warning path with default sector parameters.
		ID: "seed-017", Name: "Shenzhen Contract Electronics Plant", Company: "Pan-Asia Electronics",
		Sector: "consumer_electronics", Location: "Shenzhen, China", Latitude: 22.54, Longitude: 114.06,
		Scope1: 140_000, Scope2: 980_000, Scope3: 5_600_000,
		Revenue: 6_700_000_000, EBITDA: 520_000_000, AssetValue: 4_900_000_000,
	},
}
