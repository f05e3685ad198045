package registry

// canonicalSectorTags lists the ten recognised sector tags in a stable
// display order. "default" is handled separately and excluded here.
var canonicalSectorTags = []string{
	"steel", "cement", "chemicals", "power_generation", "oil_gas",
	"aviation", "shipping", "automotive", "mining", "agriculture",
}

func hazardMap(flood, typhoon, heatwave, drought, slr float64) map[HazardType]float64 {
	return map[HazardType]float64{
		HazardFlood:        flood,
		HazardTyphoon:      typhoon,
		HazardHeatwave:     heatwave,
		HazardDrought:      drought,
		HazardSeaLevelRise: slr,
	}
}

// buildSectors returns the ten canonical sector profiles plus the
// `default` fallback used for unrecognised sector tags. Stranded-asset
// write-down is nonzero only for the carbon-intensive sectors (steel,
// cement, chemicals, power_generation, oil_gas, mining), per spec.md
// §3's "Sector parameters" invariant.
func buildSectors() map[string]Sector {
	sectors := []Sector{
		{
			Tag: "steel", Citation: "IEA Iron & Steel Technology Roadmap",
			EnergyCostShare: 0.05, StrandedAssetRate: 0.020, LearningRate: 0.015,
			KETSBaseAllocation: 0.95, KETSTighten: 0.020, Scope3Exposure: 1.4,
			HazardSensitivity:   hazardMap(1.0, 0.8, 0.9, 0.7, 0.6),
			DefaultLatitudeBand: 37, Coastal: false,
		},
		{
			Tag: "cement", Citation: "IEA Cement Technology Roadmap",
			EnergyCostShare: 0.06, StrandedAssetRate: 0.018, LearningRate: 0.010,
			KETSBaseAllocation: 0.90, KETSTighten: 0.020, Scope3Exposure: 1.2,
			HazardSensitivity:   hazardMap(0.9, 0.7, 1.0, 0.8, 0.5),
			DefaultLatitudeBand: 30, Coastal: false,
		},
		{
			Tag: "chemicals", Citation: "IEA Chemicals and Petrochemicals Roadmap",
			EnergyCostShare: 0.04, StrandedAssetRate: 0.008, LearningRate: 0.020,
			KETSBaseAllocation: 0.85, KETSTighten: 0.025, Scope3Exposure: 1.3,
			HazardSensitivity:   hazardMap(1.1, 0.9, 0.8, 0.6, 0.7),
			DefaultLatitudeBand: 35, Coastal: false,
		},
		{
			Tag: "power_generation", Citation: "IEA World Energy Outlook, power sector",
			EnergyCostShare: 0.1, StrandedAssetRate: 0.025, LearningRate: 0.030,
			KETSBaseAllocation: 0.10, KETSTighten: 0.010, Scope3Exposure: 0.8,
			HazardSensitivity:   hazardMap(1.2, 1.0, 1.1, 1.0, 0.8),
			DefaultLatitudeBand: 33, Coastal: false,
		},
		{
			Tag: "oil_gas", Citation: "IEA Oil and Gas industry pathway",
			EnergyCostShare: 0.060, StrandedAssetRate: 0.022, LearningRate: 0.010,
			KETSBaseAllocation: 0.60, KETSTighten: 0.030, Scope3Exposure: 1.5,
			HazardSensitivity:   hazardMap(1.0, 1.1, 0.7, 0.6, 0.9),
			DefaultLatitudeBand: 28, Coastal: true,
		},
		{
			Tag: "aviation", Citation: "ICAO CORSIA baseline assumptions",
			EnergyCostShare: 0.07, StrandedAssetRate: 0, LearningRate: 0.020,
			KETSBaseAllocation: 0.30, KETSTighten: 0.020, Scope3Exposure: 1.8,
			HazardSensitivity:   hazardMap(0.8, 1.3, 0.9, 0.4, 0.6),
			DefaultLatitudeBand: 32, Coastal: false,
		},
		{
			Tag: "shipping", Citation: "IMO GHG strategy, 2023 revision",
			EnergyCostShare: 0.060, StrandedAssetRate: 0, LearningRate: 0.020,
			KETSBaseAllocation: 0.30, KETSTighten: 0.020, Scope3Exposure: 1.6,
			HazardSensitivity:   hazardMap(1.3, 1.4, 0.6, 0.3, 1.3),
			DefaultLatitudeBand: 25, Coastal: true,
		},
		{
			Tag: "automotive", Citation: "IEA Global EV Outlook",
			EnergyCostShare: 0.025, StrandedAssetRate: 0, LearningRate: 0.025,
			KETSBaseAllocation: 0.50, KETSTighten: 0.025, Scope3Exposure: 1.3,
			HazardSensitivity:   hazardMap(0.9, 0.8, 0.8, 0.5, 0.4),
			DefaultLatitudeBand: 40, Coastal: false,
		},
		{
			Tag: "mining", Citation: "ICMM climate change position statement",
			EnergyCostShare: 0.035, StrandedAssetRate: 0.015, LearningRate: 0.010,
			KETSBaseAllocation: 0.70, KETSTighten: 0.020, Scope3Exposure: 1.1,
			HazardSensitivity:   hazardMap(1.0, 0.7, 1.2, 1.3, 0.3),
			DefaultLatitudeBand: 22, Coastal: false,
		},
		{
			Tag: "agriculture", Citation: "FAO climate-smart agriculture sourcebook",
			EnergyCostShare: 0.030, StrandedAssetRate: 0, LearningRate: 0.015,
			KETSBaseAllocation: 0.80, KETSTighten: 0.015, Scope3Exposure: 1.0,
			HazardSensitivity:   hazardMap(1.1, 0.9, 1.4, 1.5, 0.5),
			DefaultLatitudeBand: 20, Coastal: false,
		},
	}

	out := make(map[string]Sector, len(sectors)+1)
	for _, s := range sectors {
		out[s.Tag] = s
	}
	out["default"] = Sector{
		Tag: "default", Citation: "portfolio-wide default profile for unrecognised sector tags",
		EnergyCostShare: 0.035, StrandedAssetRate: 0, LearningRate: 0.015,
		KETSBaseAllocation: 0.50, KETSTighten: 0.020, Scope3Exposure: 1.0,
		HazardSensitivity:   hazardMap(1.0, 1.0, 1.0, 1.0, 1.0),
		DefaultLatitudeBand: 30, Coastal: false,
	}
	return out
}
