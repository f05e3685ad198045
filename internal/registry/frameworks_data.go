package registry

// buildFrameworks returns the three disclosure-readiness frameworks.
// All three share the same four TCFD-style pillars (governance,
// strategy, risk_management, metrics_and_targets) — ISSB (IFRS S1/S2)
// and KSSB are both explicitly TCFD-aligned — but differ in category
// weights, item wording, and regulatory deadlines.
func buildFrameworks() map[FrameworkID]Framework {
	frameworks := []Framework{
		{
			ID:       FrameworkTCFD,
			Name:     "Task Force on Climate-related Financial Disclosures",
			Citation: "TCFD Final Recommendations, 2017 (updated 2021)",
			Categories: []Category{
				{Key: "governance", Name: "Governance", Weight: 0.25},
				{Key: "strategy", Name: "Strategy", Weight: 0.25},
				{Key: "risk_management", Name: "Risk Management", Weight: 0.25},
				{Key: "metrics_and_targets", Name: "Metrics and Targets", Weight: 0.25},
			},
			Items: tcfdStyleItems(
				"the board's oversight of climate-related risks and opportunities is described",
				"management's role in assessing and managing climate-related issues is described",
				"the board reviews climate-related progress at a defined cadence",
				"climate-related risks and opportunities over short, medium, and long term are identified",
				"scenario analysis, including a 2°C or lower pathway, informs strategy",
				"the resilience of strategy is assessed under different climate scenarios",
				"processes for identifying and assessing climate-related risks are disclosed",
				"climate risk identification is integrated into overall risk management",
				"Scope 1 and Scope 2 GHG emissions are disclosed",
				"metrics used to assess climate-related risks and opportunities are disclosed",
				"targets used to manage climate-related risks and performance are disclosed",
				"Scope 3 GHG emissions and the related risk are disclosed",
			),
			RegulatoryDeadlines: []string{
				"Final TCFD recommendations adopted 2017; framework folded into IFRS S2 from 2023",
				"Mandatory TCFD-aligned disclosure for large UK companies: reporting periods from 2022-04-06",
				"Mandatory TCFD-aligned disclosure for Japan Prime Market issuers: FY2023 filings",
			},
		},
		{
			ID:       FrameworkISSB,
			Name:     "IFRS Sustainability Disclosure Standards (ISSB S1/S2)",
			Citation: "IFRS S1 General Requirements / IFRS S2 Climate-related Disclosures",
			Categories: []Category{
				{Key: "governance", Name: "Governance", Weight: 0.20},
				{Key: "strategy", Name: "Strategy", Weight: 0.30},
				{Key: "risk_management", Name: "Risk Management", Weight: 0.20},
				{Key: "metrics_and_targets", Name: "Metrics and Targets", Weight: 0.30},
			},
			Items: tcfdStyleItems(
				"governance body oversight of sustainability-related risks is disclosed (IFRS S1 ¶27)",
				"management's role in governance processes is disclosed (IFRS S1 ¶27)",
				"the governance body's oversight cadence over sustainability matters is disclosed",
				"climate-related risks and opportunities reasonably expected to affect the entity are identified (IFRS S2 ¶13)",
				"climate resilience is assessed using scenario analysis (IFRS S2 ¶22)",
				"the anticipated financial effects of climate risk on the business model are disclosed",
				"processes to identify, assess, and prioritise climate-related risks are disclosed (IFRS S2 ¶25)",
				"climate risk processes are integrated into the entity's overall risk management process",
				"Scope 1 and Scope 2 GHG emissions, gross and by scope, are disclosed (IFRS S2 ¶29)",
				"industry-based metrics relevant to the entity's business model are disclosed",
				"climate-related targets and progress against them are disclosed (IFRS S2 ¶33)",
				"Scope 3 GHG emissions are disclosed (IFRS S2 ¶29)",
			),
			RegulatoryDeadlines: []string{
				"IFRS S1/S2 effective for annual reporting periods beginning on or after 2024-01-01",
				"Jurisdictional adoption roadmaps phasing in ISSB-aligned disclosure from 2025 onward",
				"Australia mandatory climate disclosure (ASRS), ISSB-aligned, Group 1 entities from FY2024-25",
			},
		},
		{
			ID:       FrameworkKSSB,
			Name:     "Korea Sustainability Standards Board Disclosure Standards",
			Citation: "KSSB Exposure Drafts, ISSB-aligned, 2024",
			Categories: []Category{
				{Key: "governance", Name: "Governance", Weight: 0.25},
				{Key: "strategy", Name: "Strategy", Weight: 0.20},
				{Key: "risk_management", Name: "Risk Management", Weight: 0.25},
				{Key: "metrics_and_targets", Name: "Metrics and Targets", Weight: 0.30},
			},
			Items: tcfdStyleItems(
				"board-level oversight of climate-related risks and opportunities is disclosed",
				"management's delegated role in climate governance is disclosed",
				"the board's review cadence for climate matters is disclosed",
				"climate-related risks and opportunities relevant to the Korean regulatory context are identified",
				"scenario analysis aligned with K-ETS pricing pathways informs strategy",
				"the financial effects of a disorderly transition on domestic operations are disclosed",
				"risk identification and assessment processes are disclosed",
				"climate risk is integrated into enterprise risk management",
				"Scope 1 and Scope 2 GHG emissions are disclosed, consistent with K-ETS reporting",
				"sector-specific metrics aligned with K-ETS allocation are disclosed",
				"emission-reduction targets consistent with Korea's NDC are disclosed",
				"Scope 3 GHG emissions across the value chain are disclosed",
			),
			RegulatoryDeadlines: []string{
				"KSSB exposure drafts aligned to ISSB published 2024",
				"Mandatory KSSB disclosure for KOSPI-listed issuers with market cap ≥ KRW 2 trillion: phased from 2026",
				"Phase-in to all KOSPI-listed issuers targeted by 2030",
			},
		},
	}

	out := make(map[FrameworkID]Framework, len(frameworks))
	for _, f := range frameworks {
		out[f.ID] = f
	}
	return out
}

// tcfdStyleItems builds the twelve-item, four-category checklist
// shared by all three frameworks (three items per category, in
// governance/strategy/risk_management/metrics_and_targets order). The
// descriptions differ per framework; the evaluator wiring, static
// baseline statuses, and effort levels are structurally identical so
// that TCFD, ISSB, and KSSB remain directly comparable.
func tcfdStyleItems(
	govBoard, govMgmt, govCadence,
	stratRisks, stratScenario, stratResilience,
	riskProcess, riskIntegration, riskScope12,
	metricsGHG, metricsTargets, metricsScope3 string,
) []ChecklistItem {
	return []ChecklistItem{
		{Key: "gov_board_oversight", CategoryKey: "governance", Description: govBoard,
			Recommendation: "Document board charter language assigning explicit climate oversight.",
			Evaluator:      EvaluatorStatic, StaticStatus: StatusCompliant, Effort: EffortLow},
		{Key: "gov_management_role", CategoryKey: "governance", Description: govMgmt,
			Recommendation: "Name an accountable executive and publish reporting lines.",
			Evaluator:      EvaluatorStatic, StaticStatus: StatusPartial, Effort: EffortMedium},
		{Key: "gov_oversight_cadence", CategoryKey: "governance", Description: govCadence,
			Recommendation: "Adopt a quarterly climate review cadence at board level.",
			Evaluator:      EvaluatorStatic, StaticStatus: StatusCompliant, Effort: EffortLow},
		{Key: "strat_risks_identified", CategoryKey: "strategy", Description: stratRisks,
			Recommendation: "Extend the risk register to cover long-term (>10y) horizons.",
			Evaluator:      EvaluatorStatic, StaticStatus: StatusCompliant, Effort: EffortLow},
		{Key: "strat_scenario_analysis", CategoryKey: "strategy", Description: stratScenario,
			Recommendation: "Commission a below-2°C scenario analysis for core facilities.",
			Evaluator:      EvaluatorStatic, StaticStatus: StatusPartial, Effort: EffortMedium},
		{Key: "strat_resilience", CategoryKey: "strategy", Description: stratResilience,
			Recommendation: "Publish a strategy resilience statement referencing scenario outputs.",
			Evaluator:      EvaluatorStatic, StaticStatus: StatusPartial, Effort: EffortMedium},
		{Key: "risk_identification_process", CategoryKey: "risk_management", Description: riskProcess,
			Recommendation: "Formalise the climate risk identification process in a written procedure.",
			Evaluator:      EvaluatorStatic, StaticStatus: StatusCompliant, Effort: EffortLow},
		{Key: "risk_integration", CategoryKey: "risk_management", Description: riskIntegration,
			Recommendation: "Integrate climate risk scoring into the enterprise risk register.",
			Evaluator:      EvaluatorStatic, StaticStatus: StatusPartial, Effort: EffortMedium},
		{Key: "risk_scope12_disclosure", CategoryKey: "risk_management", Description: riskScope12,
			Recommendation: "Disclose Scope 1 and Scope 2 emissions for every reporting facility.",
			Evaluator:      EvaluatorScope12, Effort: EffortMedium},
		{Key: "metrics_ghg_intensity", CategoryKey: "metrics_and_targets", Description: metricsGHG,
			Recommendation: "Publish revenue- and asset-normalised GHG intensity metrics.",
			Evaluator:      EvaluatorStatic, StaticStatus: StatusCompliant, Effort: EffortLow},
		{Key: "metrics_climate_targets", CategoryKey: "metrics_and_targets", Description: metricsTargets,
			Recommendation: "Set a science-based emission-reduction target with an interim milestone.",
			Evaluator:      EvaluatorStatic, StaticStatus: StatusPartial, Effort: EffortMedium},
		{Key: "metrics_scope3_disclosure", CategoryKey: "metrics_and_targets", Description: metricsScope3,
			Recommendation: "Establish a Scope 3 value-chain inventory, starting with purchased goods and services.",
			Evaluator:      EvaluatorScope3, Effort: EffortHigh},
	}
}
