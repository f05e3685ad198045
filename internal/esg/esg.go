// Package esg scores a facility portfolio's disclosure readiness
// against a regulatory framework's weighted checklist, producing a
// maturity score, compliance level, and a priority-ranked gap
// analysis, per spec.md §4.4.
//
// The framework registry (categories, checklist items, evaluator
// wiring) is data, not code — this package only walks it; grounds in
// the same "registry of rules, mapper resolves them" shape as the
// teacher's internal/compliance/core/rules_engine.go.
package esg

import (
	"sort"

	"github.com/climatefin/riskcore/internal/facility"
	"github.com/climatefin/riskcore/internal/registry"
)

const (
	levelSeonDo  = "선도" // leading
	levelUsu     = "우수" // excellent
	levelYangHo  = "양호" // good
	levelBoTong  = "보통" // average
	levelMiHeub  = "미흡" // insufficient

	// scaleMaxWeight is the largest category weight across any
	// framework (ISSB/KSSB metrics_and_targets at 0.30); used as the
	// denominator that maps a raw, weight-scaled item gap onto the
	// [1, 10] impact scale spec.md §4.4 describes.
	scaleMaxWeight = 0.30
)

// CategoryScore is one framework category's weighted maturity score.
type CategoryScore struct {
	CategoryKey string
	Name        string
	Weight      float64
	Score       float64 // 0-100
	Gap         float64 // 100 - Score
}

// ItemResult is one checklist item's resolved compliance status.
type ItemResult struct {
	Key            string
	CategoryKey    string
	Description    string
	Recommendation string
	Status         registry.ItemStatus
	Effort         registry.EffortLevel
}

// GapItem is one checklist item ranked for remediation priority.
type GapItem struct {
	ItemResult
	Impact        float64 // 1-10
	PriorityScore float64
}

// Result is the full disclosure-readiness assessment for one
// framework.
type Result struct {
	Framework           registry.FrameworkID
	OverallScore        float64
	ComplianceLevel      string
	MaturityLevel       int
	Categories          []CategoryScore
	Items               []ItemResult
	GapAnalysis         []GapItem
	RegulatoryDeadlines []string
}

// Engine scores portfolios against the configuration registry's
// disclosure frameworks.
type Engine struct {
	registry *registry.Registry
}

// NewEngine builds an ESG scoring Engine.
func NewEngine(reg *registry.Registry) *Engine {
	return &Engine{registry: reg}
}

// Assess scores facilities against frameworkID's checklist. Scope 1/2
// and Scope 3 disclosure items are resolved against the portfolio's
// actual reported emissions; every other item carries its framework-
// defined static baseline status.
func (e *Engine) Assess(facilities []facility.Facility, frameworkID registry.FrameworkID) (Result, error) {
	fw, err := e.registry.Framework(frameworkID)
	if err != nil {
		return Result{}, err
	}

	scope12 := evaluateScope(facilities, func(f facility.Facility) bool { return f.Scope1 > 0 || f.Scope2 > 0 })
	scope3 := evaluateScope(facilities, func(f facility.Facility) bool { return f.Scope3 > 0 })

	items := make([]ItemResult, 0, len(fw.Items))
	itemsByCategory := make(map[string][]ItemResult, len(fw.Categories))
	for _, it := range fw.Items {
		status := it.StaticStatus
		switch it.Evaluator {
		case registry.EvaluatorScope12:
			status = scope12
		case registry.EvaluatorScope3:
			status = scope3
		}
		ir := ItemResult{
			Key: it.Key, CategoryKey: it.CategoryKey, Description: it.Description,
			Recommendation: it.Recommendation, Status: status, Effort: it.Effort,
		}
		items = append(items, ir)
		itemsByCategory[it.CategoryKey] = append(itemsByCategory[it.CategoryKey], ir)
	}

	categories := make([]CategoryScore, 0, len(fw.Categories))
	categoryWeight := make(map[string]float64, len(fw.Categories))
	var overall float64
	for _, cat := range fw.Categories {
		catItems := itemsByCategory[cat.Key]
		var sum float64
		for _, it := range catItems {
			sum += it.Status.Score()
		}
		score := 0.0
		if len(catItems) > 0 {
			score = 100 * sum / float64(len(catItems))
		}
		categories = append(categories, CategoryScore{
			CategoryKey: cat.Key, Name: cat.Name, Weight: cat.Weight,
			Score: score, Gap: 100 - score,
		})
		categoryWeight[cat.Key] = cat.Weight
		overall += cat.Weight * score
	}

	gapAnalysis := buildGapAnalysis(items, categoryWeight)

	return Result{
		Framework:           frameworkID,
		OverallScore:        overall,
		ComplianceLevel:     complianceLevel(overall),
		MaturityLevel:       maturityLevel(overall),
		Categories:          categories,
		Items:               items,
		GapAnalysis:         gapAnalysis,
		RegulatoryDeadlines: fw.RegulatoryDeadlines,
	}, nil
}

// evaluateScope derives a checklist item's status from the fraction
// of the portfolio for which reported is true: all facilities
// reporting is compliant, none is non_compliant, otherwise partial.
func evaluateScope(facilities []facility.Facility, reported func(facility.Facility) bool) registry.ItemStatus {
	if len(facilities) == 0 {
		return registry.StatusNonCompliant
	}
	var count int
	for _, f := range facilities {
		if reported(f) {
			count++
		}
	}
	switch {
	case count == len(facilities):
		return registry.StatusCompliant
	case count == 0:
		return registry.StatusNonCompliant
	default:
		return registry.StatusPartial
	}
}

// buildGapAnalysis ranks every checklist item by priority_score =
// impact / effort_weight, descending. impact is derived from the
// item's own compliance gap (not its category's aggregate gap) scaled
// by its category weight, so an individually non-compliant item in an
// otherwise-strong category still surfaces as a high-impact gap — the
// reading required for spec.md §8's S5 scenario, where the Scope 3
// item must rank first despite sharing its category with one
// compliant and one partially met item.
func buildGapAnalysis(items []ItemResult, categoryWeight map[string]float64) []GapItem {
	gaps := make([]GapItem, 0, len(items))
	for _, it := range items {
		itemGap := 100 - it.Status.Score()*100
		rawImpact := categoryWeight[it.CategoryKey] * itemGap * 0.01
		impact := 1 + 9*(rawImpact/scaleMaxWeight)
		priority := impact / registry.EffortWeight(it.Effort)

		gaps = append(gaps, GapItem{
			ItemResult:    it,
			Impact:        impact,
			PriorityScore: priority,
		})
	}
	sort.SliceStable(gaps, func(i, j int) bool {
		return gaps[i].PriorityScore > gaps[j].PriorityScore
	})
	return gaps
}

// complianceLevel maps an overall score to its Korean regulatory
// maturity label.
func complianceLevel(score float64) string {
	switch {
	case score >= 90:
		return levelSeonDo
	case score >= 80:
		return levelUsu
	case score >= 65:
		return levelYangHo
	case score >= 50:
		return levelBoTong
	default:
		return levelMiHeub
	}
}

// maturityLevel maps an overall score to an integer 1-5 maturity
// level using the same thresholds as complianceLevel.
func maturityLevel(score float64) int {
	switch {
	case score >= 90:
		return 5
	case score >= 80:
		return 4
	case score >= 65:
		return 3
	case score >= 50:
		return 2
	default:
		return 1
	}
}
