package catalog

import (
	"github.com/shelfwise/shelfwise-go/internal/domain/entities/account"
	"github.com/shelfwise/shelfwise-go/internal/domain/entities/catalog"
)

// builtinProducts is the default guide catalog. An overlay file replaces it
// wholesale; see NewStore.
var builtinProducts = []catalog.ContentItem{
	{
		ID:         "ai-job-search",
		Title:      "The AI-Powered Job Search",
		OneLiner:   "Land your next role with AI working for you, not against you",
		Price:      29,
		RelatedIDs: []catalog.ProductID{"interview-mastery", "personal-brand"},
	},
	{
		ID:         "interview-mastery",
		Title:      "Interview Mastery",
		OneLiner:   "Walk into any interview prepared for every question",
		Price:      24,
		RelatedIDs: []catalog.ProductID{"ai-job-search", "personal-brand"},
	},
	{
		ID:         "personal-brand",
		Title:      "Your Personal Brand Playbook",
		OneLiner:   "Build a reputation that opens doors before you knock",
		Price:      24,
		RelatedIDs: []catalog.ProductID{"ai-job-search", "side-hustle-blueprint"},
	},
	{
		ID:         "side-hustle-blueprint",
		Title:      "The Side Hustle Blueprint",
		OneLiner:   "Turn spare hours into a real business, one weekend at a time",
		Price:      34,
		RelatedIDs: []catalog.ProductID{"financial-freedom", "personal-brand"},
	},
	{
		ID:         "financial-freedom",
		Title:      "The Financial Freedom Guide",
		OneLiner:   "A plain-language path from paycheck stress to lasting security",
		Price:      34,
		RelatedIDs: []catalog.ProductID{"side-hustle-blueprint"},
	},
	{
		ID:       "complete-collection",
		Title:    "The Complete Collection",
		OneLiner: "Every Shelfwise guide, one bundle, lifetime updates",
		Price:    99,
		IsBundle: true,
	},
}

var builtinChapters = []catalog.ChapterItem{
	{ProductID: "ai-job-search", Index: 0, Title: "Why the Old Job Search Is Dead", EstimatedMinutes: 18},
	{ProductID: "ai-job-search", Index: 1, Title: "Building Your AI Toolkit", EstimatedMinutes: 25},
	{ProductID: "ai-job-search", Index: 2, Title: "Resumes That Beat the Filters", EstimatedMinutes: 30},
	{ProductID: "ai-job-search", Index: 3, Title: "Outreach at Scale Without Spam", EstimatedMinutes: 22},
	{ProductID: "ai-job-search", Index: 4, Title: "Researching Companies in Minutes", EstimatedMinutes: 20},
	{ProductID: "ai-job-search", Index: 5, Title: "Negotiating With Data", EstimatedMinutes: 28},
	{ProductID: "ai-job-search", Index: 6, Title: "Your First 90 Days", EstimatedMinutes: 24},

	{ProductID: "interview-mastery", Index: 0, Title: "The Interviewer's Real Questions", EstimatedMinutes: 20},
	{ProductID: "interview-mastery", Index: 1, Title: "Stories That Stick", EstimatedMinutes: 25},
	{ProductID: "interview-mastery", Index: 2, Title: "Technical Rounds Without Panic", EstimatedMinutes: 30},
	{ProductID: "interview-mastery", Index: 3, Title: "Questions You Should Be Asking", EstimatedMinutes: 15},
	{ProductID: "interview-mastery", Index: 4, Title: "Closing Strong", EstimatedMinutes: 18},

	{ProductID: "personal-brand", Index: 0, Title: "What a Brand Actually Is", EstimatedMinutes: 15},
	{ProductID: "personal-brand", Index: 1, Title: "Choosing Your Lane", EstimatedMinutes: 20},
	{ProductID: "personal-brand", Index: 2, Title: "Writing in Public", EstimatedMinutes: 25},
	{ProductID: "personal-brand", Index: 3, Title: "The Compounding Network", EstimatedMinutes: 22},
	{ProductID: "personal-brand", Index: 4, Title: "Measuring What Matters", EstimatedMinutes: 18},

	{ProductID: "side-hustle-blueprint", Index: 0, Title: "Picking an Idea That Pays", EstimatedMinutes: 22},
	{ProductID: "side-hustle-blueprint", Index: 1, Title: "Your First Customer This Month", EstimatedMinutes: 28},
	{ProductID: "side-hustle-blueprint", Index: 2, Title: "Pricing Without Apologizing", EstimatedMinutes: 20},
	{ProductID: "side-hustle-blueprint", Index: 3, Title: "Systems Before Scale", EstimatedMinutes: 25},
	{ProductID: "side-hustle-blueprint", Index: 4, Title: "When to Quit Your Day Job", EstimatedMinutes: 24},
	{ProductID: "side-hustle-blueprint", Index: 5, Title: "Taxes, Legal, and Boring Essentials", EstimatedMinutes: 30},

	{ProductID: "financial-freedom", Index: 0, Title: "Your Number", EstimatedMinutes: 18},
	{ProductID: "financial-freedom", Index: 1, Title: "Plugging the Leaks", EstimatedMinutes: 22},
	{ProductID: "financial-freedom", Index: 2, Title: "The Automatic Portfolio", EstimatedMinutes: 28},
	{ProductID: "financial-freedom", Index: 3, Title: "Debt, Ranked and Routed", EstimatedMinutes: 24},
	{ProductID: "financial-freedom", Index: 4, Title: "Income You Don't Trade Hours For", EstimatedMinutes: 26},
	{ProductID: "financial-freedom", Index: 5, Title: "Staying Free", EstimatedMinutes: 20},
}

// builtinGoalAlignments maps purchaser goal categories to the guide that
// serves them. The personal category has no aligned guide.
var builtinGoalAlignments = map[account.GoalCategory]catalog.ProductID{
	account.GoalCareer:    "ai-job-search",
	account.GoalBusiness:  "side-hustle-blueprint",
	account.GoalFinancial: "financial-freedom",
}
