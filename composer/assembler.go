package composer

import "time"

const (
	SupplementsTitle = "Supplements Plan"
	MealsTitle       = "Meal Plan"
	TrainingTitle    = "Training Plan"

	DefaultFooter = "Generated by CoachFlow"
	DateLayout    = "January 2, 2006"
)

// Options are the layout knobs of a plan.
type Options struct {
	MealsPerPage       int
	ExercisesPerPage   int
	SupplementRowWidth int
	PadSupplementRows  bool
	FooterText         string
}

func DefaultOptions() Options {
	return Options{
		MealsPerPage:       3,
		ExercisesPerPage:   3,
		SupplementRowWidth: 3,
		PadSupplementRows:  true,
		FooterText:         DefaultFooter,
	}
}

type MealPlanInput struct {
	Branding         Branding
	SupplementGroups []SupplementGroup
	MealPages        []Chunk[MealRecord]
	ClientName       string
	GeneratedAt      time.Time
}

type TrainingPlanInput struct {
	Branding      Branding
	ExercisePages []Chunk[ExerciseRecord]
	ClientName    string
	GeneratedAt   time.Time
}

// AssembleMealPlan lays out cover, supplements, meals and closer pages.
func AssembleMealPlan(in MealPlanInput, opts Options) Document {
	hdr := header(in.Branding, in.ClientName, in.GeneratedAt)

	var content, meals []*ContentPage
	if len(in.SupplementGroups) > 0 {
		page := &ContentPage{Kind: KindContent, Title: SupplementsTitle, Header: hdr}
		for _, g := range in.SupplementGroups {
			page.Sections = append(page.Sections, supplementSection(g, opts))
		}
		content = append(content, page)
	}
	for _, chunk := range in.MealPages {
		items := make([]Item, 0, len(chunk.Items))
		for _, m := range chunk.Items {
			items = append(items, mealItem(m))
		}
		meals = append(meals, &ContentPage{
			Kind:            KindContent,
			Title:           MealsTitle,
			Header:          hdr,
			Sections:        []Section{singleColumn(items)},
			PageBreakBefore: chunk.PageBreakBefore,
		})
	}
	return wrap(in.Branding, append(content, meals...), lastPage(meals), opts)
}

// AssembleTrainingPlan lays out cover, exercises and closer pages.
func AssembleTrainingPlan(in TrainingPlanInput, opts Options) Document {
	hdr := header(in.Branding, in.ClientName, in.GeneratedAt)

	var content []*ContentPage
	for _, chunk := range in.ExercisePages {
		items := make([]Item, 0, len(chunk.Items))
		for _, e := range chunk.Items {
			items = append(items, exerciseItem(e))
		}
		content = append(content, &ContentPage{
			Kind:            KindContent,
			Title:           TrainingTitle,
			Header:          hdr,
			Sections:        []Section{singleColumn(items)},
			PageBreakBefore: chunk.PageBreakBefore,
		})
	}
	return wrap(in.Branding, content, lastPage(content), opts)
}

// ComposeMealPlan runs the whole pipeline from stored branding and records.
func ComposeMealPlan(raw RawBranding, supplements []SupplementRecord, meals []MealRecord, clientName string, at time.Time, opts Options) Document {
	return AssembleMealPlan(MealPlanInput{
		Branding:         Resolve(raw),
		SupplementGroups: GroupSupplements(supplements),
		MealPages:        PaginateMeals(meals, opts.MealsPerPage),
		ClientName:       clientName,
		GeneratedAt:      at,
	}, opts)
}

func ComposeTrainingPlan(raw RawBranding, exercises []ExerciseRecord, clientName string, at time.Time, opts Options) Document {
	return AssembleTrainingPlan(TrainingPlanInput{
		Branding:      Resolve(raw),
		ExercisePages: PaginateExercises(exercises, opts.ExercisesPerPage),
		ClientName:    clientName,
		GeneratedAt:   at,
	}, opts)
}

func lastPage(pages []*ContentPage) *ContentPage {
	if len(pages) == 0 {
		return nil
	}
	return pages[len(pages)-1]
}

// wrap adds the cover and closer around content. The default footer goes on
// footerPage, and never alongside a closer page.
func wrap(b Branding, content []*ContentPage, footerPage *ContentPage, opts Options) Document {
	var doc Document
	if b.CoverPage != nil {
		doc.Pages = append(doc.Pages, &CoverPage{Kind: KindCover, Panel: panel(b, b.CoverPage)})
	}
	if footerPage != nil && b.CloserPage == nil {
		footerPage.Footer = opts.FooterText
	}
	for _, p := range content {
		doc.Pages = append(doc.Pages, p)
	}
	if b.CloserPage != nil {
		doc.Pages = append(doc.Pages, &CloserPage{Kind: KindCloser, Panel: panel(b, b.CloserPage)})
	}
	return doc
}

func panel(b Branding, p *CustomPage) Panel {
	out := Panel{
		Heading:     p.Heading,
		Subtitle:    b.CoachDisplayName,
		BodyText:    p.BodyText,
		FooterText:  p.FooterText,
		ShowLogo:    p.ShowLogo,
		AccentColor: b.AccentColor,
	}
	if p.ShowLogo {
		out.LogoURL = b.LogoURL
	}
	return out
}

func header(b Branding, clientName string, at time.Time) Header {
	return Header{
		LogoURL:      b.LogoURL,
		LogoPosition: b.LogoPosition,
		AccentColor:  b.AccentColor,
		ClientName:   clientName,
		CoachName:    b.CoachDisplayName,
		GeneratedOn:  at.Format(DateLayout),
	}
}

func supplementSection(g SupplementGroup, opts Options) Section {
	width := opts.SupplementRowWidth
	if width < 1 {
		width = 1
	}
	sec := Section{Title: WhenToTakeLabel(g.Key), Columns: width}
	for _, row := range PackRows(g.Items, width, opts.PadSupplementRows) {
		items := make([]Item, 0, len(row))
		for _, slot := range row {
			if slot.Blank {
				items = append(items, Item{Blank: true})
				continue
			}
			items = append(items, supplementItem(slot.Item))
		}
		sec.Rows = append(sec.Rows, items)
	}
	return sec
}

func singleColumn(items []Item) Section {
	sec := Section{Columns: 1}
	for _, it := range items {
		sec.Rows = append(sec.Rows, []Item{it})
	}
	return sec
}
