package composer

import (
	"fmt"
	"strconv"
)

func mealItem(m MealRecord) Item {
	it := Item{
		Title:    m.Name,
		Subtitle: MealCategoryLabel(m.Category),
		Facts: []Fact{
			{Label: "Calories", Value: fmt.Sprintf("%d kcal", m.Calories)},
			{Label: "Protein", Value: grams(m.ProteinG)},
			{Label: "Carbs", Value: grams(m.CarbsG)},
			{Label: "Fats", Value: grams(m.FatsG)},
		},
		Badges: dietaryBadges(m.Flags),
		Note:   m.Note,
	}
	if m.PortionSize != "" {
		it.Facts = append(it.Facts, Fact{Label: "Portion", Value: m.PortionSize})
	}
	return it
}

func supplementItem(s SupplementRecord) Item {
	it := Item{
		Title: s.Name,
		Facts: []Fact{{Label: "Per dose", Value: plural(s.PillsPerDose, "pill", "pills")}},
		Body:  s.Benefits,
		Note:  s.Note,
	}
	if s.Dosage != "" {
		it.Facts = append(it.Facts, Fact{Label: "Dosage", Value: s.Dosage})
	}
	return it
}

func exerciseItem(e ExerciseRecord) Item {
	return Item{
		Title:    e.Name,
		Subtitle: MuscleGroupLabel(e.MuscleGroup),
		Facts:    []Fact{{Label: "Sets", Value: plural(e.Sets, "set", "sets")}},
		Body:     e.Description,
	}
}

func dietaryBadges(f DietaryFlags) []string {
	var out []string
	if f.Vegan {
		out = append(out, "Vegan")
	}
	if f.GlutenFree {
		out = append(out, "Gluten Free")
	}
	if f.LactoseFree {
		out = append(out, "Lactose Free")
	}
	if f.NutFree {
		out = append(out, "Nut Free")
	}
	return out
}

func grams(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "g"
}

func plural(n int, one, many string) string {
	if n == 1 {
		return "1 " + one
	}
	return fmt.Sprintf("%d %s", n, many)
}
