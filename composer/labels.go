package composer

// WhenToTakePriority is the order supplement groups appear in a plan.
var WhenToTakePriority = []WhenToTake{
	Morning,
	BeforeMeal,
	WithMeal,
	AfterMeal,
	Afternoon,
	Evening,
	BeforeBed,
	AsNeeded,
}

var whenToTakeLabels = map[WhenToTake]string{
	Morning:    "Morning",
	BeforeMeal: "Before Meal",
	WithMeal:   "With Meal",
	AfterMeal:  "After Meal",
	Afternoon:  "Afternoon",
	Evening:    "Evening",
	BeforeBed:  "Before Bed",
	AsNeeded:   "As Needed",
}

var mealCategoryLabels = map[MealCategory]string{
	Breakfast: "Breakfast",
	Lunch:     "Lunch",
	Dinner:    "Dinner",
	Snack:     "Snack",
}

var muscleGroupLabels = map[MuscleGroup]string{
	Back:  "Back",
	Chest: "Chest",
	Arms:  "Arms",
}

// WhenToTakeLabel returns the heading used for a supplement group.
func WhenToTakeLabel(k WhenToTake) string {
	if l, ok := whenToTakeLabels[k]; ok {
		return l
	}
	return string(k)
}

func MealCategoryLabel(c MealCategory) string {
	if l, ok := mealCategoryLabels[c]; ok {
		return l
	}
	return string(c)
}

func MuscleGroupLabel(g MuscleGroup) string {
	if l, ok := muscleGroupLabels[g]; ok {
		return l
	}
	return string(g)
}

// ValidWhenToTake reports whether k is one of the known buckets.
func ValidWhenToTake(k WhenToTake) bool {
	_, ok := whenToTakeLabels[k]
	return ok
}
