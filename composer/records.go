package composer

// Records are the read-only snapshots the composer works on. They are
// decoupled from the gorm models so composition never touches the database.

type MealCategory string

const (
	Breakfast MealCategory = "breakfast"
	Lunch     MealCategory = "lunch"
	Dinner    MealCategory = "dinner"
	Snack     MealCategory = "snack"
)

type DietaryFlags struct {
	Vegan       bool `json:"vegan"`
	GlutenFree  bool `json:"gluten_free"`
	LactoseFree bool `json:"lactose_free"`
	NutFree     bool `json:"nut_free"`
}

type MealRecord struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Category    MealCategory `json:"category"`
	Calories    int          `json:"calories"`
	ProteinG    float64      `json:"protein_g"`
	CarbsG      float64      `json:"carbs_g"`
	FatsG       float64      `json:"fats_g"`
	PortionSize string       `json:"portion_size"`
	Note        string       `json:"note,omitempty"`
	Flags       DietaryFlags `json:"dietary_flags"`
}

// WhenToTake is the time-of-day bucket a supplement belongs to.
type WhenToTake string

const (
	Morning    WhenToTake = "morning"
	BeforeMeal WhenToTake = "before_meal"
	WithMeal   WhenToTake = "with_meal"
	AfterMeal  WhenToTake = "after_meal"
	Afternoon  WhenToTake = "afternoon"
	Evening    WhenToTake = "evening"
	BeforeBed  WhenToTake = "before_bed"
	AsNeeded   WhenToTake = "as_needed"
)

type SupplementRecord struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	PillsPerDose int        `json:"pills_per_dose"`
	WhenToTake   WhenToTake `json:"when_to_take"`
	Benefits     string     `json:"benefits"`
	Dosage       string     `json:"dosage,omitempty"`
	Note         string     `json:"note,omitempty"`
}

type MuscleGroup string

const (
	Back  MuscleGroup = "back"
	Chest MuscleGroup = "chest"
	Arms  MuscleGroup = "arms"
)

type ExerciseRecord struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	MuscleGroup MuscleGroup `json:"muscle_group"`
	Sets        int         `json:"sets"`
	Description string      `json:"description,omitempty"`
}
