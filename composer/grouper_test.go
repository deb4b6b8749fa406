package composer

import (
	"reflect"
	"strconv"
	"testing"
)

func supp(id string, when WhenToTake) SupplementRecord {
	return SupplementRecord{ID: id, Name: "S" + id, PillsPerDose: 1, WhenToTake: when}
}

func TestGroupSupplementsPriorityOrder(t *testing.T) {
	in := []SupplementRecord{
		supp("1", AsNeeded),
		supp("2", Evening),
		supp("3", Morning),
		supp("4", BeforeBed),
		supp("5", WithMeal),
		supp("6", Morning),
		supp("7", Afternoon),
		supp("8", AfterMeal),
		supp("9", BeforeMeal),
		supp("10", Evening),
	}
	groups := GroupSupplements(in)

	var keys []WhenToTake
	for _, g := range groups {
		if len(g.Items) == 0 {
			t.Fatalf("group %s is empty", g.Key)
		}
		keys = append(keys, g.Key)
	}
	if !reflect.DeepEqual(keys, WhenToTakePriority) {
		t.Fatalf("keys = %v, want %v", keys, WhenToTakePriority)
	}

	ids := func(items []SupplementRecord) []string {
		var out []string
		for _, it := range items {
			out = append(out, it.ID)
		}
		return out
	}
	if got := ids(groups[0].Items); !reflect.DeepEqual(got, []string{"3", "6"}) {
		t.Errorf("morning = %v", got)
	}
	if got := ids(groups[5].Items); !reflect.DeepEqual(got, []string{"2", "10"}) {
		t.Errorf("evening = %v", got)
	}
}

func TestGroupSupplementsOmitsEmptyGroups(t *testing.T) {
	groups := GroupSupplements([]SupplementRecord{supp("1", BeforeBed), supp("2", Morning)})
	if len(groups) != 2 || groups[0].Key != Morning || groups[1].Key != BeforeBed {
		t.Fatalf("groups = %+v", groups)
	}
	if got := GroupSupplements(nil); len(got) != 0 {
		t.Fatalf("expected no groups, got %+v", got)
	}
}

func TestGroupSupplementsSkipsMalformed(t *testing.T) {
	groups := GroupSupplements([]SupplementRecord{
		supp("", Morning),
		supp("2", "at_noon"),
		supp("3", Morning),
	})
	if len(groups) != 1 || len(groups[0].Items) != 1 || groups[0].Items[0].ID != "3" {
		t.Fatalf("groups = %+v", groups)
	}
}

func TestPackRowsPadsLastRow(t *testing.T) {
	var in []SupplementRecord
	for i := 0; i < 4; i++ {
		in = append(in, supp(strconv.Itoa(i+1), Morning))
	}
	groups := GroupSupplements(in)
	rows := PackRows(groups[0].Items, 3, true)
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	for _, s := range rows[0] {
		if s.Blank {
			t.Fatalf("first row has a blank slot: %+v", rows[0])
		}
	}
	if len(rows[1]) != 3 {
		t.Fatalf("second row width = %d, want 3", len(rows[1]))
	}
	if rows[1][0].Blank || rows[1][0].Item.ID != "4" || !rows[1][1].Blank || !rows[1][2].Blank {
		t.Fatalf("second row = %+v", rows[1])
	}
}

func TestPackRowsWithoutPadding(t *testing.T) {
	rows := PackRows([]int{1, 2, 3, 4, 5}, 2, false)
	if len(rows) != 3 || len(rows[2]) != 1 {
		t.Fatalf("rows = %+v", rows)
	}
	if rows := PackRows([]int{}, 3, true); len(rows) != 0 {
		t.Fatalf("expected no rows, got %+v", rows)
	}
}

func TestPaginateMeals(t *testing.T) {
	var meals []MealRecord
	for i := 0; i < 7; i++ {
		meals = append(meals, MealRecord{ID: strconv.Itoa(i), Name: "M"})
	}
	pages := PaginateMeals(meals, 3)

	var sizes []int
	var breaks []bool
	for _, p := range pages {
		sizes = append(sizes, len(p.Items))
		breaks = append(breaks, p.PageBreakBefore)
	}
	if !reflect.DeepEqual(sizes, []int{3, 3, 1}) {
		t.Errorf("sizes = %v", sizes)
	}
	if !reflect.DeepEqual(breaks, []bool{false, true, true}) {
		t.Errorf("breaks = %v", breaks)
	}
	if pages[1].Items[0].ID != "3" || pages[2].Items[0].ID != "6" {
		t.Errorf("page starts = %s, %s", pages[1].Items[0].ID, pages[2].Items[0].ID)
	}
}

func TestPaginateConfigurablePerPage(t *testing.T) {
	pages := Paginate([]string{"a", "b", "c", "d", "e"}, 2)
	if len(pages) != 3 || len(pages[2].Items) != 1 {
		t.Fatalf("pages = %+v", pages)
	}
	if got := PaginateExercises(nil, 3); len(got) != 0 {
		t.Fatalf("expected no pages, got %+v", got)
	}
}

func TestPaginateSkipsRecordsWithoutID(t *testing.T) {
	pages := PaginateExercises([]ExerciseRecord{
		{ID: "a", Name: "Row", Sets: 3},
		{Name: "Broken", Sets: 3},
		{ID: "b", Name: "Curl", Sets: 4},
	}, 3)
	if len(pages) != 1 || len(pages[0].Items) != 2 || pages[0].Items[1].ID != "b" {
		t.Fatalf("pages = %+v", pages)
	}
}
