package composer

import "log"

type SupplementGroup struct {
	Key   WhenToTake         `json:"key"`
	Items []SupplementRecord `json:"items"`
}

// GroupSupplements buckets supplements by when they are taken. Groups follow
// WhenToTakePriority, empty groups are dropped, and items keep input order.
func GroupSupplements(records []SupplementRecord) []SupplementGroup {
	buckets := make(map[WhenToTake][]SupplementRecord)
	for _, r := range records {
		if r.ID == "" {
			log.Printf("composer: skipping supplement %q with no id", r.Name)
			continue
		}
		if !ValidWhenToTake(r.WhenToTake) {
			log.Printf("composer: skipping supplement %s with unknown when_to_take %q", r.ID, r.WhenToTake)
			continue
		}
		buckets[r.WhenToTake] = append(buckets[r.WhenToTake], r)
	}

	groups := make([]SupplementGroup, 0, len(buckets))
	for _, key := range WhenToTakePriority {
		if items := buckets[key]; len(items) > 0 {
			groups = append(groups, SupplementGroup{Key: key, Items: items})
		}
	}
	return groups
}

// Slot is one cell of a packed row. Blank slots pad the last row.
type Slot[T any] struct {
	Item  T    `json:"item"`
	Blank bool `json:"blank,omitempty"`
}

// PackRows splits items into rows of width. With pad set, the last row is
// filled with blank slots so every row has the same width.
func PackRows[T any](items []T, width int, pad bool) [][]Slot[T] {
	if width < 1 {
		width = 1
	}
	var rows [][]Slot[T]
	for start := 0; start < len(items); start += width {
		end := min(start+width, len(items))
		row := make([]Slot[T], 0, width)
		for _, it := range items[start:end] {
			row = append(row, Slot[T]{Item: it})
		}
		if pad {
			for len(row) < width {
				row = append(row, Slot[T]{Blank: true})
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// Chunk is a soft pagination unit.
type Chunk[T any] struct {
	Items           []T  `json:"items"`
	PageBreakBefore bool `json:"page_break_before"`
}

// Paginate splits items into chunks of perPage, in input order. Every chunk
// after the first starts on a new page.
func Paginate[T any](items []T, perPage int) []Chunk[T] {
	if perPage < 1 {
		perPage = 1
	}
	var chunks []Chunk[T]
	for i, it := range items {
		if i%perPage == 0 {
			chunks = append(chunks, Chunk[T]{PageBreakBefore: i > 0})
		}
		last := &chunks[len(chunks)-1]
		last.Items = append(last.Items, it)
	}
	return chunks
}

// PaginateMeals drops meals without an id and paginates the rest.
func PaginateMeals(records []MealRecord, perPage int) []Chunk[MealRecord] {
	valid := make([]MealRecord, 0, len(records))
	for _, r := range records {
		if r.ID == "" {
			log.Printf("composer: skipping meal %q with no id", r.Name)
			continue
		}
		valid = append(valid, r)
	}
	return Paginate(valid, perPage)
}

// PaginateExercises drops exercises without an id and paginates the rest.
func PaginateExercises(records []ExerciseRecord, perPage int) []Chunk[ExerciseRecord] {
	valid := make([]ExerciseRecord, 0, len(records))
	for _, r := range records {
		if r.ID == "" {
			log.Printf("composer: skipping exercise %q with no id", r.Name)
			continue
		}
		valid = append(valid, r)
	}
	return Paginate(valid, perPage)
}
