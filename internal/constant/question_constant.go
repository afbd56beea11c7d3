package constant

// QuestionCategory is the closed set of topic tags a daily question can carry.
type QuestionCategory string

const (
	CategoryDaily        QuestionCategory = "daily"
	CategoryMemory       QuestionCategory = "memory"
	CategoryFamily       QuestionCategory = "family"
	CategoryGratitude    QuestionCategory = "gratitude"
	CategoryDream        QuestionCategory = "dream"
	CategoryChildhood    QuestionCategory = "childhood"
	CategoryFood         QuestionCategory = "food"
	CategoryTravel       QuestionCategory = "travel"
	CategoryRelationship QuestionCategory = "relationship"
	CategoryFuture       QuestionCategory = "future"
)

// AllCategories lists every valid category, in display order.
var AllCategories = []QuestionCategory{
	CategoryDaily,
	CategoryMemory,
	CategoryFamily,
	CategoryGratitude,
	CategoryDream,
	CategoryChildhood,
	CategoryFood,
	CategoryTravel,
	CategoryRelationship,
	CategoryFuture,
}

func IsValidCategory(c string) bool {
	for _, cat := range AllCategories {
		if string(cat) == c {
			return true
		}
	}
	return false
}
