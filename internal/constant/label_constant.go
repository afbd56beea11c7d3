package constant

// Relationship is the closed set of family relationship types for a label.
type Relationship string

const (
	RelationshipParent   Relationship = "parent"
	RelationshipSibling  Relationship = "sibling"
	RelationshipChild    Relationship = "child"
	RelationshipSpouse   Relationship = "spouse"
	RelationshipRelative Relationship = "relative"
	RelationshipOther    Relationship = "other"
)

var AllRelationships = []Relationship{
	RelationshipParent,
	RelationshipSibling,
	RelationshipChild,
	RelationshipSpouse,
	RelationshipRelative,
	RelationshipOther,
}

func IsValidRelationship(r string) bool {
	for _, rel := range AllRelationships {
		if string(rel) == r {
			return true
		}
	}
	return false
}

// LabelSortOrder selects the ordering of label listings. Pinned labels
// always sort before unpinned within any order.
type LabelSortOrder string

const (
	LabelSortRecent   LabelSortOrder = "recent"   // last_used_at desc
	LabelSortFrequent LabelSortOrder = "frequent" // usage_count desc
	LabelSortName     LabelSortOrder = "name"     // lexicographic
	LabelSortCreated  LabelSortOrder = "created"  // created_at asc
)
