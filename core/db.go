package core

// DBOrdering is a single ORDER BY term, bound from the API's `ordering`
// query parameter and mapped to a whitelisted column by each repository.
type DBOrdering struct {
	Field     string
	Ascending bool
}

func (ord DBOrdering) String() string {
	direction := "DESC"
	if ord.Ascending {
		direction = "ASC"
	}
	return ord.Field + " " + direction
}
