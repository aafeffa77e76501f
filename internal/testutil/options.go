package testutil

// ownerData holds everything needed to create one owner.
type ownerData struct {
	name    string
	starter int
	records []int
	release bool
}

func defaultOwner(name string) ownerData {
	return ownerData{name: name, starter: 1}
}

// OwnerOption configures an owner in the builder.
type OwnerOption func(*ownerData)

// Starter picks the 1-based starter the Pokedex is created with.
func Starter(i int) OwnerOption {
	return func(o *ownerData) { o.starter = i }
}

// Records adds catalog IDs after the starter, in the given insertion order.
func Records(ids ...int) OwnerOption {
	return func(o *ownerData) { o.records = append(o.records, ids...) }
}

// WithoutStarter releases the starter once the records are added, leaving
// exactly the listed records.
func WithoutStarter() OwnerOption {
	return func(o *ownerData) { o.release = true }
}
