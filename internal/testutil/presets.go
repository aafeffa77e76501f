package testutil

// WithStandardTrainers adds three owners in unsorted order:
//
//	Misty  {7, 54, 120, 121}  starter Squirtle
//	Ash    {1, 4, 25}         starter Bulbasaur
//	Brock  {74, 95}           no starter
func (b *Builder) WithStandardTrainers() *Builder {
	return b.
		WithOwner("Misty", Starter(3), Records(54, 120, 121)).
		WithOwner("Ash", Starter(1), Records(4, 25)).
		WithOwner("Brock", Records(74, 95), WithoutStarter())
}
