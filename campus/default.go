package campus

// defaultLocations is the built-in map of the Fullerton campus, in the
// order the markers are drawn.
var defaultLocations = []Location{
	{Name: "Admissions Office", X: 514, Y: 726},
	{Name: "Clayes Performance Arts Center", X: 326, Y: 622},
	{Name: "Computer Science", X: 640, Y: 499},
	{Name: "Dan Black Hall", X: 443, Y: 1086},
	{Name: "Eastside North Parking Structure", X: 709, Y: 589},
	{Name: "Eastside South Parking Structure", X: 711, Y: 638},
	{Name: "Engineering", X: 598, Y: 498},
	{Name: "Gordon Hall", X: 525, Y: 681},
	{Name: "Humanities", X: 529, Y: 625},
	{Name: "Kinesiology", X: 374, Y: 468},
	{Name: "Langsdorf Hall", X: 487, Y: 723},
	{Name: "McCarthy Hall", X: 418, Y: 679},
	{Name: "Nutwood Parking Structure", X: 190, Y: 719},
	{Name: "Pollak Library", X: 438, Y: 555},
	{Name: "Student Recreation Center", X: 252, Y: 438},
}

// Default returns the built-in campus catalog.
func Default() *Catalog {
	c, err := NewCatalog(defaultLocations...)
	if err != nil {
		panic(err)
	}
	return c
}
