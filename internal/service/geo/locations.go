package geo

// locationCodes maps state → city → the provider's numeric location code.
// The table is compiled in and never mutated at runtime; lookups are exact
// string matches. Codes come from the provider's published locations list.
var locationCodes = map[string]map[string]int{
	"TX": {
		"Austin":         1026201,
		"Dallas":         1026339,
		"Houston":        1026481,
		"San Antonio":    1026748,
		"Fort Worth":     1026411,
		"El Paso":        1026374,
		"Corpus Christi": 1026327,
	},
	"CA": {
		"Los Angeles":   1013962,
		"San Diego":     1014221,
		"San Francisco": 1014226,
		"San Jose":      1014237,
		"Sacramento":    1014202,
		"Fresno":        1013690,
		"Santa Barbara": 1014256,
		"Napa":          1013985,
	},
	"NY": {
		"New York": 1023191,
		"Brooklyn": 1022762,
		"Buffalo":  1022775,
		"Albany":   1022612,
		"Syracuse": 1023428,
	},
	"FL": {
		"Miami":        1015116,
		"Orlando":      1015226,
		"Tampa":        1015390,
		"Jacksonville": 1014997,
		"Key West":     1015022,
		"Naples":       1015152,
	},
	"IL": {
		"Chicago":     1016367,
		"Springfield": 1016933,
		"Naperville":  1016751,
	},
	"GA": {
		"Atlanta":  1015254,
		"Savannah": 1015722,
		"Athens":   1015251,
	},
	"WA": {
		"Seattle": 1027744,
		"Spokane": 1027768,
		"Tacoma":  1027783,
	},
	"CO": {
		"Denver":           1014583,
		"Boulder":          1014539,
		"Colorado Springs": 1014558,
		"Aspen":            1014518,
	},
	"AZ": {
		"Phoenix":    1013321,
		"Tucson":     1013432,
		"Scottsdale": 1013393,
		"Sedona":     1013396,
	},
	"TN": {
		"Nashville":  1025845,
		"Memphis":    1025798,
		"Knoxville":  1025743,
		"Gatlinburg": 1025622,
	},
	"NV": {
		"Las Vegas": 1022595,
		"Reno":      1022620,
	},
	"MA": {
		"Boston":    1018127,
		"Cambridge": 1018145,
		"Worcester": 1018581,
	},
	"OR": {
		"Portland": 1024414,
		"Eugene":   1024227,
		"Bend":     1024148,
	},
	"NC": {
		"Charlotte": 1021217,
		"Raleigh":   1021657,
		"Asheville": 1021128,
	},
	"LA": {
		"New Orleans": 1017456,
		"Baton Rouge": 1017212,
	},
	"HI": {
		"Honolulu": 1015862,
		"Maui":     1015903,
	},
}
