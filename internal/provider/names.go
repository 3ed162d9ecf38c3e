package provider

var (
	citySuffixes = []string{
		"ton", "ville", "burgh", "port", "haven", "side", "shire", "borough",
		"furt", "mouth", "stad", "view", "fort", "land", "berg", "chester",
	}

	maleFirstNames = []string{
		"James", "John", "Robert", "Michael", "William", "David", "Richard", "Joseph",
		"Thomas", "Charles", "Daniel", "Matthew", "Anthony", "Mark", "Steven", "Paul",
		"Andrew", "Joshua", "Kevin", "Brian", "George", "Edward", "Ronald", "Timothy",
	}

	femaleFirstNames = []string{
		"Mary", "Patricia", "Jennifer", "Linda", "Elizabeth", "Barbara", "Susan", "Jessica",
		"Sarah", "Karen", "Nancy", "Lisa", "Betty", "Margaret", "Sandra", "Ashley",
		"Emily", "Donna", "Michelle", "Carol", "Amanda", "Melissa", "Deborah", "Laura",
	}

	// Surnames are not gendered in most locales; the two lists only differ
	// so that the gendered providers are not aliases of each other.
	maleLastNames = []string{
		"Smith", "Johnson", "Williams", "Brown", "Jones", "Miller", "Davis", "Wilson",
		"Anderson", "Taylor", "Thomas", "Moore", "Jackson", "Martin", "Thompson", "White",
	}

	femaleLastNames = []string{
		"Garcia", "Martinez", "Robinson", "Clark", "Rodriguez", "Lewis", "Lee", "Walker",
		"Hall", "Allen", "Young", "Hernandez", "King", "Wright", "Lopez", "Hill",
	}
)
