package dataset

// Address tables.
type Address struct {
	// Number holds street number templates such as "####".
	Number       []string `yaml:"number"`
	StreetPrefix []string `yaml:"street_prefix"`
	StreetSuffix []string `yaml:"street_suffix"`
	State        []string `yaml:"state"`
	StateAbr     []string `yaml:"state_abr"`
	// Zip holds zip code templates such as "#####".
	Zip        []string `yaml:"zip"`
	Country    []string `yaml:"country"`
	CountryAbr []string `yaml:"country_abr"`
}

// Company tables.
type Company struct {
	Suffix    []string `yaml:"suffix"`
	Buzzwords []string `yaml:"buzzwords"`
	BS        []string `yaml:"bs"`
}

// Name tables.
type Name struct {
	Prefix []string `yaml:"prefix"`
	Suffix []string `yaml:"suffix"`
	First  []string `yaml:"first"`
	Last   []string `yaml:"last"`
}

// Dataset is the full set of lookup tables.
// Treat it as read-only once loaded; generators share it between goroutines.
type Dataset struct {
	// Versions maps each table file name to the version it declared.
	Versions map[string]string
	Address  Address
	Company  Company
	Name     Name
}

// table names a single lookup table for validation and logging.
type table struct {
	name     string
	values   []string
	template bool
}

func (d *Dataset) tables() []table {
	return []table{
		{"address.number", d.Address.Number, true},
		{"address.street_prefix", d.Address.StreetPrefix, false},
		{"address.street_suffix", d.Address.StreetSuffix, false},
		{"address.state", d.Address.State, false},
		{"address.state_abr", d.Address.StateAbr, false},
		{"address.zip", d.Address.Zip, true},
		{"address.country", d.Address.Country, false},
		{"address.country_abr", d.Address.CountryAbr, false},
		{"company.suffix", d.Company.Suffix, false},
		{"company.buzzwords", d.Company.Buzzwords, false},
		{"company.bs", d.Company.BS, false},
		{"name.prefix", d.Name.Prefix, false},
		{"name.suffix", d.Name.Suffix, false},
		{"name.first", d.Name.First, false},
		{"name.last", d.Name.Last, false},
	}
}
