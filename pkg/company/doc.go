// Package company generates mock company data: names, legal suffixes,
// marketing buzzwords and business jargon.
//
//	company.Company()     // "Rowe-Schoen"
//	company.Suffix()      // "Inc"
//	company.Buzzword()    // "Synergistic"
//	company.BS()          // "strategic"
//	company.CatchPhrase() // "Seamless Next-Generation"
package company
