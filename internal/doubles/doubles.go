// Package doubles holds the test doubles of the insist package.
package doubles

//go:generate mockgen -package doubles -destination reporter.go github.com/redfin/insist Reporter
