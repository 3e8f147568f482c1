// Package currency decodes a JSON object of currency codes and names
// into a list of records.
//
//	currencies, err := currency.Decode([]byte(`{"AED": "United Arab Emirates Dirham"}`))
//	if err != nil {
//		// err is a *MalformedInputError
//	}
//	fmt.Println(currencies)
package currency

import (
	"fmt"
	"sort"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/fatih/structs"
)

type Currency struct {
	Acronym  string `json:"acronym"`
	FullName string `json:"fullName"`
}

// String renders the currency as "acronym: <code>, fullName: <name>".
// Labels are the json tag names of the fields.
func (c Currency) String() string {
	fields := structs.New(c).Fields()
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		label, _, _ := strings.Cut(f.Tag("json"), ",")
		if label == "" {
			label = f.Name()
		}
		parts = append(parts, fmt.Sprintf("%s: %v", label, f.Value()))
	}
	return strings.Join(parts, ", ")
}

// List is the decoded form of a currency document.
// Decode always returns it sorted by acronym.
type List []Currency

// String renders each currency on its own line.
func (l List) String() string {
	var b strings.Builder
	for i, c := range l {
		if i != 0 {
			b.WriteByte('\n')
		}
		b.WriteString(c.String())
	}
	return b.String()
}

func (l List) Sort() {
	sort.Slice(l, func(i, j int) bool {
		return l[i].Acronym < l[j].Acronym
	})
}

// Set returns the currencies as a set of (acronym, full name) pairs.
// Use it to compare lists regardless of order.
func (l List) Set() mapset.Set[Currency] {
	return mapset.NewSet[Currency](l...)
}

// Map returns acronym -> full name. If an acronym occurs more than once,
// the last one wins.
func (l List) Map() map[string]string {
	m := make(map[string]string, len(l))
	for _, c := range l {
		m[c.Acronym] = c.FullName
	}
	return m
}
