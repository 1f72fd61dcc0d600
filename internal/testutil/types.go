// Package testutil defines support code for unit tests.
package testutil

import (
	"github.com/brianvoe/gofakeit/v6"
	"github.com/goccy/go-json"
)

// People returns a JSON array of n randomly-generated person records, along
// with the plain Go value the array encodes. The same seed always yields the
// same document. If indent is true, the document is formatted with
// indentation; otherwise it is compact.
//
// The records use only the subset of JSON the parser accepts: numbers have no
// exponents, and strings use only the escapes \" \\ \n \r \t.
func People(seed int64, n int, indent bool) ([]byte, []any) {
	f := gofakeit.New(seed)
	people := make([]any, n)
	for i := range people {
		people[i] = person(f, i)
	}
	var data []byte
	var err error
	if indent {
		data, err = json.MarshalIndent(people, "", "  ")
	} else {
		data, err = json.MarshalNoEscape(people)
	}
	if err != nil {
		panic(err)
	}
	return data, people
}

func person(f *gofakeit.Faker, index int) map[string]any {
	tags := make([]any, f.IntRange(0, 6))
	for i := range tags {
		tags[i] = f.Word()
	}
	friends := make([]any, f.IntRange(0, 3))
	for i := range friends {
		friends[i] = map[string]any{
			"id":   float64(i),
			"name": f.Name(),
		}
	}
	return map[string]any{
		"_id":      f.UUID(),
		"index":    float64(index),
		"isActive": f.Bool(),
		"balance":  decimal(f, 0, 1e6),
		"age":      float64(f.IntRange(18, 90)),
		"name":     f.Name(),
		"email":    f.Email(),
		"phone":    f.Phone(),
		"about":    f.Sentence(12) + "\r\n",
		"motto":    `"` + f.Word() + `"` + "\t" + f.Word() + `\` + f.Word(),
		"latitude": decimal(f, -90, 90),
		"tags":     tags,
		"friends":  friends,
		"spouse":   nil,
		"greeting": "שלום привет " + f.FirstName(),
	}
}

// decimal returns a random value in [lo, hi] with three decimal places,
// which encodes without an exponent.
func decimal(f *gofakeit.Faker, lo, hi float64) float64 {
	return float64(f.IntRange(int(lo*1000), int(hi*1000))) / 1000
}
