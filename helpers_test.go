package currency

import (
	"testing"

	"github.com/tomruk/currency-go/serializer"
	"github.com/tomruk/currency-go/serializer/fast"
	gojson "github.com/tomruk/currency-go/serializer/go-json"
	"github.com/tomruk/currency-go/serializer/jsoniter"
	"github.com/tomruk/currency-go/serializer/stdjson"
)

const sampleDocument = `{
"AED": "United Arab Emirates Dirham",
"AFN": "Afghan Afghani",
"ALL": "Albanian Lek",
"AMD": "Armenian Dram",
"ANG": "Netherlands Antillean Guilder",
"AOA": "Angolan Kwanza",
"ARS": "Argentine Peso",
"AUD": "Australian Dollar",
"AWG": "Aruban Florin"
}`

var sampleCurrencies = map[string]string{
	"AED": "United Arab Emirates Dirham",
	"AFN": "Afghan Afghani",
	"ALL": "Albanian Lek",
	"AMD": "Armenian Dram",
	"ANG": "Netherlands Antillean Guilder",
	"AOA": "Angolan Kwanza",
	"ARS": "Argentine Peso",
	"AUD": "Australian Dollar",
	"AWG": "Aruban Florin",
}

func testSerializers() []serializer.JSONSerializer {
	// fast is sonic where sonic is supported.
	return []serializer.JSONSerializer{
		stdjson.New(),
		gojson.New(nil),
		jsoniter.New(),
		fast.New(),
	}
}

// Run f once per serializer, each in its own subtest.
func forEachDecoder(t *testing.T, f func(t *testing.T, d *Decoder)) {
	for _, json := range testSerializers() {
		d := NewDecoder(&DecoderConfig{JSONSerializer: json})
		t.Run(json.Name(), func(t *testing.T) {
			f(t, d)
		})
	}
}
