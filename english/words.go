package english

import "github.com/az-ai-labs/num2words/numtext"

var lexicon = numtext.Uniform(map[int]string{
	1:  "One",
	2:  "Two",
	3:  "Three",
	4:  "Four",
	5:  "Five",
	6:  "Six",
	7:  "Seven",
	8:  "Eight",
	9:  "Nine",
	10: "Ten",
	11: "Eleven",
	12: "Twelve",
	13: "Thirteen",
	14: "Fourteen",
	15: "Fifteen",
	16: "Sixteen",
	17: "Seventeen",
	18: "Eighteen",
	19: "Nineteen",
	20: "Twenty",
	30: "Thirty",
	40: "Forty",
	50: "Fifty",
	60: "Sixty",
	70: "Seventy",
	80: "Eighty",
	90: "Ninety",
})

const hundred = "Hundred"

var composer = numtext.Composer{
	Lexicon: lexicon,
	Hundred: func(h int, g numtext.Gender) string {
		return lexicon.Word(h, g) + " " + hundred
	},
	Sep:     " ",
	TensSep: " ",
}

// Classic names groups up to Billion.
var Classic = numtext.ScaleTable{
	numtext.Plain(hundred),
	numtext.Plain("Thousand"),
	numtext.Plain("Million"),
	numtext.Plain("Billion"),
}

// ShortScale names groups up to Decillion (10^33).
var ShortScale = numtext.ScaleTable{
	numtext.Plain(hundred),
	numtext.Plain("Thousand"),
	numtext.Plain("Million"),
	numtext.Plain("Billion"),
	numtext.Plain("Trillion"),
	numtext.Plain("Quadrillion"),
	numtext.Plain("Quintillion"),
	numtext.Plain("Sextillion"),
	numtext.Plain("Septillion"),
	numtext.Plain("Octillion"),
	numtext.Plain("Nonillion"),
	numtext.Plain("Decillion"),
}

var irregularOrdinals = map[string]string{
	"One":    "First",
	"Two":    "Second",
	"Three":  "Third",
	"Five":   "Fifth",
	"Eight":  "Eighth",
	"Nine":   "Ninth",
	"Twelve": "Twelfth",
}
