package tajik

import "github.com/az-ai-labs/num2words/numtext"

const and = "у "

var lexicon = numtext.Uniform(map[int]string{
	1:   "як",
	2:   "ду",
	3:   "се",
	4:   "чор",
	5:   "панҷ",
	6:   "шаш",
	7:   "ҳафт",
	8:   "ҳашт",
	9:   "нӯҳ",
	10:  "даҳ",
	11:  "ёздаҳ",
	12:  "дувоздаҳ",
	13:  "сенздаҳ",
	14:  "чордаҳ",
	15:  "понздаҳ",
	16:  "шонздаҳ",
	17:  "ҳабдаҳ",
	18:  "ҳаждаҳ",
	19:  "нуздаҳ",
	20:  "бист",
	30:  "сӣ",
	40:  "чил",
	50:  "панҷоҳ",
	60:  "шаст",
	70:  "ҳафтод",
	80:  "ҳаштод",
	90:  "навад",
	100: "сад",
	200: "дусад",
	300: "сесад",
	500: "панҷсад",
})

var composer = numtext.Composer{
	Lexicon: lexicon,
	Hundred: func(h int, g numtext.Gender) string {
		if w, ok := lexicon.Lookup(h*100, g); ok {
			return w
		}
		return lexicon.Word(h, g) + lexicon.Word(100, g)
	},
	Sep:     and,
	TensSep: and,
}

// Scales is the Tajik scale table.
var Scales = numtext.ScaleTable{
	numtext.Plain("сад"),
	numtext.Plain("ҳазор"),
	numtext.Plain("миллион"),
	numtext.Plain("миллиард"),
	numtext.Plain("триллион"),
}
