package persian

import "github.com/az-ai-labs/num2words/numtext"

const and = " و "

var lexicon = numtext.Uniform(map[int]string{
	1:   "یک",
	2:   "دو",
	3:   "سه",
	4:   "چهار",
	5:   "پنج",
	6:   "شش",
	7:   "هفت",
	8:   "هشت",
	9:   "نه",
	10:  "ده",
	11:  "یازده",
	12:  "دوازده",
	13:  "سیزده",
	14:  "چهارده",
	15:  "پانزده",
	16:  "شانزده",
	17:  "هفده",
	18:  "هجده",
	19:  "نوزده",
	20:  "بیست",
	30:  "سی",
	40:  "چهل",
	50:  "پنجاه",
	60:  "شصت",
	70:  "هفتاد",
	80:  "هشتاد",
	90:  "نود",
	100: "صد",
	200: "دویست",
	300: "سیصد",
	500: "پانصد",
})

// composer spells hundreds without a listed word as digit + "صد": "چهارصد".
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

// Iran is the scale table in common use in Iran.
var Iran = numtext.ScaleTable{
	numtext.Plain("صد"),
	numtext.Plain("هزار"),
	numtext.Plain("میلیون"),
	numtext.Plain("میلیارد"),
	numtext.Plain("تریلیون"),
}

// Europe is the long scale, alternating -لیون and -لیارد.
var Europe = numtext.ScaleTable{
	numtext.Plain("صد"),
	numtext.Plain("هزار"),
	numtext.Plain("میلیون"),
	numtext.Plain("میلیارد"),
	numtext.Plain("بیلیون"),
	numtext.Plain("بیلیارد"),
	numtext.Plain("تریلیون"),
	numtext.Plain("تریلیارد"),
}

// US is the short scale.
var US = numtext.ScaleTable{
	numtext.Plain("صد"),
	numtext.Plain("هزار"),
	numtext.Plain("میلیون"),
	numtext.Plain("بیلیون"),
	numtext.Plain("تریلیون"),
	numtext.Plain("کوآدریلیون"),
	numtext.Plain("کوینتیلیون"),
	numtext.Plain("سکستیلیون"),
}
