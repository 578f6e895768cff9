package arabic

import "github.com/az-ai-labs/num2words/numtext"

var units = numtext.Lexicon{
	1:  {Masculine: "واحد", Feminine: "واحدة"},
	2:  {Masculine: "اثنان", Feminine: "اثنتان"},
	3:  {Masculine: "ثلاثة", Feminine: "ثلاث"},
	4:  {Masculine: "أربعة", Feminine: "أربع"},
	5:  {Masculine: "خمسة", Feminine: "خمس"},
	6:  {Masculine: "ستة", Feminine: "ست"},
	7:  {Masculine: "سبعة", Feminine: "سبع"},
	8:  {Masculine: "ثمانية", Feminine: "ثمان"},
	9:  {Masculine: "تسعة", Feminine: "تسع"},
	10: {Masculine: "عشرة", Feminine: "عشر"},
	11: {Masculine: "أحد عشر", Feminine: "إحدى عشرة"},
	12: {Masculine: "اثنا عشر", Feminine: "اثنتا عشرة"},
	13: {Masculine: "ثلاثة عشر", Feminine: "ثلاث عشرة"},
	14: {Masculine: "أربعة عشر", Feminine: "أربع عشرة"},
	15: {Masculine: "خمسة عشر", Feminine: "خمس عشرة"},
	16: {Masculine: "ستة عشر", Feminine: "ست عشرة"},
	17: {Masculine: "سبعة عشر", Feminine: "سبع عشرة"},
	18: {Masculine: "ثمانية عشر", Feminine: "ثماني عشرة"},
	19: {Masculine: "تسعة عشر", Feminine: "تسع عشرة"},
}

var tens = map[int]string{
	20: "عشرون",
	30: "ثلاثون",
	40: "أربعون",
	50: "خمسون",
	60: "ستون",
	70: "سبعون",
	80: "ثمانون",
	90: "تسعون",
}

var hundreds = [...]string{
	1: "مائة",
	2: "مئتان",
	3: "ثلاثمائة",
	4: "أربعمائة",
	5: "خمسمائة",
	6: "ستمائة",
	7: "سبعمائة",
	8: "ثمانمائة",
	9: "تسعمائة",
}

// Scales holds the Arabic scale nouns up to سكستيليون (10^21).
// Genitive is the construct form the dual is built on.
var Scales = numtext.ScaleTable{
	{Normal: "مائة", Genitive: "مئتا", Plural: "مئات"},
	{Normal: "ألف", Genitive: "ألفا", Appended: "ألفاً", Plural: "آلاف"},
	{Normal: "مليون", Genitive: "مليونا", Appended: "مليوناً", Plural: "ملايين"},
	{Normal: "مليار", Genitive: "مليارا", Appended: "ملياراً", Plural: "مليارات"},
	{Normal: "تريليون", Genitive: "تريليونا", Appended: "تريليوناً", Plural: "تريليونات"},
	{Normal: "كوادريليون", Genitive: "كوادريليونا", Appended: "كوادريليوناً", Plural: "كوادريليونات"},
	{Normal: "كوينتليون", Genitive: "كوينتليونا", Appended: "كوينتليوناً", Plural: "كوينتليونات"},
	{Normal: "سكستيليون", Genitive: "سكستيليونا", Appended: "سكستيليوناً", Plural: "سكستيليونات"},
}

// ordinals maps a standalone unit to its ordinal stem.
var ordinals = map[string]string{
	"واحد":   "أول",
	"اثنان":  "ثاني",
	"ثلاثة":  "ثالث",
	"أربعة":  "رابع",
	"خمسة":   "خامس",
	"ستة":    "سادس",
	"سبعة":   "سابع",
	"ثمانية": "ثامن",
	"تسعة":   "تاسع",
	"عشرة":   "عاشر",
}

// compoundOrdinals maps a unit inside 11–19 or before a tens word.
var compoundOrdinals = map[string]string{
	"واحد":   "حادي",
	"أحد":    "حادي",
	"اثنان":  "ثاني",
	"اثنا":   "ثاني",
	"ثلاثة":  "ثالث",
	"أربعة":  "رابع",
	"خمسة":   "خامس",
	"ستة":    "سادس",
	"سبعة":   "سابع",
	"ثمانية": "ثامن",
	"تسعة":   "تاسع",
}
