package parser

import "strings"

// primitiveSpellings lists every valid C type-specifier sequence, per
// section 6.7.2 of the C99 standard (n1256). Order matters: sequences are
// tried first to last, with each sequence ahead of its own prefixes, so a
// first match is the longest valid match ("unsigned long long int" wins
// over "unsigned long").
var primitiveSpellings = []string{
	"unsigned long long int",
	"unsigned long long",
	"unsigned long int",
	"unsigned short int",
	"unsigned short",
	"unsigned long",
	"unsigned int",
	"unsigned char",
	"unsigned",
	"signed long long int",
	"signed long long",
	"signed long int",
	"signed long",
	"signed short int",
	"signed short",
	"signed char",
	"signed int",
	"signed",
	"long long int",
	"long double _Complex",
	"long double",
	"long long",
	"long int",
	"long",
	"short int",
	"short",
	"float _Complex",
	"float",
	"double _Complex",
	"double",
	"void",
	"char",
	"int",
	"_Bool",
}

// primitiveWords caches the spellings pre-split into keyword sequences.
var primitiveWords = func() [][]string {
	words := make([][]string, len(primitiveSpellings))
	for i, s := range primitiveSpellings {
		words[i] = strings.Fields(s)
	}
	return words
}()

// PrimitiveSpellings returns all valid primitive type spellings, longest
// match first.
func PrimitiveSpellings() []string {
	out := make([]string, len(primitiveSpellings))
	copy(out, primitiveSpellings)
	return out
}
