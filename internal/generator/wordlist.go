package generator

import (
	_ "embed"
	"strings"
)

//go:embed words.txt
var rawWords string

// WordList is the passphrase dictionary: 1024 short, common, lowercase
// English words without duplicates. Entropy estimates use len(WordList).
var WordList = strings.Fields(rawWords)
