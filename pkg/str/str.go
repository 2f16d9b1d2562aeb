package str

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

const (
	// UpperAlphabet upper alphabet chars
	UpperAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	// LowerAlphabet lower alphabet chars
	LowerAlphabet = "abcdefghijklmnopqrstuvwxyz"
	// Alphabet alphabet chars with upper and lower
	Alphabet = UpperAlphabet + LowerAlphabet
	// Numerals numeral chars
	Numerals = "1234567890"
	// Alphanumeric alphabet and numeral chars
	Alphanumeric = Alphabet + Numerals
)

// RandString inspired from https://github.com/jmcvetta/randutil/blob/master/randutil.go
func RandString(length int, charset string) string {
	str := make([]byte, length)
	if charset == "" {
		charset = Alphabet
	}
	charlen := big.NewInt(int64(len(charset)))
	for i := 0; i < length; i++ {
		v, _ := rand.Int(rand.Reader, charlen)
		str[i] = charset[int(v.Int64())]
	}
	return string(str)
}

// GenTreeId derives a display id for an unnamed subject from the given
// time. Distinguishable for display purposes, not guaranteed unique.
func GenTreeId(t time.Time) string {
	return fmt.Sprintf("tree-%d", t.UnixMilli())
}
