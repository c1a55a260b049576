package g60

// The 60 G60 symbols in digit-value order: decimal digits, the uppercase
// letters without I and O (too close to 1 and 0), then the lowercase
// letters. The order is part of the format; changing it silently changes
// every encoding.
const alphabet = "0123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// symbolValues maps a byte to its digit value, or -1 for bytes outside
// the alphabet. Indexed lookup keeps decoding off the hot path of a
// search.
var symbolValues [256]int8

func init() {
	for i := range symbolValues {
		symbolValues[i] = -1
	}
	for i := 0; i < len(alphabet); i++ {
		symbolValues[alphabet[i]] = int8(i)
	}
}
